package gltf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.gltf")); err == nil {
		t.Error("Load on a missing file should fail")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gltf")
	if err := os.WriteFile(path, []byte("not a gltf document"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed JSON should fail")
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	// A syntactically valid document with no meshes yields an empty Mesh.
	path := filepath.Join(t.TempDir(), "empty.gltf")
	doc := `{"asset":{"version":"2.0"}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.VertexCount() != 0 || m.FaceCount() != 0 {
		t.Errorf("got %d vertices, %d faces, want empty", m.VertexCount(), m.FaceCount())
	}
}

// Package obj loads Wavefront OBJ geometry as lattice meshes.
//
// Only the wireframe-relevant subset is read: "v" vertex positions and
// "f" face index lists. Texture coordinates, normals, materials, groups,
// and smoothing directives are skipped. Parsing is total: any text yields
// a mesh, possibly empty.
package obj

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/phanxgames/lattice"
)

// Parse converts OBJ source text into a Mesh. It never fails; malformed
// lines are skipped, and faces with fewer than three vertices or with
// indices outside the vertex list are dropped.
func Parse(text string) *lattice.Mesh {
	vertices, faces := parse(Lex(text))
	return lattice.NewMesh(vertices, faces)
}

// Load reads OBJ text from r and parses it.
func Load(r io.Reader) (*lattice.Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("obj: read: %w", err)
	}
	return Parse(string(data)), nil
}

// LoadFile reads and parses the OBJ file at path.
func LoadFile(path string) (*lattice.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("obj: read %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Fetch downloads OBJ text from url and parses it. A non-2xx response is
// an error.
func Fetch(ctx context.Context, url string) (*lattice.Mesh, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("obj: fetch %s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("obj: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("obj: fetch %s: unexpected status %s", url, resp.Status)
	}
	return Load(resp.Body)
}

// Package gltf imports glTF 2.0 geometry as lattice meshes.
//
// Only triangle primitives are read; positions come from the POSITION
// attribute and faces from the primitive's index accessor. Normals,
// texture coordinates, and materials are irrelevant to a wireframe
// renderer and are ignored.
package gltf

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/phanxgames/lattice"
)

// Load reads a .gltf or .glb file at path and returns the combined
// geometry of all its triangle primitives as a single Mesh. Non-triangle
// primitives (points, lines) are skipped.
func Load(path string) (*lattice.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf: open %s: %w", path, err)
	}
	return fromDocument(doc)
}

func fromDocument(doc *gltf.Document) (*lattice.Mesh, error) {
	var vertices []lattice.Vec3
	var faces [][]int
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			// A zero Mode is an unset field and defaults to triangles.
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("gltf: mesh %q: read positions: %w", m.Name, err)
			}
			base := len(vertices)
			for _, p := range positions {
				vertices = append(vertices, lattice.V3(float64(p[0]), float64(p[1]), float64(p[2])))
			}
			if prim.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("gltf: mesh %q: read indices: %w", m.Name, err)
				}
				for i := 0; i+2 < len(indices); i += 3 {
					faces = append(faces, []int{
						base + int(indices[i]),
						base + int(indices[i+1]),
						base + int(indices[i+2]),
					})
				}
			} else {
				for i := 0; i+2 < len(positions); i += 3 {
					faces = append(faces, []int{base + i, base + i + 1, base + i + 2})
				}
			}
		}
	}
	return lattice.NewMesh(vertices, faces), nil
}

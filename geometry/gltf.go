package geometry

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Mesh is triangle geometry imported from a file.
type Mesh struct {
	Name     string
	vertices []float32
	indices  []uint32
}

func NewMesh(name string, vertices []float32, indices []uint32) *Mesh {
	return &Mesh{Name: name, vertices: vertices, indices: indices}
}

func (m *Mesh) RawVertices() []float32 { return m.vertices }
func (m *Mesh) RawIndices() []uint32   { return m.indices }

func (m *Mesh) RawLines() []float32 {
	if m.indices == nil {
		return Edges(m.vertices, sequence(len(m.vertices)/3))
	}
	return Edges(m.vertices, m.indices)
}

func sequence(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}

// LoadGLTF reads the triangle primitives of every mesh in a .gltf or .glb
// file, one Mesh per primitive. Only positions and indices are read; the
// file's node hierarchy, materials and other attributes are ignored.
// Primitives that are not triangle lists are skipped.
func LoadGLTF(path string) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "gltf open %q", path)
	}

	var meshes []*Mesh
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			m, err := loadGLTFPrimitive(doc, gm.Name, pi, prim)
			if err != nil {
				return nil, errors.Wrapf(err, "gltf %q: mesh %d primitive %d", path, mi, pi)
			}
			meshes = append(meshes, m)
		}
	}
	return meshes, nil
}

func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, errors.New("no POSITION attribute")
	}
	if posIdx < 0 || posIdx >= len(doc.Accessors) {
		return nil, errors.Errorf("POSITION accessor %d out of range (%d accessors)", posIdx, len(doc.Accessors))
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, errors.Wrap(err, "positions")
	}

	vertices := make([]float32, 0, len(positions)*3)
	for _, p := range positions {
		vertices = append(vertices, p[0], p[1], p[2])
	}

	var indices []uint32
	if prim.Indices != nil {
		if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
			return nil, errors.Errorf("indices accessor %d out of range (%d accessors)", *prim.Indices, len(doc.Accessors))
		}
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, errors.Wrap(err, "indices")
		}
	}

	return NewMesh(name, vertices, indices), nil
}

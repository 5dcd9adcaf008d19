// Package geometry holds the vertex producers a scene.Leaf can carry:
// procedural primitives and meshes imported from glTF files.
package geometry

import "scenegraph/scene"

var (
	_ scene.Geometry = (*Cube)(nil)
	_ scene.Geometry = (*Sphere)(nil)
	_ scene.Geometry = (*XYGrid)(nil)
	_ scene.Geometry = (*Mesh)(nil)
)

// Triangles expands an indexed triangle list into a flat, unindexed one.
func Triangles(vertices []float32, indices []uint32) []float32 {
	out := make([]float32, 0, len(indices)*3)
	for _, idx := range indices {
		i := int(idx) * 3
		out = append(out, vertices[i], vertices[i+1], vertices[i+2])
	}
	return out
}

// Edges returns the outline of every triangle in an indexed triangle list
// as a line list: three segments per triangle.
func Edges(vertices []float32, indices []uint32) []float32 {
	out := make([]float32, 0, len(indices)*6)
	for t := 0; t+2 < len(indices); t += 3 {
		for j := 0; j < 3; j++ {
			a := int(indices[t+j]) * 3
			b := int(indices[t+(j+1)%3]) * 3
			out = append(out,
				vertices[a], vertices[a+1], vertices[a+2],
				vertices[b], vertices[b+1], vertices[b+2],
			)
		}
	}
	return out
}

package geometry

// Cube is an axis-aligned cube centred on the origin: eight shared
// corners and twelve triangles.
type Cube struct {
	Size float32

	vertices []float32
	indices  []uint32
}

var cubeCorners = [8][3]float32{
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
	{0.5, 0.5, -0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{0.5, 0.5, 0.5},
	{-0.5, 0.5, 0.5},
}

var cubeFaces = []uint32{
	0, 3, 2, 0, 2, 1, // back
	1, 2, 6, 1, 6, 5, // right
	4, 6, 7, 4, 5, 6, // front
	0, 7, 3, 0, 4, 7, // left
	4, 1, 5, 4, 0, 1, // bottom
	3, 7, 6, 3, 6, 2, // top
}

func NewCube(size float32) *Cube {
	c := &Cube{Size: size}
	c.vertices = make([]float32, 0, len(cubeCorners)*3)
	for _, v := range cubeCorners {
		c.vertices = append(c.vertices, v[0]*size, v[1]*size, v[2]*size)
	}
	c.indices = append([]uint32(nil), cubeFaces...)
	return c
}

func (c *Cube) RawVertices() []float32 { return c.vertices }
func (c *Cube) RawIndices() []uint32   { return c.indices }
func (c *Cube) RawLines() []float32    { return Edges(c.vertices, c.indices) }

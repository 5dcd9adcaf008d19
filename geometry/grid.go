package geometry

import "github.com/chewxy/math32"

// XYGrid is a square line grid in the XY plane spanning
// [-GridSize, GridSize] on both axes.
type XYGrid struct {
	GridSize float32
	Step     float32

	vertices []float32
}

// NewXYGrid builds the grid. A non-positive step falls back to 1 and a
// negative size is taken by magnitude.
func NewXYGrid(gridSize, step float32) *XYGrid {
	if step <= 0 {
		step = 1
	}
	gridSize = math32.Abs(gridSize)
	g := &XYGrid{GridSize: gridSize, Step: step}

	n := int(2*gridSize/step) + 1
	g.vertices = make([]float32, 0, n*12)
	for i := 0; i < n; i++ {
		x := -gridSize + float32(i)*step
		g.vertices = append(g.vertices, x, -gridSize, 0, x, gridSize, 0)
	}
	for i := 0; i < n; i++ {
		y := -gridSize + float32(i)*step
		g.vertices = append(g.vertices, -gridSize, y, 0, gridSize, y, 0)
	}
	return g
}

// DefaultXYGrid spans [-10, 10] with unit spacing.
func DefaultXYGrid() *XYGrid {
	return NewXYGrid(10, 1)
}

// RawVertices is the same line list as RawLines; a grid has no faces.
func (g *XYGrid) RawVertices() []float32 { return g.vertices }
func (g *XYGrid) RawIndices() []uint32   { return nil }
func (g *XYGrid) RawLines() []float32    { return g.vertices }

package geometry

import "github.com/chewxy/math32"

// Sphere is a UV sphere. Rows run from the +Y pole (v = 0) to the -Y pole.
type Sphere struct {
	Radius         float32
	WidthSegments  int
	HeightSegments int

	vertices []float32
	indices  []uint32
}

// NewSphere builds a sphere. Segment counts are clamped to at least 3
// around and 2 from pole to pole.
func NewSphere(radius float32, widthSegments, heightSegments int) *Sphere {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	s := &Sphere{
		Radius:         radius,
		WidthSegments:  widthSegments,
		HeightSegments: heightSegments,
	}
	s.generate()
	return s
}

// DefaultSphere is a unit sphere with 9 x 6 segments.
func DefaultSphere() *Sphere {
	return NewSphere(1, 9, 6)
}

func (s *Sphere) generate() {
	row := uint32(s.WidthSegments + 1)

	for y := 0; y <= s.HeightSegments; y++ {
		v := float32(y) / float32(s.HeightSegments)
		sinTheta, cosTheta := math32.Sincos(v * math32.Pi)

		for x := 0; x <= s.WidthSegments; x++ {
			u := float32(x) / float32(s.WidthSegments)
			sinPhi, cosPhi := math32.Sincos(u * 2 * math32.Pi)

			s.vertices = append(s.vertices,
				s.Radius*cosPhi*sinTheta,
				s.Radius*cosTheta,
				s.Radius*sinPhi*sinTheta,
			)
		}

		if y == 0 {
			continue
		}
		base := uint32(y) * row
		for x := uint32(0); x < uint32(s.WidthSegments); x++ {
			a := base + x
			b := a + 1
			c := b - row
			d := a - row
			s.indices = append(s.indices, a, d, b, b, d, c)
		}
	}
}

func (s *Sphere) RawVertices() []float32 { return s.vertices }
func (s *Sphere) RawIndices() []uint32   { return s.indices }
func (s *Sphere) RawLines() []float32    { return Edges(s.vertices, s.indices) }

package core

type Color struct {
	R, G, B, A float32
}

var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorGray        = Color{0.7, 0.7, 0.7, 1}
)

// RGB returns the color without alpha, in the order a vec3 uniform takes.
func (c Color) RGB() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

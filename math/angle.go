package math

import "github.com/chewxy/math32"

// Radians converts degrees to radians. Mat4.Rotate takes degrees while
// Mat4.Perspective takes radians; use this when feeding one from the other.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

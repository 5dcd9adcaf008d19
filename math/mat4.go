package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mat4 is a 4x4 matrix in column-major order: element (row r, column c)
// lives at m[c*4+r] and the translation occupies m[12], m[13], m[14].
// This is the layout glUniformMatrix4fv expects with transpose=false and
// the same layout as mgl32.Mat4.
//
// The composing methods (Identity, Multiply, Translate, Scale, Rotate) mutate
// the receiver and return it so calls can be chained:
//
//	var m Mat4
//	m.Identity().Translate(1, 2, 3).Rotate(90, 0, 0, 1).Scale(2, 2, 2)
//
// Every composition happens on the right: m.Translate(...) yields m * T.
type Mat4 [16]float32

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m Mat4) At(row, col int) float32 {
	return m[col*4+row]
}

// Identity resets m to the identity matrix.
func (m *Mat4) Identity() *Mat4 {
	*m = Mat4Identity()
	return m
}

// Mul returns the product m * other without touching either operand.
func (m Mat4) Mul(other Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[0*4+row]*other[c*4+0] +
				m[1*4+row]*other[c*4+1] +
				m[2*4+row]*other[c*4+2] +
				m[3*4+row]*other[c*4+3]
		}
	}
	return r
}

// Multiply sets m = m * other.
func (m *Mat4) Multiply(other Mat4) *Mat4 {
	*m = m.Mul(other)
	return m
}

// Translate sets m = m * T(tx, ty, tz).
func (m *Mat4) Translate(tx, ty, tz float32) *Mat4 {
	for i := 0; i < 4; i++ {
		m[12+i] += m[i]*tx + m[4+i]*ty + m[8+i]*tz
	}
	return m
}

// Scale sets m = m * S(sx, sy, sz).
func (m *Mat4) Scale(sx, sy, sz float32) *Mat4 {
	for i := 0; i < 4; i++ {
		m[i] *= sx
		m[4+i] *= sy
		m[8+i] *= sz
	}
	return m
}

// Rotate sets m = m * R where R turns angleDeg degrees counter-clockwise
// about the axis (x, y, z). The axis is normalized first. A zero-length
// axis has no direction, so R is the identity and m is left unchanged.
func (m *Mat4) Rotate(angleDeg, x, y, z float32) *Mat4 {
	norm := math32.Sqrt(x*x + y*y + z*z)
	if norm == 0 {
		return m
	}
	x /= norm
	y /= norm
	z /= norm

	s, c := math32.Sincos(Radians(angleDeg))
	t := 1 - c

	// r[row][col] of the 3x3 rotation block
	r := [3][3]float32{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}

	var out [12]float32
	for col := 0; col < 3; col++ {
		for i := 0; i < 4; i++ {
			out[col*4+i] = m[i]*r[0][col] + m[4+i]*r[1][col] + m[8+i]*r[2][col]
		}
	}
	copy(m[:12], out[:])
	return m
}

// Orthographic replaces m with an orthographic projection mapping the box
// [left,right]x[bottom,top]x[-near,-far] to the clip cube.
func (m *Mat4) Orthographic(left, right, bottom, top, near, far float32) *Mat4 {
	m.Identity()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	return m
}

// Perspective replaces m with a perspective projection. fovY is the
// vertical field of view in radians.
func (m *Mat4) Perspective(fovY, aspect, near, far float32) *Mat4 {
	f := 1 / math32.Tan(fovY/2)
	*m = Mat4{}
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = (2 * far * near) / (near - far)
	return m
}

// LookAt replaces m with a right-handed view matrix looking from eye
// towards target.
func (m *Mat4) LookAt(eye, target, up Vec3) *Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	*m = Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
	return m
}

func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[r*4+c] = m[c*4+r]
		}
	}
	return t
}

func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint maps p (w = 1) through m, dividing by the resulting w.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.MulVec4(p.ToVec4(1)).ToVec3DivW()
}

// TransformDirection maps d (w = 0) through m; translation is ignored.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return m.MulVec4(d.ToVec4(0)).ToVec3()
}

// Translation returns the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m[12], Y: m[13], Z: m[14]}
}

// ToFlatArray exports the 16 scalars in column-major order, ready for
// glUniformMatrix4fv(loc, 1, false, &a[0]).
func (m Mat4) ToFlatArray() [16]float32 {
	return [16]float32(m)
}

// ApproxEqual reports whether every element of m is within eps of other.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// Mgl converts m to a mathgl matrix. Both types are column-major, so this
// is a plain copy.
func (m Mat4) Mgl() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

func Mat4FromMgl(m mgl32.Mat4) Mat4 {
	return Mat4(m)
}

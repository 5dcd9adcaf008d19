package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-5

var approx = cmpopts.EquateApprox(0, tolerance)

func sample() Mat4 {
	return Mat4{
		2, 1, 0, 3,
		0, 1, 4, 1,
		5, 0, 1, 2,
		1, 2, 3, 1,
	}
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got, want := v1.Add(v2), NewVec3(5, 7, 9); got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}
	if got, want := v2.Sub(v1), NewVec3(3, 3, 3); got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}
	if got, want := v1.Dot(v2), float32(32); got != want {
		t.Errorf("Dot: expected %v, got %v", want, got)
	}
	if cross := Vec3Right.Cross(Vec3Up); cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	normalized := NewVec3(3, 0, 0).Normalize()
	if normalized != NewVec3(1, 0, 0) {
		t.Errorf("Normalize: expected (1,0,0), got %v", normalized)
	}
	if length := normalized.Length(); math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
	if z := Vec3Zero.Normalize(); z != Vec3Zero {
		t.Errorf("Normalize: expected zero vector to stay zero, got %v", z)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			expected := float32(0)
			if r == c {
				expected = 1
			}
			if m.At(r, c) != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", r, c, expected, m.At(r, c))
			}
		}
	}

	dirty := sample()
	dirty.Identity()
	if dirty != Mat4Identity() {
		t.Errorf("Identity: expected reset to identity, got %v", dirty)
	}
}

func TestMat4IdentityIsNeutral(t *testing.T) {
	m := sample()

	left := Mat4Identity()
	left.Multiply(m)
	if diff := cmp.Diff(m, left, approx); diff != "" {
		t.Errorf("I*M mismatch (-want +got):\n%s", diff)
	}

	right := m
	right.Multiply(Mat4Identity())
	if diff := cmp.Diff(m, right, approx); diff != "" {
		t.Errorf("M*I mismatch (-want +got):\n%s", diff)
	}
}

func TestMat4MultiplyMatchesMathgl(t *testing.T) {
	a := sample()
	b := a.Transpose()

	got := a
	got.Multiply(b)
	want := Mat4FromMgl(a.Mgl().Mul4(b.Mgl()))
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Multiply mismatch (-want +got):\n%s", diff)
	}
}

func TestMat4MultiplyIsFluent(t *testing.T) {
	m := Mat4Identity()
	if ret := m.Multiply(sample()); ret != &m {
		t.Error("Multiply: expected the receiver to be returned")
	}
	if ret := m.Identity().Translate(1, 2, 3).Rotate(10, 0, 1, 0).Scale(2, 2, 2); ret != &m {
		t.Error("chained composition: expected the receiver to be returned")
	}
}

func TestMat4Translate(t *testing.T) {
	var m Mat4
	m.Identity().Translate(3, 4, 5)

	if m.Translation() != NewVec3(3, 4, 5) {
		t.Errorf("Translate: expected (3,4,5), got %v", m.Translation())
	}
	for i, v := range m {
		switch i {
		case 0, 5, 10, 15:
			if v != 1 {
				t.Errorf("Translate: expected m[%d] = 1, got %v", i, v)
			}
		case 12, 13, 14:
		default:
			if v != 0 {
				t.Errorf("Translate: expected m[%d] = 0, got %v", i, v)
			}
		}
	}

	if p := m.TransformPoint(Vec3Zero); p != NewVec3(3, 4, 5) {
		t.Errorf("Translate: expected origin to move to (3,4,5), got %v", p)
	}
}

func TestMat4Scale(t *testing.T) {
	var m Mat4
	m.Identity().Scale(2, 3, 4)
	want := Mat4{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 1,
	}
	if m != want {
		t.Errorf("Scale: expected %v, got %v", want, m)
	}
}

func TestMat4ComposeMatchesMathgl(t *testing.T) {
	var m Mat4
	m.Identity().
		Translate(1, -2, 3).
		Rotate(30, 1, 0, 0).
		Rotate(45, 0, 1, 0).
		Rotate(60, 0, 0, 1).
		Scale(2, 0.5, 1.5)

	want := mgl32.Translate3D(1, -2, 3).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(60))).
		Mul4(mgl32.Scale3D(2, 0.5, 1.5))

	if diff := cmp.Diff(Mat4FromMgl(want), m, approx); diff != "" {
		t.Errorf("T*Rx*Ry*Rz*S mismatch (-want +got):\n%s", diff)
	}
}

func TestMat4RotateNormalizesAxis(t *testing.T) {
	var unit, long Mat4
	unit.Identity().Rotate(37, 0, 1, 0)
	long.Identity().Rotate(37, 0, 10, 0)
	if !unit.ApproxEqual(long, tolerance) {
		t.Errorf("Rotate: expected axis length not to matter, got %v vs %v", unit, long)
	}

	var arbitrary Mat4
	arbitrary.Identity().Rotate(72, 1, 2, 3)
	want := mgl32.HomogRotate3D(mgl32.DegToRad(72), mgl32.Vec3{1, 2, 3}.Normalize())
	if diff := cmp.Diff(Mat4FromMgl(want), arbitrary, approx); diff != "" {
		t.Errorf("Rotate about (1,2,3) mismatch (-want +got):\n%s", diff)
	}
}

func TestMat4RotateZeroAxisIsNoop(t *testing.T) {
	m := sample()
	before := m
	m.Rotate(90, 0, 0, 0)
	if m != before {
		t.Errorf("Rotate: expected zero axis to leave the matrix unchanged, got %v", m)
	}
}

func TestMat4RotateHalfTurnAboutY(t *testing.T) {
	var m Mat4
	m.Identity().Rotate(180, 0, 1, 0)

	v := NewVec3(1, 1, 1).Normalize()
	got := m.TransformPoint(v)
	want := NewVec3(-v.X, v.Y, -v.Z)
	if !got.ApproxEqual(want, tolerance) {
		t.Errorf("Rotate 180 about Y: expected %v, got %v", want, got)
	}
}

func TestMat4CompositionOrder(t *testing.T) {
	var tr, rt Mat4
	tr.Identity().Translate(1, 0, 0).Rotate(90, 0, 0, 1)
	rt.Identity().Rotate(90, 0, 0, 1).Translate(1, 0, 0)

	if tr.ApproxEqual(rt, tolerance) {
		t.Fatal("translate-then-rotate and rotate-then-translate must differ")
	}
	if got := tr.Translation(); !got.ApproxEqual(NewVec3(1, 0, 0), tolerance) {
		t.Errorf("T*R: expected translation (1,0,0), got %v", got)
	}
	if got := rt.Translation(); !got.ApproxEqual(NewVec3(0, 1, 0), tolerance) {
		t.Errorf("R*T: expected translation (0,1,0), got %v", got)
	}
}

func TestMat4Perspective(t *testing.T) {
	cases := []struct {
		fov, aspect, near, far float32
	}{
		{float32(math.Pi / 4), 16.0 / 9.0, 0.1, 100},
		{float32(math.Pi / 2), 1, 1, 10},
		{0.3, 0.5, 0.01, 5000},
	}
	for _, tc := range cases {
		m := sample()
		m.Perspective(tc.fov, tc.aspect, tc.near, tc.far)

		flat := m.ToFlatArray()
		if len(flat) != 16 {
			t.Fatalf("Perspective: expected 16 elements, got %d", len(flat))
		}
		if flat[11] != -1 {
			t.Errorf("Perspective(%v): expected [11] = -1, got %v", tc, flat[11])
		}
		if flat[15] != 0 {
			t.Errorf("Perspective(%v): expected [15] = 0, got %v", tc, flat[15])
		}
		want := mgl32.Perspective(tc.fov, tc.aspect, tc.near, tc.far)
		if diff := cmp.Diff(Mat4FromMgl(want), m, approx); diff != "" {
			t.Errorf("Perspective(%v) mismatch (-want +got):\n%s", tc, diff)
		}
	}
}

func TestMat4Orthographic(t *testing.T) {
	m := sample()
	m.Orthographic(-2, 4, -1, 3, 0.5, 20)

	want := mgl32.Ortho(-2, 4, -1, 3, 0.5, 20)
	if diff := cmp.Diff(Mat4FromMgl(want), m, approx); diff != "" {
		t.Errorf("Orthographic mismatch (-want +got):\n%s", diff)
	}

	// the corners of the box land on the clip cube
	lo := m.TransformPoint(NewVec3(-2, -1, -0.5))
	hi := m.TransformPoint(NewVec3(4, 3, -20))
	if !lo.ApproxEqual(NewVec3(-1, -1, -1), tolerance) || !hi.ApproxEqual(NewVec3(1, 1, 1), tolerance) {
		t.Errorf("Orthographic: expected corners on the clip cube, got %v and %v", lo, hi)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 2, 5)
	var m Mat4
	m.LookAt(eye, Vec3Zero, Vec3Up)

	if p := m.TransformPoint(eye); !p.ApproxEqual(Vec3Zero, 0.001) {
		t.Errorf("LookAt: expected eye to transform to origin, got %v", p)
	}
	want := mgl32.LookAtV(mgl32.Vec3{0, 2, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	if diff := cmp.Diff(Mat4FromMgl(want), m, approx); diff != "" {
		t.Errorf("LookAt mismatch (-want +got):\n%s", diff)
	}
}

func TestMat4ToFlatArrayIsColumnMajor(t *testing.T) {
	var m Mat4
	m.Identity().Translate(7, 8, 9)
	flat := m.ToFlatArray()
	if flat[12] != 7 || flat[13] != 8 || flat[14] != 9 {
		t.Errorf("ToFlatArray: expected translation in [12..14], got %v", flat)
	}
	if m.At(0, 3) != 7 {
		t.Errorf("At(0,3): expected 7, got %v", m.At(0, 3))
	}
}

func TestMat4TransformDirectionIgnoresTranslation(t *testing.T) {
	var m Mat4
	m.Identity().Translate(5, 5, 5).Rotate(90, 0, 0, 1)

	got := m.TransformDirection(Vec3Right)
	if !got.ApproxEqual(Vec3Up, tolerance) {
		t.Errorf("TransformDirection: expected %v, got %v", Vec3Up, got)
	}
	if n := Vec3Up.Negate(); n != NewVec3(0, -1, 0) {
		t.Errorf("Negate: expected (0,-1,0), got %v", n)
	}
}

func TestAngleConversion(t *testing.T) {
	if got := Radians(180); math.Abs(float64(got)-math.Pi) > tolerance {
		t.Errorf("Radians(180): expected pi, got %v", got)
	}
	if got := Degrees(Radians(42)); math.Abs(float64(got-42)) > 1e-4 {
		t.Errorf("Degrees(Radians(42)): expected 42, got %v", got)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := sample()
	m2 := Mat4Identity()

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4Compose(b *testing.B) {
	var m Mat4
	for i := 0; i < b.N; i++ {
		m.Identity().Translate(1, 2, 3).Rotate(10, 1, 0, 0).Rotate(20, 0, 1, 0).Rotate(30, 0, 0, 1).Scale(2, 2, 2)
	}
}

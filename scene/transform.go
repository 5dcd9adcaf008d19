package scene

import "scenegraph/math"

// Transformable is anything carrying a local transform: position, rotation
// and scale feeding a lazily rebuilt local matrix. Every type embedding
// Transform satisfies it.
type Transformable interface {
	SetPosition(x, y, z float32)
	SetRotation(x, y, z float32)
	SetScale(x, y, z float32)
	SetMatrix(m math.Mat4)
	RecomputeIfDirty() bool
	LocalMatrix() math.Mat4
	Dirty() bool
}

// Transform is the per-object transform state.
//
// The local matrix is a cache of position, rotation and scale. The setters
// only mark it stale; it is rebuilt by RecomputeIfDirty, which traversal
// calls before reading it, or by LocalMatrix. A stale matrix is never
// handed out.
//
// SetMatrix installs a matrix directly. It stays authoritative until the
// next position/rotation/scale setter, after which the matrix is rebuilt
// from those fields alone.
type Transform struct {
	position math.Vec3
	rotation math.Vec3 // degrees about X, then Y, then Z
	scale    math.Vec3

	local math.Mat4
	dirty bool
}

var _ Transformable = (*Transform)(nil)

// NewTransform returns an identity transform. It starts clean: the
// identity local matrix already matches the default fields.
func NewTransform() Transform {
	return Transform{
		position: math.Vec3Zero,
		rotation: math.Vec3Zero,
		scale:    math.Vec3One,
		local:    math.Mat4Identity(),
	}
}

func (t *Transform) SetPosition(x, y, z float32) {
	t.position = math.Vec3{X: x, Y: y, Z: z}
	t.dirty = true
}

// SetRotation sets the rotation in degrees. The angles are applied about
// X, then Y, then Z.
func (t *Transform) SetRotation(x, y, z float32) {
	t.rotation = math.Vec3{X: x, Y: y, Z: z}
	t.dirty = true
}

func (t *Transform) SetScale(x, y, z float32) {
	t.scale = math.Vec3{X: x, Y: y, Z: z}
	t.dirty = true
}

// SetMatrix replaces the local matrix and marks it clean. Position,
// rotation and scale are left as they were and are not derived from m.
func (t *Transform) SetMatrix(m math.Mat4) {
	t.local = m
	t.dirty = false
}

func (t *Transform) Position() math.Vec3 { return t.position }
func (t *Transform) Rotation() math.Vec3 { return t.rotation }
func (t *Transform) Scale() math.Vec3    { return t.scale }

// Dirty reports whether the local matrix is stale.
func (t *Transform) Dirty() bool { return t.dirty }

// RecomputeIfDirty rebuilds the local matrix as T * Rx * Ry * Rz * S when
// it is stale and reports whether it did.
func (t *Transform) RecomputeIfDirty() bool {
	if !t.dirty {
		return false
	}
	p, r, s := t.position, t.rotation, t.scale
	t.local.Identity().
		Translate(p.X, p.Y, p.Z).
		Rotate(r.X, 1, 0, 0).
		Rotate(r.Y, 0, 1, 0).
		Rotate(r.Z, 0, 0, 1).
		Scale(s.X, s.Y, s.Z)
	t.dirty = false
	return true
}

// LocalMatrix returns the up-to-date local matrix, rebuilding it first if
// needed.
func (t *Transform) LocalMatrix() math.Mat4 {
	t.RecomputeIfDirty()
	return t.local
}

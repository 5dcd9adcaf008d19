package scene

import (
	"scenegraph/core"
	"scenegraph/math"
)

// Scene is a root group plus the camera it is viewed through.
type Scene struct {
	Root       *Group
	Camera     *Camera
	ClearColor core.Color

	// Hooks observe every Traverse call. Zero by default.
	Hooks Hooks
}

func NewScene() *Scene {
	return &Scene{
		Root:       NewGroup("Root"),
		ClearColor: core.ColorTransparent,
	}
}

func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

func (s *Scene) Add(n Node) {
	s.Root.Add(n)
}

func (s *Scene) Remove(n Node) {
	s.Root.Remove(n)
}

// Traverse walks the whole scene from the root with the scene's hooks.
func (s *Scene) Traverse(visit Visitor) {
	Walk(s.Root, math.Mat4Identity(), visit, s.Hooks)
}

// VisibleLeaves returns every visible leaf with geometry together with its
// world matrix, in traversal order.
func (s *Scene) VisibleLeaves() []LeafWorld {
	var out []LeafWorld
	s.Traverse(func(n Node, world math.Mat4) {
		l := n.Leaf()
		if l == nil || !l.Visible || l.Geometry == nil {
			return
		}
		out = append(out, LeafWorld{Leaf: l, World: world})
	})
	return out
}

// LeafWorld pairs a leaf with the world matrix it was reached with.
type LeafWorld struct {
	Leaf  *Leaf
	World math.Mat4
}

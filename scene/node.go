package scene

import (
	"github.com/google/uuid"

	"scenegraph/core"
	"scenegraph/math"
)

// Kind tags which variant a Node holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindGroup
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindLeaf:
		return "leaf"
	default:
		return "none"
	}
}

// Node is a member of the scene graph: either a *Group or a *Leaf. Nodes
// compare equal when they refer to the same group or leaf, so they can be
// used directly as identity keys.
type Node struct {
	kind  Kind
	group *Group
	leaf  *Leaf
}

func (n Node) Kind() Kind { return n.kind }

// Group returns the group held by n, or nil.
func (n Node) Group() *Group { return n.group }

// Leaf returns the leaf held by n, or nil.
func (n Node) Leaf() *Leaf { return n.leaf }

func (n Node) IsZero() bool { return n.kind == KindNone }

func (n Node) Name() string {
	switch n.kind {
	case KindGroup:
		return n.group.Name
	case KindLeaf:
		return n.leaf.Name
	}
	return ""
}

func (n Node) ID() uuid.UUID {
	switch n.kind {
	case KindGroup:
		return n.group.ID
	case KindLeaf:
		return n.leaf.ID
	}
	return uuid.Nil
}

// Transformable returns the transform of the held group or leaf.
func (n Node) Transformable() Transformable {
	switch n.kind {
	case KindGroup:
		return n.group
	case KindLeaf:
		return n.leaf
	}
	return nil
}

// Geometry is the raw data a leaf hands to the rendering backend. All
// slices are flat: three floats per vertex.
type Geometry interface {
	RawVertices() []float32
	// RawIndices indexes RawVertices as a triangle list, or is nil when
	// RawVertices already is one.
	RawIndices() []uint32
	// RawLines is a line list, two vertices per segment.
	RawLines() []float32
}

// DrawMode selects the primitive a leaf is drawn with.
type DrawMode int

const (
	DrawTriangles DrawMode = iota
	DrawLines
)

// Leaf is a drawable object at the bottom of the graph.
type Leaf struct {
	Transform
	Name     string
	ID       uuid.UUID
	Geometry Geometry
	Color    core.Color
	DrawMode DrawMode
	Visible  bool
}

var DefaultLeafColor = core.Color{R: 0.7, G: 0, B: 0, A: 1}

func NewLeaf(name string, geometry Geometry) *Leaf {
	return &Leaf{
		Transform: NewTransform(),
		Name:      name,
		ID:        uuid.New(),
		Geometry:  geometry,
		Color:     DefaultLeafColor,
		Visible:   true,
	}
}

func (l *Leaf) Node() Node { return Node{kind: KindLeaf, leaf: l} }

// Group is a transformable node owning an ordered list of children.
//
// A node may be added to more than one group; each parent then produces
// its own world matrix for it. Cycles are not checked when adding, see
// Validate.
type Group struct {
	Transform
	Name string
	ID   uuid.UUID

	children []Node
}

func NewGroup(name string) *Group {
	return &Group{
		Transform: NewTransform(),
		Name:      name,
		ID:        uuid.New(),
	}
}

func (g *Group) Node() Node { return Node{kind: KindGroup, group: g} }

// Add appends child unless it is already a direct child, in which case it
// does nothing. Zero nodes are ignored.
func (g *Group) Add(child Node) {
	if child.IsZero() || g.Contains(child) {
		return
	}
	g.children = append(g.children, child)
}

// Remove drops the first occurrence of child. Removing a node that is not
// a child does nothing.
func (g *Group) Remove(child Node) {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return
		}
	}
}

func (g *Group) Contains(child Node) bool {
	for _, c := range g.children {
		if c == child {
			return true
		}
	}
	return false
}

// Children returns a copy of the direct children in insertion order.
func (g *Group) Children() []Node {
	out := make([]Node, len(g.children))
	copy(out, g.children)
	return out
}

func (g *Group) Len() int { return len(g.children) }

// Find returns the first node named name in depth-first pre-order,
// starting with g itself.
func (g *Group) Find(name string) (Node, bool) {
	if g.Name == name {
		return g.Node(), true
	}
	for _, c := range g.children {
		switch c.kind {
		case KindGroup:
			if found, ok := c.group.Find(name); ok {
				return found, true
			}
		case KindLeaf:
			if c.leaf.Name == name {
				return c, true
			}
		}
	}
	return Node{}, false
}

// WorldPosition returns the translation part of a world matrix, the point
// a node's local origin maps to.
func WorldPosition(world math.Mat4) math.Vec3 {
	return world.Translation()
}

package scene

import "scenegraph/math"

// Visitor receives each node with its world matrix. It is called
// synchronously, once per visited node, before traversal returns.
//
// Adding or removing children of a group that is being traversed from
// inside the visitor is not supported.
type Visitor func(n Node, world math.Mat4)

// Traverse walks the graph rooted at g depth-first, pre-order, starting
// from the identity. See TraverseFrom.
func (g *Group) Traverse(visit Visitor) {
	g.TraverseFrom(math.Mat4Identity(), visit)
}

// TraverseFrom walks the graph rooted at g with parent as the world matrix
// of g's parent.
//
// A group's world matrix is parent * local. The group is visited first,
// then its children in insertion order: child groups recurse with the
// group's world matrix as their parent, child leaves are visited with
// world * leaf local. Stale local matrices are rebuilt on the way.
//
// A cyclic graph recurses without bound; use Validate to check one built
// from untrusted input.
func (g *Group) TraverseFrom(parent math.Mat4, visit Visitor) {
	Walk(g, parent, visit, Hooks{})
}

// Walk is TraverseFrom with observability hooks.
func Walk(root *Group, parent math.Mat4, visit Visitor, hooks Hooks) {
	walk(root, parent, 0, visit, &hooks)
}

func walk(g *Group, parent math.Mat4, depth int, visit Visitor, hooks *Hooks) {
	self := g.Node()
	if g.RecomputeIfDirty() {
		hooks.recomputed(self, g.local)
	}
	world := parent.Mul(g.local)
	hooks.visited(self, depth, world)
	visit(self, world)

	for _, child := range g.children {
		switch child.kind {
		case KindGroup:
			walk(child.group, world, depth+1, visit, hooks)
		case KindLeaf:
			l := child.leaf
			if l.RecomputeIfDirty() {
				hooks.recomputed(child, l.local)
			}
			leafWorld := world.Mul(l.local)
			hooks.visited(child, depth+1, leafWorld)
			visit(child, leafWorld)
		}
	}
}

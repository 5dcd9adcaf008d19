package scene

import "github.com/pkg/errors"

// ErrCycle is returned by Validate when a group is its own ancestor.
var ErrCycle = errors.New("scene: group hierarchy contains a cycle")

// Validate checks that the graph rooted at g is acyclic. Traversal does
// not do this on its own. Sharing a node between several groups is
// allowed and is not reported.
func (g *Group) Validate() error {
	return validate(g, make(map[*Group]bool), make(map[*Group]bool))
}

func validate(g *Group, onPath, done map[*Group]bool) error {
	if onPath[g] {
		return errors.Wrapf(ErrCycle, "group %q", g.Name)
	}
	if done[g] {
		return nil
	}
	onPath[g] = true
	for _, c := range g.children {
		if c.kind != KindGroup {
			continue
		}
		if err := validate(c.group, onPath, done); err != nil {
			return err
		}
	}
	delete(onPath, g)
	done[g] = true
	return nil
}

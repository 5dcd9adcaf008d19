package scene

import (
	"log"

	"scenegraph/math"
)

// Hooks observe a traversal. Nil callbacks are skipped, so the zero value
// observes nothing.
type Hooks struct {
	// OnRecompute fires after a stale local matrix was rebuilt.
	OnRecompute func(n Node, local math.Mat4)
	// OnVisit fires right before the visitor sees n. The root is at depth 0.
	OnVisit func(n Node, depth int, world math.Mat4)
}

func (h *Hooks) recomputed(n Node, local math.Mat4) {
	if h.OnRecompute != nil {
		h.OnRecompute(n, local)
	}
}

func (h *Hooks) visited(n Node, depth int, world math.Mat4) {
	if h.OnVisit != nil {
		h.OnVisit(n, depth, world)
	}
}

// LogHooks reports recomputes and visits to l.
func LogHooks(l *log.Logger) Hooks {
	return Hooks{
		OnRecompute: func(n Node, local math.Mat4) {
			l.Printf("scene: recomputed %s %q (%s) local=%v", n.Kind(), n.Name(), n.ID(), local.ToFlatArray())
		},
		OnVisit: func(n Node, depth int, world math.Mat4) {
			l.Printf("scene: visit %s %q at depth %d world position %v", n.Kind(), n.Name(), depth, WorldPosition(world))
		},
	}
}

package main

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"scenegraph/config"
	"scenegraph/core"
	"scenegraph/geometry"
	"scenegraph/math"
	"scenegraph/platform"
	"scenegraph/scene"
)

var (
	gridColor   = core.ColorGray
	cubeColor   = core.Color{R: 0.7, G: 0, B: 0, A: 1}
	sphereColor = core.Color{R: 0, G: 0.5, B: 1, A: 1}
	modelColor  = core.Color{R: 0.8, G: 0.8, B: 0.3, A: 1}
)

const (
	translateStep = 0.1
	rotateStep    = 5
	scaleStep     = 0.1
	orbitStep     = 0.05
	zoomStep      = 0.5
)

// Sandbox is the interactive demo scene: toggleable primitives, user
// groups, and a set of slider values applied to the last added object.
type Sandbox struct {
	Scene     *scene.Scene
	Camera    *scene.OrbitCamera
	Wireframe bool

	// Sliders holds the transform applied to the last added object.
	Sliders config.TransformConfig
	// Axis is the slider axis the arrow keys act on: 0, 1 or 2.
	Axis int

	Groups []*scene.Group

	grid, cube, sphere *scene.Leaf
	models             *scene.Group
	lastObject         *scene.Leaf
	orthoSize          float32

	log *log.Logger
}

func NewSandbox(cfg config.Config, logger *log.Logger) (*Sandbox, error) {
	sb := &Sandbox{
		Scene:     scene.NewScene(),
		Wireframe: cfg.Sandbox.Wireframe,
		Sliders:   cfg.Sandbox.Transform,
		grid:      newLeaf("XYGrid", geometry.DefaultXYGrid(), gridColor),
		cube:      newLeaf("Cube", geometry.NewCube(1), cubeColor),
		sphere:    newLeaf("Sphere", geometry.DefaultSphere(), sphereColor),
		models:    scene.NewGroup("Models"),
		orthoSize: cfg.Camera.OrthoSize,
		log:       logger,
	}
	sb.grid.DrawMode = scene.DrawLines

	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	sb.Camera = newOrbitCamera(cfg.Camera, aspect)
	sb.Scene.SetCamera(&sb.Camera.Camera)

	for _, path := range cfg.Sandbox.Models {
		meshes, err := geometry.Load(path)
		if err != nil {
			return nil, errors.Wrap(err, "sandbox model")
		}
		for _, m := range meshes {
			leaf := newLeaf(m.Name, m, modelColor)
			sb.models.Add(leaf.Node())
			sb.lastObject = leaf
		}
		sb.log.Printf("loaded %d meshes from %s", len(meshes), path)
	}
	if sb.models.Len() > 0 {
		sb.Scene.Add(sb.models.Node())
	}

	if cfg.Sandbox.ShowGrid {
		sb.ToggleGrid()
	}
	if cfg.Sandbox.ShowCube {
		sb.ToggleCube()
	}
	if cfg.Sandbox.ShowSphere {
		sb.ToggleSphere()
	}
	sb.ApplyTransformation()
	return sb, nil
}

func newLeaf(name string, g scene.Geometry, c core.Color) *scene.Leaf {
	leaf := scene.NewLeaf(name, g)
	leaf.Color = c
	return leaf
}

// newOrbitCamera places an orbit camera so that it starts at cfg.Position
// looking at cfg.Target.
func newOrbitCamera(cfg config.CameraConfig, aspect float32) *scene.OrbitCamera {
	target := math.NewVec3(cfg.Target[0], cfg.Target[1], cfg.Target[2])
	offset := math.NewVec3(cfg.Position[0], cfg.Position[1], cfg.Position[2]).Sub(target)
	dist := offset.Length()
	if dist == 0 {
		offset, dist = math.NewVec3(0, 0, 5), 5
	}

	cam := scene.NewOrbitCamera(target, dist, math.Radians(cfg.FOV), aspect)
	cam.SetClipPlanes(cfg.Near, cfg.Far)
	cam.Yaw = math32.Atan2(offset.X, offset.Z)
	cam.Pitch = math32.Atan2(offset.Y, math32.Sqrt(offset.X*offset.X+offset.Z*offset.Z))
	cam.UpdatePosition()
	if cfg.Orthographic {
		cam.SetOrthographic(cfg.OrthoSize)
	}
	return cam
}

// LastObject is the leaf the sliders act on, or nil.
func (sb *Sandbox) LastObject() *scene.Leaf { return sb.lastObject }

func (sb *Sandbox) toggle(leaf *scene.Leaf) bool {
	n := leaf.Node()
	if sb.Scene.Root.Contains(n) {
		sb.Scene.Remove(n)
		sb.log.Printf("removed %s", leaf.Name)
		return false
	}
	sb.Scene.Add(n)
	sb.log.Printf("added %s", leaf.Name)
	return true
}

func (sb *Sandbox) ToggleGrid() bool { return sb.toggle(sb.grid) }

// ToggleCube shows or hides the cube. Showing it makes it the last object.
func (sb *Sandbox) ToggleCube() bool {
	shown := sb.toggle(sb.cube)
	if shown {
		sb.lastObject = sb.cube
	}
	return shown
}

// ToggleSphere shows or hides the sphere. Showing it makes it the last object.
func (sb *Sandbox) ToggleSphere() bool {
	shown := sb.toggle(sb.sphere)
	if shown {
		sb.lastObject = sb.sphere
	}
	return shown
}

// ToggleModels shows or hides every mesh loaded from the configured model files.
func (sb *Sandbox) ToggleModels() bool {
	if sb.models.Len() == 0 {
		return false
	}
	n := sb.models.Node()
	if sb.Scene.Root.Contains(n) {
		sb.Scene.Remove(n)
		return false
	}
	sb.Scene.Add(n)
	return true
}

func (sb *Sandbox) ToggleWireframe() bool {
	sb.Wireframe = !sb.Wireframe
	return sb.Wireframe
}

func (sb *Sandbox) ToggleOrthographic() bool {
	if sb.Camera.IsOrthographic() {
		sb.Camera.SetPerspective()
		return false
	}
	sb.Camera.SetOrthographic(sb.orthoSize)
	return true
}

// CreateGroup appends a new empty group to the scene.
func (sb *Sandbox) CreateGroup() *scene.Group {
	g := scene.NewGroup(fmt.Sprintf("Group %d", len(sb.Groups)+1))
	sb.Groups = append(sb.Groups, g)
	sb.Scene.Add(g.Node())
	sb.log.Printf("created %s", g.Name)
	return g
}

// AddToLastGroup adds the last object to the most recent group. The object
// keeps its other parents, so it is drawn once per parent.
func (sb *Sandbox) AddToLastGroup() bool {
	if sb.lastObject == nil || len(sb.Groups) == 0 {
		return false
	}
	g := sb.Groups[len(sb.Groups)-1]
	g.Add(sb.lastObject.Node())
	sb.log.Printf("added %s to %s (%d children)", sb.lastObject.Name, g.Name, g.Len())
	return true
}

// RemoveFromLastGroup drops the newest child of the most recent group.
func (sb *Sandbox) RemoveFromLastGroup() bool {
	if len(sb.Groups) == 0 {
		return false
	}
	g := sb.Groups[len(sb.Groups)-1]
	children := g.Children()
	if len(children) == 0 {
		return false
	}
	last := children[len(children)-1]
	g.Remove(last)
	sb.log.Printf("removed %s from %s", last.Name(), g.Name)
	return true
}

// ApplyTransformation copies the sliders onto the last object.
func (sb *Sandbox) ApplyTransformation() {
	if sb.lastObject == nil {
		return
	}
	p, r, s := sb.Sliders.Position, sb.Sliders.Rotation, sb.Sliders.Scale
	sb.lastObject.SetPosition(p[0], p[1], p[2])
	sb.lastObject.SetRotation(r[0], r[1], r[2])
	sb.lastObject.SetScale(s, s, s)
	sb.log.Printf("transform %s: position=%v rotation=%v scale=%v", sb.lastObject.Name, p, r, s)
}

func (sb *Sandbox) NudgeTranslate(delta float32) {
	v := &sb.Sliders.Position[sb.Axis]
	*v = clamp(snap(*v+delta, translateStep), config.MinTranslate, config.MaxTranslate)
	sb.ApplyTransformation()
}

func (sb *Sandbox) NudgeRotate(delta float32) {
	v := &sb.Sliders.Rotation[sb.Axis]
	*v = clamp(*v+delta, 0, config.MaxRotation)
	sb.ApplyTransformation()
}

func (sb *Sandbox) NudgeScale(delta float32) {
	v := &sb.Sliders.Scale
	*v = clamp(snap(*v+delta, scaleStep), config.MinScale, config.MaxScale)
	sb.ApplyTransformation()
}

// HandleKey maps a key press onto a sandbox action.
func (sb *Sandbox) HandleKey(key int, shift bool) {
	switch key {
	case platform.KeyG:
		sb.ToggleGrid()
	case platform.Key1:
		sb.ToggleCube()
	case platform.Key2:
		sb.ToggleSphere()
	case platform.Key3:
		sb.ToggleModels()
	case platform.KeyW:
		sb.ToggleWireframe()
	case platform.KeyO:
		sb.ToggleOrthographic()
	case platform.KeyV:
		sb.CreateGroup()
	case platform.KeyA:
		sb.AddToLastGroup()
	case platform.KeyR:
		sb.RemoveFromLastGroup()
	case platform.KeyX:
		sb.Axis = 0
	case platform.KeyY:
		sb.Axis = 1
	case platform.KeyZ:
		sb.Axis = 2
	case platform.KeyLeft, platform.KeyRight:
		dir := float32(1)
		if key == platform.KeyLeft {
			dir = -1
		}
		if shift {
			sb.Camera.Orbit(dir*orbitStep, 0)
		} else {
			sb.NudgeTranslate(dir * translateStep)
		}
	case platform.KeyUp, platform.KeyDown:
		dir := float32(1)
		if key == platform.KeyDown {
			dir = -1
		}
		if shift {
			sb.Camera.Orbit(0, dir*orbitStep)
		} else {
			sb.NudgeRotate(dir * rotateStep)
		}
	case platform.KeyPageUp:
		sb.NudgeScale(scaleStep)
	case platform.KeyPageDown:
		sb.NudgeScale(-scaleStep)
	case platform.KeyEqual:
		sb.Camera.Zoom(-zoomStep)
	case platform.KeyMinus:
		sb.Camera.Zoom(zoomStep)
	}
}

func snap(v, step float32) float32 {
	return math32.Floor(v/step+0.5) * step
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

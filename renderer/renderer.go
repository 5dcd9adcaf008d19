package renderer

import (
	"log"

	"github.com/pkg/errors"

	"scenegraph/internal/opengl"
	"scenegraph/math"
	"scenegraph/platform"
	"scenegraph/scene"
)

// DrawCall is one leaf ready for the backend.
type DrawCall struct {
	Leaf  *scene.Leaf
	Model math.Mat4
	MVP   math.Mat4
}

// BuildDrawList walks s once and returns a draw call for every visible leaf
// in traversal order. Without a camera the world matrix is used as the MVP,
// so geometry is drawn straight into clip space.
func BuildDrawList(s *scene.Scene) []DrawCall {
	vp := math.Mat4Identity()
	if s.Camera != nil {
		vp = s.Camera.GetViewProjectionMatrix()
	}

	leaves := s.VisibleLeaves()
	calls := make([]DrawCall, 0, len(leaves))
	for _, lw := range leaves {
		calls = append(calls, DrawCall{
			Leaf:  lw.Leaf,
			Model: lw.World,
			MVP:   vp.Mul(lw.World),
		})
	}
	return calls
}

// RenderEngine is the high-level renderer that drives the OpenGL backend.
type RenderEngine struct {
	gl     *opengl.Renderer
	window *platform.Window
	Scene  *scene.Scene

	Wireframe bool

	// Per-frame stats (populated during Render)
	lastObjects  int
	lastVertices int
}

func NewRenderEngine(window *platform.Window) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create OpenGL renderer")
	}

	fbW, fbH := window.GetFramebufferSize()
	glRenderer.SetViewport(fbW, fbH)

	log.Println("Render engine initialized (OpenGL)")
	return &RenderEngine{
		gl:     glRenderer,
		window: window,
	}, nil
}

func (re *RenderEngine) SetScene(s *scene.Scene) {
	re.Scene = s
}

// Render clears the frame and draws every visible leaf of the scene.
func (re *RenderEngine) Render() error {
	if re.Scene == nil {
		return errors.New("no scene")
	}

	re.gl.Clear(re.Scene.ClearColor)

	objects, vertices := 0, 0
	for _, call := range BuildDrawList(re.Scene) {
		re.gl.DrawLeaf(call.Leaf, call.MVP, re.Wireframe)
		objects++
		vertices += len(call.Leaf.Geometry.RawVertices()) / 3
	}
	re.lastObjects = objects
	re.lastVertices = vertices
	return nil
}

func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

func (re *RenderEngine) Resize(width, height int) {
	re.gl.SetViewport(width, height)
	if re.Scene != nil && re.Scene.Camera != nil {
		re.Scene.Camera.UpdateAspectRatio(float32(width), float32(height))
	}
}

func (re *RenderEngine) SetWireframe(enabled bool) { re.Wireframe = enabled }
func (re *RenderEngine) IsWireframe() bool         { return re.Wireframe }

// Release frees the GPU buffers of a leaf that left the scene.
func (re *RenderEngine) Release(leaf *scene.Leaf) {
	re.gl.Release(leaf)
}

func (re *RenderEngine) Destroy() {
	re.gl.Destroy()
}

// DrawStats returns stats from the most recent Render call.
func (re *RenderEngine) DrawStats() (objects, vertices, uploaded int) {
	return re.lastObjects, re.lastVertices, re.gl.Uploaded()
}

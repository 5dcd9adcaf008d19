package opengl

import (
	"log"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"scenegraph/core"
	"scenegraph/math"
	"scenegraph/scene"
)

// gpuBuffer is one uploaded vertex list, optionally indexed.
type gpuBuffer struct {
	VAO     uint32
	VBO     uint32
	EBO     uint32
	Count   int32
	Indexed bool
}

// GPUGeometry holds the filled and outline buffers of a leaf's geometry.
// Either may be nil when the geometry has nothing of that kind.
type GPUGeometry struct {
	source    scene.Geometry
	Triangles *gpuBuffer
	Lines     *gpuBuffer
}

// Renderer is the OpenGL rendering backend.
type Renderer struct {
	program uint32

	matrixLoc int32
	colorLoc  int32

	viewportW int32
	viewportH int32

	gpu map[*scene.Leaf]*GPUGeometry
}

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 vertexPosition;

uniform mat4 uMatrix;

void main() {
    gl_Position = uMatrix * vec4(vertexPosition, 1.0);
}
` + "\x00"

const fragSrc = `
#version 410 core
uniform vec3 color;

out vec4 outColor;

void main() {
    outColor = vec4(color, 1.0);
}
` + "\x00"

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize OpenGL")
	}
	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, errors.Wrap(err, "shader compile")
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &Renderer{
		program:   prog,
		matrixLoc: gl.GetUniformLocation(prog, gl.Str("uMatrix\x00")),
		colorLoc:  gl.GetUniformLocation(prog, gl.Str("color\x00")),
		gpu:       make(map[*scene.Leaf]*GPUGeometry),
	}, nil
}

func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawLeaf draws leaf with the given model-view-projection matrix. Line
// leaves and wireframe mode draw the outline buffer, everything else the
// filled triangles.
func (r *Renderer) DrawLeaf(leaf *scene.Leaf, mvp math.Mat4, wireframe bool) {
	g := r.ensureUploaded(leaf)
	if g == nil {
		return
	}

	buf, primitive := g.Triangles, uint32(gl.TRIANGLES)
	if wireframe || leaf.DrawMode == scene.DrawLines || buf == nil {
		buf, primitive = g.Lines, gl.LINES
	}
	if buf == nil {
		return
	}

	flat := mvp.ToFlatArray()
	rgb := leaf.Color.RGB()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.matrixLoc, 1, false, &flat[0])
	gl.Uniform3f(r.colorLoc, rgb[0], rgb[1], rgb[2])

	gl.BindVertexArray(buf.VAO)
	if buf.Indexed {
		gl.DrawElements(primitive, buf.Count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(primitive, 0, buf.Count)
	}
	gl.BindVertexArray(0)
}

// Release frees the GPU buffers uploaded for leaf.
func (r *Renderer) Release(leaf *scene.Leaf) {
	if g, ok := r.gpu[leaf]; ok {
		g.Triangles.delete()
		g.Lines.delete()
		delete(r.gpu, leaf)
	}
}

// Uploaded reports how many leaves currently hold GPU buffers.
func (r *Renderer) Uploaded() int { return len(r.gpu) }

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for leaf := range r.gpu {
		r.Release(leaf)
	}
	gl.DeleteProgram(r.program)
}

// ensureUploaded returns the buffers for leaf, uploading them on first use
// and again whenever the leaf's geometry has been swapped.
func (r *Renderer) ensureUploaded(leaf *scene.Leaf) *GPUGeometry {
	if g, ok := r.gpu[leaf]; ok {
		if g.source == leaf.Geometry {
			return g
		}
		r.Release(leaf)
	}
	if leaf.Geometry == nil {
		return nil
	}

	geom := leaf.Geometry
	g := &GPUGeometry{
		source:    geom,
		Triangles: upload(geom.RawVertices(), geom.RawIndices()),
		Lines:     upload(geom.RawLines(), nil),
	}
	r.gpu[leaf] = g
	return g
}

func upload(vertices []float32, indices []uint32) *gpuBuffer {
	if len(vertices) == 0 {
		return nil
	}

	buf := &gpuBuffer{Count: int32(len(vertices) / 3)}

	gl.GenVertexArrays(1, &buf.VAO)
	gl.GenBuffers(1, &buf.VBO)
	gl.BindVertexArray(buf.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	if len(indices) > 0 {
		buf.Indexed = true
		buf.Count = int32(len(indices))
		gl.GenBuffers(1, &buf.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return buf
}

func (b *gpuBuffer) delete() {
	if b == nil {
		return
	}
	gl.DeleteVertexArrays(1, &b.VAO)
	gl.DeleteBuffers(1, &b.VBO)
	if b.Indexed {
		gl.DeleteBuffers(1, &b.EBO)
	}
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, errors.Wrap(err, "vertex")
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, errors.Wrap(err, "fragment")
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		info := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(info))
		return 0, errors.Errorf("link failed: %v", info)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		info := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(info))
		return 0, errors.Errorf("compile failed: %v", info)
	}
	return shader, nil
}

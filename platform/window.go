// Package platform owns the GLFW window and its OpenGL context.
package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"scenegraph/core"
)

func init() {
	// GLFW and OpenGL calls must come from the main thread.
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

// NewWindow opens a window with a current OpenGL 4.1 core context.
func NewWindow(config core.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize GLFW")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to create window")
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) Close() {
	w.Handle.SetShouldClose(true)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

// KeyCallback receives key presses and auto-repeats.
type KeyCallback func(key int, shift bool)

func (w *Window) SetKeyCallback(cb KeyCallback) {
	w.Handle.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		cb(int(key), mods&glfw.ModShift != 0)
	})
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

const (
	KeyMinus    = int(glfw.KeyMinus)
	KeyEqual    = int(glfw.KeyEqual)
	Key1        = int(glfw.Key1)
	Key2        = int(glfw.Key2)
	Key3        = int(glfw.Key3)
	KeyA        = int(glfw.KeyA)
	KeyG        = int(glfw.KeyG)
	KeyO        = int(glfw.KeyO)
	KeyR        = int(glfw.KeyR)
	KeyV        = int(glfw.KeyV)
	KeyW        = int(glfw.KeyW)
	KeyX        = int(glfw.KeyX)
	KeyY        = int(glfw.KeyY)
	KeyZ        = int(glfw.KeyZ)
	KeyEscape   = int(glfw.KeyEscape)
	KeyRight    = int(glfw.KeyRight)
	KeyLeft     = int(glfw.KeyLeft)
	KeyDown     = int(glfw.KeyDown)
	KeyUp       = int(glfw.KeyUp)
	KeyPageUp   = int(glfw.KeyPageUp)
	KeyPageDown = int(glfw.KeyPageDown)
)

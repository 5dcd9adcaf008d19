package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"scenegraph/config"
	"scenegraph/platform"
	"scenegraph/renderer"
	"scenegraph/scene"
)

func main() {
	configPath := flag.String("config", "sandbox.yaml", "path to the sandbox YAML config")
	traceGraph := flag.Bool("trace", false, "log every matrix recompute and node visit")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if err := run(*configPath, *traceGraph, logger); err != nil {
		logger.Fatal(err)
	}
	logger.Println("Exiting...")
}

// run owns the window for its whole lifetime so the deferred cleanup also
// happens on error paths.
func run(configPath string, traceGraph bool, logger *log.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "config")
	}

	sandbox, err := NewSandbox(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "sandbox")
	}
	if traceGraph {
		sandbox.Scene.Hooks = scene.LogHooks(logger)
	}
	if err := sandbox.Scene.Root.Validate(); err != nil {
		return errors.Wrap(err, "scene")
	}

	window, err := platform.NewWindow(cfg.Window)
	if err != nil {
		return errors.Wrap(err, "window")
	}
	defer window.Destroy()

	renderEngine, err := renderer.NewRenderEngine(window)
	if err != nil {
		return errors.Wrap(err, "renderer")
	}
	defer renderEngine.Destroy()
	renderEngine.SetScene(sandbox.Scene)

	window.SetKeyCallback(func(key int, shift bool) {
		if key == platform.KeyEscape {
			window.Close()
			return
		}
		sandbox.HandleKey(key, shift)
	})

	printControls()

	fbW, fbH := window.GetFramebufferSize()
	renderEngine.Resize(fbW, fbH)

	frameCount := 0
	lastTime := time.Now()

	for !window.ShouldClose() {
		window.PollEvents()

		if w, h := window.GetFramebufferSize(); w != fbW || h != fbH {
			fbW, fbH = w, h
			if w > 0 && h > 0 {
				renderEngine.Resize(w, h)
			}
		}

		renderEngine.SetWireframe(sandbox.Wireframe)
		if err := renderEngine.Render(); err != nil {
			logger.Printf("render: %v", err)
		}
		renderEngine.Present()

		frameCount++
		if elapsed := time.Since(lastTime); elapsed >= time.Second {
			objects, vertices, uploaded := renderEngine.DrawStats()
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | objects: %d verts: %d gpu: %d",
				cfg.Window.Title, frameCount, objects, vertices, uploaded))
			frameCount = 0
			lastTime = time.Now()
		}
	}
	return nil
}

func printControls() {
	fmt.Println("SCENE:")
	fmt.Println("  G / 1 / 2 / 3  - Toggle grid / cube / sphere / models")
	fmt.Println("  W              - Toggle wireframe")
	fmt.Println("  O              - Toggle orthographic projection")
	fmt.Println("GROUPS:")
	fmt.Println("  V              - Create a new group")
	fmt.Println("  A              - Add the last object to the last group")
	fmt.Println("  R              - Remove the newest object from the last group")
	fmt.Println("TRANSFORM (last object):")
	fmt.Println("  X / Y / Z      - Select axis")
	fmt.Println("  Left / Right   - Translate along the axis")
	fmt.Println("  Up / Down      - Rotate about the axis")
	fmt.Println("  PgUp / PgDn    - Scale")
	fmt.Println("CAMERA:")
	fmt.Println("  Shift + arrows - Orbit")
	fmt.Println("  - / =          - Zoom out / in")
	fmt.Println("EXIT: ESC")
}

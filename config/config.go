// Package config loads the sandbox settings from a YAML file.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"scenegraph/core"
)

type Config struct {
	Window  core.WindowConfig `yaml:"window"`
	Camera  CameraConfig      `yaml:"camera"`
	Sandbox SandboxConfig     `yaml:"sandbox"`
}

type CameraConfig struct {
	// FOV is the vertical field of view in degrees.
	FOV      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`

	Orthographic bool `yaml:"orthographic"`
	// OrthoSize is half the visible height of the orthographic view.
	OrthoSize float32 `yaml:"ortho_size"`
}

type SandboxConfig struct {
	ShowGrid   bool `yaml:"show_grid"`
	ShowCube   bool `yaml:"show_cube"`
	ShowSphere bool `yaml:"show_sphere"`
	Wireframe  bool `yaml:"wireframe"`

	// Transform is applied to the last added object on startup.
	Transform TransformConfig `yaml:"transform"`

	// Models are .obj, .gltf or .glb files whose meshes are added to the scene.
	Models []string `yaml:"models"`
}

type TransformConfig struct {
	Position [3]float32 `yaml:"position"`
	// Rotation is in degrees about X, Y and Z.
	Rotation [3]float32 `yaml:"rotation"`
	Scale    float32    `yaml:"scale"`
}

// Slider limits of the sandbox controls.
const (
	MinScale     = -2
	MaxScale     = 2
	MinTranslate = -5
	MaxTranslate = 5
	MaxRotation  = 360
)

func Default() Config {
	return Config{
		Window: core.DefaultWindowConfig(),
		Camera: CameraConfig{
			FOV:       45,
			Near:      0.1,
			Far:       100,
			Position:  [3]float32{0, 0, 5},
			OrthoSize: 3,
		},
		Sandbox: SandboxConfig{
			ShowGrid:  true,
			Transform: TransformConfig{Scale: 1},
		},
	}
}

// Load reads path over the defaults. A missing or empty file yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "open config %q", path)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "decode config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return errors.Errorf("camera fov %v must be in (0, 180) degrees", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.Errorf("camera clip range [%v, %v] is invalid", c.Camera.Near, c.Camera.Far)
	}
	// also needed in perspective mode: the view can switch at runtime
	if c.Camera.OrthoSize <= 0 {
		return errors.Errorf("camera ortho_size %v must be positive", c.Camera.OrthoSize)
	}

	tr := c.Sandbox.Transform
	if tr.Scale < MinScale || tr.Scale > MaxScale {
		return errors.Errorf("sandbox scale %v outside [%d, %d]", tr.Scale, MinScale, MaxScale)
	}
	for i, p := range tr.Position {
		if p < MinTranslate || p > MaxTranslate {
			return errors.Errorf("sandbox position[%d] %v outside [%d, %d]", i, p, MinTranslate, MaxTranslate)
		}
	}
	for i, r := range tr.Rotation {
		if r < 0 || r > MaxRotation {
			return errors.Errorf("sandbox rotation[%d] %v outside [0, %d]", i, r, MaxRotation)
		}
	}
	return nil
}

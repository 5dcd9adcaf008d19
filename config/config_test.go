package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Sandbox.ShowGrid)
	assert.False(t, cfg.Sandbox.ShowCube)
	assert.Equal(t, float32(1), cfg.Sandbox.Transform.Scale)
	assert.Equal(t, 512, cfg.Window.Width)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyFileGivesDefaults(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"empty":        "",
		"comment only": "# nothing set yet\n",
	} {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, body))
			require.NoError(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
window:
  width: 800
  title: demo
camera:
  fov: 60
  position: [1, 2, 10]
sandbox:
  show_cube: true
  wireframe: true
  transform:
    position: [0, 1.5, 0]
    rotation: [0, 90, 0]
    scale: 2
  models: [a.glb]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 512, cfg.Window.Height, "unset keys keep their default")
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, float32(60), cfg.Camera.FOV)
	assert.Equal(t, [3]float32{1, 2, 10}, cfg.Camera.Position)
	assert.True(t, cfg.Sandbox.ShowGrid)
	assert.True(t, cfg.Sandbox.ShowCube)
	assert.True(t, cfg.Sandbox.Wireframe)
	assert.Equal(t, TransformConfig{
		Position: [3]float32{0, 1.5, 0},
		Rotation: [3]float32{0, 90, 0},
		Scale:    2,
	}, cfg.Sandbox.Transform)
	assert.Equal(t, []string{"a.glb"}, cfg.Sandbox.Models)
}

func TestLoad_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"malformed":   "window: [",
		"fov":         "camera: {fov: 190}",
		"clip range":  "camera: {near: 5, far: 1}",
		"scale":       "sandbox: {transform: {scale: 3}}",
		"translation": "sandbox: {transform: {position: [0, 6, 0], scale: 1}}",
		"rotation":    "sandbox: {transform: {rotation: [-1, 0, 0], scale: 1}}",
		"window size": "window: {width: 0}",
		"ortho size":  "camera: {ortho_size: 0}",
	}
	for name, body := range cases {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

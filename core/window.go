package core

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      512,
		Height:     512,
		Title:      "Scene Graph Sandbox",
		Resizable:  true,
		VSync:      true,
		Fullscreen: false,
	}
}

// Package config loads the viewer configuration from a YAML file. Every
// field has a sensible default; a missing file is not an error, so the
// viewer runs out of the box.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting LightingConfig `yaml:"lighting"`
	Textures TextureConfig  `yaml:"textures"`
	Export   ExportConfig   `yaml:"export"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Speed    float32    `yaml:"speed"`
	FOV      float32    `yaml:"fov"`
}

type LightConfig struct {
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
}

type LightingConfig struct {
	Key  LightConfig `yaml:"key"`
	Fill LightConfig `yaml:"fill"`
	// OrbitKeyLight spins the key light around the scene center.
	OrbitKeyLight bool    `yaml:"orbit_key_light"`
	OrbitSpeed    float32 `yaml:"orbit_speed"`
}

// TextureConfig maps scene objects to image files on disk.
type TextureConfig struct {
	Dir      string `yaml:"dir"`
	Plane    string `yaml:"plane"`
	Case     string `yaml:"case"`
	Logo     string `yaml:"logo"`
	Cylinder string `yaml:"cylinder"`
	Sphere   string `yaml:"sphere"`
	Cube     string `yaml:"cube"`
}

type ExportConfig struct {
	// Dir receives glTF snapshots of the generated meshes.
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "3D Scene",
			VSync:  true,
		},
		Camera: CameraConfig{
			Position: [3]float32{2, 2, 12},
			Speed:    2.5,
			FOV:      45,
		},
		Lighting: LightingConfig{
			Key: LightConfig{
				Position:  [3]float32{1.5, 2, 10},
				Color:     [3]float32{1, 1, 1},
				Intensity: 1,
			},
			Fill: LightConfig{
				Position:  [3]float32{5, 1, -1},
				Color:     [3]float32{1, 1, 1},
				Intensity: 0.2,
			},
			OrbitKeyLight: true,
			OrbitSpeed:    0.5,
		},
		Textures: TextureConfig{
			Dir:      "assets",
			Plane:    "wood.png",
			Case:     "case.png",
			Logo:     "logo.png",
			Cylinder: "label.png",
			Sphere:   "rubber.png",
			Cube:     "cardboard.png",
		},
		Export: ExportConfig{
			Dir: "export",
		},
	}
}

// Load reads the file at path, layering it over the defaults. If the file
// does not exist the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}

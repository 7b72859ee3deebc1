// Package config loads turntable settings from an optional JSON file and
// merges CLI flag overrides on top.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	OutputDir string `json:"output_dir"`
	Texture   string `json:"texture"`

	Frames      int        `json:"frames"`
	Size        int        `json:"size"`
	Supersample int        `json:"supersample"`
	Workers     int        `json:"workers"`
	Axis        [3]float64 `json:"axis"`

	// TiltDeg is a pointer so an explicit 0 survives defaulting.
	TiltDeg *float64 `json:"tilt_deg"`
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings. TiltDeg is
// nil when the flag was not passed.
type Flags struct {
	OutputDir string
	Texture   string
	Frames    int
	Size      int
	Workers   int
	TiltDeg   *float64
}

// Resolve applies flag overrides, then fills any remaining empty fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.TiltDeg != nil {
		c.TiltDeg = flags.TiltDeg
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.Size <= 0 {
		c.Size = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Axis == [3]float64{} {
		c.Axis = [3]float64{0, 1, 0}
	}
	if c.TiltDeg == nil {
		tilt := -20.0
		c.TiltDeg = &tilt
	}
}

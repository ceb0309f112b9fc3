// Package config provides configuration loading and access for the visualizer.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run configuration parameters.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Dye        DyeConfig        `yaml:"dye"`
	Screen     ScreenConfig     `yaml:"screen"`
	Output     OutputConfig     `yaml:"output"`
}

// SimulationConfig holds the numeric core parameters.
type SimulationConfig struct {
	Resolution int     `yaml:"resolution"` // grid side length in cells
	Steps      int     `yaml:"steps"`      // number of frames to produce
	DT         float64 `yaml:"dt"`         // advection displacement scale
	Strength   float64 `yaml:"strength"`   // velocity magnitude scale
	Seed       int64   `yaml:"seed"`       // initial dye noise seed
}

// DyeConfig holds initial dye field parameters.
type DyeConfig struct {
	Pattern          string    `yaml:"pattern"`           // "gaussian" or "simplex"
	BaseColor        []float64 `yaml:"base_color"`        // RGB, 0-255
	NoiseSigma       float64   `yaml:"noise_sigma"`       // per-channel noise stddev
	VignetteStrength float64   `yaml:"vignette_strength"` // radial falloff factor
}

// ScreenConfig holds live view display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// OutputConfig holds frame export settings.
type OutputConfig struct {
	Dir     string `yaml:"dir"`      // output directory ("" = no CSV/snapshot output)
	GIFName string `yaml:"gif_name"` // animated GIF filename ("" = no GIF)
	FPS     int    `yaml:"fps"`      // GIF playback frame rate
}

// Dye patterns.
const (
	PatternGaussian = "gaussian"
	PatternSimplex  = "simplex"
)

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks the configuration before a run begins. All rejection happens
// here so the run never produces a partial frame sequence.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Resolution <= 0 {
		return fmt.Errorf("config: resolution must be positive, got %d", s.Resolution)
	}
	if s.Steps <= 0 {
		return fmt.Errorf("config: steps must be positive, got %d", s.Steps)
	}
	if !isPositiveFinite(s.DT) {
		return fmt.Errorf("config: dt must be positive and finite, got %v", s.DT)
	}
	if !isPositiveFinite(s.Strength) {
		return fmt.Errorf("config: strength must be positive and finite, got %v", s.Strength)
	}

	d := c.Dye
	if d.Pattern != PatternGaussian && d.Pattern != PatternSimplex {
		return fmt.Errorf("config: unknown dye pattern %q", d.Pattern)
	}
	if len(d.BaseColor) != 3 {
		return fmt.Errorf("config: base_color must have 3 channels, got %d", len(d.BaseColor))
	}
	if !isNonNegativeFinite(d.NoiseSigma) {
		return fmt.Errorf("config: noise_sigma must be non-negative and finite, got %v", d.NoiseSigma)
	}
	if !isNonNegativeFinite(d.VignetteStrength) {
		return fmt.Errorf("config: vignette_strength must be non-negative and finite, got %v", d.VignetteStrength)
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("config: target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Output.GIFName != "" && c.Output.FPS <= 0 {
		return fmt.Errorf("config: output fps must be positive, got %d", c.Output.FPS)
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func isNonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

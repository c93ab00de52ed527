// Package config loads generator settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/plane"
)

// Config describes an image to generate.
type Config struct {
	Image struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`

		// Palette is one of escape.PaletteNames.
		Palette string `yaml:"palette"`
	} `yaml:"image"`

	// Viewport is the square region of the plane spread over the image.
	Viewport struct {
		Re     float64 `yaml:"re"`
		Im     float64 `yaml:"im"`
		Radius float64 `yaml:"radius"`
	} `yaml:"viewport"`

	Processing struct {
		// Workers is the number of goroutines computing rows.
		Workers int `yaml:"workers"`
	} `yaml:"processing"`
}

// DefaultConfig returns a 640x480 view of the set, 1.1 units in each direction
// from the origin.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Image.Width = 640
	cfg.Image.Height = 480
	cfg.Image.Palette = escape.PaletteAffine

	cfg.Viewport.Radius = 1.1

	cfg.Processing.Workers = runtime.NumCPU()

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
// Settings missing from the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate rejects settings which cannot produce an image.
func (cfg *Config) Validate() error {
	var errs []error

	if cfg.Image.Width <= 0 || cfg.Image.Height <= 0 {
		errs = append(errs, fmt.Errorf("image size must be positive, got %dx%d",
			cfg.Image.Width, cfg.Image.Height))
	}
	if !slices.Contains(escape.PaletteNames, cfg.Image.Palette) {
		errs = append(errs, fmt.Errorf("unknown palette %q, want one of %v",
			cfg.Image.Palette, escape.PaletteNames))
	}
	if !finite(cfg.Viewport.Re) || !finite(cfg.Viewport.Im) {
		errs = append(errs, fmt.Errorf("viewport center must be finite, got %g%+gi",
			cfg.Viewport.Re, cfg.Viewport.Im))
	}
	if !finite(cfg.Viewport.Radius) || cfg.Viewport.Radius <= 0 {
		errs = append(errs, fmt.Errorf("viewport radius must be positive and finite, got %g", cfg.Viewport.Radius))
	}
	if cfg.Processing.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", cfg.Processing.Workers))
	}

	return errors.Join(errs...)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (cfg *Config) Bounds() plane.ImageBounds {
	return plane.ImageBounds{Width: cfg.Image.Width, Height: cfg.Image.Height}
}

func (cfg *Config) ComplexBounds() plane.ComplexBounds {
	center := plane.Complex{Re: cfg.Viewport.Re, Im: cfg.Viewport.Im}
	return plane.Viewport(center, cfg.Viewport.Radius)
}

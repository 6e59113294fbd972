package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up relative to the working directory. A missing
// file is not an error; the compiled defaults apply.
const DefaultPath = "viewer.yaml"

type Config struct {
	Title string `yaml:"title"`
	// Zero width or height means: derive the window size from the primary
	// monitor, clamped to a 16:9 aspect.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Radians per pixel of drag.
	OrbitSensitivity float32 `yaml:"orbit_sensitivity"`
	// World units per pixel of drag, before the orbit rotation is applied.
	PanSensitivity float32 `yaml:"pan_sensitivity"`
	// Log-distance per scroll line. Scrolling up moves closer.
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
	// World units per second for key movement.
	MoveSpeed      float32 `yaml:"move_speed"`
	FastMultiplier float32 `yaml:"fast_multiplier"`
	SlowDivisor    float32 `yaml:"slow_divisor"`
	// Fraction of the remaining camera gap closed per frame at 60 Hz,
	// exclusive between 0 and 1.
	Smoothing float32 `yaml:"smoothing"`

	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log_file"`
}

func Default() *Config {
	return &Config{
		Title:            "cubeview",
		OrbitSensitivity: 0.01,
		PanSensitivity:   0.01,
		ZoomSensitivity:  0.2,
		MoveSpeed:        0.6,
		FastMultiplier:   4,
		SlowDivisor:      4,
		Smoothing:        0.25,
		LogFile:          "logs/viewer.log",
	}
}

// Load reads a YAML config over the defaults. On any failure it returns the
// defaults together with the error, so the caller always has a usable config.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.Smoothing <= 0 || cfg.Smoothing >= 1 {
		return fmt.Errorf("smoothing %v outside (0, 1)", cfg.Smoothing)
	}
	if cfg.OrbitSensitivity <= 0 || cfg.PanSensitivity <= 0 || cfg.ZoomSensitivity <= 0 {
		return errors.New("sensitivities must be positive")
	}
	if cfg.MoveSpeed <= 0 {
		return errors.New("move_speed must be positive")
	}
	if cfg.FastMultiplier < 1 {
		return errors.New("fast_multiplier must be at least 1")
	}
	if cfg.SlowDivisor < 1 {
		return errors.New("slow_divisor must be at least 1")
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return errors.New("window size must not be negative")
	}
	return nil
}

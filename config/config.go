// Package config loads runtime settings for the shooter binary
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Chao-po/vertical-space-shooter/parameter"
)

// ErrInvalid reports a configuration value outside its allowed range
var ErrInvalid = errors.New("config: invalid value")

// Playfield is the simulated area in pixels
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config holds everything that is not a gameplay tunable
type Config struct {
	Playfield Playfield `yaml:"playfield"`

	// FrameInterval is the frame driver period
	FrameInterval time.Duration `yaml:"frame_interval"`
	// MaxDeltaMs clamps a single tick's dt; 0 disables clamping
	MaxDeltaMs float64 `yaml:"max_delta_ms"`
	// HoldWindow is how long a terminal key press counts as held
	HoldWindow time.Duration `yaml:"hold_window"`

	// ScoreFile is the YAML score store; empty keeps scores in memory only
	ScoreFile string `yaml:"score_file"`
	LogFile   string `yaml:"log_file"`
	Debug     bool   `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() Config {
	scoreFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		scoreFile = filepath.Join(home, ".vertical-space-shooter", "scores.yaml")
	}
	return Config{
		Playfield: Playfield{
			Width:  parameter.PlayfieldWidth,
			Height: parameter.PlayfieldHeight,
		},
		FrameInterval: 16 * time.Millisecond,
		MaxDeltaMs:    250,
		HoldWindow:    140 * time.Millisecond,
		ScoreFile:     scoreFile,
		LogFile:       filepath.Join("logs", "shooter.log"),
	}
}

// Load overlays the YAML file at path onto Default
// A missing file yields the defaults without error
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects non-positive sizes and negative timings
func (c Config) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield %vx%v", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	case c.FrameInterval <= 0:
		return fmt.Errorf("%w: frame_interval %v", ErrInvalid, c.FrameInterval)
	case c.MaxDeltaMs < 0:
		return fmt.Errorf("%w: max_delta_ms %v", ErrInvalid, c.MaxDeltaMs)
	case c.HoldWindow < 0:
		return fmt.Errorf("%w: hold_window %v", ErrInvalid, c.HoldWindow)
	}
	return nil
}

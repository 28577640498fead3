package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	RenderLayers     = "layers"
	RenderProjection = "projection"
)

// Config holds the configuration for the simulation driver
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	Depth               int           `json:"depth" yaml:"depth"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	UpdateInterval      int           `json:"update_interval" yaml:"update_interval"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
	UseBoundedGrid      bool          `json:"use_bounded_grid" yaml:"use_bounded_grid"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	RandomDensity       float64       `json:"random_density" yaml:"random_density"`
	InjectionCount      int           `json:"injection_count" yaml:"injection_count"`
	Seed                int64         `json:"seed" yaml:"seed"`
	Render              string        `json:"render" yaml:"render"`
	AutoRotate          bool          `json:"auto_rotate" yaml:"auto_rotate"`
	CanvasColumns       int           `json:"canvas_columns" yaml:"canvas_columns"`
	CanvasRows          int           `json:"canvas_rows" yaml:"canvas_rows"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               20,
		Height:              20,
		Depth:               20,
		FrameRate:           50 * time.Millisecond,
		UpdateInterval:      20, // Advance the simulation every 20 frames
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		UseBoundedGrid:      true,
		MaxGenerations:      1000,
		RandomDensity:       0.03,
		InjectionCount:      12,
		Seed:                1,
		Render:              RenderProjection,
		AutoRotate:          true,
		CanvasColumns:       80,
		CanvasRows:          40,
	}
}

// LoadConfig loads configuration from a JSON file, or YAML when the file ends in .yaml or .yml
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal yaml from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	return config, nil
}

// Validate reports the first setting the driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0 || c.Depth < 0:
		return errors.Errorf("[Validate] negative grid dimensions: %dx%dx%d", c.Width, c.Height, c.Depth)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] negative frame rate: %v", c.FrameRate)
	case c.UpdateInterval < 1:
		return errors.Errorf("[Validate] update interval must be at least 1 frame, got %d", c.UpdateInterval)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random density %v outside [0, 1]", c.RandomDensity)
	case c.InjectionCount < 0:
		return errors.Errorf("[Validate] negative injection count: %d", c.InjectionCount)
	case c.Render != RenderLayers && c.Render != RenderProjection:
		return errors.Errorf("[Validate] unknown render mode: %q", c.Render)
	case c.Render == RenderProjection && (c.CanvasColumns < 1 || c.CanvasRows < 1):
		return errors.Errorf("[Validate] projection canvas must be at least 1x1, got %dx%d", c.CanvasColumns, c.CanvasRows)
	}
	return nil
}

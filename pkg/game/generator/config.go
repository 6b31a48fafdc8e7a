package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the recognized generation options
type Config struct {
	// Number of rooms to place
	RoomCount int `yaml:"room_count"`

	// Initial placement area, centered on the origin
	BoundWidth  float64 `yaml:"bound_width"`
	BoundHeight float64 `yaml:"bound_height"`

	// Rooms closer than MinSeparation push each other apart by SpreadSpeed
	// per iteration, for at most MaxSpreadIterations iterations
	MinSeparation       float64 `yaml:"min_separation"`
	SpreadSpeed         float64 `yaml:"spread_speed"`
	MaxSpreadIterations int     `yaml:"max_spread_iterations"`

	// Side length of one hallway cell in world units
	CellSize int `yaml:"cell_size"`

	// Space added around the rooms for the triangulation border and the
	// hallway grid
	BorderMargin float64 `yaml:"border_margin"`

	// Connect rooms the triangulation left unreachable to their nearest
	// reachable neighbor
	LinkIslands bool `yaml:"link_islands"`
}

// DefaultConfig returns the options used when nothing is configured
func DefaultConfig() Config {
	return Config{
		RoomCount:           12,
		BoundWidth:          40,
		BoundHeight:         40,
		MinSeparation:       20,
		SpreadSpeed:         0.5,
		MaxSpreadIterations: 10000,
		CellSize:            2,
		BorderMargin:        20,
		LinkIslands:         true,
	}
}

// Validate checks the options can produce a level
func (c Config) Validate() error {
	switch {
	case c.RoomCount <= 0:
		return fmt.Errorf("room_count must be positive, got %d", c.RoomCount)
	case c.BoundWidth <= 0 || c.BoundHeight <= 0:
		return fmt.Errorf("bound must be positive, got %gx%g", c.BoundWidth, c.BoundHeight)
	case c.MinSeparation < 0:
		return fmt.Errorf("min_separation must not be negative, got %g", c.MinSeparation)
	case c.SpreadSpeed <= 0:
		return fmt.Errorf("spread_speed must be positive, got %g", c.SpreadSpeed)
	case c.MaxSpreadIterations <= 0:
		return fmt.Errorf("max_spread_iterations must be positive, got %d", c.MaxSpreadIterations)
	case c.CellSize <= 0:
		return fmt.Errorf("cell_size must be positive, got %d", c.CellSize)
	case c.BorderMargin < 3*float64(c.CellSize):
		return fmt.Errorf("border_margin %g must be at least three cells (%d)", c.BorderMargin, 3*c.CellSize)
	}
	return nil
}

// LoadConfig reads a YAML config file. Options missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

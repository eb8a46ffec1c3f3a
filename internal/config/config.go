// Package config provides YAML-based game configuration loading and
// difficulty presets for the lane jumper.
package config

import (
	"errors"
	"fmt"
)

// JumperConfig contains all configuration for the Lane Jumper game.
type JumperConfig struct {
	Road   RoadConfig   `yaml:"road"`
	Motion MotionConfig `yaml:"motion"`
	Rules  RulesConfig  `yaml:"rules"`
	Render RenderConfig `yaml:"render"`
}

// RoadConfig defines path generation parameters.
type RoadConfig struct {
	Length      int     `yaml:"length"`
	TileSize    float64 `yaml:"tile_size"`
	EmptyChance float64 `yaml:"empty_chance"`
}

// MotionConfig defines jump timing.
type MotionConfig struct {
	// Durations maps a step size (1 or 2) to the jump duration in seconds.
	Durations map[int]float64 `yaml:"durations"`
}

// RulesConfig defines how runs end.
type RulesConfig struct {
	FinishPolicy string `yaml:"finish_policy"` // "reset" or "finish"
}

// RenderConfig defines how the lane maps onto terminal cells.
type RenderConfig struct {
	CellsPerTile int `yaml:"cells_per_tile"`
	JumpHeight   int `yaml:"jump_height"`
}

// Validation errors.
var (
	ErrRoadLength   = errors.New("config: road.length must be at least 2")
	ErrTileSize     = errors.New("config: road.tile_size must be positive")
	ErrEmptyChance  = errors.New("config: road.empty_chance must be within [0, 1]")
	ErrDuration     = errors.New("config: motion.durations needs a positive duration")
	ErrDurationStep = errors.New("config: motion.durations only accepts steps 1 and 2")
	ErrFinishPolicy = errors.New("config: rules.finish_policy must be reset or finish")
	ErrCellsPerTile = errors.New("config: render.cells_per_tile must be at least 2")
)

// Validate checks the configuration for values the game cannot run with.
// A missing jump duration is reported here rather than at the first jump.
func (c JumperConfig) Validate() error {
	if c.Road.Length < 2 {
		return fmt.Errorf("%w (got %d)", ErrRoadLength, c.Road.Length)
	}
	if c.Road.TileSize <= 0 {
		return fmt.Errorf("%w (got %v)", ErrTileSize, c.Road.TileSize)
	}
	if c.Road.EmptyChance < 0 || c.Road.EmptyChance > 1 {
		return fmt.Errorf("%w (got %v)", ErrEmptyChance, c.Road.EmptyChance)
	}
	for step := range c.Motion.Durations {
		if step != 1 && step != 2 {
			return fmt.Errorf("%w (got %d)", ErrDurationStep, step)
		}
	}
	for _, step := range []int{1, 2} {
		if d, ok := c.Motion.Durations[step]; !ok || d <= 0 {
			return fmt.Errorf("%w for step %d", ErrDuration, step)
		}
	}
	switch c.Rules.FinishPolicy {
	case "", "reset", "finish":
	default:
		return fmt.Errorf("%w (got %q)", ErrFinishPolicy, c.Rules.FinishPolicy)
	}
	if c.Render.CellsPerTile < 2 {
		return fmt.Errorf("%w (got %d)", ErrCellsPerTile, c.Render.CellsPerTile)
	}
	return nil
}

// Clone returns a copy that does not share the durations map.
func (c JumperConfig) Clone() JumperConfig {
	out := c
	if c.Motion.Durations != nil {
		out.Motion.Durations = make(map[int]float64, len(c.Motion.Durations))
		for k, v := range c.Motion.Durations {
			out.Motion.Durations[k] = v
		}
	}
	return out
}

package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default Lane Jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Road: RoadConfig{
			Length:      50,
			TileSize:    40,
			EmptyChance: 0.5,
		},
		Motion: MotionConfig{
			Durations: map[int]float64{
				1: 0.25,
				2: 0.4,
			},
		},
		Rules: RulesConfig{
			FinishPolicy: "reset",
		},
		Render: RenderConfig{
			CellsPerTile: 4,
			JumpHeight:   2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "jumper":
		return defaultJumperYAML
	default:
		return nil
	}
}

package config

import "math"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset.
// Unknown or empty values return "" which means use the config as loaded.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Tuning is what a preset changes about a run.
type Tuning struct {
	EmptyChance   float64 // Gap probability
	DurationScale float64 // Multiplier on every jump duration
}

// TuningForPreset returns the tuning for a difficulty preset.
// ok is false for presets that keep the configured values.
func TuningForPreset(preset DifficultyPreset) (t Tuning, ok bool) {
	switch preset {
	case DifficultyEasy:
		return Tuning{EmptyChance: 0.3, DurationScale: 1.25}, true
	case DifficultyNormal:
		return Tuning{EmptyChance: 0.5, DurationScale: 1.0}, true
	case DifficultyHard:
		return Tuning{EmptyChance: 0.65, DurationScale: 0.75}, true
	default:
		return Tuning{}, false
	}
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
// The fixed preset, like an empty one, leaves the config untouched.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	t, ok := TuningForPreset(preset)
	if !ok {
		return
	}

	cfg.Road.EmptyChance = clampF(t.EmptyChance, 0.0, 1.0)

	scaled := make(map[int]float64, len(cfg.Motion.Durations))
	for step, d := range cfg.Motion.Durations {
		scaled[step] = d * t.DurationScale
	}
	cfg.Motion.Durations = scaled
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

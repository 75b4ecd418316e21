package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyDoodlePreset adjusts hazard chances and platform mix for a preset.
// Normal leaves the loaded configuration untouched.
func ApplyDoodlePreset(cfg *DoodleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Generation.TrapChance = 0.1
		cfg.Generation.BlackHoleChance = 0.05
		cfg.Generation.Weights = PlatformWeights{Normal: 0.8, Breakable: 0.15, Moving: 0.05}
	case DifficultyHard:
		cfg.Generation.TrapChance = 0.3
		cfg.Generation.BlackHoleChance = 0.15
		cfg.Generation.Weights = PlatformWeights{Normal: 0.55, Breakable: 0.3, Moving: 0.15}
	}
}

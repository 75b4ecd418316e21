package config

import (
	_ "embed"
)

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

// DefaultDoodleConfig returns the built-in configuration. It mirrors
// defaults/doodle.yaml and is used when the embedded file cannot be parsed.
func DefaultDoodleConfig() DoodleConfig {
	return DoodleConfig{
		Physics: DoodlePhysics{
			Gravity:             0.4,
			JumpForce:           12,
			MoveSpeed:           5,
			BreakableBounce:     0.8,
			BonusBounce:         1.5,
			MovingPlatformSpeed: 2,
			ResetJumpOnLanding:  true,
		},
		Generation: DoodleGeneration{
			PlatformCount:         10,
			Spacing:               150,
			SpacingJitter:         50,
			FirstPlatformOffset:   100,
			PickupGap:             5,
			CoinChance:            0.3,
			BonusChance:           0.1,
			TrapChance:            0.2,
			BlackHoleChance:       0.1,
			BlackHoleMinPlatforms: 3,
			BlackHoleOffset:       100,
			BlackHoleJitter:       50,
			Weights: PlatformWeights{
				Normal:    0.7,
				Breakable: 0.2,
				Moving:    0.1,
			},
		},
		Sizes: DoodleSizes{
			Player:    Size{Width: 40, Height: 60},
			Platform:  Size{Width: 70, Height: 16},
			Coin:      20,
			Bonus:     30,
			Trap:      40,
			BlackHole: 50,
		},
		Player: DoodlePlayer{
			StartOffset: 150,
		},
		BlackHole: DoodleBlackHole{
			RotationStep:    0.02,
			KillRadius:      30,
			PullCoefficient: 0.05,
			PullStrength:    0.5,
			PullRange:       100,
		},
		Scroll: DoodleScroll{
			ThresholdDivisor: 3,
			DistancePerPoint: 5,
		},
		Scoring: DoodleScoring{
			Coin:  10,
			Bonus: 30,
		},
		Recycle: DoodleRecycle{
			PlatformMargin:  50,
			BlackHoleMargin: 100,
		},
		Render: DoodleRender{
			CellWidth:  10,
			CellHeight: 16,
		},
		Input: DoodleInput{
			HoldTicks: 8,
		},
		HighScoreKey: "doodleJumpHighScore",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDoodleYAML
}

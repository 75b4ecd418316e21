// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the doodle game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// DoodleConfig contains all tunables of the simulation and its terminal host.
// Values are fixed at startup; the engine never reconfigures at runtime.
type DoodleConfig struct {
	Physics      DoodlePhysics    `yaml:"physics"`
	Generation   DoodleGeneration `yaml:"generation"`
	Sizes        DoodleSizes      `yaml:"sizes"`
	Player       DoodlePlayer     `yaml:"player"`
	BlackHole    DoodleBlackHole  `yaml:"black_hole"`
	Scroll       DoodleScroll     `yaml:"scroll"`
	Scoring      DoodleScoring    `yaml:"scoring"`
	Recycle      DoodleRecycle    `yaml:"recycle"`
	Render       DoodleRender     `yaml:"render"`
	Input        DoodleInput      `yaml:"input"`
	HighScoreKey string           `yaml:"high_score_key"`
}

// DoodlePhysics defines the arcade integrator parameters.
type DoodlePhysics struct {
	Gravity             float64 `yaml:"gravity"`
	JumpForce           float64 `yaml:"jump_force"`
	MoveSpeed           float64 `yaml:"move_speed"`
	BreakableBounce     float64 `yaml:"breakable_bounce"`      // Multiplier of JumpForce
	BonusBounce         float64 `yaml:"bonus_bounce"`          // Multiplier of JumpForce
	MovingPlatformSpeed float64 `yaml:"moving_platform_speed"` // Units per tick
	ResetJumpOnLanding  bool    `yaml:"reset_jump_on_landing"`
}

// DoodleGeneration defines procedural world generation.
type DoodleGeneration struct {
	PlatformCount         int             `yaml:"platform_count"`
	Spacing               float64         `yaml:"spacing"`
	SpacingJitter         float64         `yaml:"spacing_jitter"`
	FirstPlatformOffset   float64         `yaml:"first_platform_offset"` // Distance above the bottom edge
	PickupGap             float64         `yaml:"pickup_gap"`            // Gap between a platform and its pickup
	CoinChance            float64         `yaml:"coin_chance"`
	BonusChance           float64         `yaml:"bonus_chance"`
	TrapChance            float64         `yaml:"trap_chance"`
	BlackHoleChance       float64         `yaml:"black_hole_chance"`
	BlackHoleMinPlatforms int             `yaml:"black_hole_min_platforms"` // Spawn only when count exceeds this
	BlackHoleOffset       float64         `yaml:"black_hole_offset"`
	BlackHoleJitter       float64         `yaml:"black_hole_jitter"`
	Weights               PlatformWeights `yaml:"weights"`
}

// PlatformWeights are relative probabilities of each platform type.
type PlatformWeights struct {
	Normal    float64 `yaml:"normal"`
	Breakable float64 `yaml:"breakable"`
	Moving    float64 `yaml:"moving"`
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DoodleSizes defines entity dimensions. Pickups and hazards are square.
type DoodleSizes struct {
	Player    Size    `yaml:"player"`
	Platform  Size    `yaml:"platform"`
	Coin      float64 `yaml:"coin"`
	Bonus     float64 `yaml:"bonus"`
	Trap      float64 `yaml:"trap"`
	BlackHole float64 `yaml:"black_hole"`
}

// DoodlePlayer defines player spawn parameters.
type DoodlePlayer struct {
	StartOffset float64 `yaml:"start_offset"` // Distance of the player's top above the bottom edge
}

// DoodleBlackHole defines gravity-well tuning.
type DoodleBlackHole struct {
	RotationStep    float64 `yaml:"rotation_step"` // Radians per tick, cosmetic
	KillRadius      float64 `yaml:"kill_radius"`
	PullCoefficient float64 `yaml:"pull_coefficient"`
	PullStrength    float64 `yaml:"pull_strength"`
	PullRange       float64 `yaml:"pull_range"`
}

// DoodleScroll defines the camera threshold and altitude scoring.
type DoodleScroll struct {
	ThresholdDivisor float64 `yaml:"threshold_divisor"`  // Threshold is viewport height / divisor
	DistancePerPoint float64 `yaml:"distance_per_point"` // Scrolled units per score point
}

// DoodleScoring defines pickup rewards.
type DoodleScoring struct {
	Coin  int `yaml:"coin"`
	Bonus int `yaml:"bonus"`
}

// DoodleRecycle defines how far below the viewport entities are discarded.
type DoodleRecycle struct {
	PlatformMargin  float64 `yaml:"platform_margin"`
	BlackHoleMargin float64 `yaml:"black_hole_margin"`
}

// DoodleRender maps world units to terminal cells.
type DoodleRender struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DoodleInput configures held-key emulation for terminals without key-up events.
type DoodleInput struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate checks that every value is usable by the engine.
// All problems are reported together.
func (c DoodleConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalid, name, v))
		}
	}
	probability := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalid, name, v))
		}
	}

	nonNegative("physics.gravity", c.Physics.Gravity)
	positive("physics.jump_force", c.Physics.JumpForce)
	nonNegative("physics.move_speed", c.Physics.MoveSpeed)
	nonNegative("physics.moving_platform_speed", c.Physics.MovingPlatformSpeed)

	if c.Generation.PlatformCount < 1 {
		errs = append(errs, fmt.Errorf("%w: generation.platform_count must be at least 1, got %d",
			ErrInvalid, c.Generation.PlatformCount))
	}
	nonNegative("generation.spacing", c.Generation.Spacing)
	nonNegative("generation.spacing_jitter", c.Generation.SpacingJitter)
	probability("generation.coin_chance", c.Generation.CoinChance)
	probability("generation.bonus_chance", c.Generation.BonusChance)
	probability("generation.trap_chance", c.Generation.TrapChance)
	probability("generation.black_hole_chance", c.Generation.BlackHoleChance)

	w := c.Generation.Weights
	nonNegative("generation.weights.normal", w.Normal)
	nonNegative("generation.weights.breakable", w.Breakable)
	nonNegative("generation.weights.moving", w.Moving)
	if w.Normal+w.Breakable+w.Moving <= 0 {
		errs = append(errs, fmt.Errorf("%w: generation.weights must not all be zero", ErrInvalid))
	}

	positive("sizes.player.width", c.Sizes.Player.Width)
	positive("sizes.player.height", c.Sizes.Player.Height)
	positive("sizes.platform.width", c.Sizes.Platform.Width)
	positive("sizes.platform.height", c.Sizes.Platform.Height)
	positive("sizes.coin", c.Sizes.Coin)
	positive("sizes.bonus", c.Sizes.Bonus)
	positive("sizes.trap", c.Sizes.Trap)
	positive("sizes.black_hole", c.Sizes.BlackHole)

	positive("scroll.threshold_divisor", c.Scroll.ThresholdDivisor)
	positive("scroll.distance_per_point", c.Scroll.DistancePerPoint)
	positive("black_hole.pull_range", c.BlackHole.PullRange)
	positive("render.cell_width", c.Render.CellWidth)
	positive("render.cell_height", c.Render.CellHeight)

	if c.HighScoreKey == "" {
		errs = append(errs, fmt.Errorf("%w: high_score_key must not be empty", ErrInvalid))
	}

	return errors.Join(errs...)
}

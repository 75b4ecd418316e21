package doodle

import (
	"math"

	"github.com/vovakirdan/doodle-arcade/internal/config"
	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

// Autopilot steers the player toward the next reachable platform. It drives
// the demo game and the headless simulate command.
type Autopilot struct {
	gravity  float64
	speed    float64
	trapSize float64
	gap      float64
}

// NewAutopilot creates an autopilot tuned to the given physics.
func NewAutopilot(cfg config.DoodleConfig) *Autopilot {
	return &Autopilot{
		gravity:  cfg.Physics.Gravity,
		speed:    cfg.Physics.MoveSpeed,
		trapSize: cfg.Sizes.Trap,
		gap:      cfg.Generation.PickupGap,
	}
}

// Decide picks intents for the next tick from the latest frame.
func (a *Autopilot) Decide(f sim.Frame) sim.Intents {
	target, ok := a.target(f)
	if !ok {
		// Nothing to land on: spend the manual jump if it is still there.
		return sim.Intents{Jump: f.Player.VY < 0 && !f.Player.Jumping}
	}

	px, _ := f.Player.Center()
	tx, _ := target.Center()
	dx := tx - px
	deadzone := math.Max(a.speed, 1)

	return sim.Intents{
		Left:  dx < -deadzone,
		Right: dx > deadzone,
	}
}

// target returns the highest safe platform the player can still reach on
// the current arc.
func (a *Autopilot) target(f sim.Frame) (sim.Platform, bool) {
	bottom := f.Player.Bottom()
	apex := bottom
	if f.Player.VY > 0 && a.gravity > 0 {
		apex -= f.Player.VY * f.Player.VY / (2 * a.gravity)
	}

	var best sim.Platform
	found := false
	for _, p := range f.Platforms {
		if p.Y < apex || a.trapped(f, p) {
			continue
		}
		if f.Player.VY <= 0 && p.Y < bottom {
			continue
		}
		if !found || better(p, best) {
			best, found = p, true
		}
	}
	return best, found
}

// better prefers higher platforms and avoids breakable ones at equal height.
func better(p, than sim.Platform) bool {
	if p.Type == sim.PlatformBreakable && than.Type != sim.PlatformBreakable {
		return false
	}
	if than.Type == sim.PlatformBreakable && p.Type != sim.PlatformBreakable {
		return true
	}
	return p.Y < than.Y
}

// trapped reports whether a live trap sits on top of the platform.
func (a *Autopilot) trapped(f sim.Frame, p sim.Platform) bool {
	for _, t := range f.Traps {
		if !t.Active {
			continue
		}
		if t.OverlapsX(p.Rect) && math.Abs(t.Bottom()+a.gap-p.Y) < 1 {
			return true
		}
	}
	return false
}

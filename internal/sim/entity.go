package sim

import "github.com/vovakirdan/doodle-arcade/internal/core"

// EntityID identifies an entity for the lifetime of a session.
// IDs are never reused within a session.
type EntityID uint64

// Kind names an entity category.
type Kind string

const (
	KindPlayer    Kind = "player"
	KindPlatform  Kind = "platform"
	KindCoin      Kind = "coin"
	KindBonus     Kind = "bonus"
	KindTrap      Kind = "trap"
	KindBlackHole Kind = "black_hole"
)

// PlatformType determines how a platform reacts to a landing.
type PlatformType string

const (
	PlatformNormal    PlatformType = "normal"
	PlatformBreakable PlatformType = "breakable" // Removed on landing, weaker bounce
	PlatformMoving    PlatformType = "moving"    // Slides horizontally between screen edges
)

// platformTypes is the generation order used for weighted selection.
var platformTypes = []PlatformType{PlatformNormal, PlatformBreakable, PlatformMoving}

// Player is the controllable character. VY > 0 moves it up the screen.
type Player struct {
	core.Rect
	VX, VY  float64
	Jumping bool // Manual jump already used
}

// Platform is something the player can land on.
type Platform struct {
	ID EntityID
	core.Rect
	Type    PlatformType
	MoveDir int // -1, 0 or 1; nonzero only for moving platforms
}

// Coin is a small score pickup.
type Coin struct {
	ID EntityID
	core.Rect
	Collected bool
}

// Bonus is a pickup that awards points and a stronger bounce.
type Bonus struct {
	ID EntityID
	core.Rect
	Collected bool
}

// Trap ends the session on contact.
type Trap struct {
	ID EntityID
	core.Rect
	Active bool
}

// BlackHole pulls the player in and absorbs it when close enough.
type BlackHole struct {
	ID EntityID
	core.Rect
	Rotation float64 // Radians, cosmetic only
}

func (p Platform) EntityID() EntityID  { return p.ID }
func (c Coin) EntityID() EntityID      { return c.ID }
func (b Bonus) EntityID() EntityID     { return b.ID }
func (t Trap) EntityID() EntityID      { return t.ID }
func (h BlackHole) EntityID() EntityID { return h.ID }

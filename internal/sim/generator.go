package sim

import (
	"github.com/vovakirdan/doodle-arcade/internal/config"
	"github.com/vovakirdan/doodle-arcade/internal/core"
)

// World holds every entity collection of a session except the player.
type World struct {
	Platforms  Collection[Platform]
	Coins      Collection[Coin]
	Bonuses    Collection[Bonus]
	Traps      Collection[Trap]
	BlackHoles Collection[BlackHole]

	nextID EntityID
	events []Event
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

// drain hands over the accumulated events and starts a new list.
func (w *World) drain() []Event {
	out := w.events
	w.events = nil
	return out
}

func (w *World) reset() {
	w.Platforms.Reset()
	w.Coins.Reset()
	w.Bonuses.Reset()
	w.Traps.Reset()
	w.BlackHoles.Reset()
	w.events = nil
}

// Generator creates platforms and the pickups and hazards around them.
type Generator struct {
	cfg      *config.DoodleConfig
	rng      Rand
	viewport Viewport
}

// NewGenerator returns a generator for the given configuration and viewport.
func NewGenerator(cfg *config.DoodleConfig, rng Rand, viewport Viewport) *Generator {
	return &Generator{cfg: cfg, rng: rng, viewport: viewport}
}

// InitialWorld seeds a normal platform centred under the player spawn,
// followed by platform_count-1 random platforms stacked above it.
func (g *Generator) InitialWorld(w *World) {
	ps := g.cfg.Sizes.Platform
	x := g.viewport.Width/2 - ps.Width/2
	y := g.viewport.Height - g.cfg.Generation.FirstPlatformOffset
	// The spawn platform never carries a trap: it would overlap the player
	// before the first tick.
	g.place(w, x, y, PlatformNormal, false)

	for w.Platforms.Len() < g.cfg.Generation.PlatformCount {
		g.CreateRandomPlatform(w, w.Platforms.Len())
	}
}

// CreatePlatform appends a platform at (x, y) and rolls its pickups and
// hazards. RNG draws happen in a fixed order: move direction (moving only),
// coin, bonus, trap, black hole.
func (g *Generator) CreatePlatform(w *World, x, y float64, typ PlatformType) Platform {
	return g.place(w, x, y, typ, true)
}

func (g *Generator) place(w *World, x, y float64, typ PlatformType, allowTrap bool) Platform {
	gen := g.cfg.Generation
	ps := g.cfg.Sizes.Platform

	p := Platform{
		ID:   w.newID(),
		Rect: core.NewRect(x, y, ps.Width, ps.Height),
		Type: typ,
	}
	if typ == PlatformMoving {
		p.MoveDir = -1
		if g.rng.Float64() > 0.5 {
			p.MoveDir = 1
		}
	}
	w.Platforms.Add(p)
	w.emit(Event{Kind: EventSpawned, Entity: KindPlatform, ID: p.ID, Platform: typ})

	if typ != PlatformBreakable && g.rng.Float64() < gen.CoinChance {
		c := Coin{ID: w.newID(), Rect: g.above(p, g.cfg.Sizes.Coin)}
		w.Coins.Add(c)
		w.emit(Event{Kind: EventSpawned, Entity: KindCoin, ID: c.ID})
	}

	if typ == PlatformNormal && g.rng.Float64() < gen.BonusChance {
		b := Bonus{ID: w.newID(), Rect: g.above(p, g.cfg.Sizes.Bonus)}
		w.Bonuses.Add(b)
		w.emit(Event{Kind: EventSpawned, Entity: KindBonus, ID: b.ID})
	}

	if typ == PlatformNormal && g.rng.Float64() < gen.TrapChance && allowTrap {
		t := Trap{ID: w.newID(), Rect: g.above(p, g.cfg.Sizes.Trap), Active: true}
		w.Traps.Add(t)
		w.emit(Event{Kind: EventSpawned, Entity: KindTrap, ID: t.ID})
	}

	if g.rng.Float64() < gen.BlackHoleChance && w.Platforms.Len() > gen.BlackHoleMinPlatforms {
		size := g.cfg.Sizes.BlackHole
		hx := uniform(g.rng, 0, g.viewport.Width-size)
		hy := p.Y - gen.BlackHoleOffset - uniform(g.rng, 0, gen.BlackHoleJitter)
		h := BlackHole{ID: w.newID(), Rect: core.NewRect(hx, hy, size, size)}
		w.BlackHoles.Add(h)
		w.emit(Event{Kind: EventSpawned, Entity: KindBlackHole, ID: h.ID})
	}

	return p
}

// CreateRandomPlatform appends a platform of weighted random type above the
// platform at index-1. Callers guarantee index >= 1.
func (g *Generator) CreateRandomPlatform(w *World, index int) Platform {
	gen := g.cfg.Generation
	weights := []float64{gen.Weights.Normal, gen.Weights.Breakable, gen.Weights.Moving}

	typ := WeightedRandom(g.rng, platformTypes, weights)
	x := uniform(g.rng, 0, g.viewport.Width-g.cfg.Sizes.Platform.Width)
	prev := w.Platforms.At(index - 1)
	y := prev.Y - gen.Spacing + uniform(g.rng, 0, gen.SpacingJitter)

	return g.CreatePlatform(w, x, y, typ)
}

// above centres a square of the given size over the platform, separated by
// the pickup gap.
func (g *Generator) above(p Platform, size float64) core.Rect {
	x := p.X + p.W/2 - size/2
	y := p.Y - size - g.cfg.Generation.PickupGap
	return core.NewRect(x, y, size, size)
}

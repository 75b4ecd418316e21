package sim

import "github.com/vovakirdan/doodle-arcade/internal/core"

// Intents are the player's inputs for one tick.
type Intents struct {
	Left  bool
	Right bool
	Jump  bool
}

// collide runs the collision phase in its fixed order and reports whether
// the player stands on a solid platform this tick.
func (s *Session) collide() bool {
	onPlatform := s.updatePlatforms()
	s.collectCoins()
	s.collectBonuses()
	s.checkTraps()
	if s.state.running() {
		s.updateBlackHoles()
	}
	return onPlatform
}

// landsOn reports whether a descending player touches the top band of p.
func (s *Session) landsOn(p *Platform) bool {
	bottom := s.player.Bottom()
	return s.player.OverlapsX(p.Rect) &&
		bottom >= p.Y &&
		bottom <= p.Bottom() &&
		s.player.VY <= 0
}

func (s *Session) updatePlatforms() bool {
	phys := s.cfg.Physics
	limit := s.viewport.Height + s.cfg.Recycle.PlatformMargin
	onPlatform := false
	recycled := 0

	s.world.Platforms.Each(func(p *Platform) {
		if p.Type == PlatformMoving {
			p.X += float64(p.MoveDir) * phys.MovingPlatformSpeed
			if p.X <= 0 || p.X >= s.viewport.Width-p.W {
				p.MoveDir = -p.MoveDir
			}
		}

		if s.landsOn(p) {
			// Every landing re-arms the manual jump, including the last
			// bounce off a breakable platform.
			if phys.ResetJumpOnLanding {
				s.player.Jumping = false
			}
			switch p.Type {
			case PlatformBreakable:
				s.player.VY = phys.JumpForce * phys.BreakableBounce
				s.world.Platforms.Remove(p.ID)
				s.world.emit(Event{Kind: EventLanded, ID: p.ID, Platform: p.Type, Value: s.player.VY})
				s.world.emit(Event{Kind: EventRemoved, Entity: KindPlatform, ID: p.ID, Reason: RemovedBroken})
				return
			default:
				s.player.VY = phys.JumpForce
				onPlatform = true
				s.world.emit(Event{Kind: EventLanded, ID: p.ID, Platform: p.Type, Value: s.player.VY})
			}
		}

		if p.Y > limit {
			s.world.Platforms.Remove(p.ID)
			s.world.emit(Event{Kind: EventRemoved, Entity: KindPlatform, ID: p.ID, Reason: RemovedRecycled})
			recycled++
		}
	})

	s.world.Platforms.Sweep()
	for range recycled {
		s.replacePlatform()
	}

	return onPlatform
}

// replacePlatform appends one random platform above the last survivor.
func (s *Session) replacePlatform() {
	if s.world.Platforms.Len() == 0 {
		// Everything fell off at once; restart the stack at the top edge.
		gen := s.cfg.Generation
		x := uniform(s.rng, 0, s.viewport.Width-s.cfg.Sizes.Platform.Width)
		y := -gen.Spacing + uniform(s.rng, 0, gen.SpacingJitter)
		s.gen.CreatePlatform(&s.world, x, y, PlatformNormal)
		return
	}
	s.gen.CreateRandomPlatform(&s.world, s.world.Platforms.Len())
}

func (s *Session) collectCoins() {
	s.world.Coins.Each(func(c *Coin) {
		if c.Collected || !s.player.Intersects(c.Rect) {
			return
		}
		c.Collected = true
		s.world.Coins.Remove(c.ID)
		points := s.cfg.Scoring.Coin
		s.world.emit(Event{Kind: EventCollected, Entity: KindCoin, ID: c.ID, Points: points})
		s.world.emit(Event{Kind: EventRemoved, Entity: KindCoin, ID: c.ID, Reason: RemovedCollected})
		s.addScore(points)
	})
	s.world.Coins.Sweep()
}

func (s *Session) collectBonuses() {
	phys := s.cfg.Physics
	s.world.Bonuses.Each(func(b *Bonus) {
		if b.Collected || !s.player.Intersects(b.Rect) {
			return
		}
		b.Collected = true
		s.world.Bonuses.Remove(b.ID)
		s.player.VY = phys.JumpForce * phys.BonusBounce
		points := s.cfg.Scoring.Bonus
		s.world.emit(Event{Kind: EventCollected, Entity: KindBonus, ID: b.ID, Points: points, Value: s.player.VY})
		s.world.emit(Event{Kind: EventRemoved, Entity: KindBonus, ID: b.ID, Reason: RemovedCollected})
		s.addScore(points)
	})
	s.world.Bonuses.Sweep()
}

func (s *Session) checkTraps() {
	s.world.Traps.Each(func(t *Trap) {
		if !t.Active || !s.player.Intersects(t.Rect) {
			return
		}
		t.Active = false
		s.world.Traps.Remove(t.ID)
		s.world.emit(Event{Kind: EventRemoved, Entity: KindTrap, ID: t.ID, Reason: RemovedTriggered})
		s.endGame(ReasonTrap)
	})
	s.world.Traps.Sweep()
}

func (s *Session) updateBlackHoles() {
	bh := s.cfg.BlackHole
	limit := s.viewport.Height + s.cfg.Recycle.BlackHoleMargin

	s.world.BlackHoles.Each(func(h *BlackHole) {
		h.Rotation += bh.RotationStep

		if s.state.running() {
			d := core.CenterDistance(s.player.Rect, h.Rect)
			if d < h.W/2+s.player.W/2 {
				if d < bh.KillRadius {
					s.endGame(ReasonBlackHole)
				} else {
					px, py := s.player.Center()
					hx, hy := h.Center()
					pull := bh.PullStrength * (1 - d/bh.PullRange)
					s.player.X += (hx - px) * bh.PullCoefficient * pull
					s.player.Y += (hy - py) * bh.PullCoefficient * pull
				}
			}
		}

		if h.Y > limit {
			s.world.BlackHoles.Remove(h.ID)
			s.world.emit(Event{Kind: EventRemoved, Entity: KindBlackHole, ID: h.ID, Reason: RemovedExpired})
		}
	})
	s.world.BlackHoles.Sweep()
}

// integrate applies gravity and horizontal input, moves the player and wraps
// it around the horizontal edges.
func (s *Session) integrate(in Intents, onPlatform bool) {
	phys := s.cfg.Physics
	p := &s.player

	if !onPlatform {
		p.VY -= phys.Gravity
	}

	switch {
	case in.Left && p.X > 0:
		p.VX = -phys.MoveSpeed
	case in.Right && p.X < s.viewport.Width-p.W:
		p.VX = phys.MoveSpeed
	default:
		p.VX = 0
	}

	p.X += p.VX
	p.Y -= p.VY

	if p.X < 0 {
		p.X = s.viewport.Width - p.W
	}
	if p.X > s.viewport.Width-p.W {
		p.X = 0
	}
}

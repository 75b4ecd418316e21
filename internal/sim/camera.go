package sim

import "math"

// scroll keeps the player below the upper third of the viewport by moving
// the whole world down. Scrolled distance is converted into score.
func (s *Session) scroll() {
	threshold := s.viewport.Height / s.cfg.Scroll.ThresholdDivisor
	if s.player.Y >= threshold {
		return
	}

	delta := threshold - s.player.Y
	s.player.Y = threshold
	s.world.shift(delta)
	s.scrollOffset += delta

	points := int(math.Floor(delta / s.cfg.Scroll.DistancePerPoint))
	s.world.emit(Event{Kind: EventScrolled, Value: delta, Points: points})
	s.addScore(points)
}

// shift moves every entity down by dy.
func (w *World) shift(dy float64) {
	w.Platforms.Each(func(p *Platform) { p.Y += dy })
	w.Coins.Each(func(c *Coin) { c.Y += dy })
	w.Bonuses.Each(func(b *Bonus) { b.Y += dy })
	w.Traps.Each(func(t *Trap) { t.Y += dy })
	w.BlackHoles.Each(func(h *BlackHole) { h.Y += dy })
}

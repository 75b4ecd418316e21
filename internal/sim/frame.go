package sim

// Frame is a copy of the session state after a tick. Hosts may keep it;
// later ticks never modify it.
type Frame struct {
	Tick         uint64
	RunID        string
	Viewport     Viewport
	Player       Player
	Platforms    []Platform
	Coins        []Coin
	Bonuses      []Bonus
	Traps        []Trap
	BlackHoles   []BlackHole
	Score        int
	HighScore    int
	Phase        Phase
	Reason       Reason
	ScrollOffset float64
	Events       []Event // Events raised since the previous frame
}

// GameOver reports whether the frame ends the run.
func (f Frame) GameOver() bool {
	return f.Phase == PhaseGameOver
}

// Has reports whether an event of the given kind happened in this frame.
func (f Frame) Has(kind EventKind) bool {
	for _, ev := range f.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func (s *Session) snapshot(events []Event) Frame {
	return Frame{
		Tick:         s.tick,
		RunID:        s.runID.String(),
		Viewport:     s.viewport,
		Player:       s.player,
		Platforms:    s.world.Platforms.Snapshot(),
		Coins:        s.world.Coins.Snapshot(),
		Bonuses:      s.world.Bonuses.Snapshot(),
		Traps:        s.world.Traps.Snapshot(),
		BlackHoles:   s.world.BlackHoles.Snapshot(),
		Score:        s.score,
		HighScore:    s.highScore,
		Phase:        s.state.phase,
		Reason:       s.state.reason,
		ScrollOffset: s.scrollOffset,
		Events:       events,
	}
}

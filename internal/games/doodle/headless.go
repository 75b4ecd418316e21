package doodle

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/doodle-arcade/internal/config"
	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

// RunSummary describes one headless autopilot run.
type RunSummary struct {
	RunID     string  `yaml:"run_id"`
	Seed      int64   `yaml:"seed"`
	Ticks     uint64  `yaml:"ticks"`
	Score     int     `yaml:"score"`
	HighScore int     `yaml:"high_score"`
	Reason    string  `yaml:"reason"`
	Coins     int     `yaml:"coins"`
	Bonuses   int     `yaml:"bonuses"`
	Landings  int     `yaml:"landings"`
	Climbed   float64 `yaml:"climbed"`
}

// HeadlessOptions configures RunHeadless. Store and Logger may be nil.
type HeadlessOptions struct {
	Viewport sim.Viewport
	Seed     int64
	MaxTicks uint64
	Store    sim.HighScoreStore
	Logger   *log.Logger
}

// RunHeadless plays one session with the autopilot and no renderer. The run
// stops at game over or after MaxTicks; an unfinished run reports reason
// "timeout".
func RunHeadless(cfg config.DoodleConfig, opts HeadlessOptions) (RunSummary, error) {
	sessOpts := []sim.Option{sim.WithSeed(opts.Seed)}
	scores := newHighScoreBuffer(opts.Store)
	if scores != nil {
		sessOpts = append(sessOpts, sim.WithHighScoreStore(scores))
	}
	if opts.Logger != nil {
		sessOpts = append(sessOpts, sim.WithLogger(opts.Logger))
	}

	s, err := sim.NewSession(cfg, opts.Viewport, sessOpts...)
	if err != nil {
		return RunSummary{}, err
	}

	pilot := NewAutopilot(cfg)
	summary := RunSummary{Seed: opts.Seed}
	f := s.Frame()
	for !f.GameOver() && (opts.MaxTicks == 0 || f.Tick < opts.MaxTicks) {
		f = s.Tick(pilot.Decide(f))
		for _, ev := range f.Events {
			switch {
			case ev.Kind == sim.EventLanded:
				summary.Landings++
			case ev.Kind == sim.EventCollected && ev.Entity == sim.KindCoin:
				summary.Coins++
			case ev.Kind == sim.EventCollected && ev.Entity == sim.KindBonus:
				summary.Bonuses++
			}
		}
	}

	if err := scores.flush(); err != nil {
		return RunSummary{}, err
	}

	summary.RunID = f.RunID
	summary.Ticks = f.Tick
	summary.Score = f.Score
	summary.HighScore = f.HighScore
	summary.Climbed = f.ScrollOffset
	summary.Reason = string(f.Reason)
	if !f.GameOver() {
		summary.Reason = "timeout"
	}
	return summary, nil
}

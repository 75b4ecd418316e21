// Package doodle adapts the sim engine to the arcade host: it turns key
// actions into held intents, sizes the world to the terminal and renders
// frames into the screen buffer.
package doodle

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/doodle-arcade/internal/config"
	"github.com/vovakirdan/doodle-arcade/internal/core"
	"github.com/vovakirdan/doodle-arcade/internal/registry"
	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

const (
	// GameID is the registry ID of the player-controlled game.
	GameID = "doodle"
	// DemoGameID is the registry ID of the autopilot game.
	DemoGameID = "doodle-demo"

	// HUDHeight is the number of rows reserved above the playfield.
	HUDHeight = 2
)

// Game runs one doodle session inside the arcade host.
type Game struct {
	cfg    config.DoodleConfig
	scores *highScoreBuffer // Nil without a store
	logger *log.Logger

	session  *sim.Session
	frame    sim.Frame
	viewport sim.Viewport
	runtime  core.RuntimeConfig
	tooSmall bool

	hold  *holdState
	pilot *Autopilot // Set in demo mode
	sky   *Starfield
}

// New creates a player-controlled game.
func New(deps registry.Deps) *Game {
	deps = deps.WithDefaults()
	return &Game{
		cfg:    deps.Config,
		scores: newHighScoreBuffer(deps.Store),
		logger: deps.Logger,
		hold:   newHoldState(deps.Config.Input.HoldTicks),
	}
}

// NewDemo creates a game steered by the autopilot.
func NewDemo(deps registry.Deps) *Game {
	g := New(deps)
	g.pilot = NewAutopilot(deps.Config)
	return g
}

// ID returns DemoGameID for the autopilot game and GameID otherwise.
func (g *Game) ID() string {
	if g.pilot != nil {
		return DemoGameID
	}
	return GameID
}

// Title returns the name shown in menus and on the scoreboard.
func (g *Game) Title() string {
	if g.pilot != nil {
		return "Doodle Jump (autopilot)"
	}
	return "Doodle Jump"
}

// Reset starts a new run. The session is rebuilt only when the playfield
// size changes, so the in-memory high score survives restarts.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.flushHighScore()
	g.runtime = cfg
	g.hold.reset()

	vp := ViewportFor(g.cfg, cfg.ScreenW, cfg.ScreenH)
	if g.session != nil && vp == g.viewport {
		g.session.Init()
		g.frame = g.session.Frame()
		return
	}

	g.viewport = vp
	opts := []sim.Option{sim.WithSeed(cfg.Seed), sim.WithLogger(g.logger)}
	if g.scores != nil {
		opts = append(opts, sim.WithHighScoreStore(g.scores))
	}
	s, err := sim.NewSession(g.cfg, vp, opts...)
	if err != nil {
		if !errors.Is(err, sim.ErrViewportTooSmall) {
			g.logger.Error("Cannot start session", "err", err)
		}
		g.session = nil
		g.tooSmall = true
		return
	}

	g.tooSmall = false
	g.session = s
	g.sky = NewStarfield(cfg.Seed)
	g.frame = s.Frame()
}

// ViewportFor converts a terminal size into world units.
func ViewportFor(cfg config.DoodleConfig, screenW, screenH int) sim.Viewport {
	rows := max(screenH-HUDHeight, 0)
	return sim.Viewport{
		Width:  float64(screenW) * cfg.Render.CellWidth,
		Height: float64(rows) * cfg.Render.CellHeight,
	}
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || g.session == nil || g.frame.GameOver() {
		return core.StepResult{State: g.State()}
	}

	var intents sim.Intents
	if g.pilot != nil {
		intents = g.pilot.Decide(g.frame)
	} else {
		intents = g.hold.intents(in)
	}

	g.frame = g.session.Tick(intents)
	if g.frame.GameOver() {
		g.flushHighScore()
	}
	return core.StepResult{State: g.State()}
}

// Close writes any high score still held in memory. Hosts call it when the
// player leaves mid-run.
func (g *Game) Close() error {
	return g.scores.flush()
}

func (g *Game) flushHighScore() {
	if err := g.scores.flush(); err != nil {
		g.logger.Warn("Failed to save high score", "key", g.cfg.HighScoreKey, "err", err)
	}
}

// State reports the score of the current run.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.frame.Score,
		HighScore: g.frame.HighScore,
		GameOver:  g.frame.GameOver(),
	}
}

// Frame returns the most recent engine frame.
func (g *Game) Frame() sim.Frame {
	return g.frame
}

// RunID identifies the current run.
func (g *Game) RunID() string {
	return g.frame.RunID
}

func init() {
	registry.Register(GameID, "Doodle Jump", func(d registry.Deps) registry.Game {
		return New(d)
	})
	registry.Register(DemoGameID, "Doodle Jump (autopilot)", func(d registry.Deps) registry.Game {
		return NewDemo(d)
	})
}

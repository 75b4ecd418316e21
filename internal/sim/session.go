// Package sim implements the doodle platformer simulation: procedural world
// generation, arcade physics, camera scrolling and scoring. It has no
// terminal or storage dependencies; hosts drive it through Session.Tick and
// render the returned Frame.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/doodle-arcade/internal/config"
	"github.com/vovakirdan/doodle-arcade/internal/core"
)

var (
	// ErrInvalidConfig is returned by NewSession for unusable configuration.
	ErrInvalidConfig = errors.New("sim: invalid config")
	// ErrViewportTooSmall is returned by NewSession when the viewport cannot
	// fit the player or a platform.
	ErrViewportTooSmall = errors.New("sim: viewport too small")
)

// Viewport is the visible world area in world units.
type Viewport struct {
	Width  float64
	Height float64
}

// HighScoreStore persists the best score under a key.
type HighScoreStore interface {
	LoadHighScore(key string) (score int, ok bool, err error)
	SaveHighScore(key string, score int) error
}

// Option customizes a Session.
type Option func(*Session)

// WithRand sets the randomness source. It takes precedence over WithSeed.
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSeed seeds the default math/rand source.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithHighScoreStore enables high score persistence.
func WithHighScoreStore(store HighScoreStore) Option {
	return func(s *Session) { s.store = store }
}

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session owns the whole simulation state. It is not safe for concurrent use.
type Session struct {
	cfg      config.DoodleConfig
	viewport Viewport
	seed     int64
	rng      Rand
	gen      *Generator
	store    HighScoreStore
	logger   *log.Logger

	world        World
	player       Player
	state        machine
	score        int
	highScore    int
	tick         uint64
	scrollOffset float64
	runID        uuid.UUID
}

// NewSession validates the configuration and viewport, loads the stored high
// score and starts a fresh run.
func NewSession(cfg config.DoodleConfig, viewport Viewport, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := checkViewport(cfg, viewport); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      cfg,
		viewport: viewport,
		seed:     1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(s.seed)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.gen = NewGenerator(&s.cfg, s.rng, viewport)

	if s.store != nil {
		best, ok, err := s.store.LoadHighScore(cfg.HighScoreKey)
		switch {
		case err != nil:
			s.logger.Warn("Failed to load high score", "key", cfg.HighScoreKey, "err", err)
		case ok:
			s.highScore = best
		}
	}

	s.Init()
	return s, nil
}

func checkViewport(cfg config.DoodleConfig, vp Viewport) error {
	sz := cfg.Sizes
	minWidth := math.Max(sz.Player.Width, math.Max(sz.Platform.Width, sz.BlackHole))
	if vp.Width <= minWidth {
		return fmt.Errorf("%w: width %v must exceed %v", ErrViewportTooSmall, vp.Width, minWidth)
	}
	minHeight := math.Max(cfg.Player.StartOffset, cfg.Generation.FirstPlatformOffset)
	if vp.Height <= minHeight {
		return fmt.Errorf("%w: height %v must exceed %v", ErrViewportTooSmall, vp.Height, minHeight)
	}
	return nil
}

// Init discards all state and starts a new run with a fresh RunID.
// The high score is kept.
func (s *Session) Init() {
	s.world.reset()
	s.score = 0
	s.tick = 0
	s.scrollOffset = 0
	s.runID = uuid.New()

	ps := s.cfg.Sizes.Player
	s.player = Player{
		Rect: core.NewRect(
			s.viewport.Width/2-ps.Width/2,
			s.viewport.Height-s.cfg.Player.StartOffset,
			ps.Width, ps.Height,
		),
	}

	s.gen.InitialWorld(&s.world)
	s.state.start()

	s.logger.Debug("Session started", "run", s.runID, "platforms", s.world.Platforms.Len())
}

// Tick advances the simulation by one step and returns the resulting frame.
// Once the game is over it returns the last frame without changes.
func (s *Session) Tick(in Intents) Frame {
	if !s.state.running() {
		return s.snapshot(nil)
	}
	s.tick++

	if in.Jump {
		s.Jump()
	}

	onPlatform := s.collide()
	if s.state.running() {
		s.integrate(in, onPlatform)
		s.scroll()
		if s.player.Y > s.viewport.Height {
			s.endGame(ReasonFell)
		}
	}

	return s.snapshot(s.world.drain())
}

// Jump starts a manual jump if one is available. It reports whether the
// jump happened.
func (s *Session) Jump() bool {
	if !s.state.running() || s.player.Jumping {
		return false
	}
	s.player.Jumping = true
	s.player.VY = s.cfg.Physics.JumpForce
	s.world.emit(Event{Kind: EventJumped, Value: s.player.VY})
	return true
}

// Frame returns the current state without consuming pending events.
func (s *Session) Frame() Frame {
	return s.snapshot(nil)
}

// HighScore returns the best score known to the session, including the
// value loaded from the store.
func (s *Session) HighScore() int { return s.highScore }

// RunID identifies the current run. Init assigns a new one.
func (s *Session) RunID() uuid.UUID { return s.runID }

func (s *Session) addScore(points int) {
	if points <= 0 {
		return
	}
	s.score += points
	if s.score <= s.highScore {
		return
	}

	s.highScore = s.score
	s.world.emit(Event{Kind: EventHighScore, Points: s.highScore})
	if s.store == nil {
		return
	}
	if err := s.store.SaveHighScore(s.cfg.HighScoreKey, s.highScore); err != nil {
		s.logger.Warn("Failed to save high score", "key", s.cfg.HighScoreKey, "err", err)
	}
}

func (s *Session) endGame(reason Reason) {
	if !s.state.end(reason) {
		return
	}
	s.world.emit(Event{Kind: EventGameOver, Reason: string(reason)})
	s.logger.Info("Game over",
		"run", s.runID,
		"reason", reason,
		"score", s.score,
		"high", s.highScore,
		"ticks", s.tick,
	)
}

package sim

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/doodle-arcade/internal/config"
)

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultDoodleConfig()
	cfg.Generation.CoinChance = 2

	_, err := NewSession(cfg, testViewport)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewSessionRejectsSmallViewport(t *testing.T) {
	tests := []Viewport{
		{Width: 70, Height: 600},
		{Width: 400, Height: 150},
		{Width: 0, Height: 0},
	}

	for _, vp := range tests {
		_, err := NewSession(config.DefaultDoodleConfig(), vp)
		assert.True(t, errors.Is(err, ErrViewportTooSmall), "viewport %+v", vp)
	}
}

func TestInitLayout(t *testing.T) {
	s := newTestSession(t, config.DefaultDoodleConfig(), testViewport, WithSeed(11))
	f := s.Frame()

	assert.Equal(t, PhaseRunning, f.Phase)
	assert.Equal(t, ReasonNone, f.Reason)
	assert.Zero(t, f.Score)
	assert.Zero(t, f.Tick)
	assert.Equal(t, 180.0, f.Player.X)
	assert.Equal(t, 450.0, f.Player.Y)
	assert.Equal(t, 40.0, f.Player.W)
	assert.Equal(t, 60.0, f.Player.H)
	assert.Zero(t, f.Player.VX)
	assert.Zero(t, f.Player.VY)
	assert.False(t, f.Player.Jumping)

	require.Len(t, f.Platforms, 10)
	assert.Equal(t, PlatformNormal, f.Platforms[0].Type)
	assert.Equal(t, 165.0, f.Platforms[0].X)
	assert.Equal(t, 500.0, f.Platforms[0].Y)
	assert.NotEqual(t, uuid.Nil, s.RunID())
}

func TestInitRestarts(t *testing.T) {
	s := newTestSession(t, quietConfig(), testViewport)
	first := s.RunID()
	s.addScore(25)
	s.placePlayer(0, 700, 0)
	s.Tick(Intents{})
	require.Equal(t, PhaseGameOver, s.Frame().Phase)

	s.Init()
	s.Init()

	f := s.Frame()
	assert.Equal(t, PhaseRunning, f.Phase)
	assert.Zero(t, f.Score)
	assert.Equal(t, 25, f.HighScore)
	assert.Len(t, f.Platforms, 10)
	assert.Equal(t, 450.0, f.Player.Y)
	assert.NotEqual(t, first, s.RunID())
}

func TestFirstTickLandsOnSpawnPlatform(t *testing.T) {
	s := newTestSession(t, quietConfig(), testViewport)

	f := s.Tick(Intents{})

	assert.Len(t, eventsOf(f, EventSpawned), 10, "initial spawns are reported with the first frame")
	landed := eventsOf(f, EventLanded)
	require.Len(t, landed, 1)
	assert.Equal(t, f.Platforms[0].ID, landed[0].ID)
	assert.Equal(t, 12.0, f.Player.VY)
}

func TestJump(t *testing.T) {
	s := newTestSession(t, quietConfig(), testViewport)
	emptyWorld(s)
	s.placePlayer(100, 300, -3)

	assert.True(t, s.Jump())
	assert.False(t, s.Jump(), "only one manual jump while airborne")

	f := s.Tick(Intents{Jump: true})
	assert.InDelta(t, 12-0.4, f.Player.VY, 1e-9)
	assert.True(t, f.Player.Jumping)
	assert.Len(t, eventsOf(f, EventJumped), 1)
}

func TestJumpIntent(t *testing.T) {
	s := newTestSession(t, quietConfig(), testViewport)
	emptyWorld(s)
	s.placePlayer(100, 300, 0)

	f := s.Tick(Intents{Jump: true})

	assert.True(t, f.Has(EventJumped))
	assert.InDelta(t, 11.6, f.Player.VY, 1e-9)
}

func TestGameOverIsTerminal(t *testing.T) {
	s := newTestSession(t, quietConfig(), testViewport)
	emptyWorld(s)
	s.placePlayer(100, 600, 0)

	f := s.Tick(Intents{})
	require.True(t, f.GameOver())
	assert.Equal(t, ReasonFell, f.Reason)
	over := f

	f = s.Tick(Intents{Right: true, Jump: true})
	assert.Equal(t, over.Tick, f.Tick)
	assert.Equal(t, over.Player, f.Player)
	assert.Empty(t, f.Events)
	assert.False(t, s.Jump())
}

func TestHighScoreMonotonicAcrossSessions(t *testing.T) {
	cfg := quietConfig()
	store := NewMemoryHighScores()
	require.NoError(t, store.SaveHighScore(cfg.HighScoreKey, 50))

	s := newTestSession(t, cfg, testViewport, WithHighScoreStore(store))
	assert.Equal(t, 50, s.HighScore())

	s.addScore(30)
	assert.Equal(t, 50, s.HighScore())
	stored, _, _ := store.LoadHighScore(cfg.HighScoreKey)
	assert.Equal(t, 50, stored)

	s.addScore(40)
	assert.Equal(t, 70, s.HighScore())
	stored, _, _ = store.LoadHighScore(cfg.HighScoreKey)
	assert.Equal(t, 70, stored)

	s.Init()
	s.addScore(10)
	assert.Equal(t, 70, s.HighScore())

	next := newTestSession(t, cfg, testViewport, WithHighScoreStore(store))
	assert.Equal(t, 70, next.HighScore())
	assert.Zero(t, next.Frame().Score)
}

func TestHighScoreEventOnImprovement(t *testing.T) {
	s := newTestSession(t, quietConfig(), testViewport)
	emptyWorld(s)
	s.placePlayer(100, 300, 0)
	s.putCoin(110, 310)

	f := s.Tick(Intents{})

	events := eventsOf(f, EventHighScore)
	require.Len(t, events, 1)
	assert.Equal(t, 10, events[0].Points)
}

func TestStoreFailuresAreNotFatal(t *testing.T) {
	store := &failingStore{}
	s := newTestSession(t, quietConfig(), testViewport, WithHighScoreStore(store))
	assert.Zero(t, s.HighScore())

	s.addScore(10)
	s.addScore(10)

	assert.Equal(t, 20, s.HighScore())
	assert.Equal(t, 2, store.saves)
}

func TestCoinBonusFallScenario(t *testing.T) {
	// A tall viewport keeps the bonus jump below the scroll threshold.
	s := newTestSession(t, quietConfig(), Viewport{Width: 400, Height: 1200})

	f := s.Tick(Intents{})
	require.True(t, f.Has(EventLanded))

	s.putCoin(s.player.X, s.player.Y)
	f = s.Tick(Intents{})
	assert.Equal(t, 10, f.Score)

	s.putBonus(s.player.X, s.player.Y)
	f = s.Tick(Intents{})
	assert.Equal(t, 40, f.Score)
	assert.InDelta(t, 18-0.4, f.Player.VY, 1e-9)

	s.world.Platforms.Reset()
	for i := 0; i < 1000 && !f.GameOver(); i++ {
		f = s.Tick(Intents{})
	}

	require.True(t, f.GameOver())
	assert.Equal(t, ReasonFell, f.Reason)
	assert.Equal(t, 40, f.Score)
	assert.Equal(t, 40, f.HighScore)
	assert.Zero(t, f.ScrollOffset)
}

func TestSameSeedSameGame(t *testing.T) {
	run := func() []Frame {
		s := newTestSession(t, config.DefaultDoodleConfig(), testViewport, WithSeed(7))
		var frames []Frame
		for i := range 400 {
			f := s.Tick(Intents{Left: i%60 < 20, Right: i%60 >= 40, Jump: i%90 == 0})
			f.RunID = ""
			frames = append(frames, f)
			if f.GameOver() {
				s.Init()
			}
		}
		return frames
	}

	assert.Equal(t, run(), run())
}

func TestPlatformsNeverRunOut(t *testing.T) {
	s := newTestSession(t, config.DefaultDoodleConfig(), testViewport, WithSeed(21))
	steer := NewRand(99)

	restarts := 0
	for range 5000 {
		f := s.Tick(Intents{Left: steer.Float64() < 0.3, Right: steer.Float64() < 0.3, Jump: steer.Float64() < 0.01})
		require.NotEmpty(t, f.Platforms)
		if f.GameOver() {
			restarts++
			s.Init()
		}
	}
	t.Logf("restarts: %d", restarts)
}

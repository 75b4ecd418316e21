package doodle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/doodle-arcade/internal/config"
	"github.com/vovakirdan/doodle-arcade/internal/core"
	"github.com/vovakirdan/doodle-arcade/internal/registry"
	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

func testDeps() registry.Deps {
	return registry.Deps{Config: config.DefaultDoodleConfig()}
}

func runtimeConfig(w, h int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: seed}
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists(GameID))
	assert.True(t, registry.Exists(DemoGameID))

	g, err := registry.Create(DemoGameID, testDeps())
	require.NoError(t, err)
	assert.Equal(t, DemoGameID, g.ID())
	_, ok := g.(registry.RunTracker)
	assert.True(t, ok)
}

func TestViewportFor(t *testing.T) {
	vp := ViewportFor(config.DefaultDoodleConfig(), 80, 26)
	assert.Equal(t, sim.Viewport{Width: 800, Height: 384}, vp)

	vp = ViewportFor(config.DefaultDoodleConfig(), 10, 1)
	assert.Zero(t, vp.Height)
}

func TestResetTooSmall(t *testing.T) {
	g := New(testDeps())
	g.Reset(runtimeConfig(6, 10, 1))

	res := g.Step(core.NewInputFrame())
	assert.False(t, res.State.GameOver)

	scr := core.NewScreen(30, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Window too small")

	g.Reset(runtimeConfig(60, 30, 1))
	scr.Resize(60, 30)
	g.Render(scr)
	assert.NotContains(t, scr.String(), "Window too small")
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%50 == 0:
			inputs[i].Set(core.ActionLeft)
		case i%50 == 25:
			inputs[i].Set(core.ActionRight)
		case i%70 == 10:
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() sim.Frame {
		g := New(testDeps())
		g.Reset(runtimeConfig(60, 40, 12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		f := g.Frame()
		f.RunID = ""
		f.Events = nil
		return f
	}

	assert.Equal(t, run(), run())
}

func TestRestartReusesSession(t *testing.T) {
	g := New(testDeps())
	g.Reset(runtimeConfig(60, 30, 3))
	first := g.session
	run := g.RunID()
	for range 10 {
		g.Step(core.NewInputFrame())
	}

	g.Reset(runtimeConfig(60, 30, 3))
	assert.Same(t, first, g.session)
	assert.NotEqual(t, run, g.RunID())
	assert.Zero(t, g.State().Score)

	g.Reset(runtimeConfig(70, 30, 3))
	assert.NotSame(t, first, g.session, "a resize builds a new session")
}

func TestHighScoreStoreWired(t *testing.T) {
	store := sim.NewMemoryHighScores()
	cfg := config.DefaultDoodleConfig()
	require.NoError(t, store.SaveHighScore(cfg.HighScoreKey, 123))

	g := New(registry.Deps{Config: cfg, Store: store})
	g.Reset(runtimeConfig(60, 30, 1))

	assert.Equal(t, 123, g.State().HighScore)
}

func TestRenderSmoke(t *testing.T) {
	g := New(testDeps())
	g.Reset(runtimeConfig(60, 30, 7))
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(60, 30)
	g.Render(scr)

	assert.Contains(t, scr.Row(0), "Score: ")
	assert.Contains(t, scr.Row(0), "Best: ")
	assert.Equal(t, '─', scr.Get(0, 1))
	out := scr.String()
	assert.Contains(t, out, string(PlayerChar))
	assert.True(t, strings.ContainsAny(out, string([]rune{PlatformChar, BreakableChar, MovingChar})))
}

func TestRenderGameOver(t *testing.T) {
	g := New(testDeps())
	g.Reset(runtimeConfig(60, 30, 7))
	g.frame.Phase = sim.PhaseGameOver
	g.frame.Reason = sim.ReasonBlackHole

	res := g.Step(core.NewInputFrame())
	require.True(t, res.State.GameOver)

	scr := core.NewScreen(60, 30)
	g.Render(scr)
	out := scr.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "black hole")
}

func TestDemoClimbs(t *testing.T) {
	g := NewDemo(testDeps())
	g.Reset(runtimeConfig(80, 30, 1))

	best := 0
	for range 600 {
		res := g.Step(core.NewInputFrame())
		best = max(best, res.State.Score)
		if res.State.GameOver {
			break
		}
	}
	assert.Positive(t, best)
}

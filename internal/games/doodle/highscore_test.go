package doodle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/doodle-arcade/internal/config"
	"github.com/vovakirdan/doodle-arcade/internal/core"
	"github.com/vovakirdan/doodle-arcade/internal/registry"
	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

// countingStore records every write that reaches it.
type countingStore struct {
	*sim.MemoryHighScores
	saves []int
	err   error
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryHighScores: sim.NewMemoryHighScores()}
}

func (c *countingStore) SaveHighScore(key string, score int) error {
	if c.err != nil {
		return c.err
	}
	c.saves = append(c.saves, score)
	return c.MemoryHighScores.SaveHighScore(key, score)
}

func TestHighScoreBufferCoalesces(t *testing.T) {
	store := newCountingStore()
	buf := newHighScoreBuffer(store)

	for score := 10; score <= 100; score += 10 {
		require.NoError(t, buf.SaveHighScore("doodle", score))
	}
	require.NoError(t, buf.SaveHighScore("doodle", 40))
	assert.Empty(t, store.saves)

	v, ok, err := buf.LoadHighScore("doodle")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 100, v)

	require.NoError(t, buf.flush())
	require.NoError(t, buf.flush())
	assert.Equal(t, []int{100}, store.saves)
}

func TestHighScoreBufferKeepsFailedWrite(t *testing.T) {
	store := newCountingStore()
	store.err = errors.New("disk full")
	buf := newHighScoreBuffer(store)

	require.NoError(t, buf.SaveHighScore("doodle", 30))
	assert.Error(t, buf.flush())

	store.err = nil
	require.NoError(t, buf.flush())
	assert.Equal(t, []int{30}, store.saves)
}

func TestHighScoreBufferNilStore(t *testing.T) {
	buf := newHighScoreBuffer(nil)
	assert.Nil(t, buf)
	assert.NoError(t, buf.flush())
}

func TestGameWritesHighScoreOnce(t *testing.T) {
	store := newCountingStore()
	cfg := config.DefaultDoodleConfig()
	g := NewDemo(registry.Deps{Config: cfg, Store: store})
	g.Reset(runtimeConfig(60, 30, 11))

	for range 5000 {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}
	require.NoError(t, g.Close())

	state := g.State()
	if state.HighScore > 0 {
		assert.Equal(t, []int{state.HighScore}, store.saves)
	} else {
		assert.Empty(t, store.saves)
	}
}

func TestGameCloseFlushesMidRun(t *testing.T) {
	store := newCountingStore()
	cfg := config.DefaultDoodleConfig()
	g := New(registry.Deps{Config: cfg, Store: store})
	g.Reset(runtimeConfig(60, 30, 5))

	require.NoError(t, g.scores.SaveHighScore(cfg.HighScoreKey, 250))
	assert.Empty(t, store.saves)

	require.NoError(t, g.Close())
	stored, ok, err := store.LoadHighScore(cfg.HighScoreKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 250, stored)
}

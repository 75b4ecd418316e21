package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noGravity() Option {
	return func(s *Session) { s.cfg.Physics.Gravity = 0 }
}

func TestScrollShiftsWorldAndScores(t *testing.T) {
	s := newTestSession(t, quietConfig(), testViewport, noGravity())
	emptyWorld(s)
	s.putPlatform(300, 100, PlatformNormal)
	s.putCoin(10, 50)
	s.putBlackHole(200, 20)
	// Threshold is 600/3 = 200; moving up 7 ends 6 above it.
	s.placePlayer(180, 201, 7)

	f := s.Tick(Intents{})

	assert.Equal(t, 200.0, f.Player.Y)
	require.Len(t, f.Platforms, 1)
	assert.Equal(t, 106.0, f.Platforms[0].Y)
	assert.Equal(t, 56.0, f.Coins[0].Y)
	assert.Equal(t, 26.0, f.BlackHoles[0].Y)
	assert.Equal(t, 1, f.Score)
	assert.Equal(t, 6.0, f.ScrollOffset)

	scrolled := eventsOf(f, EventScrolled)
	require.Len(t, scrolled, 1)
	assert.Equal(t, 6.0, scrolled[0].Value)
	assert.Equal(t, 1, scrolled[0].Points)
}

func TestSmallScrollAddsNoPoints(t *testing.T) {
	s := newTestSession(t, quietConfig(), testViewport, noGravity())
	emptyWorld(s)
	s.placePlayer(180, 201, 5)

	f := s.Tick(Intents{})

	assert.Equal(t, 200.0, f.Player.Y)
	assert.Equal(t, 4.0, f.ScrollOffset)
	assert.Zero(t, f.Score)
}

func TestNoScrollBelowThreshold(t *testing.T) {
	s := newTestSession(t, quietConfig(), testViewport, noGravity())
	emptyWorld(s)
	p := s.putPlatform(300, 100, PlatformNormal)
	s.placePlayer(180, 260, 5)

	f := s.Tick(Intents{})

	assert.Equal(t, 255.0, f.Player.Y)
	assert.Equal(t, p.Y, f.Platforms[0].Y)
	assert.Zero(t, f.ScrollOffset)
	assert.False(t, f.Has(EventScrolled))
}

func TestScrollOffsetAccumulates(t *testing.T) {
	s := newTestSession(t, quietConfig(), testViewport, noGravity())
	emptyWorld(s)
	s.placePlayer(180, 200, 10)

	var f Frame
	for range 5 {
		f = s.Tick(Intents{})
	}

	assert.Equal(t, 50.0, f.ScrollOffset)
	assert.Equal(t, 10, f.Score)
	assert.Equal(t, 200.0, f.Player.Y)
}

package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/doodle-arcade/internal/config"
	"github.com/vovakirdan/doodle-arcade/internal/core"
)

var testViewport = Viewport{Width: 400, Height: 600}

// scriptedRand replays fixed values, then returns 0.999 which fails every
// spawn trial.
type scriptedRand struct {
	values []float64
	drawn  int
}

func (r *scriptedRand) Float64() float64 {
	if r.drawn >= len(r.values) {
		r.drawn++
		return 0.999
	}
	v := r.values[r.drawn]
	r.drawn++
	return v
}

// quietConfig disables every random pickup and hazard.
func quietConfig() config.DoodleConfig {
	cfg := config.DefaultDoodleConfig()
	cfg.Generation.CoinChance = 0
	cfg.Generation.BonusChance = 0
	cfg.Generation.TrapChance = 0
	cfg.Generation.BlackHoleChance = 0
	return cfg
}

func newTestSession(t *testing.T, cfg config.DoodleConfig, vp Viewport, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(cfg, vp, opts...)
	require.NoError(t, err)
	return s
}

// emptyWorld removes the generated world so a test can place entities by hand.
func emptyWorld(s *Session) {
	s.world.reset()
}

func (s *Session) putPlatform(x, y float64, typ PlatformType) Platform {
	size := s.cfg.Sizes.Platform
	p := Platform{ID: s.world.newID(), Rect: core.NewRect(x, y, size.Width, size.Height), Type: typ}
	if typ == PlatformMoving {
		p.MoveDir = 1
	}
	s.world.Platforms.Add(p)
	return p
}

func (s *Session) putCoin(x, y float64) Coin {
	size := s.cfg.Sizes.Coin
	c := Coin{ID: s.world.newID(), Rect: core.NewRect(x, y, size, size)}
	s.world.Coins.Add(c)
	return c
}

func (s *Session) putBonus(x, y float64) Bonus {
	size := s.cfg.Sizes.Bonus
	b := Bonus{ID: s.world.newID(), Rect: core.NewRect(x, y, size, size)}
	s.world.Bonuses.Add(b)
	return b
}

func (s *Session) putTrap(x, y float64) Trap {
	size := s.cfg.Sizes.Trap
	tr := Trap{ID: s.world.newID(), Rect: core.NewRect(x, y, size, size), Active: true}
	s.world.Traps.Add(tr)
	return tr
}

func (s *Session) putBlackHole(x, y float64) BlackHole {
	size := s.cfg.Sizes.BlackHole
	h := BlackHole{ID: s.world.newID(), Rect: core.NewRect(x, y, size, size)}
	s.world.BlackHoles.Add(h)
	return h
}

func (s *Session) placePlayer(x, y, vy float64) {
	s.player.X = x
	s.player.Y = y
	s.player.VY = vy
}

func eventsOf(f Frame, kind EventKind) []Event {
	var out []Event
	for _, ev := range f.Events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func platformIDs(ps []Platform) []EntityID {
	ids := make([]EntityID, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	return ids
}

type failingStore struct{ saves int }

var errStoreDown = errors.New("store down")

func (f *failingStore) LoadHighScore(string) (int, bool, error) { return 0, false, errStoreDown }
func (f *failingStore) SaveHighScore(string, int) error {
	f.saves++
	return errStoreDown
}

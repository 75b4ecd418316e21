package doodle

import (
	"sync"

	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

// highScoreBuffer coalesces the engine's high score saves. The session
// reports every improvement; only the latest reaches the store, on flush.
// It is safe for concurrent use so a host can flush from its own goroutine.
type highScoreBuffer struct {
	store sim.HighScoreStore

	mu      sync.Mutex
	key     string
	pending int
	dirty   bool
}

func newHighScoreBuffer(store sim.HighScoreStore) *highScoreBuffer {
	if store == nil {
		return nil
	}
	return &highScoreBuffer{store: store}
}

func (b *highScoreBuffer) LoadHighScore(key string) (int, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dirty && b.key == key {
		return b.pending, true, nil
	}
	return b.store.LoadHighScore(key)
}

func (b *highScoreBuffer) SaveHighScore(key string, score int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dirty && b.key == key && score <= b.pending {
		return nil
	}
	if b.dirty && b.key != key {
		if err := b.writeLocked(); err != nil {
			return err
		}
	}
	b.key = key
	b.pending = score
	b.dirty = true
	return nil
}

// flush writes the pending score, if any. A failed write stays pending.
func (b *highScoreBuffer) flush() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writeLocked()
}

func (b *highScoreBuffer) writeLocked() error {
	if !b.dirty {
		return nil
	}
	if err := b.store.SaveHighScore(b.key, b.pending); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

package sim

import "sync"

// MemoryHighScores is an in-process HighScoreStore for hosts without a
// database.
type MemoryHighScores struct {
	mu     sync.Mutex
	scores map[string]int
}

// NewMemoryHighScores returns an empty store.
func NewMemoryHighScores() *MemoryHighScores {
	return &MemoryHighScores{scores: make(map[string]int)}
}

// LoadHighScore returns the score saved under key and whether one exists.
func (m *MemoryHighScores) LoadHighScore(key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	score, ok := m.scores[key]
	return score, ok, nil
}

// SaveHighScore records score under key unless a higher one is already held.
func (m *MemoryHighScores) SaveHighScore(key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.scores[key] {
		m.scores[key] = score
	}
	return nil
}

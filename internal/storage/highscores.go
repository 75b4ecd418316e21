package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

var _ sim.HighScoreStore = (*Store)(nil)

// LoadHighScore returns the stored best score for key.
func (s *Store) LoadHighScore(key string) (int, bool, error) {
	var score int
	err := s.db.QueryRow(s.rebind("SELECT score FROM high_scores WHERE name = ?"), key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot load high score %q: %w", key, err)
	}
	return score, true, nil
}

// SaveHighScore stores score under key unless a higher value is already
// there. Concurrent sessions sharing a key can therefore never lower it.
func (s *Store) SaveHighScore(key string, score int) error {
	_, err := s.db.Exec(
		s.rebind(`INSERT INTO high_scores (name, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (name) DO UPDATE SET
		   score = CASE WHEN excluded.score > high_scores.score THEN excluded.score ELSE high_scores.score END,
		   updated_at = excluded.updated_at`),
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score %q: %w", key, err)
	}
	return nil
}

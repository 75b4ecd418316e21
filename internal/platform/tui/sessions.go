package tui

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrServerFull is returned when the session limit is reached.
var ErrServerFull = errors.New("tui: server is full")

// SessionID uniquely identifies one SSH connection.
type SessionID string

// SessionInfo describes a connected player.
type SessionInfo struct {
	ID      SessionID
	User    string
	Remote  string
	Started time.Time
}

// SessionRegistry tracks active SSH sessions.
// Thread-safe for concurrent access.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[SessionID]SessionInfo
	limit    int // 0 means unlimited
}

// NewSessionRegistry creates a registry admitting at most limit sessions.
func NewSessionRegistry(limit int) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[SessionID]SessionInfo),
		limit:    max(limit, 0),
	}
}

// Register admits a new session.
func (r *SessionRegistry) Register(user, remote string) (SessionInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.limit > 0 && len(r.sessions) >= r.limit {
		return SessionInfo{}, ErrServerFull
	}
	info := SessionInfo{
		ID:      SessionID(uuid.NewString()),
		User:    user,
		Remote:  remote,
		Started: time.Now(),
	}
	r.sessions[info.ID] = info
	return info, nil
}

// Unregister removes a session from the registry.
func (r *SessionRegistry) Unregister(id SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count returns the number of active sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns active sessions, oldest first.
func (r *SessionRegistry) List() []SessionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]SessionInfo, 0, len(r.sessions))
	for _, info := range r.sessions {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Started.Before(result[j].Started)
	})
	return result
}

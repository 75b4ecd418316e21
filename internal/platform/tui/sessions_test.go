package tui

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistryLifecycle(t *testing.T) {
	r := NewSessionRegistry(0)

	a, err := r.Register("alice", "10.0.0.1:5000")
	require.NoError(t, err)
	b, err := r.Register("bob", "10.0.0.2:5000")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, r.Count())

	list := r.List()
	require.Len(t, list, 2)
	assert.False(t, list[1].Started.Before(list[0].Started))
	assert.Equal(t, "alice", list[0].User)

	r.Unregister(a.ID)
	list = r.List()
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, 1, r.Count())

	r.Unregister(a.ID)
	assert.Equal(t, 1, r.Count())
}

func TestSessionRegistryLimit(t *testing.T) {
	r := NewSessionRegistry(1)

	first, err := r.Register("alice", "")
	require.NoError(t, err)
	_, err = r.Register("bob", "")
	assert.ErrorIs(t, err, ErrServerFull)

	r.Unregister(first.ID)
	_, err = r.Register("bob", "")
	assert.NoError(t, err)
}

func TestSessionRegistryConcurrent(t *testing.T) {
	r := NewSessionRegistry(0)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info, err := r.Register(fmt.Sprintf("user-%d", i), "")
			if err == nil && i%2 == 0 {
				r.Unregister(info.ID)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, r.Count())
}

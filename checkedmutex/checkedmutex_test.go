package checkedmutex

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	m := New()

	tok := m.Lock()
	require.NoError(t, m.Unlock(tok))

	// Reusable after a full cycle.
	tok = m.Lock()
	require.NoError(t, m.Unlock(tok))
}

func TestUnlockUnlocked(t *testing.T) {
	m := New()
	assert.ErrorIs(t, m.Unlock(Token(1)), ErrNotLocked)
}

func TestUnlockWrongToken(t *testing.T) {
	m := New()

	tok := m.Lock()
	assert.ErrorIs(t, m.Unlock(tok+1), ErrNotOwner)

	// The rejected unlock must not have released the lock.
	require.NoError(t, m.Unlock(tok))
}

func TestStaleTokenRejected(t *testing.T) {
	m := New()

	first := m.Lock()
	require.NoError(t, m.Unlock(first))

	second := m.Lock()
	assert.ErrorIs(t, m.Unlock(first), ErrNotOwner)
	require.NoError(t, m.Unlock(second))
}

func TestLockBlocksWhileHeld(t *testing.T) {
	m := New()
	tok := m.Lock()

	acquired := make(chan Token, 1)
	go func() {
		acquired <- m.Lock()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock succeeded while the mutex was held")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, m.Unlock(tok))

	select {
	case tok2 := <-acquired:
		require.NoError(t, m.Unlock(tok2))
	case <-time.After(time.Second):
		t.Fatal("blocked Lock did not acquire after Unlock")
	}
}

func TestMutualExclusion(t *testing.T) {
	const (
		workers    = 8
		iterations = 1000
	)
	m := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				tok := m.Lock()
				counter++
				if err := m.Unlock(tok); err != nil {
					t.Errorf("Unlock: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*iterations, counter)
}

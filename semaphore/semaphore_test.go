package semaphore

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitialCount(t *testing.T) {
	s := New(3)
	assert.Equal(t, 3, s.Count())

	s = New(0)
	assert.Equal(t, 0, s.Count())
}

func TestNewNegativePanics(t *testing.T) {
	assert.Panics(t, func() { New(-1) })
}

func TestWaitSignalArithmetic(t *testing.T) {
	s := New(2)

	s.Wait()
	assert.Equal(t, 1, s.Count())
	s.Wait()
	assert.Equal(t, 0, s.Count())

	s.Signal()
	s.Signal()
	s.Signal()
	assert.Equal(t, 3, s.Count())
}

func TestTryWait(t *testing.T) {
	s := New(1)

	assert.True(t, s.TryWait())
	assert.False(t, s.TryWait())
	assert.Equal(t, 0, s.Count())

	s.Signal()
	assert.True(t, s.TryWait())
}

func TestWaitBlocksUntilSignal(t *testing.T) {
	s := New(0)

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned on a zero-count semaphore without a Signal")
	case <-time.After(50 * time.Millisecond):
	}

	s.Signal()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Signal")
	}
	assert.Equal(t, 0, s.Count())
}

func TestSignalWakesExactlyOne(t *testing.T) {
	s := New(0)
	const waiters = 4

	var woken atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Wait()
			woken.Add(1)
		}()
	}

	// Let all waiters park.
	time.Sleep(50 * time.Millisecond)

	s.Signal()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), woken.Load(), "one Signal must release exactly one waiter")

	for i := 1; i < waiters; i++ {
		s.Signal()
	}
	wg.Wait()
	assert.Equal(t, int32(waiters), woken.Load())
	assert.Equal(t, 0, s.Count())
}

func TestConcurrentWaitSignalConserved(t *testing.T) {
	const (
		workers = 8
		rounds  = 1000
	)
	s := New(workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				s.Wait()
				s.Signal()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, workers, s.Count(), "every Wait must be paired with exactly one Signal")
}

func TestDestroyPanicsOnUse(t *testing.T) {
	s := New(1)
	s.Destroy()

	assert.Panics(t, func() { s.Wait() })
	assert.Panics(t, func() { s.Signal() })
	assert.Panics(t, func() { s.TryWait() })
	assert.Panics(t, func() { s.Count() })
	assert.Panics(t, func() { s.Destroy() })
}

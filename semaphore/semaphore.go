// Package semaphore provides a counting semaphore with blocking wait
// semantics.
//
// A counting semaphore is a non-negative counter with two atomic
// operations: Wait (decrement, blocking while the count is zero) and
// Signal (increment, waking one blocked waiter). Unlike a channel-based
// semaphore, this implementation exposes the current count and supports
// an explicit destroy step, which the higher-level primitives in this
// repository rely on.
package semaphore

import "sync"

// Semaphore is a counting semaphore. The zero value is not usable; use New.
type Semaphore struct {
	mu        sync.Mutex
	cond      *sync.Cond
	count     int
	destroyed bool
}

// New creates a semaphore with the given initial count.
// It panics if initial is negative.
func New(initial int) *Semaphore {
	if initial < 0 {
		panic("semaphore: negative initial count")
	}
	s := &Semaphore{count: initial}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Wait decrements the count, blocking until the count is positive.
// The check and the decrement happen as one atomic step with respect to
// Signal, so a wakeup is never lost and a count is never consumed twice.
// No fairness is guaranteed among multiple waiters.
func (s *Semaphore) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkAlive()
	for s.count == 0 {
		s.cond.Wait()
		s.checkAlive()
	}
	s.count--
}

// TryWait attempts to decrement the count without blocking.
// It reports whether a count was consumed. TryWait may succeed while
// other goroutines are blocked in Wait; there is no ordering between
// blocking and non-blocking acquisition.
func (s *Semaphore) TryWait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkAlive()
	if s.count == 0 {
		return false
	}
	s.count--
	return true
}

// Signal increments the count and wakes one blocked waiter, if any.
func (s *Semaphore) Signal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkAlive()
	s.count++
	s.cond.Signal()
}

// Count returns the current count. The value is a snapshot and may be
// stale by the time the caller inspects it.
func (s *Semaphore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkAlive()
	return s.count
}

// Destroy marks the semaphore unusable. The caller must guarantee that no
// goroutine is blocked in Wait and that no further operations will be
// issued; any operation after Destroy panics. Goroutines found blocked at
// destroy time are woken into the same panic rather than left hanging.
func (s *Semaphore) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkAlive()
	s.destroyed = true
	s.cond.Broadcast()
}

func (s *Semaphore) checkAlive() {
	if s.destroyed {
		panic("semaphore: use after Destroy")
	}
}

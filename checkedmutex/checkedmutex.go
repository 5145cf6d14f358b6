// Package checkedmutex provides a mutual-exclusion lock that enforces
// ownership: only the holder of the token handed out by Lock may unlock.
//
// Plain mutexes do not track who locked them, so a buggy unlock from the
// wrong place silently corrupts the locking protocol. This lock is built
// from two counting semaphores: one that blocks contending lockers and
// one that guards the lock's own bookkeeping (owner token and state
// counter), mirroring the textbook construction of a checked mutex from
// semaphores.
package checkedmutex

import (
	"errors"
	"sync/atomic"

	"github.com/krishvs/semsync/semaphore"
)

var (
	// ErrNotOwner is returned by Unlock when the supplied token does not
	// match the acquisition that currently holds the lock.
	ErrNotOwner = errors.New("checkedmutex: unlock by non-owner")

	// ErrNotLocked is returned by Unlock when the lock is not held.
	ErrNotLocked = errors.New("checkedmutex: unlock of unlocked mutex")
)

// Token identifies one successful Lock acquisition. It must be passed
// back to Unlock and not shared between goroutines.
type Token uint64

// Mutex is an ownership-checking lock. The zero value is not usable;
// use New.
type Mutex struct {
	block  *semaphore.Semaphore // blocks contending lockers
	state  *semaphore.Semaphore // guards owner and locked
	owner  Token
	locked bool

	lastToken atomic.Uint64
}

// New creates an unlocked mutex.
func New() *Mutex {
	return &Mutex{
		block: semaphore.New(1),
		state: semaphore.New(1),
	}
}

// Lock acquires the mutex, blocking until it is available, and returns
// the token required to unlock it.
func (m *Mutex) Lock() Token {
	m.block.Wait()
	m.state.Wait()

	token := Token(m.lastToken.Add(1))
	m.owner = token
	m.locked = true

	m.state.Signal()
	return token
}

// Unlock releases the mutex. It returns ErrNotLocked if the mutex is not
// held and ErrNotOwner if token does not belong to the current holder;
// in both cases the lock state is unchanged.
func (m *Mutex) Unlock(token Token) error {
	m.state.Wait()

	if !m.locked {
		m.state.Signal()
		return ErrNotLocked
	}
	if m.owner != token {
		m.state.Signal()
		return ErrNotOwner
	}

	m.locked = false
	m.owner = 0
	m.block.Signal()

	m.state.Signal()
	return nil
}

// Destroy releases the mutex's semaphores. The mutex must be unlocked
// and quiescent; any operation after Destroy panics.
func (m *Mutex) Destroy() {
	m.state.Destroy()
	m.block.Destroy()
}

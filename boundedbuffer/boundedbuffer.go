// Package boundedbuffer implements a fixed-capacity circular buffer shared
// between producer and consumer goroutines.
//
// Synchronization follows the classic three-semaphore design: a semaphore
// counting empty slots blocks producers when the buffer is full, a
// semaphore counting filled slots blocks consumers when it is empty, and a
// binary semaphore guards the array and indices. Flow control is always
// acquired before the guard and the guard is always released before flow
// control is signaled, so no goroutine ever holds the guard while blocked.
package boundedbuffer

import (
	"fmt"

	"github.com/krishvs/semsync/semaphore"
)

// Buffer is a bounded FIFO buffer of T. Items are copied in on Put and
// copied out on Get. The zero value is not usable; use New.
type Buffer[T any] struct {
	items    []T
	capacity int
	in       int // next slot to write
	out      int // next slot to read

	empty  *semaphore.Semaphore // slots available for writing
	filled *semaphore.Semaphore // items available for reading
	guard  *semaphore.Semaphore // protects items, in, out
}

// New creates a buffer with the given capacity.
// It panics if capacity is not positive: a buffer cannot exist
// half-initialized, so there is no error path to recover from.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("boundedbuffer: capacity must be positive, got %d", capacity))
	}
	return &Buffer[T]{
		items:    make([]T, capacity),
		capacity: capacity,
		empty:    semaphore.New(capacity),
		filled:   semaphore.New(0),
		guard:    semaphore.New(1),
	}
}

// Put adds an item, blocking while the buffer is full. The wait for a
// free slot is the only suspension point; once a slot is acquired the
// write cannot fail.
func (b *Buffer[T]) Put(item T) {
	b.empty.Wait()
	b.guard.Wait()

	b.items[b.in] = item
	b.in = (b.in + 1) % b.capacity

	b.guard.Signal()
	b.filled.Signal()
}

// Get removes and returns the oldest item, blocking while the buffer is
// empty.
func (b *Buffer[T]) Get() T {
	b.filled.Wait()
	b.guard.Wait()

	item := b.items[b.out]
	var zero T
	b.items[b.out] = zero // drop the buffer's copy
	b.out = (b.out + 1) % b.capacity

	b.guard.Signal()
	b.empty.Signal()

	return item
}

// Len returns the number of items currently buffered. The value is a
// snapshot and may be stale by the time the caller inspects it.
func (b *Buffer[T]) Len() int {
	return b.filled.Count()
}

// Cap returns the buffer's capacity.
func (b *Buffer[T]) Cap() int {
	return b.capacity
}

// Destroy releases the buffer's semaphores. The caller must guarantee
// that no goroutine is blocked in Put or Get and that no further
// operations will be issued; any operation after Destroy panics.
func (b *Buffer[T]) Destroy() {
	b.guard.Destroy()
	b.filled.Destroy()
	b.empty.Destroy()
	b.items = nil
}

// String returns a diagnostic summary of the buffer state. Like any
// other operation it must not race with concurrent Put/Get calls.
func (b *Buffer[T]) String() string {
	return fmt.Sprintf("boundedbuffer(cap=%d len=%d in=%d out=%d)",
		b.capacity, b.Len(), b.in, b.out)
}

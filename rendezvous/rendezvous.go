// Package rendezvous synchronizes two goroutines at a meeting point.
//
// Each side announces its own arrival and then blocks until the other
// side has arrived, so neither goroutine passes the rendezvous alone.
// Calling Await in a loop keeps two goroutines in lockstep: round i on
// one side cannot complete before round i on the other has started.
//
// A mutex cannot express this: a lock is acquired and released by the
// same goroutine, while a rendezvous needs each side to signal the other.
// Two counting semaphores, one per direction, are the classic solution.
package rendezvous

import "github.com/krishvs/semsync/semaphore"

// Rendezvous is a two-party meeting point. The zero value is not usable;
// use New. Exactly one goroutine must use AwaitA and exactly one AwaitB.
type Rendezvous struct {
	aArrived *semaphore.Semaphore
	bArrived *semaphore.Semaphore
}

// New creates a rendezvous with both sides not yet arrived.
func New() *Rendezvous {
	return &Rendezvous{
		aArrived: semaphore.New(0),
		bArrived: semaphore.New(0),
	}
}

// AwaitA marks side A as arrived and blocks until side B arrives.
func (r *Rendezvous) AwaitA() {
	r.aArrived.Signal()
	r.bArrived.Wait()
}

// AwaitB marks side B as arrived and blocks until side A arrives.
func (r *Rendezvous) AwaitB() {
	r.bArrived.Signal()
	r.aArrived.Wait()
}

// Destroy releases the underlying semaphores. Both sides must have
// returned from their final Await before Destroy is called.
func (r *Rendezvous) Destroy() {
	r.aArrived.Destroy()
	r.bArrived.Destroy()
}

package rendezvous

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitBlocksUntilPeerArrives(t *testing.T) {
	r := New()

	done := make(chan struct{})
	go func() {
		r.AwaitA()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("AwaitA returned before B arrived")
	case <-time.After(50 * time.Millisecond):
	}

	go r.AwaitB()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AwaitA did not return after B arrived")
	}
}

func TestLockstepOrdering(t *testing.T) {
	const rounds = 200
	r := New()

	var mu sync.Mutex
	var trace []int // round numbers in completion order, A as +r, B as -r

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= rounds; i++ {
			r.AwaitA()
			mu.Lock()
			trace = append(trace, i)
			mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 1; i <= rounds; i++ {
			r.AwaitB()
			mu.Lock()
			trace = append(trace, -i)
			mu.Unlock()
		}
	}()
	wg.Wait()

	require.Len(t, trace, 2*rounds)

	// Rounds may interleave within themselves, but round i+1 must never
	// start on either side before round i has completed on both.
	seenA, seenB := 0, 0
	for _, step := range trace {
		if step > 0 {
			assert.LessOrEqual(t, step-seenB, 1, "A ran round %d before B finished round %d", step, seenB)
			seenA = step
		} else {
			assert.LessOrEqual(t, -step-seenA, 1, "B ran round %d before A finished round %d", -step, seenA)
			seenB = -step
		}
	}
}

func TestDestroyPanicsOnUse(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); r.AwaitA() }()
	go func() { defer wg.Done(); r.AwaitB() }()
	wg.Wait()

	r.Destroy()
	assert.Panics(t, func() { r.AwaitA() })
}

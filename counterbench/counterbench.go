// Package counterbench measures a shared counter under contention with
// interchangeable synchronization strategies.
//
// A fixed set of incrementing workers and decrementing workers hammer one
// counter; the totals are balanced so a correctly synchronized run ends
// at exactly zero. Comparing the unsynchronized, mutex, spinlock and
// atomic strategies shows both the correctness cost of skipping
// synchronization and the performance cost of each mechanism.
package counterbench

import (
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a shared counter guarded by one synchronization strategy.
type Counter interface {
	// Name identifies the strategy in results.
	Name() string
	// Add applies a signed delta to the counter.
	Add(delta int64)
	// Value returns the counter's current value. Only meaningful once
	// all workers have stopped.
	Value() int64
}

// NoSync is a counter with no synchronization at all. Concurrent use is
// a deliberate data race; it exists to demonstrate the resulting drift.
type NoSync struct {
	n int64
}

func (c *NoSync) Name() string    { return "no synchronization" }
func (c *NoSync) Add(delta int64) { c.n += delta }
func (c *NoSync) Value() int64    { return c.n }

// MutexCounter serializes updates with a sync.Mutex.
type MutexCounter struct {
	mu sync.Mutex
	n  int64
}

func (c *MutexCounter) Name() string { return "mutex" }

func (c *MutexCounter) Add(delta int64) {
	c.mu.Lock()
	c.n += delta
	c.mu.Unlock()
}

func (c *MutexCounter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// SpinCounter serializes updates with a test-and-set spinlock.
type SpinCounter struct {
	lock atomic.Bool
	n    int64
}

func (c *SpinCounter) Name() string { return "spinlock" }

func (c *SpinCounter) Add(delta int64) {
	for !c.lock.CompareAndSwap(false, true) {
	}
	c.n += delta
	c.lock.Store(false)
}

func (c *SpinCounter) Value() int64 {
	for !c.lock.CompareAndSwap(false, true) {
	}
	defer c.lock.Store(false)
	return c.n
}

// AtomicCounter updates the counter with a single atomic instruction.
type AtomicCounter struct {
	n atomic.Int64
}

func (c *AtomicCounter) Name() string    { return "atomic add/sub" }
func (c *AtomicCounter) Add(delta int64) { c.n.Add(delta) }
func (c *AtomicCounter) Value() int64    { return c.n.Load() }

// Config sizes a benchmark run. Increment and decrement totals must
// balance; Validate reports whether they do.
type Config struct {
	IncWorkers    int
	Increment     int64
	IncIterations int
	DecWorkers    int
	Decrement     int64
}

// DefaultConfig mirrors the classic lab setup: five incrementers adding
// two 20000 times, four decrementers subtracting two, balanced to zero.
func DefaultConfig() Config {
	return Config{
		IncWorkers:    5,
		Increment:     2,
		IncIterations: 20000,
		DecWorkers:    4,
		Decrement:     2,
	}
}

// DecIterations returns the per-worker decrement iteration count that
// balances the configured increments to an expected final value of zero.
func (c Config) DecIterations() int {
	return int(int64(c.IncIterations) * int64(c.IncWorkers) * c.Increment /
		int64(c.DecWorkers) / c.Decrement)
}

// Balanced reports whether the derived decrement iterations cancel the
// increments exactly (integer division can make them drift).
func (c Config) Balanced() bool {
	inc := int64(c.IncIterations) * int64(c.IncWorkers) * c.Increment
	dec := int64(c.DecIterations()) * int64(c.DecWorkers) * c.Decrement
	return inc == dec
}

// WorkerKind distinguishes incrementing from decrementing workers.
type WorkerKind string

const (
	KindInc WorkerKind = "inc"
	KindDec WorkerKind = "dec"
)

// WorkerResult is the timing of a single worker goroutine.
type WorkerResult struct {
	ID       int
	Kind     WorkerKind
	Duration time.Duration
}

// Result summarizes one strategy's run.
type Result struct {
	Strategy string
	Counter  int64
	OK       bool // counter landed on the expected zero
	Workers  []WorkerResult
	Total    time.Duration // sum of worker durations
	Average  time.Duration // Total / number of workers
}

// Run drives the configured workers against the counter and collects
// per-worker timings. The counter should start at zero.
func Run(cfg Config, counter Counter) Result {
	nworkers := cfg.IncWorkers + cfg.DecWorkers
	workers := make([]WorkerResult, nworkers)

	var wg sync.WaitGroup
	worker := func(idx int, kind WorkerKind, delta int64, iterations int) {
		defer wg.Done()
		start := time.Now()
		for i := 0; i < iterations; i++ {
			counter.Add(delta)
		}
		workers[idx] = WorkerResult{ID: idx, Kind: kind, Duration: time.Since(start)}
	}

	idx := 0
	for i := 0; i < cfg.IncWorkers; i++ {
		wg.Add(1)
		go worker(idx, KindInc, cfg.Increment, cfg.IncIterations)
		idx++
	}
	decIterations := cfg.DecIterations()
	for i := 0; i < cfg.DecWorkers; i++ {
		wg.Add(1)
		go worker(idx, KindDec, -cfg.Decrement, decIterations)
		idx++
	}
	wg.Wait()

	var total time.Duration
	for _, w := range workers {
		total += w.Duration
	}

	value := counter.Value()
	return Result{
		Strategy: counter.Name(),
		Counter:  value,
		OK:       value == 0,
		Workers:  workers,
		Total:    total,
		Average:  total / time.Duration(nworkers),
	}
}

// RunAll benchmarks every strategy in the canonical order.
func RunAll(cfg Config) []Result {
	counters := []Counter{
		&NoSync{},
		&MutexCounter{},
		&SpinCounter{},
		&AtomicCounter{},
	}
	results := make([]Result, 0, len(counters))
	for _, c := range counters {
		results = append(results, Run(cfg, c))
	}
	return results
}

package conc

import (
	"sync"
	"sync/atomic"
	"time"
)

// Item 66: synchronize access to shared mutable state.
//
// An unsynchronized bool is not a stop flag: without a happens-before
// edge the worker may never observe the write, and the compiler is free
// to hoist the read out of the loop. atomic.Bool gives visibility at
// flag granularity; a mutex generalizes to compound state.

// rawFlagStopper polls a plain bool - DON'T DO THIS. The loop races with
// Stop and may spin forever under optimization.
type rawFlagStopper struct {
	stop  bool
	ticks int
}

func (s *rawFlagStopper) run(maxSpin int) {
	// The bound exists only so the demo terminates when the write is
	// never observed.
	for i := 0; !s.stop && i < maxSpin; i++ {
		s.ticks++
	}
}

// AtomicStopper publishes the flag with atomic operations.
type AtomicStopper struct {
	stop  atomic.Bool
	ticks atomic.Int64
}

// Run spins until stopped.
func (s *AtomicStopper) Run() {
	for !s.stop.Load() {
		s.ticks.Add(1)
	}
}

// Stop requests termination; the worker is guaranteed to observe it.
func (s *AtomicStopper) Stop() { s.stop.Store(true) }

// Ticks reports loop iterations.
func (s *AtomicStopper) Ticks() int64 { return s.ticks.Load() }

// Tally is the mutex generalization for compound state: count and sum
// must move together.
type Tally struct {
	mu    sync.Mutex
	count int64
	sum   int64
}

// Add records one observation.
func (t *Tally) Add(v int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count++
	t.sum += v
}

// Snapshot returns a consistent (count, sum) pair.
func (t *Tally) Snapshot() (int64, int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count, t.sum
}

// LostUpdates runs n goroutines incrementing an unsynchronized counter and
// an atomic one side by side, returning both totals. The gap is the lesson.
func LostUpdates(goroutines, increments int) (racy int64, exact int64) {
	var unsafeCounter int64
	var safeCounter atomic.Int64

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range increments {
				unsafeCounter++ // racy read-modify-write
				safeCounter.Add(1)
				time.Sleep(0)
			}
		}()
	}
	wg.Wait()
	return unsafeCounter, safeCounter.Load()
}

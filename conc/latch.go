package conc

import (
	"sync"
	"sync/atomic"
)

// Item 69: prefer the library's coordination primitives to wait loops.
//
// The hand-rolled countdown latch below spins on an atomic counter. It
// burns a core per waiter and still provides no ordering guarantee beyond
// the counter itself. WaitGroup plus a start channel expresses the same
// barrier declaratively and parks the waiters.

// spinLatch counts down to zero and makes waiters spin - DON'T DO THIS.
type spinLatch struct {
	remaining atomic.Int64
}

func newSpinLatch(n int) *spinLatch {
	l := &spinLatch{}
	l.remaining.Store(int64(n))
	return l
}

func (l *spinLatch) countDown() { l.remaining.Add(-1) }

func (l *spinLatch) await() {
	for l.remaining.Load() > 0 {
	}
}

// StartGate lines workers up at a barrier and releases them together,
// reporting when all have finished.
type StartGate struct {
	start chan struct{}
	ready sync.WaitGroup
	done  sync.WaitGroup
}

// NewStartGate creates a gate for n workers.
func NewStartGate(n int) *StartGate {
	g := &StartGate{start: make(chan struct{})}
	g.ready.Add(n)
	g.done.Add(n)
	return g
}

// Run registers the calling goroutine, blocks until Release, runs fn.
func (g *StartGate) Run(fn func()) {
	g.ready.Done()
	<-g.start
	fn()
	g.done.Done()
}

// Release waits for all workers to arrive, then starts them simultaneously.
func (g *StartGate) Release() {
	g.ready.Wait()
	close(g.start)
}

// Wait blocks until every worker's fn has returned.
func (g *StartGate) Wait() { g.done.Wait() }

// Interner deduplicates strings concurrently. LoadOrStore makes the
// put-if-absent atomic; the fast path is a lock-free read.
type Interner struct {
	pool sync.Map
}

// Intern returns the canonical instance of s.
func (in *Interner) Intern(s string) string {
	if canon, ok := in.pool.Load(s); ok {
		return canon.(string)
	}
	canon, _ := in.pool.LoadOrStore(s, s)
	return canon.(string)
}

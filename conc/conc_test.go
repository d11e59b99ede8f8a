package conc

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Item 66: synchronization
// -----------------------------------------------------------------------------

// TestAtomicStopper verifies the stop request is observed.
func TestAtomicStopper(t *testing.T) {
	t.Parallel()

	s := &AtomicStopper{}
	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	s.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not observe the stop flag")
	}
	assert.Positive(t, s.Ticks())
}

// TestTally verifies compound state stays consistent under concurrency.
func TestTally(t *testing.T) {
	t.Parallel()

	tl := &Tally{}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				tl.Add(2)
			}
		}()
	}
	wg.Wait()

	count, sum := tl.Snapshot()
	assert.Equal(t, int64(800), count)
	assert.Equal(t, int64(1600), sum)
}

//
// -----------------------------------------------------------------------------
// Item 67: open calls
// -----------------------------------------------------------------------------

// TestObservableSet_DeadlockUnderLock verifies the under-lock variant
// wedges on a reentrant observer.
func TestObservableSet_DeadlockUnderLock(t *testing.T) {
	t.Parallel()

	assert.True(t, DetectDeadlock(50*time.Millisecond))
}

// TestObservableSet_SnapshotNotify verifies observers may reenter and even
// mutate the set during notification.
func TestObservableSet_SnapshotNotify(t *testing.T) {
	t.Parallel()

	s := NewObservableSet()
	var notified atomic.Int64
	s.Observe(func(set *ObservableSet, added int) {
		notified.Add(1)
		if added < 3 {
			set.Add(added + 100) // reentrant mutation
		}
	})

	assert.True(t, s.Add(1))
	assert.False(t, s.Add(1), "duplicate insert reports false and skips notify")
	assert.True(t, s.Contains(101))
	assert.Equal(t, int64(2), notified.Load())
}

//
// -----------------------------------------------------------------------------
// Item 68: worker pool
// -----------------------------------------------------------------------------

// TestRunAll verifies completion, bounded concurrency and error propagation.
func TestRunAll(t *testing.T) {
	t.Parallel()

	var active, peak atomic.Int64
	tasks := make([]Task, 30)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			n := active.Add(1)
			defer active.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			return nil
		}
	}
	require.NoError(t, RunAll(context.Background(), 4, tasks))
	assert.LessOrEqual(t, peak.Load(), int64(4))
}

// TestRunAll_FirstErrorCancels verifies a failure skips queued tasks.
func TestRunAll_FirstErrorCancels(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var ran atomic.Int64
	tasks := make([]Task, 50)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			if i == 0 {
				return boom
			}
			ran.Add(1)
			time.Sleep(time.Millisecond)
			return nil
		}
	}
	err := RunAll(context.Background(), 2, tasks)
	assert.ErrorIs(t, err, boom)
	assert.Less(t, ran.Load(), int64(49), "cancellation skipped queued tasks")
}

//
// -----------------------------------------------------------------------------
// Item 69: gates and interning
// -----------------------------------------------------------------------------

// TestSpinLatch verifies the hand-rolled latch releases its waiter. It is
// correct (atomics carry the visibility), just wasteful.
func TestSpinLatch(t *testing.T) {
	t.Parallel()

	l := newSpinLatch(2)
	released := make(chan struct{})
	go func() {
		l.await()
		close(released)
	}()

	l.countDown()
	l.countDown()
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("latch never released")
	}
}

// TestStartGate verifies nobody runs before Release and everybody runs
// after.
func TestStartGate(t *testing.T) {
	t.Parallel()

	gate := NewStartGate(3)
	var started atomic.Int64
	for range 3 {
		go gate.Run(func() { started.Add(1) })
	}

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, int64(0), started.Load(), "gate held everyone")

	gate.Release()
	gate.Wait()
	assert.Equal(t, int64(3), started.Load())
}

// TestInterner verifies concurrent interning converges on one instance.
func TestInterner(t *testing.T) {
	t.Parallel()

	in := &Interner{}
	results := make([]string, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = in.Intern("shared")
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
}

//
// -----------------------------------------------------------------------------
// Items 70-71: safety docs and lazy init
// -----------------------------------------------------------------------------

// TestHitCounter verifies the unconditionally-safe exemplar under load.
func TestHitCounter(t *testing.T) {
	t.Parallel()

	c := NewHitCounter()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				c.Hit("k")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 500, c.Count("k"))
}

// TestRoutingTable_OnceBuild verifies exactly one build under concurrent
// first use.
func TestRoutingTable_OnceBuild(t *testing.T) {
	t.Parallel()

	before := buildCount.Load()
	var rt RoutingTable
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "fra-1", rt.Lookup("eu"))
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1), buildCount.Load()-before)
}

//
// -----------------------------------------------------------------------------
// Items 72-73: scheduler independence and lifecycles
// -----------------------------------------------------------------------------

// TestChannelHandoff verifies the token count.
func TestChannelHandoff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, ChannelHandoff(100))
}

// TestFetch verifies both the in-time and timed-out paths.
func TestFetch(t *testing.T) {
	t.Parallel()

	v, ok := Fetch(context.Background(), func(context.Context) string { return "fast" }, time.Second)
	require.True(t, ok)
	assert.Equal(t, "fast", v)

	slow := func(ctx context.Context) string {
		<-ctx.Done()
		return "cancelled"
	}
	_, ok = Fetch(context.Background(), slow, 5*time.Millisecond)
	assert.False(t, ok)
}

// TestGroup verifies first-error semantics and sibling cancellation.
func TestGroup(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	g := NewGroup(context.Background())
	var siblingStopped atomic.Bool

	g.Go(func(context.Context) error { return boom })
	g.Go(func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			siblingStopped.Store(true)
			return nil
		case <-time.After(time.Second):
			return errors.New("sibling never cancelled")
		}
	})

	assert.ErrorIs(t, g.Wait(), boom)
	assert.True(t, siblingStopped.Load())
}

// TestGroup_AllSucceed verifies the nil-error path.
func TestGroup_AllSucceed(t *testing.T) {
	t.Parallel()

	g := NewGroup(context.Background())
	var n atomic.Int64
	for range 5 {
		g.Go(func(context.Context) error {
			n.Add(1)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int64(5), n.Load())
}

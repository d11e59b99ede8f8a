package conc

import (
	"context"
	"sync"
	"time"
)

// Item 73: manage goroutine lifecycles explicitly.
//
// A goroutine nobody waits for is a leak: it holds its stack, its
// captured references, and whatever it is blocked on, forever. Every
// goroutine needs an owner that can both stop it and wait for it.

// fetchLeaky abandons its goroutine on timeout - DON'T DO THIS. The send
// on the unbuffered channel blocks forever once the caller has gone.
func fetchLeaky(fetch func() string, timeout time.Duration) (string, bool) {
	ch := make(chan string)
	go func() {
		ch <- fetch() // blocks forever if the caller timed out
	}()
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

// Fetch gives the goroutine a buffered slot so it can always complete,
// and a context so slow fetches can be told to stop.
func Fetch(ctx context.Context, fetch func(context.Context) string, timeout time.Duration) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan string, 1)
	go func() {
		ch <- fetch(ctx)
	}()
	select {
	case v := <-ch:
		return v, true
	case <-ctx.Done():
		return "", false
	}
}

// Group runs a set of goroutines as one unit: the first failure cancels
// the shared context, and Wait blocks until every member has returned.
type Group struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	errOnce sync.Once
	err     error
}

// NewGroup derives a group from parent.
func NewGroup(parent context.Context) *Group {
	ctx, cancel := context.WithCancel(parent)
	return &Group{ctx: ctx, cancel: cancel}
}

// Go starts fn as a member of the group.
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := fn(g.ctx); err != nil {
			g.errOnce.Do(func() {
				g.err = err
				g.cancel()
			})
		}
	}()
}

// Wait blocks until all members return, then releases the context. It
// returns the first error.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.cancel()
	return g.err
}

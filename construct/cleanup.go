package construct

import (
	"errors"
	"runtime"
	"sync/atomic"
)

// Item 7: avoid finalizers; release resources with an explicit Close.
//
// runtime.SetFinalizer gives no promptness guarantee at all: the finalizer
// runs at some future collection, or never. Anything time-critical (file
// handles, sockets, locks) must be released by an explicit Close the caller
// defers.

// Session models a resource that must be released.
type Session struct {
	closed atomic.Bool
	// released is shared with the demo/tests so release can be observed
	// without poking at internals.
	released *atomic.Int64
}

// ErrSessionClosed is returned when a closed session is used.
var ErrSessionClosed = errors.New("construct: session already closed")

// OpenSession acquires a session. counter is incremented when the session is
// released, however that happens.
func OpenSession(counter *atomic.Int64) *Session {
	return &Session{released: counter}
}

// Close releases the session. Safe to call more than once; only the first
// call releases.
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return ErrSessionClosed
	}
	s.released.Add(1)
	return nil
}

// OpenSessionWithFinalizer relies on the collector to release - DON'T DO
// THIS for anything whose release matters. The finalizer may run long after
// the session became garbage, or not at all if the process exits first.
func OpenSessionWithFinalizer(counter *atomic.Int64) *Session {
	s := &Session{released: counter}
	runtime.SetFinalizer(s, func(sess *Session) {
		_ = sess.Close()
	})
	return s
}

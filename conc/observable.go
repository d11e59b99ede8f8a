package conc

import (
	"slices"
	"sync"
	"time"
)

// Item 67: avoid excessive synchronization.
//
// Never invoke an alien method while holding a lock. An observer callback
// is alien code: if it reenters the set, a non-reentrant mutex deadlocks
// on the spot. The fixes are to snapshot the observer list and notify
// outside the critical section, or to keep the callback an open call from
// the start.

// ElementObserver is invoked after each successful insertion.
type ElementObserver func(set *ObservableSet, added int)

// ObservableSet notifies observers of additions. The notify strategy is
// the whole lesson, so it is selectable.
type ObservableSet struct {
	mu        sync.Mutex
	elems     map[int]struct{}
	observers []ElementObserver
}

// NewObservableSet returns an empty set.
func NewObservableSet() *ObservableSet {
	return &ObservableSet{elems: map[int]struct{}{}}
}

// Observe registers an observer.
func (s *ObservableSet) Observe(fn ElementObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Contains reports membership.
func (s *ObservableSet) Contains(v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.elems[v]
	return ok
}

// Len reports the element count.
func (s *ObservableSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.elems)
}

// addLocked inserts v and reports whether it was new. Callers hold mu.
func (s *ObservableSet) addLocked(v int) bool {
	if _, ok := s.elems[v]; ok {
		return false
	}
	s.elems[v] = struct{}{}
	return true
}

// addNotifyUnderLock calls the observers while still holding the lock -
// DON'T DO THIS. An observer that touches the set again deadlocks.
func (s *ObservableSet) addNotifyUnderLock(v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.addLocked(v) {
		return false
	}
	for _, fn := range s.observers {
		fn(s, v) // alien call inside the critical section
	}
	return true
}

// Add inserts v and notifies from a snapshot taken under the lock; the
// calls themselves run outside it, so observers may reenter freely.
func (s *ObservableSet) Add(v int) bool {
	s.mu.Lock()
	added := s.addLocked(v)
	snapshot := slices.Clone(s.observers)
	s.mu.Unlock()

	if !added {
		return false
	}
	for _, fn := range snapshot {
		fn(s, v)
	}
	return true
}

// DetectDeadlock runs the under-lock variant with a reentrant observer and
// reports whether the call completed within the window. It exists so the
// deadlock can be shown without hanging the process.
func DetectDeadlock(window time.Duration) bool {
	s := NewObservableSet()
	s.Observe(func(set *ObservableSet, added int) {
		set.Contains(added) // reenters the locked set
	})

	done := make(chan struct{})
	go func() {
		s.addNotifyUnderLock(1)
		close(done)
	}()
	select {
	case <-done:
		return false
	case <-time.After(window):
		return true
	}
}

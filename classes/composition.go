package classes

// Item 16: favor composition plus forwarding over embedding when the outer
// type must observe every operation.
//
// Java's InstrumentedHashSet overcounts because addAll dispatches back into
// the subclass. Go's embedding fails the opposite way: promoted methods
// never dispatch to the outer type, so an embedded base's AddAll calls the
// base's Add and the outer counter silently undercounts. Either way the
// lesson holds: wrap and forward explicitly.

// StringSet is the abstraction both versions instrument.
type StringSet interface {
	Add(s string) bool
	AddAll(ss ...string) int
	Contains(s string) bool
	Len() int
}

// mapSet is the plain implementation.
type mapSet struct {
	items map[string]struct{}
}

// NewStringSet returns an empty set.
func NewStringSet() StringSet {
	return &mapSet{items: map[string]struct{}{}}
}

func (m *mapSet) Add(s string) bool {
	if _, ok := m.items[s]; ok {
		return false
	}
	m.items[s] = struct{}{}
	return true
}

func (m *mapSet) AddAll(ss ...string) int {
	n := 0
	for _, s := range ss {
		if m.Add(s) {
			n++
		}
	}
	return n
}

func (m *mapSet) Contains(s string) bool {
	_, ok := m.items[s]
	return ok
}

func (m *mapSet) Len() int { return len(m.items) }

// EmbeddedCountingSet instruments by embedding - DON'T DO THIS. Its Add
// shadows the embedded one, but AddAll is promoted from mapSet and calls
// mapSet.Add directly: bulk additions never reach the counter.
type EmbeddedCountingSet struct {
	mapSet
	AddCount int
}

// NewEmbeddedCountingSet returns a counting set built on embedding.
func NewEmbeddedCountingSet() *EmbeddedCountingSet {
	return &EmbeddedCountingSet{mapSet: mapSet{items: map[string]struct{}{}}}
}

// Add counts, then delegates. Only direct calls arrive here.
func (e *EmbeddedCountingSet) Add(s string) bool {
	e.AddCount++
	return e.mapSet.Add(s)
}

// ForwardingSet forwards every StringSet operation to a delegate. It exists
// so wrappers like CountingSet (here) and the concurrency chapter's
// observable set don't each re-type the forwarding boilerplate.
type ForwardingSet struct {
	Inner StringSet
}

// Add forwards to the delegate.
func (f *ForwardingSet) Add(s string) bool { return f.Inner.Add(s) }

// AddAll forwards to the delegate.
func (f *ForwardingSet) AddAll(ss ...string) int { return f.Inner.AddAll(ss...) }

// Contains forwards to the delegate.
func (f *ForwardingSet) Contains(s string) bool { return f.Inner.Contains(s) }

// Len forwards to the delegate.
func (f *ForwardingSet) Len() int { return f.Inner.Len() }

// CountingSet instruments by composition. Every path into the delegate goes
// through its own methods, so the count is exact regardless of which
// StringSet implementation it wraps.
type CountingSet struct {
	ForwardingSet
	AddCount int
}

// NewCountingSet wraps an existing set.
func NewCountingSet(inner StringSet) *CountingSet {
	return &CountingSet{ForwardingSet: ForwardingSet{Inner: inner}}
}

// Add counts one attempted addition.
func (c *CountingSet) Add(s string) bool {
	c.AddCount++
	return c.ForwardingSet.Add(s)
}

// AddAll counts every attempted addition, then forwards once.
func (c *CountingSet) AddAll(ss ...string) int {
	c.AddCount += len(ss)
	return c.ForwardingSet.AddAll(ss...)
}

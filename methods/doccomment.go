package methods

import "errors"

// Item 44: write doc comments for every exported API element.
//
// This file is its own exhibit: a small exported surface documented the way
// godoc expects. Comments begin with the identifier, state the contract
// (inputs, outputs, errors, nil behavior), and document the type's
// invariants on the type.

// Ring is a fixed-capacity FIFO buffer of strings. The zero value is not
// usable; construct with NewRing. Ring is not safe for concurrent use.
type Ring struct {
	buf  []string
	head int
	n    int
}

// ErrRingFull is returned by Push when the ring is at capacity.
var ErrRingFull = errors.New("methods: ring full")

// ErrRingEmpty is returned by Shift when the ring holds no elements.
var ErrRingEmpty = errors.New("methods: ring empty")

// NewRing returns an empty ring holding at most capacity elements.
// It panics if capacity is not positive, since that is a programming error
// rather than an input condition.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		panic("methods: ring capacity must be positive")
	}
	return &Ring{buf: make([]string, capacity)}
}

// Push appends v to the tail. It returns ErrRingFull when the ring already
// holds Cap elements; the ring is unchanged in that case.
func (r *Ring) Push(v string) error {
	if r.n == len(r.buf) {
		return ErrRingFull
	}
	r.buf[(r.head+r.n)%len(r.buf)] = v
	r.n++
	return nil
}

// Shift removes and returns the head element. It returns ErrRingEmpty when
// the ring holds no elements.
func (r *Ring) Shift() (string, error) {
	if r.n == 0 {
		return "", ErrRingEmpty
	}
	v := r.buf[r.head]
	r.buf[r.head] = ""
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return v, nil
}

// Len reports the number of buffered elements, between 0 and Cap.
func (r *Ring) Len() int { return r.n }

// Cap reports the fixed capacity set at construction.
func (r *Ring) Cap() int { return len(r.buf) }

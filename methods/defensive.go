package methods

import (
	"errors"
	"slices"
	"time"
)

// Item 39: make defensive copies of mutable inputs and outputs.
//
// time.Time is immutable, so the classic Date-based Period trap does not
// translate directly; the slice-backed version does, completely. A type
// that stores a caller's slice shares every later mutation with them.

// ErrPeriodInverted is returned when a period would end before it starts.
var ErrPeriodInverted = errors.New("methods: period end precedes start")

// Period is an immutable time range. time.Time values are value types, so
// storing them is already a copy; the validation still belongs in the
// constructor.
type Period struct {
	start, end time.Time
}

// NewPeriod validates start <= end.
func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, ErrPeriodInverted
	}
	return Period{start: start, end: end}, nil
}

// Start returns the start of the period.
func (p Period) Start() time.Time { return p.start }

// End returns the end of the period.
func (p Period) End() time.Time { return p.end }

// leakySchedule stores and returns caller slices - DON'T DO THIS. The
// caller that built the slice can reorder "validated" entries afterwards,
// and the caller that read them can corrupt internal state.
type leakySchedule struct {
	slots []Period
}

func (s *leakySchedule) SetSlots(slots []Period) { s.slots = slots }
func (s *leakySchedule) Slots() []Period         { return s.slots }

// Schedule copies on the way in and on the way out.
type Schedule struct {
	slots []Period
}

// SetSlots stores a private copy of slots.
func (s *Schedule) SetSlots(slots []Period) {
	s.slots = slices.Clone(slots)
}

// Slots returns a copy of the stored slots.
func (s *Schedule) Slots() []Period {
	return slices.Clone(s.slots)
}

package errs

import "errors"

// Item 62: document every error a function can return.
//
// TicketCounter is the exemplar: each method's doc comment names its error
// conditions by sentinel, so a caller can write the full handling without
// reading the body.

// Errors returned by TicketCounter.
var (
	// ErrSoldOut is returned by Reserve when no tickets remain.
	ErrSoldOut = errors.New("errs: sold out")
	// ErrNotReserved is returned by Release for a ticket never handed out.
	ErrNotReserved = errors.New("errs: ticket not reserved")
)

// TicketCounter hands out a fixed pool of numbered tickets.
type TicketCounter struct {
	total    int
	reserved map[int]bool
}

// NewTicketCounter creates a counter with total tickets, numbered from 0.
// It panics if total is negative.
func NewTicketCounter(total int) *TicketCounter {
	if total < 0 {
		panic("errs: negative ticket pool")
	}
	return &TicketCounter{total: total, reserved: map[int]bool{}}
}

// Reserve hands out the lowest free ticket number.
//
// It returns ErrSoldOut if every ticket is reserved. No other errors are
// returned.
func (t *TicketCounter) Reserve() (int, error) {
	for i := range t.total {
		if !t.reserved[i] {
			t.reserved[i] = true
			return i, nil
		}
	}
	return 0, ErrSoldOut
}

// Release returns a ticket to the pool.
//
// It returns ErrNotReserved if n was not currently reserved, including
// numbers outside the pool. No other errors are returned.
func (t *TicketCounter) Release(n int) error {
	if !t.reserved[n] {
		return ErrNotReserved
	}
	delete(t.reserved, n)
	return nil
}

// Free reports how many tickets remain. It cannot fail.
func (t *TicketCounter) Free() int {
	return t.total - len(t.reserved)
}

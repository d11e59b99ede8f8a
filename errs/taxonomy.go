package errs

import (
	"errors"
	"fmt"
	"strconv"
)

// Item 58: errors for recoverable conditions, panics for programming bugs.
//
// Bad external input is an expected condition and comes back as an error
// the caller can test with errors.Is. Violating a constructor's documented
// precondition is a bug in the calling code, and bugs panic.

// ErrBadQuantity reports unparseable or out-of-range external input.
var ErrBadQuantity = errors.New("errs: bad quantity")

// ParseQuantity parses a positive decimal count from untrusted input.
func ParseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadQuantity, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", ErrBadQuantity, n)
	}
	return n, nil
}

// Buffer holds up to cap items.
type Buffer struct {
	items []string
	limit int
}

// NewBuffer panics when limit is not positive: a non-positive limit cannot
// come from user input, only from broken calling code.
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		panic(fmt.Sprintf("errs: NewBuffer limit must be positive, got %d", limit))
	}
	return &Buffer{limit: limit}
}

// Add stores an item; a full buffer is an expected condition.
func (b *Buffer) Add(s string) error {
	if len(b.items) >= b.limit {
		return fmt.Errorf("errs: buffer full at %d items", b.limit)
	}
	b.items = append(b.items, s)
	return nil
}

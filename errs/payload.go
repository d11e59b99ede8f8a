package errs

import "fmt"

// Item 63: include failure-capture information in errors.
//
// "quota exceeded" tells an operator nothing; an error that carries the
// requested and available amounts is diagnosable from the log line alone,
// and callers can branch on the fields instead of parsing the message.

// QuotaError carries the inputs that made the allocation fail.
type QuotaError struct {
	Resource  string
	Requested int64
	Available int64
}

// Error implements error.
func (e *QuotaError) Error() string {
	return fmt.Sprintf("errs: %s quota exceeded: requested %d, available %d",
		e.Resource, e.Requested, e.Available)
}

// Shortfall reports how far over the request was.
func (e *QuotaError) Shortfall() int64 { return e.Requested - e.Available }

// Allocator tracks a single resource budget.
type Allocator struct {
	resource  string
	available int64
}

// NewAllocator creates a budget for the named resource.
func NewAllocator(resource string, budget int64) *Allocator {
	return &Allocator{resource: resource, available: budget}
}

// Allocate reserves n units or fails with a fully-described QuotaError.
func (a *Allocator) Allocate(n int64) error {
	if n > a.available {
		return &QuotaError{Resource: a.resource, Requested: n, Available: a.available}
	}
	a.available -= n
	return nil
}

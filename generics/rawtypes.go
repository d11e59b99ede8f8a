package generics

import "fmt"

// Item 23: don't use `any` where a type parameter will do.
//
// An []any "collection of stamps" happily accepts a coin; the failure shows
// up as a runtime assertion error at the far end of the program. The typed
// version refuses the coin at the call site.

// Stamp and Coin are distinct value types with no shared behavior.
type Stamp struct{ Country string }

type Coin struct{ Denomination int }

// AnyCollection is the raw-type analogue - DON'T DO THIS for homogeneous
// data. Nothing stops a Coin from entering.
type AnyCollection struct {
	items []any
}

// Add accepts anything; the mistake is silent here.
func (c *AnyCollection) Add(v any) { c.items = append(c.items, v) }

// StampAt pays for the looseness: the assertion can fail long after the
// erroneous Add.
func (c *AnyCollection) StampAt(i int) (Stamp, error) {
	s, ok := c.items[i].(Stamp)
	if !ok {
		return Stamp{}, fmt.Errorf("generics: element %d is %T, not a stamp", i, c.items[i])
	}
	return s, nil
}

// Collection is the parameterized version: Collection[Stamp] cannot receive
// a Coin, and At needs no assertion and no error path.
type Collection[T any] struct {
	items []T
}

// Add appends a value of exactly the element type.
func (c *Collection[T]) Add(v T) { c.items = append(c.items, v) }

// At returns the i'th element.
func (c *Collection[T]) At(i int) T { return c.items[i] }

// Len reports the element count.
func (c *Collection[T]) Len() int { return len(c.items) }

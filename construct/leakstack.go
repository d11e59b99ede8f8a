package construct

import "errors"

// Item 6: eliminate obsolete references.
//
// A type that manages its own storage must clear slots it no longer
// considers live. LeakyStack keeps popped elements reachable through the
// backing array; Stack zeroes the slot so the garbage collector can reclaim
// them.

// ErrEmptyStack is returned by Pop on an empty stack.
var ErrEmptyStack = errors.New("construct: pop from empty stack")

const defaultStackCapacity = 16

// LeakyStack retains popped elements - DON'T DO THIS. Everything ever
// pushed stays reachable via the backing array until it is overwritten by a
// later push, even when the program holds no other reference to it.
type LeakyStack struct {
	elements []any
	size     int
}

// NewLeakyStack returns an empty stack with the default capacity.
func NewLeakyStack() *LeakyStack {
	return &LeakyStack{elements: make([]any, defaultStackCapacity)}
}

// Push appends an element.
func (s *LeakyStack) Push(e any) {
	s.ensureCapacity()
	s.elements[s.size] = e
	s.size++
}

// Pop removes and returns the top element. The backing slot is left intact,
// which is the leak.
func (s *LeakyStack) Pop() (any, error) {
	if s.size == 0 {
		return nil, ErrEmptyStack
	}
	s.size--
	return s.elements[s.size], nil
}

// Retained reports how many slots of the backing array still hold a value,
// live or not. Used by the demo and tests to make the leak observable.
func (s *LeakyStack) Retained() int {
	n := 0
	for _, e := range s.elements {
		if e != nil {
			n++
		}
	}
	return n
}

func (s *LeakyStack) ensureCapacity() {
	if len(s.elements) == s.size {
		grown := make([]any, 2*s.size+1)
		copy(grown, s.elements)
		s.elements = grown
	}
}

// Stack is the corrected version: Pop clears the vacated slot.
type Stack struct {
	elements []any
	size     int
}

// NewStack returns an empty stack with the default capacity.
func NewStack() *Stack {
	return &Stack{elements: make([]any, defaultStackCapacity)}
}

// Push appends an element.
func (s *Stack) Push(e any) {
	if len(s.elements) == s.size {
		grown := make([]any, 2*s.size+1)
		copy(grown, s.elements)
		s.elements = grown
	}
	s.elements[s.size] = e
	s.size++
}

// Pop removes and returns the top element, clearing the obsolete reference.
// A later out-of-bounds bug now fails loudly on a nil element instead of
// quietly resurrecting stale data.
func (s *Stack) Pop() (any, error) {
	if s.size == 0 {
		return nil, ErrEmptyStack
	}
	s.size--
	e := s.elements[s.size]
	s.elements[s.size] = nil
	return e, nil
}

// Len reports the number of live elements.
func (s *Stack) Len() int { return s.size }

// Retained reports occupied backing slots; for Stack this always equals Len.
func (s *Stack) Retained() int {
	n := 0
	for _, e := range s.elements {
		if e != nil {
			n++
		}
	}
	return n
}

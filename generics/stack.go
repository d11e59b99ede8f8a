package generics

import "errors"

// Item 26: generify your own containers.
//
// This is the construct chapter's stack with a type parameter. Note the
// popped-slot zeroing survives generification: `var zero T` is the generic
// spelling of nulling out the obsolete reference.

// ErrEmpty is returned by Pop and Peek on an empty stack.
var ErrEmpty = errors.New("generics: stack empty")

// Stack is a growable LIFO over any element type.
type Stack[T any] struct {
	elements []T
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push appends an element.
func (s *Stack[T]) Push(v T) {
	s.elements = append(s.elements, v)
}

// Pop removes and returns the top element. The vacated slot is zeroed so
// the backing array stops referencing popped values.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.elements) == 0 {
		return zero, ErrEmpty
	}
	i := len(s.elements) - 1
	v := s.elements[i]
	s.elements[i] = zero
	s.elements = s.elements[:i]
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.elements) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.elements[len(s.elements)-1], nil
}

// Len reports the element count.
func (s *Stack[T]) Len() int { return len(s.elements) }

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.elements) == 0 }

package generics

import "cmp"

// Item 28: widen APIs with constraints the way PECS widens them with
// wildcards.
//
// "Producer extends, consumer super" becomes: constrain element types with
// the loosest constraint the operation needs (`any` to move, `comparable`
// to dedupe, cmp.Ordered to order), and accept the underlying type with ~
// so named slice/channel types still fit.

// PushAll drains src into the stack; src only produces, so `any` suffices.
func (s *Stack[T]) PushAll(src []T) {
	for _, v := range src {
		s.Push(v)
	}
}

// PopAll pushes every element onto dst; dst only consumes.
func (s *Stack[T]) PopAll(dst *[]T) error {
	for !s.IsEmpty() {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		*dst = append(*dst, v)
	}
	return nil
}

// Max requires ordering and nothing more. The ~ in cmp.Ordered is what lets
// `type Celsius float64` satisfy it.
func Max[T cmp.Ordered](xs []T) (T, bool) {
	var best T
	if len(xs) == 0 {
		return best, false
	}
	best = xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}
	return best, true
}

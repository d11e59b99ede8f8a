package serial

import "encoding/json"

// Item 75: use a logical serialized form, not the physical one.
//
// StringList is a singly linked list. Its physical form is a chain of
// nodes; encoding that chain bakes the node layout into every stored
// payload and nests one object per element. The logical form is just the
// sequence, so that is what MarshalJSON emits.

type stringNode struct {
	value string
	next  *stringNode
}

// StringList is a singly linked string list.
type StringList struct {
	head *stringNode
	size int
}

// Push prepends a value.
func (l *StringList) Push(v string) {
	l.head = &stringNode{value: v, next: l.head}
	l.size++
}

// Len reports the element count.
func (l *StringList) Len() int { return l.size }

// Values returns the elements head-first.
func (l *StringList) Values() []string {
	out := make([]string, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// physicalNode mirrors the in-memory layout for the naive encoder.
type physicalNode struct {
	Value string        `json:"value"`
	Next  *physicalNode `json:"next,omitempty"`
}

// marshalPhysical encodes the node chain as nested objects - DON'T DO
// THIS. The payload depth equals the list length and the node layout is
// now wire format.
func (l *StringList) marshalPhysical() ([]byte, error) {
	var build func(n *stringNode) *physicalNode
	build = func(n *stringNode) *physicalNode {
		if n == nil {
			return nil
		}
		return &physicalNode{Value: n.value, Next: build(n.next)}
	}
	return json.Marshal(build(l.head))
}

// MarshalJSON emits the logical form: a flat array, head first.
func (l *StringList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

// UnmarshalJSON rebuilds the chain from the logical form.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	rebuilt := StringList{}
	for i := len(values) - 1; i >= 0; i-- {
		rebuilt.Push(values[i])
	}
	*l = rebuilt
	return nil
}

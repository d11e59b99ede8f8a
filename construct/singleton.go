package construct

import (
	"sync"

	"github.com/google/uuid"
)

// Item 3: enforce a singleton with an unexported type plus a sync.Once
// accessor.
//
// The type is unexported so no second instance can be literal-constructed
// from outside the package, and the accessor returns the interface it
// implements so tests can substitute a fake.

// Clock is the singleton's type as seen by clients. Exposing an interface
// instead of the concrete struct keeps client code mockable.
type Clock interface {
	// InstanceID identifies the process-wide instance.
	InstanceID() uuid.UUID
}

type systemClock struct {
	id uuid.UUID
}

func (c *systemClock) InstanceID() uuid.UUID { return c.id }

var (
	clockOnce sync.Once
	clockInst *systemClock
)

// SystemClock returns the process-wide instance, constructing it exactly
// once. The uuid makes the at-most-once guarantee observable: every caller
// sees the same InstanceID.
func SystemClock() Clock {
	clockOnce.Do(func() {
		clockInst = &systemClock{id: uuid.New()}
	})
	return clockInst
}

package serial

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Item 77: preserve identity across round-trips.
//
// Decoding normally allocates a fresh value, which silently forks any
// type whose whole point is being the one instance. The fix mirrors
// readResolve: encode a token, and have the decoder hand back the
// canonical instance instead of the freshly decoded one.

// Coordinator is the process-wide singleton.
type Coordinator struct {
	ID uuid.UUID `json:"id"`
}

var (
	coordinatorOnce sync.Once
	coordinator     *Coordinator
)

// TheCoordinator returns the single instance.
func TheCoordinator() *Coordinator {
	coordinatorOnce.Do(func() {
		coordinator = &Coordinator{ID: uuid.New()}
	})
	return coordinator
}

// decodeForked is the naive path - DON'T DO THIS with singletons. The
// returned value carries the right ID but is a second instance.
func decodeForked(data []byte) (*Coordinator, error) {
	var c Coordinator
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DecodeCoordinator decodes the token and resolves to the canonical
// instance, discarding the fresh allocation.
func DecodeCoordinator(data []byte) (*Coordinator, error) {
	var c Coordinator
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return TheCoordinator(), nil
}

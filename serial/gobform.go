package serial

import (
	"bytes"
	"encoding/gob"
	"io"
	"time"
)

// Item 74: implement encoding support judiciously.
//
// The moment a type is encoded and stored, its field layout becomes
// public API: every rename is a migration and every invariant can be
// bypassed by a hand-crafted payload. Opt in deliberately, keep the
// encoded set small, and route decoding through validation.

// Snapshot is deliberately encodable: exported fields only, no behavior
// hidden in the layout. Changing a field name here breaks every stored
// snapshot.
type Snapshot struct {
	Service  string
	TakenAt  time.Time
	Counters map[string]int64
}

// EncodeSnapshot writes s in gob format.
func EncodeSnapshot(w io.Writer, s Snapshot) error {
	return gob.NewEncoder(w).Encode(s)
}

// DecodeSnapshot reads one snapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	err := gob.NewDecoder(r).Decode(&s)
	return s, err
}

// RoundTripSnapshot is the demo helper: encode, decode, return both the
// copy and the encoded size.
func RoundTripSnapshot(s Snapshot) (Snapshot, int, error) {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		return Snapshot{}, 0, err
	}
	// The decoder drains the buffer, so measure before reading.
	size := buf.Len()
	out, err := DecodeSnapshot(&buf)
	return out, size, err
}

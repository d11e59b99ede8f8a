package serial

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Item 76: decode defensively.
//
// A decoder is a public constructor reachable by anyone who can write
// bytes. Span's invariant (start before end) must hold after decoding a
// hostile payload just as it does after NewSpan.

// ErrSpanInverted reports an end before its start.
var ErrSpanInverted = errors.New("serial: span end precedes start")

// Span is a validated time interval. The zero value is empty and valid.
type Span struct {
	start time.Time
	end   time.Time
}

// NewSpan validates and constructs.
func NewSpan(start, end time.Time) (Span, error) {
	if end.Before(start) {
		return Span{}, fmt.Errorf("%w: %s > %s", ErrSpanInverted, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Span{start: start, end: end}, nil
}

// Start returns the inclusive start.
func (s Span) Start() time.Time { return s.start }

// End returns the exclusive end.
func (s Span) End() time.Time { return s.end }

// Duration returns the span length.
func (s Span) Duration() time.Duration { return s.end.Sub(s.start) }

// MarshalJSON emits the two instants.
func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	}{s.start, s.end})
}

// UnmarshalJSON decodes into a scratch struct and routes the result
// through the same validation as NewSpan, so no payload can produce an
// inverted span.
func (s *Span) UnmarshalJSON(data []byte) error {
	var raw struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	span, err := NewSpan(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*s = span
	return nil
}

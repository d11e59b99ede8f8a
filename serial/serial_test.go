package serial

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

//
// -----------------------------------------------------------------------------
// Item 74: gob round-trip
// -----------------------------------------------------------------------------

// TestRoundTripSnapshot verifies the copy matches and some bytes moved.
func TestRoundTripSnapshot(t *testing.T) {
	t.Parallel()

	in := Snapshot{
		Service:  "billing",
		TakenAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Counters: map[string]int64{"requests": 7},
	}
	out, size, err := RoundTripSnapshot(in)
	require.NoError(t, err)
	assert.Positive(t, size)

	// Reported size is the encoded length, not what is left after decode.
	var buf bytes.Buffer
	require.NoError(t, EncodeSnapshot(&buf, in))
	assert.Equal(t, buf.Len(), size)
	assert.Equal(t, in.Service, out.Service)
	assert.True(t, in.TakenAt.Equal(out.TakenAt))
	assert.Equal(t, in.Counters, out.Counters)
}

//
// -----------------------------------------------------------------------------
// Item 75: logical form
// -----------------------------------------------------------------------------

// TestStringList_LogicalForm verifies the array encoding round-trips and
// stays flat.
func TestStringList_LogicalForm(t *testing.T) {
	t.Parallel()

	l := &StringList{}
	l.Push("c")
	l.Push("b")
	l.Push("a")

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b","c"]`, string(data))

	var back StringList
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, l.Values(), back.Values())
	assert.Equal(t, 3, back.Len())
}

// TestStringList_Forms property-checks that both encodings describe the
// same sequence while the physical one nests.
func TestStringList_Forms(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 1, 20).Draw(t, "values")

		l := &StringList{}
		for i := len(values) - 1; i >= 0; i-- {
			l.Push(values[i])
		}
		require.Equal(t, values, l.Values())

		physical, err := l.marshalPhysical()
		require.NoError(t, err)

		var node physicalNode
		require.NoError(t, json.Unmarshal(physical, &node))
		flat := make([]string, 0, len(values))
		for n := &node; n != nil; n = n.Next {
			flat = append(flat, n.Value)
		}
		assert.Equal(t, values, flat)
	})
}

//
// -----------------------------------------------------------------------------
// Item 76: defensive decode
// -----------------------------------------------------------------------------

// TestSpan_UnmarshalRejectsInverted verifies no payload produces an
// invalid span.
func TestSpan_UnmarshalRejectsInverted(t *testing.T) {
	t.Parallel()

	var s Span
	err := json.Unmarshal([]byte(`{"start":"2026-01-02T00:00:00Z","end":"2026-01-01T00:00:00Z"}`), &s)
	assert.ErrorIs(t, err, ErrSpanInverted)
	assert.True(t, s.Start().IsZero(), "failed decode left the zero value")
}

// TestSpan_RoundTrip verifies marshal/unmarshal preserves the interval.
func TestSpan_RoundTrip(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	in, err := NewSpan(start, start.Add(48*time.Hour))
	require.NoError(t, err)

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Span
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Start().Equal(out.Start()))
	assert.Equal(t, in.Duration(), out.Duration())
}

//
// -----------------------------------------------------------------------------
// Item 77: identity resolution
// -----------------------------------------------------------------------------

// TestDecodeCoordinator verifies the resolving decoder returns the
// canonical instance and the naive one does not.
func TestDecodeCoordinator(t *testing.T) {
	t.Parallel()

	canonical := TheCoordinator()
	data, err := json.Marshal(canonical)
	require.NoError(t, err)

	forked, err := decodeForked(data)
	require.NoError(t, err)
	assert.NotSame(t, canonical, forked)
	assert.Equal(t, canonical.ID, forked.ID, "same identity, different instance")

	resolved, err := DecodeCoordinator(data)
	require.NoError(t, err)
	assert.Same(t, canonical, resolved)
}

//
// -----------------------------------------------------------------------------
// Item 78: proxy encoding
// -----------------------------------------------------------------------------

// TestAccount_YAMLRoundTrip verifies the proxy round-trip and the wire
// field names.
func TestAccount_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	in, err := NewAccount("ada", 1250)
	require.NoError(t, err)

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "owner: ada")
	assert.Contains(t, string(data), "balance_cents: 1250")

	var out Account
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

// TestAccount_UnmarshalRejectsInvalid verifies hostile payloads fail the
// constructor.
func TestAccount_UnmarshalRejectsInvalid(t *testing.T) {
	t.Parallel()

	var a Account
	err := yaml.Unmarshal([]byte("owner: \"\"\nbalance_cents: 5\n"), &a)
	assert.ErrorIs(t, err, ErrBadAccount)

	err = yaml.Unmarshal([]byte("owner: bob\nbalance_cents: -10\n"), &a)
	assert.ErrorIs(t, err, ErrBadAccount)
}

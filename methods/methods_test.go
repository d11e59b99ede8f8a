package methods

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Item 38: parameter validation
// -----------------------------------------------------------------------------

// TestModPow verifies the happy path and each guard.
func TestModPow(t *testing.T) {
	t.Parallel()

	r, err := ModPow(big.NewInt(4), big.NewInt(13), big.NewInt(497))
	require.NoError(t, err)
	assert.Equal(t, "445", r.String())

	_, err = ModPow(nil, big.NewInt(1), big.NewInt(2))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ModPow(big.NewInt(4), big.NewInt(-1), big.NewInt(497))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ModPow(big.NewInt(4), big.NewInt(13), big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestValidateTransfer verifies declarative validation accepts well-formed
// requests and names the offending field otherwise.
func TestValidateTransfer(t *testing.T) {
	t.Parallel()

	ok := TransferRequest{From: uuid.NewString(), To: uuid.NewString(), Amount: 100}
	require.NoError(t, ValidateTransfer(ok))

	bad := ok
	bad.Amount = 0
	err := ValidateTransfer(bad)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorContains(t, err, "Amount")
}

//
// -----------------------------------------------------------------------------
// Item 39: defensive copies
// -----------------------------------------------------------------------------

// TestNewPeriod_Inverted verifies the constructor invariant.
func TestNewPeriod_Inverted(t *testing.T) {
	t.Parallel()

	now := time.Now()
	_, err := NewPeriod(now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrPeriodInverted)
}

// TestSchedule_CopiesBothWays verifies neither the input slice nor the
// returned slice aliases internal state.
func TestSchedule_CopiesBothWays(t *testing.T) {
	t.Parallel()

	p, err := NewPeriod(time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	in := []Period{p}
	s := &Schedule{}
	s.SetSlots(in)

	in[0] = Period{}
	require.False(t, s.Slots()[0].Start().IsZero(), "input mutation must not reach the schedule")

	out := s.Slots()
	out[0] = Period{}
	assert.False(t, s.Slots()[0].Start().IsZero(), "output mutation must not reach the schedule")
}

// TestLeakySchedule_Aliases documents the failure the copies prevent.
func TestLeakySchedule_Aliases(t *testing.T) {
	t.Parallel()

	p, err := NewPeriod(time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	in := []Period{p}
	s := &leakySchedule{}
	s.SetSlots(in)
	in[0] = Period{}

	assert.True(t, s.Slots()[0].Start().IsZero(), "caller mutation reached internal state")
}

//
// -----------------------------------------------------------------------------
// Items 40-42: signatures, overloads, varargs
// -----------------------------------------------------------------------------

// TestConnect_Defaults verifies zero-value options get usable defaults.
func TestConnect_Defaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "svc@db.internal", Connect(ConnectOptions{Host: "db.internal", User: "svc"}))
}

// TestClassify verifies both dispatch styles agree.
func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "set", classifyLoose(map[string]struct{}{}))
	assert.Equal(t, "list", classifyLoose([]string{}))
	assert.Equal(t, "scalar", classifyLoose("x"))
	assert.Equal(t, "unknown", classifyLoose(42))

	assert.Equal(t, "set", ClassifySet(nil))
	assert.Equal(t, "list", ClassifyList(nil))
	assert.Equal(t, "scalar", ClassifyScalar(""))
}

// TestMin verifies both variants and the loose one's runtime failure.
func TestMin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Min(3, 1, 4))
	assert.Equal(t, 3, Min(3))

	got, err := minLoose(3, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = minLoose()
	assert.ErrorIs(t, err, ErrNoArguments)
}

//
// -----------------------------------------------------------------------------
// Item 43: empty over nil
// -----------------------------------------------------------------------------

// TestInventory_EmptyNotNil verifies the JSON boundary difference between
// the two shapes.
func TestInventory_EmptyNotNil(t *testing.T) {
	t.Parallel()

	inv := NewInventory()

	nilJSON, err := json.Marshal(inv.itemsNil())
	require.NoError(t, err)
	assert.Equal(t, "null", string(nilJSON))

	emptyJSON, err := json.Marshal(inv.Items())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(emptyJSON))
}

//
// -----------------------------------------------------------------------------
// Item 44: exemplar API
// -----------------------------------------------------------------------------

// TestRing_Contract verifies the documented behavior: FIFO order, ErrRingFull,
// ErrRingEmpty, and the capacity panic.
func TestRing_Contract(t *testing.T) {
	t.Parallel()

	r := NewRing(2)
	require.NoError(t, r.Push("a"))
	require.NoError(t, r.Push("b"))
	assert.ErrorIs(t, r.Push("c"), ErrRingFull)

	v, err := r.Shift()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	require.NoError(t, r.Push("c"))
	v, _ = r.Shift()
	assert.Equal(t, "b", v)
	v, _ = r.Shift()
	assert.Equal(t, "c", v)

	_, err = r.Shift()
	assert.ErrorIs(t, err, ErrRingEmpty)

	assert.Panics(t, func() { NewRing(0) })
}

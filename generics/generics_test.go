package generics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

//
// -----------------------------------------------------------------------------
// Items 23-25: raw types, assertions, slices
// -----------------------------------------------------------------------------

// TestAnyCollection_FailsAtRetrieval verifies the loosely-typed container
// accepts the wrong element and fails only on access.
func TestAnyCollection_FailsAtRetrieval(t *testing.T) {
	t.Parallel()

	c := &AnyCollection{}
	c.Add(Stamp{Country: "NL"})
	c.Add(Coin{Denomination: 50})

	_, err := c.StampAt(0)
	require.NoError(t, err)

	_, err = c.StampAt(1)
	assert.ErrorContains(t, err, "not a stamp")
}

// TestDecodeCount verifies both decoder representations are handled.
func TestDecodeCount(t *testing.T) {
	t.Parallel()

	n, ok := DecodeCount(map[string]any{"count": 7})
	require.True(t, ok)
	assert.Equal(t, 7, n)

	n, ok = DecodeCount(map[string]any{"count": float64(7)})
	require.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = DecodeCount(map[string]any{"count": "7"})
	assert.False(t, ok)

	_, ok = DecodeCount(map[string]any{})
	assert.False(t, ok)
}

// TestUncheckedCount_Panics documents why the bare assertion is banned.
func TestUncheckedCount_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		uncheckedCount(map[string]any{"count": float64(7)})
	})
}

// TestSumAny_RoundTrip verifies Box + sumAny matches SumInts.
func TestSumAny_RoundTrip(t *testing.T) {
	t.Parallel()

	xs := []int{1, 2, 3, 4}
	sum, ok := sumAny(Box(xs))
	require.True(t, ok)
	assert.Equal(t, SumInts(xs), sum)

	_, ok = sumAny([]any{1, "two"})
	assert.False(t, ok)
}

//
// -----------------------------------------------------------------------------
// Item 26: Stack[T]
// -----------------------------------------------------------------------------

// TestStack_LIFO property-checks push/pop ordering against a reference slice.
func TestStack_LIFO(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.Int()).Draw(t, "xs")

		s := NewStack[int]()
		for _, x := range xs {
			s.Push(x)
		}
		require.Equal(t, len(xs), s.Len())

		for i := len(xs) - 1; i >= 0; i-- {
			v, err := s.Pop()
			require.NoError(t, err)
			assert.Equal(t, xs[i], v)
		}
		assert.True(t, s.IsEmpty())
	})
}

// TestStack_EmptyOps verifies Pop and Peek fail with ErrEmpty.
func TestStack_EmptyOps(t *testing.T) {
	t.Parallel()

	s := NewStack[string]()
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrEmpty)
}

//
// -----------------------------------------------------------------------------
// Items 27-28: generic functions and constraints
// -----------------------------------------------------------------------------

// TestUnion verifies order preservation and deduplication.
func TestUnion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, Union([]string{"a", "b"}, []string{"b", "c"}))
	assert.Empty(t, Union([]int(nil), nil))
}

// TestMapReduce verifies composition of the generic helpers.
func TestMapReduce(t *testing.T) {
	t.Parallel()

	words := []string{"a", "bb", "ccc"}
	total := Reduce(Map(words, func(s string) int { return len(s) }), 0,
		func(acc, n int) int { return acc + n })
	assert.Equal(t, 6, total)
}

// TestStack_PushAllPopAll verifies the bulk operations round-trip.
func TestStack_PushAllPopAll(t *testing.T) {
	t.Parallel()

	s := NewStack[int]()
	s.PushAll([]int{1, 2, 3})

	var out []int
	require.NoError(t, s.PopAll(&out))
	assert.Equal(t, []int{3, 2, 1}, out)
	assert.True(t, s.IsEmpty())
}

// TestMax_NamedType verifies ~-based constraints admit named types.
func TestMax_NamedType(t *testing.T) {
	t.Parallel()

	type Celsius float64
	best, ok := Max([]Celsius{21.5, 23.2, 19.0})
	require.True(t, ok)
	assert.Equal(t, Celsius(23.2), best)

	_, ok = Max([]int(nil))
	assert.False(t, ok)
}

//
// -----------------------------------------------------------------------------
// Item 29: heterogeneous container
// -----------------------------------------------------------------------------

// TestFavorites verifies per-type storage and typed retrieval.
func TestFavorites(t *testing.T) {
	t.Parallel()

	f := NewFavorites()
	PutFavorite(f, "Go")
	PutFavorite(f, 42)

	s, ok := GetFavorite[string](f)
	require.True(t, ok)
	assert.Equal(t, "Go", s)

	n, ok := GetFavorite[int](f)
	require.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = GetFavorite[bool](f)
	assert.False(t, ok)
}

// TestFavorites_DistinguishesNamedTypes verifies a named type and its
// underlying type occupy different slots.
func TestFavorites_DistinguishesNamedTypes(t *testing.T) {
	t.Parallel()

	type UserID int
	f := NewFavorites()
	PutFavorite(f, 1)
	PutFavorite(f, UserID(2))

	n, _ := GetFavorite[int](f)
	id, _ := GetFavorite[UserID](f)
	assert.Equal(t, 1, n)
	assert.Equal(t, UserID(2), id)
	assert.Equal(t, 2, f.Len())
}

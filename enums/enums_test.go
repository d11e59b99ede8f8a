package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Item 30: iota enums
// -----------------------------------------------------------------------------

// TestPlanet_SurfaceWeight verifies the classic weight-on-Mars computation.
func TestPlanet_SurfaceWeight(t *testing.T) {
	t.Parallel()

	mass := 175.0 / Earth.SurfaceGravity()
	assert.InDelta(t, 66.1, Mars.SurfaceWeight(mass), 0.5)
}

// TestPlanet_String verifies names and the out-of-range placeholder.
func TestPlanet_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Earth", Earth.String())
	assert.Equal(t, "Planet(?)", Planet(99).String())
	assert.False(t, Planet(99).Valid())
}

// TestAllPlanets verifies declaration-order iteration.
func TestAllPlanets(t *testing.T) {
	t.Parallel()

	all := AllPlanets()
	require.Len(t, all, 8)
	assert.Equal(t, Mercury, all[0])
	assert.Equal(t, Neptune, all[7])
}

//
// -----------------------------------------------------------------------------
// Items 31-33: ordinals, flag sets, dense lookup
// -----------------------------------------------------------------------------

// TestEnsemble_ExplicitData verifies two ensembles may share a count.
func TestEnsemble_ExplicitData(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Octet.Musicians, DoubleQuartet.Musicians)
	assert.Equal(t, 3, Trio.Musicians)
	assert.Equal(t, 3, brokenTrio.musicians(), "works only while nobody inserts a constant")
}

// TestStyleSet verifies membership, add/remove and formatting.
func TestStyleSet(t *testing.T) {
	t.Parallel()

	s := NewStyleSet(Bold, Italic).With(Underline).Without(Italic)
	assert.True(t, s.Has(Bold))
	assert.False(t, s.Has(Italic))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "{bold|underline}", s.String())
	assert.Equal(t, "{}", NewStyleSet().String())
}

// TestPhaseTransition verifies the dense table and its guard rails.
func TestPhaseTransition(t *testing.T) {
	t.Parallel()

	tr, ok := PhaseTransition(Liquid, Gas)
	require.True(t, ok)
	assert.Equal(t, Boil, tr)

	tr, ok = PhaseTransition(Gas, Solid)
	require.True(t, ok)
	assert.Equal(t, Deposit, tr)

	_, ok = PhaseTransition(Solid, Solid)
	assert.False(t, ok)

	_, ok = PhaseTransition(Phase(9), Gas)
	assert.False(t, ok)
}

//
// -----------------------------------------------------------------------------
// Item 34: extensible operations
// -----------------------------------------------------------------------------

// TestOperations verifies base set evaluation and client extension.
func TestOperations(t *testing.T) {
	t.Parallel()

	results := ApplyAll(BasicOperations(), 2, 4)
	assert.Equal(t, 6.0, results["+"])
	assert.Equal(t, -2.0, results["-"])
	assert.Equal(t, 8.0, results["*"])
	assert.Equal(t, 0.5, results["/"])

	pow, err := ParseOperation("^", BasicOperations(), ExtendedOperations())
	require.NoError(t, err)
	assert.Equal(t, 16.0, pow.Apply(2, 4))

	_, err = ParseOperation("?", BasicOperations())
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

//
// -----------------------------------------------------------------------------
// Item 35: tags and discovery
// -----------------------------------------------------------------------------

// TestRunChecks verifies discovery, tallying and signature filtering.
func TestRunChecks(t *testing.T) {
	t.Parallel()

	res := RunChecks(SampleChecks{})
	assert.Equal(t, 1, res.Passed)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Failures, 1)
	assert.Contains(t, res.Failures[0], "CheckDeliberateFailure")
}

// TestFieldDocs verifies tag extraction, pointer flattening included.
func TestFieldDocs(t *testing.T) {
	t.Parallel()

	type endpoint struct {
		Host string `doc:"DNS name"`
		Port int
	}
	docs := FieldDocs(&endpoint{})
	assert.Equal(t, map[string]string{"Host": "DNS name"}, docs)
}

//
// -----------------------------------------------------------------------------
// Items 36-37: override assertion, markers
// -----------------------------------------------------------------------------

// TestGreeter verifies the asserted implementation behaves.
func TestGreeter(t *testing.T) {
	t.Parallel()

	var g Greeter = PoliteGreeter{}
	assert.Equal(t, "Good day, Gopher", g.Greet("Gopher"))
}

// TestMarker verifies marked types pass through LogValue.
func TestMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "deploy-finished", LogValue(PublicEvent{Name: "deploy-finished"}))
	assert.Equal(t, "redactable value", LogValue(struct {
		RedactableValue
	}{}))
}

package catalog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopRun(context.Context, *slog.Logger) error { return nil }

func demo(item int, slug, chapter string) Demo {
	return Demo{Item: item, Slug: slug, Chapter: chapter, Summary: slug, Run: noopRun}
}

//
// -----------------------------------------------------------------------------
// Register
// -----------------------------------------------------------------------------

// TestRegister_RejectsNilRun verifies ErrNilRun.
func TestRegister_RejectsNilRun(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	err := reg.Register(Demo{Item: 1, Slug: "x", Chapter: "c"})
	assert.ErrorIs(t, err, ErrNilRun)
	assert.Zero(t, reg.Len())
}

// TestRegister_RejectsDuplicates verifies both duplicate dimensions.
func TestRegister_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(demo(1, "alpha", "c")))

	var slugErr DuplicateSlugError
	err := reg.Register(demo(2, "alpha", "c"))
	require.ErrorAs(t, err, &slugErr)
	assert.Equal(t, "alpha", slugErr.Slug)

	var itemErr DuplicateItemError
	err = reg.Register(demo(1, "beta", "c"))
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, 1, itemErr.Item)

	assert.Equal(t, 1, reg.Len())
}

//
// -----------------------------------------------------------------------------
// Lookup
// -----------------------------------------------------------------------------

// TestGet verifies slug and numeric resolution share one entry point.
func TestGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(demo(7, "singleton", "construct")))

	bySlug, err := reg.Get("singleton")
	require.NoError(t, err)
	assert.Equal(t, 7, bySlug.Item)

	byNumber, err := reg.Get("7")
	require.NoError(t, err)
	assert.Equal(t, "singleton", byNumber.Slug)

	var unknown UnknownDemoError
	_, err = reg.Get("8")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "8", unknown.Name)
}

// TestChapterAndAll verifies filtered and global listings sort by item.
func TestChapterAndAll(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(
		demo(3, "c", "one"),
		demo(1, "a", "one"),
		demo(2, "b", "two"),
	))

	one := reg.Chapter("one")
	require.Len(t, one, 2)
	assert.Equal(t, []int{1, 3}, []int{one[0].Item, one[1].Item})

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].Item, all[1].Item, all[2].Item})

	assert.Empty(t, reg.Chapter("absent"))
}

package generics

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sghaida/effectivego/catalog"
)

// Demos returns this chapter's runnable lessons.
func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Item: 23, Slug: "raw-types", Chapter: "generics", Summary: "any-typed collections fail at a distance", Run: runRawTypes},
		{Item: 24, Slug: "checked-assertions", Chapter: "generics", Summary: "comma-ok at the boundary, typed beyond it", Run: runCheckedAssertions},
		{Item: 25, Slug: "precise-slices", Chapter: "generics", Summary: "precise element types over []any boxing", Run: runPreciseSlices},
		{Item: 26, Slug: "generic-stack", Chapter: "generics", Summary: "Stack[T] with zeroed popped slots", Run: runGenericStack},
		{Item: 27, Slug: "generic-functions", Chapter: "generics", Summary: "Union, Map, Reduce without assertions", Run: runGenericFunctions},
		{Item: 28, Slug: "constraints", Chapter: "generics", Summary: "the loosest constraint that still compiles", Run: runConstraints},
		{Item: 29, Slug: "heterogeneous", Chapter: "generics", Summary: "type-keyed heterogeneous container", Run: runHeterogeneous},
	}
}

func runRawTypes(_ context.Context, log *slog.Logger) error {
	loose := &AnyCollection{}
	loose.Add(Stamp{Country: "NL"})
	loose.Add(Coin{Denomination: 50}) // compiles fine; the bug is planted
	if _, err := loose.StampAt(1); err != nil {
		log.Info("failure surfaced far from the bad Add", "err", err)
	}

	typed := &Collection[Stamp]{}
	typed.Add(Stamp{Country: "NL"})
	// typed.Add(Coin{...}) does not compile; the bug never exists.
	log.Info("typed collection", "len", typed.Len(), "first", typed.At(0).Country)
	return nil
}

func runCheckedAssertions(_ context.Context, log *slog.Logger) error {
	payload := map[string]any{"count": float64(3)} // as a JSON decoder would produce

	if n, ok := DecodeCount(payload); ok {
		log.Info("boundary handled the representation", "count", n)
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Info("bare assertion panicked", "panic", r)
			}
		}()
		uncheckedCount(payload)
	}()
	return nil
}

func runPreciseSlices(_ context.Context, log *slog.Logger) error {
	xs := []int{1, 2, 3, 4}
	log.Info("precise", "sum", SumInts(xs))

	boxed := Box(xs)
	sum, ok := sumAny(boxed)
	log.Info("boxed detour", "sum", sum, "ok", ok)
	return nil
}

func runGenericStack(_ context.Context, log *slog.Logger) error {
	s := NewStack[string]()
	s.Push("first")
	s.Push("second")
	top, err := s.Pop()
	if err != nil {
		return err
	}
	log.Info("typed pop, no assertion", "top", top, "remaining", s.Len())

	if _, err := NewStack[int]().Pop(); err != nil {
		log.Info("empty pop is an error, not a panic", "err", err)
	}
	return nil
}

func runGenericFunctions(_ context.Context, log *slog.Logger) error {
	u := Union([]string{"a", "b"}, []string{"b", "c"})
	log.Info("union", "result", strings.Join(u, ","))

	lengths := Map(u, func(s string) int { return len(s) })
	total := Reduce(lengths, 0, func(acc, n int) int { return acc + n })
	log.Info("map/reduce", "total", total)
	return nil
}

func runConstraints(_ context.Context, log *slog.Logger) error {
	type Celsius float64

	s := NewStack[Celsius]()
	s.PushAll([]Celsius{21.5, 19.0, 23.2})

	var drained []Celsius
	if err := s.PopAll(&drained); err != nil {
		return err
	}
	hottest, ok := Max(drained)
	log.Info("named float type satisfies cmp.Ordered", "max", float64(hottest), "ok", ok)
	return nil
}

func runHeterogeneous(_ context.Context, log *slog.Logger) error {
	f := NewFavorites()
	PutFavorite(f, "Go")
	PutFavorite(f, 42)
	PutFavorite(f, []byte("raw"))

	s, _ := GetFavorite[string](f)
	n, _ := GetFavorite[int](f)
	_, hasBool := GetFavorite[bool](f)
	log.Info("one container, three types", "string", s, "int", n, "boolPresent", hasBool, "types", f.Len())
	return nil
}

package classes

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sghaida/effectivego/catalog"
)

// Demos returns this chapter's runnable lessons.
func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Item: 13, Slug: "accessibility", Chapter: "classes", Summary: "exported mutable slice vs copying accessor", Run: runAccessibility},
		{Item: 14, Slug: "accessors", Chapter: "classes", Summary: "exported fields vs accessor methods with invariants", Run: runAccessors},
		{Item: 15, Slug: "immutability", Chapter: "classes", Summary: "immutable Complex value arithmetic", Run: runImmutability},
		{Item: 16, Slug: "composition", Chapter: "classes", Summary: "embedding undercounts; forwarding wrapper counts exactly", Run: runComposition},
		{Item: 17, Slug: "design-for-extension", Chapter: "classes", Summary: "explicit hooks over shadowed methods", Run: runExtension},
		{Item: 18, Slug: "small-interfaces", Chapter: "classes", Summary: "interface composition and skeletal implementations", Run: runInterfaces},
		{Item: 19, Slug: "constants", Chapter: "classes", Summary: "package-level constants, not constant interfaces", Run: runConstants},
		{Item: 20, Slug: "hierarchy", Chapter: "classes", Summary: "tagged struct vs Shape interface", Run: runHierarchy},
		{Item: 21, Slug: "strategy", Chapter: "classes", Summary: "function values as strategies", Run: runStrategy},
		{Item: 22, Slug: "helpers", Chapter: "classes", Summary: "named helper types over state-capturing closures", Run: runHelpers},
	}
}

func runAccessibility(_ context.Context, log *slog.Logger) error {
	leaked := LeakedRegions
	leaked[0] = "tampered"
	log.Info("exported slice mutated by an importer", "regions", strings.Join(supportedRegions, ","))
	supportedRegions[0] = "eu-west-1"

	safe := Regions()
	safe[0] = "tampered"
	log.Info("accessor copy keeps the source intact", "regions", strings.Join(supportedRegions, ","))
	return nil
}

func runAccessors(_ context.Context, log *slog.Logger) error {
	// Package-private data holder: exported fields are fine here.
	p := degeneratePoint{X: 3, Y: -4}
	log.Info("plain data holder inside the package", "x", p.X, "y", p.Y)

	q := NewQuadrant(3, -4)
	log.Info("constructor enforced the invariant once", "x", q.X(), "y", q.Y())
	return nil
}

func runImmutability(_ context.Context, log *slog.Logger) error {
	sum := ComplexOne.Add(ComplexI).Mul(NewComplex(2, 0))
	log.Info("operations return values", "re", sum.Re(), "im", sum.Im())
	log.Info("shared constants untouched", "one.re", ComplexOne.Re())
	return nil
}

func runComposition(_ context.Context, log *slog.Logger) error {
	embedded := NewEmbeddedCountingSet()
	embedded.Add("a")
	embedded.AddAll("b", "c", "d")
	log.Info("embedding: AddAll bypassed the shadow", "count", embedded.AddCount, "len", embedded.Len())

	counting := NewCountingSet(NewStringSet())
	counting.Add("a")
	counting.AddAll("b", "c", "d")
	log.Info("forwarding wrapper: every path counted", "count", counting.AddCount, "len", counting.Len())
	return nil
}

func runExtension(_ context.Context, log *slog.Logger) error {
	started := 0
	j := &Job{BeforeRun: func() { started++ }}
	j.Run()
	j.Run()
	log.Info("explicit hook observed every run", "hookCalls", started, "runs", j.Runs())

	s := &shadowedJob{}
	s.Run()
	log.Info("shadowing works only while the forward survives", "outer", s.outerRuns, "base", s.Runs())
	return nil
}

func runInterfaces(_ context.Context, log *slog.Logger) error {
	e := SkeletalEntry{K: "region", V: "eu-west-1"}
	log.Info("skeletal implementation supplies the derived parts", "entry", e.String())
	return nil
}

func runConstants(_ context.Context, log *slog.Logger) error {
	log.Info("constants live at package level", "avogadro", AvogadroNumber, "boltzmann", BoltzmannConstant)
	return nil
}

func runHierarchy(_ context.Context, log *slog.Logger) error {
	tagged := taggedFigure{kind: figureCircle, radius: 2}
	a, err := tagged.area()
	if err != nil {
		return err
	}
	log.Info("tagged struct needs a fallible switch", "area", a)

	shapes := []Shape{Rectangle{Length: 3, Width: 4}, Circle{Radius: 2}, Square{Side: 5}}
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	log.Info("interface hierarchy: no tags, no default arm", "totalArea", total)
	return nil
}

func runStrategy(_ context.Context, log *slog.Logger) error {
	sorted := SortStrings([]string{"kiwi", "fig", "banana"}, ByLength)
	log.Info("sorted by length", "result", strings.Join(sorted, ","))

	fold := FoldComparator{Transform: strings.ToLower}
	log.Info("stateful strategy", "FIG vs fig", fold.Compare("FIG", "fig"))
	return nil
}

func runHelpers(_ context.Context, log *slog.Logger) error {
	l := &Ledger{}
	l.Add(2, "initial deposit")
	l.Add(3, "coffee refund")

	viaClosure := l.SummerClosure()()
	viaHelper := l.NewSummer().Sum()
	log.Info("both sum the same", "closure", viaClosure, "helper", viaHelper)
	return nil
}

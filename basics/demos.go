package basics

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/sghaida/effectivego/catalog"
)

// Demos returns this chapter's runnable lessons.
func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Item: 45, Slug: "minimal-scope", Chapter: "basics", Summary: "statement-scoped variables kill copy-paste bugs", Run: runScope},
		{Item: 46, Slug: "for-range", Chapter: "basics", Summary: "range loops remove iteration state from reach", Run: runForRange},
		{Item: 47, Slug: "use-stdlib", Chapter: "basics", Summary: "library randomness beats hand-rolled modulo", Run: runStdlib},
		{Item: 48, Slug: "exact-money", Chapter: "basics", Summary: "integer cents where float64 drifts", Run: runMoney},
		{Item: 49, Slug: "values-not-boxes", Chapter: "basics", Summary: "pointer-to-primitive traps: identity and nil", Run: runPointers},
		{Item: 50, Slug: "typed-not-stringly", Chapter: "basics", Summary: "named states over free-form strings", Run: runStringly},
		{Item: 51, Slug: "builder-concat", Chapter: "basics", Summary: "Builder over quadratic += in loops", Run: runConcat},
		{Item: 52, Slug: "by-interface", Chapter: "basics", Summary: "accept io.Reader, not one concrete producer", Run: runByInterface},
		{Item: 53, Slug: "confine-reflection", Chapter: "basics", Summary: "reflect once, then back to interfaces", Run: runReflection},
		{Item: 54, Slug: "cgo-judiciously", Chapter: "basics", Summary: "pure Go is rarely the slow path", Run: runNative},
		{Item: 55, Slug: "measure-first", Chapter: "basics", Summary: "benchmarks settle optimization arguments", Run: runOptimize},
		{Item: 56, Slug: "naming", Chapter: "basics", Summary: "MixedCaps, whole initialisms, no Get prefix", Run: runNaming},
	}
}

func runScope(_ context.Context, log *slog.Logger) error {
	xs := []int{1, 2, 3}
	log.Info("leaked index skips the second pass",
		"buggy", sumTwiceBuggy(xs), "scoped", SumTwice(xs))
	return nil
}

func runForRange(_ context.Context, log *slog.Logger) error {
	log.Info("deck sizes",
		"buggy", len(deckBuggy()),
		"range", len(Deck()),
		"want", len(Suits)*len(Ranks))
	return nil
}

func runStdlib(_ context.Context, log *slog.Logger) error {
	src := rand.New(rand.NewPCG(1, 2))
	biased := BucketCounts(func(n int) int { return randomModBiased(src, n) }, 3, 30000)
	fair := BucketCounts(RandomIndex, 3, 30000)
	log.Info("bucket histograms over 30000 draws", "modulo", biased, "intn", fair)
	return nil
}

func runMoney(_ context.Context, log *slog.Logger) error {
	nf, changeF := BuyCandyFloat(1.00)
	nc, changeC := BuyCandyCents(100)
	log.Info("one dollar of 10-cent increments",
		"floatBought", nf, "floatChange", changeF,
		"centsBought", nc, "centsChange", changeC)
	return nil
}

func runPointers(_ context.Context, log *slog.Logger) error {
	a, b := 42, 42
	log.Info("two boxes of the same number",
		"pointerEq", boxedEqualWrong(&a, &b),
		"valueEq", BoxedEqual(&a, &b))
	return nil
}

func runStringly(_ context.Context, log *slog.Logger) error {
	s := &stateByString{state: "pending"}
	_ = s.transition("Runing") // typo accepted without complaint
	log.Info("stringly job took the typo", "state", s.state)

	if _, err := ParseJobState("Runing"); err != nil {
		log.Info("typed boundary rejected it", "err", err)
	}
	j := &TypedJob{}
	for j.Advance() {
	}
	log.Info("typed job walked the whole lifecycle", "state", j.State.String())
	return nil
}

func runConcat(_ context.Context, log *slog.Logger) error {
	lines := []string{"alpha", "beta", "gamma"}
	log.Info("both spell the same string",
		"equal", joinPlusEquals(lines) == JoinLines(lines),
		"len", len(JoinLines(lines)))
	return nil
}

func runByInterface(_ context.Context, log *slog.Logger) error {
	log.Info("reader from any source", "lines", CountLines(LineSource("a\nb\nc\n")))
	return nil
}

func runReflection(_ context.Context, log *slog.Logger) error {
	for _, name := range []string{"decimal", "hex"} {
		f, err := NewFormatter(name)
		if err != nil {
			return err
		}
		log.Info("typed after one reflective step", "plugin", name, "out", f.Format(255))
	}
	return nil
}

func runNative(_ context.Context, log *slog.Logger) error {
	log.Info("pure-Go popcount", "bits", PopCount(0xDEADBEEF))
	return nil
}

func runOptimize(_ context.Context, log *slog.Logger) error {
	xs := make([]int, 1000)
	for i := range xs {
		xs[i] = i
	}
	log.Info("clear and clever agree; the benchmark decides which survives",
		"clear", SumSquares(xs), "unrolled", sumSquaresUnrolled(xs))
	return nil
}

func runNaming(_ context.Context, log *slog.Logger) error {
	good := CheckExportedNames(NewWellNamedClient("https://api.internal", "u-1"))
	bad := CheckExportedNames(poorlyNamedClient{})
	var reasons []string
	for _, iss := range bad {
		reasons = append(reasons, iss.Ident+": "+iss.Reason)
	}
	log.Info("convention check",
		"exemplarIssues", len(good),
		"violations", strings.Join(reasons, "; "))
	return nil
}

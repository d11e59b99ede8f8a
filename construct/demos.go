package construct

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sghaida/effectivego/catalog"
)

// Demos returns this chapter's runnable lessons. The composition root in
// cmd/effectivego registers them; nothing here runs at init time.
func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Item: 1, Slug: "static-factory", Chapter: "construct", Summary: "named constructors and a provider registry", Run: runStaticFactory},
		{Item: 2, Slug: "builder", Chapter: "construct", Summary: "builder and functional options vs telescoping constructor", Run: runBuilder},
		{Item: 3, Slug: "singleton", Chapter: "construct", Summary: "sync.Once singleton behind an interface", Run: runSingleton},
		{Item: 4, Slug: "noninstantiable", Chapter: "construct", Summary: "utility namespaces without instantiation", Run: runNoninstantiable},
		{Item: 5, Slug: "unnecessary-objects", Chapter: "construct", Summary: "hoist compiled state out of hot paths", Run: runUnnecessaryObjects},
		{Item: 6, Slug: "obsolete-references", Chapter: "construct", Summary: "a stack that leaks popped elements vs one that clears slots", Run: runObsoleteReferences},
		{Item: 7, Slug: "avoid-finalizers", Chapter: "construct", Summary: "explicit Close vs runtime.SetFinalizer", Run: runAvoidFinalizers},
	}
}

func runStaticFactory(_ context.Context, log *slog.Logger) error {
	reg := NewCodecRegistry()
	reg.RegisterDefault(NewNopCodec)
	reg.Register("loud", func() Codec { return NewNopCodec() })

	c, err := reg.New()
	if err != nil {
		return err
	}
	log.Info("default provider served", "codec", c.Name())

	if _, err := reg.NewNamed("missing"); err != nil {
		log.Info("unknown provider rejected", "err", err)
	}
	return nil
}

func runBuilder(_ context.Context, log *slog.Logger) error {
	// Which of the last four arguments is sodium? Exactly.
	opaque := newNutritionFactsTelescoping(240, 8, 100, 0, 35, 27)
	log.Info("telescoping call site", "calories", opaque.Calories())

	cocaCola, err := NewNutritionBuilder(240, 8).
		Calories(100).
		Sodium(35).
		Carbohydrate(27).
		Build()
	if err != nil {
		return err
	}
	log.Info("built", "servingSize", cocaCola.ServingSize(), "calories", cocaCola.Calories())

	if _, err := NewNutritionBuilder(0, 8).Build(); err != nil {
		log.Info("invariant caught at Build", "err", err)
	}

	viaOptions, err := NewNutritionFacts(240, 8, WithCalories(100), WithSodium(35))
	if err != nil {
		return err
	}
	log.Info("functional options agree", "calories", viaOptions.Calories())
	return nil
}

func runSingleton(_ context.Context, log *slog.Logger) error {
	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = SystemClock().InstanceID().String()
		}()
	}
	wg.Wait()
	for _, id := range ids[1:] {
		if id != ids[0] {
			return fmt.Errorf("construct: singleton produced distinct instances %s and %s", ids[0], id)
		}
	}
	log.Info("all goroutines saw one instance", "id", ids[0])
	return nil
}

func runNoninstantiable(_ context.Context, log *slog.Logger) error {
	log.Info("utility via shared value", "rad", AngleUtil.DegToRad(180))
	// construct.Angles{} does not compile outside this package; the
	// unexported field is the whole trick.
	return nil
}

func runUnnecessaryObjects(_ context.Context, log *slog.Logger) error {
	const probe = "MCMLXXVI"

	start := time.Now()
	for range 200 {
		isRomanNumeralSlow(probe)
	}
	slow := time.Since(start)

	start = time.Now()
	for range 200 {
		IsRomanNumeral(probe)
	}
	fast := time.Since(start)

	log.Info("recompiling per call", "elapsed", slow)
	log.Info("compiled once", "elapsed", fast)

	p := Person{BirthDate: time.Date(1950, time.June, 1, 0, 0, 0, 0, time.UTC)}
	log.Info("boomer window hoisted", "isBoomer", p.IsBabyBoomer())
	return nil
}

func runObsoleteReferences(_ context.Context, log *slog.Logger) error {
	leaky := NewLeakyStack()
	fixed := NewStack()
	for i := range 10 {
		leaky.Push(i)
		fixed.Push(i)
	}
	for range 10 {
		if _, err := leaky.Pop(); err != nil {
			return err
		}
		if _, err := fixed.Pop(); err != nil {
			return err
		}
	}
	log.Info("after popping everything",
		"leakyRetained", leaky.Retained(),
		"fixedRetained", fixed.Retained())
	return nil
}

func runAvoidFinalizers(_ context.Context, log *slog.Logger) error {
	var released atomic.Int64

	s := OpenSession(&released)
	if err := s.Close(); err != nil {
		return err
	}
	log.Info("explicit close released promptly", "released", released.Load())

	// The finalizer variant releases only if the collector happens to run,
	// which this demo does not force. The count staying behind is the point.
	_ = OpenSessionWithFinalizer(&released)
	log.Info("finalizer variant gives no promptness guarantee", "released", released.Load())
	return nil
}

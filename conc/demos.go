package conc

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/sghaida/effectivego/catalog"
)

// Demos returns this chapter's runnable lessons.
func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Item: 66, Slug: "synchronize", Chapter: "conc", Summary: "visibility needs atomics or locks", Run: runSyncFlag},
		{Item: 67, Slug: "open-calls", Chapter: "conc", Summary: "no alien calls inside critical sections", Run: runObservable},
		{Item: 68, Slug: "worker-pool", Chapter: "conc", Summary: "bounded pools over goroutine-per-task", Run: runWorkers},
		{Item: 69, Slug: "sync-primitives", Chapter: "conc", Summary: "WaitGroup gates over spin latches", Run: runLatch},
		{Item: 70, Slug: "document-safety", Chapter: "conc", Summary: "immutable, safe, or not safe: say which", Run: runSafetyDoc},
		{Item: 71, Slug: "lazy-init", Chapter: "conc", Summary: "eager by default, sync.Once when lazy", Run: runLazy},
		{Item: 72, Slug: "no-gosched", Chapter: "conc", Summary: "channels over scheduler hints", Run: runScheduler},
		{Item: 73, Slug: "owned-goroutines", Chapter: "conc", Summary: "every goroutine needs an owner", Run: runLifecycle},
	}
}

func runSyncFlag(_ context.Context, log *slog.Logger) error {
	stopper := &AtomicStopper{}
	go stopper.Run()
	time.Sleep(10 * time.Millisecond)
	stopper.Stop()
	log.Info("atomic flag observed promptly", "ticks", stopper.Ticks())

	raw := &rawFlagStopper{}
	go func() {
		time.Sleep(time.Millisecond)
		raw.stop = true // no happens-before edge; may go unseen
	}()
	raw.run(50_000_000)
	log.Info("plain bool flag ran to its safety bound or got lucky", "ticks", raw.ticks)

	racy, exact := LostUpdates(8, 1000)
	log.Info("unsynchronized counter drops updates", "racy", racy, "exact", exact)
	return nil
}

func runObservable(_ context.Context, log *slog.Logger) error {
	log.Info("alien call under lock", "deadlocked", DetectDeadlock(100*time.Millisecond))

	s := NewObservableSet()
	var seen atomic.Int64
	s.Observe(func(set *ObservableSet, added int) {
		if set.Contains(added) { // reentry is fine outside the lock
			seen.Add(1)
		}
	})
	for v := range 5 {
		s.Add(v)
	}
	log.Info("snapshot notify tolerates reentry", "len", s.Len(), "notified", seen.Load())
	return nil
}

func runWorkers(ctx context.Context, log *slog.Logger) error {
	var completed atomic.Int64
	tasks := make([]Task, 20)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error {
			if i == 7 {
				return errors.New("task 7 failed")
			}
			completed.Add(1)
			return nil
		}
	}
	err := RunAll(ctx, 4, tasks)
	log.Info("bounded pool stopped early on failure",
		"workers", 4, "completed", completed.Load(), "err", err)
	return nil
}

func runLatch(_ context.Context, log *slog.Logger) error {
	gate := NewStartGate(4)
	var started atomic.Int64
	for range 4 {
		go gate.Run(func() { started.Add(1) })
	}
	begin := time.Now()
	gate.Release()
	gate.Wait()
	log.Info("gated workers released together",
		"workers", started.Load(), "elapsed", time.Since(begin))

	in := &Interner{}
	a := in.Intern("connection-reset")
	b := in.Intern("connection-reset")
	log.Info("interned strings share one instance", "same", a == b)
	return nil
}

func runSafetyDoc(_ context.Context, log *slog.Logger) error {
	ep := NewEndpoint("db.internal", 5432)
	c := NewHitCounter()
	c.Hit(ep.Host())

	var rb ReportBuilder // single goroutine only, as documented
	rb.AddLine("endpoint: " + ep.Host())
	rb.AddLine("hits: 1")
	log.Info("each exemplar documents its level",
		"immutable", ep.Host(), "safeCount", c.Count(ep.Host()), "reportLen", len(rb.Build()))
	return nil
}

func runLazy(_ context.Context, log *slog.Logger) error {
	before := buildCount.Load()
	var rt RoutingTable
	for range 3 {
		rt.Lookup("eu")
	}
	log.Info("sync.Once built exactly once",
		"builds", buildCount.Load()-before, "eu", rt.Lookup("eu"), "eager", EagerLookup("us"))

	// Confined to one goroutine the racy version behaves; that is exactly
	// why the race survives review.
	r := &racyTable{}
	log.Info("check-then-assign looks fine single-threaded", "ap", r.lookup("ap"))
	return nil
}

func runScheduler(_ context.Context, log *slog.Logger) error {
	log.Info("handoffs complete either way; only one is guaranteed to",
		"gosched", goschedHandoff(1000), "channel", ChannelHandoff(1000))
	return nil
}

func runLifecycle(ctx context.Context, log *slog.Logger) error {
	slow := func(context.Context) string {
		time.Sleep(50 * time.Millisecond)
		return "late"
	}
	if _, ok := Fetch(ctx, slow, 5*time.Millisecond); !ok {
		log.Info("timed-out fetch still lets its goroutine finish", "ok", ok)
	}

	g := NewGroup(ctx)
	var stoppedEarly atomic.Bool
	g.Go(func(context.Context) error { return errors.New("member failed") })
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		stoppedEarly.Store(true)
		return nil
	})
	err := g.Wait()
	log.Info("group cancelled siblings and waited for all",
		"err", err, "siblingStopped", stoppedEarly.Load())
	return nil
}

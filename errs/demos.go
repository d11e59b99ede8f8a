package errs

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/sghaida/effectivego/catalog"
)

// Demos returns this chapter's runnable lessons.
func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Item: 57, Slug: "no-panic-flow", Chapter: "errs", Summary: "panics are not loop terminators", Run: runExceptional},
		{Item: 58, Slug: "error-vs-panic", Chapter: "errs", Summary: "errors for bad input, panics for bugs", Run: runTaxonomy},
		{Item: 59, Slug: "comma-ok-and-must", Chapter: "errs", Summary: "Parse, Lookup and Must variants", Run: runTryParse},
		{Item: 60, Slug: "std-sentinels", Chapter: "errs", Summary: "speak fs.ErrNotExist, not a private dialect", Run: runStdSentinels},
		{Item: 61, Slug: "translate-errors", Chapter: "errs", Summary: "wrap and translate at layer boundaries", Run: runTranslate},
		{Item: 62, Slug: "document-errors", Chapter: "errs", Summary: "error contracts in doc comments", Run: runContract},
		{Item: 63, Slug: "failure-capture", Chapter: "errs", Summary: "errors that carry the failing inputs", Run: runPayload},
		{Item: 64, Slug: "failure-atomicity", Chapter: "errs", Summary: "failed calls leave state untouched", Run: runAtomicity},
		{Item: 65, Slug: "handle-errors", Chapter: "errs", Summary: "the discarded flush error", Run: runIgnore},
	}
}

func runExceptional(_ context.Context, log *slog.Logger) error {
	xs := []int{1, 2, 3}
	log.Info("same sum, one of them hides bugs",
		"viaPanic", sumUntilPanic(xs), "viaLoop", Sum(xs))
	return nil
}

func runTaxonomy(_ context.Context, log *slog.Logger) error {
	if _, err := ParseQuantity("minus four"); errors.Is(err, ErrBadQuantity) {
		log.Info("bad input came back as a testable error", "err", err)
	}
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Info("broken calling code panicked", "panic", r)
			}
		}()
		NewBuffer(0)
	}()
	return nil
}

func runTryParse(_ context.Context, log *slog.Logger) error {
	if _, ok := LookupSeverity("verbose"); !ok {
		log.Info("probe without an error allocation", "known", ok)
	}
	s, err := ParseSeverity("warn")
	if err != nil {
		return err
	}
	log.Info("parsed", "severity", int(s), "must", int(MustParseSeverity("error")))
	return nil
}

func runStdSentinels(ctx context.Context, log *slog.Logger) error {
	store := NewBlobStore()
	if err := store.Put("", nil); err != nil {
		log.Info("invalid argument uses the stdlib sentinel", "err", err)
	}
	if _, err := store.Get("missing"); errors.Is(err, fs.ErrNotExist) {
		log.Info("missing key matches fs.ErrNotExist", "err", err)
	}
	shortCtx, cancel := context.WithTimeout(ctx, 5*time.Millisecond)
	defer cancel()
	if _, err := store.GetWithin(shortCtx, "missing", 50*time.Millisecond); errors.Is(err, context.DeadlineExceeded) {
		log.Info("timeout is the context's own error", "err", err)
	}
	return nil
}

func runTranslate(_ context.Context, log *slog.Logger) error {
	svc := NewProfileService(NewBlobStore())

	_, rawErr := svc.loadRaw("ada")
	log.Info("untranslated error leaks storage vocabulary", "err", rawErr)

	_, err := svc.Load("ada")
	var nf *ProfileNotFoundError
	if errors.As(err, &nf) {
		log.Info("translated error speaks the service's language",
			"user", nf.User, "causeIsNotExist", errors.Is(err, fs.ErrNotExist))
	}
	return nil
}

func runContract(_ context.Context, log *slog.Logger) error {
	tc := NewTicketCounter(1)
	n, err := tc.Reserve()
	if err != nil {
		return err
	}
	log.Info("reserved", "ticket", n, "free", tc.Free())

	if _, err := tc.Reserve(); errors.Is(err, ErrSoldOut) {
		log.Info("documented failure mode delivered", "err", err)
	}
	if err := tc.Release(99); errors.Is(err, ErrNotReserved) {
		log.Info("and the other one", "err", err)
	}
	return nil
}

func runPayload(_ context.Context, log *slog.Logger) error {
	a := NewAllocator("disk-mb", 512)
	err := a.Allocate(2048)
	var qe *QuotaError
	if errors.As(err, &qe) {
		log.Info("fields beat message parsing",
			"resource", qe.Resource, "shortfall", qe.Shortfall())
	}
	return nil
}

func runAtomicity(_ context.Context, log *slog.Logger) error {
	broken := &Wallet{}
	broken.Deposit(100)
	_ = broken.withdrawBroken(250)
	log.Info("mutate-then-check left debris", "balance", broken.Balance())

	safe := &Wallet{}
	safe.Deposit(100)
	if err := safe.Withdraw(250); err != nil {
		log.Info("validate-first failed cleanly", "balance", safe.Balance(), "err", err)
	}
	if err := safe.ApplyBatch([]int64{50, -500, 10}); err != nil {
		log.Info("batch rolled back on failure", "balance", safe.Balance(), "err", err)
	}
	return nil
}

func runIgnore(_ context.Context, log *slog.Logger) error {
	var sb strings.Builder
	if err := WriteReport(&sb, []string{"all", "lines", "accounted", "for"}); err != nil {
		return err
	}
	log.Info("report written and every error path heard", "bytes", sb.Len())
	return nil
}

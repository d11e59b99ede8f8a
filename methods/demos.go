package methods

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/sghaida/effectivego/catalog"
)

// Demos returns this chapter's runnable lessons.
func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Item: 38, Slug: "validate-params", Chapter: "methods", Summary: "boundary validation: guards and declarative rules", Run: runValidate},
		{Item: 39, Slug: "defensive-copies", Chapter: "methods", Summary: "copy mutable inputs in and outputs out", Run: runDefensive},
		{Item: 40, Slug: "signatures", Chapter: "methods", Summary: "options structs over positional parameter trains", Run: runSignatures},
		{Item: 41, Slug: "no-overloads", Chapter: "methods", Summary: "distinct names instead of any-typed dispatch", Run: runOverloads},
		{Item: 42, Slug: "varargs", Chapter: "methods", Summary: "variadics with a required first argument", Run: runVarargs},
		{Item: 43, Slug: "empty-not-nil", Chapter: "methods", Summary: "empty collections over nil at boundaries", Run: runEmpty},
		{Item: 44, Slug: "doc-comments", Chapter: "methods", Summary: "a documented exemplar API", Run: runDocComments},
	}
}

func runValidate(_ context.Context, log *slog.Logger) error {
	r, err := ModPow(big.NewInt(4), big.NewInt(13), big.NewInt(497))
	if err != nil {
		return err
	}
	log.Info("guarded computation", "result", r.String())

	if _, err := ModPow(big.NewInt(4), big.NewInt(-1), big.NewInt(497)); err != nil {
		log.Info("guard fired at the boundary", "err", err)
	}

	bad := TransferRequest{From: uuid.NewString(), To: "not-a-uuid", Amount: -5}
	if err := ValidateTransfer(bad); err != nil {
		log.Info("declarative rules fired", "err", err)
	}
	return nil
}

func runDefensive(_ context.Context, log *slog.Logger) error {
	p, err := NewPeriod(time.Now(), time.Now().Add(time.Hour))
	if err != nil {
		return err
	}
	slots := []Period{p}

	leaky := &leakySchedule{}
	leaky.SetSlots(slots)
	slots[0] = Period{} // caller mutates after handing over
	log.Info("leaky schedule saw the mutation", "startZero", leaky.Slots()[0].Start().IsZero())

	safe := &Schedule{}
	slots2 := []Period{p}
	safe.SetSlots(slots2)
	slots2[0] = Period{}
	log.Info("copying schedule unaffected", "startZero", safe.Slots()[0].Start().IsZero())
	return nil
}

func runSignatures(_ context.Context, log *slog.Logger) error {
	// Which of these strings is the user? The compiler has no opinion.
	_ = connectPositional("db.internal", "svc", "s3cret", 0, 0, false)

	desc := Connect(ConnectOptions{Host: "db.internal", User: "svc"})
	log.Info("named options read like documentation", "conn", desc)
	return nil
}

func runOverloads(_ context.Context, log *slog.Logger) error {
	log.Info("type switch answers by arm order",
		"set", classifyLoose(map[string]struct{}{}),
		"list", classifyLoose([]string{}),
		"other", classifyLoose(42))
	log.Info("distinct names need no rules",
		"set", ClassifySet(nil), "list", ClassifyList(nil), "scalar", ClassifyScalar(""))
	return nil
}

func runVarargs(_ context.Context, log *slog.Logger) error {
	if _, err := minLoose(); err != nil {
		log.Info("zero-arg call fails at run time", "err", err)
	}
	log.Info("required-first variant", "min", Min(3, 1, 4, 1, 5))
	return nil
}

func runEmpty(_ context.Context, log *slog.Logger) error {
	inv := NewInventory()
	log.Info("empty inventory",
		"itemsNilIsNil", inv.itemsNil() == nil,
		"itemsLen", len(inv.Items()))
	inv.Add("widget", 3)
	log.Info("stocked", "items", inv.Items())
	return nil
}

func runDocComments(_ context.Context, log *slog.Logger) error {
	r := NewRing(2)
	if err := r.Push("a"); err != nil {
		return err
	}
	if err := r.Push("b"); err != nil {
		return err
	}
	if err := r.Push("c"); err != nil {
		log.Info("contract says ErrRingFull, contract delivers", "err", err)
	}
	v, err := r.Shift()
	if err != nil {
		return err
	}
	log.Info("fifo", "first", v, "len", r.Len(), "cap", r.Cap())
	return nil
}

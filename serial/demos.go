package serial

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/effectivego/catalog"
)

// Demos returns this chapter's runnable lessons.
func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Item: 74, Slug: "encode-judiciously", Chapter: "serial", Summary: "an encoded layout is public API", Run: runGobForm},
		{Item: 75, Slug: "logical-form", Chapter: "serial", Summary: "encode the sequence, not the node chain", Run: runLogicalForm},
		{Item: 76, Slug: "defensive-decode", Chapter: "serial", Summary: "decoders are constructors for hostile input", Run: runDecodeCheck},
		{Item: 77, Slug: "resolve-identity", Chapter: "serial", Summary: "singletons survive the round-trip", Run: runResolve},
		{Item: 78, Slug: "encode-by-proxy", Chapter: "serial", Summary: "a dumb DTO guards the real constructor", Run: runProxy},
	}
}

func runGobForm(_ context.Context, log *slog.Logger) error {
	in := Snapshot{
		Service: "billing",
		TakenAt: time.Now().UTC(),
		Counters: map[string]int64{
			"requests": 1042,
			"errors":   3,
		},
	}
	out, size, err := RoundTripSnapshot(in)
	if err != nil {
		return err
	}
	log.Info("gob round-trip", "bytes", size, "requests", out.Counters["requests"])
	return nil
}

func runLogicalForm(_ context.Context, log *slog.Logger) error {
	l := &StringList{}
	for _, v := range []string{"gamma", "beta", "alpha"} {
		l.Push(v)
	}

	physical, err := l.marshalPhysical()
	if err != nil {
		return err
	}
	logical, err := json.Marshal(l)
	if err != nil {
		return err
	}
	log.Info("same list, two forms",
		"physicalBytes", len(physical), "logicalBytes", len(logical),
		"logical", string(logical))
	return nil
}

func runDecodeCheck(_ context.Context, log *slog.Logger) error {
	hostile := []byte(`{"start":"2026-01-02T00:00:00Z","end":"2026-01-01T00:00:00Z"}`)
	var s Span
	if err := json.Unmarshal(hostile, &s); errors.Is(err, ErrSpanInverted) {
		log.Info("hostile payload rejected at decode", "err", err)
	}

	ok := []byte(`{"start":"2026-01-01T00:00:00Z","end":"2026-01-02T00:00:00Z"}`)
	if err := json.Unmarshal(ok, &s); err != nil {
		return err
	}
	log.Info("valid payload decoded", "duration", s.Duration())
	return nil
}

func runResolve(_ context.Context, log *slog.Logger) error {
	data, err := json.Marshal(TheCoordinator())
	if err != nil {
		return err
	}

	forked, err := decodeForked(data)
	if err != nil {
		return err
	}
	resolved, err := DecodeCoordinator(data)
	if err != nil {
		return err
	}
	log.Info("identity across the round-trip",
		"forkedIsCanonical", forked == TheCoordinator(),
		"resolvedIsCanonical", resolved == TheCoordinator(),
		"id", resolved.ID.String())
	return nil
}

func runProxy(_ context.Context, log *slog.Logger) error {
	acct, err := NewAccount("ada", 12_50)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(acct)
	if err != nil {
		return err
	}
	log.Info("proxy on the wire", "yaml", string(data))

	var back Account
	if err := yaml.Unmarshal(data, &back); err != nil {
		return err
	}
	log.Info("rebuilt through the constructor", "owner", back.Owner(), "balance", back.Balance())

	hostile := []byte("owner: \"\"\nbalance_cents: -1\n")
	if err := yaml.Unmarshal(hostile, &back); errors.Is(err, ErrBadAccount) {
		log.Info("hostile yaml rejected", "err", err)
	}
	return nil
}

package enums

import (
	"context"
	"log/slog"

	"github.com/sghaida/effectivego/catalog"
)

// Demos returns this chapter's runnable lessons.
func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Item: 30, Slug: "iota-enums", Chapter: "enums", Summary: "typed iota constants with data and methods", Run: runIotaEnums},
		{Item: 31, Slug: "no-ordinals", Chapter: "enums", Summary: "store data explicitly, never derive it from iota", Run: runNoOrdinals},
		{Item: 32, Slug: "flag-sets", Chapter: "enums", Summary: "typed bit-flag sets over naked OR-ed ints", Run: runFlagSets},
		{Item: 33, Slug: "dense-lookup", Chapter: "enums", Summary: "array-indexed per-enum data", Run: runDenseLookup},
		{Item: 34, Slug: "extensible-ops", Chapter: "enums", Summary: "interface-extensible operation sets", Run: runExtensibleOps},
		{Item: 35, Slug: "tags-and-discovery", Chapter: "enums", Summary: "struct tags and reflective method discovery", Run: runTags},
		{Item: 36, Slug: "override-assertion", Chapter: "enums", Summary: "var _ Iface = T{} as @Override", Run: runOverride},
		{Item: 37, Slug: "marker-interface", Chapter: "enums", Summary: "sealed marker interfaces", Run: runMarker},
	}
}

func runIotaEnums(_ context.Context, log *slog.Logger) error {
	const earthWeight = 175.0
	mass := earthWeight / Earth.SurfaceGravity()
	for _, p := range AllPlanets() {
		log.Info("surface weight", "planet", p.String(), "weight", p.SurfaceWeight(mass))
	}
	return nil
}

func runNoOrdinals(_ context.Context, log *slog.Logger) error {
	log.Info("iota-derived count works until the set changes", "trio", brokenTrio.musicians())
	log.Info("explicit data can repeat", "octet", Octet.Musicians, "doubleQuartet", DoubleQuartet.Musicians)
	return nil
}

func runFlagSets(_ context.Context, log *slog.Logger) error {
	s := NewStyleSet(Bold, Italic)
	s = s.With(Underline).Without(Italic)
	log.Info("typed set", "styles", s.String(), "len", s.Len(), "hasBold", s.Has(Bold))
	return nil
}

func runDenseLookup(_ context.Context, log *slog.Logger) error {
	t, ok := PhaseTransition(Liquid, Gas)
	log.Info("lookup", "from", Liquid.String(), "to", Gas.String(), "transition", t.String(), "ok", ok)

	if _, ok := PhaseTransition(Solid, Solid); !ok {
		log.Info("no self transition", "phase", Solid.String())
	}
	return nil
}

func runExtensibleOps(_ context.Context, log *slog.Logger) error {
	x, y := 2.0, 4.0
	for sym, v := range ApplyAll(BasicOperations(), x, y) {
		log.Info("basic", "op", sym, "result", v)
	}
	pow, err := ParseOperation("^", BasicOperations(), ExtendedOperations())
	if err != nil {
		return err
	}
	log.Info("extension flows through the same API", "op", pow.Symbol(), "result", pow.Apply(x, y))
	return nil
}

func runTags(_ context.Context, log *slog.Logger) error {
	res := RunChecks(SampleChecks{})
	log.Info("reflective runner", "passed", res.Passed, "failed", res.Failed)
	for _, f := range res.Failures {
		log.Info("failure", "check", f)
	}

	type endpoint struct {
		Host string `doc:"DNS name of the upstream"`
		Port int    `doc:"TCP port, 1-65535"`
	}
	for field, doc := range FieldDocs(endpoint{}) {
		log.Info("tag metadata", "field", field, "doc", doc)
	}
	return nil
}

func runOverride(_ context.Context, log *slog.Logger) error {
	var g Greeter = PoliteGreeter{}
	log.Info("asserted implementation", "greeting", g.Greet("Gopher"))
	// typoGreeter's Greet([]byte) is dead code; the assertion that would
	// catch it is the lesson.
	_ = typoGreeter{}
	return nil
}

func runMarker(_ context.Context, log *slog.Logger) error {
	e := PublicEvent{Name: "deploy-finished"}
	log.Info("marked type accepted", "value", LogValue(e))
	// LogValue(SecretEvent{}) does not compile; the marker is a type.
	_ = SecretEvent{Token: "hunter2"}
	return nil
}

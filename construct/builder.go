package construct

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Item 2: use a builder (or functional options) when a constructor takes too
// many parameters.
//
// The telescoping-constructor shape survives in Go as a positional
// constructor whose call sites are unreadable; the JavaBeans shape survives
// as a mutable exported struct that can be observed half-initialized. The
// builder validates the finished value, not its own fields, so invariants
// hold on what the caller actually receives.

// NutritionFacts is an immutable value assembled by Builder. All fields are
// unexported; the only way to obtain one is a successful Build.
type NutritionFacts struct {
	servingSize  int `validate:"gt=0"`
	servings     int `validate:"gt=0"`
	calories     int `validate:"gte=0"`
	fat          int `validate:"gte=0"`
	sodium       int `validate:"gte=0"`
	carbohydrate int `validate:"gte=0"`
}

// ServingSize reports the serving size in milliliters.
func (n NutritionFacts) ServingSize() int { return n.servingSize }

// Servings reports the servings per container.
func (n NutritionFacts) Servings() int { return n.servings }

// Calories reports calories per serving.
func (n NutritionFacts) Calories() int { return n.calories }

// telescoping constructor - DON'T DO THIS. Call sites degenerate into
// NewNutritionFactsTelescoping(240, 8, 100, 0, 35, 27) where nobody can say
// which argument is sodium.
func newNutritionFactsTelescoping(servingSize, servings, calories, fat, sodium, carbohydrate int) NutritionFacts {
	return NutritionFacts{
		servingSize:  servingSize,
		servings:     servings,
		calories:     calories,
		fat:          fat,
		sodium:       sodium,
		carbohydrate: carbohydrate,
	}
}

// ErrUnbuildable is wrapped around validation failures from Build.
var ErrUnbuildable = errors.New("construct: invalid nutrition facts")

// builderValidate checks invariants on the built value. The validator
// instance caches struct metadata, so it is hoisted to package level
// (see item 5).
var builderValidate = validator.New(validator.WithPrivateFieldValidation())

// NutritionBuilder assembles a NutritionFacts. Required parameters are taken
// by the constructor; optional ones default to zero and are set by chaining.
type NutritionBuilder struct {
	facts NutritionFacts
}

// NewNutritionBuilder starts a builder with the two required parameters.
func NewNutritionBuilder(servingSize, servings int) *NutritionBuilder {
	return &NutritionBuilder{facts: NutritionFacts{servingSize: servingSize, servings: servings}}
}

// Calories sets calories per serving.
func (b *NutritionBuilder) Calories(v int) *NutritionBuilder { b.facts.calories = v; return b }

// Fat sets grams of fat per serving.
func (b *NutritionBuilder) Fat(v int) *NutritionBuilder { b.facts.fat = v; return b }

// Sodium sets milligrams of sodium per serving.
func (b *NutritionBuilder) Sodium(v int) *NutritionBuilder { b.facts.sodium = v; return b }

// Carbohydrate sets grams of carbohydrate per serving.
func (b *NutritionBuilder) Carbohydrate(v int) *NutritionBuilder { b.facts.carbohydrate = v; return b }

// Build validates the assembled value and returns it. Invariants are checked
// on the copy being returned, not on builder state, so a caller holding on
// to the builder cannot invalidate an already-built value.
func (b *NutritionBuilder) Build() (NutritionFacts, error) {
	facts := b.facts
	if err := builderValidate.Struct(facts); err != nil {
		return NutritionFacts{}, errors.Join(ErrUnbuildable, err)
	}
	return facts, nil
}

// Option is the functional-option alternative to the builder. It suits
// constructors with a handful of optional knobs and a valid zero default.
type Option func(*NutritionFacts)

// WithCalories sets calories per serving.
func WithCalories(v int) Option { return func(n *NutritionFacts) { n.calories = v } }

// WithSodium sets milligrams of sodium per serving.
func WithSodium(v int) Option { return func(n *NutritionFacts) { n.sodium = v } }

// NewNutritionFacts builds a value from required parameters plus options.
func NewNutritionFacts(servingSize, servings int, opts ...Option) (NutritionFacts, error) {
	facts := NutritionFacts{servingSize: servingSize, servings: servings}
	for _, opt := range opts {
		opt(&facts)
	}
	if err := builderValidate.Struct(facts); err != nil {
		return NutritionFacts{}, errors.Join(ErrUnbuildable, err)
	}
	return facts, nil
}

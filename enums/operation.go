package enums

import (
	"errors"
	"math"
)

// Item 34: emulate extensible enums with an interface.
//
// A closed constant set cannot be extended by clients. Defining the
// operation as an interface keeps the base set closed while letting anyone
// ship additional operations that plug into the same APIs.

// Operation applies a binary function to two operands.
type Operation interface {
	Symbol() string
	Apply(x, y float64) float64
}

// op is the shared implementation for table-driven operations.
type op struct {
	symbol string
	fn     func(x, y float64) float64
}

func (o op) Symbol() string            { return o.symbol }
func (o op) Apply(x, y float64) float64 { return o.fn(x, y) }

// The basic operations.
var (
	Plus   Operation = op{"+", func(x, y float64) float64 { return x + y }}
	Minus  Operation = op{"-", func(x, y float64) float64 { return x - y }}
	Times  Operation = op{"*", func(x, y float64) float64 { return x * y }}
	Divide Operation = op{"/", func(x, y float64) float64 { return x / y }}
)

// BasicOperations returns the closed base set.
func BasicOperations() []Operation {
	return []Operation{Plus, Minus, Times, Divide}
}

// ExtendedOperations returns the client-side extension set; it satisfies
// the same interface and flows through the same Apply helpers.
func ExtendedOperations() []Operation {
	return []Operation{
		op{"^", math.Pow},
		op{"%", math.Mod},
	}
}

// ErrUnknownOperation is returned by ParseOperation for unknown symbols.
var ErrUnknownOperation = errors.New("enums: unknown operation symbol")

// ParseOperation resolves a symbol against any number of operation sets.
func ParseOperation(symbol string, sets ...[]Operation) (Operation, error) {
	for _, set := range sets {
		for _, o := range set {
			if o.Symbol() == symbol {
				return o, nil
			}
		}
	}
	return nil, ErrUnknownOperation
}

// ApplyAll evaluates every operation in a set over one operand pair.
func ApplyAll(ops []Operation, x, y float64) map[string]float64 {
	out := make(map[string]float64, len(ops))
	for _, o := range ops {
		out[o.Symbol()] = o.Apply(x, y)
	}
	return out
}

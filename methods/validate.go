package methods

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/go-playground/validator/v10"
)

// Item 38: check parameters for validity, first thing, every exported
// entry point.
//
// Two styles are shown: hand guards with wrapped sentinel errors for ad hoc
// invariants, and declarative struct validation for request-shaped inputs.
// Either way the failure happens at the boundary with a message naming the
// parameter, not three calls deep with an index panic.

// ErrInvalidArgument is the sentinel all guard failures wrap, so callers
// can errors.Is without caring which parameter was bad.
var ErrInvalidArgument = errors.New("methods: invalid argument")

// ModPow returns base^exp mod m for non-negative exp and positive m.
func ModPow(base, exp, m *big.Int) (*big.Int, error) {
	if base == nil || exp == nil || m == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrInvalidArgument)
	}
	if exp.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative exponent %s", ErrInvalidArgument, exp)
	}
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus %s must be positive", ErrInvalidArgument, m)
	}
	return new(big.Int).Exp(base, exp, m), nil
}

// TransferRequest is a request-shaped input validated declaratively.
type TransferRequest struct {
	From   string `validate:"required,uuid4"`
	To     string `validate:"required,uuid4"`
	Amount int64  `validate:"gt=0"`
	Memo   string `validate:"max=140"`
}

var requestValidate = validator.New()

// ValidateTransfer applies the declared rules. Unexercised paths deeper in
// the transfer pipeline can then assume a well-formed request.
func ValidateTransfer(req TransferRequest) error {
	if err := requestValidate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

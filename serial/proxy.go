package serial

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Item 78: encode through a proxy.
//
// Account keeps its fields unexported so every instance passes through
// NewAccount. Rather than poking encoders at the private layout, the
// yaml hooks translate to and from accountProxy, a dumb DTO; decoding
// re-runs the constructor, so the wire format can never smuggle in an
// invalid account.

// ErrBadAccount reports a constructor rejection.
var ErrBadAccount = errors.New("serial: invalid account")

// Account is constructor-validated: non-empty owner, non-negative balance.
type Account struct {
	owner   string
	balance int64
}

// NewAccount validates and constructs.
func NewAccount(owner string, balanceCents int64) (Account, error) {
	if owner == "" {
		return Account{}, fmt.Errorf("%w: empty owner", ErrBadAccount)
	}
	if balanceCents < 0 {
		return Account{}, fmt.Errorf("%w: negative balance %d", ErrBadAccount, balanceCents)
	}
	return Account{owner: owner, balance: balanceCents}, nil
}

// Owner returns the account owner.
func (a Account) Owner() string { return a.owner }

// Balance returns the balance in cents.
func (a Account) Balance() int64 { return a.balance }

// accountProxy is the serialized form. It has no behavior and no
// invariants of its own.
type accountProxy struct {
	Owner   string `yaml:"owner"`
	Balance int64  `yaml:"balance_cents"`
}

// MarshalYAML encodes via the proxy.
func (a Account) MarshalYAML() (any, error) {
	return accountProxy{Owner: a.owner, Balance: a.balance}, nil
}

// UnmarshalYAML decodes the proxy and rebuilds through the constructor.
func (a *Account) UnmarshalYAML(node *yaml.Node) error {
	var p accountProxy
	if err := node.Decode(&p); err != nil {
		return err
	}
	acct, err := NewAccount(p.Owner, p.Balance)
	if err != nil {
		return err
	}
	*a = acct
	return nil
}

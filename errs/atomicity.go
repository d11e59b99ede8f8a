package errs

import "errors"

// Item 64: strive for failure atomicity.
//
// A failed operation should leave the object as it found it. Three ways to
// get there: validate before mutating, work on a copy and commit at the
// end, or restore on the error path with defer.

// ErrInsufficientFunds is returned by withdrawals exceeding the balance.
var ErrInsufficientFunds = errors.New("errs: insufficient funds")

// Wallet holds a balance in cents.
type Wallet struct {
	cents int64
}

// Balance reports the current balance.
func (w *Wallet) Balance() int64 { return w.cents }

// Deposit adds funds.
func (w *Wallet) Deposit(cents int64) { w.cents += cents }

// withdrawBroken mutates first and checks after - DON'T DO THIS. On
// failure the wallet is left with a negative balance.
func (w *Wallet) withdrawBroken(cents int64) error {
	w.cents -= cents
	if w.cents < 0 {
		return ErrInsufficientFunds
	}
	return nil
}

// Withdraw validates before touching state; failure leaves the balance
// untouched.
func (w *Wallet) Withdraw(cents int64) error {
	if cents > w.cents {
		return ErrInsufficientFunds
	}
	w.cents -= cents
	return nil
}

// ApplyBatch applies signed adjustments in order and restores the starting
// balance on any failure. The defer keeps the restore next to the
// snapshot instead of scattered over every error return.
func (w *Wallet) ApplyBatch(adjustments []int64) (err error) {
	snapshot := w.cents
	defer func() {
		if err != nil {
			w.cents = snapshot
		}
	}()
	for _, adj := range adjustments {
		if adj >= 0 {
			w.Deposit(adj)
			continue
		}
		if err = w.Withdraw(-adj); err != nil {
			return err
		}
	}
	return nil
}

// TransferAll moves every entry from src to dst, all or nothing: the
// staged copy only commits once each entry has passed validation.
func TransferAll(dst, src map[string]int64) error {
	staged := make(map[string]int64, len(src))
	for k, v := range src {
		if v < 0 {
			return errors.New("errs: negative entry " + k)
		}
		staged[k] = v
	}
	for k, v := range staged {
		dst[k] += v
		delete(src, k)
	}
	return nil
}

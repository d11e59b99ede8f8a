package errs

import (
	"context"
	"io"
	"io/fs"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

//
// -----------------------------------------------------------------------------
// Items 57-58: control flow and taxonomy
// -----------------------------------------------------------------------------

// TestSum verifies the recover-driven loop and the plain loop agree.
func TestSum(t *testing.T) {
	t.Parallel()

	xs := []int{1, 2, 3, 4}
	assert.Equal(t, 10, Sum(xs))
	assert.Equal(t, 10, sumUntilPanic(xs))
	assert.Equal(t, 0, Sum(nil))
}

// TestParseQuantity verifies bad input surfaces as ErrBadQuantity.
func TestParseQuantity(t *testing.T) {
	t.Parallel()

	n, err := ParseQuantity("12")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = ParseQuantity("dozen")
	assert.ErrorIs(t, err, ErrBadQuantity)

	_, err = ParseQuantity("-3")
	assert.ErrorIs(t, err, ErrBadQuantity)
}

// TestNewBuffer_PanicsOnMisuse verifies precondition violations panic.
func TestNewBuffer_PanicsOnMisuse(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewBuffer(0) })

	b := NewBuffer(1)
	require.NoError(t, b.Add("x"))
	assert.ErrorContains(t, b.Add("y"), "buffer full")
}

//
// -----------------------------------------------------------------------------
// Items 59-60: API shapes and stdlib sentinels
// -----------------------------------------------------------------------------

// TestSeverity verifies the three entry points agree.
func TestSeverity(t *testing.T) {
	t.Parallel()

	s, err := ParseSeverity("info")
	require.NoError(t, err)
	assert.Equal(t, SevInfo, s)

	_, ok := LookupSeverity("chatty")
	assert.False(t, ok)

	assert.Equal(t, SevError, MustParseSeverity("error"))
	assert.Panics(t, func() { MustParseSeverity("chatty") })
}

// TestBlobStore_Sentinels verifies the store wraps stdlib sentinels.
func TestBlobStore_Sentinels(t *testing.T) {
	t.Parallel()

	store := NewBlobStore()
	assert.ErrorIs(t, store.Put("", nil), os.ErrInvalid)

	require.NoError(t, store.Put("k", []byte("v")))
	data, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)

	_, err = store.Get("absent")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestBlobStore_GetWithin verifies the deadline path returns the context's
// error.
func TestBlobStore_GetWithin(t *testing.T) {
	t.Parallel()

	store := NewBlobStore()
	require.NoError(t, store.Put("k", []byte("v")))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	_, err := store.GetWithin(ctx, "k", 100*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	data, err := store.GetWithin(context.Background(), "k", time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)
}

//
// -----------------------------------------------------------------------------
// Item 61: translation at boundaries
// -----------------------------------------------------------------------------

// TestProfileService_Load verifies translation preserves the cause chain.
func TestProfileService_Load(t *testing.T) {
	t.Parallel()

	store := NewBlobStore()
	svc := NewProfileService(store)

	_, err := svc.Load("ada")
	var nf *ProfileNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "ada", nf.User)
	assert.ErrorIs(t, err, fs.ErrNotExist, "cause reachable through the wrap")

	require.NoError(t, store.Put("profiles/ada", []byte(`{"name":"Ada"}`)))
	data, err := svc.Load("ada")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

//
// -----------------------------------------------------------------------------
// Items 62-63: contracts and payloads
// -----------------------------------------------------------------------------

// TestTicketCounter verifies the documented error contract holds.
func TestTicketCounter(t *testing.T) {
	t.Parallel()

	tc := NewTicketCounter(2)
	a, err := tc.Reserve()
	require.NoError(t, err)
	b, err := tc.Reserve()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = tc.Reserve()
	assert.ErrorIs(t, err, ErrSoldOut)

	assert.ErrorIs(t, tc.Release(42), ErrNotReserved)
	require.NoError(t, tc.Release(a))
	assert.Equal(t, 1, tc.Free())
}

// TestQuotaError verifies the payload fields.
func TestQuotaError(t *testing.T) {
	t.Parallel()

	a := NewAllocator("conns", 10)
	require.NoError(t, a.Allocate(4))

	err := a.Allocate(10)
	var qe *QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, int64(10), qe.Requested)
	assert.Equal(t, int64(6), qe.Available)
	assert.Equal(t, int64(4), qe.Shortfall())
	assert.Contains(t, qe.Error(), "conns")
}

//
// -----------------------------------------------------------------------------
// Item 64: failure atomicity
// -----------------------------------------------------------------------------

// TestWallet_Withdraw verifies failure leaves the balance untouched, and
// documents that the broken variant does not.
func TestWallet_Withdraw(t *testing.T) {
	t.Parallel()

	w := &Wallet{}
	w.Deposit(100)
	assert.ErrorIs(t, w.Withdraw(250), ErrInsufficientFunds)
	assert.Equal(t, int64(100), w.Balance())

	broken := &Wallet{}
	broken.Deposit(100)
	require.Error(t, broken.withdrawBroken(250))
	assert.Equal(t, int64(-150), broken.Balance())
}

// TestWallet_ApplyBatch property-checks the rollback: a failing batch never
// changes the balance.
func TestWallet_ApplyBatch(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		start := rapid.Int64Range(0, 1000).Draw(t, "start")
		adjustments := rapid.SliceOf(rapid.Int64Range(-500, 500)).Draw(t, "adjustments")

		w := &Wallet{}
		w.Deposit(start)
		err := w.ApplyBatch(adjustments)
		if err != nil {
			assert.Equal(t, start, w.Balance())
			return
		}
		sum := start
		for _, adj := range adjustments {
			sum += adj
		}
		assert.Equal(t, sum, w.Balance())
	})
}

// TestTransferAll verifies all-or-nothing semantics.
func TestTransferAll(t *testing.T) {
	t.Parallel()

	dst := map[string]int64{"a": 1}
	src := map[string]int64{"a": 2, "b": 3}
	require.NoError(t, TransferAll(dst, src))
	assert.Equal(t, map[string]int64{"a": 3, "b": 3}, dst)
	assert.Empty(t, src)

	bad := map[string]int64{"x": -1, "y": 5}
	before := map[string]int64{"a": 3, "b": 3}
	require.Error(t, TransferAll(dst, bad))
	assert.Equal(t, before, dst, "failed transfer changed nothing")
	assert.Len(t, bad, 2)
}

//
// -----------------------------------------------------------------------------
// Item 65: handled errors
// -----------------------------------------------------------------------------

// failAfter errors once n bytes have been accepted.
type failAfter struct {
	n int
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, io.ErrShortWrite
	}
	if len(p) > f.n {
		p = p[:f.n]
	}
	f.n -= len(p)
	return len(p), nil
}

// TestWriteReport verifies the flush failure is reported, not swallowed.
func TestWriteReport(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	require.NoError(t, WriteReport(&sb, []string{"a", "b"}))
	assert.Equal(t, "a\nb\n", sb.String())

	err := WriteReport(&failAfter{n: 1}, []string{"hello"})
	assert.ErrorContains(t, err, "flush report")

	// The sloppy version reports nothing; the only observable is silence.
	writeReportSloppy(&failAfter{n: 1}, []string{"hello"})
}

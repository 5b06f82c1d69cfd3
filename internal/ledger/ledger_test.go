package ledger

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/zlyzol/uledger/internal/common"
	"gitlab.com/zlyzol/uledger/internal/config"
	"gitlab.com/zlyzol/uledger/internal/store/inmemorydb"
)

const (
	alice = common.Address("0x9873d61e6bf850d0b0c2f3c6e075980683f2d9fe")
	bob   = common.Address("0x593cc1a399a65d3eaf8316da933745c4f5b94429")
)

func newTestLedger(t *testing.T, maxSupply string) *Ledger {
	db, err := inmemorydb.NewClient()
	require.NoError(t, err)
	l, err := NewLedger(db, &config.Configuration{Ledger: config.LedgerConfiguration{MaxSupply: maxSupply}})
	require.NoError(t, err)
	l.now = func() time.Time { return time.Unix(1600000000, 0) }
	require.NoError(t, l.Start())
	return l
}

func u(n uint64) common.U256 { return common.NewU256FromUint64(n) }

func TestNewLedgerValidation(t *testing.T) {
	db, _ := inmemorydb.NewClient()
	_, err := NewLedger(db, nil)
	assert.Error(t, err)
	_, err = NewLedger(nil, &config.Configuration{})
	assert.Error(t, err)
	_, err = NewLedger(db, &config.Configuration{Ledger: config.LedgerConfiguration{MaxSupply: "-1"}})
	assert.True(t, common.IsRangeError(err))
}

func TestMint(t *testing.T) {
	l := newTestLedger(t, "100")

	acc, err := l.Mint(alice, u(60))
	require.NoError(t, err)
	assert.Equal(t, "60", acc.Balance.String())

	_, err = l.Mint(bob, u(41))
	assert.True(t, common.IsRangeError(err))

	_, err = l.Mint(bob, u(0))
	assert.Equal(t, ErrZeroAmount, err)

	_, err = l.Mint(bob, u(40))
	require.NoError(t, err)

	stats, err := l.GetStats()
	require.NoError(t, err)
	assert.Equal(t, "100", stats.TotalSupply.String())
	assert.Equal(t, 2, stats.AccountCount)
}

func TestTransfer(t *testing.T) {
	l := newTestLedger(t, "0x"+repeatF(64))
	_, err := l.Mint(alice, u(10))
	require.NoError(t, err)

	tr, err := l.Transfer(alice, bob, u(4), u(0))
	require.NoError(t, err)
	assert.Equal(t, "4", tr.Amount.String())
	assert.True(t, tr.Nonce.IsZero())
	assert.Len(t, tr.ID, 66)

	a, err := l.GetAccount(alice)
	require.NoError(t, err)
	assert.Equal(t, "6", a.Balance.String())
	assert.Equal(t, "1", a.Nonce.String())

	b, err := l.GetAccount(bob)
	require.NoError(t, err)
	assert.Equal(t, "4", b.Balance.String())
	assert.True(t, b.Nonce.IsZero())

	// replaying the same nonce fails
	_, err = l.Transfer(alice, bob, u(1), u(0))
	assert.Equal(t, ErrNonceMismatch, errors.Cause(err))

	_, err = l.Transfer(alice, bob, u(7), u(1))
	assert.Equal(t, ErrInsufficientBalance, errors.Cause(err))

	_, err = l.Transfer(alice, alice, u(1), u(1))
	assert.Equal(t, ErrSelfTransfer, err)

	_, err = l.Transfer(alice, bob, u(0), u(1))
	assert.Equal(t, ErrZeroAmount, err)

	_, err = l.Transfer(alice, bob, u(6), u(1))
	require.NoError(t, err)

	transfers, err := l.GetTransfers(0)
	require.NoError(t, err)
	require.Len(t, *transfers, 2)
	assert.Equal(t, "6", (*transfers)[0].Amount.String())

	stats, err := l.GetStats()
	require.NoError(t, err)
	assert.Equal(t, "10", stats.TotalSupply.String())
	assert.Equal(t, 2, stats.TransferCount)
}

func TestHealth(t *testing.T) {
	l := newTestLedger(t, "1")
	h := l.GetHealth()
	assert.True(t, h.Ledger)
	assert.True(t, h.Database)
	require.NoError(t, l.Stop())
}

func repeatF(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'f'
	}
	return string(b)
}

package inmemorydb

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/zlyzol/uledger/internal/common"
	"gitlab.com/zlyzol/uledger/internal/models"
	"gitlab.com/zlyzol/uledger/internal/store"
)

var _ store.Store = (*InMemoryDb)(nil)

func TestAccounts(t *testing.T) {
	db, err := NewClient()
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	acc, found, err := db.GetAccount("a")
	require.NoError(t, err)
	assert.False(t, found)
	assert.True(t, acc.Balance.IsZero())
	assert.Equal(t, common.Address("a"), acc.Address)

	acc.Balance = common.NewU256FromUint64(10)
	require.NoError(t, db.PutAccount(acc))
	require.NoError(t, db.PutAccount(models.Account{Address: "b", Balance: common.NewU256FromUint64(5)}))
	assert.Error(t, db.PutAccount(models.Account{}))

	acc, found, err = db.GetAccount("a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(10), acc.Balance.Uint64())

	stats, err := db.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.AccountCount)
	assert.Equal(t, "15", stats.TotalSupply.String())
}

func TestTransfersNewestFirst(t *testing.T) {
	db, err := NewClient()
	require.NoError(t, err)
	for i := 0; i < store.DefaultTransferLimit+5; i++ {
		require.NoError(t, db.InsertTransfer(models.Transfer{ID: fmt.Sprint(i), Time: time.Now()}))
	}

	all, err := db.GetTransfers(0)
	require.NoError(t, err)
	assert.Len(t, all, store.DefaultTransferLimit)
	assert.Equal(t, fmt.Sprint(store.DefaultTransferLimit+4), all[0].ID)

	two, err := db.GetTransfers(2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, fmt.Sprint(store.DefaultTransferLimit+3), two[1].ID)

	stats, err := db.GetStats()
	require.NoError(t, err)
	assert.Equal(t, store.DefaultTransferLimit+5, stats.TransferCount)
}

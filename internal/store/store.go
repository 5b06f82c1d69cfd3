package store

import (
	"gitlab.com/zlyzol/uledger/internal/common"
	"gitlab.com/zlyzol/uledger/internal/models"
)

// DefaultTransferLimit is used when GetTransfers is called with limit <= 0
const DefaultTransferLimit = 100

// Store represents methods required by Ledger to store and load data from internal data store.
type Store interface {
	Ping() error

	GetAccount(addr common.Address) (models.Account, bool, error)
	PutAccount(acc models.Account) error

	InsertTransfer(record models.Transfer) error

	GetStats() (models.Stats, error)
	GetTransfers(limit int) (models.Transfers, error)
}

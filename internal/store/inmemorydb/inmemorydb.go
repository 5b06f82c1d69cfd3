package inmemorydb

import (
	"sync"

	"github.com/pkg/errors"

	"gitlab.com/zlyzol/uledger/internal/common"
	"gitlab.com/zlyzol/uledger/internal/models"
	"gitlab.com/zlyzol/uledger/internal/store"
)

type InMemoryDb struct {
	mux       sync.Mutex
	accounts  map[common.Address]models.Account
	transfers models.Transfers
}

func NewClient() (*InMemoryDb, error) {
	return &InMemoryDb{
		accounts:  make(map[common.Address]models.Account),
		transfers: make(models.Transfers, 0),
	}, nil
}

func (m *InMemoryDb) Ping() error {
	return nil
}

func (m *InMemoryDb) GetAccount(addr common.Address) (models.Account, bool, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	acc, ok := m.accounts[addr]
	if !ok {
		return models.NewAccount(addr), false, nil
	}
	return acc, true, nil
}

func (m *InMemoryDb) PutAccount(acc models.Account) error {
	if acc.Address.IsEmpty() {
		return errors.New("account without address")
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	m.accounts[acc.Address] = acc
	return nil
}

func (m *InMemoryDb) GetStats() (models.Stats, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	result := models.Stats{
		AccountCount:  len(m.accounts),
		TransferCount: len(m.transfers),
	}
	for _, acc := range m.accounts {
		sum, err := result.TotalSupply.Add(acc.Balance)
		if err != nil {
			return result, errors.Wrap(err, "total supply")
		}
		result.TotalSupply = sum
	}
	return result, nil
}

// GetTransfers returns the newest transfers first
func (m *InMemoryDb) GetTransfers(limit int) (models.Transfers, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	if limit <= 0 {
		limit = store.DefaultTransferLimit
	}
	result := make(models.Transfers, 0, limit)
	for i := len(m.transfers) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.transfers[i])
	}
	return result, nil
}

func (m *InMemoryDb) InsertTransfer(transfer models.Transfer) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.transfers = append(m.transfers, transfer)
	return nil
}

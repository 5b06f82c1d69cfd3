package ledger

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gitlab.com/zlyzol/uledger/internal/common"
	"gitlab.com/zlyzol/uledger/internal/config"
	"gitlab.com/zlyzol/uledger/internal/models"
	"gitlab.com/zlyzol/uledger/internal/store"
)

var (
	// ErrInsufficientBalance is returned when a sender can not cover a transfer
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrNonceMismatch is returned when a transfer does not carry the sender's next nonce
	ErrNonceMismatch = errors.New("nonce mismatch")
	// ErrZeroAmount is returned for empty mints and transfers
	ErrZeroAmount = errors.New("amount must be > 0")
	// ErrSelfTransfer is returned when from and to are the same account
	ErrSelfTransfer = errors.New("sender and recipient are the same account")
)

type Ledger struct {
	mu        sync.Mutex
	logger    zerolog.Logger
	store     store.Store
	maxSupply common.U256
	startTime time.Time
	now       func() time.Time
}

// NewLedger creates a ledger on top of the store
func NewLedger(store store.Store, cfg *config.Configuration) (*Ledger, error) {
	if cfg == nil {
		return nil, errors.New("conf can't be nil")
	}
	if store == nil {
		return nil, errors.New("store can't be nil")
	}
	maxSupply, err := common.NewU256FromString(cfg.Ledger.MaxSupply)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ledger.max_supply")
	}
	return &Ledger{
		logger:    log.With().Str("module", "ledger").Logger(),
		store:     store,
		maxSupply: maxSupply,
		now:       time.Now,
	}, nil
}

// Start ledger
func (l *Ledger) Start() error {
	l.startTime = l.now()
	if err := l.store.Ping(); err != nil {
		return errors.Wrap(err, "store is not reachable")
	}
	l.logger.Info().Str("max_supply", l.maxSupply.String()).Msg("ledger started")
	return nil
}

// Stop ledger
func (l *Ledger) Stop() error {
	l.logger.Info().Msg("ledger stopped")
	return nil
}

// GetAccount returns the account state, unknown addresses have zero balance and nonce
func (l *Ledger) GetAccount(addr common.Address) (models.Account, error) {
	acc, _, err := l.store.GetAccount(addr)
	if err != nil {
		return acc, errors.Wrap(err, "failed to load account")
	}
	return acc, nil
}

// Mint credits amount to addr as long as the total supply stays within max supply
func (l *Ledger) Mint(addr common.Address, amount common.U256) (models.Account, error) {
	if amount.IsZero() {
		return models.Account{}, ErrZeroAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	stats, err := l.store.GetStats()
	if err != nil {
		return models.Account{}, errors.Wrap(err, "failed to load supply")
	}
	supply, err := stats.TotalSupply.Add(amount)
	if err != nil {
		return models.Account{}, err
	}
	if supply.Gt(l.maxSupply) {
		return models.Account{}, &common.RangeError{Input: supply.String(), Reason: "exceeds max supply " + l.maxSupply.String()}
	}

	acc, _, err := l.store.GetAccount(addr)
	if err != nil {
		return acc, errors.Wrap(err, "failed to load account")
	}
	if acc.Balance, err = acc.Balance.Add(amount); err != nil {
		return acc, err
	}
	if err := l.store.PutAccount(acc); err != nil {
		return acc, errors.Wrap(err, "failed to store account")
	}
	l.logger.Info().Str("address", addr.String()).Str("amount", amount.String()).Msg("minted")
	return acc, nil
}

// Transfer moves amount from one account to another. nonce must be the sender's
// current nonce, which is increased by one on success.
func (l *Ledger) Transfer(from, to common.Address, amount, nonce common.U256) (models.Transfer, error) {
	if amount.IsZero() {
		return models.Transfer{}, ErrZeroAmount
	}
	if from.Equal(to) {
		return models.Transfer{}, ErrSelfTransfer
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	sender, _, err := l.store.GetAccount(from)
	if err != nil {
		return models.Transfer{}, errors.Wrap(err, "failed to load sender")
	}
	if !sender.Nonce.Equal(nonce) {
		return models.Transfer{}, errors.Wrapf(ErrNonceMismatch, "expected %s, got %s", sender.Nonce, nonce)
	}
	if sender.Balance.Lt(amount) {
		return models.Transfer{}, errors.Wrapf(ErrInsufficientBalance, "balance %s, amount %s", sender.Balance, amount)
	}
	recipient, _, err := l.store.GetAccount(to)
	if err != nil {
		return models.Transfer{}, errors.Wrap(err, "failed to load recipient")
	}

	nextNonce, err := sender.Nonce.Increase()
	if err != nil {
		return models.Transfer{}, errors.Wrap(err, "sender nonce exhausted")
	}
	credited, err := recipient.Balance.Add(amount)
	if err != nil {
		return models.Transfer{}, err
	}
	debited, err := sender.Balance.Sub(amount)
	if err != nil {
		return models.Transfer{}, err
	}

	transfer, err := models.NewTransfer(from, to, amount, nonce, l.now())
	if err != nil {
		return transfer, err
	}

	sender.Balance, sender.Nonce = debited, nextNonce
	recipient.Balance = credited
	if err := l.store.PutAccount(sender); err != nil {
		return transfer, errors.Wrap(err, "failed to store sender")
	}
	if err := l.store.PutAccount(recipient); err != nil {
		return transfer, errors.Wrap(err, "failed to store recipient")
	}
	if err := l.store.InsertTransfer(transfer); err != nil {
		return transfer, errors.Wrap(err, "failed to store transfer")
	}
	l.logger.Info().
		Str("id", transfer.ID).
		Str("from", from.String()).
		Str("to", to.String()).
		Str("amount", amount.String()).
		Msg("transfer")
	return transfer, nil
}

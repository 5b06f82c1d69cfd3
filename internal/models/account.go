package models

import "gitlab.com/zlyzol/uledger/internal/common"

// Account is the ledger state of one address
type Account struct {
	Address common.Address `json:"address" bson:"_id"`
	Balance common.U256    `json:"balance" bson:"balance"`
	Nonce   common.U256    `json:"nonce" bson:"nonce"`
}

// NewAccount returns an empty account, zero balance and nonce
func NewAccount(addr common.Address) Account {
	return Account{Address: addr}
}

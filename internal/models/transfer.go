package models

import (
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"gitlab.com/zlyzol/uledger/internal/common"
)

type Transfer struct {
	ID     string         `json:"id" bson:"_id"`
	Time   time.Time      `json:"time" bson:"time"`
	From   common.Address `json:"from" bson:"from"`
	To     common.Address `json:"to" bson:"to"`
	Amount common.U256    `json:"amount" bson:"amount"`
	Nonce  common.U256    `json:"nonce" bson:"nonce"`
}

type Transfers []Transfer

// transferBody is the hashed part of a transfer
type transferBody struct {
	From   string
	To     string
	Amount common.U256
	Nonce  common.U256
}

// NewTransfer builds a transfer and derives its ID as keccak256(rlp([from, to, amount, nonce]))
func NewTransfer(from, to common.Address, amount, nonce common.U256, at time.Time) (Transfer, error) {
	body, err := EncodeTransferBody(from, to, amount, nonce)
	if err != nil {
		return Transfer{}, err
	}
	return Transfer{
		ID:     crypto.Keccak256Hash(body).Hex(),
		Time:   at,
		From:   from,
		To:     to,
		Amount: amount,
		Nonce:  nonce,
	}, nil
}

// EncodeTransferBody returns the rlp list the transfer ID is computed from
func EncodeTransferBody(from, to common.Address, amount, nonce common.U256) ([]byte, error) {
	body, err := rlp.EncodeToBytes(transferBody{
		From:   from.String(),
		To:     to.String(),
		Amount: amount,
		Nonce:  nonce,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode transfer")
	}
	return body, nil
}

// DecodeTransferBody is the inverse of EncodeTransferBody
func DecodeTransferBody(b []byte) (from, to common.Address, amount, nonce common.U256, err error) {
	var body transferBody
	if err = rlp.DecodeBytes(b, &body); err != nil {
		err = errors.Wrap(err, "failed to decode transfer")
		return
	}
	return common.Address(body.From), common.Address(body.To), body.Amount, body.Nonce, nil
}

package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"

	"gitlab.com/zlyzol/uledger/internal/models"
)

// GetStats sums balances client side, mongo has no 256-bit arithmetic
func (m *Mongo) GetStats() (models.Stats, error) {
	result := models.Stats{}

	transfers, err := m.collection(transfersCollection).CountDocuments(context.TODO(), bson.D{})
	if err != nil {
		return result, errors.Wrap(err, "failed to count transfers in mongo")
	}
	result.TransferCount = int(transfers)

	cur, err := m.collection(accountsCollection).Find(context.TODO(), bson.D{})
	if err != nil {
		return result, errors.Wrap(err, "failed to read accounts from mongo")
	}
	defer cur.Close(context.TODO())
	for cur.Next(context.TODO()) {
		var acc models.Account
		if err := cur.Decode(&acc); err != nil {
			return result, errors.Wrap(err, "failed to decode account from mongo")
		}
		sum, err := result.TotalSupply.Add(acc.Balance)
		if err != nil {
			return result, errors.Wrap(err, "total supply")
		}
		result.TotalSupply = sum
		result.AccountCount++
	}
	if err := cur.Err(); err != nil {
		return result, errors.Wrap(err, "failed to read accounts from mongo")
	}
	return result, nil
}

package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	mongodb "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gitlab.com/zlyzol/uledger/internal/common"
	"gitlab.com/zlyzol/uledger/internal/models"
)

func (m *Mongo) GetAccount(addr common.Address) (models.Account, bool, error) {
	var acc models.Account
	err := m.collection(accountsCollection).FindOne(context.TODO(), bson.M{"_id": addr}).Decode(&acc)
	if err == mongodb.ErrNoDocuments {
		return models.NewAccount(addr), false, nil
	}
	if err != nil {
		return acc, false, errors.Wrap(err, "failed to read account from mongo")
	}
	return acc, true, nil
}

func (m *Mongo) PutAccount(acc models.Account) error {
	if acc.Address.IsEmpty() {
		return errors.New("account without address")
	}
	opts := options.Replace().SetUpsert(true)
	_, err := m.collection(accountsCollection).ReplaceOne(context.TODO(), bson.M{"_id": acc.Address}, acc, opts)
	if err != nil {
		return errors.Wrap(err, "failed to write account to mongo")
	}
	return nil
}

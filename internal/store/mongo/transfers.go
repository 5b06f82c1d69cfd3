package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gitlab.com/zlyzol/uledger/internal/models"
	"gitlab.com/zlyzol/uledger/internal/store"
)

func (m *Mongo) GetTransfers(limit int) (models.Transfers, error) {
	if limit <= 0 {
		limit = store.DefaultTransferLimit
	}
	findOptions := options.Find()
	findOptions.SetLimit(int64(limit))
	findOptions.SetSort(bson.D{{Key: "time", Value: -1}})
	results := make(models.Transfers, 0, limit)
	cur, err := m.collection(transfersCollection).Find(context.TODO(), bson.D{}, findOptions)
	if err != nil {
		return results, errors.Wrap(err, "failed to read transfers from mongo")
	}
	defer cur.Close(context.TODO())
	for cur.Next(context.TODO()) {
		var elem models.Transfer
		if err := cur.Decode(&elem); err != nil {
			return results, errors.Wrap(err, "failed to decode transfer from mongo")
		}
		results = append(results, elem)
	}
	if err := cur.Err(); err != nil {
		return results, errors.Wrap(err, "failed to read transfers from mongo")
	}
	return results, nil
}

func (m *Mongo) InsertTransfer(record models.Transfer) error {
	_, err := m.collection(transfersCollection).InsertOne(context.TODO(), record)
	if err != nil {
		return errors.Wrap(err, "failed to write transfer to mongo")
	}
	return nil
}

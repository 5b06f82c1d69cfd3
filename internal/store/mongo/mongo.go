package mongo

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gitlab.com/zlyzol/uledger/internal/common"
	"gitlab.com/zlyzol/uledger/internal/config"
	mongodb "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	accountsCollection  = "accounts"
	transfersCollection = "transfers"

	connectAttempts = 5
	connectWaitMs   = 1000
)

type Mongo struct {
	logger zerolog.Logger
	cfg    config.MongoConfiguration
	db     *mongodb.Client
}

func NewClient(cfg config.MongoConfiguration) (*Mongo, error) {
	logger := log.With().Str("module", "mongo").Logger()
	connStr := fmt.Sprintf("mongodb://%s:%v", cfg.Host, cfg.Port)

	// connect to DB
	clientOptions := options.Client().ApplyURI(connStr)
	db, err := mongodb.Connect(context.TODO(), clientOptions)
	if err != nil {
		logger.Err(err).Msg("Open")
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}
	// the server may still be starting next to us
	err = common.Try(connectAttempts, connectWaitMs, func() error {
		return db.Ping(context.TODO(), nil)
	})
	if err != nil {
		logger.Err(err).Msg("Ping")
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}
	logger.Info().Str("uri", connStr).Str("database", cfg.Database).Msg("connected")
	return &Mongo{
		cfg:    cfg,
		db:     db,
		logger: logger,
	}, nil
}

func (m *Mongo) Ping() error {
	return m.db.Ping(context.TODO(), nil)
}

// Close disconnects the client
func (m *Mongo) Close() error {
	return m.db.Disconnect(context.TODO())
}

func (m *Mongo) collection(name string) *mongodb.Collection {
	return m.db.Database(m.cfg.Database).Collection(name)
}

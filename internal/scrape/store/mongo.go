package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"scholarship-feed/pkg/config"
)

type Stores struct {
	Client   *mongo.Client
	DB       *mongo.Database
	Listings *mongo.Collection // one document per (title, provider)
}

// Connect dials Mongo, pings it and makes sure the listing indexes exist.
func Connect(ctx context.Context, cfg config.MongoConfig, log *zap.Logger) (*Stores, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second)

	cli, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, eris.Wrap(err, "store: connect")
	}
	if err := cli.Ping(ctx, nil); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, eris.Wrap(err, "store: ping")
	}

	db := cli.Database(cfg.DBName)
	s := &Stores{
		Client:   cli,
		DB:       db,
		Listings: db.Collection(cfg.Collection),
	}
	if err := ensureIndexes(ctx, s); err != nil {
		log.Warn("Failed to ensure listing indexes", zap.Error(err))
	}
	log.Info("Connected to MongoDB",
		zap.String("db", cfg.DBName),
		zap.String("collection", cfg.Collection),
	)
	return s, nil
}

// Close disconnects the client.
func (s *Stores) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, s *Stores) error {
	_, err := s.Listings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}, {Key: "provider", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("title_provider_unique"),
		},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "domain", Value: 1}}},
		{Keys: bson.D{{Key: "source", Value: 1}}},
		{Keys: bson.D{{Key: "deadline", Value: 1}}},
	})
	return err
}

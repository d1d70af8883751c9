package store

import (
	"context"
	"errors"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"scholarship-feed/internal/scrape/model"
)

// ErrStoreUnavailable means no write could be attempted or every write failed
// at the connection level.
var ErrStoreUnavailable = errors.New("store: unavailable")

// Collection is the part of *mongo.Collection the upserter needs.
type Collection interface {
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
}

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Upserter writes listings keyed on (title, provider).
type Upserter struct {
	coll Collection
	ping Pinger
	log  *zap.Logger
}

// NewUpserter returns an Upserter. ping may be nil to skip the liveness check.
func NewUpserter(coll Collection, ping Pinger, log *zap.Logger) *Upserter {
	return &Upserter{coll: coll, ping: ping, log: log}
}

// Upsert replaces or inserts every listing in batch. Items are independent:
// one failing item is logged and skipped. The error is non-nil only when the
// store itself is unusable.
func (u *Upserter) Upsert(ctx context.Context, batch []model.Listing) (inserted, updated int, err error) {
	if u.ping != nil {
		if err := u.ping.Ping(ctx, readpref.Primary()); err != nil {
			return 0, 0, eris.Wrapf(ErrStoreUnavailable, "ping: %v", err)
		}
	}

	opts := options.Replace().SetUpsert(true)
	connFailures := 0
	for _, l := range batch {
		filter := bson.D{{Key: "title", Value: l.Title}, {Key: "provider", Value: l.Provider}}
		res, err := u.coll.ReplaceOne(ctx, filter, l, opts)
		if err != nil {
			if isConnectionError(err) {
				connFailures++
			}
			u.log.Warn("Failed to upsert listing",
				zap.String("title", l.Title),
				zap.String("provider", l.Provider),
				zap.Error(err),
			)
			continue
		}
		switch {
		case res.UpsertedCount > 0:
			inserted++
		case res.MatchedCount > 0:
			updated++
		}
	}

	if len(batch) > 0 && connFailures == len(batch) {
		return inserted, updated, eris.Wrapf(ErrStoreUnavailable, "all %d writes failed", len(batch))
	}

	u.log.Info("Upsert batch complete",
		zap.Int("batch", len(batch)),
		zap.Int("inserted", inserted),
		zap.Int("updated", updated),
	)
	return inserted, updated, nil
}

func isConnectionError(err error) bool {
	return mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

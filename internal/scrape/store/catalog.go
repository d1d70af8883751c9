package store

import (
	"context"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scholarship-feed/internal/scrape/model"
)

const maxPageSize = 200

// ListingQuery filters the catalog. Empty fields are ignored.
type ListingQuery struct {
	Category string
	Domain   string
	Source   string
	Trending *bool
	Page     int // 1-based
	Limit    int
}

// Catalog reads listings back out of Mongo.
type Catalog struct {
	coll *mongo.Collection
}

func NewCatalog(coll *mongo.Collection) *Catalog {
	return &Catalog{coll: coll}
}

// Find returns one page of active listings ordered by deadline, plus the
// total number of matches.
func (c *Catalog) Find(ctx context.Context, q ListingQuery) ([]model.Listing, int64, error) {
	q = q.Normalized()
	filter := q.filter()

	total, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, eris.Wrap(err, "store: count listings")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "deadline", Value: 1}, {Key: "title", Value: 1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cur, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, eris.Wrap(err, "store: find listings")
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]model.Listing, 0, q.Limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, eris.Wrap(err, "store: decode listings")
	}
	return out, total, nil
}

// Ping reports whether the catalog's database is reachable.
func (c *Catalog) Ping(ctx context.Context) error {
	return c.coll.Database().Client().Ping(ctx, nil)
}

// Normalized clamps Page to at least 1 and Limit to 1..200 (default 20).
func (q ListingQuery) Normalized() ListingQuery {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > maxPageSize {
		q.Limit = 20
	}
	return q
}

func (q ListingQuery) filter() bson.M {
	filter := bson.M{"active": true}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Domain != "" {
		filter["domain"] = q.Domain
	}
	if q.Source != "" {
		filter["source"] = q.Source
	}
	if q.Trending != nil {
		filter["trending"] = *q.Trending
	}
	return filter
}

package counterRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCounterRepo implements CounterRepository using an atomic $inc upsert
// on a counters collection.
type MongoCounterRepo struct {
	coll *mongo.Collection
}

// NewMongoCounterRepo constructs a new instance of MongoCounterRepo.
func NewMongoCounterRepo(db *mongo.Database) *MongoCounterRepo {
	return &MongoCounterRepo{coll: db.Collection("counters")}
}

// Next advances the named counter and returns the new value.
func (repo *MongoCounterRepo) Next(ctx context.Context, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := repo.coll.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("error advancing counter %s: %w", name, err)
	}
	return doc.Seq, nil
}

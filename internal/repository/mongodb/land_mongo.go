package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"landapi/internal/model"
	"landapi/internal/repository"
)

// LandMongo is a MongoDB implementation of repository.LandRepository.
// The collection handle is safe for concurrent use.
type LandMongo struct {
	coll *mongo.Collection
}

// NewLandMongo creates a new LandMongo repository over coll.
func NewLandMongo(coll *mongo.Collection) *LandMongo {
	return &LandMongo{coll: coll}
}

var _ repository.LandRepository = (*LandMongo)(nil)

// Insert stores land and returns a copy carrying the assigned _id.
func (r *LandMongo) Insert(ctx context.Context, land *model.Land) (*model.Land, error) {
	if err := land.Validate(); err != nil {
		return nil, err
	}

	out := *land
	if out.UploadedAt.IsZero() {
		out.UploadedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, out)
	if err != nil {
		return nil, fmt.Errorf("insert land: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = id
	}
	return &out, nil
}

// FindByWallet returns all records for address.
func (r *LandMongo) FindByWallet(ctx context.Context, address string) ([]model.Land, error) {
	cur, err := r.coll.Find(ctx, bson.D{{Key: "wallet_address", Value: address}})
	if err != nil {
		return nil, fmt.Errorf("find lands: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]model.Land, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode lands: %w", err)
	}
	return items, nil
}

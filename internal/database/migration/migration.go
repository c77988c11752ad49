package migration

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	// CreateOnly steps run only when the collection does not exist yet.
	CreateOnly bool
	Run        func(ctx context.Context, db *mongo.Database, collection string) error
}

// landValidator mirrors model.Land.Validate on the server side.
var landValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"wallet_address", "file_name", "cid", "hex_string", "uploaded_at"},
		"properties": bson.M{
			"wallet_address":   bson.M{"bsonType": "string", "minLength": 1},
			"file_name":        bson.M{"bsonType": "string", "minLength": 1},
			"cid":              bson.M{"bsonType": "string", "minLength": 1},
			"hex_string":       bson.M{"bsonType": "string", "minLength": 1},
			"transaction_hash": bson.M{"bsonType": bson.A{"string", "null"}},
			"land_id":          bson.M{"bsonType": bson.A{"string", "null"}},
			"uploaded_at":      bson.M{"bsonType": "date"},
		},
	},
}

var steps = []migrationStep{
	{
		Name:       "create_collection_lands",
		CreateOnly: true,
		Run: func(ctx context.Context, db *mongo.Database, collection string) error {
			return db.CreateCollection(ctx, collection, options.CreateCollection().SetValidator(landValidator))
		},
	},
	{
		Name: "create_index_lands_wallet_address",
		Run: func(ctx context.Context, db *mongo.Database, collection string) error {
			_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys:    bson.D{{Key: "wallet_address", Value: 1}},
				Options: options.Index().SetName("idx_lands_wallet_address"),
			})
			return err
		},
	},
}

// EnsureMigrated creates the land collection with its validator when it is
// missing and ensures the wallet index on every start. Index creation is a
// no-op when the index already exists.
func EnsureMigrated(ctx context.Context, db *mongo.Database, collection string, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_name", db.Name()), zap.String("collection", collection))

	log.Info("db_migration_check", zap.String("status", "starting"))

	names, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: collection}})
	if err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to list collections: %w", err)
	}

	exists := len(names) > 0
	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "collection already exists, ensuring indexes only"),
		)
	} else {
		log.Info("db_migration_start", zap.String("status", "in_progress"))
	}

	for _, step := range steps {
		if exists && step.CreateOnly {
			continue
		}

		stepStart := time.Now()
		if err := step.Run(ctx, db, collection); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}

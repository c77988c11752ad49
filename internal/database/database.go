package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"landapi/internal/config"
)

var mongoConnect = mongo.Connect

// ClientOptions builds driver options from the configuration.
func ClientOptions(c config.MongoConfig) (*options.ClientOptions, error) {
	if c.URI == "" {
		return nil, fmt.Errorf("invalid mongo config: uri is required")
	}

	opts := options.Client().ApplyURI(c.URI).SetAppName("landapi")
	if c.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(c.MaxPoolSize))
	}
	if c.ConnectTimeoutSec > 0 {
		opts.SetConnectTimeout(time.Duration(c.ConnectTimeoutSec) * time.Second)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mongo config: %w", err)
	}
	return opts, nil
}

// NewMongo connects to MongoDB and verifies the primary is reachable.
func NewMongo(c config.MongoConfig) (*mongo.Client, error) {
	opts, err := ClientOptions(c)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongoConnect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

// MongoPinger adapts a client to the health check's Ping(ctx) shape.
type MongoPinger struct {
	Client *mongo.Client
}

func (p MongoPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}

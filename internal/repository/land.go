package repository

import (
	"context"

	"landapi/internal/model"
)

// LandRepository defines data access for land records.
// No business logic here, strictly persistence operations.
type LandRepository interface {
	// Insert validates and stores a new record. UploadedAt is set when zero.
	// Returns the stored record including its store-assigned ID.
	Insert(ctx context.Context, land *model.Land) (*model.Land, error)

	// FindByWallet returns every record whose wallet_address equals address,
	// in store order. No matches yields an empty slice and a nil error.
	FindByWallet(ctx context.Context, address string) ([]model.Land, error)
}

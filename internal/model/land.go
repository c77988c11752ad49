package model

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnknownWallet is recorded when an upload arrives without a wallet address.
const UnknownWallet = "unknown_wallet"

// ErrMissingField is returned by Validate when a required field is empty.
var ErrMissingField = errors.New("required field missing")

// Land is the metadata record kept for every pinned land document.
// TransactionHash and LandID are stored as null until supplied.
type Land struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	WalletAddress   string             `json:"wallet_address" bson:"wallet_address"`
	FileName        string             `json:"file_name" bson:"file_name"`
	CID             string             `json:"cid" bson:"cid"`
	HexString       string             `json:"hex_string" bson:"hex_string"`
	TransactionHash *string            `json:"transaction_hash" bson:"transaction_hash"`
	LandID          *string            `json:"land_id" bson:"land_id"`
	UploadedAt      time.Time          `json:"uploaded_at" bson:"uploaded_at"`
}

// LandOption overrides one of the defaults applied by NewLand.
type LandOption func(*Land)

// WithTransactionHash sets the blockchain transaction hash.
func WithTransactionHash(hash string) LandOption {
	return func(l *Land) { l.TransactionHash = &hash }
}

// WithLandID sets the land identifier.
func WithLandID(id string) LandOption {
	return func(l *Land) { l.LandID = &id }
}

// WithUploadedAt overrides the creation timestamp.
func WithUploadedAt(t time.Time) LandOption {
	return func(l *Land) { l.UploadedAt = t }
}

// NewLand builds a record with transaction_hash and land_id unset and
// uploaded_at set to the current UTC time, then applies opts.
func NewLand(walletAddress, fileName, cid, hexString string, opts ...LandOption) *Land {
	l := &Land{
		WalletAddress: walletAddress,
		FileName:      fileName,
		CID:           cid,
		HexString:     hexString,
		UploadedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Validate checks the required fields.
func (l *Land) Validate() error {
	switch {
	case l.WalletAddress == "":
		return fmt.Errorf("wallet_address: %w", ErrMissingField)
	case l.FileName == "":
		return fmt.Errorf("file_name: %w", ErrMissingField)
	case l.CID == "":
		return fmt.Errorf("cid: %w", ErrMissingField)
	case l.HexString == "":
		return fmt.Errorf("hex_string: %w", ErrMissingField)
	}
	return nil
}

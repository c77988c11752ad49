package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLand_Defaults(t *testing.T) {
	before := time.Now().UTC()
	l := NewLand("0xabc", "deed.pdf", "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", "00ff")

	assert.Equal(t, "0xabc", l.WalletAddress)
	assert.Equal(t, "deed.pdf", l.FileName)
	assert.Nil(t, l.TransactionHash)
	assert.Nil(t, l.LandID)
	assert.False(t, l.UploadedAt.Before(before))
	assert.True(t, l.ID.IsZero())
}

func TestNewLand_Options(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l := NewLand("0xabc", "deed.pdf", "cid", "00",
		WithTransactionHash("0xdeadbeef"),
		WithLandID("PLOT-7"),
		WithUploadedAt(at),
	)

	require.NotNil(t, l.TransactionHash)
	require.NotNil(t, l.LandID)
	assert.Equal(t, "0xdeadbeef", *l.TransactionHash)
	assert.Equal(t, "PLOT-7", *l.LandID)
	assert.Equal(t, at, l.UploadedAt)
}

func TestLand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		land    Land
		wantErr string
	}{
		{name: "valid", land: Land{WalletAddress: "w", FileName: "f", CID: "c", HexString: "00"}},
		{name: "missing wallet", land: Land{FileName: "f", CID: "c", HexString: "00"}, wantErr: "wallet_address"},
		{name: "missing file name", land: Land{WalletAddress: "w", CID: "c", HexString: "00"}, wantErr: "file_name"},
		{name: "missing cid", land: Land{WalletAddress: "w", FileName: "f", HexString: "00"}, wantErr: "cid"},
		{name: "missing hex", land: Land{WalletAddress: "w", FileName: "f", CID: "c"}, wantErr: "hex_string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.land.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

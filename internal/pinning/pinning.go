// Package pinning pins file bytes to IPFS through a hosted pinning service
// and returns the resulting content identifier.
package pinning

import (
	"context"
	"fmt"

	"github.com/ipfs/go-cid"
)

// Pinner pins a whole in-memory file and returns its CID.
// Implementations are safe for concurrent use and do not retry.
type Pinner interface {
	Pin(ctx context.Context, data []byte, fileName, contentType string) (string, error)
}

// Error describes a failed pin without exposing the provider's response body.
type Error struct {
	Provider string
	Op       string
	Status   int
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Provider, e.Op)
	if e.Status != 0 {
		msg += fmt.Sprintf(" with status %d", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// validateCID rejects identifiers that do not parse as a CID.
func validateCID(s string) error {
	if s == "" {
		return fmt.Errorf("response carried no cid")
	}
	if _, err := cid.Decode(s); err != nil {
		return fmt.Errorf("invalid cid %q: %w", s, err)
	}
	return nil
}

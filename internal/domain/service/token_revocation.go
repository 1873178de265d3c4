package service

import (
	"context"
	"time"
)

// TokenRevocationStore remembers tokens revoked by logout until they expire.
type TokenRevocationStore interface {
	// Revoke marks tokenID as revoked until expiresAt.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked reports whether tokenID was revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

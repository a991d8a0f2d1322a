package repositories

import (
	"context"
	"time"
)

// TokenRevoker is the shared revocation list consulted by the auth
// middleware. Entries expire on their own once the revoked token would have
// expired anyway, so the store never needs explicit cleanup.
type TokenRevoker interface {
	// Revoke records a token id for the remainder of the token's lifetime.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether a token id is on the revocation list.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

package revocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces revocation entries in the shared redis instance.
const keyPrefix = "revoked:"

// RedisRevoker is a redis-backed revocation list. Each revoked token id is
// stored under its own key with a TTL equal to the token's remaining
// lifetime, so entries disappear exactly when the token would have expired.
// Because the store is external, logout takes effect across every backend
// instance, not just the one that handled the request.
type RedisRevoker struct {
	client *redis.Client
}

// NewRedisRevoker creates a revocation list backed by the given redis client.
func NewRedisRevoker(client *redis.Client) *RedisRevoker {
	return &RedisRevoker{client: client}
}

var _ portsrepo.TokenRevoker = (*RedisRevoker)(nil)

func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing worth recording.
		return nil
	}
	value := time.Now().UTC().Format(time.RFC3339)
	if err := r.client.Set(ctx, keyPrefix+tokenID, value, ttl).Err(); err != nil {
		return fmt.Errorf("storing revocation in redis: %w", err)
	}
	return nil
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, keyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading revocation from redis: %w", err)
	}
	return true, nil
}

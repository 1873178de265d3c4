// Package cache holds Redis backed stores.
package cache

import (
	"context"
	"fmt"
	"time"

	"outside/config"
	"outside/internal/domain/service"
	"outside/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "outside"

// TokenDenylist implements service.TokenRevocationStore with one expiring
// key per revoked token.
type TokenDenylist struct {
	client *redis.Client
	prefix string
	clock  service.Clock
}

// NewTokenRevocationStore returns a Redis denylist, or a no-op store when no
// client is configured.
func NewTokenRevocationStore(client *redis.Client, cfg *config.Config, clock service.Clock) service.TokenRevocationStore {
	if client == nil {
		return noopRevocationStore{}
	}

	prefix := defaultKeyPrefix
	if cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix
	}

	return NewTokenDenylist(client, prefix, clock)
}

// NewTokenDenylist creates a TokenDenylist.
func NewTokenDenylist(client *redis.Client, prefix string, clock service.Clock) *TokenDenylist {
	return &TokenDenylist{client: client, prefix: prefix, clock: clock}
}

func (d *TokenDenylist) key(tokenID string) string {
	return fmt.Sprintf("%s:revoked:%s", d.prefix, tokenID)
}

// Revoke stores the token id until the token would have expired anyway.
// Already expired tokens are not stored.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.clock.Now())
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, d.key(tokenID), "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	return nil
}

// IsRevoked reports whether the token id is on the denylist.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check token revocation")
	}

	return n > 0, nil
}

type noopRevocationStore struct{}

func (noopRevocationStore) Revoke(context.Context, string, time.Time) error { return nil }

func (noopRevocationStore) IsRevoked(context.Context, string) (bool, error) { return false, nil }

package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Session tokens are opaque markers with no embedded claims; the registry is
// what makes logout an actual revocation.

const registryKeyPrefix = "session_token:"

// New generates an opaque session token.
func New() string {
	return "portal-" + uuid.NewString()
}

// Registry tracks issued tokens in Redis with a TTL.
type Registry struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewRegistry(client *redis.Client, ttl time.Duration, log *logrus.Logger) *Registry {
	return &Registry{client: client, ttl: ttl, log: log}
}

// Register records a freshly issued token for the given user.
func (r *Registry) Register(ctx context.Context, tok string, userID uuid.UUID) error {
	key := registryKeyPrefix + tok
	if err := r.client.Set(ctx, key, userID.String(), r.ttl).Err(); err != nil {
		r.log.Warnf("Failed to register session token: %+v", err)
		return err
	}
	return nil
}

// Lookup resolves a token to the user it was issued for. ok is false for
// unknown, expired, or revoked tokens.
func (r *Registry) Lookup(ctx context.Context, tok string) (uuid.UUID, bool, error) {
	val, err := r.client.Get(ctx, registryKeyPrefix+tok).Result()
	if err == redis.Nil {
		return uuid.Nil, false, nil
	}
	if err != nil {
		r.log.Warnf("Failed to look up session token: %+v", err)
		return uuid.Nil, false, err
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("corrupt registry entry: %w", err)
	}
	return userID, true, nil
}

// Revoke deletes a token. Revoking an unknown token is a no-op.
func (r *Registry) Revoke(ctx context.Context, tok string) error {
	if err := r.client.Del(ctx, registryKeyPrefix+tok).Err(); err != nil {
		r.log.Warnf("Failed to revoke session token: %+v", err)
		return err
	}
	return nil
}

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore tracks issued session token ids so they can be revoked
// before their JWT expiry. Keys live exactly as long as the token would.
type TokenStore interface {
	Save(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error
}

// Token kinds, used as key prefixes.
const (
	AccessTokenKind  = "access_token"
	RefreshTokenKind = "refresh_token"
)

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func tokenKey(kind string, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", kind, userID.String(), tokenID)
}

func (s *redisTokenStore) Save(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(kind, userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, tokenKey(kind, userID, tokenID)).Err()
}

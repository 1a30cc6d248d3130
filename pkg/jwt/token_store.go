package jwt

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
)

// TokenStore tracks per-user token revocation in Redis. Session issuance lives
// in the external auth service; this side only needs to be able to cut off a
// deactivated admin's outstanding tokens.
type TokenStore struct {
	rdb          *redis.Client
	accessExpire time.Duration
}

// NewTokenStore creates a new TokenStore
func NewTokenStore(rdb *redis.Client, expireHours int) *TokenStore {
	return &TokenStore{
		rdb:          rdb,
		accessExpire: time.Duration(expireHours) * time.Hour,
	}
}

// revokedKey generates the Redis key holding a user's revocation mark
func (s *TokenStore) revokedKey(userId string) string {
	return fmt.Sprintf(constant.RedisKeyRevokedUser(), userId)
}

// RevokeUser marks all tokens issued to userId before now as invalid.
// The mark expires together with the longest-lived token it can affect.
func (s *TokenStore) RevokeUser(ctx context.Context, userId string) error {
	key := s.revokedKey(userId)
	now := time.Now().UnixMilli()

	if err := s.rdb.Set(ctx, key, now, s.accessExpire).Err(); err != nil {
		return fmt.Errorf("failed to store revocation mark: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token issued at issuedAt has been revoked for userId.
func (s *TokenStore) IsRevoked(ctx context.Context, userId string, issuedAt time.Time) (bool, error) {
	key := s.revokedKey(userId)

	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get revocation mark: %w", err)
	}

	revokedAt, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("invalid revocation mark value: %w", err)
	}

	return issuedAt.UnixMilli() <= revokedAt, nil
}

package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
)

const refreshKeyPrefix = "refresh:"

// TokenRedisStore keeps refresh token ids as expiring redis keys.
type TokenRedisStore struct {
	client *redis.Client
}

// NewTokenRedisStore connects to url (redis://host:port/db) and pings it.
func NewTokenRedisStore(ctx context.Context, url string) (*TokenRedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &TokenRedisStore{client: client}, nil
}

func (s *TokenRedisStore) Save(
	ctx context.Context,
	jti string,
	accountID uint,
	expiresAt time.Time,
) error {

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, refreshKeyPrefix+jti, strconv.FormatUint(uint64(accountID), 10), ttl).Err()
}

func (s *TokenRedisStore) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, refreshKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *TokenRedisStore) Revoke(ctx context.Context, jti string) error {
	return s.client.Del(ctx, refreshKeyPrefix+jti).Err()
}

func (s *TokenRedisStore) Close() error {
	return s.client.Close()
}

var _ auth.TokenStore = (*TokenRedisStore)(nil)

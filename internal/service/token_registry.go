package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenRegistry tracks which access tokens are still live. The identity
// service registers a token on login and deletes it on logout.
type TokenRegistry interface {
	Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
}

type redisTokenRegistry struct {
	redisClient *redis.Client
}

func NewTokenRegistry(redisClient *redis.Client) TokenRegistry {
	return &redisTokenRegistry{redisClient: redisClient}
}

func accessTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
}

func (r *redisTokenRegistry) Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return r.redisClient.Set(ctx, accessTokenKey(userID, tokenID), "1", ttl).Err()
}

func (r *redisTokenRegistry) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := r.redisClient.Exists(ctx, accessTokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"portfolio-api/internal/application/usecase/cv"
	"portfolio-api/pkg/apperror"
)

// RedisCVCache stores the assembled CV document as JSON under a per-profile
// key with a bounded TTL. A missing key is a miss, never an error.
type RedisCVCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCVCache(client *redis.Client, ttl time.Duration) *RedisCVCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCVCache{client: client, ttl: ttl}
}

func cvKey(profileID uuid.UUID) string {
	return "cv:" + profileID.String()
}

func (c *RedisCVCache) GetCV(ctx context.Context, profileID uuid.UUID) (*cv.CompleteCV, bool, error) {
	raw, err := c.client.Get(ctx, cvKey(profileID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, apperror.NewInternal("failed to read CV cache", err)
	}
	doc := &cv.CompleteCV{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, false, apperror.NewInternal("failed to decode cached CV", err)
	}
	return doc, true, nil
}

func (c *RedisCVCache) SetCV(ctx context.Context, profileID uuid.UUID, doc *cv.CompleteCV) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return apperror.NewInternal("failed to encode CV for cache", err)
	}
	if err := c.client.Set(ctx, cvKey(profileID), raw, c.ttl).Err(); err != nil {
		return apperror.NewInternal("failed to write CV cache", err)
	}
	return nil
}

func (c *RedisCVCache) InvalidateCV(ctx context.Context, profileID uuid.UUID) error {
	if err := c.client.Del(ctx, cvKey(profileID)).Err(); err != nil {
		return apperror.NewInternal("failed to invalidate CV cache", err)
	}
	return nil
}

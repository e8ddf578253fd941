package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"qr-dine/order-svc/internal/checkout"
	"qr-dine/order-svc/internal/domain"
)

// RedisCache keeps diner sessions, the submit lock per session and the
// idempotency key to order id mapping.
type RedisCache struct {
	Client     *redis.Client
	SessionTTL time.Duration
	LockTTL    time.Duration
	KeyTTL     time.Duration
}

func NewRedisCache(client *redis.Client, sessionTTL, lockTTL, keyTTL time.Duration) *RedisCache {
	return &RedisCache{Client: client, SessionTTL: sessionTTL, LockTTL: lockTTL, KeyTTL: keyTTL}
}

func sessionKey(id string) string {
	return "session:" + id
}

func submitLockKey(sessionID string) string {
	return "session:" + sessionID + ":submitting"
}

// Idempotency keys come from clients, so they are only unique per restaurant.
func idempotencyKey(restaurantID int, key string) string {
	return fmt.Sprintf("idempotency:%d:%s", restaurantID, key)
}

func (c *RedisCache) SaveSession(ctx context.Context, s *checkout.Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, sessionKey(s.ID), payload, c.SessionTTL).Err()
}

func (c *RedisCache) LoadSession(ctx context.Context, id string) (*checkout.Session, error) {
	payload, err := c.Client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var s checkout.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

func (c *RedisCache) DeleteSession(ctx context.Context, id string) error {
	return c.Client.Del(ctx, sessionKey(id), submitLockKey(id)).Err()
}

// AcquireSubmitLock returns false when another request is already placing an
// order for this session.
func (c *RedisCache) AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	return c.Client.SetNX(ctx, submitLockKey(sessionID), "1", c.LockTTL).Result()
}

func (c *RedisCache) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	return c.Client.Del(ctx, submitLockKey(sessionID)).Err()
}

func (c *RedisCache) RememberOrder(ctx context.Context, restaurantID int, key string, orderID int) error {
	return c.Client.Set(ctx, idempotencyKey(restaurantID, key), orderID, c.KeyTTL).Err()
}

func (c *RedisCache) LookupOrder(ctx context.Context, restaurantID int, key string) (int, bool, error) {
	value, err := c.Client.Get(ctx, idempotencyKey(restaurantID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency entry %s: %w", key, err)
	}
	return id, true, nil
}

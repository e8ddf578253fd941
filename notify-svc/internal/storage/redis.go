package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"qr-dine/config"
	"qr-dine/notify-svc/internal/domain"
)

const (
	processedTTL  = 24 * time.Hour
	saleMarkerTTL = 30 * 24 * time.Hour
	dailyItemsTTL = 8 * 24 * time.Hour
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func processedKey(eventID string) string {
	return "notify:event:" + eventID
}

func saleKey(orderID int) string {
	return fmt.Sprintf("notify:sale:%d", orderID)
}

// MarkProcessed claims an event id. It returns false when the id was
// already claimed.
func (s *RedisStore) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	return s.rdb.SetNX(ctx, processedKey(eventID), 1, processedTTL).Result()
}

func (s *RedisStore) Forget(ctx context.Context, eventID string) error {
	return s.rdb.Del(ctx, processedKey(eventID)).Err()
}

func (s *RedisStore) Publish(ctx context.Context, restaurantID int, update domain.DashboardUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return s.rdb.Publish(ctx, config.StaffChannel(restaurantID), payload).Err()
}

func (s *RedisStore) Subscribe(ctx context.Context, restaurantID int) (*domain.Subscription, error) {
	pubsub := s.rdb.Subscribe(ctx, config.StaffChannel(restaurantID))
	// Receive waits for the subscription confirmation so no update published
	// after this call returns is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()
	return &domain.Subscription{Messages: out, Close: pubsub.Close}, nil
}

// RecordSale adds an order to the item rankings and the revenue per day.
// An order is counted at most once.
func (s *RedisStore) RecordSale(ctx context.Context, order domain.OrderSnapshot) (bool, error) {
	first, err := s.rdb.SetNX(ctx, saleKey(order.ID), 1, saleMarkerTTL).Result()
	if err != nil || !first {
		return false, err
	}
	if err := s.applySale(ctx, order, 1); err != nil {
		s.rdb.Del(ctx, saleKey(order.ID))
		return false, err
	}
	return true, nil
}

// ReverseSale takes a cancelled order back out of the counters, if it was
// ever counted.
func (s *RedisStore) ReverseSale(ctx context.Context, order domain.OrderSnapshot) (bool, error) {
	removed, err := s.rdb.Del(ctx, saleKey(order.ID)).Result()
	if err != nil || removed == 0 {
		return false, err
	}
	if err := s.applySale(ctx, order, -1); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) applySale(ctx context.Context, order domain.OrderSnapshot, sign int) error {
	day := config.Day(order.CreatedAt)
	dailyKey := config.DailyItemsKey(day, order.RestaurantID)
	allTimeKey := config.AllTimeItemsKey(order.RestaurantID)
	revenue, _ := order.GrandTotal.Float64()

	pipe := s.rdb.TxPipeline()
	for _, line := range order.Lines {
		member := strconv.Itoa(line.ItemID)
		pipe.ZIncrBy(ctx, dailyKey, float64(sign*line.Quantity), member)
		pipe.ZIncrBy(ctx, allTimeKey, float64(sign*line.Quantity), member)
	}
	pipe.Expire(ctx, dailyKey, dailyItemsTTL)
	pipe.HIncrByFloat(ctx, config.RevenueKey(order.RestaurantID), day, float64(sign)*revenue)
	if sign < 0 {
		pipe.ZRemRangeByScore(ctx, dailyKey, "-inf", "0")
		pipe.ZRemRangeByScore(ctx, allTimeKey, "-inf", "0")
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("update sales counters: %w", err)
	}

	log.Debug().Int("order_id", order.ID).Int("sign", sign).Str("day", day).Msg("sales counters updated")
	return nil
}

package service

import (
	"context"

	"github.com/segmentio/kafka-go"

	"qr-dine/notify-svc/internal/domain"
	"qr-dine/notify-svc/internal/storage"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// OrderStore reads authoritative order state.
type OrderStore interface {
	LoadOrder(ctx context.Context, orderID int) (*domain.OrderSnapshot, error)
}

type RealtimeStore interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	Forget(ctx context.Context, eventID string) error
	Publish(ctx context.Context, restaurantID int, update domain.DashboardUpdate) error
	Subscribe(ctx context.Context, restaurantID int) (*domain.Subscription, error)
	RecordSale(ctx context.Context, order domain.OrderSnapshot) (bool, error)
	ReverseSale(ctx context.Context, order domain.OrderSnapshot) (bool, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Handle(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ OrderStore    = (*storage.PostgresStore)(nil)
	_ RealtimeStore = (*storage.RedisStore)(nil)
	_ MessageReader = (*kafka.Reader)(nil)
)

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"qr-dine/notify-svc/internal/domain"
)

var ErrMalformedEvent = errors.New("event has no order id")

type Consumer struct {
	Reader   MessageReader
	Orders   OrderStore
	Realtime RealtimeStore
}

func NewConsumer(reader MessageReader, orders OrderStore, realtime RealtimeStore) *Consumer {
	return &Consumer{
		Reader:   reader,
		Orders:   orders,
		Realtime: realtime,
	}
}

// Start reads the orders topic until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Info().Msg("starting order event consumer")
	for {
		if ctx.Err() != nil {
			log.Info().Msg("order event consumer stopped")
			return
		}
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Error().Err(err).Msg("error reading message")
			}
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Error().Err(err).Int64("offset", message.Offset).Msg("error unmarshaling message")
			continue
		}

		if err := c.Handle(ctx, event); err != nil {
			log.Error().Err(err).Str("event_id", event.ID).Str("type", event.Type).Int("order_id", event.OrderID).
				Msg("error handling order event")
		}
	}
}

// Handle processes one event at most once per event id: reload the order,
// push it to the restaurant's dashboards and keep the sales counters in step.
func (c *Consumer) Handle(ctx context.Context, event domain.OrderEvent) error {
	if event.OrderID <= 0 {
		return ErrMalformedEvent
	}

	if event.ID != "" {
		first, err := c.Realtime.MarkProcessed(ctx, event.ID)
		if err != nil {
			return fmt.Errorf("dedupe event %s: %w", event.ID, err)
		}
		if !first {
			log.Debug().Str("event_id", event.ID).Msg("duplicate event skipped")
			return nil
		}
	}

	order, err := c.Orders.LoadOrder(ctx, event.OrderID)
	if errors.Is(err, domain.ErrOrderNotFound) {
		log.Warn().Int("order_id", event.OrderID).Msg("event for unknown order dropped")
		return nil
	}
	if err != nil {
		c.forget(ctx, event.ID)
		return fmt.Errorf("load order %d: %w", event.OrderID, err)
	}

	if err := c.Realtime.Publish(ctx, order.RestaurantID, domain.DashboardUpdate{Event: event.Type, Order: *order}); err != nil {
		c.forget(ctx, event.ID)
		return fmt.Errorf("publish order %d: %w", order.ID, err)
	}

	if err := c.updateSales(ctx, event, *order); err != nil {
		c.forget(ctx, event.ID)
		return err
	}

	log.Info().Str("type", event.Type).Int("order_id", order.ID).Str("status", order.Status).Msg("order event processed")
	return nil
}

// updateSales counts an order once when it is placed and takes it back out
// if it is later cancelled.
func (c *Consumer) updateSales(ctx context.Context, event domain.OrderEvent, order domain.OrderSnapshot) error {
	switch {
	case order.Status == domain.StatusCancelled:
		if _, err := c.Realtime.ReverseSale(ctx, order); err != nil {
			return fmt.Errorf("reverse sale for order %d: %w", order.ID, err)
		}
	case event.Type == domain.EventOrderPlaced:
		if _, err := c.Realtime.RecordSale(ctx, order); err != nil {
			return fmt.Errorf("record sale for order %d: %w", order.ID, err)
		}
	}
	return nil
}

func (c *Consumer) forget(ctx context.Context, eventID string) {
	if eventID == "" {
		return
	}
	if err := c.Realtime.Forget(ctx, eventID); err != nil {
		log.Warn().Err(err).Str("event_id", eventID).Msg("failed to release event marker")
	}
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"qr-dine/order-svc/internal/domain"
)

type PaymentService struct {
	payments PaymentRepository
	events   EventPublisher
}

func NewPaymentService(payments PaymentRepository, events EventPublisher) *PaymentService {
	return &PaymentService{payments: payments, events: events}
}

func (s *PaymentService) List(restaurantID int, status domain.PaymentStatus) ([]domain.Payment, error) {
	return s.payments.ListPayments(restaurantID, status)
}

// Review records the cashier's decision on a UTR claim. Verifying marks the
// order's bill as paid when one exists.
func (s *PaymentService) Review(ctx context.Context, restaurantID, paymentID int, status domain.PaymentStatus) (*domain.Payment, error) {
	if status != domain.PaymentVerified && status != domain.PaymentFailed {
		return nil, invalid("status", "must be verified or failed")
	}
	payment, err := s.payments.GetPayment(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.RestaurantID != restaurantID {
		return nil, fmt.Errorf("payment %d: %w", paymentID, domain.ErrNotFound)
	}
	if payment.Status != domain.PaymentPending {
		return nil, ErrPaymentNotPending
	}

	updated, err := s.payments.ReviewPayment(paymentID, status)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("payment_id", updated.ID).
		Int("order_id", updated.OrderID).
		Str("status", string(updated.Status)).
		Msg("payment reviewed")

	publishEvent(ctx, s.events, domain.OrderEvent{
		Type:         domain.EventPaymentUpdated,
		OrderID:      updated.OrderID,
		RestaurantID: updated.RestaurantID,
		PaymentID:    updated.ID,
	})
	return updated, nil
}

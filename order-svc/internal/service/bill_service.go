package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"qr-dine/order-svc/internal/billing"
	"qr-dine/order-svc/internal/domain"
)

type BillService struct {
	orders      OrderRepository
	restaurants RestaurantRepository
	bills       BillRepository
	events      EventPublisher
}

func NewBillService(orders OrderRepository, restaurants RestaurantRepository, bills BillRepository, events EventPublisher) *BillService {
	return &BillService{orders: orders, restaurants: restaurants, bills: bills, events: events}
}

// Receipt renders the printable bill for an order. Orders that have not been
// completed yet render without a bill record and show as unpaid.
func (s *BillService) Receipt(orderID int) (*billing.Receipt, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	rest, err := s.restaurants.GetRestaurant(order.RestaurantID)
	if err != nil {
		return nil, err
	}
	bill, err := s.bills.GetBillByOrder(orderID)
	if errors.Is(err, domain.ErrNotFound) {
		bill, err = nil, nil
	}
	if err != nil {
		return nil, err
	}
	r := billing.Render(*rest, *order, bill)
	return &r, nil
}

func (s *BillService) WritePDF(orderID int, w io.Writer) error {
	r, err := s.Receipt(orderID)
	if err != nil {
		return err
	}
	return billing.WritePDF(w, *r)
}

// MarkPaid settles a bill paid at the counter.
func (s *BillService) MarkPaid(ctx context.Context, restaurantID, orderID int) (*domain.Bill, error) {
	bill, err := s.bills.GetBillByOrder(orderID)
	if err != nil {
		return nil, err
	}
	if bill.RestaurantID != restaurantID {
		return nil, fmt.Errorf("bill for order %d: %w", orderID, domain.ErrNotFound)
	}
	if bill.Status == domain.BillPaid {
		return bill, nil
	}

	paid, err := s.bills.MarkBillPaid(orderID)
	if err != nil {
		return nil, err
	}
	log.Info().Int("order_id", orderID).Str("grand_total", paid.GrandTotal.StringFixed(2)).Msg("bill paid")

	publishEvent(ctx, s.events, domain.OrderEvent{
		Type:         domain.EventBillPaid,
		OrderID:      orderID,
		RestaurantID: restaurantID,
	})
	return paid, nil
}

package domain

import "time"

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
	EventPaymentSubmitted   = "payment_submitted"
	EventPaymentUpdated     = "payment_updated"
	EventBillPaid           = "bill_paid"
)

// OrderEvent is the message published on the orders topic. Consumers treat it
// as a hint and reload the order before acting on it.
type OrderEvent struct {
	ID           string      `json:"id"`
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	RestaurantID int         `json:"restaurant_id"`
	Status       OrderStatus `json:"status,omitempty"`
	PaymentID    int         `json:"payment_id,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

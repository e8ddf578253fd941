package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
	EventPaymentSubmitted   = "payment_submitted"
	EventPaymentUpdated     = "payment_updated"
	EventBillPaid           = "bill_paid"
)

const StatusCancelled = "cancelled"

var ErrOrderNotFound = errors.New("order not found")

// OrderEvent is what order-svc publishes on the orders topic. Only the ids
// are trusted; the order itself is reloaded.
type OrderEvent struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	Status       string    `json:"status,omitempty"`
	PaymentID    int       `json:"payment_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type SnapshotLine struct {
	ItemID    int             `json:"item_id"`
	Name      string          `json:"name"`
	Variant   string          `json:"variant,omitempty"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderSnapshot is the dashboard's view of an order as stored in Postgres.
type OrderSnapshot struct {
	ID            int             `json:"id"`
	RestaurantID  int             `json:"restaurant_id"`
	TableID       *int            `json:"table_id,omitempty"`
	CustomerName  string          `json:"customer_name"`
	Lines         []SnapshotLine  `json:"line_items"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Status        string          `json:"status"`
	Source        string          `json:"source"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type DashboardUpdate struct {
	Event string        `json:"event"`
	Order OrderSnapshot `json:"order"`
}

// Subscription is a live feed of encoded dashboard updates.
type Subscription struct {
	Messages <-chan []byte
	Close    func() error
}

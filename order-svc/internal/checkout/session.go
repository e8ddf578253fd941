package checkout

import (
	"time"

	"github.com/google/uuid"

	"qr-dine/order-svc/internal/cart"
	"qr-dine/order-svc/internal/domain"
)

// Session is one diner's visit: where they sit, what is in their cart and how
// far they got through checkout. It is kept in Redis between requests.
type Session struct {
	ID           string     `json:"id"`
	RestaurantID int        `json:"restaurant_id"`
	BranchID     int        `json:"branch_id"`
	TableID      *int       `json:"table_id,omitempty"`
	Cart         *cart.Cart `json:"cart"`
	Workflow     *Workflow  `json:"workflow"`
	PlacedOrders []int      `json:"placed_orders,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewSession(restaurant domain.Restaurant, table *domain.Table) *Session {
	s := &Session{
		ID:           uuid.NewString(),
		RestaurantID: restaurant.ID,
		Cart:         cart.New(),
		Workflow:     New(restaurant.OnlinePaymentEnabled),
		CreatedAt:    time.Now().UTC(),
	}
	if table != nil {
		id := table.ID
		s.TableID = &id
		s.BranchID = table.BranchID
	}
	return s
}

func (s *Session) Target() Target {
	return Target{RestaurantID: s.RestaurantID, BranchID: s.BranchID, TableID: s.TableID}
}

// Placed reports whether orderID was submitted from this session.
func (s *Session) Placed(orderID int) bool {
	for _, id := range s.PlacedOrders {
		if id == orderID {
			return true
		}
	}
	return false
}

// RecordOrder remembers an order placed from this session. Replays of the
// same order are recorded once.
func (s *Session) RecordOrder(orderID int) {
	if !s.Placed(orderID) {
		s.PlacedOrders = append(s.PlacedOrders, orderID)
	}
}

// ResetCheckout discards checkout progress. The cart is kept.
func (s *Session) ResetCheckout(onlinePaymentEnabled bool) {
	s.Workflow = New(onlinePaymentEnabled)
}

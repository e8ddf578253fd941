package domain

type OrderStatus string

const (
	StatusPending       OrderStatus = "pending"
	StatusInPreparation OrderStatus = "in_preparation"
	StatusReady         OrderStatus = "ready"
	StatusServed        OrderStatus = "served"
	StatusCompleted     OrderStatus = "completed"
	StatusCancelled     OrderStatus = "cancelled"
)

var statusProgression = map[OrderStatus]OrderStatus{
	StatusPending:       StatusInPreparation,
	StatusInPreparation: StatusReady,
	StatusReady:         StatusServed,
	StatusServed:        StatusCompleted,
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch st := OrderStatus(s); st {
	case StatusPending, StatusInPreparation, StatusReady, StatusServed, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Next returns the status that follows s in the kitchen flow.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := statusProgression[s]
	return next, ok
}

// CanTransition allows only a single forward step, or cancellation of an order
// that has not reached a terminal status.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	next, ok := s.Next()
	return ok && next == to
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"qr-dine/order-svc/internal/billing"
	"qr-dine/order-svc/internal/cart"
	"qr-dine/order-svc/internal/checkout"
	"qr-dine/order-svc/internal/domain"
	"qr-dine/order-svc/internal/pricing"
)

// CounterOrderRequest is an order keyed in by staff at the counter. Prices
// come from the menu, not from the request.
type CounterOrderRequest struct {
	IdempotencyKey      string             `json:"idempotency_key"`
	TableID             *int               `json:"table_id,omitempty"`
	CustomerName        string             `json:"customer_name"`
	CustomerPhone       string             `json:"customer_phone,omitempty"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
	Items               []CounterOrderItem `json:"items"`
}

type CounterOrderItem struct {
	ItemID   int      `json:"item_id"`
	Variant  string   `json:"variant,omitempty"`
	AddOns   []string `json:"add_ons,omitempty"`
	Quantity int      `json:"quantity"`
}

type OrderService struct {
	orders      OrderRepository
	payments    PaymentRepository
	restaurants RestaurantRepository
	menu        MenuRepository
	tables      TableRepository
	keys        IdempotencyCache
	events      EventPublisher
}

func NewOrderService(orders OrderRepository, payments PaymentRepository, restaurants RestaurantRepository,
	menu MenuRepository, tables TableRepository, keys IdempotencyCache, events EventPublisher) *OrderService {
	return &OrderService{
		orders:      orders,
		payments:    payments,
		restaurants: restaurants,
		menu:        menu,
		tables:      tables,
		keys:        keys,
		events:      events,
	}
}

func normalizeCommand(cmd *domain.PlaceOrderCommand) error {
	cmd.CustomerName = strings.TrimSpace(cmd.CustomerName)
	cmd.CustomerPhone = strings.TrimSpace(cmd.CustomerPhone)
	cmd.SpecialInstructions = strings.TrimSpace(cmd.SpecialInstructions)
	cmd.UTRReference = strings.TrimSpace(cmd.UTRReference)

	if cmd.RestaurantID <= 0 {
		return invalid("restaurant_id", "restaurant is required")
	}
	if len(cmd.Lines) == 0 {
		return checkout.ErrEmptyCart
	}
	if cmd.CustomerName == "" {
		return checkout.ErrCustomerNameRequired
	}
	switch cmd.Source {
	case "":
		cmd.Source = domain.SourceOnline
	case domain.SourceOnline, domain.SourcePOS:
	default:
		return invalid("source", "unknown order source")
	}
	switch cmd.Method {
	case "":
		cmd.Method = domain.PayAtCounter
	case domain.PayAtCounter:
		cmd.UTRReference = ""
	case domain.PayOnline:
		if cmd.UTRReference == "" {
			return checkout.ErrReferenceRequired
		}
	default:
		return checkout.ErrInvalidPaymentMethod
	}
	for i, l := range cmd.Lines {
		if strings.TrimSpace(l.Name) == "" {
			return invalid("line_items", fmt.Sprintf("line %d has no name", i+1))
		}
		if l.Quantity <= 0 {
			return invalid("line_items", fmt.Sprintf("line %d quantity must be positive", i+1))
		}
		if l.UnitPrice.IsNegative() {
			return invalid("line_items", fmt.Sprintf("line %d price must not be negative", i+1))
		}
	}
	if cmd.IdempotencyKey == "" {
		cmd.IdempotencyKey = uuid.NewString()
	}
	return nil
}

// PlaceOrder persists one checkout attempt. Line totals, subtotal and the
// payment amount are recomputed here; the restaurant's current tax rates are
// stored on the order. Replaying a command with the same idempotency key
// returns the order created by the first call.
func (s *OrderService) PlaceOrder(ctx context.Context, cmd domain.PlaceOrderCommand) (*domain.Order, error) {
	if err := normalizeCommand(&cmd); err != nil {
		return nil, err
	}
	existing, err := s.previouslyPlaced(ctx, cmd.RestaurantID, cmd.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	rest, err := s.restaurants.GetRestaurant(cmd.RestaurantID)
	if err != nil {
		return nil, err
	}
	if cmd.Method == domain.PayOnline && !rest.OnlinePaymentEnabled {
		return nil, checkout.ErrOnlinePaymentDisabled
	}

	lines := make([]domain.OrderLine, len(cmd.Lines))
	for i, l := range cmd.Lines {
		l.LineTotal = pricing.LineTotal(l.UnitPrice, l.Quantity)
		lines[i] = l
	}
	tax := rest.Tax
	totals := pricing.ComputeTotals(pricing.Subtotal(lines), tax)

	order := &domain.Order{
		RestaurantID:        cmd.RestaurantID,
		BranchID:            cmd.BranchID,
		TableID:             cmd.TableID,
		CustomerName:        cmd.CustomerName,
		CustomerPhone:       cmd.CustomerPhone,
		SpecialInstructions: cmd.SpecialInstructions,
		Lines:               lines,
		Subtotal:            totals.Subtotal,
		TaxSnapshot:         &tax,
		Status:              domain.StatusPending,
		Source:              cmd.Source,
		IdempotencyKey:      cmd.IdempotencyKey,
	}

	var payment *domain.Payment
	if cmd.Method == domain.PayOnline {
		payment = &domain.Payment{
			RestaurantID: cmd.RestaurantID,
			TableID:      cmd.TableID,
			CustomerName: cmd.CustomerName,
			UTRReference: cmd.UTRReference,
			Amount:       totals.GrandTotal,
			Status:       domain.PaymentPending,
		}
	}

	created, err := s.orders.PlaceOrder(order, payment)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	if err := s.keys.RememberOrder(ctx, cmd.RestaurantID, order.IdempotencyKey, order.ID); err != nil {
		log.Warn().Err(err).Int("order_id", order.ID).Msg("failed to cache idempotency key")
	}
	if !created {
		log.Info().Int("order_id", order.ID).Msg("duplicate submission, returning existing order")
		return order, nil
	}

	log.Info().
		Int("order_id", order.ID).
		Int("restaurant_id", order.RestaurantID).
		Str("grand_total", pricing.Money(totals.GrandTotal)).
		Str("method", string(cmd.Method)).
		Msg("order placed")

	s.publish(ctx, domain.EventOrderPlaced, order, 0)
	if payment != nil {
		s.publish(ctx, domain.EventPaymentSubmitted, order, payment.ID)
	}
	return order, nil
}

// previouslyPlaced finds the order an earlier call with the same key created.
// Cache trouble is not fatal; the database constraint still catches replays.
func (s *OrderService) previouslyPlaced(ctx context.Context, restaurantID int, key string) (*domain.Order, error) {
	orderID, found, err := s.keys.LookupOrder(ctx, restaurantID, key)
	if err != nil {
		log.Warn().Err(err).Msg("idempotency lookup failed")
		return nil, nil
	}
	if !found {
		return nil, nil
	}
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		log.Warn().Err(err).Int("order_id", orderID).Msg("cached order could not be loaded")
		return nil, nil
	}
	if order.RestaurantID != restaurantID {
		log.Warn().Int("order_id", orderID).Int("restaurant_id", restaurantID).Msg("idempotency key owned by another restaurant")
		return nil, fmt.Errorf("%w: idempotency key belongs to another restaurant", domain.ErrConflict)
	}
	return order, nil
}

// PlaceCounterOrder builds the lines from the current menu and places a POS
// order paid at the counter.
func (s *OrderService) PlaceCounterOrder(ctx context.Context, restaurantID int, req CounterOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, checkout.ErrEmptyCart
	}

	var branchID int
	if req.TableID != nil {
		table, err := s.tables.GetTable(restaurantID, *req.TableID)
		if err != nil {
			return nil, err
		}
		branchID = table.BranchID
	}

	c := cart.New()
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, invalid("items", "quantity must be positive")
		}
		item, err := s.menu.GetMenuItem(restaurantID, it.ItemID)
		if err != nil {
			return nil, err
		}
		result, err := c.AddLine(*item, it.Variant, it.AddOns)
		if err != nil {
			return nil, invalid("items", err.Error())
		}
		if result.Outcome == cart.VariantSelectionRequired {
			return nil, invalid("items", fmt.Sprintf("%s needs a variant", item.Name))
		}
		if err := c.SetLineQuantity(result.Line.ID, it.Quantity); err != nil {
			return nil, err
		}
	}

	return s.PlaceOrder(ctx, domain.PlaceOrderCommand{
		IdempotencyKey:      req.IdempotencyKey,
		RestaurantID:        restaurantID,
		BranchID:            branchID,
		TableID:             req.TableID,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		SpecialInstructions: req.SpecialInstructions,
		Lines:               c.Snapshot(),
		Source:              domain.SourcePOS,
		Method:              domain.PayAtCounter,
	})
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	return s.orders.GetOrder(id)
}

func (s *OrderService) List(restaurantID int, status domain.OrderStatus) ([]domain.Order, error) {
	return s.orders.ListOrders(restaurantID, status)
}

func (s *OrderService) ownedOrder(restaurantID, orderID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return order, nil
}

// UpdateStatus advances an order one step, or cancels it. Completing an order
// writes its bill in the same transaction.
func (s *OrderService) UpdateStatus(ctx context.Context, restaurantID, orderID int, to domain.OrderStatus) (*domain.Order, error) {
	order, err := s.ownedOrder(restaurantID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransition(to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, order.Status, to)
	}

	var bill *domain.Bill
	if to == domain.StatusCompleted {
		if bill, err = s.billFor(order); err != nil {
			return nil, err
		}
	}

	if err := s.orders.UpdateOrderStatus(order.ID, order.Status, to, bill); err != nil {
		return nil, err
	}

	log.Info().Int("order_id", order.ID).Str("from", string(order.Status)).Str("to", string(to)).Msg("order status changed")
	order.Status = to
	order.UpdatedAt = time.Now().UTC()
	s.publish(ctx, domain.EventOrderStatusChanged, order, 0)
	return order, nil
}

func (s *OrderService) billFor(order *domain.Order) (*domain.Bill, error) {
	var tax domain.TaxConfiguration
	if order.TaxSnapshot != nil {
		tax = *order.TaxSnapshot
	} else {
		rest, err := s.restaurants.GetRestaurant(order.RestaurantID)
		if err != nil {
			return nil, err
		}
		tax = billing.TaxFor(*order, *rest)
	}
	totals := pricing.ComputeTotals(order.Subtotal, tax)

	status := domain.BillPending
	payment, err := s.payments.GetPaymentByOrder(order.ID)
	switch {
	case err == nil && payment.Status == domain.PaymentVerified:
		status = domain.BillPaid
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	return &domain.Bill{
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Subtotal:     totals.Subtotal,
		CGSTAmount:   totals.CGSTAmount,
		SGSTAmount:   totals.SGSTAmount,
		GrandTotal:   totals.GrandTotal,
		Status:       status,
	}, nil
}

// SubmitPayment records a payment claim against an existing order, for the
// case where the order was placed but the diner's reference never arrived or
// was rejected.
func (s *OrderService) SubmitPayment(ctx context.Context, orderID int, reference string) (*domain.Payment, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, checkout.ErrReferenceRequired
	}
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.StatusCancelled {
		return nil, invalid("order", "order has been cancelled")
	}
	rest, err := s.restaurants.GetRestaurant(order.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !rest.OnlinePaymentEnabled {
		return nil, checkout.ErrOnlinePaymentDisabled
	}

	totals := pricing.ComputeTotals(order.Subtotal, billing.TaxFor(*order, *rest))
	payment := &domain.Payment{
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		TableID:      order.TableID,
		CustomerName: order.CustomerName,
		UTRReference: reference,
		Amount:       totals.GrandTotal,
		Status:       domain.PaymentPending,
	}
	if err := s.payments.CreatePayment(payment); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.EventPaymentSubmitted, order, payment.ID)
	return payment, nil
}

// publish never fails the caller; consumers reload state from the database.
func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order, paymentID int) {
	publishEvent(ctx, s.events, domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		PaymentID:    paymentID,
	})
}

func publishEvent(ctx context.Context, events EventPublisher, event domain.OrderEvent) {
	if events == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := events.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("type", event.Type).Int("order_id", event.OrderID).Msg("failed to publish order event")
	}
}

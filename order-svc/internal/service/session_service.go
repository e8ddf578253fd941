package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"qr-dine/order-svc/internal/cart"
	"qr-dine/order-svc/internal/checkout"
	"qr-dine/order-svc/internal/domain"
	"qr-dine/order-svc/internal/pricing"
)

type AddToCartRequest struct {
	ItemID  int      `json:"item_id"`
	Variant string   `json:"variant,omitempty"`
	AddOns  []string `json:"add_ons,omitempty"`
}

type AddToCartResult struct {
	Outcome cart.Outcome     `json:"outcome"`
	Line    *cart.Line       `json:"line,omitempty"`
	Item    *domain.MenuItem `json:"item,omitempty"`
	Session *SessionView     `json:"session,omitempty"`
}

// PayOnlineInfo is what the pay-online step shows: where to send the money
// and how much.
type PayOnlineInfo struct {
	Available bool            `json:"available"`
	UPIID     string          `json:"upi_id,omitempty"`
	QRCodeURL string          `json:"qr_code_url,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

type SessionView struct {
	ID             string             `json:"id"`
	RestaurantID   int                `json:"restaurant_id"`
	RestaurantName string             `json:"restaurant_name"`
	TableID        *int               `json:"table_id,omitempty"`
	Lines          []cart.Line        `json:"lines"`
	ItemCount      int                `json:"item_count"`
	Totals         pricing.Totals     `json:"totals"`
	TaxLines       []pricing.TaxLine  `json:"tax_lines"`
	Checkout       *checkout.Workflow `json:"checkout"`
	PayOnline      *PayOnlineInfo     `json:"pay_online,omitempty"`
	OrderID        int                `json:"order_id,omitempty"`
	BillURL        string             `json:"bill_url,omitempty"`
}

type SessionService struct {
	restaurants RestaurantRepository
	menu        MenuRepository
	tables      TableRepository
	store       SessionStore
	orders      OrderServiceInterface
}

func NewSessionService(restaurants RestaurantRepository, menu MenuRepository, tables TableRepository,
	store SessionStore, orders OrderServiceInterface) *SessionService {
	return &SessionService{
		restaurants: restaurants,
		menu:        menu,
		tables:      tables,
		store:       store,
		orders:      orders,
	}
}

// Open starts a diner session for the restaurant behind slug, optionally
// pinned to a table from the scanned QR code.
func (s *SessionService) Open(ctx context.Context, slug string, tableID *int) (*SessionView, error) {
	rest, err := s.restaurants.GetRestaurantBySlug(slug)
	if err != nil {
		return nil, err
	}

	var table *domain.Table
	if tableID != nil {
		if table, err = s.tables.GetTable(rest.ID, *tableID); err != nil {
			return nil, err
		}
	}

	sess := checkout.NewSession(*rest, table)
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	log.Debug().Str("session_id", sess.ID).Int("restaurant_id", rest.ID).Msg("session opened")
	return s.view(sess, rest), nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*SessionView, error) {
	sess, err := s.store.LoadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	rest, err := s.restaurants.GetRestaurant(sess.RestaurantID)
	if err != nil {
		return nil, err
	}
	return s.view(sess, rest), nil
}

// AddToCart adds one unit of a menu item. Items with variants come back with
// VariantSelectionRequired until the diner names one; the session is not
// touched in that case.
func (s *SessionService) AddToCart(ctx context.Context, id string, req AddToCartRequest) (*AddToCartResult, error) {
	result := &AddToCartResult{}
	view, err := s.mutate(ctx, id, func(sess *checkout.Session, _ *domain.Restaurant) error {
		if err := editableCart(sess); err != nil {
			return err
		}
		item, err := s.menu.GetMenuItem(sess.RestaurantID, req.ItemID)
		if err != nil {
			return err
		}
		added, err := sess.Cart.AddLine(*item, req.Variant, req.AddOns)
		if err != nil {
			return invalid("item", err.Error())
		}
		result.Outcome = added.Outcome
		result.Line = added.Line
		result.Item = added.Item
		if added.Outcome == cart.VariantSelectionRequired {
			return errSkipSave
		}
		return nil
	})
	if errors.Is(err, errSkipSave) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	result.Session = view
	return result, nil
}

// SetQuantity changes a line's quantity; zero removes the line.
func (s *SessionService) SetQuantity(ctx context.Context, id, lineID string, quantity int) (*SessionView, error) {
	return s.mutate(ctx, id, func(sess *checkout.Session, _ *domain.Restaurant) error {
		if err := editableCart(sess); err != nil {
			return err
		}
		return sess.Cart.SetLineQuantity(lineID, quantity)
	})
}

func (s *SessionService) Proceed(ctx context.Context, id string) (*SessionView, error) {
	return s.mutate(ctx, id, func(sess *checkout.Session, _ *domain.Restaurant) error {
		if sess.Workflow.State == checkout.StateConfirmed {
			sess.ResetCheckout(sess.Workflow.OnlinePaymentEnabled)
		}
		return sess.Workflow.Proceed(sess.Cart)
	})
}

func (s *SessionService) SubmitDetails(ctx context.Context, id string, details checkout.CustomerDetails) (*SessionView, error) {
	return s.mutate(ctx, id, func(sess *checkout.Session, _ *domain.Restaurant) error {
		return sess.Workflow.SubmitDetails(details)
	})
}

func (s *SessionService) ChoosePayment(ctx context.Context, id string, method domain.PaymentMethod) (*SessionView, error) {
	return s.mutate(ctx, id, func(sess *checkout.Session, _ *domain.Restaurant) error {
		return sess.Workflow.ChoosePayment(method)
	})
}

func (s *SessionService) SubmitReference(ctx context.Context, id, reference string) (*SessionView, error) {
	return s.mutate(ctx, id, func(sess *checkout.Session, _ *domain.Restaurant) error {
		return sess.Workflow.EnterReference(reference)
	})
}

func (s *SessionService) Back(ctx context.Context, id string) (*SessionView, error) {
	return s.mutate(ctx, id, func(sess *checkout.Session, _ *domain.Restaurant) error {
		return sess.Workflow.Back()
	})
}

// CancelCheckout abandons checkout from any step except an in-flight
// submission. The cart survives.
func (s *SessionService) CancelCheckout(ctx context.Context, id string) (*SessionView, error) {
	return s.mutate(ctx, id, func(sess *checkout.Session, rest *domain.Restaurant) error {
		if sess.Workflow.Submitting() {
			return ErrCheckoutInFlight
		}
		sess.ResetCheckout(rest.OnlinePaymentEnabled)
		return nil
	})
}

// AuthorizeOrder succeeds only for orders placed from this session. Orders
// from other sessions are reported as not found.
func (s *SessionService) AuthorizeOrder(ctx context.Context, id string, orderID int) error {
	sess, err := s.store.LoadSession(ctx, id)
	if err != nil {
		return err
	}
	if !sess.Placed(orderID) {
		return fmt.Errorf("order %d in session %s: %w", orderID, id, domain.ErrNotFound)
	}
	return nil
}

// Close ends the diner's visit. The session and its cart are dropped; orders
// already placed are unaffected.
func (s *SessionService) Close(ctx context.Context, id string) error {
	sess, err := s.store.LoadSession(ctx, id)
	if err != nil {
		return err
	}
	if sess.Workflow.Submitting() {
		return ErrCheckoutInFlight
	}
	if err := s.store.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	log.Debug().Str("session_id", id).Int("orders", len(sess.PlacedOrders)).Msg("session closed")
	return nil
}

var errSkipSave = errors.New("session unchanged")

func editableCart(sess *checkout.Session) error {
	switch sess.Workflow.State {
	case checkout.StateCart:
		return nil
	case checkout.StateConfirmed:
		sess.ResetCheckout(sess.Workflow.OnlinePaymentEnabled)
		return nil
	}
	return ErrCartLocked
}

// mutate loads the session, applies fn, places the order if fn moved the
// workflow into submission and stores the result. Nothing is stored when fn
// fails.
func (s *SessionService) mutate(ctx context.Context, id string,
	fn func(sess *checkout.Session, rest *domain.Restaurant) error) (*SessionView, error) {
	sess, err := s.store.LoadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	rest, err := s.restaurants.GetRestaurant(sess.RestaurantID)
	if err != nil {
		return nil, err
	}
	if sess.Workflow.State == checkout.StateCart {
		sess.Workflow.OnlinePaymentEnabled = rest.OnlinePaymentEnabled
	}

	if err := fn(sess, rest); err != nil {
		return nil, err
	}

	if sess.Workflow.Submitting() {
		if err := s.submit(ctx, sess); err != nil {
			return nil, err
		}
	}

	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s.view(sess, rest), nil
}

// submit places the order for a session in StateSubmitting. Only one
// submission per session runs at a time; a second caller gets
// ErrCheckoutInFlight and its copy of the session is discarded.
func (s *SessionService) submit(ctx context.Context, sess *checkout.Session) error {
	locked, err := s.store.AcquireSubmitLock(ctx, sess.ID)
	if err != nil {
		return fmt.Errorf("acquire submit lock: %w", err)
	}
	if !locked {
		return ErrCheckoutInFlight
	}
	defer func() {
		if err := s.store.ReleaseSubmitLock(ctx, sess.ID); err != nil {
			log.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to release submit lock")
		}
	}()

	cmd, err := sess.Workflow.Command(sess.Cart, sess.Target())
	if err != nil {
		return err
	}

	order, err := s.orders.PlaceOrder(ctx, cmd)
	if err != nil {
		sess.Workflow.Fail()
		if saveErr := s.store.SaveSession(ctx, sess); saveErr != nil {
			log.Error().Err(saveErr).Str("session_id", sess.ID).Msg("failed to save session after failed submit")
		}
		log.Warn().Err(err).Str("session_id", sess.ID).Msg("order submission failed")
		return fmt.Errorf("submit order: %w", err)
	}

	if err := sess.Workflow.Confirm(order.ID); err != nil {
		return err
	}
	sess.RecordOrder(order.ID)
	sess.Cart.Clear()
	return nil
}

func (s *SessionService) view(sess *checkout.Session, rest *domain.Restaurant) *SessionView {
	totals := pricing.ComputeTotals(sess.Cart.Subtotal(), rest.Tax)
	v := &SessionView{
		ID:             sess.ID,
		RestaurantID:   sess.RestaurantID,
		RestaurantName: rest.Name,
		TableID:        sess.TableID,
		Lines:          sess.Cart.Lines,
		ItemCount:      sess.Cart.ItemCount(),
		Totals:         totals,
		TaxLines:       totals.TaxLines(rest.Tax),
		Checkout:       sess.Workflow,
	}
	if v.Lines == nil {
		v.Lines = []cart.Line{}
	}

	switch sess.Workflow.State {
	case checkout.StatePayOnline:
		info := &PayOnlineInfo{
			Available: rest.UPIID != "",
			UPIID:     rest.UPIID,
			Amount:    totals.GrandTotal,
		}
		if info.Available {
			info.QRCodeURL = fmt.Sprintf("/api/restaurants/%d/upi-qr?amount=%s", rest.ID, pricing.Money(totals.GrandTotal))
		}
		v.PayOnline = info
	case checkout.StateConfirmed:
		v.OrderID = sess.Workflow.OrderID
		v.BillURL = fmt.Sprintf("/api/sessions/%s/orders/%d/bill", sess.ID, sess.Workflow.OrderID)
	}
	return v
}

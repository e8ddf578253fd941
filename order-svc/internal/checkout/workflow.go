// Package checkout drives a diner from cart review to a confirmed order. The
// workflow only tracks state; persistence happens in the order service once
// the workflow reaches StateSubmitting.
package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"qr-dine/order-svc/internal/cart"
	"qr-dine/order-svc/internal/domain"
)

type State string

const (
	StateCart            State = "cart"
	StateDetailsRequired State = "details_required"
	StatePaymentChoice   State = "payment_choice"
	StatePayOnline       State = "pay_online"
	StateSubmitting      State = "submitting"
	StateConfirmed       State = "confirmed"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	ErrEmptyCart             = ValidationError{Field: "cart", Message: "cart is empty"}
	ErrCustomerNameRequired  = ValidationError{Field: "customer_name", Message: "customer name is required"}
	ErrReferenceRequired     = ValidationError{Field: "utr_reference", Message: "transaction reference is required"}
	ErrOnlinePaymentDisabled = ValidationError{Field: "payment_method", Message: "online payment is not enabled"}
	ErrInvalidPaymentMethod  = ValidationError{Field: "payment_method", Message: "unknown payment method"}

	ErrInvalidTransition = errors.New("checkout step not allowed in the current state")
)

type CustomerDetails struct {
	Name                string `json:"name"`
	Phone               string `json:"phone,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// Target identifies where the order is placed.
type Target struct {
	RestaurantID int
	BranchID     int
	TableID      *int
}

type Workflow struct {
	State                State                `json:"state"`
	OnlinePaymentEnabled bool                 `json:"online_payment_enabled"`
	Customer             CustomerDetails      `json:"customer"`
	Method               domain.PaymentMethod `json:"payment_method,omitempty"`
	UTRReference         string               `json:"utr_reference,omitempty"`
	IdempotencyKey       string               `json:"idempotency_key,omitempty"`
	Origin               State                `json:"origin,omitempty"`
	OrderID              int                  `json:"order_id,omitempty"`
}

func New(onlinePaymentEnabled bool) *Workflow {
	return &Workflow{State: StateCart, OnlinePaymentEnabled: onlinePaymentEnabled}
}

func (w *Workflow) transitionError(step string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, step, w.State)
}

// Proceed leaves the cart. Each attempt gets a fresh idempotency key so a
// retried submission collapses onto the same order.
func (w *Workflow) Proceed(c *cart.Cart) error {
	if w.State != StateCart {
		return w.transitionError("proceed")
	}
	if c == nil || c.IsEmpty() {
		return ErrEmptyCart
	}
	w.IdempotencyKey = uuid.NewString()
	w.State = StateDetailsRequired
	return nil
}

// SubmitDetails records who is ordering. Without online payment the choice is
// skipped and the order goes straight to submission as pay-at-counter.
func (w *Workflow) SubmitDetails(details CustomerDetails) error {
	if w.State != StateDetailsRequired {
		return w.transitionError("details")
	}
	details.Name = strings.TrimSpace(details.Name)
	details.Phone = strings.TrimSpace(details.Phone)
	details.SpecialInstructions = strings.TrimSpace(details.SpecialInstructions)
	if details.Name == "" {
		return ErrCustomerNameRequired
	}
	w.Customer = details

	if !w.OnlinePaymentEnabled {
		w.Method = domain.PayAtCounter
		w.enterSubmitting()
		return nil
	}
	w.State = StatePaymentChoice
	return nil
}

func (w *Workflow) ChoosePayment(method domain.PaymentMethod) error {
	if w.State != StatePaymentChoice {
		return w.transitionError("payment choice")
	}
	switch method {
	case domain.PayAtCounter:
		w.Method = domain.PayAtCounter
		w.UTRReference = ""
		w.enterSubmitting()
	case domain.PayOnline:
		if !w.OnlinePaymentEnabled {
			return ErrOnlinePaymentDisabled
		}
		w.Method = domain.PayOnline
		w.State = StatePayOnline
	default:
		return ErrInvalidPaymentMethod
	}
	return nil
}

// EnterReference takes the UTR the diner copied from their payment app.
func (w *Workflow) EnterReference(reference string) error {
	if w.State != StatePayOnline {
		return w.transitionError("reference")
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return ErrReferenceRequired
	}
	w.UTRReference = reference
	w.enterSubmitting()
	return nil
}

func (w *Workflow) enterSubmitting() {
	w.Origin = w.State
	w.State = StateSubmitting
}

// Back returns to the cart. Entered customer details are kept, the payment
// choice and idempotency key are not.
func (w *Workflow) Back() error {
	if w.State == StateSubmitting || w.State == StateConfirmed {
		return w.transitionError("back")
	}
	w.State = StateCart
	w.Method = ""
	w.UTRReference = ""
	w.IdempotencyKey = ""
	w.Origin = ""
	return nil
}

func (w *Workflow) Submitting() bool {
	return w.State == StateSubmitting
}

// Command builds the order placement request for the current attempt.
func (w *Workflow) Command(c *cart.Cart, target Target) (domain.PlaceOrderCommand, error) {
	if w.State != StateSubmitting {
		return domain.PlaceOrderCommand{}, w.transitionError("submit")
	}
	if c == nil || c.IsEmpty() {
		return domain.PlaceOrderCommand{}, ErrEmptyCart
	}
	cmd := domain.PlaceOrderCommand{
		IdempotencyKey:      w.IdempotencyKey,
		RestaurantID:        target.RestaurantID,
		BranchID:            target.BranchID,
		TableID:             target.TableID,
		CustomerName:        w.Customer.Name,
		CustomerPhone:       w.Customer.Phone,
		SpecialInstructions: w.Customer.SpecialInstructions,
		Lines:               c.Snapshot(),
		Source:              domain.SourceOnline,
		Method:              w.Method,
	}
	if w.Method == domain.PayOnline {
		cmd.UTRReference = w.UTRReference
	}
	return cmd, nil
}

func (w *Workflow) Confirm(orderID int) error {
	if w.State != StateSubmitting {
		return w.transitionError("confirm")
	}
	w.OrderID = orderID
	w.State = StateConfirmed
	return nil
}

// Fail returns to the step the diner submitted from so they can retry.
func (w *Workflow) Fail() {
	if w.State != StateSubmitting {
		return
	}
	w.State = w.Origin
	if w.State == "" {
		w.State = StateCart
	}
}

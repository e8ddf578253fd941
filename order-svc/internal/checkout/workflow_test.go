package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-dine/order-svc/internal/cart"
	"qr-dine/order-svc/internal/domain"
)

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	_, err := c.AddLine(domain.MenuItem{ID: 1, Name: "Burger", Price: decimal.NewFromInt(150), Available: true}, "", nil)
	require.NoError(t, err)
	return c
}

func TestProceed_EmptyCartBlocked(t *testing.T) {
	w := New(true)
	err := w.Proceed(cart.New())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StateCart, w.State)
	assert.Empty(t, w.IdempotencyKey)
}

func TestCounterPath(t *testing.T) {
	c := filledCart(t)
	w := New(true)

	require.NoError(t, w.Proceed(c))
	assert.Equal(t, StateDetailsRequired, w.State)
	assert.NotEmpty(t, w.IdempotencyKey)

	require.NoError(t, w.SubmitDetails(CustomerDetails{Name: "  Asha ", Phone: "98765"}))
	assert.Equal(t, StatePaymentChoice, w.State)
	assert.Equal(t, "Asha", w.Customer.Name)

	require.NoError(t, w.ChoosePayment(domain.PayAtCounter))
	assert.True(t, w.Submitting())

	table := 4
	cmd, err := w.Command(c, Target{RestaurantID: 1, BranchID: 2, TableID: &table})
	require.NoError(t, err)
	assert.Equal(t, domain.PayAtCounter, cmd.Method)
	assert.Equal(t, w.IdempotencyKey, cmd.IdempotencyKey)
	assert.Empty(t, cmd.UTRReference)
	assert.Equal(t, domain.SourceOnline, cmd.Source)
	assert.Len(t, cmd.Lines, 1)
	assert.Equal(t, 4, *cmd.TableID)

	require.NoError(t, w.Confirm(42))
	assert.Equal(t, StateConfirmed, w.State)
	assert.Equal(t, 42, w.OrderID)
}

func TestOnlinePath(t *testing.T) {
	c := filledCart(t)
	w := New(true)
	require.NoError(t, w.Proceed(c))
	require.NoError(t, w.SubmitDetails(CustomerDetails{Name: "Ravi"}))
	require.NoError(t, w.ChoosePayment(domain.PayOnline))
	assert.Equal(t, StatePayOnline, w.State)

	assert.ErrorIs(t, w.EnterReference("   "), ErrReferenceRequired)
	assert.Equal(t, StatePayOnline, w.State)

	require.NoError(t, w.EnterReference("UTR123456"))
	cmd, err := w.Command(c, Target{RestaurantID: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.PayOnline, cmd.Method)
	assert.Equal(t, "UTR123456", cmd.UTRReference)
}

func TestOnlineDisabledSkipsPaymentChoice(t *testing.T) {
	w := New(false)
	require.NoError(t, w.Proceed(filledCart(t)))
	require.NoError(t, w.SubmitDetails(CustomerDetails{Name: "Meera"}))

	assert.Equal(t, StateSubmitting, w.State)
	assert.Equal(t, domain.PayAtCounter, w.Method)
}

func TestSubmitDetails_NameRequired(t *testing.T) {
	w := New(true)
	require.NoError(t, w.Proceed(filledCart(t)))

	err := w.SubmitDetails(CustomerDetails{Name: " \t "})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customer_name", verr.Field)
	assert.Equal(t, StateDetailsRequired, w.State)
}

func TestChoosePayment_Invalid(t *testing.T) {
	w := New(true)
	require.NoError(t, w.Proceed(filledCart(t)))
	require.NoError(t, w.SubmitDetails(CustomerDetails{Name: "Ravi"}))

	assert.ErrorIs(t, w.ChoosePayment("cheque"), ErrInvalidPaymentMethod)
	assert.Equal(t, StatePaymentChoice, w.State)
}

func TestOutOfOrderSteps(t *testing.T) {
	w := New(true)
	assert.ErrorIs(t, w.SubmitDetails(CustomerDetails{Name: "x"}), ErrInvalidTransition)
	assert.ErrorIs(t, w.ChoosePayment(domain.PayAtCounter), ErrInvalidTransition)
	assert.ErrorIs(t, w.EnterReference("abc"), ErrInvalidTransition)
	assert.ErrorIs(t, w.Confirm(1), ErrInvalidTransition)

	_, err := w.Command(filledCart(t), Target{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBack(t *testing.T) {
	c := filledCart(t)
	w := New(true)
	require.NoError(t, w.Proceed(c))
	require.NoError(t, w.SubmitDetails(CustomerDetails{Name: "Ravi"}))
	require.NoError(t, w.ChoosePayment(domain.PayOnline))
	firstKey := w.IdempotencyKey

	require.NoError(t, w.Back())
	assert.Equal(t, StateCart, w.State)
	assert.Empty(t, w.Method)
	assert.Equal(t, "Ravi", w.Customer.Name)

	require.NoError(t, w.Proceed(c))
	assert.NotEqual(t, firstKey, w.IdempotencyKey)
}

func TestBackNotAllowedWhileSubmittingOrConfirmed(t *testing.T) {
	w := New(false)
	require.NoError(t, w.Proceed(filledCart(t)))
	require.NoError(t, w.SubmitDetails(CustomerDetails{Name: "Meera"}))

	assert.ErrorIs(t, w.Back(), ErrInvalidTransition)
	require.NoError(t, w.Confirm(7))
	assert.ErrorIs(t, w.Back(), ErrInvalidTransition)
}

func TestFailReturnsToOriginAndKeepsKey(t *testing.T) {
	tests := []struct {
		name   string
		online bool
		steps  func(w *Workflow) error
		origin State
	}{
		{
			name:   "details without online payment",
			online: false,
			steps: func(w *Workflow) error {
				return w.SubmitDetails(CustomerDetails{Name: "A"})
			},
			origin: StateDetailsRequired,
		},
		{
			name:   "counter choice",
			online: true,
			steps: func(w *Workflow) error {
				if err := w.SubmitDetails(CustomerDetails{Name: "A"}); err != nil {
					return err
				}
				return w.ChoosePayment(domain.PayAtCounter)
			},
			origin: StatePaymentChoice,
		},
		{
			name:   "online reference",
			online: true,
			steps: func(w *Workflow) error {
				if err := w.SubmitDetails(CustomerDetails{Name: "A"}); err != nil {
					return err
				}
				if err := w.ChoosePayment(domain.PayOnline); err != nil {
					return err
				}
				return w.EnterReference("UTR1")
			},
			origin: StatePayOnline,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := New(testCase.online)
			require.NoError(t, w.Proceed(filledCart(t)))
			key := w.IdempotencyKey
			require.NoError(t, testCase.steps(w))
			require.True(t, w.Submitting())

			w.Fail()
			assert.Equal(t, testCase.origin, w.State)
			assert.Equal(t, key, w.IdempotencyKey)
		})
	}
}

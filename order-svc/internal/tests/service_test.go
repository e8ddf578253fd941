package tests

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qr-dine/order-svc/internal/auth"
	"qr-dine/order-svc/internal/billing"
	"qr-dine/order-svc/internal/checkout"
	"qr-dine/order-svc/internal/domain"
	"qr-dine/order-svc/internal/mocks"
	"qr-dine/order-svc/internal/service"
)

func gstRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:   1,
		Slug: "spice-route",
		Name: "Spice Route",
		Tax: domain.TaxConfiguration{
			CGSTRate: decimal.NewFromFloat(2.5),
			SGSTRate: decimal.NewFromFloat(2.5),
		},
		UPIID:                "spiceroute@upi",
		OnlinePaymentEnabled: true,
	}
}

func burgerLines() []domain.OrderLine {
	return []domain.OrderLine{
		{ItemID: 7, Name: "Burger", UnitPrice: decimal.NewFromInt(150), Quantity: 2},
	}
}

func isEvent(eventType string) interface{} {
	return mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == eventType && e.ID != ""
	})
}

type orderMocks struct {
	orders      *mocks.OrderRepository
	payments    *mocks.PaymentRepository
	restaurants *mocks.RestaurantRepository
	menu        *mocks.MenuRepository
	tables      *mocks.TableRepository
	keys        *mocks.IdempotencyCache
	events      *mocks.EventPublisher
}

func newOrderService(t *testing.T) (*service.OrderService, orderMocks) {
	m := orderMocks{
		orders:      mocks.NewOrderRepository(t),
		payments:    mocks.NewPaymentRepository(t),
		restaurants: mocks.NewRestaurantRepository(t),
		menu:        mocks.NewMenuRepository(t),
		tables:      mocks.NewTableRepository(t),
		keys:        mocks.NewIdempotencyCache(t),
		events:      mocks.NewEventPublisher(t),
	}
	svc := service.NewOrderService(m.orders, m.payments, m.restaurants, m.menu, m.tables, m.keys, m.events)
	return svc, m
}

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		cmd           domain.PlaceOrderCommand
		prepareMocks  func(m orderMocks)
		expectedError error
		expectedID    int
	}{
		{
			name: "success_pay_at_counter",
			cmd: domain.PlaceOrderCommand{
				IdempotencyKey: "key-1", RestaurantID: 1, CustomerName: "Asha", Lines: burgerLines(),
			},
			prepareMocks: func(m orderMocks) {
				m.keys.On("LookupOrder", ctx, 1, "key-1").Return(0, false, nil).Once()
				m.restaurants.On("GetRestaurant", 1).Return(gstRestaurant(), nil).Once()
				m.orders.On("PlaceOrder", mock.MatchedBy(func(o *domain.Order) bool {
					return o.Subtotal.Equal(decimal.NewFromInt(300)) &&
						o.TaxSnapshot != nil && o.TaxSnapshot.CGSTRate.Equal(decimal.NewFromFloat(2.5)) &&
						o.Status == domain.StatusPending &&
						o.Source == domain.SourceOnline &&
						o.Lines[0].LineTotal.Equal(decimal.NewFromInt(300))
				}), (*domain.Payment)(nil)).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Order).ID = 10
				}).Return(true, nil).Once()
				m.keys.On("RememberOrder", ctx, 1, "key-1", 10).Return(nil).Once()
				m.events.On("Publish", ctx, isEvent(domain.EventOrderPlaced)).Return(nil).Once()
			},
			expectedID: 10,
		},
		{
			name: "success_pay_online_records_payment",
			cmd: domain.PlaceOrderCommand{
				IdempotencyKey: "key-2", RestaurantID: 1, CustomerName: "Asha", Lines: burgerLines(),
				Method: domain.PayOnline, UTRReference: " 412345678901 ",
			},
			prepareMocks: func(m orderMocks) {
				m.keys.On("LookupOrder", ctx, 1, "key-2").Return(0, false, nil).Once()
				m.restaurants.On("GetRestaurant", 1).Return(gstRestaurant(), nil).Once()
				m.orders.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
					return p != nil && p.UTRReference == "412345678901" &&
						p.Amount.Equal(decimal.NewFromInt(315)) &&
						p.Status == domain.PaymentPending
				})).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Order).ID = 11
					args.Get(1).(*domain.Payment).ID = 3
				}).Return(true, nil).Once()
				m.keys.On("RememberOrder", ctx, 1, "key-2", 11).Return(nil).Once()
				m.events.On("Publish", ctx, isEvent(domain.EventOrderPlaced)).Return(nil).Once()
				m.events.On("Publish", ctx, isEvent(domain.EventPaymentSubmitted)).Return(nil).Once()
			},
			expectedID: 11,
		},
		{
			name: "replay_found_in_cache",
			cmd: domain.PlaceOrderCommand{
				IdempotencyKey: "key-3", RestaurantID: 1, CustomerName: "Asha", Lines: burgerLines(),
			},
			prepareMocks: func(m orderMocks) {
				m.keys.On("LookupOrder", ctx, 1, "key-3").Return(12, true, nil).Once()
				m.orders.On("GetOrder", 12).Return(&domain.Order{ID: 12, RestaurantID: 1}, nil).Once()
			},
			expectedID: 12,
		},
		{
			name: "replay_of_another_restaurants_key",
			cmd: domain.PlaceOrderCommand{
				IdempotencyKey: "key-6", RestaurantID: 1, CustomerName: "Asha", Lines: burgerLines(),
			},
			prepareMocks: func(m orderMocks) {
				m.keys.On("LookupOrder", ctx, 1, "key-6").Return(99, true, nil).Once()
				m.orders.On("GetOrder", 99).Return(&domain.Order{
					ID: 99, RestaurantID: 2, CustomerName: "Other Diner", CustomerPhone: "9999999999",
				}, nil).Once()
			},
			expectedError: domain.ErrConflict,
		},
		{
			name: "replay_detected_by_database",
			cmd: domain.PlaceOrderCommand{
				IdempotencyKey: "key-4", RestaurantID: 1, CustomerName: "Asha", Lines: burgerLines(),
			},
			prepareMocks: func(m orderMocks) {
				m.keys.On("LookupOrder", ctx, 1, "key-4").Return(0, false, assert.AnError).Once()
				m.restaurants.On("GetRestaurant", 1).Return(gstRestaurant(), nil).Once()
				m.orders.On("PlaceOrder", mock.Anything, (*domain.Payment)(nil)).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Order).ID = 13
				}).Return(false, nil).Once()
				m.keys.On("RememberOrder", ctx, 1, "key-4", 13).Return(nil).Once()
			},
			expectedID: 13,
		},
		{
			name: "error_online_disabled",
			cmd: domain.PlaceOrderCommand{
				IdempotencyKey: "key-5", RestaurantID: 1, CustomerName: "Asha", Lines: burgerLines(),
				Method: domain.PayOnline, UTRReference: "123",
			},
			prepareMocks: func(m orderMocks) {
				rest := gstRestaurant()
				rest.OnlinePaymentEnabled = false
				m.keys.On("LookupOrder", ctx, 1, "key-5").Return(0, false, nil).Once()
				m.restaurants.On("GetRestaurant", 1).Return(rest, nil).Once()
			},
			expectedError: checkout.ErrOnlinePaymentDisabled,
		},
		{
			name:          "error_empty_cart",
			cmd:           domain.PlaceOrderCommand{RestaurantID: 1, CustomerName: "Asha"},
			prepareMocks:  func(m orderMocks) {},
			expectedError: checkout.ErrEmptyCart,
		},
		{
			name:          "error_blank_name",
			cmd:           domain.PlaceOrderCommand{RestaurantID: 1, CustomerName: "   ", Lines: burgerLines()},
			prepareMocks:  func(m orderMocks) {},
			expectedError: checkout.ErrCustomerNameRequired,
		},
		{
			name: "error_online_without_reference",
			cmd: domain.PlaceOrderCommand{
				RestaurantID: 1, CustomerName: "Asha", Lines: burgerLines(), Method: domain.PayOnline,
			},
			prepareMocks:  func(m orderMocks) {},
			expectedError: checkout.ErrReferenceRequired,
		},
		{
			name: "error_unknown_method",
			cmd: domain.PlaceOrderCommand{
				RestaurantID: 1, CustomerName: "Asha", Lines: burgerLines(), Method: "cheque",
			},
			prepareMocks:  func(m orderMocks) {},
			expectedError: checkout.ErrInvalidPaymentMethod,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			testCase.prepareMocks(m)

			order, err := svc.PlaceOrder(ctx, testCase.cmd)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedID, order.ID)
		})
	}
}

func TestOrderService_PlaceCounterOrder(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(t)

	tableID := 3
	pizza := &domain.MenuItem{
		ID: 8, RestaurantID: 1, Name: "Pizza", Price: decimal.NewFromInt(200), Available: true,
		Variants: []domain.Variant{{Name: "Large", Price: decimal.NewFromInt(300)}},
		AddOns:   []domain.AddOn{{Name: "Cheese", Price: decimal.NewFromInt(40)}},
	}

	m.tables.On("GetTable", 1, 3).Return(&domain.Table{ID: 3, RestaurantID: 1, BranchID: 2}, nil).Once()
	m.menu.On("GetMenuItem", 1, 8).Return(pizza, nil).Once()
	m.keys.On("LookupOrder", ctx, 1, mock.Anything).Return(0, false, nil).Once()
	m.restaurants.On("GetRestaurant", 1).Return(gstRestaurant(), nil).Once()
	m.orders.On("PlaceOrder", mock.MatchedBy(func(o *domain.Order) bool {
		return o.Source == domain.SourcePOS && o.BranchID == 2 && *o.TableID == 3 &&
			o.Lines[0].Variant == "Large" && o.Lines[0].Quantity == 2 &&
			o.Subtotal.Equal(decimal.NewFromInt(680))
	}), (*domain.Payment)(nil)).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 20
	}).Return(true, nil).Once()
	m.keys.On("RememberOrder", ctx, 1, mock.Anything, 20).Return(nil).Once()
	m.events.On("Publish", ctx, isEvent(domain.EventOrderPlaced)).Return(nil).Once()

	order, err := svc.PlaceCounterOrder(ctx, 1, service.CounterOrderRequest{
		TableID:      &tableID,
		CustomerName: "Walk-in",
		Items:        []service.CounterOrderItem{{ItemID: 8, Variant: "large", AddOns: []string{"Cheese"}, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 20, order.ID)
}

func TestOrderService_PlaceCounterOrder_NeedsVariant(t *testing.T) {
	svc, m := newOrderService(t)

	m.menu.On("GetMenuItem", 1, 8).Return(&domain.MenuItem{
		ID: 8, Name: "Pizza", Available: true,
		Variants: []domain.Variant{{Name: "Large", Price: decimal.NewFromInt(300)}},
	}, nil).Once()

	_, err := svc.PlaceCounterOrder(context.Background(), 1, service.CounterOrderRequest{
		CustomerName: "Walk-in",
		Items:        []service.CounterOrderItem{{ItemID: 8, Quantity: 1}},
	})
	var verr checkout.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "items", verr.Field)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	snapshot := &domain.TaxConfiguration{CGSTRate: decimal.NewFromInt(9), SGSTRate: decimal.NewFromInt(9)}

	order := func(status domain.OrderStatus) *domain.Order {
		return &domain.Order{ID: 5, RestaurantID: 1, Status: status, Subtotal: decimal.NewFromInt(100), TaxSnapshot: snapshot}
	}

	tests := []struct {
		name          string
		restaurantID  int
		to            domain.OrderStatus
		prepareMocks  func(m orderMocks)
		expectedError error
	}{
		{
			name:         "advance_to_preparation",
			restaurantID: 1,
			to:           domain.StatusInPreparation,
			prepareMocks: func(m orderMocks) {
				m.orders.On("GetOrder", 5).Return(order(domain.StatusPending), nil).Once()
				m.orders.On("UpdateOrderStatus", 5, domain.StatusPending, domain.StatusInPreparation, (*domain.Bill)(nil)).Return(nil).Once()
				m.events.On("Publish", ctx, isEvent(domain.EventOrderStatusChanged)).Return(nil).Once()
			},
		},
		{
			name:         "complete_with_verified_payment_bills_as_paid",
			restaurantID: 1,
			to:           domain.StatusCompleted,
			prepareMocks: func(m orderMocks) {
				m.orders.On("GetOrder", 5).Return(order(domain.StatusServed), nil).Once()
				m.payments.On("GetPaymentByOrder", 5).Return(&domain.Payment{ID: 3, Status: domain.PaymentVerified}, nil).Once()
				m.orders.On("UpdateOrderStatus", 5, domain.StatusServed, domain.StatusCompleted, mock.MatchedBy(func(b *domain.Bill) bool {
					return b != nil && b.Status == domain.BillPaid &&
						b.CGSTAmount.Equal(decimal.NewFromInt(9)) &&
						b.GrandTotal.Equal(decimal.NewFromInt(118))
				})).Return(nil).Once()
				m.events.On("Publish", ctx, isEvent(domain.EventOrderStatusChanged)).Return(nil).Once()
			},
		},
		{
			name:         "complete_without_payment_bills_as_pending",
			restaurantID: 1,
			to:           domain.StatusCompleted,
			prepareMocks: func(m orderMocks) {
				m.orders.On("GetOrder", 5).Return(order(domain.StatusServed), nil).Once()
				m.payments.On("GetPaymentByOrder", 5).Return(nil, domain.ErrNotFound).Once()
				m.orders.On("UpdateOrderStatus", 5, domain.StatusServed, domain.StatusCompleted, mock.MatchedBy(func(b *domain.Bill) bool {
					return b != nil && b.Status == domain.BillPending
				})).Return(nil).Once()
				m.events.On("Publish", ctx, isEvent(domain.EventOrderStatusChanged)).Return(assert.AnError).Once()
			},
		},
		{
			name:         "error_skipping_a_step",
			restaurantID: 1,
			to:           domain.StatusReady,
			prepareMocks: func(m orderMocks) {
				m.orders.On("GetOrder", 5).Return(order(domain.StatusPending), nil).Once()
			},
			expectedError: service.ErrInvalidStatusTransition,
		},
		{
			name:         "error_cancel_completed",
			restaurantID: 1,
			to:           domain.StatusCancelled,
			prepareMocks: func(m orderMocks) {
				m.orders.On("GetOrder", 5).Return(order(domain.StatusCompleted), nil).Once()
			},
			expectedError: service.ErrInvalidStatusTransition,
		},
		{
			name:         "error_other_restaurant",
			restaurantID: 2,
			to:           domain.StatusInPreparation,
			prepareMocks: func(m orderMocks) {
				m.orders.On("GetOrder", 5).Return(order(domain.StatusPending), nil).Once()
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:         "error_concurrent_update",
			restaurantID: 1,
			to:           domain.StatusCancelled,
			prepareMocks: func(m orderMocks) {
				m.orders.On("GetOrder", 5).Return(order(domain.StatusPending), nil).Once()
				m.orders.On("UpdateOrderStatus", 5, domain.StatusPending, domain.StatusCancelled, (*domain.Bill)(nil)).Return(domain.ErrConflict).Once()
			},
			expectedError: domain.ErrConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			testCase.prepareMocks(m)

			updated, err := svc.UpdateStatus(ctx, testCase.restaurantID, 5, testCase.to)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.to, updated.Status)
		})
	}
}

func TestOrderService_SubmitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orders.On("GetOrder", 5).Return(&domain.Order{ID: 5, RestaurantID: 1, Status: domain.StatusPending, Subtotal: decimal.NewFromInt(300)}, nil).Once()
		m.restaurants.On("GetRestaurant", 1).Return(gstRestaurant(), nil).Once()
		m.payments.On("CreatePayment", mock.MatchedBy(func(p *domain.Payment) bool {
			return p.OrderID == 5 && p.UTRReference == "UTR9" && p.Amount.Equal(decimal.NewFromInt(315))
		})).Return(nil).Once()
		m.events.On("Publish", ctx, isEvent(domain.EventPaymentSubmitted)).Return(nil).Once()

		payment, err := svc.SubmitPayment(ctx, 5, "UTR9")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPending, payment.Status)
	})

	t.Run("duplicate_pending_claim", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orders.On("GetOrder", 5).Return(&domain.Order{ID: 5, RestaurantID: 1, Status: domain.StatusPending}, nil).Once()
		m.restaurants.On("GetRestaurant", 1).Return(gstRestaurant(), nil).Once()
		m.payments.On("CreatePayment", mock.Anything).Return(domain.ErrDuplicate).Once()

		_, err := svc.SubmitPayment(ctx, 5, "UTR9")
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("cancelled_order", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orders.On("GetOrder", 5).Return(&domain.Order{ID: 5, RestaurantID: 1, Status: domain.StatusCancelled}, nil).Once()

		_, err := svc.SubmitPayment(ctx, 5, "UTR9")
		var verr checkout.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("missing_reference", func(t *testing.T) {
		svc, _ := newOrderService(t)
		_, err := svc.SubmitPayment(ctx, 5, "  ")
		assert.ErrorIs(t, err, checkout.ErrReferenceRequired)
	})
}

func TestPaymentService_Review(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		status        domain.PaymentStatus
		prepareMocks  func(repo *mocks.PaymentRepository, events *mocks.EventPublisher)
		expectedError error
	}{
		{
			name:   "verify",
			status: domain.PaymentVerified,
			prepareMocks: func(repo *mocks.PaymentRepository, events *mocks.EventPublisher) {
				repo.On("GetPayment", 3).Return(&domain.Payment{ID: 3, OrderID: 5, RestaurantID: 1, Status: domain.PaymentPending}, nil).Once()
				repo.On("ReviewPayment", 3, domain.PaymentVerified).Return(&domain.Payment{ID: 3, OrderID: 5, RestaurantID: 1, Status: domain.PaymentVerified}, nil).Once()
				events.On("Publish", ctx, isEvent(domain.EventPaymentUpdated)).Return(nil).Once()
			},
		},
		{
			name:   "already_reviewed",
			status: domain.PaymentFailed,
			prepareMocks: func(repo *mocks.PaymentRepository, events *mocks.EventPublisher) {
				repo.On("GetPayment", 3).Return(&domain.Payment{ID: 3, RestaurantID: 1, Status: domain.PaymentVerified}, nil).Once()
			},
			expectedError: service.ErrPaymentNotPending,
		},
		{
			name:   "other_restaurant",
			status: domain.PaymentVerified,
			prepareMocks: func(repo *mocks.PaymentRepository, events *mocks.EventPublisher) {
				repo.On("GetPayment", 3).Return(&domain.Payment{ID: 3, RestaurantID: 9, Status: domain.PaymentPending}, nil).Once()
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewPaymentRepository(t)
			events := mocks.NewEventPublisher(t)
			svc := service.NewPaymentService(repo, events)
			testCase.prepareMocks(repo, events)

			payment, err := svc.Review(ctx, 1, 3, testCase.status)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.status, payment.Status)
		})
	}

	t.Run("rejects_pending_as_decision", func(t *testing.T) {
		svc := service.NewPaymentService(mocks.NewPaymentRepository(t), mocks.NewEventPublisher(t))
		_, err := svc.Review(ctx, 1, 3, domain.PaymentPending)
		var verr checkout.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestBillService_Receipt(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	bills := mocks.NewBillRepository(t)
	svc := service.NewBillService(orders, restaurants, bills, mocks.NewEventPublisher(t))

	orders.On("GetOrder", 5).Return(&domain.Order{
		ID: 5, RestaurantID: 1, CustomerName: "Asha", Status: domain.StatusServed,
		Lines: burgerLines(), Subtotal: decimal.NewFromInt(300),
	}, nil).Twice()
	restaurants.On("GetRestaurant", 1).Return(gstRestaurant(), nil).Twice()
	bills.On("GetBillByOrder", 5).Return(nil, domain.ErrNotFound).Twice()

	receipt, err := svc.Receipt(5)
	require.NoError(t, err)
	assert.Equal(t, billing.BadgeUnpaid, receipt.Badge)
	assert.True(t, receipt.GrandTotal.Equal(decimal.NewFromInt(315)))
	assert.Equal(t, "Rupees Three Hundred Fifteen Only", receipt.AmountInWords)

	var buf bytes.Buffer
	require.NoError(t, svc.WritePDF(5, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestBillService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	bills := mocks.NewBillRepository(t)
	events := mocks.NewEventPublisher(t)
	svc := service.NewBillService(mocks.NewOrderRepository(t), mocks.NewRestaurantRepository(t), bills, events)

	bills.On("GetBillByOrder", 5).Return(&domain.Bill{OrderID: 5, RestaurantID: 1, Status: domain.BillPending}, nil).Once()
	bills.On("MarkBillPaid", 5).Return(&domain.Bill{OrderID: 5, RestaurantID: 1, Status: domain.BillPaid}, nil).Once()
	events.On("Publish", ctx, isEvent(domain.EventBillPaid)).Return(nil).Once()

	bill, err := svc.MarkPaid(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.BillPaid, bill.Status)

	bills.On("GetBillByOrder", 6).Return(&domain.Bill{OrderID: 6, RestaurantID: 2}, nil).Once()
	_, err = svc.MarkPaid(ctx, 1, 6)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStaffService_Login(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	cashier := &domain.Staff{ID: 4, RestaurantID: 1, Email: "cash@spice.in", Role: domain.RoleCashier, PasswordHash: hash}
	expires := time.Now().Add(time.Hour)

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMocks  func(repo *mocks.StaffRepository, tokens *mocks.TokenIssuer)
		expectedError error
	}{
		{
			name:     "success",
			email:    " Cash@Spice.in ",
			password: "correct-horse",
			prepareMocks: func(repo *mocks.StaffRepository, tokens *mocks.TokenIssuer) {
				repo.On("GetStaffByEmail", "cash@spice.in").Return(cashier, nil).Once()
				tokens.On("Issue", *cashier).Return("signed", expires, nil).Once()
			},
		},
		{
			name:     "wrong_password",
			email:    "cash@spice.in",
			password: "battery-staple",
			prepareMocks: func(repo *mocks.StaffRepository, tokens *mocks.TokenIssuer) {
				repo.On("GetStaffByEmail", "cash@spice.in").Return(cashier, nil).Once()
			},
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:     "unknown_email",
			email:    "nobody@spice.in",
			password: "correct-horse",
			prepareMocks: func(repo *mocks.StaffRepository, tokens *mocks.TokenIssuer) {
				repo.On("GetStaffByEmail", "nobody@spice.in").Return(nil, domain.ErrNotFound).Once()
			},
			expectedError: service.ErrInvalidCredentials,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewStaffRepository(t)
			tokens := mocks.NewTokenIssuer(t)
			svc := service.NewStaffService(repo, tokens)
			testCase.prepareMocks(repo, tokens)

			result, err := svc.Login(testCase.email, testCase.password)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed", result.Token)
			assert.Equal(t, "/dashboard/payments", result.HomeRoute)
		})
	}
}

func TestStaffService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       service.StaffRequest
		wantField string
	}{
		{name: "missing_name", req: service.StaffRequest{Email: "a@b.in", Password: "longenough", Role: "waiter"}, wantField: "name"},
		{name: "bad_email", req: service.StaffRequest{Name: "A", Email: "nope", Password: "longenough", Role: "waiter"}, wantField: "email"},
		{name: "short_password", req: service.StaffRequest{Name: "A", Email: "a@b.in", Password: "short", Role: "waiter"}, wantField: "password"},
		{name: "unknown_role", req: service.StaffRequest{Name: "A", Email: "a@b.in", Password: "longenough", Role: "chef"}, wantField: "role"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := service.NewStaffService(mocks.NewStaffRepository(t), mocks.NewTokenIssuer(t))
			_, err := svc.Create(1, testCase.req)
			var verr checkout.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, testCase.wantField, verr.Field)
		})
	}

	t.Run("success_hashes_password", func(t *testing.T) {
		repo := mocks.NewStaffRepository(t)
		svc := service.NewStaffService(repo, mocks.NewTokenIssuer(t))
		repo.On("CreateStaff", mock.MatchedBy(func(s *domain.Staff) bool {
			return s.Email == "k@spice.in" && s.Role == domain.RoleKitchen && auth.CheckPassword(s.PasswordHash, "longenough")
		})).Return(nil).Once()

		staff, err := svc.Create(1, service.StaffRequest{Name: "Kiran", Email: "K@spice.in", Password: "longenough", Role: "Kitchen"})
		require.NoError(t, err)
		assert.Equal(t, 1, staff.RestaurantID)
	})
}

func TestRestaurantService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     *domain.Restaurant
		mockError error
		wantErr   bool
	}{
		{name: "valid restaurant", input: &domain.Restaurant{Name: "Spice Route", Slug: "Spice-Route"}},
		{name: "database error", input: &domain.Restaurant{Name: "Spice Route", Slug: "spice-route"}, mockError: assert.AnError, wantErr: true},
		{name: "empty name", input: &domain.Restaurant{Slug: "spice-route"}, wantErr: true},
		{name: "numeric slug", input: &domain.Restaurant{Name: "Spice Route", Slug: "42"}, wantErr: true},
		{name: "slug with spaces", input: &domain.Restaurant{Name: "Spice Route", Slug: "spice route"}, wantErr: true},
		{
			name: "tax over hundred",
			input: &domain.Restaurant{Name: "Spice Route", Slug: "spice-route",
				Tax: domain.TaxConfiguration{CGSTRate: decimal.NewFromInt(101)}},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewRestaurantRepository(t)
			svc := service.NewRestaurantService(mockRepo, mocks.NewQRGenerator(t))

			if testCase.input.Name != "" && !testCase.wantErr || testCase.mockError != nil {
				mockRepo.On("CreateRestaurant", testCase.input).Return(testCase.mockError).Once()
			}

			err := svc.Create(testCase.input)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "spice-route", testCase.input.Slug)
			}
		})
	}
}

func TestRestaurantService_UPIQRCode(t *testing.T) {
	repo := mocks.NewRestaurantRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewRestaurantService(repo, qr)

	amount := decimal.RequireFromString("315.00")
	repo.On("GetRestaurant", 1).Return(gstRestaurant(), nil).Once()
	qr.On("UPIPayment", "spiceroute@upi", "Spice Route", amount).Return([]byte("png"), nil).Once()

	png, err := svc.UPIQRCode(1, amount)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	repo.On("GetRestaurant", 2).Return(&domain.Restaurant{ID: 2}, nil).Once()
	_, err = svc.UPIQRCode(2, amount)
	assert.ErrorIs(t, err, service.ErrUPINotConfigured)

	_, err = svc.UPIQRCode(1, decimal.Zero)
	assert.Error(t, err)
}

func TestMenuService_CreateRejectsDuplicateVariants(t *testing.T) {
	svc := service.NewMenuService(mocks.NewMenuRepository(t))
	err := svc.Create(&domain.MenuItem{
		Name: "Pizza", Price: decimal.NewFromInt(200),
		Variants: []domain.Variant{{Name: "Large", Price: decimal.NewFromInt(300)}, {Name: "large", Price: decimal.NewFromInt(310)}},
	})
	var verr checkout.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "variants", verr.Field)
}

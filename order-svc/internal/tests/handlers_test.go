package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "qr-dine/order-svc/internal/api/http"
	"qr-dine/order-svc/internal/auth"
	"qr-dine/order-svc/internal/billing"
	"qr-dine/order-svc/internal/cart"
	"qr-dine/order-svc/internal/checkout"
	"qr-dine/order-svc/internal/domain"
	"qr-dine/order-svc/internal/mocks"
	"qr-dine/order-svc/internal/service"
)

type handlerMocks struct {
	restaurants *mocks.RestaurantServiceInterface
	menu        *mocks.MenuServiceInterface
	tables      *mocks.TableServiceInterface
	sessions    *mocks.SessionServiceInterface
	orders      *mocks.OrderServiceInterface
	payments    *mocks.PaymentServiceInterface
	bills       *mocks.BillServiceInterface
	staff       *mocks.StaffServiceInterface
}

var testIssuer = auth.NewTokenIssuer("handler-test-secret", time.Hour)

func setupTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		restaurants: mocks.NewRestaurantServiceInterface(t),
		menu:        mocks.NewMenuServiceInterface(t),
		tables:      mocks.NewTableServiceInterface(t),
		sessions:    mocks.NewSessionServiceInterface(t),
		orders:      mocks.NewOrderServiceInterface(t),
		payments:    mocks.NewPaymentServiceInterface(t),
		bills:       mocks.NewBillServiceInterface(t),
		staff:       mocks.NewStaffServiceInterface(t),
	}
	handler := &httpapi.Handler{
		Restaurants: m.restaurants,
		Menu:        m.menu,
		Tables:      m.tables,
		Sessions:    m.sessions,
		Orders:      m.orders,
		Payments:    m.payments,
		Bills:       m.bills,
		Staff:       m.staff,
		Tokens:      testIssuer,
		UploadDir:   t.TempDir(),
	}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func tokenFor(t *testing.T, restaurantID int, role domain.Role) string {
	t.Helper()
	token, _, err := testIssuer.Issue(domain.Staff{ID: 9, RestaurantID: restaurantID, Role: role})
	require.NoError(t, err)
	return token
}

func serve(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_healthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)
	recorder := serve(router, "GET", "/health", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"service":"order-svc"`)
}

func TestHandler_getMenu(t *testing.T) {
	router, m := setupTestRouter(t)

	m.restaurants.On("GetBySlug", "spice-route").Return(gstRestaurant(), nil).Once()
	m.menu.On("List", 1, true).Return([]domain.MenuItem{{ID: 7, Name: "Burger"}}, nil).Once()
	m.restaurants.On("GetBySlug", "nowhere").Return(nil, domain.ErrNotFound).Once()

	recorder := serve(router, "GET", "/api/menu/spice-route", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"name":"Burger"`)

	recorder = serve(router, "GET", "/api/menu/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":"not_found"`)
}

func TestHandler_openSession(t *testing.T) {
	router, m := setupTestRouter(t)

	m.sessions.On("Open", mock.Anything, "spice-route", mock.MatchedBy(func(id *int) bool {
		return id != nil && *id == 4
	})).Return(&service.SessionView{ID: "s1", RestaurantID: 1}, nil).Once()

	recorder := serve(router, "POST", "/api/menu/spice-route/sessions?table=4", "", "")
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"id":"s1"`)

	recorder = serve(router, "POST", "/api/menu/spice-route/sessions?table=four", "", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_addToCart(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "added",
			payload: `{"item_id":7}`,
			prepareMocks: func() {
				m.sessions.On("AddToCart", mock.Anything, "s1", service.AddToCartRequest{ItemID: 7}).
					Return(&service.AddToCartResult{Outcome: cart.Added, Session: &service.SessionView{ID: "s1", ItemCount: 1}}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"item_count":1`,
		},
		{
			name:    "variant_required",
			payload: `{"item_id":8}`,
			prepareMocks: func() {
				m.sessions.On("AddToCart", mock.Anything, "s1", service.AddToCartRequest{ItemID: 8}).
					Return(&service.AddToCartResult{
						Outcome: cart.VariantSelectionRequired,
						Item:    &domain.MenuItem{ID: 8, Name: "Pizza", Variants: []domain.Variant{{Name: "Large", Price: decimal.NewFromInt(300)}}},
					}, nil).Once()
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `"code":"variant_selection_required"`,
		},
		{
			name:    "cart_locked",
			payload: `{"item_id":7}`,
			prepareMocks: func() {
				m.sessions.On("AddToCart", mock.Anything, "s1", service.AddToCartRequest{ItemID: 7}).
					Return(nil, service.ErrCartLocked).Once()
			},
			expectedCode: http.StatusConflict,
			expectedBody: `"code":"cart_locked"`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := serve(router, "POST", "/api/sessions/s1/cart/lines", testCase.payload, "")
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_checkoutSteps(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		method       string
		path         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "details_missing_name",
			method: "POST", path: "/api/sessions/s1/checkout/details", payload: `{"name":""}`,
			prepareMocks: func() {
				m.sessions.On("SubmitDetails", mock.Anything, "s1", checkout.CustomerDetails{}).
					Return(nil, checkout.ErrCustomerNameRequired).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"field":"customer_name"`,
		},
		{
			name:   "choose_online",
			method: "POST", path: "/api/sessions/s1/checkout/payment-method", payload: `{"method":"Online"}`,
			prepareMocks: func() {
				m.sessions.On("ChoosePayment", mock.Anything, "s1", domain.PayOnline).
					Return(&service.SessionView{ID: "s1", PayOnline: &service.PayOnlineInfo{Available: true}}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"available":true`,
		},
		{
			name:   "choose_unknown_method",
			method: "POST", path: "/api/sessions/s1/checkout/payment-method", payload: `{"method":"barter"}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"field":"payment_method"`,
		},
		{
			name:   "reference_while_in_flight",
			method: "POST", path: "/api/sessions/s1/checkout/reference", payload: `{"utr_reference":"UTR1"}`,
			prepareMocks: func() {
				m.sessions.On("SubmitReference", mock.Anything, "s1", "UTR1").
					Return(nil, service.ErrCheckoutInFlight).Once()
			},
			expectedCode: http.StatusConflict,
			expectedBody: `"code":"checkout_in_flight"`,
		},
		{
			name:   "reference_confirmed",
			method: "POST", path: "/api/sessions/s1/checkout/reference", payload: `{"utr_reference":"UTR2"}`,
			prepareMocks: func() {
				m.sessions.On("SubmitReference", mock.Anything, "s1", "UTR2").
					Return(&service.SessionView{ID: "s1", OrderID: 42, BillURL: "/api/sessions/s1/orders/42/bill"}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"bill_url":"/api/sessions/s1/orders/42/bill"`,
		},
		{
			name:   "submit_failure_is_500",
			method: "POST", path: "/api/sessions/s1/checkout/reference", payload: `{"utr_reference":"UTR3"}`,
			prepareMocks: func() {
				m.sessions.On("SubmitReference", mock.Anything, "s1", "UTR3").
					Return(nil, fmt.Errorf("submit order: %w", assert.AnError)).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `"code":"internal"`,
		},
		{
			name:   "back_out_of_order",
			method: "POST", path: "/api/sessions/s1/checkout/back",
			prepareMocks: func() {
				m.sessions.On("Back", mock.Anything, "s1").
					Return(nil, fmt.Errorf("%w: back from confirmed", checkout.ErrInvalidTransition)).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "cancel",
			method: "DELETE", path: "/api/sessions/s1/checkout",
			prepareMocks: func() {
				m.sessions.On("CancelCheckout", mock.Anything, "s1").Return(&service.SessionView{ID: "s1"}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "remove_line",
			method: "DELETE", path: "/api/sessions/s1/cart/lines/l1",
			prepareMocks: func() {
				m.sessions.On("SetQuantity", mock.Anything, "s1", "l1", 0).Return(&service.SessionView{ID: "s1"}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := serve(router, testCase.method, testCase.path, testCase.payload, "")
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_staffAuthorization(t *testing.T) {
	router, m := setupTestRouter(t)

	tests := []struct {
		name         string
		token        string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:         "missing_token",
			prepareMocks: func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "garbage_token",
			token:        "not-a-jwt",
			prepareMocks: func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "other_restaurant",
			token:        tokenFor(t, 2, domain.RoleCashier),
			prepareMocks: func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "kitchen_cannot_verify",
			token:        tokenFor(t, 1, domain.RoleKitchen),
			prepareMocks: func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:  "cashier_verifies",
			token: tokenFor(t, 1, domain.RoleCashier),
			prepareMocks: func() {
				m.payments.On("Review", mock.Anything, 1, 3, domain.PaymentVerified).
					Return(&domain.Payment{ID: 3, Status: domain.PaymentVerified}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "already_reviewed",
			token: tokenFor(t, 1, domain.RoleManager),
			prepareMocks: func() {
				m.payments.On("Review", mock.Anything, 1, 3, domain.PaymentVerified).
					Return(nil, service.ErrPaymentNotPending).Once()
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := serve(router, "POST", "/api/restaurants/1/payments/3/verify", "", testCase.token)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_updateOrderStatus(t *testing.T) {
	router, m := setupTestRouter(t)
	token := tokenFor(t, 1, domain.RoleKitchen)

	m.orders.On("UpdateStatus", mock.Anything, 1, 5, domain.StatusInPreparation).
		Return(&domain.Order{ID: 5, Status: domain.StatusInPreparation}, nil).Once()
	m.orders.On("UpdateStatus", mock.Anything, 1, 5, domain.StatusCompleted).
		Return(nil, fmt.Errorf("%w: pending to completed", service.ErrInvalidStatusTransition)).Once()

	recorder := serve(router, "PUT", "/api/restaurants/1/orders/5/status", `{"status":"in_preparation"}`, token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var order domain.Order
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&order))
	assert.Equal(t, domain.StatusInPreparation, order.Status)

	recorder = serve(router, "PUT", "/api/restaurants/1/orders/5/status", `{"status":"completed"}`, token)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = serve(router, "PUT", "/api/restaurants/1/orders/5/status", `{"status":"eaten"}`, token)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_menuManagementRequiresRole(t *testing.T) {
	router, m := setupTestRouter(t)

	m.menu.On("Create", mock.MatchedBy(func(item *domain.MenuItem) bool {
		return item.RestaurantID == 1 && item.Name == "Dosa"
	})).Return(nil).Once()

	recorder := serve(router, "POST", "/api/restaurants/1/menu", `{"name":"Dosa","price":"90"}`, tokenFor(t, 1, domain.RoleWaiter))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = serve(router, "POST", "/api/restaurants/1/menu", `{"name":"Dosa","price":"90"}`, tokenFor(t, 1, domain.RoleManager))
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestHandler_sessionBill(t *testing.T) {
	router, m := setupTestRouter(t)

	m.sessions.On("AuthorizeOrder", mock.Anything, "s1", 42).Return(nil).Twice()
	m.bills.On("Receipt", 42).Return(&billing.Receipt{OrderID: 42, Badge: billing.BadgePaid, GrandTotal: decimal.NewFromInt(315)}, nil).Once()
	m.bills.On("WritePDF", 42, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(io.Writer).Write([]byte("%PDF-1.3 test"))
	}).Return(nil).Once()

	recorder := serve(router, "GET", "/api/sessions/s1/orders/42/bill", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"badge":"PAID"`)

	recorder = serve(router, "GET", "/api/sessions/s1/orders/42/bill.pdf", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(recorder.Body.Bytes(), []byte("%PDF-")))
}

func TestHandler_sessionOrderAccess(t *testing.T) {
	router, m := setupTestRouter(t)
	notOurs := fmt.Errorf("order 7 in session s1: %w", domain.ErrNotFound)

	tests := []struct {
		name         string
		method       string
		path         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "own_order",
			method: "GET", path: "/api/sessions/s1/orders/42",
			prepareMocks: func() {
				m.sessions.On("AuthorizeOrder", mock.Anything, "s1", 42).Return(nil).Once()
				m.orders.On("Get", 42).Return(&domain.Order{ID: 42, RestaurantID: 1, CustomerName: "Asha"}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"customer_name":"Asha"`,
		},
		{
			name:   "order_of_another_session",
			method: "GET", path: "/api/sessions/s1/orders/7",
			prepareMocks: func() {
				m.sessions.On("AuthorizeOrder", mock.Anything, "s1", 7).Return(notOurs).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "bill_of_another_session",
			method: "GET", path: "/api/sessions/s1/orders/7/bill.pdf",
			prepareMocks: func() {
				m.sessions.On("AuthorizeOrder", mock.Anything, "s1", 7).Return(notOurs).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "payment_for_another_session",
			method: "POST", path: "/api/sessions/s1/orders/7/payment", payload: `{"utr_reference":"UTR9"}`,
			prepareMocks: func() {
				m.sessions.On("AuthorizeOrder", mock.Anything, "s1", 7).Return(notOurs).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "payment_for_own_order",
			method: "POST", path: "/api/sessions/s1/orders/42/payment", payload: `{"utr_reference":"UTR9"}`,
			prepareMocks: func() {
				m.sessions.On("AuthorizeOrder", mock.Anything, "s1", 42).Return(nil).Once()
				m.orders.On("SubmitPayment", mock.Anything, 42, "UTR9").Return(&domain.Payment{ID: 3, OrderID: 42}, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "expired_session",
			method: "GET", path: "/api/sessions/gone/orders/42/bill",
			prepareMocks: func() {
				m.sessions.On("AuthorizeOrder", mock.Anything, "gone", 42).Return(domain.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "old_order_route_is_gone",
			method: "GET", path: "/api/orders/42",
			prepareMocks: func() {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := serve(router, testCase.method, testCase.path, testCase.payload, "")
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_closeSession(t *testing.T) {
	router, m := setupTestRouter(t)

	m.sessions.On("Close", mock.Anything, "s1").Return(nil).Once()
	m.sessions.On("Close", mock.Anything, "s2").Return(service.ErrCheckoutInFlight).Once()

	recorder := serve(router, "DELETE", "/api/sessions/s1", "", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = serve(router, "DELETE", "/api/sessions/s2", "", "")
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_staffOrderAndBill(t *testing.T) {
	router, m := setupTestRouter(t)
	token := tokenFor(t, 1, domain.RoleCashier)

	m.orders.On("Get", 42).Return(&domain.Order{ID: 42, RestaurantID: 1, CustomerName: "Asha"}, nil)
	m.orders.On("Get", 77).Return(&domain.Order{ID: 77, RestaurantID: 2, CustomerName: "Other Diner"}, nil)
	m.bills.On("Receipt", 42).Return(&billing.Receipt{OrderID: 42, Badge: billing.BadgeUnpaid}, nil).Once()

	recorder := serve(router, "GET", "/api/restaurants/1/orders/42", "", token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"customer_name":"Asha"`)

	recorder = serve(router, "GET", "/api/restaurants/1/orders/42/bill", "", token)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = serve(router, "GET", "/api/restaurants/1/orders/77", "", token)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "Other Diner")

	recorder = serve(router, "GET", "/api/restaurants/1/orders/77/bill.pdf", "", token)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = serve(router, "GET", "/api/restaurants/1/orders/42/bill", "", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_upiQRCode(t *testing.T) {
	router, m := setupTestRouter(t)

	m.restaurants.On("UPIQRCode", 1, decimal.RequireFromString("315.00")).Return([]byte("png"), nil).Once()
	m.restaurants.On("UPIQRCode", 2, decimal.RequireFromString("315.00")).Return(nil, service.ErrUPINotConfigured).Once()

	recorder := serve(router, "GET", "/api/restaurants/1/upi-qr?amount=315.00", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))

	recorder = serve(router, "GET", "/api/restaurants/2/upi-qr?amount=315.00", "", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = serve(router, "GET", "/api/restaurants/1/upi-qr?amount=lots", "", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_login(t *testing.T) {
	router, m := setupTestRouter(t)

	m.staff.On("Login", "owner@spice.in", "secret-pass").
		Return(&service.LoginResult{
			Token:     "jwt",
			Staff:     domain.Staff{ID: 9, RestaurantID: 1, Role: domain.RoleOwner},
			HomeRoute: "/dashboard",
		}, nil).Once()
	m.staff.On("Login", "owner@spice.in", "wrong").Return(nil, service.ErrInvalidCredentials).Once()

	recorder := serve(router, "POST", "/api/auth/login", `{"email":"owner@spice.in","password":"secret-pass"}`, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"home_route":"/dashboard"`)
	assert.Contains(t, recorder.Body.String(), `"role":"owner"`)

	recorder = serve(router, "POST", "/api/auth/login", `{"email":"owner@spice.in","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_unencodableResponseIs500(t *testing.T) {
	router, m := setupTestRouter(t)

	// role 0 has no text form
	m.staff.On("Login", "owner@spice.in", "secret-pass").
		Return(&service.LoginResult{Token: "jwt", HomeRoute: "/dashboard"}, nil).Once()

	recorder := serve(router, "POST", "/api/auth/login", `{"email":"owner@spice.in","password":"secret-pass"}`, "")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"code":"internal"`)
	assert.NotContains(t, recorder.Body.String(), "jwt")
}

func TestHandler_createRestaurantRollsBackWithoutOwner(t *testing.T) {
	router, m := setupTestRouter(t)

	m.restaurants.On("Create", mock.AnythingOfType("*domain.Restaurant")).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Restaurant).ID = 7
	}).Return(nil).Once()
	m.staff.On("Create", 7, mock.MatchedBy(func(req service.StaffRequest) bool {
		return req.Role == "owner"
	})).Return(nil, checkout.ValidationError{Field: "password", Message: "must be at least 8 characters"}).Once()
	m.restaurants.On("Delete", 7).Return(int64(1), nil).Once()

	payload := `{"name":"Spice Route","slug":"spice-route","owner":{"name":"Meera","email":"meera@spice.in","password":"short"}}`
	recorder := serve(router, "POST", "/api/restaurants", payload, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"field":"password"`)
}

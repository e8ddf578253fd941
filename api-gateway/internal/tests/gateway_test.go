package tests

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qr-dine/api-gateway/internal/gateway"
	"qr-dine/api-gateway/internal/mocks"
)

var services = gateway.Config{
	OrderSvcURL:     "http://order-svc",
	AnalyticsSvcURL: "http://analytics-svc",
	NotifySvcURL:    "http://notify-svc",
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	rr := httptest.NewRecorder()
	gw.HealthCheck(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Routing(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		wantURL string
	}{
		{name: "diner menu", method: http.MethodGet, path: "/api/menu/spice-route", wantURL: "http://order-svc/api/menu/spice-route"},
		{name: "session cart", method: http.MethodPost, path: "/api/sessions/abc/cart/lines", wantURL: "http://order-svc/api/sessions/abc/cart/lines"},
		{name: "bill pdf", method: http.MethodGet, path: "/api/sessions/abc/orders/42/bill.pdf", wantURL: "http://order-svc/api/sessions/abc/orders/42/bill.pdf"},
		{name: "staff orders with query", method: http.MethodGet, path: "/api/restaurants/1/orders?status=pending", wantURL: "http://order-svc/api/restaurants/1/orders?status=pending"},
		{name: "uploads", method: http.MethodGet, path: "/uploads/menu-1.png", wantURL: "http://order-svc/uploads/menu-1.png"},
		{name: "analytics summary", method: http.MethodGet, path: "/api/restaurants/1/analytics", wantURL: "http://analytics-svc/api/restaurants/1/analytics"},
		{name: "analytics revenue", method: http.MethodGet, path: "/api/restaurants/1/analytics/revenue?days=7", wantURL: "http://analytics-svc/api/restaurants/1/analytics/revenue?days=7"},
		{name: "live feed", method: http.MethodGet, path: "/api/restaurants/1/live?token=t", wantURL: "http://notify-svc/api/restaurants/1/live?token=t"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.URL.String() == testCase.wantURL && req.Method == testCase.method &&
					req.Header.Get("Authorization") == "Bearer token"
			})).Return(okResponse(`{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			req.Header.Set("Authorization", "Bearer token")
			rr := httptest.NewRecorder()
			gateway.NewGateway(services, mockClient).RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), `"ok":true`)
		})
	}
}

func TestGateway_UnknownRoute(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/somewhere", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	rr := httptest.NewRecorder()
	gateway.NewGateway(services, mockClient).RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/menu/spice-route", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "bad_gateway")
}

func TestGateway_UpstreamStatusPassesThrough(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	resp := okResponse(`{"error":{"code":"variant_selection_required"}}`)
	resp.StatusCode = http.StatusUnprocessableEntity
	mockClient.On("Do", mock.Anything).Return(resp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/abc/cart/lines", strings.NewReader(`{"item_id":3}`))
	rr := httptest.NewRecorder()
	gateway.NewGateway(services, mockClient).RouteHandler(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "variant_selection_required")
}

func TestGateway_StreamsEvents(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		for i := 1; i <= 2; i++ {
			fmt.Fprintf(w, "event: order\ndata: {\"id\":%d}\n\n", i)
			w.(http.Flusher).Flush()
		}
	}))
	defer upstream.Close()

	gw := gateway.NewGateway(gateway.Config{NotifySvcURL: upstream.URL}, upstream.Client())
	front := httptest.NewServer(gw.SetupRoutes())
	defer front.Close()

	resp, err := http.Get(front.URL + "/api/restaurants/1/live")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "event: order\ndata: {\"id\":1}\n\nevent: order\ndata: {\"id\":2}\n\n", string(body))
}

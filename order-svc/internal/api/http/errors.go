package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"qr-dine/order-svc/internal/auth"
	"qr-dine/order-svc/internal/cart"
	"qr-dine/order-svc/internal/checkout"
	"qr-dine/order-svc/internal/domain"
	"qr-dine/order-svc/internal/service"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// writeJSON marshals v before the header is written. A value that cannot be
// encoded is answered with a 500.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Int("status", status).Msg("failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"internal","message":"internal server error"}}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

var statusByError = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{cart.ErrLineNotFound, http.StatusNotFound, "line_not_found"},
	{service.ErrUPINotConfigured, http.StatusNotFound, "upi_not_configured"},
	{domain.ErrDuplicate, http.StatusConflict, "duplicate"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{checkout.ErrInvalidTransition, http.StatusConflict, "invalid_checkout_step"},
	{service.ErrInvalidStatusTransition, http.StatusConflict, "invalid_status_transition"},
	{service.ErrCheckoutInFlight, http.StatusConflict, "checkout_in_flight"},
	{service.ErrCartLocked, http.StatusConflict, "cart_locked"},
	{service.ErrPaymentNotPending, http.StatusConflict, "payment_not_pending"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{auth.ErrInvalidToken, http.StatusUnauthorized, "unauthorized"},
}

// handleError maps service errors onto HTTP responses. Anything unrecognised
// is logged and reported as a 500 without details.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr checkout.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]errorBody{
			"error": {Code: "validation_error", Message: verr.Message, Field: verr.Field},
		})
		return
	}
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			writeError(w, m.status, m.code, err.Error())
			return
		}
	}
	log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	writeError(w, http.StatusInternalServerError, "internal", "internal server error")
}

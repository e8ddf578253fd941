package httpapi

import (
	"net/http"

	"qr-dine/order-svc/internal/domain"
	"qr-dine/order-svc/internal/service"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	var status domain.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, ok := domain.ParseOrderStatus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "validation_error", "unknown order status "+raw)
			return
		}
		status = parsed
	}
	orders, err := h.Orders.List(pathInt(r, "id"), status)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// createCounterOrder is the POS path: staff key in an order for a walk-in
// or a table, paid at the counter.
func (h *Handler) createCounterOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CounterOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	order, err := h.Orders.PlaceCounterOrder(r.Context(), pathInt(r, "id"), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	to, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		writeError(w, http.StatusBadRequest, "validation_error", "unknown order status "+req.Status)
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), pathInt(r, "id"), pathInt(r, "orderId"), to)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getRestaurantOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.loadRestaurantOrder(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) markBillPaid(w http.ResponseWriter, r *http.Request) {
	bill, err := h.Bills.MarkPaid(r.Context(), pathInt(r, "id"), pathInt(r, "orderId"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	status := domain.PaymentStatus(r.URL.Query().Get("status"))
	switch status {
	case "", domain.PaymentPending, domain.PaymentVerified, domain.PaymentFailed:
	default:
		writeError(w, http.StatusBadRequest, "validation_error", "unknown payment status "+string(status))
		return
	}
	payments, err := h.Payments.List(pathInt(r, "id"), status)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handler) verifyPayment(w http.ResponseWriter, r *http.Request) {
	h.reviewPayment(w, r, domain.PaymentVerified)
}

func (h *Handler) failPayment(w http.ResponseWriter, r *http.Request) {
	h.reviewPayment(w, r, domain.PaymentFailed)
}

func (h *Handler) reviewPayment(w http.ResponseWriter, r *http.Request, status domain.PaymentStatus) {
	payment, err := h.Payments.Review(r.Context(), pathInt(r, "id"), pathInt(r, "paymentId"), status)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"qr-dine/order-svc/internal/cart"
	"qr-dine/order-svc/internal/checkout"
	"qr-dine/order-svc/internal/domain"
	"qr-dine/order-svc/internal/service"
)

// getMenu is the diner landing page: restaurant header plus what can be
// ordered right now.
func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.GetBySlug(mux.Vars(r)["slug"])
	if err != nil {
		handleError(w, r, err)
		return
	}
	items, err := h.Menu.List(rest.ID, true)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant": rest,
		"items":      items,
	})
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TableID *int `json:"table_id"`
	}
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	if req.TableID == nil {
		if raw := r.URL.Query().Get("table"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "validation_error", "table must be a number")
				return
			}
			req.TableID = &id
		}
	}

	view, err := h.Sessions.Open(r.Context(), mux.Vars(r)["slug"], req.TableID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.Get(r.Context(), mux.Vars(r)["sid"])
	h.respondSession(w, r, view, err)
}

func (h *Handler) respondSession(w http.ResponseWriter, r *http.Request, view *service.SessionView, err error) {
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// addToCart answers 422 when the item needs a variant; the body carries the
// item so the client can show the picker and retry with one.
func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req service.AddToCartRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.Sessions.AddToCart(r.Context(), mux.Vars(r)["sid"], req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if result.Outcome == cart.VariantSelectionRequired {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error": errorBody{Code: string(cart.VariantSelectionRequired), Message: "choose a variant for this item"},
			"item":  result.Item,
		})
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) setLineQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	vars := mux.Vars(r)
	view, err := h.Sessions.SetQuantity(r.Context(), vars["sid"], vars["lineId"], req.Quantity)
	h.respondSession(w, r, view, err)
}

func (h *Handler) removeLine(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	view, err := h.Sessions.SetQuantity(r.Context(), vars["sid"], vars["lineId"], 0)
	h.respondSession(w, r, view, err)
}

func (h *Handler) proceed(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.Proceed(r.Context(), mux.Vars(r)["sid"])
	h.respondSession(w, r, view, err)
}

func (h *Handler) submitDetails(w http.ResponseWriter, r *http.Request) {
	var details checkout.CustomerDetails
	if !decodeJSON(w, r, &details) {
		return
	}
	view, err := h.Sessions.SubmitDetails(r.Context(), mux.Vars(r)["sid"], details)
	h.respondSession(w, r, view, err)
}

func (h *Handler) choosePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string `json:"method"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	method, ok := domain.ParsePaymentMethod(req.Method)
	if !ok {
		handleError(w, r, checkout.ErrInvalidPaymentMethod)
		return
	}
	view, err := h.Sessions.ChoosePayment(r.Context(), mux.Vars(r)["sid"], method)
	h.respondSession(w, r, view, err)
}

func (h *Handler) submitReference(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UTRReference string `json:"utr_reference"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.Sessions.SubmitReference(r.Context(), mux.Vars(r)["sid"], req.UTRReference)
	h.respondSession(w, r, view, err)
}

func (h *Handler) back(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.Back(r.Context(), mux.Vars(r)["sid"])
	h.respondSession(w, r, view, err)
}

func (h *Handler) cancelCheckout(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.CancelCheckout(r.Context(), mux.Vars(r)["sid"])
	h.respondSession(w, r, view, err)
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Close(r.Context(), mux.Vars(r)["sid"]); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sessionOrder limits diners to the orders their own session placed.
func (h *Handler) sessionOrder(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.Sessions.AuthorizeOrder(r.Context(), mux.Vars(r)["sid"], pathInt(r, "orderId")); err != nil {
			handleError(w, r, err)
			return
		}
		next(w, r)
	}
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(pathInt(r, "orderId"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// submitPayment records a UTR against an order that was placed without one
// reaching the cashier.
func (h *Handler) submitPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UTRReference string `json:"utr_reference"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	payment, err := h.Orders.SubmitPayment(r.Context(), pathInt(r, "orderId"), req.UTRReference)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handler) getBill(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.Bills.Receipt(pathInt(r, "orderId"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *Handler) getBillPDF(w http.ResponseWriter, r *http.Request) {
	orderID := pathInt(r, "orderId")
	var buf bytes.Buffer
	if err := h.Bills.WritePDF(orderID, &buf); err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="bill-%d.pdf"`, orderID))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) getUPIQRCode(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "amount must be a number")
		return
	}
	png, err := h.Restaurants.UPIQRCode(pathInt(r, "id"), amount)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writePNG(w, png)
}

package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"qr-dine/order-svc/internal/auth"
	"qr-dine/order-svc/internal/domain"
)

type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

type permission func(domain.Role) bool

func anyStaff(domain.Role) bool { return true }

func ownerOnly(r domain.Role) bool { return r == domain.RoleOwner }

// staff guards a route under /api/restaurants/{id}. The bearer token must
// belong to that restaurant and its role must pass allowed.
func (h *Handler) staff(allowed permission, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		claims, err := h.Tokens.Validate(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
			return
		}

		restaurantID, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil || !claims.CanAccess(restaurantID) {
			writeError(w, http.StatusForbidden, "forbidden", "token is not valid for this restaurant")
			return
		}
		if !allowed(claims.Role) {
			writeError(w, http.StatusForbidden, "forbidden", "role "+claims.Role.String()+" cannot do this")
			return
		}

		next(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	}
}

// restaurantOrder loads {orderId} and hides orders of other restaurants
// behind a 404. It runs after staff, which has already matched the token to
// {id}.
func (h *Handler) restaurantOrder(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.loadRestaurantOrder(w, r); ok {
			next(w, r)
		}
	}
}

func (h *Handler) loadRestaurantOrder(w http.ResponseWriter, r *http.Request) (*domain.Order, bool) {
	order, err := h.Orders.Get(pathInt(r, "orderId"))
	if err != nil {
		handleError(w, r, err)
		return nil, false
	}
	if order.RestaurantID != pathInt(r, "id") {
		handleError(w, r, domain.ErrNotFound)
		return nil, false
	}
	return order, true
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"qr-dine/analytics-svc/internal/domain"
	"qr-dine/analytics-svc/internal/service"
	"qr-dine/staffauth"
)

// Sales figures are for owners and managers only.
var reportRoles = []string{"owner", "manager"}

type Handler struct {
	Analytics service.AnalyticsInterface
	Tokens    *staffauth.Validator
}

func NewHandler(svc service.AnalyticsInterface, tokens *staffauth.Validator) *Handler {
	return &Handler{Analytics: svc, Tokens: tokens}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":    "healthy",
			"service":   "analytics-svc",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/analytics", h.Tokens.Protect(h.getSummary, reportRoles...)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/analytics/top-items", h.Tokens.Protect(h.getTopItems, reportRoles...)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/analytics/revenue", h.Tokens.Protect(h.getRevenue, reportRoles...)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/analytics/orders-by-status", h.Tokens.Protect(h.getOrdersByStatus, reportRoles...)).Methods("GET")
}

func restaurantID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.Summary(r.Context(), restaurantID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	switch period {
	case "":
		period = domain.PeriodAllTime
	case domain.PeriodToday, domain.PeriodAllTime:
	default:
		writeError(w, http.StatusBadRequest, "validation_error", "period must be today or all")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			writeError(w, http.StatusBadRequest, "validation_error", "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	items, err := h.Analytics.TopItems(r.Context(), restaurantID(r), period, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getRevenue(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", "days must be a number")
			return
		}
		days = parsed
	}

	revenue, err := h.Analytics.Revenue(r.Context(), restaurantID(r), days)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

func (h *Handler) getOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Analytics.OrdersByStatus(r.Context(), restaurantID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrInvalidRange) {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	log.Error().Err(err).Str("path", r.URL.Path).Msg("analytics query failed")
	writeError(w, http.StatusInternalServerError, "internal", "analytics are unavailable")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	encoded, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Int("status", status).Msg("failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"internal","message":"internal server error"}}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(encoded, '\n'))
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]map[string]string{
		"error": {"code": code, "message": message},
	})
}

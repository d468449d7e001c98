package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
	"github.com/marlonbarreto-git/tejaco-ledger/internal/engine"
	"github.com/marlonbarreto-git/tejaco-ledger/internal/store"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "remit_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "endpoint", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "remit_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "endpoint"})
)

type Handler struct {
	store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"}, "GET", "/health")
}

func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "System error listing users", "GET", "/users")
		return
	}
	h.respondJSON(w, http.StatusOK, users, "GET", "/users")
}

func (h *Handler) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/users/{id}/balance"
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("GET", endpoint))
	defer timer.ObserveDuration()

	user, err := h.store.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found", "GET", endpoint)
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", endpoint)
		return
	}

	homeCurrency := user.HomeCurrency
	if param := r.URL.Query().Get("homeCurrency"); param != "" {
		c := domain.Currency(param)
		if !c.Valid() {
			h.respondError(w, http.StatusBadRequest, "Unknown homeCurrency", "GET", endpoint)
			return
		}
		homeCurrency = c
	}

	transactions, err := h.store.ListTransactions(r.Context(), user.ID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", endpoint)
		return
	}

	summary := engine.Aggregate(transactions, homeCurrency)
	h.respondJSON(w, http.StatusOK, summary, "GET", endpoint)
}

func (h *Handler) GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/users/{id}/transactions"
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("GET", endpoint))
	defer timer.ObserveDuration()

	user, err := h.store.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found", "GET", endpoint)
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", endpoint)
		return
	}

	filter, errMsg := parseTransactionFilter(r.URL.Query())
	if errMsg != "" {
		h.respondError(w, http.StatusBadRequest, errMsg, "GET", endpoint)
		return
	}

	transactions, err := h.store.ListTransactions(r.Context(), user.ID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", endpoint)
		return
	}

	filtered, err := filter.apply(transactions)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Corrupt transaction timestamp", "GET", endpoint)
		return
	}

	timeline, err := engine.BuildTimeline(filtered, user.HomeCurrency)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Corrupt transaction timestamp", "GET", endpoint)
		return
	}
	h.respondJSON(w, http.StatusOK, timeline, "GET", endpoint)
}

// Helpers
func (h *Handler) respondJSON(w http.ResponseWriter, code int, payload interface{}, method, endpoint string) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(code)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) respondError(w http.ResponseWriter, code int, msg, method, endpoint string) {
	h.respondJSON(w, code, map[string]string{"error": msg}, method, endpoint)
}

// queryTimeLayouts accepts full timestamps and bare dates; a bare date
// means midnight UTC, so dateTo=2025-01-31 excludes later that day,
// matching inclusive comparison at the timestamp level.
var queryTimeLayouts = []string{time.RFC3339, "2006-01-02"}

func parseQueryTime(value string) (time.Time, error) {
	var err error
	for _, layout := range queryTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

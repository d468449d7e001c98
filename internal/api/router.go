package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the read API. All money endpoints live under /api/v1;
// /health and /metrics sit at the root for probes and scrapers.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", h.HealthCheckHandler).Methods("GET")

	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/users", h.ListUsersHandler).Methods("GET")
	apiV1.HandleFunc("/users/{id}/balance", h.GetBalanceHandler).Methods("GET")
	apiV1.HandleFunc("/users/{id}/transactions", h.GetTransactionsHandler).Methods("GET")
	return r
}

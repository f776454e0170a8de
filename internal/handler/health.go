package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthStatus struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// Status reports liveness and whether the content store answers a ping.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{Status: "ok", Store: "ok"}
	code := http.StatusOK

	err := h.db.PingContext(r.Context())
	if err != nil {
		slog.Error("health store ping failed", "error", err)
		status.Status = "degraded"
		status.Store = "unreachable"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	err = json.NewEncoder(w).Encode(status)
	if err != nil {
		slog.Error("health write failed", "error", err)
	}
}

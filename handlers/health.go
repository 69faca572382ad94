package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"

	"guildpulse/services"
)

// HealthHandler serves the liveness endpoint for deployment probes.
type HealthHandler struct {
	db             *sqlx.DB
	trackerService services.TrackerService
	version        string
}

func NewHealthHandler(db *sqlx.DB, trackerService services.TrackerService, version string) *HealthHandler {
	return &HealthHandler{
		db:             db,
		trackerService: trackerService,
		version:        version,
	}
}

func (h *HealthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	dbStatus := "ok"
	if err := h.db.PingContext(r.Context()); err != nil {
		log.Printf("❌ Health check database ping failed: %v", err)
		status = http.StatusServiceUnavailable
		dbStatus = "unavailable"
	}

	trackerStatus := "paused"
	if h.trackerService.IsRunning() {
		trackerStatus = "running"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":   http.StatusText(status),
		"database": dbStatus,
		"tracker":  trackerStatus,
		"version":  h.version,
	}); err != nil {
		log.Printf("❌ Failed to encode health response: %v", err)
	}
}

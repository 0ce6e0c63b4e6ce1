// Package handler provides HTTP handlers for the prediction API. The
// handlers validate request shapes; the prediction engine itself never
// re-validates (its preconditions are enforced here, at the boundary).
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fifa4x4/predictor-api/internal/api/respond"
	"github.com/fifa4x4/predictor-api/internal/cache"
	"github.com/fifa4x4/predictor-api/internal/config"
	"github.com/fifa4x4/predictor-api/internal/db"
	"github.com/fifa4x4/predictor-api/internal/remote"
	"github.com/fifa4x4/predictor-api/internal/subscription"
	"github.com/fifa4x4/predictor-api/internal/teams"
)

// Deps holds shared dependencies for all endpoint handlers.
type Deps struct {
	Pool      *db.Pool // may be nil when no database is configured
	Cache     *cache.Cache
	Config    *config.Config
	Predictor *remote.Client
	Store     *teams.Store
	Checker   *subscription.Checker
	Logger    *slog.Logger
}

// Handler serves all endpoints.
type Handler struct {
	deps Deps
}

// New creates a Handler with shared dependencies.
func New(deps Deps) *Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Handler{deps: deps}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "FIFA 4x4 Predictor API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.deps.Pool == nil {
		respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"database":  "not_configured",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	if err := h.deps.Pool.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.deps.Cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

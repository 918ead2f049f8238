package app

import (
	"context"
	"net/http"
	"time"

	apperrors "trainbook/pkg/errors"
	httputil "trainbook/pkg/http"
	"trainbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const readinessTimeout = 2 * time.Second

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store,omitempty"`
}

// ReadinessCheck reports whether the backing store can serve requests.
type ReadinessCheck func(ctx context.Context) error

type HealthHandler struct {
	store string
	check ReadinessCheck
	log   *logger.Logger
}

func NewHealthHandler(store string, check ReadinessCheck, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		store: store,
		check: check,
		log:   log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.check(ctx); err != nil {
		h.log.Error("Store health check failed",
			"store", h.store,
			"error", err,
			"path", r.URL.Path,
		)
		appErr := apperrors.Unavailable("Schedule store").WithDetails(map[string]any{"store": h.store})
		if writeErr := httputil.WriteError(w, appErr); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Ready", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ready",
		Store:  h.store,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}

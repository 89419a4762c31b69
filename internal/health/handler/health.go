package handler

import (
	"context"
	"net/http"
	"time"

	httputil "campusbook/pkg/http"
	"campusbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	mongo *mongo.Client
	log   *logger.Logger
}

func NewHealthHandler(mongoClient *mongo.Client, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		mongo: mongoClient,
		log:   log,
	}
}

// Liveness always reports healthy while the process can serve requests.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	h.writeStatus(w, http.StatusOK, "ok")
}

// Readiness pings the database; a failing ping takes the instance out of
// rotation without killing it.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.mongo.Ping(ctx, readpref.Primary()); err != nil {
		h.log.Warn("Readiness check failed", "error", err)
		h.writeStatus(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	h.writeStatus(w, http.StatusOK, "ok")
}

func (h *HealthHandler) writeStatus(w http.ResponseWriter, code int, status string) {
	if err := httputil.WriteJSON(w, code, map[string]string{"status": status}); err != nil {
		h.log.Error("failed to write health response", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Liveness)
	router.GET("/ready", h.Readiness)
}

package handler

import (
	"net/http"

	"campusbook/internal/availability/service"
	httputil "campusbook/pkg/http"
	"campusbook/pkg/interval"
	"campusbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type AvailabilityHandler struct {
	service service.AvailabilityService
	log     *logger.Logger
}

func NewAvailabilityHandler(service service.AvailabilityService, log *logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log,
	}
}

// Query handles GET /api/v1/availability. start_time and end_time are
// required RFC 3339 timestamps; exclude_event_id is optional and makes
// reschedule previews ignore the event being edited.
func (h *AvailabilityHandler) Query(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	window, err := interval.Parse(query.Get("start_time"), query.Get("end_time"))
	if err != nil {
		h.writeJSON(w, "Query", http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid time window: " + err.Error(),
		})
		return
	}

	availability, err := h.service.Query(r.Context(), window, query.Get("exclude_event_id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Query", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, availability); err != nil {
		h.log.Error("failed to write success response", "handler", "Query", "error", err)
	}
}

func (h *AvailabilityHandler) writeJSON(w http.ResponseWriter, handler string, status int, body any) {
	if err := httputil.WriteJSON(w, status, body); err != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "error", err)
	}
}

func (h *AvailabilityHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/availability", h.Query)
}

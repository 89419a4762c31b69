package handler

import (
	"encoding/json"
	"net/http"

	"campusbook/internal/catalog/service"
	httputil "campusbook/pkg/http"
	"campusbook/pkg/logger"
	"campusbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

func (h *CatalogHandler) CreateFacility(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var facility model.Facility
	if err := json.NewDecoder(r.Body).Decode(&facility); err != nil {
		h.writeJSON(w, "CreateFacility", http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if err := h.service.CreateFacility(r.Context(), &facility); err != nil {
		h.writeError(w, "CreateFacility", err)
		return
	}

	if err := httputil.WriteCreated(w, facility); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateFacility", "error", err)
	}
}

func (h *CatalogHandler) GetFacility(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	facility, err := h.service.GetFacility(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetFacility", err)
		return
	}

	if err := httputil.WriteSuccess(w, facility); err != nil {
		h.log.Error("failed to write success response", "handler", "GetFacility", "error", err)
	}
}

func (h *CatalogHandler) ListFacilities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	facilities, err := h.service.ListFacilities(r.Context())
	if err != nil {
		h.writeError(w, "ListFacilities", err)
		return
	}

	if err := httputil.WriteSuccess(w, facilities); err != nil {
		h.log.Error("failed to write success response", "handler", "ListFacilities", "error", err)
	}
}

func (h *CatalogHandler) UpdateFacility(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.FacilityUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeJSON(w, "UpdateFacility", http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	facility, err := h.service.UpdateFacility(r.Context(), ps.ByName("id"), &updates)
	if err != nil {
		h.writeError(w, "UpdateFacility", err)
		return
	}

	if err := httputil.WriteSuccess(w, facility); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateFacility", "error", err)
	}
}

func (h *CatalogHandler) DeleteFacility(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.DeleteFacility(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "DeleteFacility", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *CatalogHandler) CreateMedia(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var media model.MediaResource
	if err := json.NewDecoder(r.Body).Decode(&media); err != nil {
		h.writeJSON(w, "CreateMedia", http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if err := h.service.CreateMedia(r.Context(), &media); err != nil {
		h.writeError(w, "CreateMedia", err)
		return
	}

	if err := httputil.WriteCreated(w, media); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateMedia", "error", err)
	}
}

func (h *CatalogHandler) GetMedia(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	media, err := h.service.GetMedia(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetMedia", err)
		return
	}

	if err := httputil.WriteSuccess(w, media); err != nil {
		h.log.Error("failed to write success response", "handler", "GetMedia", "error", err)
	}
}

func (h *CatalogHandler) ListMedia(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	media, err := h.service.ListMedia(r.Context())
	if err != nil {
		h.writeError(w, "ListMedia", err)
		return
	}

	if err := httputil.WriteSuccess(w, media); err != nil {
		h.log.Error("failed to write success response", "handler", "ListMedia", "error", err)
	}
}

func (h *CatalogHandler) UpdateMedia(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.MediaResourceUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeJSON(w, "UpdateMedia", http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	media, err := h.service.UpdateMedia(r.Context(), ps.ByName("id"), &updates)
	if err != nil {
		h.writeError(w, "UpdateMedia", err)
		return
	}

	if err := httputil.WriteSuccess(w, media); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateMedia", "error", err)
	}
}

func (h *CatalogHandler) DeleteMedia(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.DeleteMedia(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "DeleteMedia", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *CatalogHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *CatalogHandler) writeJSON(w http.ResponseWriter, handler string, status int, body any) {
	if err := httputil.WriteJSON(w, status, body); err != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "error", err)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/facilities", h.ListFacilities)
	router.POST("/api/v1/facilities", h.CreateFacility)
	router.GET("/api/v1/facilities/id/:id", h.GetFacility)
	router.PATCH("/api/v1/facilities/id/:id", h.UpdateFacility)
	router.DELETE("/api/v1/facilities/id/:id", h.DeleteFacility)

	router.GET("/api/v1/media", h.ListMedia)
	router.POST("/api/v1/media", h.CreateMedia)
	router.GET("/api/v1/media/id/:id", h.GetMedia)
	router.PATCH("/api/v1/media/id/:id", h.UpdateMedia)
	router.DELETE("/api/v1/media/id/:id", h.DeleteMedia)
}

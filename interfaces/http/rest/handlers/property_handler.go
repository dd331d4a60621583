package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/services"
	apperrors "survey-backend/pkg/errors"
)

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	base
	service *services.PropertyService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(service *services.PropertyService, errors *apperrors.ErrorHandler, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{base: newBase(errors, logger), service: service}
}

// Routes mounts the handler under /properties
func (h *PropertyHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET /properties
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	params, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.service.List(r.Context(), params)
	respondPage(&h.base, w, r, page, err)
}

// Get handles GET /properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	respond(&h.base, w, r, http.StatusOK, "Property", p, err)
}

// Create handles POST /properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PropertyCreate
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.service.Create(r.Context(), &req)
	respond(&h.base, w, r, http.StatusCreated, "Property", p, err)
}

// Update handles PUT /properties/{id}
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.PropertyUpdate
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	respond(&h.base, w, r, http.StatusOK, "Property", p, err)
}

// Delete handles DELETE /properties/{id}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existed, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	h.respondDeleted(w, r, "Property", existed, err)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/services"
	apperrors "survey-backend/pkg/errors"
)

// TownshipHandler handles township-related HTTP requests
type TownshipHandler struct {
	base
	service *services.TownshipService
}

// NewTownshipHandler creates a new township handler
func NewTownshipHandler(service *services.TownshipService, errors *apperrors.ErrorHandler, logger *zap.Logger) *TownshipHandler {
	return &TownshipHandler{base: newBase(errors, logger), service: service}
}

// Routes mounts the handler under /townships
func (h *TownshipHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET /townships
func (h *TownshipHandler) List(w http.ResponseWriter, r *http.Request) {
	params, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.service.List(r.Context(), params)
	respondPage(&h.base, w, r, page, err)
}

// Get handles GET /townships/{id}
func (h *TownshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	respond(&h.base, w, r, http.StatusOK, "Township", t, err)
}

// Create handles POST /townships
func (h *TownshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TownshipCreate
	if !h.decode(w, r, &req) {
		return
	}
	t, err := h.service.Create(r.Context(), &req)
	respond(&h.base, w, r, http.StatusCreated, "Township", t, err)
}

// Update handles PUT /townships/{id}
func (h *TownshipHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.TownshipUpdate
	if !h.decode(w, r, &req) {
		return
	}
	t, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	respond(&h.base, w, r, http.StatusOK, "Township", t, err)
}

// Delete handles DELETE /townships/{id}
func (h *TownshipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existed, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	h.respondDeleted(w, r, "Township", existed, err)
}

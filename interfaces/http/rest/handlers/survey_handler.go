package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/services"
	apperrors "survey-backend/pkg/errors"
)

// SurveyHandler handles survey-related HTTP requests
type SurveyHandler struct {
	base
	service *services.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(service *services.SurveyService, errors *apperrors.ErrorHandler, logger *zap.Logger) *SurveyHandler {
	return &SurveyHandler{base: newBase(errors, logger), service: service}
}

// Routes mounts the handler under /surveys
func (h *SurveyHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET /surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	params, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.service.List(r.Context(), params)
	respondPage(&h.base, w, r, page, err)
}

// Get handles GET /surveys/{id}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	respond(&h.base, w, r, http.StatusOK, "Survey", s, err)
}

// Create handles POST /surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SurveyCreate
	if !h.decode(w, r, &req) {
		return
	}
	s, err := h.service.Create(r.Context(), &req)
	respond(&h.base, w, r, http.StatusCreated, "Survey", s, err)
}

// Update handles PUT /surveys/{id}
func (h *SurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.SurveyUpdate
	if !h.decode(w, r, &req) {
		return
	}
	s, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	respond(&h.base, w, r, http.StatusOK, "Survey", s, err)
}

// Delete handles DELETE /surveys/{id}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existed, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	h.respondDeleted(w, r, "Survey", existed, err)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/services"
	apperrors "survey-backend/pkg/errors"
)

// LookupHandler serves the survey type and survey status reference lists.
type LookupHandler struct {
	base
	service *services.LookupService
}

func NewLookupHandler(service *services.LookupService, errors *apperrors.ErrorHandler, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{base: newBase(errors, logger), service: service}
}

// Routes mounts the handler under /lookup
func (h *LookupHandler) Routes(r chi.Router) {
	r.Route("/survey-types", func(r chi.Router) {
		r.Get("/", h.ListSurveyTypes)
		r.Post("/", h.CreateSurveyType)
		r.Get("/{id}", h.GetSurveyType)
		r.Put("/{id}", h.UpdateSurveyType)
		r.Delete("/{id}", h.DeleteSurveyType)
	})
	r.Route("/survey-statuses", func(r chi.Router) {
		r.Get("/", h.ListSurveyStatuses)
		r.Post("/", h.CreateSurveyStatus)
		r.Get("/{id}", h.GetSurveyStatus)
		r.Put("/{id}", h.UpdateSurveyStatus)
		r.Delete("/{id}", h.DeleteSurveyStatus)
	})
}

func (h *LookupHandler) ListSurveyTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.SurveyTypes(r.Context())
	respondList(&h.base, w, r, types, err)
}

func (h *LookupHandler) GetSurveyType(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.SurveyType(r.Context(), chi.URLParam(r, "id"))
	respond(&h.base, w, r, http.StatusOK, "Survey type", t, err)
}

func (h *LookupHandler) CreateSurveyType(w http.ResponseWriter, r *http.Request) {
	var req dto.SurveyTypeCreate
	if !h.decode(w, r, &req) {
		return
	}
	t, err := h.service.CreateSurveyType(r.Context(), &req)
	respond(&h.base, w, r, http.StatusCreated, "Survey type", t, err)
}

func (h *LookupHandler) UpdateSurveyType(w http.ResponseWriter, r *http.Request) {
	var req dto.SurveyTypeUpdate
	if !h.decode(w, r, &req) {
		return
	}
	t, err := h.service.UpdateSurveyType(r.Context(), chi.URLParam(r, "id"), &req)
	respond(&h.base, w, r, http.StatusOK, "Survey type", t, err)
}

func (h *LookupHandler) DeleteSurveyType(w http.ResponseWriter, r *http.Request) {
	existed, err := h.service.DeleteSurveyType(r.Context(), chi.URLParam(r, "id"))
	h.respondDeleted(w, r, "Survey type", existed, err)
}

func (h *LookupHandler) ListSurveyStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.service.SurveyStatuses(r.Context())
	respondList(&h.base, w, r, statuses, err)
}

func (h *LookupHandler) GetSurveyStatus(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.SurveyStatus(r.Context(), chi.URLParam(r, "id"))
	respond(&h.base, w, r, http.StatusOK, "Survey status", s, err)
}

func (h *LookupHandler) CreateSurveyStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.SurveyStatusCreate
	if !h.decode(w, r, &req) {
		return
	}
	s, err := h.service.CreateSurveyStatus(r.Context(), &req)
	respond(&h.base, w, r, http.StatusCreated, "Survey status", s, err)
}

func (h *LookupHandler) UpdateSurveyStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.SurveyStatusUpdate
	if !h.decode(w, r, &req) {
		return
	}
	s, err := h.service.UpdateSurveyStatus(r.Context(), chi.URLParam(r, "id"), &req)
	respond(&h.base, w, r, http.StatusOK, "Survey status", s, err)
}

func (h *LookupHandler) DeleteSurveyStatus(w http.ResponseWriter, r *http.Request) {
	existed, err := h.service.DeleteSurveyStatus(r.Context(), chi.URLParam(r, "id"))
	h.respondDeleted(w, r, "Survey status", existed, err)
}

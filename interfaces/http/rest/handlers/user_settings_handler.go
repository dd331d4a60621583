package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/services"
	apperrors "survey-backend/pkg/errors"
)

// UserSettingsHandler serves the settings documents of the default user,
// addressed by settings type.
type UserSettingsHandler struct {
	base
	service *services.UserSettingsService
}

func NewUserSettingsHandler(service *services.UserSettingsService, errors *apperrors.ErrorHandler, logger *zap.Logger) *UserSettingsHandler {
	return &UserSettingsHandler{base: newBase(errors, logger), service: service}
}

// Routes mounts the handler under /user-settings
func (h *UserSettingsHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{type}", h.Get)
	r.Put("/{type}", h.Update)
	r.Put("/{type}/upsert", h.Upsert)
	r.Delete("/{type}", h.Delete)
}

func (h *UserSettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.List(r.Context())
	respondList(&h.base, w, r, all, err)
}

func (h *UserSettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.Get(r.Context(), chi.URLParam(r, "type"))
	respond(&h.base, w, r, http.StatusOK, "User settings", u, err)
}

// Create handles POST /user-settings; 409 when the type already exists.
func (h *UserSettingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.UserSettingsCreate
	if !h.decode(w, r, &req) {
		return
	}
	u, err := h.service.Create(r.Context(), &req)
	respond(&h.base, w, r, http.StatusCreated, "User settings", u, err)
}

func (h *UserSettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UserSettingsUpdate
	if !h.decode(w, r, &req) {
		return
	}
	u, err := h.service.Update(r.Context(), chi.URLParam(r, "type"), &req)
	respond(&h.base, w, r, http.StatusOK, "User settings", u, err)
}

// Upsert handles PUT /user-settings/{type}/upsert. The path names the type;
// the body only needs SettingsData.
func (h *UserSettingsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dto.UserSettingsCreate
	if !h.decode(w, r, &req) {
		return
	}
	req.SettingsType = chi.URLParam(r, "type")
	u, err := h.service.Upsert(r.Context(), &req)
	respond(&h.base, w, r, http.StatusOK, "User settings", u, err)
}

func (h *UserSettingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existed, err := h.service.Delete(r.Context(), chi.URLParam(r, "type"))
	h.respondDeleted(w, r, "User settings", existed, err)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/services"
	apperrors "survey-backend/pkg/errors"
)

// BoardHandler handles board configuration requests
type BoardHandler struct {
	base
	service *services.BoardService
}

func NewBoardHandler(service *services.BoardService, errors *apperrors.ErrorHandler, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{base: newBase(errors, logger), service: service}
}

// Routes mounts the handler under /board-configurations. The fixed paths
// are registered before /{id}.
func (h *BoardHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/default", h.Default)
	r.Get("/by-slug/{slug}", h.BySlug)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	boards, err := h.service.List(r.Context())
	respondList(&h.base, w, r, boards, err)
}

func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	respond(&h.base, w, r, http.StatusOK, "Board configuration", b, err)
}

func (h *BoardHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.BySlug(r.Context(), chi.URLParam(r, "slug"))
	respond(&h.base, w, r, http.StatusOK, "Board configuration", b, err)
}

func (h *BoardHandler) Default(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Default(r.Context())
	respond(&h.base, w, r, http.StatusOK, "Default board configuration", b, err)
}

func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BoardConfigurationCreate
	if !h.decode(w, r, &req) {
		return
	}
	b, err := h.service.Create(r.Context(), &req)
	respond(&h.base, w, r, http.StatusCreated, "Board configuration", b, err)
}

func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.BoardConfigurationUpdate
	if !h.decode(w, r, &req) {
		return
	}
	b, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	respond(&h.base, w, r, http.StatusOK, "Board configuration", b, err)
}

func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existed, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	h.respondDeleted(w, r, "Board configuration", existed, err)
}

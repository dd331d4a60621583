package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/services"
	apperrors "survey-backend/pkg/errors"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	base
	service *services.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service *services.CustomerService, errors *apperrors.ErrorHandler, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{base: newBase(errors, logger), service: service}
}

// Routes mounts the handler under /customers
func (h *CustomerHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET /customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	params, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.service.List(r.Context(), params)
	respondPage(&h.base, w, r, page, err)
}

// Get handles GET /customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	respond(&h.base, w, r, http.StatusOK, "Customer", c, err)
}

// Create handles POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CustomerCreate
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.service.Create(r.Context(), &req)
	respond(&h.base, w, r, http.StatusCreated, "Customer", c, err)
}

// Update handles PUT /customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.CustomerUpdate
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	respond(&h.base, w, r, http.StatusOK, "Customer", c, err)
}

// Delete handles DELETE /customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	existed, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	h.respondDeleted(w, r, "Customer", existed, err)
}

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/pkg/common"
	apperrors "survey-backend/pkg/errors"
)

// base carries what every resource handler needs.
type base struct {
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

func newBase(errors *apperrors.ErrorHandler, logger *zap.Logger) base {
	return base{errors: errors, logger: logger}
}

// decode parses the request body into v and reports a malformed body as a
// validation error.
func (b *base) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := common.ParseJSONBody(w, r, v, common.DefaultMaxBodyBytes); err != nil {
		b.errors.Handle(w, r, apperrors.NewValidationError("Invalid request body: "+err.Error()))
		return false
	}
	return true
}

// listParams builds the list window from skip, limit and search.
func (b *base) listParams(w http.ResponseWriter, r *http.Request) (dto.ListParams, bool) {
	q, invalid := common.ExtractListQuery(r)
	if invalid != nil {
		b.errors.Handle(w, r, apperrors.NewFieldValidationError(invalid))
		return dto.ListParams{}, false
	}
	return dto.NewListParams(q.Skip, q.Limit, q.Search), true
}

// respond writes entity with status, or 404 when it is nil.
func respond[T any](b *base, w http.ResponseWriter, r *http.Request, status int, resource string, entity *T, err error) {
	if err != nil {
		b.errors.Handle(w, r, err)
		return
	}
	if entity == nil {
		b.errors.Handle(w, r, apperrors.NewNotFoundError(resource))
		return
	}
	common.RespondJSON(w, status, entity)
}

// respondPage writes a list page with its total in the headers as well.
func respondPage[T any](b *base, w http.ResponseWriter, r *http.Request, page *dto.Page[T], err error) {
	if err != nil {
		b.errors.Handle(w, r, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(page.Total))
	w.Header().Set("X-Total-Pages", strconv.Itoa(common.CalculateTotalPages(page.Total, page.Size)))
	common.RespondJSON(w, http.StatusOK, page)
}

// respondList writes an unpaged collection.
func respondList[T any](b *base, w http.ResponseWriter, r *http.Request, items []*T, err error) {
	if err != nil {
		b.errors.Handle(w, r, err)
		return
	}
	if items == nil {
		items = []*T{}
	}
	common.RespondJSON(w, http.StatusOK, items)
}

// respondDeleted answers a delete: a message when the record existed,
// 404 otherwise.
func (b *base) respondDeleted(w http.ResponseWriter, r *http.Request, resource string, existed bool, err error) {
	if err != nil {
		b.errors.Handle(w, r, err)
		return
	}
	if !existed {
		b.errors.Handle(w, r, apperrors.NewNotFoundError(resource))
		return
	}
	common.RespondMessage(w, http.StatusOK, fmt.Sprintf("%s deleted successfully", resource))
}

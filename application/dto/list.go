// Package dto holds the input and output contracts of the application
// services: Create views with required fields, Update views where every
// field is optional, and the paged list envelope.
package dto

import (
	"survey-backend/pkg/utils"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// ListParams selects a window of a filtered collection.
type ListParams struct {
	Skip   int    `json:"skip" validate:"gte=0"`
	Limit  int    `json:"limit" validate:"gte=1,lte=1000"`
	Search string `json:"search,omitempty"`
}

// NewListParams applies the default limit when limit is zero.
func NewListParams(skip, limit int, search string) ListParams {
	if limit == 0 {
		limit = DefaultLimit
	}
	return ListParams{Skip: skip, Limit: limit, Search: search}
}

// Validate rejects a negative skip and a limit outside 1..1000.
func (p ListParams) Validate() error {
	return utils.ValidateStruct(p)
}

// Page is one window of a list. Page numbers start at 1.
type Page[T any] struct {
	Items []*T `json:"items"`
	Total int  `json:"total"`
	Page  int  `json:"page"`
	Size  int  `json:"size"`
}

// NewPage builds the envelope for the window p over total matches.
func NewPage[T any](items []*T, total int, p ListParams) *Page[T] {
	if items == nil {
		items = []*T{}
	}
	page := 1
	if p.Limit > 0 {
		page = p.Skip/p.Limit + 1
	}
	return &Page[T]{Items: items, Total: total, Page: page, Size: p.Limit}
}

// EmptyPage is the result shape of a failed list.
func EmptyPage[T any](p ListParams) *Page[T] {
	return NewPage[T](nil, 0, p)
}

package common

import (
	"net/http"
	"strconv"
)

// ListQuery holds the list parameters of a request.
type ListQuery struct {
	Skip   int
	Limit  int
	Search string
}

// ExtractListQuery reads skip, limit and search from the query string. A
// missing number is zero; a malformed one is reported by field name.
func ExtractListQuery(r *http.Request) (ListQuery, map[string]string) {
	q := r.URL.Query()
	var params ListQuery
	invalid := map[string]string{}

	// Extract skip
	if skip := q.Get("skip"); skip != "" {
		n, err := strconv.Atoi(skip)
		if err != nil {
			invalid["skip"] = "skip must be an integer"
		}
		params.Skip = n
	}

	// Extract limit
	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			invalid["limit"] = "limit must be an integer"
		}
		params.Limit = n
	}

	params.Search = q.Get("search")

	if len(invalid) == 0 {
		return params, nil
	}
	return params, invalid
}

// CalculateTotalPages calculates total number of pages
func CalculateTotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}

package pagination

import (
	"strconv"
)

// Limit bounds applied to every list endpoint.
const (
	MinPage      = 1
	MaxPage      = 1_000_000
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 12
)

// Page describes the navigation state of one page of results.
type Page struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Params are the coerced page/limit pair extracted from a request.
type Params struct {
	Page  int
	Limit int
}

// Paginate computes the navigation envelope for a page of results.
// totalPages is ceil(total/limit); an empty result set has zero pages
// and no next page.
func Paginate(page, limit int, total int64) Page {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Page{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Offset converts a page number to a row offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// Parse coerces raw query-string values into bounded pagination params.
// Missing or malformed values fall back to page 1 and the resource's
// default limit; limits are capped at MaxLimit and pages at MaxPage so
// the derived offset can never overflow.
func Parse(pageStr, limitStr string, defaultLimit int) Params {
	if defaultLimit < MinLimit || defaultLimit > MaxLimit {
		defaultLimit = DefaultLimit
	}

	page := MinPage
	if n, err := strconv.Atoi(pageStr); err == nil && n >= MinPage {
		page = n
	}
	if page > MaxPage {
		page = MaxPage
	}

	limit := defaultLimit
	if n, err := strconv.Atoi(limitStr); err == nil && n >= MinLimit {
		limit = n
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

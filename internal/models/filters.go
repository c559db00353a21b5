package models

import "strconv"

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	DefaultSortField = "createdAt"
)

var allowedSortFields = map[string]bool{
	"createdAt": true,
	"title":     true,
	"price":     true,
	"rating":    true,
}

// ListFilters are the pagination/filter parameters a list slice holds.
// Malformed values never error; they fall back to the nearest valid value so
// deep links with garbage query strings still render.
type ListFilters struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Sort     string `json:"sort"`
	Order    string `json:"order"`
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
}

func DefaultListFilters() ListFilters {
	return ListFilters{
		Page:  DefaultPage,
		Limit: DefaultLimit,
		Sort:  DefaultSortField,
		Order: OrderDesc,
	}
}

// Normalize clamps the filters into their valid ranges. Valid values pass
// through unchanged.
func (f ListFilters) Normalize() ListFilters {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	} else if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if !allowedSortFields[f.Sort] {
		f.Sort = DefaultSortField
	}
	if f.Order != OrderAsc && f.Order != OrderDesc {
		f.Order = OrderDesc
	}
	return f
}

// Query renders the filters as request query parameters.
func (f ListFilters) Query() map[string]string {
	q := map[string]string{
		"page":  strconv.Itoa(f.Page),
		"limit": strconv.Itoa(f.Limit),
		"sort":  f.Sort,
		"order": f.Order,
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Search != "" {
		q["search"] = f.Search
	}
	return q
}

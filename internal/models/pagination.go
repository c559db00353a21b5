package models

// MetaSource tags where pagination metadata came from. Server metadata is
// preferred; when the payload is partial the client computes a trivial
// fallback instead of failing the fetch.
type MetaSource string

const (
	MetaSourceServer   MetaSource = "server"
	MetaSourceComputed MetaSource = "computed"
)

// PageMeta is the wire shape of pagination metadata. Every field is optional
// because the backend is not guaranteed to send a complete block.
type PageMeta struct {
	CurrentPage *int   `json:"currentPage"`
	TotalPages  *int   `json:"totalPages"`
	TotalItems  *int64 `json:"totalItems"`
	HasNextPage *bool  `json:"hasNextPage"`
	HasPrevPage *bool  `json:"hasPrevPage"`
}

// Pagination is the resolved metadata a list slice stores.
type Pagination struct {
	Source      MetaSource `json:"source"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
	TotalItems  int64      `json:"totalItems"`
	PageSize    int        `json:"pageSize"`
	HasNextPage bool       `json:"hasNextPage"`
	HasPrevPage bool       `json:"hasPrevPage"`
}

// ResolvePagination turns a possibly partial wire meta block into resolved
// pagination. A block missing either currentPage or totalPages is treated as
// partial and replaced wholesale by the computed fallback.
func ResolvePagination(meta *PageMeta, itemCount, requestedPage, requestedLimit int) Pagination {
	if meta == nil || meta.CurrentPage == nil || meta.TotalPages == nil {
		return computedPagination(itemCount, requestedPage, requestedLimit)
	}

	p := Pagination{
		Source:      MetaSourceServer,
		CurrentPage: *meta.CurrentPage,
		TotalPages:  *meta.TotalPages,
		PageSize:    itemCount,
	}

	if meta.TotalItems != nil {
		p.TotalItems = *meta.TotalItems
	} else {
		p.TotalItems = int64(itemCount)
	}

	if meta.HasNextPage != nil {
		p.HasNextPage = *meta.HasNextPage
	} else {
		p.HasNextPage = p.CurrentPage < p.TotalPages
	}

	if meta.HasPrevPage != nil {
		p.HasPrevPage = *meta.HasPrevPage
	} else {
		p.HasPrevPage = p.CurrentPage > 1
	}

	return p
}

func computedPagination(itemCount, requestedPage, requestedLimit int) Pagination {
	if requestedPage < 1 {
		requestedPage = 1
	}

	return Pagination{
		Source:      MetaSourceComputed,
		CurrentPage: requestedPage,
		TotalPages:  requestedPage,
		TotalItems:  int64(itemCount),
		PageSize:    itemCount,
		HasNextPage: requestedLimit > 0 && itemCount == requestedLimit,
		HasPrevPage: requestedPage > 1,
	}
}

package domain

// Pagination is the metadata returned alongside a result page. Page and
// PageSize echo the request's normalized values; they are never
// re-derived from the returned documents.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPagination computes pagination metadata for a total match count.
// TotalPages is ceil(total/pageSize), and 0 when nothing matched.
func NewPagination(total int64, page, pageSize int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Skip returns the number of documents to skip for a 1-indexed page.
// Callers guarantee page >= 1 and pageSize >= 1; anything else is a
// programming error upstream, not a runtime condition handled here.
func Skip(page, pageSize int) int {
	return (page - 1) * pageSize
}

// HasNext reports whether a later page exists.
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

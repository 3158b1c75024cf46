package pagination

const (
	// DefaultPageSize applies when the caller omits or zeroes page size.
	DefaultPageSize = 10
	// MaxPageSize caps a single page regardless of what the caller asks for.
	MaxPageSize = 100
)

// Page is one window into an ordered collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

// Clamp normalizes raw page/pageSize query values.
func Clamp(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Offset converts a clamped page into a row offset.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// TotalPages derives the page count from the total row count.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 || p.TotalCount <= 0 {
		return 0
	}
	pages := p.TotalCount / p.PageSize
	if p.TotalCount%p.PageSize != 0 {
		pages++
	}
	return pages
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages()
}

// HasPrevious reports whether an earlier page exists.
func (p Page[T]) HasPrevious() bool {
	return p.Page > 1
}

// Meta is the non-generic paging envelope exposed to transports.
type Meta struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// Meta summarizes the page position.
func (p Page[T]) Meta() Meta {
	return Meta{
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalCount:  p.TotalCount,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
}

// Map converts a page of one item type into another, preserving paging state.
func Map[S, D any](src Page[S], fn func(S) D) Page[D] {
	items := make([]D, 0, len(src.Items))
	for _, item := range src.Items {
		items = append(items, fn(item))
	}
	return Page[D]{
		Items:      items,
		Page:       src.Page,
		PageSize:   src.PageSize,
		TotalCount: src.TotalCount,
	}
}

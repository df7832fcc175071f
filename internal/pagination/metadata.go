package pagination

import "math"

// Meta contains metadata about a rendered page.
type Meta struct {
	CurrentPage int      `json:"current_page" yaml:"current_page"`
	PageSize    int      `json:"page_size"    yaml:"page_size"`
	TotalPages  int      `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int      `json:"total_items"  yaml:"total_items"`
	HasPrevious bool     `json:"has_previous" yaml:"has_previous"`
	HasNext     bool     `json:"has_next"     yaml:"has_next"`
	Window      []string `json:"window"       yaml:"window"`
}

// NewMeta builds metadata for a zero-based page. CurrentPage is reported 1-based;
// it is 0 when there are no pages.
func NewMeta(page, pageSize, totalItems int) Meta {
	totalPages := PageCount(totalItems, pageSize)

	var currentPage int
	switch {
	case totalPages == 0:
		currentPage = 0
	case page == math.MaxInt:
		currentPage = page
	default:
		currentPage = page + 1
	}

	buttons := PageWindow(page, totalPages)
	window := make([]string, 0, len(buttons))
	for _, b := range buttons {
		window = append(window, b.Label())
	}

	return Meta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: page > 0,
		HasNext:     page < totalPages-1,
		Window:      window,
	}
}

package pagination

import "strconv"

// MaxButtons is the number of consecutive page buttons shown before truncation kicks in.
const MaxButtons = 7

// windowRadius is how many buttons sit on each side of the current page.
const windowRadius = MaxButtons / 2

// PageButton is one entry of a page window: either a zero-based page index or an ellipsis marker.
type PageButton struct {
	// Page is the zero-based page index. Meaningless when Ellipsis is set.
	Page int
	// Ellipsis marks skipped page indices.
	Ellipsis bool
}

// Label returns the text shown on the button: the 1-based page number or "...".
func (b PageButton) Label() string {
	if b.Ellipsis {
		return "..."
	}
	return strconv.Itoa(b.Page + 1)
}

// PageCount returns ceil(n/size). It is 0 when there are no items or the size is not positive.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	count := n / size
	if n%size != 0 {
		count++
	}
	return count
}

// VisibleSlice returns items[page*size:(page+1)*size] clipped to the slice bounds.
// An out-of-range page yields an empty slice.
func VisibleSlice[T any](items []T, page, size int) []T {
	// Bound the page before multiplying so huge pages cannot overflow.
	if page < 0 || page >= PageCount(len(items), size) {
		return []T{}
	}
	start := page * size
	end := min(start+size, len(items))
	return items[start:end:end]
}

// PageWindow returns the page buttons to render for the current page.
//
// With MaxButtons or fewer pages every index is returned. Otherwise a run of
// MaxButtons indices centred on current is clamped to the last page, and an
// ellipsis is added on each side that hides pages.
func PageWindow(current, pageCount int) []PageButton {
	if pageCount <= 0 {
		return nil
	}

	if pageCount <= MaxButtons {
		buttons := make([]PageButton, 0, pageCount)
		for i := range pageCount {
			buttons = append(buttons, PageButton{Page: i})
		}
		return buttons
	}

	current = max(current, 0)
	start := min(max(current-windowRadius, 0), pageCount-MaxButtons)
	end := start + MaxButtons - 1

	buttons := make([]PageButton, 0, MaxButtons+2)
	if start > 0 {
		buttons = append(buttons, PageButton{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		buttons = append(buttons, PageButton{Page: i})
	}
	if end < pageCount-1 {
		buttons = append(buttons, PageButton{Ellipsis: true})
	}
	return buttons
}

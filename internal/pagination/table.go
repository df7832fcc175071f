package pagination

// DefaultPageSize is the number of rows per page when none is configured.
const DefaultPageSize = 4

// Table is the filter/page state machine behind a single table view.
//
// It owns the current filter string and zero-based page index. Changing the
// filter always returns to the first page. SetPage does not clamp: callers are
// expected to offer only valid pages, and an out-of-range page simply renders
// no rows.
type Table[T Named] struct {
	records  []T
	filtered []T
	filter   string
	page     int
	pageSize int
}

// NewTable creates a Table over records. A non-positive pageSize falls back to DefaultPageSize.
func NewTable[T Named](records []T, pageSize int) *Table[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	t := &Table[T]{
		records:  records,
		pageSize: pageSize,
	}
	t.filtered = Filter(records, "")
	return t
}

// SetFilter replaces the filter string and resets to the first page.
func (t *Table[T]) SetFilter(query string) {
	t.filter = query
	t.filtered = Filter(t.records, query)
	t.page = 0
}

// SetRecords replaces the record set, keeping the current filter and resetting to the first page.
func (t *Table[T]) SetRecords(records []T) {
	t.records = records
	t.SetFilter(t.filter)
}

// SetPage moves to page without clamping.
func (t *Table[T]) SetPage(page int) {
	t.page = page
}

// HasPrevious reports whether the previous-page control is enabled.
func (t *Table[T]) HasPrevious() bool {
	return t.page > 0
}

// HasNext reports whether the next-page control is enabled.
func (t *Table[T]) HasNext() bool {
	return t.page < t.PageCount()-1
}

// Previous moves back one page when allowed and reports whether it moved.
func (t *Table[T]) Previous() bool {
	if !t.HasPrevious() {
		return false
	}
	t.page--
	return true
}

// Next moves forward one page when allowed and reports whether it moved.
func (t *Table[T]) Next() bool {
	if !t.HasNext() {
		return false
	}
	t.page++
	return true
}

// First moves to the first page.
func (t *Table[T]) First() {
	t.page = 0
}

// Last moves to the last page, or the first when there are no pages.
func (t *Table[T]) Last() {
	t.page = max(t.PageCount()-1, 0)
}

// Filter returns the current filter string.
func (t *Table[T]) Filter() string { return t.filter }

// Page returns the current zero-based page index.
func (t *Table[T]) Page() int { return t.page }

// PageSize returns the number of rows per page.
func (t *Table[T]) PageSize() int { return t.pageSize }

// Filtered returns the records that match the current filter.
func (t *Table[T]) Filtered() []T { return t.filtered }

// Len returns the number of records that match the current filter.
func (t *Table[T]) Len() int { return len(t.filtered) }

// PageCount returns the number of pages for the filtered records.
func (t *Table[T]) PageCount() int {
	return PageCount(len(t.filtered), t.pageSize)
}

// Visible returns the rows of the current page.
func (t *Table[T]) Visible() []T {
	return VisibleSlice(t.filtered, t.page, t.pageSize)
}

// Window returns the page buttons for the current page.
func (t *Table[T]) Window() []PageButton {
	return PageWindow(t.page, t.PageCount())
}

// Snapshot is an immutable view of a Table handed to renderers.
type Snapshot[T any] struct {
	Rows        []T
	Buttons     []PageButton
	Filter      string
	Page        int
	PageSize    int
	PageCount   int
	Total       int
	HasPrevious bool
	HasNext     bool
}

// Snapshot captures the current state for rendering.
func (t *Table[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Rows:        t.Visible(),
		Buttons:     t.Window(),
		Filter:      t.filter,
		Page:        t.page,
		PageSize:    t.pageSize,
		PageCount:   t.PageCount(),
		Total:       len(t.filtered),
		HasPrevious: t.HasPrevious(),
		HasNext:     t.HasNext(),
	}
}

// Meta returns pagination metadata for the current state.
func (t *Table[T]) Meta() Meta {
	return NewMeta(t.page, t.pageSize, len(t.filtered))
}

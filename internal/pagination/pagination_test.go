package pagination

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/endpointview/internal/record"
)

// namedRecords builds records named prefix0..prefix(n-1).
func namedRecords(prefix string, n int) []*record.Record {
	recs := make([]*record.Record, n)
	for i := range recs {
		recs[i] = &record.Record{Name: fmt.Sprintf("%s%d", prefix, i)}
	}
	return recs
}

func names(recs []*record.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.FilterName()
	}
	return out
}

// pages returns the page indices of a window with -1 standing in for ellipses.
func pages(buttons []PageButton) []int {
	out := make([]int, len(buttons))
	for i, b := range buttons {
		if b.Ellipsis {
			out[i] = -1
		} else {
			out[i] = b.Page
		}
	}
	return out
}

func TestFilter(t *testing.T) {
	recs := []*record.Record{
		{Name: "GetUser"},
		{Name: "listUsers"},
		{Name: "DeleteOrder"},
		nil,
		{Name: ""},
		{Name: "USERS_ADMIN"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query keeps all", query: "", want: []string{"GetUser", "listUsers", "DeleteOrder", "", "", "USERS_ADMIN"}},
		{name: "case insensitive", query: "user", want: []string{"GetUser", "listUsers", "USERS_ADMIN"}},
		{name: "upper query", query: "ORDER", want: []string{"DeleteOrder"}},
		{name: "no match", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(recs, tt.query)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilter_IsOrderedSubsequence(t *testing.T) {
	recs := namedRecords("a", 25)
	got := Filter(recs, "1")

	// a1, a10..a19, a21
	require.Len(t, got, 12)
	j := 0
	for _, r := range got {
		for j < len(recs) && recs[j] != r {
			j++
		}
		require.Less(t, j, len(recs), "filtered item %q not found in order", r.Name)
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	recs := namedRecords("a", 3)
	got := Filter(recs, "")
	got[0] = nil
	assert.NotNil(t, recs[0])
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{10, 4, 3},
		{48, 4, 12},
		{10, 0, 0},
		{-3, 4, 0},
		{10, math.MaxInt, 1},
		{math.MaxInt, 4, math.MaxInt/4 + 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.n, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.n, tt.size))
		})
	}
}

func TestVisibleSlice(t *testing.T) {
	recs := namedRecords("a", 10)

	assert.Equal(t, []string{"a0", "a1", "a2", "a3"}, names(VisibleSlice(recs, 0, 4)))
	assert.Equal(t, []string{"a4", "a5", "a6", "a7"}, names(VisibleSlice(recs, 1, 4)))
	assert.Equal(t, []string{"a8", "a9"}, names(VisibleSlice(recs, 2, 4)))
	assert.Empty(t, VisibleSlice(recs, 3, 4))
	assert.Empty(t, VisibleSlice(recs, -1, 4))
	assert.Empty(t, VisibleSlice(recs, 0, 0))
	assert.Empty(t, VisibleSlice([]*record.Record{}, 0, 4))
}

func TestVisibleSlice_HugePages(t *testing.T) {
	recs := namedRecords("a", 10)

	for _, page := range []int{math.MaxInt / 4, math.MaxInt/4 + 1, math.MaxInt/2 + 1, math.MaxInt - 1, math.MaxInt} {
		t.Run(fmt.Sprintf("page %d", page), func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Empty(t, VisibleSlice(recs, page, 4))
			})
		})
	}
	assert.Empty(t, VisibleSlice(recs, 1, math.MaxInt))
	assert.Equal(t, []string{"a0", "a1"}, names(VisibleSlice(recs[:2], 0, math.MaxInt)))
}

func TestTable_HugePage(t *testing.T) {
	tbl := NewTable(namedRecords("a", 10), 4)
	tbl.SetPage(math.MaxInt)

	snap := tbl.Snapshot()
	assert.Empty(t, snap.Rows)
	assert.Equal(t, []int{0, 1, 2}, pages(snap.Buttons))
	assert.False(t, snap.HasNext)
	assert.True(t, snap.HasPrevious)
}

func TestVisibleSlice_CannotGrowIntoNextPage(t *testing.T) {
	recs := namedRecords("a", 10)
	page := VisibleSlice(recs, 0, 4)
	page = append(page, &record.Record{Name: "x"})
	assert.Equal(t, "a4", recs[4].Name)
	assert.Len(t, page, 5)
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		pageCount int
		want      []int
	}{
		{name: "no pages", current: 0, pageCount: 0, want: []int{}},
		{name: "single page", current: 0, pageCount: 1, want: []int{0}},
		{name: "three pages", current: 2, pageCount: 3, want: []int{0, 1, 2}},
		{name: "exactly max buttons", current: 6, pageCount: 7, want: []int{0, 1, 2, 3, 4, 5, 6}},
		{name: "start of long list", current: 0, pageCount: 12, want: []int{0, 1, 2, 3, 4, 5, 6, -1}},
		{name: "still anchored at start", current: 3, pageCount: 12, want: []int{0, 1, 2, 3, 4, 5, 6, -1}},
		{name: "middle of long list", current: 5, pageCount: 12, want: []int{-1, 2, 3, 4, 5, 6, 7, 8, -1}},
		{name: "clamped to end", current: 8, pageCount: 12, want: []int{-1, 5, 6, 7, 8, 9, 10, 11}},
		{name: "last page", current: 11, pageCount: 12, want: []int{-1, 5, 6, 7, 8, 9, 10, 11}},
		{name: "eight pages at end", current: 7, pageCount: 8, want: []int{-1, 1, 2, 3, 4, 5, 6, 7}},
		{name: "current beyond range", current: 40, pageCount: 12, want: []int{-1, 5, 6, 7, 8, 9, 10, 11}},
		{name: "negative current", current: -2, pageCount: 12, want: []int{0, 1, 2, 3, 4, 5, 6, -1}},
		{name: "max int current", current: math.MaxInt, pageCount: 12, want: []int{-1, 5, 6, 7, 8, 9, 10, 11}},
		{name: "min int current", current: math.MinInt, pageCount: 12, want: []int{0, 1, 2, 3, 4, 5, 6, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pages(PageWindow(tt.current, tt.pageCount)))
		})
	}
}

func TestPageWindow_NeverExceedsBound(t *testing.T) {
	for pageCount := 0; pageCount <= 30; pageCount++ {
		for current := 0; current < max(pageCount, 1); current++ {
			buttons := PageWindow(current, pageCount)
			require.LessOrEqual(t, len(buttons), MaxButtons+2, "pageCount=%d current=%d", pageCount, current)

			var numbered int
			for _, b := range buttons {
				if !b.Ellipsis {
					numbered++
				}
			}
			require.Equal(t, min(pageCount, MaxButtons), numbered, "pageCount=%d current=%d", pageCount, current)
		}
	}
}

func TestPageButton_Label(t *testing.T) {
	assert.Equal(t, "1", PageButton{Page: 0}.Label())
	assert.Equal(t, "12", PageButton{Page: 11}.Label())
	assert.Equal(t, "...", PageButton{Ellipsis: true}.Label())
}

func TestTable_TenItems(t *testing.T) {
	tbl := NewTable(namedRecords("a", 10), 4)

	assert.Equal(t, 3, tbl.PageCount())
	assert.Equal(t, []string{"a0", "a1", "a2", "a3"}, names(tbl.Visible()))

	tbl.SetPage(2)
	assert.Equal(t, []string{"a8", "a9"}, names(tbl.Visible()))
	assert.Equal(t, []int{0, 1, 2}, pages(tbl.Window()))
}

func TestTable_FilterResetsPage(t *testing.T) {
	tbl := NewTable(namedRecords("a", 10), 4)
	tbl.SetPage(2)

	tbl.SetFilter("a")
	assert.Equal(t, 0, tbl.Page())
	assert.Equal(t, "a", tbl.Filter())

	tbl.SetPage(1)
	tbl.SetFilter("a")
	assert.Equal(t, 0, tbl.Page(), "setting the same filter still resets")
}

func TestTable_NoMatches(t *testing.T) {
	tbl := NewTable(namedRecords("a", 10), 4)
	tbl.SetFilter("zzz")

	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 0, tbl.PageCount())
	assert.Empty(t, tbl.Window())
	assert.Empty(t, tbl.Visible())
	assert.False(t, tbl.HasPrevious())
	assert.False(t, tbl.HasNext())
	assert.False(t, tbl.Next())
}

func TestTable_Navigation(t *testing.T) {
	tbl := NewTable(namedRecords("a", 10), 4)

	assert.False(t, tbl.HasPrevious())
	assert.False(t, tbl.Previous())
	assert.Equal(t, 0, tbl.Page())

	assert.True(t, tbl.Next())
	assert.True(t, tbl.Next())
	assert.Equal(t, 2, tbl.Page())
	assert.False(t, tbl.HasNext())
	assert.False(t, tbl.Next())
	assert.Equal(t, 2, tbl.Page())

	assert.True(t, tbl.Previous())
	assert.Equal(t, 1, tbl.Page())

	tbl.Last()
	assert.Equal(t, 2, tbl.Page())
	tbl.First()
	assert.Equal(t, 0, tbl.Page())
}

func TestTable_SetPageDoesNotClamp(t *testing.T) {
	tbl := NewTable(namedRecords("a", 10), 4)
	tbl.SetPage(9)

	assert.Equal(t, 9, tbl.Page())
	assert.Empty(t, tbl.Visible())
}

func TestTable_DefaultPageSize(t *testing.T) {
	tbl := NewTable(namedRecords("a", 10), 0)
	assert.Equal(t, DefaultPageSize, tbl.PageSize())
}

func TestTable_SetRecordsKeepsFilter(t *testing.T) {
	tbl := NewTable(namedRecords("a", 10), 4)
	tbl.SetFilter("b")
	tbl.SetRecords(namedRecords("b", 5))

	assert.Equal(t, 5, tbl.Len())
	assert.Equal(t, "b", tbl.Filter())
}

func TestTable_Snapshot(t *testing.T) {
	tbl := NewTable(namedRecords("a", 48), 4)
	tbl.SetPage(8)

	snap := tbl.Snapshot()
	assert.Equal(t, 8, snap.Page)
	assert.Equal(t, 12, snap.PageCount)
	assert.Equal(t, 48, snap.Total)
	assert.True(t, snap.HasPrevious)
	assert.True(t, snap.HasNext)
	assert.Equal(t, []string{"a32", "a33", "a34", "a35"}, names(snap.Rows))
	assert.Equal(t, []int{-1, 5, 6, 7, 8, 9, 10, 11}, pages(snap.Buttons))
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		size  int
		total int
		want  Meta
	}{
		{
			name: "first page", page: 0, size: 4, total: 10,
			want: Meta{CurrentPage: 1, PageSize: 4, TotalPages: 3, TotalItems: 10, HasNext: true,
				Window: []string{"1", "2", "3"}},
		},
		{
			name: "last page", page: 2, size: 4, total: 10,
			want: Meta{CurrentPage: 3, PageSize: 4, TotalPages: 3, TotalItems: 10, HasPrevious: true,
				Window: []string{"1", "2", "3"}},
		},
		{
			name: "empty", page: 0, size: 4, total: 0,
			want: Meta{PageSize: 4, Window: []string{}},
		},
		{
			name: "truncated", page: 8, size: 4, total: 48,
			want: Meta{CurrentPage: 9, PageSize: 4, TotalPages: 12, TotalItems: 48, HasPrevious: true, HasNext: true,
				Window: []string{"...", "6", "7", "8", "9", "10", "11", "12"}},
		},
		{
			name: "huge page", page: math.MaxInt - 1, size: 4, total: 48,
			want: Meta{CurrentPage: math.MaxInt, PageSize: 4, TotalPages: 12, TotalItems: 48, HasPrevious: true,
				Window: []string{"...", "6", "7", "8", "9", "10", "11", "12"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.page, tt.size, tt.total))
		})
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "zero value", params: Params{}},
		{name: "page and size", params: Params{Page: 3, PageSize: 10}},
		{name: "negative page", params: Params{Page: -1}, wantErr: ErrInvalidPage},
		{name: "page size too big", params: Params{PageSize: 1001}, wantErr: ErrInvalidPageSize},
		{name: "negative page size", params: Params{PageSize: -1}, wantErr: ErrInvalidPageSize},
		{name: "valid sort", params: Params{Sort: "service:desc"}},
		{name: "bad sort order", params: Params{Sort: "name:up"}, wantErr: ErrInvalidSortOrder},
		{name: "bad sort format", params: Params{Sort: "a:b:c"}, wantErr: ErrInvalidSortFormat},
		{name: "empty sort field", params: Params{Sort: ":asc"}, wantErr: ErrEmptySortField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParams_Derived(t *testing.T) {
	assert.Equal(t, 0, Params{}.PageIndex())
	assert.Equal(t, 2, Params{Page: 3}.PageIndex())
	assert.Equal(t, 7, Params{}.EffectivePageSize(7))
	assert.Equal(t, 5, Params{PageSize: 5}.EffectivePageSize(7))
	assert.Equal(t, DefaultPageSize, Params{}.EffectivePageSize(0))
}

func TestParseSort(t *testing.T) {
	field, order, err := ParseSort("name")
	require.NoError(t, err)
	assert.Equal(t, "name", field)
	assert.Equal(t, SortOrderAsc, order)

	field, order, err = ParseSort(" endpoint : DESC ")
	require.NoError(t, err)
	assert.Equal(t, "endpoint", field)
	assert.Equal(t, SortOrderDesc, order)
}

func TestSortRecords(t *testing.T) {
	recs := []*record.Record{
		{Name: "b", ServiceName: "users"},
		{Name: "A", ServiceName: "orders"},
		nil,
		{Name: "c", ServiceName: "orders"},
	}

	t.Run("by name asc", func(t *testing.T) {
		sorted, err := SortRecords(recs, "name", SortOrderAsc)
		require.NoError(t, err)
		assert.Equal(t, []string{"", "A", "b", "c"}, names(sorted))
	})

	t.Run("by service desc is stable", func(t *testing.T) {
		sorted, err := SortRecords(recs, "service", SortOrderDesc)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "A", "c", ""}, names(sorted))
	})

	t.Run("input untouched", func(t *testing.T) {
		_, err := SortRecords(recs, "name", SortOrderAsc)
		require.NoError(t, err)
		assert.Equal(t, "b", recs[0].Name)
	})

	t.Run("invalid field", func(t *testing.T) {
		_, err := SortRecords(recs, "colour", SortOrderAsc)
		assert.ErrorIs(t, err, ErrInvalidSortField)
	})
}

func TestApplySort(t *testing.T) {
	recs := namedRecords("a", 3)

	same, err := ApplySort(recs, "  ")
	require.NoError(t, err)
	assert.Equal(t, recs, same)

	sorted, err := ApplySort(recs, "name:desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a1", "a0"}, names(sorted))

	_, err = ApplySort(recs, "name:sideways")
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}

func TestValidSortFields(t *testing.T) {
	assert.Equal(t, []string{"action", "command", "endpoint", "name", "queue", "service"}, ValidSortFields())
}

package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/endpointview/internal/pagination"
	"github.com/rshade/endpointview/internal/record"
)

func namedRecords(n int) []*record.Record {
	recs := make([]*record.Record, n)
	for i := range recs {
		recs[i] = &record.Record{Name: fmt.Sprintf("a%d", i), Endpoint: fmt.Sprintf("/a/%d", i)}
	}
	return recs
}

func snapshotAt(n, page int) Page {
	tbl := pagination.NewTable(namedRecords(n), 4)
	tbl.SetPage(page)
	return tbl.Snapshot()
}

func TestPlainRenderer_Layout(t *testing.T) {
	recs := []*record.Record{
		{Name: "get_user", Endpoint: "/users", ServiceName: "users", RPCQueue: "q.users", RestAction: "read", HTTPCommand: "GET"},
		{Name: "ping", Endpoint: "/ping", HTTPCommand: "HEAD"},
	}
	snap := pagination.NewTable(recs, 4).Snapshot()

	want := strings.Join([]string{
		"Name      Endpoint  Service  Queue    Security  HttpCommands",
		"get_user  /users    users    q.users  read      GET",
		"ping      /ping" + strings.Repeat(" ", 33) + "HEAD",
		"",
		"2 records  [1]",
		"",
	}, "\n")

	assert.Equal(t, want, PlainRenderer{}.Render(snap))
}

func TestPlainRenderer_Empty(t *testing.T) {
	tbl := pagination.NewTable(namedRecords(10), 4)
	tbl.SetFilter("zzz")

	out := PlainRenderer{}.Render(tbl.Snapshot())
	assert.Contains(t, out, emptyTableText)
	assert.True(t, strings.HasSuffix(out, "\n0 records\n"), "no pager when there are no pages: %q", out)
}

func TestPlainRenderer_TruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", 60)
	snap := pagination.NewTable([]*record.Record{{Name: long}}, 4).Snapshot()

	out := PlainRenderer{}.Render(snap)
	assert.Contains(t, out, strings.Repeat("x", maxCellWidth-3)+"...")
	assert.NotContains(t, out, long)
}

func TestPlainPager(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want string
	}{
		{name: "first of three", page: snapshotAt(10, 0), want: "[1] 2 3 >"},
		{name: "middle of three", page: snapshotAt(10, 1), want: "< 1 [2] 3 >"},
		{name: "last of three", page: snapshotAt(10, 2), want: "< 1 2 [3]"},
		{name: "single page", page: snapshotAt(3, 0), want: "[1]"},
		{name: "no pages", page: snapshotAt(0, 0), want: ""},
		{name: "truncated window", page: snapshotAt(48, 8), want: "< ... 6 7 8 [9] 10 11 12 >"},
		{name: "both ellipses", page: snapshotAt(48, 5), want: "< ... 3 4 5 [6] 7 8 9 ... >"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainPager(tt.page))
		})
	}
}

func TestRecordCount(t *testing.T) {
	assert.Equal(t, "0 records", RecordCount(0))
	assert.Equal(t, "4 records", RecordCount(4))
	assert.Equal(t, "1,204 records", RecordCount(1204))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "ab", truncate("abcdefgh", 2))
	assert.Equal(t, "日本...", truncate("日本語のテキスト", 5))
}

func TestStyledRenderer(t *testing.T) {
	out := StyledRenderer{Width: 100}.Render(snapshotAt(10, 1))

	for _, col := range record.Columns {
		assert.Contains(t, out, col)
	}
	assert.Contains(t, out, "a4")
	assert.Contains(t, out, "a7")
	assert.NotContains(t, out, "a8")
	assert.Contains(t, out, "10 records")
}

func TestStyledRenderer_Empty(t *testing.T) {
	out := StyledRenderer{}.Render(snapshotAt(0, 0))
	assert.Contains(t, out, emptyTableText)
	assert.Contains(t, out, "0 records")
}

func TestStyledPager(t *testing.T) {
	assert.Empty(t, StyledPager(snapshotAt(0, 0)))

	out := StyledPager(snapshotAt(48, 8))
	for _, label := range []string{"‹", "...", "6", "9", "12", "›"} {
		assert.Contains(t, out, label)
	}
}

func TestFooter_SpreadsToWidth(t *testing.T) {
	snap := snapshotAt(10, 0)
	footer := Footer(snap, 80)
	assert.True(t, strings.HasPrefix(footer, "10 records"))
	assert.Contains(t, footer, "›")

	assert.Equal(t, "0 records", Footer(snapshotAt(0, 0), 80))
}

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name string
		tty  bool
		opts ModeOptions
		want OutputMode
	}{
		{name: "pipe", tty: false, want: OutputModePlain},
		{name: "pipe ignores interactive", tty: false, opts: ModeOptions{NoColor: false}, want: OutputModePlain},
		{name: "terminal", tty: true, want: OutputModeInteractive},
		{name: "forced plain", tty: true, opts: ModeOptions{Plain: true}, want: OutputModePlain},
		{name: "no interactive", tty: true, opts: ModeOptions{NoInteractive: true}, want: OutputModeStyled},
		{name: "no interactive no color", tty: true, opts: ModeOptions{NoInteractive: true, NoColor: true}, want: OutputModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectOutputMode(tt.tty, tt.opts))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(42).String())
}

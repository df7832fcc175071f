package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/endpointview/internal/pagination"
	"github.com/rshade/endpointview/internal/record"
)

// Page is the snapshot every renderer draws from.
type Page = pagination.Snapshot[*record.Record]

// Renderer turns a table snapshot into printable text.
type Renderer interface {
	Render(page Page) string
}

const (
	// maxCellWidth caps a single cell in static output.
	maxCellWidth   = 40
	truncateSuffix = "..."
	columnGap      = "  "
	emptyTableText = "(no records)"
)

// countPrinter formats record counts with thousands separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var countPrinter = message.NewPrinter(language.English)

// RecordCount returns the footer count text, e.g. "1,204 records".
func RecordCount(n int) string {
	return countPrinter.Sprintf("%d records", n)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= len(truncateSuffix) {
		return string(r[:n])
	}
	return string(r[:n-len(truncateSuffix)]) + truncateSuffix
}

// padRight pads s with spaces to display width w.
func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// PlainRenderer renders fixed-width text without colour.
type PlainRenderer struct{}

// Render draws the header, the page rows and a footer with the record count and pager.
func (PlainRenderer) Render(p Page) string {
	rows := make([][]string, 0, len(p.Rows)+1)
	rows = append(rows, record.Columns)
	for _, r := range p.Rows {
		cells := r.Cells()
		for i := range cells {
			cells[i] = truncate(cells[i], maxCellWidth)
		}
		rows = append(rows, cells)
	}

	widths := make([]int, len(record.Columns))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		padded := make([]string, len(row))
		for i, cell := range row {
			padded[i] = padRight(cell, widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(padded, columnGap), " "))
		sb.WriteString("\n")
	}
	if len(p.Rows) == 0 {
		sb.WriteString(emptyTableText + "\n")
	}

	sb.WriteString("\n")
	footer := RecordCount(p.Total)
	if pager := PlainPager(p); pager != "" {
		footer += columnGap + pager
	}
	sb.WriteString(footer + "\n")
	return sb.String()
}

// PlainPager renders the page controls as text, e.g. "< 1 [2] 3 >".
// Disabled arrows are omitted and the current page is bracketed.
func PlainPager(p Page) string {
	if len(p.Buttons) == 0 {
		return ""
	}

	parts := make([]string, 0, len(p.Buttons)+2)
	if p.HasPrevious {
		parts = append(parts, "<")
	}
	for _, b := range p.Buttons {
		label := b.Label()
		if !b.Ellipsis && b.Page == p.Page {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	if p.HasNext {
		parts = append(parts, ">")
	}
	return strings.Join(parts, " ")
}

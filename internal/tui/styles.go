package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/endpointview/internal/record"
)

// Colours taken from the page control of the web table.
const (
	colorActive   = lipgloss.Color("#4763E4")
	colorActiveFg = lipgloss.Color("#FFFFFF")
	colorBorder   = lipgloss.Color("240")
	colorCommand  = lipgloss.Color("#5C73DB")
	colorSelectFg = lipgloss.Color("229")
	colorSelectBg = lipgloss.Color("57")
	colorError    = lipgloss.Color("196")
)

//nolint:gochecknoglobals // Shared read-only styles.
var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	commandStyle  = cellStyle.Foreground(colorCommand)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeStyle   = buttonStyle.Background(colorActive).Foreground(colorActiveFg).Bold(true)
	disabledStyle = buttonStyle.Faint(true)
	selectedStyle = lipgloss.NewStyle().Foreground(colorSelectFg).Background(colorSelectBg)
	footerStyle   = lipgloss.NewStyle().MarginTop(1)
	filterStyle   = lipgloss.NewStyle().MarginBottom(1)
	helpStyle     = lipgloss.NewStyle().Faint(true).MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).MarginTop(1)
)

// commandColumn is the index of the HttpCommands column.
const commandColumn = 5

// StyledRenderer renders a bordered Lip Gloss table sized to Width.
type StyledRenderer struct {
	Width int
}

// Render draws the table and footer.
func (s StyledRenderer) Render(p Page) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(record.Columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == commandColumn:
				return commandStyle
			default:
				return cellStyle
			}
		})

	for _, r := range p.Rows {
		cells := r.Cells()
		for i := range cells {
			cells[i] = truncate(cells[i], maxCellWidth)
		}
		t.Row(cells...)
	}

	body := t.Render()
	if len(p.Rows) == 0 {
		body += "\n" + cellStyle.Render(emptyTableText)
	}

	width := s.Width
	if width <= 0 {
		width = lipgloss.Width(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footerStyle.Render(Footer(p, width))) + "\n"
}

// StyledPager renders the previous/next controls and page buttons.
func StyledPager(p Page) string {
	if len(p.Buttons) == 0 {
		return ""
	}

	parts := make([]string, 0, len(p.Buttons)+2)
	parts = append(parts, arrow("‹", p.HasPrevious))
	for _, b := range p.Buttons {
		if !b.Ellipsis && b.Page == p.Page {
			parts = append(parts, activeStyle.Render(b.Label()))
			continue
		}
		parts = append(parts, buttonStyle.Render(b.Label()))
	}
	parts = append(parts, arrow("›", p.HasNext))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func arrow(label string, enabled bool) string {
	if enabled {
		return buttonStyle.Render(label)
	}
	return disabledStyle.Render(label)
}

// Footer places the record count on the left and the pager on the right of width columns.
func Footer(p Page, width int) string {
	left := RecordCount(p.Total)
	right := StyledPager(p)
	if right == "" {
		return left
	}
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), len(columnGap))
	return left + strings.Repeat(" ", gap) + right
}

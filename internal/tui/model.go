package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/endpointview/internal/logging"
	"github.com/rshade/endpointview/internal/pagination"
	"github.com/rshade/endpointview/internal/record"
	listview "github.com/rshade/endpointview/internal/tui/list"
)

// ViewState is the screen the interactive table is showing.
type ViewState int

const (
	// ViewStateList shows the table.
	ViewStateList ViewState = iota
	// ViewStateDetail shows one record.
	ViewStateDetail
	// ViewStateQuitting is set once the user quits.
	ViewStateQuitting
)

const (
	defaultWidth         = 120
	defaultHeight        = 24
	filterInputCharLimit = 128
	filterInputWidth     = 40
	filterPlaceholder    = "Filter by name"

	// Interactive column widths.
	colWidthName     = 24
	colWidthEndpoint = 28
	colWidthService  = 14
	colWidthQueue    = 16
	colWidthSecurity = 10
	colWidthCommand  = 12
)

// interactiveWidths lists column widths in record.Columns order.
//
//nolint:gochecknoglobals // Read-only layout table.
var interactiveWidths = []int{
	colWidthName, colWidthEndpoint, colWidthService,
	colWidthQueue, colWidthSecurity, colWidthCommand,
}

// formatRow lays out cells in fixed-width interactive columns.
func formatRow(cells []string) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = padRight(truncate(cell, interactiveWidths[i]), interactiveWidths[i])
	}
	return strings.Join(padded, columnGap)
}

// renderRow renders one record for the interactive list.
func renderRow(r *record.Record, selected bool) string {
	row := formatRow(r.Cells())
	if selected {
		return selectedStyle.Render(row)
	}
	return row
}

// TableModel is the Bubble Tea model for the interactive endpoint table.
type TableModel struct {
	state ViewState
	table *pagination.Table[*record.Record]
	rows  *listview.RowListModel[*record.Record]
	input textinput.Model

	filtering bool
	width     int
	height    int

	reloads   <-chan record.ReloadResult
	reloadErr error

	logger zerolog.Logger
}

// recordsReloadedMsg carries records re-read from disk.
type recordsReloadedMsg record.ReloadResult

// NewTableModel creates an interactive table over records with the given page size.
// The logger is taken from ctx.
func NewTableModel(ctx context.Context, records []*record.Record, pageSize int) *TableModel {
	ti := textinput.New()
	ti.Placeholder = filterPlaceholder
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth

	m := &TableModel{
		state:  ViewStateList,
		table:  pagination.NewTable(records, pageSize),
		input:  ti,
		width:  defaultWidth,
		height: defaultHeight,
		logger: logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
	}
	m.rows = listview.NewRowListModel(m.table.Visible(), renderRow)
	return m
}

// WithReloads makes the model replace its records with each result received on ch.
// The filter is kept, and so is the page unless the new records have fewer pages.
func (m *TableModel) WithReloads(ch <-chan record.ReloadResult) *TableModel {
	m.reloads = ch
	return m
}

// Init initializes the model.
func (m *TableModel) Init() tea.Cmd {
	return m.waitForReload()
}

func (m *TableModel) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return recordsReloadedMsg(res)
	}
}

func (m *TableModel) applyReload(msg recordsReloadedMsg) {
	if msg.Err != nil {
		m.reloadErr = msg.Err
		m.logger.Warn().Err(msg.Err).Msg("reloading records failed; keeping previous records")
		return
	}
	m.reloadErr = nil
	page := m.table.Page()
	m.table.SetRecords(msg.Records)
	if last := m.table.PageCount() - 1; page > last {
		page = max(last, 0)
	}
	m.table.SetPage(page)
	m.rows.SetItems(m.table.Visible())
	m.logger.Debug().Int("records", len(msg.Records)).Msg("records reloaded")
}

// Update handles messages and updates the model state.
func (m *TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		return m, nil
	}

	if reloadMsg, ok := msg.(recordsReloadedMsg); ok {
		m.applyReload(reloadMsg)
		return m, m.waitForReload()
	}

	if m.filtering {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *TableModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.filtering = false
			m.input.Blur()
			return m, nil
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.setFilter(after)
	}
	return m, cmd
}

//nolint:gocognit,cyclop // Key dispatch for the list view is a flat switch.
func (m *TableModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keySlash:
		m.filtering = true
		return m, m.input.Focus()
	case keyEsc:
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.setFilter("")
		}
		return m, nil
	case keyEnter:
		if m.rows.SelectedItem() != nil {
			m.state = ViewStateDetail
		}
		return m, nil
	case keyLeft, keyH:
		if m.table.Previous() {
			m.pageChanged()
		}
		return m, nil
	case keyRight, keyL:
		if m.table.Next() {
			m.pageChanged()
		}
		return m, nil
	case keyHome, keyG:
		m.table.First()
		m.pageChanged()
		return m, nil
	case keyEnd, keyShiftG:
		m.table.Last()
		m.pageChanged()
		return m, nil
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.jumpToButton(int(key[0] - '1'))
			return m, nil
		}
	}

	updated, cmd := m.rows.Update(msg)
	if rl, ok := updated.(*listview.RowListModel[*record.Record]); ok {
		m.rows = rl
	}
	return m, cmd
}

func (m *TableModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc, keyEnter:
			m.state = ViewStateList
		}
	}
	return m, nil
}

// jumpToButton moves to the n-th numbered button of the current page window.
// Ellipsis markers are skipped when counting.
func (m *TableModel) jumpToButton(n int) {
	var i int
	for _, b := range m.table.Window() {
		if b.Ellipsis {
			continue
		}
		if i == n {
			m.table.SetPage(b.Page)
			m.pageChanged()
			return
		}
		i++
	}
}

func (m *TableModel) setFilter(query string) {
	m.table.SetFilter(query)
	m.logger.Debug().Str("filter", query).Int("matches", m.table.Len()).Msg("filter changed")
	m.rows.SetItems(m.table.Visible())
}

func (m *TableModel) pageChanged() {
	m.logger.Debug().Int("page", m.table.Page()).Msg("page changed")
	m.rows.SetItems(m.table.Visible())
}

// SetFilter applies query as if it had been typed into the filter box.
func (m *TableModel) SetFilter(query string) {
	m.input.SetValue(query)
	m.setFilter(query)
}

// SetPage moves to a zero-based page without clamping.
func (m *TableModel) SetPage(page int) {
	m.table.SetPage(page)
	m.pageChanged()
}

// State returns the current view state.
func (m *TableModel) State() ViewState { return m.state }

// Snapshot returns the table state being displayed.
func (m *TableModel) Snapshot() Page { return m.table.Snapshot() }

// ReloadErr returns the error of the last failed reload, if the most recent one failed.
func (m *TableModel) ReloadErr() error { return m.reloadErr }

// Filtering reports whether the filter box has focus.
func (m *TableModel) Filtering() bool { return m.filtering }

// SelectedRecord returns the highlighted record, or nil when the page is empty.
func (m *TableModel) SelectedRecord() *record.Record {
	if item := m.rows.SelectedItem(); item != nil {
		return *item
	}
	return nil
}

// View renders the current view.
func (m *TableModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		if r := m.SelectedRecord(); r != nil {
			return RenderRecordDetail(r)
		}
		return ""
	default:
		return m.renderListView()
	}
}

func (m *TableModel) renderListView() string {
	filterLine := "Filter: " + m.input.View()

	header := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true).
		Render(formatRow(record.Columns))

	body := m.rows.View()
	if body == "" {
		body = emptyTableText
	}

	snap := m.table.Snapshot()
	parts := []string{
		filterStyle.Render(filterLine),
		header,
		body,
		footerStyle.Render(Footer(snap, m.width)),
	}
	if m.reloadErr != nil {
		parts = append(parts, errorStyle.Render("Reload failed: "+m.reloadErr.Error()))
	}
	parts = append(parts, helpStyle.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderRecordDetail renders every field of a single record.
func RenderRecordDetail(r *record.Record) string {
	if r == nil {
		r = &record.Record{}
	}
	role := r.MinRoleString()
	if role == "" {
		role = "-"
	}

	var sb strings.Builder
	sb.WriteString("ENDPOINT DETAIL\n")
	sb.WriteString("===============\n\n")
	fmt.Fprintf(&sb, "Name:         %s\n", r.FilterName())
	fmt.Fprintf(&sb, "Endpoint:     %s\n", r.Endpoint)
	fmt.Fprintf(&sb, "Service:      %s\n", r.ServiceName)
	fmt.Fprintf(&sb, "Queue:        %s\n", r.RPCQueue)
	fmt.Fprintf(&sb, "Security:     %s\n", r.RestAction)
	fmt.Fprintf(&sb, "HttpCommand:  %s\n", r.HTTPCommand)
	fmt.Fprintf(&sb, "Min role:     %s\n", role)
	sb.WriteString("\n[Esc] Back to list  [q] Quit")
	return sb.String()
}

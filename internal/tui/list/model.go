package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc is a function that renders an item.
// The selected parameter indicates whether this item is currently selected.
type RenderFunc[T any] func(item T, selected bool) string

// RowListModel is a selectable list of rows.
type RowListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	selected   int
}

// NewRowListModel creates a list over items with the first row selected.
func NewRowListModel[T any](items []T, renderFunc RenderFunc[T]) *RowListModel[T] {
	return &RowListModel[T]{
		items:      items,
		renderFunc: renderFunc,
	}
}

// Init initializes the model (required for tea.Model interface).
func (m *RowListModel[T]) Init() tea.Cmd {
	return nil
}

// Update moves the selection on up/down and j/k.
//
//nolint:exhaustive // Only navigation keys are handled; everything else belongs to the parent.
func (m *RowListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyRunes:
		if len(keyMsg.Runes) > 0 {
			switch keyMsg.Runes[0] {
			case 'k':
				m.move(-1)
			case 'j':
				m.move(1)
			}
		}
	}

	return m, nil
}

func (m *RowListModel[T]) move(delta int) {
	m.SetSelected(m.selected + delta)
}

// SetItems replaces the rows and selects the first one.
func (m *RowListModel[T]) SetItems(items []T) {
	m.items = items
	m.selected = 0
}

// View renders every row, one per line.
func (m *RowListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	lines := make([]string, len(m.items))
	for i, item := range m.items {
		lines[i] = m.renderFunc(item, i == m.selected)
	}
	return strings.Join(lines, "\n")
}

// ItemCount returns the number of rows.
func (m *RowListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the selected row index.
func (m *RowListModel[T]) Selected() int {
	return m.selected
}

// SetSelected sets the selected row index, capping to valid bounds.
func (m *RowListModel[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
}

// SelectedItem returns the selected row, or nil when the list is empty.
func (m *RowListModel[T]) SelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}

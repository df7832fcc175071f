// Package listview provides a selectable row list for Bubble Tea TUI applications.
//
// The list holds the rows of one table page and tracks which row is selected.
// It handles up/down (and j/k) navigation and renders each row through a
// caller-supplied RenderFunc, so styling stays with the caller.
package listview

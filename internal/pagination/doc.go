// Package pagination implements the filter and paging core of the endpoint table.
//
// The package is pure computation with no rendering concerns:
//   - Filter: case-insensitive substring match on a record's name
//   - PageCount, VisibleSlice, PageWindow: page arithmetic and the bounded button window
//   - Table: the filter/page state machine owned by a single view
//   - Params, Sorter, Meta: CLI flag validation, ordering and result metadata
//
// Renderers consume a Snapshot taken from a Table and never mutate it.
package pagination

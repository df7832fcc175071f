// Package tui renders endpoint tables for the terminal.
//
// Rendering is kept behind the Renderer interface and works only from a
// pagination snapshot, so the filter and page logic never depends on how a
// table is drawn. Three presentations are provided:
//   - PlainRenderer: fixed-width text for pipes and dumb terminals
//   - StyledRenderer: a bordered Lip Gloss table printed once
//   - TableModel: an interactive Bubble Tea view with live filtering
package tui

package grid

import "github.com/tideterm/tideterm"

// Row is a single row of cells plus the two bits of metadata the renderer
// and URL scanner need: whether any contained cell is dirty, and whether
// the row ends in a hard newline (Linebreak) rather than a soft wrap.
//
// Invariant (spec.md §3): if any cell in a Row has Clean==false, that Row
// must have Dirty==true before the next frame. MarkDirty keeps that true
// for every mutator in this package; callers outside grid that poke cells
// directly (the escape-sequence parser, package vt) must call MarkDirty
// themselves after mutating a cell.
type Row struct {
	Cells     []tideterm.Cell
	Dirty     bool
	Linebreak bool
}

// NewRow allocates a row of the given width, filled with the given default
// cell (already Clean=false, so it draws on the first frame; Dirty starts
// true to match, preserving the invariant below from construction).
func NewRow(cols int, def tideterm.Cell) *Row {
	cells := make([]tideterm.Cell, cols)
	for i := range cells {
		cells[i] = def
	}
	return &Row{Cells: cells, Dirty: true}
}

// MarkDirty sets Dirty and clears Clean on the cell at col, preserving the
// clean/dirty invariant for callers that mutate a cell's logical state
// in place rather than through Cell.Set.
func (r *Row) MarkDirty(col int) {
	r.Dirty = true
	if col >= 0 && col < len(r.Cells) {
		r.Cells[col].Clean = false
	}
}

// MarkAllDirty flags the whole row as needing redraw, clearing every
// cell's Clean bit.
func (r *Row) MarkAllDirty() {
	r.Dirty = true
	for i := range r.Cells {
		r.Cells[i].Clean = false
	}
}

package grid

import "github.com/tideterm/tideterm"

// Grid is an ordered ring of rows, plus two cursors into that ring: Offset
// (logical top of the live screen) and View (top of what the user
// currently sees, which differs from Offset when scrolled back). Both are
// always taken modulo NumRows.
//
// The normal grid is constructed with scrollback lines added to its row
// count; the alternate grid has none (spec.md §3).
type Grid struct {
	rows     []*Row
	NumRows  int
	Cols     int
	Offset   int
	View     int
	DefaultCell tideterm.Cell

	scrollDamage []ScrollDamage
}

// New allocates a grid of cols columns and numRows rows (already including
// scrollback, for the normal grid; equal to the visible row count, for the
// alternate grid).
func New(cols, numRows int, def tideterm.Cell) *Grid {
	g := &Grid{
		rows:        make([]*Row, numRows),
		NumRows:     numRows,
		Cols:        cols,
		DefaultCell: def,
	}
	for i := range g.rows {
		g.rows[i] = NewRow(cols, def)
	}
	return g
}

func (g *Grid) mod(i int) int {
	i %= g.NumRows
	if i < 0 {
		i += g.NumRows
	}
	return i
}

// Mod wraps an absolute row index into [0, NumRows), for callers outside
// this package that need to walk consecutive absolute row indices (e.g.
// tagging a URL's cell range) without duplicating ring arithmetic.
func (g *Grid) Mod(i int) int { return g.mod(i) }

// RowInView returns the row at logical screen position r, r in [0, rows).
func (g *Grid) RowInView(r int) *Row {
	return g.rows[g.mod(g.View+r)]
}

// RowAt returns the row at an absolute ring index (already mod NumRows, or
// not — RowAt takes the modulo itself).
func (g *Grid) RowAt(absolute int) *Row {
	return g.rows[g.mod(absolute)]
}

// ViewRowIndex translates a view-relative row into the absolute ring index
// RowInView(r) reads from.
func (g *Grid) ViewRowIndex(r int) int {
	return g.mod(g.View + r)
}

// Resize allocates a new row array of newCols x newNumRows, copies
// min(oldCols,newCols) cells of each surviving row (column-truncated, no
// reflow — an explicit non-goal), fills the remainder with def, and takes
// Offset/View modulo the new row count.
func (g *Grid) Resize(newCols, newNumRows int, def tideterm.Cell) {
	newRows := make([]*Row, newNumRows)
	copyCols := newCols
	if g.Cols < copyCols {
		copyCols = g.Cols
	}

	for r := 0; r < newNumRows; r++ {
		newRows[r] = NewRow(newCols, def)
	}

	// Copy surviving rows into the same relative view position so the
	// user doesn't see their visible screen jump on resize.
	n := newNumRows
	if g.NumRows < n {
		n = g.NumRows
	}
	for r := 0; r < n; r++ {
		oldRow := g.RowAt(g.View + r)
		newRow := newRows[mod(g.View+r, newNumRows)]
		copy(newRow.Cells, oldRow.Cells[:copyCols])
		newRow.Linebreak = oldRow.Linebreak
		newRow.MarkAllDirty()
	}

	g.rows = newRows
	g.Cols = newCols
	g.NumRows = newNumRows
	g.Offset = mod(g.Offset, newNumRows)
	g.View = mod(g.View, newNumRows)
	g.scrollDamage = g.scrollDamage[:0]
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

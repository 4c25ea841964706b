package term

import (
	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/grid"
)

// Resize resizes both grids to the new dimensions (no reflow — a column-
// truncating copy, per grid.Grid.Resize), clamps the cursor into the new
// bounds, and invalidates the cursor-erase mark and any active selection,
// both of which point at row/column indices that no longer mean the same
// thing once the grid has been resized.
func (t *Terminal) Resize(cols, rows, cellWidth, cellHeight int) {
	def := tideterm.Empty(t.Palette.FG, t.Palette.BG)

	scrollback := t.Normal.NumRows - t.Rows
	t.Normal.Resize(cols, rows+scrollback, def)
	t.Alt.Resize(cols, rows, def)

	t.Cols, t.Rows = cols, rows
	t.CellWidth, t.CellHeight = cellWidth, cellHeight

	if t.Cursor.Col >= cols {
		t.Cursor.Col = cols - 1
	}
	if t.Cursor.Row >= rows {
		t.Cursor.Row = rows - 1
	}

	t.LastCursor = grid.CursorMark{}
	t.Selection = grid.Selection{
		Start: grid.Coord{Col: -1, Row: -1},
		End:   grid.Coord{Col: -1, Row: -1},
	}
	t.MarginDirty = true
}

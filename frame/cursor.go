package frame

import (
	"github.com/tideterm/tideterm/grid"
	"github.com/tideterm/tideterm/render"
	"github.com/tideterm/tideterm/term"
)

// cursorAbsRow returns the logical cursor row as an absolute ring index.
// Terminal.Cursor.Row is grid-relative to the active grid's logical top
// (Offset), not to the current scrollback View.
func cursorAbsRow(t *term.Terminal) int {
	return t.Active.Mod(t.Active.Offset + t.Cursor.Row)
}

// eraseCursor re-renders t's previously-recorded cursor cell with no
// cursor decoration, so a moved or hidden cursor doesn't leave a ghost
// behind. It reports whether the cursor has moved since last frame,
// which forces all_clean=false even when the erased cell turns out to
// already be clean — spec.md §4.D step 2.
func eraseCursor(comp Compositor, buf Buffer, t *term.Terminal) bool {
	mark := t.LastCursor
	if mark.Cell == nil {
		return false
	}

	moved := mark.Actual.Col != t.Cursor.Col || mark.Actual.Row != cursorAbsRow(t)

	if mark.Cell.Clean {
		mark.Cell.Clean = false
		render.RenderCell(buf, t, mark.Cell, mark.InView.Col, mark.InView.Row, false, nil)
		comp.DamageBuffer(mark.InView.Col*t.CellWidth, mark.InView.Row*t.CellHeight, t.CellWidth, t.CellHeight)
	}

	return moved
}

// paintCursor draws the logical cursor cell if its row is within the
// current view, records it as the mark the next frame's eraseCursor will
// use, and reports whether it drew anything — spec.md §4.D step 8.
func paintCursor(comp Compositor, buf Buffer, t *term.Terminal, armBlink func()) bool {
	if t.HideCursor {
		t.LastCursor = grid.CursorMark{}
		return false
	}

	absRow := cursorAbsRow(t)
	rowInView := t.Active.Mod(absRow - t.Active.View)
	if rowInView >= t.Rows {
		t.LastCursor = grid.CursorMark{}
		return false
	}

	row := t.Active.RowInView(rowInView)
	cell := &row.Cells[t.Cursor.Col]
	cell.Clean = false
	render.RenderCell(buf, t, cell, t.Cursor.Col, rowInView, true, armBlink)
	comp.DamageBuffer(t.Cursor.Col*t.CellWidth, rowInView*t.CellHeight, t.CellWidth, t.CellHeight)

	t.LastCursor = grid.CursorMark{
		Cell:   cell,
		InView: grid.Coord{Col: t.Cursor.Col, Row: rowInView},
		Actual: grid.Coord{Col: t.Cursor.Col, Row: absRow},
	}
	return true
}

package grid

import "github.com/tideterm/tideterm"

// CursorMark remembers where the cursor was last rendered, so the next
// frame can erase it before the cursor's new position is drawn. All three
// fields are invalidated (set to nil / zero) on resize, per spec.md §4.F.
type CursorMark struct {
	Cell   *tideterm.Cell
	InView Coord // view-aligned (col, row) at the time of rendering
	Actual Coord // logical (col, row) cursor position at the time of rendering
}

// Package term aggregates the per-session terminal state: both grids, the
// active one, fonts, palette, cursor, selection, blink, flash, and the
// detected URL list. It sits above package urlmode in the import graph so
// it can hold []urlmode.URL without urlmode needing to import it back.
package term

import (
	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/grid"
	"github.com/tideterm/tideterm/urlmode"
)

// ScrollRegion is the active scroll region, [Start, End) rows.
type ScrollRegion struct {
	Start, End int
}

// Cursor is the logical cursor position, in grid-relative (not view-
// relative) column/row.
type Cursor struct {
	Col, Row int
}

// FlashState mirrors tideterm.FlashState; aliased here for readability in
// this package's field list.
type FlashState = tideterm.FlashState

// Terminal is the context struct every component operates on. There is
// deliberately no global terminal instance: every exported function that
// needs terminal-wide state takes a *Terminal explicitly.
type Terminal struct {
	Normal *grid.Grid
	Alt    *grid.Grid
	Active *grid.Grid // points at Normal or Alt

	Cols, Rows           int
	CellWidth, CellHeight int

	Fonts       [4]tideterm.Font // indexed by FontIndex(bold, italic)
	FontExtents tideterm.FontExtents

	ScrollRegion ScrollRegion
	Cursor       Cursor
	CursorStyle  tideterm.CursorStyle
	Reverse      bool
	HideCursor   bool

	Palette tideterm.Palette

	Selection grid.Selection
	Blink     grid.BlinkState
	Flash     FlashState

	URLs    []urlmode.URL
	URLKeys string

	LastCursor grid.CursorMark

	// MarginDirty is set whenever the backing buffer's identity is about
	// to change (currently: Resize) and cleared by the frame orchestrator
	// once it has forced a full-grid redraw for the new buffer.
	MarginDirty bool

	Logger tideterm.Logger
}

// New allocates a Terminal with both grids sized for cols x rows (plus
// scrollback lines in the normal grid), starting on the normal grid.
func New(cols, rows, scrollback int, palette tideterm.Palette, logger tideterm.Logger) *Terminal {
	def := tideterm.Empty(palette.FG, palette.BG)

	normal := grid.New(cols, rows+scrollback, def)
	alt := grid.New(cols, rows, def)

	t := &Terminal{
		Normal:       normal,
		Alt:          alt,
		Active:       normal,
		Cols:         cols,
		Rows:         rows,
		ScrollRegion: ScrollRegion{Start: 0, End: rows},
		CursorStyle:  tideterm.CursorBlock,
		Palette:      palette,
		Selection:    grid.Selection{Start: grid.Coord{Col: -1, Row: -1}, End: grid.Coord{Col: -1, Row: -1}},
		Logger:       logger,
	}
	return t
}

// GridView adapts t's active grid to urlmode.GridSource. Terminal itself
// can't implement the interface directly: Cols and Rows are already
// fields, and Go doesn't allow a method and a field to share a name.
func (t *Terminal) GridView() urlmode.GridSource { return gridView{t} }

type gridView struct{ t *Terminal }

func (v gridView) Cols() int               { return v.t.Cols }
func (v gridView) Rows() int               { return v.t.Rows }
func (v gridView) View() int               { return v.t.Active.View }
func (v gridView) RowInView(r int) *grid.Row { return v.t.Active.RowInView(r) }

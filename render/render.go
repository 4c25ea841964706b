// Package render implements the incremental cell renderer: composing a
// single grid cell's background, glyph, and decorations onto a shared
// pixel surface.
package render

import (
	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/grid"
	"github.com/tideterm/tideterm/term"
)

// Surface is the pixel-buffer seam RenderCell draws through. It stands in
// for the pixman image a compositor buffer wraps; concrete
// implementations live in package gtkshell (real cairo surface) and
// package headless (in-process image.RGBA).
type Surface interface {
	FillRect(x, y, w, h int, c tideterm.RGBA)
	CompositeGlyph(g tideterm.Glyph, x, y int, fg tideterm.RGBA, preRendered bool)
	StrokeRect(x, y, w, h int, c tideterm.RGBA)
}

// RenderCell draws one cell at grid position (col, rowInView) onto s, and
// returns how many grid columns it occupied (1 for narrow glyphs, more
// for wide ones). hasCursor marks the logical cursor's current cell.
//
// armBlink is invoked at most once per call, the first time a cell with
// AttrBlink is drawn while the terminal's blink timer isn't already
// running — the caller (normally frame.Orchestrator) is expected to pass
// a closure that arms term.Blink with a tick callback that requests a
// refresh.
func RenderCell(s Surface, t *term.Terminal, cell *tideterm.Cell, col, rowInView int, hasCursor bool, armBlink func()) int {
	if cell.Clean {
		return 0
	}
	cell.Clean = true

	cw, ch := t.CellWidth, t.CellHeight
	x, y := col*cw, rowInView*ch

	blockCursor := hasCursor && t.CursorStyle == tideterm.CursorBlock
	isSelected := grid.CoordInSelection(t.Selection, col, rowInView, t.Active.View)

	fg := t.Palette.FG
	if cell.Attrs.Has(tideterm.AttrHaveFG) {
		fg = cell.FG
	} else if t.Reverse {
		fg = t.Palette.BG
	}
	bg := t.Palette.BG
	if cell.Attrs.Has(tideterm.AttrHaveBG) {
		bg = cell.BG
	} else if t.Reverse {
		bg = t.Palette.FG
	}

	if xorBool(xorBool(blockCursor, cell.Attrs.Has(tideterm.AttrReverse)), isSelected) {
		fg, bg = bg, fg
	}

	if cell.Attrs.Has(tideterm.AttrBlink) && t.Blink.Phase == grid.BlinkOff {
		fg = bg
	}

	fgRGBA := fg.Opaque()
	alpha := t.Palette.Alpha
	if blockCursor {
		alpha = 0xFFFF
	}
	bgRGBA := bg.WithAlpha(alpha)

	if cell.Attrs.Has(tideterm.AttrDim) {
		fgRGBA = fgRGBA.Dim()
	}

	if blockCursor && t.Palette.CursorText.Set {
		fgRGBA = t.Palette.CursorText.Opaque()
	}
	if blockCursor && t.Palette.CursorBG.Set {
		bgRGBA = t.Palette.CursorBG.Opaque()
	}

	font := t.Fonts[tideterm.FontIndex(cell.Attrs.Has(tideterm.AttrBold), cell.Attrs.Has(tideterm.AttrItalic))]
	var glyph tideterm.Glyph
	haveGlyph := false
	if font != nil {
		glyph, haveGlyph = font.GlyphFor(cell.Rune)
	}

	cellCols := 1
	if haveGlyph && glyph.Cols > 1 {
		cellCols = glyph.Cols
	}

	s.FillRect(x, y, cellCols*cw, ch, bgRGBA)

	if hasCursor && !blockCursor {
		cursorColor := fgRGBA
		if t.Palette.CursorBG.Set {
			cursorColor = t.Palette.CursorBG.Opaque()
		}
		switch t.CursorStyle {
		case tideterm.CursorBar:
			s.StrokeRect(x, y, 1, ch, cursorColor)
		case tideterm.CursorUnderline:
			pos, thick := underlineMetrics(font, t.FontExtents)
			s.StrokeRect(x, y+pos, cellCols*cw, thick, cursorColor)
		}
	}

	if cell.Attrs.Has(tideterm.AttrBlink) && !t.Blink.Active && armBlink != nil {
		armBlink()
	}

	if cell.Rune == 0 || cell.Attrs.Has(tideterm.AttrConceal) {
		return cellCols
	}

	if haveGlyph {
		if !(cell.Attrs.Has(tideterm.AttrBlink) && t.Blink.Phase == grid.BlinkOff) {
			gx := x + glyph.X
			gy := y + t.FontExtents.Ascent - glyph.Y
			s.CompositeGlyph(glyph, gx, gy, fgRGBA, glyph.PreRendered)
		}
	}

	if cell.Attrs.Has(tideterm.AttrUnderline) {
		pos, thick := underlineMetrics(font, t.FontExtents)
		s.StrokeRect(x, y+pos, cellCols*cw, thick, fgRGBA)
	}
	if cell.Attrs.Has(tideterm.AttrStrikethrough) {
		pos, thick := strikeoutMetrics(font, t.FontExtents)
		s.StrokeRect(x, y+pos, cellCols*cw, thick, fgRGBA)
	}

	return cellCols
}

func xorBool(a, b bool) bool { return a != b }

func underlineMetrics(font tideterm.Font, fe tideterm.FontExtents) (pos, thickness int) {
	if font == nil {
		return fe.Height - 1, 1
	}
	m := font.Underline()
	baseline := fe.Height - fe.Descent
	return baseline - m.Position - m.Thickness/2, m.Thickness
}

func strikeoutMetrics(font tideterm.Font, fe tideterm.FontExtents) (pos, thickness int) {
	if font == nil {
		return fe.Height / 2, 1
	}
	m := font.Strikeout()
	baseline := fe.Height - fe.Descent
	return baseline - m.Position - m.Thickness/2, m.Thickness
}

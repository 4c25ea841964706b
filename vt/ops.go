package vt

import (
	"github.com/tideterm/tideterm/grid"
)

// This file holds the terminal-mutating operations CSI/control bytes
// dispatch into: cursor movement, scrolling, and line/char edit. All of it
// operates on t.Active directly and keeps t.Cursor in grid-relative
// coordinates, mirroring the teacher's buffer_cursor.go/buffer_edit.go/
// buffer_output.go split but against a fixed-width Row.Cells rather than
// the teacher's variable-length per-line slices.

func (p *Parser) carriageReturn() {
	p.t.Cursor.Col = 0
}

func (p *Parser) tab() {
	t := p.t
	next := ((t.Cursor.Col / 8) + 1) * 8
	if next >= t.Cols {
		next = t.Cols - 1
	}
	t.Cursor.Col = next
}

func (p *Parser) backspace() {
	if p.t.Cursor.Col > 0 {
		p.t.Cursor.Col--
	}
}

func (p *Parser) lineFeed() {
	t := p.t
	region := p.activeRegion()
	if t.Cursor.Row >= region.End-1 {
		p.scrollUp(1)
	} else {
		t.Cursor.Row++
	}
}

func (p *Parser) index() {
	p.lineFeed()
}

func (p *Parser) reverseIndex() {
	t := p.t
	region := p.activeRegion()
	if t.Cursor.Row <= region.Start {
		p.scrollDown(1)
	} else {
		t.Cursor.Row--
	}
}

func (p *Parser) activeRegion() grid.Region {
	r := p.t.ScrollRegion
	return grid.Region{Start: r.Start, End: r.End}
}

func (p *Parser) moveCursor(dCol, dRow int) {
	t := p.t
	t.Cursor.Col = clampInt(t.Cursor.Col+dCol, 0, t.Cols-1)
	t.Cursor.Row = clampInt(t.Cursor.Row+dRow, 0, t.Rows-1)
	p.pendWrap = false
}

func (p *Parser) setCursor(col, row int) {
	t := p.t
	t.Cursor.Col = clampInt(col, 0, t.Cols-1)
	t.Cursor.Row = clampInt(row, 0, t.Rows-1)
	p.pendWrap = false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p *Parser) saveCursor() {
	p.savedCol = p.t.Cursor.Col
	p.savedRow = p.t.Cursor.Row
}

func (p *Parser) restoreCursor() {
	p.t.Cursor.Col = p.savedCol
	p.t.Cursor.Row = p.savedRow
	p.pendWrap = false
}

// scrollUp moves region content up by n lines (newly printed lines appear
// at the bottom). When the region is the grid's full default height, this
// uses grid.ScrollBackUp so a normal-grid scroll actually grows scrollback
// instead of discarding the top row; any DECSTBM-restricted region, or any
// scroll on the alt grid (no scrollback capacity), rotates in place.
func (p *Parser) scrollUp(n int) {
	t := p.t
	region := p.activeRegion()
	if region.Start == 0 && region.End == t.Rows && t.Active.NumRows > t.Rows {
		t.Active.ScrollBackUp(t.Rows, n)
		return
	}
	t.Active.RotateRegion(grid.DamageScroll, region, n)
}

// scrollDown moves region content down by n lines (blank lines appear at
// the top). Real terminals never resurrect scrollback on this path (RI/SD
// sources only pushed on forward scroll, per the teacher's buffer_output.go
// ScrollUp/ScrollDown asymmetry), so this always rotates in place.
func (p *Parser) scrollDown(n int) {
	p.t.Active.RotateRegion(grid.DamageScrollReverse, p.activeRegion(), n)
}

func (p *Parser) eraseToEndOfLine() {
	t := p.t
	row := p.curRow()
	for c := t.Cursor.Col; c < t.Cols; c++ {
		row.Cells[c].Set(0, p.attrs, p.fg, p.bg)
	}
	row.MarkDirty(t.Cursor.Col)
	row.Dirty = true
}

func (p *Parser) eraseToStartOfLine() {
	t := p.t
	row := p.curRow()
	for c := 0; c <= t.Cursor.Col && c < t.Cols; c++ {
		row.Cells[c].Set(0, p.attrs, p.fg, p.bg)
	}
	row.Dirty = true
}

func (p *Parser) eraseLine() {
	row := p.curRow()
	for c := range row.Cells {
		row.Cells[c].Set(0, p.attrs, p.fg, p.bg)
	}
	row.Dirty = true
}

func (p *Parser) eraseToEndOfScreen() {
	t := p.t
	p.eraseToEndOfLine()
	for r := t.Cursor.Row + 1; r < t.Rows; r++ {
		p.eraseFullRow(r)
	}
}

func (p *Parser) eraseToStartOfScreen() {
	t := p.t
	p.eraseToStartOfLine()
	for r := 0; r < t.Cursor.Row; r++ {
		p.eraseFullRow(r)
	}
}

func (p *Parser) eraseScreen() {
	for r := 0; r < p.t.Rows; r++ {
		p.eraseFullRow(r)
	}
}

func (p *Parser) eraseFullRow(viewRow int) {
	row := p.t.Active.RowInView(viewRow)
	for c := range row.Cells {
		row.Cells[c].Set(0, p.attrs, p.fg, p.bg)
	}
	row.Dirty = true
}

func (p *Parser) insertLines(n int) {
	t := p.t
	region := p.activeRegion()
	if t.Cursor.Row < region.Start || t.Cursor.Row >= region.End {
		return
	}
	sub := grid.Region{Start: t.Cursor.Row, End: region.End}
	t.Active.RotateRegion(grid.DamageScrollReverse, sub, n)
}

func (p *Parser) deleteLines(n int) {
	t := p.t
	region := p.activeRegion()
	if t.Cursor.Row < region.Start || t.Cursor.Row >= region.End {
		return
	}
	sub := grid.Region{Start: t.Cursor.Row, End: region.End}
	t.Active.RotateRegion(grid.DamageScroll, sub, n)
}

func (p *Parser) insertChars(n int) {
	t := p.t
	row := p.curRow()
	col := t.Cursor.Col
	if n > t.Cols-col {
		n = t.Cols - col
	}
	copy(row.Cells[col+n:], row.Cells[col:t.Cols-n])
	for c := col; c < col+n && c < t.Cols; c++ {
		row.Cells[c].Set(0, p.attrs, p.fg, p.bg)
	}
	row.Dirty = true
}

func (p *Parser) deleteChars(n int) {
	t := p.t
	row := p.curRow()
	col := t.Cursor.Col
	if n > t.Cols-col {
		n = t.Cols - col
	}
	copy(row.Cells[col:], row.Cells[col+n:])
	for c := t.Cols - n; c < t.Cols; c++ {
		row.Cells[c].Set(0, p.attrs, p.fg, p.bg)
	}
	row.Dirty = true
}

func (p *Parser) eraseChars(n int) {
	t := p.t
	row := p.curRow()
	col := t.Cursor.Col
	end := col + n
	if end > t.Cols {
		end = t.Cols
	}
	for c := col; c < end; c++ {
		row.Cells[c].Set(0, p.attrs, p.fg, p.bg)
	}
	row.Dirty = true
}

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/grid"
	"github.com/tideterm/tideterm/term"
)

type fillCall struct {
	x, y, w, h int
	c          tideterm.RGBA
}

type glyphCall struct {
	x, y int
	fg   tideterm.RGBA
	pre  bool
}

type fakeSurface struct {
	fills   []fillCall
	glyphs  []glyphCall
	strokes []fillCall
}

func (f *fakeSurface) FillRect(x, y, w, h int, c tideterm.RGBA) {
	f.fills = append(f.fills, fillCall{x, y, w, h, c})
}
func (f *fakeSurface) CompositeGlyph(g tideterm.Glyph, x, y int, fg tideterm.RGBA, pre bool) {
	f.glyphs = append(f.glyphs, glyphCall{x, y, fg, pre})
}
func (f *fakeSurface) StrokeRect(x, y, w, h int, c tideterm.RGBA) {
	f.strokes = append(f.strokes, fillCall{x, y, w, h, c})
}

type fakeFont struct {
	cols int
	pre  bool
}

func (f fakeFont) GlyphFor(r rune) (tideterm.Glyph, bool) {
	if r == 0 {
		return tideterm.Glyph{}, false
	}
	return tideterm.Glyph{Cols: f.cols, PreRendered: f.pre}, true
}
func (f fakeFont) Underline() tideterm.LineMetrics { return tideterm.LineMetrics{Position: 2, Thickness: 1} }
func (f fakeFont) Strikeout() tideterm.LineMetrics { return tideterm.LineMetrics{Position: 6, Thickness: 1} }

func newTestTermForRender() *term.Terminal {
	pal := tideterm.Palette{
		FG:    tideterm.Color{Set: true, R: 200, G: 200, B: 200},
		BG:    tideterm.Color{Set: true, R: 0, G: 0, B: 0},
		Alpha: 0xE000,
	}
	t := term.New(10, 5, 0, pal, tideterm.DiscardLogger())
	t.CellWidth, t.CellHeight = 8, 16
	t.FontExtents = tideterm.FontExtents{Ascent: 12, Descent: 4, Height: 16}
	t.Fonts[0] = fakeFont{cols: 1}
	return t
}

func TestRenderCellSkipsWhenClean(t *testing.T) {
	tm := newTestTermForRender()
	surf := &fakeSurface{}
	cell := &tideterm.Cell{Rune: 'a', Clean: true}

	n := RenderCell(surf, tm, cell, 0, 0, false, nil)

	assert.Equal(t, 0, n)
	assert.Empty(t, surf.fills)
	assert.Empty(t, surf.glyphs)
}

func TestRenderCellDrawsBackgroundAndGlyph(t *testing.T) {
	tm := newTestTermForRender()
	surf := &fakeSurface{}
	cell := &tideterm.Cell{Rune: 'a'}

	n := RenderCell(surf, tm, cell, 2, 1, false, nil)

	assert.Equal(t, 1, n)
	assert.True(t, cell.Clean)
	if assert.Len(t, surf.fills, 1) {
		assert.Equal(t, 2*8, surf.fills[0].x)
		assert.Equal(t, 1*16, surf.fills[0].y)
	}
	assert.Len(t, surf.glyphs, 1)
}

func TestRenderCellReverseAttrSwapsColors(t *testing.T) {
	tm := newTestTermForRender()
	surf := &fakeSurface{}
	cellNormal := &tideterm.Cell{Rune: 'a'}
	cellReversed := &tideterm.Cell{Rune: 'a', Attrs: tideterm.AttrReverse}

	RenderCell(surf, tm, cellNormal, 0, 0, false, nil)
	normalBG := surf.fills[0].c

	surf2 := &fakeSurface{}
	RenderCell(surf2, tm, cellReversed, 0, 0, false, nil)
	reversedBG := surf2.fills[0].c

	assert.NotEqual(t, normalBG, reversedBG)
}

func TestRenderCellBlinkOffHidesGlyph(t *testing.T) {
	tm := newTestTermForRender()
	tm.Blink.Active = true
	tm.Blink.Phase = grid.BlinkOff
	surf := &fakeSurface{}
	cell := &tideterm.Cell{Rune: 'a', Attrs: tideterm.AttrBlink}

	RenderCell(surf, tm, cell, 0, 0, false, nil)

	assert.Empty(t, surf.glyphs)
}

func TestRenderCellArmsBlinkOnce(t *testing.T) {
	tm := newTestTermForRender()
	surf := &fakeSurface{}
	cell := &tideterm.Cell{Rune: 'a', Attrs: tideterm.AttrBlink}

	armed := 0
	RenderCell(surf, tm, cell, 0, 0, false, func() { armed++ })

	assert.Equal(t, 1, armed)
}

func TestRenderCellConcealSkipsGlyphButDrawsBackground(t *testing.T) {
	tm := newTestTermForRender()
	surf := &fakeSurface{}
	cell := &tideterm.Cell{Rune: 'a', Attrs: tideterm.AttrConceal}

	RenderCell(surf, tm, cell, 0, 0, false, nil)

	assert.Len(t, surf.fills, 1)
	assert.Empty(t, surf.glyphs)
}

func TestRenderCellBlockCursorForcesOpaqueBackground(t *testing.T) {
	tm := newTestTermForRender()
	tm.CursorStyle = tideterm.CursorBlock
	surf := &fakeSurface{}
	cell := &tideterm.Cell{Rune: 'a'}

	RenderCell(surf, tm, cell, 0, 0, true, nil)

	assert.Equal(t, uint16(0xFFFF), surf.fills[0].c.A)
}

func TestRenderCellWideGlyphReturnsItsColumnSpan(t *testing.T) {
	tm := newTestTermForRender()
	tm.Fonts[0] = fakeFont{cols: 2}
	surf := &fakeSurface{}
	cell := &tideterm.Cell{Rune: 0x4e00}

	n := RenderCell(surf, tm, cell, 0, 0, false, nil)

	assert.Equal(t, 2, n)
	assert.Equal(t, 2*8, surf.fills[0].w)
}

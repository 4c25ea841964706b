package headless

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tideterm/tideterm"
)

// Font resolves runes through a fixed 7x13 bitmap face instead of a real
// text shaper — font shaping is out of scope here, this backend exists
// to exercise render.RenderCell's compositing path in tests and the ANSI
// preview mode, not to render legible glyphs to a real display.
type Font struct {
	face    font.Face
	cellW   int
	cellH   int
	ascent  int
	extents tideterm.FontExtents
}

// NewFont wraps basicfont.Face7x13, deriving the fixed cell box from the
// face's own advance width and ascent+descent rather than taking one as
// a parameter — basicfont is a fixed bitmap face, so its natural 7x13
// box is the cell size, the bitmap-font analog of gtkshell.NewFont
// measuring "M" through Pango.
func NewFont() *Font {
	m := basicfont.Face7x13.Metrics()
	adv, ok := basicfont.Face7x13.GlyphAdvance('M')
	cellW := 7
	if ok {
		cellW = adv.Ceil()
	}
	return &Font{
		face:   basicfont.Face7x13,
		cellW:  cellW,
		cellH:  m.Height.Ceil(),
		ascent: m.Ascent.Ceil(),
		extents: tideterm.FontExtents{
			Ascent:  m.Ascent.Ceil(),
			Descent: m.Descent.Ceil(),
			Height:  m.Height.Ceil(),
		},
	}
}

// GlyphFor rasterizes r through the bitmap face, returning its coverage
// mask as the Glyph's Pix (an *image.Alpha, matching Surface.CompositeGlyph's
// *image.Alpha case).
func (f *Font) GlyphFor(r rune) (tideterm.Glyph, bool) {
	if r == 0 || r == ' ' {
		return tideterm.Glyph{}, false
	}
	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.P(0, f.ascent), r)
	if !ok {
		return tideterm.Glyph{}, false
	}
	atlas, ok := mask.(*image.Alpha)
	if !ok {
		return tideterm.Glyph{}, false
	}
	alpha := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(alpha, alpha.Bounds(), atlas, maskp, draw.Src)

	cols := 1
	if advance.Ceil() > f.cellW+f.cellW/2 {
		cols = 2
	}
	return tideterm.Glyph{
		Pix:         alpha,
		X:           dr.Min.X,
		Y:           f.ascent - dr.Min.Y,
		Width:       dr.Dx(),
		Height:      dr.Dy(),
		Cols:        cols,
		PreRendered: false,
	}, true
}

// Underline reports this face's underline position/thickness, derived
// from its descent since basicfont carries no explicit hint for it: half
// the descent below the baseline (Position counts upward from it).
func (f *Font) Underline() tideterm.LineMetrics {
	return tideterm.LineMetrics{Position: -(f.extents.Descent / 2), Thickness: 1}
}

// Strikeout reports this face's strikeout position/thickness.
func (f *Font) Strikeout() tideterm.LineMetrics {
	return tideterm.LineMetrics{Position: f.ascent / 2, Thickness: 1}
}

// Extents returns the terminal-wide ascent/descent/height cmd/tideterm
// stores on term.Terminal for glyph-baseline and underline positioning.
func (f *Font) Extents() tideterm.FontExtents { return f.extents }

// CellSize returns the fixed cell box every glyph is rasterized into.
func (f *Font) CellSize() (w, h int) { return f.cellW, f.cellH }

// Package gtkshell is the real compositor backend: a GTK3 window with a
// cairo-backed drawing surface, driven through gotk3 the same way the
// teacher's gtk/widget.go is, adapted from that package's one-widget,
// immediate-mode redraw model to the retained Buffer-with-damage model
// frame.Orchestrator drives (acquire a buffer, damage regions, commit on
// the compositor's own pacing) — the closer fit for a Wayland shell,
// where a client owns and re-submits its own wl_shm buffers rather than
// redrawing from scratch inside a GTK "draw" signal.
package gtkshell

/*
#cgo pkg-config: cairo
#include <cairo.h>

// composite_mask paints glyph as an alpha-mask tinted by (r,g,b) onto cr,
// the raw-cairo equivalent of cairo_mask_surface. Used instead of
// gotk3/cairo's Context.Paint because the glyph surface here is a
// coverage-only A8 mask (see font.go), not a pre-colored surface, and
// gotk3 doesn't expose cairo_mask_surface.
static void composite_mask(cairo_t *cr, cairo_surface_t *glyph, double x, double y,
                            double r, double g, double b) {
    cairo_set_source_rgb(cr, r, g, b);
    cairo_mask_surface(cr, glyph, x, y);
}
*/
import "C"

import (
	"unsafe"

	"github.com/gotk3/gotk3/cairo"

	"github.com/tideterm/tideterm"
)

// Surface is a cairo ARGB32 image surface plus the refcount bookkeeping
// frame.Buffer needs. It implements render.Surface directly with cairo
// drawing calls, the same primitives the teacher's widget.go draws cell
// backgrounds and custom-glyph fallback boxes with (cr.Rectangle/Fill,
// cr.SetSourceSurface/Paint for cached glyphs).
type Surface struct {
	surface *cairo.Surface
	w, h    int
	busy    bool
}

// NewSurface allocates a w x h ARGB32 cairo image surface.
func NewSurface(w, h int) *Surface {
	s := cairo.CreateImageSurface(cairo.FORMAT_ARGB32, w, h)
	return &Surface{surface: s, w: w, h: h}
}

// Native exposes the backing cairo surface, e.g. for Window.Commit to
// paint it onto the GTK drawing area's own context.
func (s *Surface) Native() *cairo.Surface { return s.surface }

func (s *Surface) context() *cairo.Context {
	return cairo.Create(s.surface)
}

// nativePtr casts a gotk3 cairo.Context to the raw C pointer backing it,
// the same conversion the teacher's widget.go does (pangoRenderText's
// crNative) whenever it needs a cairo call gotk3 doesn't wrap.
func nativePtr(cr *cairo.Context) *C.cairo_t {
	return (*C.cairo_t)(unsafe.Pointer(cr.Native()))
}

// FillRect draws an alpha-blended solid rectangle, matching the
// background-fill rectangles widget.go draws per cell before glyphs.
func (s *Surface) FillRect(x, y, w, h int, c tideterm.RGBA) {
	cr := s.context()
	cr.SetSourceRGBA(channel(c.R), channel(c.G), channel(c.B), float64(c.A)/0xFFFF)
	cr.Rectangle(float64(x), float64(y), float64(w), float64(h))
	cr.Fill()
}

// StrokeRect draws a one-pixel rectangle outline (render.RenderCell uses
// it for the bar and underline cursors and for underline/strikeout lines).
func (s *Surface) StrokeRect(x, y, w, h int, c tideterm.RGBA) {
	cr := s.context()
	cr.SetSourceRGBA(channel(c.R), channel(c.G), channel(c.B), float64(c.A)/0xFFFF)
	cr.SetLineWidth(1)
	cr.Rectangle(float64(x)+0.5, float64(y)+0.5, float64(w)-1, float64(h)-1)
	cr.Stroke()
}

// CompositeGlyph tints the cached coverage mask g.Pix (a *glyphSurface
// from font.go) with fg and paints it at (x, y) via cairo_mask_surface.
// PreRendered glyphs (full-color, e.g. a future color-emoji font) would
// instead source the surface directly and Paint, but no Font in this
// package produces PreRendered glyphs today.
func (s *Surface) CompositeGlyph(g tideterm.Glyph, x, y int, fg tideterm.RGBA, preRendered bool) {
	glyph, ok := g.Pix.(*glyphSurface)
	if !ok || glyph == nil {
		return
	}
	cr := s.context()
	C.composite_mask(nativePtr(cr), (*C.cairo_surface_t)(glyph.ptr),
		C.double(x), C.double(y),
		C.double(channel(fg.R)), C.double(channel(fg.G)), C.double(channel(fg.B)))
}

// CopyRect moves a rectangular region within the surface through a small
// intermediate surface rather than sourcing a surface from itself, which
// cairo does not guarantee correct results for when source and
// destination overlap.
func (s *Surface) CopyRect(dstX, dstY, srcX, srcY, w, h int) {
	tmp := cairo.CreateImageSurface(cairo.FORMAT_ARGB32, w, h)
	extract := cairo.Create(tmp)
	extract.SetSourceSurface(s.surface, float64(-srcX), float64(-srcY))
	extract.Paint()

	cr := s.context()
	cr.SetOperator(cairo.OPERATOR_SOURCE)
	cr.SetSourceSurface(tmp, float64(dstX), float64(dstY))
	cr.Rectangle(float64(dstX), float64(dstY), float64(w), float64(h))
	cr.Fill()
}

// Busy reports whether the buffer is in use: acquired for a frame or
// still attached as the front buffer.
func (s *Surface) Busy() bool { return s.busy }

// SetBusy sets the busy flag. Window.Acquire sets it; Window.Attach clears
// it on the buffer it replaces as front, and frame.Orchestrator clears it
// on a buffer it acquired for a frame with nothing to draw.
func (s *Surface) SetBusy(b bool) { s.busy = b }

func channel(v uint8) float64 { return float64(v) / 255 }

package gtkshell

/*
#cgo pkg-config: gtk+-3.0 pangocairo
#include <stdlib.h>
#include <cairo.h>
#include <pango/pangocairo.h>

// render_glyph_mask rasterizes a single codepoint as an A8 coverage mask
// sized cellW x cellH, returning the cairo surface (caller owns it) and
// the glyph's horizontal advance in pixels. Coverage-only (no color) so
// the surface can be tinted differently per cell at composite time,
// unlike the teacher's widget.go which bakes foreground color directly
// into each cached glyph surface.
static cairo_surface_t *render_glyph_mask(const char *family, int size, int bold, int italic,
                                           int cell_w, int cell_h, gunichar cp, int *out_advance) {
    cairo_surface_t *surface = cairo_image_surface_create(CAIRO_FORMAT_A8, cell_w, cell_h);
    cairo_t *cr = cairo_create(surface);

    PangoLayout *layout = pango_cairo_create_layout(cr);
    PangoFontDescription *desc = pango_font_description_new();
    pango_font_description_set_family(desc, family);
    pango_font_description_set_size(desc, size * PANGO_SCALE);
    if (bold) pango_font_description_set_weight(desc, PANGO_WEIGHT_BOLD);
    if (italic) pango_font_description_set_style(desc, PANGO_STYLE_ITALIC);
    pango_layout_set_font_description(layout, desc);

    char buf[8] = {0};
    int len = g_unichar_to_utf8(cp, buf);
    pango_layout_set_text(layout, buf, len);

    cairo_set_source_rgba(cr, 1, 1, 1, 1);
    pango_cairo_show_layout(cr, layout);

    int w, h;
    pango_layout_get_pixel_size(layout, &w, &h);
    *out_advance = w;

    pango_font_description_free(desc);
    g_object_unref(layout);
    cairo_destroy(cr);
    cairo_surface_flush(surface);
    return surface;
}

// measure_char_width lays out a single "M" to derive the fixed cell
// width, the same measurement the teacher's widget.go takes
// (pangoTextWidthStandalone("M", ...)) before falling back to a
// size-derived estimate if Pango ever reports zero.
static int measure_char_width(const char *family, int size) {
    cairo_surface_t *tmp = cairo_image_surface_create(CAIRO_FORMAT_ARGB32, 1, 1);
    cairo_t *cr = cairo_create(tmp);
    PangoLayout *layout = pango_cairo_create_layout(cr);
    PangoFontDescription *desc = pango_font_description_new();
    pango_font_description_set_family(desc, family);
    pango_font_description_set_size(desc, size * PANGO_SCALE);
    pango_layout_set_font_description(layout, desc);
    pango_layout_set_text(layout, "M", 1);

    int w, h;
    pango_layout_get_pixel_size(layout, &w, &h);

    pango_font_description_free(desc);
    g_object_unref(layout);
    cairo_destroy(cr);
    cairo_surface_destroy(tmp);
    return w;
}

static void metrics_for(const char *family, int size, int *ascent, int *descent, int *height) {
    cairo_surface_t *tmp = cairo_image_surface_create(CAIRO_FORMAT_ARGB32, 1, 1);
    cairo_t *cr = cairo_create(tmp);
    PangoLayout *layout = pango_cairo_create_layout(cr);
    PangoFontDescription *desc = pango_font_description_new();
    pango_font_description_set_family(desc, family);
    pango_font_description_set_size(desc, size * PANGO_SCALE);
    pango_layout_set_font_description(layout, desc);

    PangoContext *context = pango_layout_get_context(layout);
    PangoFontMetrics *m = pango_context_get_metrics(context, desc, NULL);
    *ascent = pango_font_metrics_get_ascent(m) / PANGO_SCALE;
    *descent = pango_font_metrics_get_descent(m) / PANGO_SCALE;
    *height = *ascent + *descent;

    pango_font_metrics_unref(m);
    pango_font_description_free(desc);
    g_object_unref(layout);
    cairo_destroy(cr);
    cairo_surface_destroy(tmp);
}

static void destroy_glyph_surface(cairo_surface_t *s) {
    cairo_surface_destroy(s);
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/tideterm/tideterm"
)

// Font rasterizes glyphs through Pango/cairo, the same text-shaping stack
// the teacher's gtk/widget.go uses, adapted from "render straight onto
// the visible cairo context every frame" to "rasterize once into a
// coverage-mask surface per rune, cache it, composite the cached surface
// every frame, tinted by whatever fg CompositeGlyph is called with" — the
// caching strategy package render's Surface contract requires, since
// GlyphFor carries no color argument.
//
// The cache has no eviction (unlike the teacher's glyphCache's LRU):
// it's bounded by the distinct rune/bold/italic combinations a session
// actually draws, which for ordinary terminal use never approaches the
// teacher's custom-glyph-palette cache pressure.
type Font struct {
	family       string
	size         int
	bold, italic bool
	cellW, cellH int
	ascent       int
	extents      tideterm.FontExtents
	underline    tideterm.LineMetrics
	strikeout    tideterm.LineMetrics
	cache        map[rune]*glyphSurface
}

// glyphSurface wraps a rasterized cairo_surface_t* the Go side otherwise
// never looks inside; surface.go re-casts the pointer through its own
// cgo preamble to composite it, the same crNative-conversion pattern the
// teacher's widget.go uses to hand a gotk3 cairo.Context to raw C cairo
// calls.
type glyphSurface struct {
	ptr     unsafe.Pointer
	advance int
}

// NewFont measures family/size once via Pango, deriving the fixed
// terminal cell box ("M"'s width, ascent+descent for height) the same
// way the teacher's widget.go sizes its own grid before falling back to
// a size-derived estimate if Pango reports zero width.
func NewFont(family string, size int, bold, italic bool) *Font {
	cFamily := C.CString(family)
	defer C.free(unsafe.Pointer(cFamily))

	var ascent, descent, height C.int
	C.metrics_for(cFamily, C.int(size), &ascent, &descent, &height)

	cellW := int(C.measure_char_width(cFamily, C.int(size)))
	if cellW < 1 {
		cellW = size * 6 / 10
	}
	if cellW < 1 {
		cellW = 1
	}
	cellH := int(height)
	if cellH < 1 {
		cellH = size * 14 / 10
	}

	return &Font{
		family: family,
		size:   size,
		bold:   bold,
		italic: italic,
		cellW:  cellW,
		cellH:  cellH,
		ascent: int(ascent),
		extents: tideterm.FontExtents{
			Ascent:  int(ascent),
			Descent: int(descent),
			Height:  int(height),
		},
		underline: tideterm.LineMetrics{
			Position:  -(int(descent) / 3),
			Thickness: 1,
		},
		strikeout: tideterm.LineMetrics{
			Position:  int(ascent) / 2,
			Thickness: 1,
		},
		cache: make(map[rune]*glyphSurface),
	}
}

// GlyphFor rasterizes (or returns the cached rasterization of) r as an
// A8 coverage mask. Returns ok=false for the null/space rune, matching
// RenderCell's own "nothing to draw" short-circuit for rune 0.
func (f *Font) GlyphFor(r rune) (tideterm.Glyph, bool) {
	if r == 0 || r == ' ' {
		return tideterm.Glyph{}, false
	}
	g, ok := f.cache[r]
	if !ok {
		g = f.rasterize(r)
		f.cache[r] = g
	}

	cols := 1
	if g.advance > f.cellW+f.cellW/2 {
		cols = 2
	}
	return tideterm.Glyph{
		Pix:         g,
		Y:           f.ascent,
		Width:       f.cellW * cols,
		Height:      f.cellH,
		Cols:        cols,
		PreRendered: false,
	}, true
}

func (f *Font) rasterize(r rune) *glyphSurface {
	cFamily := C.CString(f.family)
	defer C.free(unsafe.Pointer(cFamily))

	bold, italic := 0, 0
	if f.bold {
		bold = 1
	}
	if f.italic {
		italic = 1
	}

	var advance C.int
	cSurface := C.render_glyph_mask(cFamily, C.int(f.size), C.int(bold), C.int(italic),
		C.int(f.cellW), C.int(f.cellH), C.gunichar(r), &advance)

	g := &glyphSurface{ptr: unsafe.Pointer(cSurface), advance: int(advance)}
	runtime.SetFinalizer(g, freeGlyphSurface)
	return g
}

func freeGlyphSurface(g *glyphSurface) {
	C.destroy_glyph_surface((*C.cairo_surface_t)(g.ptr))
}

// Underline returns this font's underline position/thickness.
func (f *Font) Underline() tideterm.LineMetrics { return f.underline }

// Strikeout returns this font's strikeout position/thickness.
func (f *Font) Strikeout() tideterm.LineMetrics { return f.strikeout }

// Extents returns the terminal-wide ascent/descent/height cmd/tideterm
// stores on term.Terminal for glyph-baseline and underline positioning.
func (f *Font) Extents() tideterm.FontExtents { return f.extents }

// CellSize returns the fixed cell box every glyph is rasterized into.
func (f *Font) CellSize() (w, h int) { return f.cellW, f.cellH }

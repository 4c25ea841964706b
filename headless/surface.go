// Package headless provides an in-process frame.Compositor over
// image.RGBA, plus the ANSI preview renderer (cli.go) used when no
// Wayland display is available. It replaces the teacher's cli/renderer.go
// terminal-in-a-terminal rendering path and stands in for package
// gtkshell when no display is available.
package headless

import (
	"image"
	"image/draw"
	"sync"

	"github.com/tideterm/tideterm"
)

// Surface is an in-memory pixel buffer implementing both render.Surface
// (drawing primitives) and frame.Buffer (the compositor-buffer seam),
// backed directly by image.RGBA rather than a GPU/Wayland buffer.
type Surface struct {
	mu   sync.Mutex
	img  *image.RGBA
	busy bool
}

// NewSurface allocates a w x h pixel surface, zeroed to transparent black.
func NewSurface(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.RGBA so callers can read the rendered
// pixels directly.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

func rgbaColor(c tideterm.RGBA) (r, g, b, a uint8) {
	af := float64(c.A) / 0xFFFF
	return c.R, c.G, c.B, uint8(af * 255)
}

// FillRect draws an alpha-blended solid rectangle.
func (s *Surface) FillRect(x, y, w, h int, c tideterm.RGBA) {
	r, g, b, a := rgbaColor(c)
	rect := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if rect.Empty() {
		return
	}
	src := &image.Uniform{C: colorNRGBA(r, g, b, a)}
	draw.Draw(s.img, rect, src, image.Point{}, draw.Over)
}

// StrokeRect draws a one-pixel-wide rectangle outline.
func (s *Surface) StrokeRect(x, y, w, h int, c tideterm.RGBA) {
	s.FillRect(x, y, w, 1, c)
	s.FillRect(x, y+h-1, w, 1, c)
	s.FillRect(x, y, 1, h, c)
	s.FillRect(x+w-1, y, 1, h, c)
}

// CompositeGlyph draws a glyph onto the surface. Glyph.Pix is expected to
// hold an *image.Alpha mask (the common case: most fonts rasterize a
// coverage mask tinted by fg) or an *image.RGBA for PreRendered glyphs
// (e.g. color emoji) drawn as-is. A nil or unrecognized Pix draws nothing,
// matching a font backend that reported "no glyph" upstream.
func (s *Surface) CompositeGlyph(g tideterm.Glyph, x, y int, fg tideterm.RGBA, preRendered bool) {
	dstPt := image.Pt(x, y)
	dstRect := image.Rectangle{Min: dstPt, Max: dstPt.Add(image.Pt(g.Width, g.Height))}

	switch pix := g.Pix.(type) {
	case *image.Alpha:
		fgColor := colorNRGBA(fg.R, fg.G, fg.B, 255)
		draw.DrawMask(s.img, dstRect, &image.Uniform{C: fgColor}, image.Point{}, pix, image.Point{}, draw.Over)
	case *image.RGBA:
		draw.Draw(s.img, dstRect, pix, image.Point{}, draw.Over)
	}
}

// CopyRect performs an in-buffer pixel memmove, the scroll-damage fast
// path orchestrator.renderFrame relies on (step 4 of its ten steps).
func (s *Surface) CopyRect(dstX, dstY, srcX, srcY, w, h int) {
	src := image.Rect(srcX, srcY, srcX+w, srcY+h)
	dst := image.Rect(dstX, dstY, dstX+w, dstY+h)
	// draw.Draw copies row by row in the direction that avoids clobbering
	// overlapping source/destination regions when src and dst are the
	// same image, same as the stdlib's own documented behavior for
	// image/draw.Draw with op=Src.
	draw.Draw(s.img, dst, s.img, src.Min, draw.Src)
}

// Busy reports whether the buffer is in use: acquired for a frame or
// still attached as the front buffer. Compositor.Acquire only reuses
// buffers that are not busy.
func (s *Surface) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// SetBusy sets the busy flag. Compositor.Acquire sets it; Compositor.Attach
// clears it on the buffer it replaces as front, and frame.Orchestrator
// clears it on a buffer it acquired for a frame with nothing to draw.
func (s *Surface) SetBusy(b bool) {
	s.mu.Lock()
	s.busy = b
	s.mu.Unlock()
}

func colorNRGBA(r, g, b, a uint8) nrgbaColor {
	return nrgbaColor{r, g, b, a}
}

// nrgbaColor is a minimal color.Color so this file doesn't need the
// "image/color" import just for NRGBA literals.
type nrgbaColor struct {
	R, G, B, A uint8
}

func (c nrgbaColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

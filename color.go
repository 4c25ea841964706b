package tideterm

// Color is a packed 24-bit RGB color plus an explicit "is this set" flag.
//
// The original C implementation this core is derived from packed a similar
// flag into the high bit of a 32-bit color word (cursor_color.text >> 31).
// Go has no reason to steal a bit that way, so the flag is its own field.
type Color struct {
	Set     bool
	R, G, B uint8
}

// RGBA is a resolved, alpha-carrying color ready to hand to a Surface. Alpha
// is 16-bit to match the precision the original pixman-based renderer used
// for background alpha blending.
type RGBA struct {
	R, G, B uint8
	A       uint16
}

// Unset is the zero-value "no color configured" sentinel.
var Unset = Color{}

// Opaque returns c as a fully-opaque RGBA value.
func (c Color) Opaque() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 0xFFFF}
}

// WithAlpha returns c as an RGBA value carrying the given alpha.
func (c Color) WithAlpha(a uint16) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Dim halves each RGB component, matching the original renderer's
// pixman_color_dim (used for the "dim" SGR attribute).
func (c RGBA) Dim() RGBA {
	c.R /= 2
	c.G /= 2
	c.B /= 2
	return c
}

// Palette holds the terminal-wide default colors and rendering parameters
// described in spec.md's "Config surface consumed by the core".
type Palette struct {
	FG, BG      Color
	Alpha       uint16 // background alpha when no cursor is present
	CursorText  Color  // overrides fg when set and a block cursor is drawn
	CursorBG    Color  // overrides bg when set and a block cursor is drawn; also colors a bar/underline cursor
}

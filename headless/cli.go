package headless

import (
	"fmt"
	"io"
	"strings"

	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/term"
)

// Preview renders t's visible grid as ANSI/SGR text onto w: a terminal
// drawing a terminal, used when no Wayland display is reachable. It is a
// straight differential-free adaptation of the teacher's cli.Renderer.
// Render, minus the border/status-bar/scrollbar chrome (no SPEC_FULL.md
// component models a host window around the grid) and the previous-frame
// diff cache (that optimization paid for itself against a real terminal's
// write-syscall cost; this preview is for one-shot inspection, not a
// render loop).
func Preview(t *term.Terminal, w io.Writer) {
	var out strings.Builder
	out.WriteString("\x1b[?25l")

	var curFG, curBG tideterm.Color
	var curAttrs tideterm.Attr
	first := true

	for row := 0; row < t.Rows; row++ {
		r := t.Active.RowInView(row)
		for col := 0; col < t.Cols; col++ {
			cell := r.Cells[col]
			fg, bg := cell.FG, cell.BG
			if cell.Attrs.Has(tideterm.AttrReverse) != t.Reverse {
				fg, bg = bg, fg
			}

			if first || fg != curFG || bg != curBG || cell.Attrs != curAttrs {
				out.WriteString("\x1b[0")
				if cell.Attrs.Has(tideterm.AttrBold) {
					out.WriteString(";1")
				}
				if cell.Attrs.Has(tideterm.AttrDim) {
					out.WriteString(";2")
				}
				if cell.Attrs.Has(tideterm.AttrItalic) {
					out.WriteString(";3")
				}
				if cell.Attrs.Has(tideterm.AttrUnderline) {
					out.WriteString(";4")
				}
				if cell.Attrs.Has(tideterm.AttrBlink) {
					out.WriteString(";5")
				}
				if cell.Attrs.Has(tideterm.AttrStrikethrough) {
					out.WriteString(";9")
				}
				if fg.Set {
					out.WriteString(";")
					out.WriteString(sgrColor(fg, true))
				}
				if bg.Set {
					out.WriteString(";")
					out.WriteString(sgrColor(bg, false))
				}
				out.WriteString("m")
				curFG, curBG, curAttrs = fg, bg, cell.Attrs
				first = false
			}

			if cell.Rune == 0 {
				out.WriteRune(' ')
			} else {
				out.WriteRune(cell.Rune)
			}
		}
		out.WriteString("\r\n")
	}

	out.WriteString("\x1b[0m")
	if !t.HideCursor {
		fmt.Fprintf(&out, "\x1b[%d;%dH\x1b[?25h", t.Cursor.Row+1, t.Cursor.Col+1)
	}

	io.WriteString(w, out.String())
}

// sgrColor renders a resolved color as a 24-bit-truecolor SGR fragment
// (38/48;2;r;g;b), the one encoding that round-trips any tideterm.Color
// exactly regardless of which SGR form originally produced it.
func sgrColor(c tideterm.Color, isFG bool) string {
	base := "38"
	if !isFG {
		base = "48"
	}
	return fmt.Sprintf("%s;2;%d;%d;%d", base, c.R, c.G, c.B)
}

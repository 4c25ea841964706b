package vt

import (
	"strconv"
	"strings"

	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/grid"
	"github.com/tideterm/tideterm/term"
	"github.com/tideterm/tideterm/wcwidth"
)

// Parser is a trimmed adaptation of the teacher's ANSI/VT state machine: it
// keeps the ground/escape/CSI/OSC states and the operations that mutate a
// grid.Grid, dropping the teacher's custom-glyph, sprite, and screen-crop
// OSC extensions (DESIGN.md) and its variable-width-cell/ANS-art-specific
// machinery, since this core has no such rendering mode.
//
// A Parser is not safe for concurrent use; callers own serializing reads
// from the PTY onto a single goroutine, same as the teacher's Buffer.
type Parser struct {
	t     *term.Terminal
	state parserState

	csiParams       []int
	csiRawParams    []string
	csiPrivate      byte
	csiIntermediate byte
	csiParamFlushed bool
	csiBuf          strings.Builder

	oscCmd int
	oscBuf strings.Builder

	utf8Buf  []byte
	utf8Need int

	attrs tideterm.Attr
	fg    tideterm.Color
	bg    tideterm.Color

	autoWrap  bool
	pendWrap  bool // DECAWM: last column written, wrap deferred until next printable
	savedCol  int
	savedRow  int
	altActive bool

	palettes map[int][]tideterm.Color
}

type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
	stateCSIParam
	stateOSC
	stateOSCString
	stateCharset
	stateDECLineAttr
)

// NewParser builds a Parser driving t. t should already be sized and
// carrying its starting palette.
func NewParser(t *term.Terminal) *Parser {
	return &Parser{
		t:        t,
		autoWrap: true,
		csiParams: make([]int, 0, 16),
		palettes: make(map[int][]tideterm.Color),
	}
}

// Parse feeds a chunk of PTY output through the state machine.
func (p *Parser) Parse(data []byte) {
	for _, b := range data {
		p.processByte(b)
	}
}

func (p *Parser) processByte(b byte) {
	if p.utf8Need > 0 {
		if b&0xC0 == 0x80 {
			p.utf8Buf = append(p.utf8Buf, b)
			p.utf8Need--
			if p.utf8Need == 0 {
				r := decodeUTF8(p.utf8Buf)
				if p.state == stateGround {
					p.writeRune(r)
				}
				p.utf8Buf = p.utf8Buf[:0]
			}
			return
		}
		p.utf8Buf = p.utf8Buf[:0]
		p.utf8Need = 0
	}

	if p.state == stateGround {
		switch {
		case b&0xE0 == 0xC0:
			p.utf8Buf = append(p.utf8Buf[:0], b)
			p.utf8Need = 1
			return
		case b&0xF0 == 0xE0:
			p.utf8Buf = append(p.utf8Buf[:0], b)
			p.utf8Need = 2
			return
		case b&0xF8 == 0xF0:
			p.utf8Buf = append(p.utf8Buf[:0], b)
			p.utf8Need = 3
			return
		}
	}

	switch p.state {
	case stateGround:
		p.handleGround(b)
	case stateEscape:
		p.handleEscape(b)
	case stateCSI, stateCSIParam:
		p.handleCSI(b)
	case stateOSC:
		p.handleOSC(b)
	case stateOSCString:
		p.handleOSCString(b)
	case stateCharset:
		p.state = stateGround
	case stateDECLineAttr:
		p.state = stateGround
	}
}

func decodeUTF8(buf []byte) rune {
	switch len(buf) {
	case 2:
		return rune(buf[0]&0x1F)<<6 | rune(buf[1]&0x3F)
	case 3:
		return rune(buf[0]&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F)
	case 4:
		return rune(buf[0]&0x07)<<18 | rune(buf[1]&0x3F)<<12 | rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F)
	default:
		return 0xFFFD
	}
}

func (p *Parser) handleGround(b byte) {
	switch b {
	case 0x00, 0x07:
	case 0x08:
		p.backspace()
	case 0x09:
		p.tab()
	case 0x0A, 0x0B, 0x0C:
		p.lineFeed()
	case 0x0D:
		p.carriageReturn()
	case 0x1B:
		p.state = stateEscape
	default:
		if b >= 0x20 && b < 0x7F {
			p.writeRune(rune(b))
		}
	}
}

func (p *Parser) handleEscape(b byte) {
	switch b {
	case '[':
		p.state = stateCSI
		p.csiParams = p.csiParams[:0]
		p.csiRawParams = p.csiRawParams[:0]
		p.csiPrivate = 0
		p.csiIntermediate = 0
		p.csiParamFlushed = false
		p.csiBuf.Reset()
	case ']':
		p.state = stateOSC
		p.oscBuf.Reset()
	case '(', ')':
		p.state = stateCharset
	case '#':
		p.state = stateDECLineAttr
	case '7':
		p.saveCursor()
		p.state = stateGround
	case '8':
		p.restoreCursor()
		p.state = stateGround
	case 'c':
		p.reset()
		p.state = stateGround
	case 'D':
		p.index()
		p.state = stateGround
	case 'E':
		p.carriageReturn()
		p.lineFeed()
		p.state = stateGround
	case 'M':
		p.reverseIndex()
		p.state = stateGround
	default:
		p.state = stateGround
	}
}

func (p *Parser) handleCSI(b byte) {
	if p.state == stateCSI {
		if b == '?' || b == '>' || b == '!' || b == '<' {
			p.csiPrivate = b
			p.state = stateCSIParam
			return
		}
		p.state = stateCSIParam
	}

	if b >= '0' && b <= '9' {
		p.csiBuf.WriteByte(b)
		p.csiParamFlushed = false
		return
	}
	if b == ';' {
		p.parseCSIParam()
		p.csiParamFlushed = false
		return
	}
	if b == ':' {
		p.csiBuf.WriteByte(b)
		p.csiParamFlushed = false
		return
	}
	if b >= 0x20 && b <= 0x2F {
		p.parseCSIParam()
		p.csiParamFlushed = true
		p.csiIntermediate = b
		return
	}

	if !p.csiParamFlushed {
		p.parseCSIParam()
	}
	p.executeCSI(b)
	p.state = stateGround
}

func (p *Parser) parseCSIParam() {
	s := p.csiBuf.String()
	p.csiRawParams = append(p.csiRawParams, s)
	base := s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		base = s[:i]
	}
	n, _ := strconv.Atoi(base)
	p.csiParams = append(p.csiParams, n)
	p.csiBuf.Reset()
}

func (p *Parser) getParam(idx, def int) int {
	if idx < len(p.csiParams) && p.csiParams[idx] > 0 {
		return p.csiParams[idx]
	}
	return def
}

func (p *Parser) executeCSI(final byte) {
	switch final {
	case 'A':
		p.moveCursor(0, -p.getParam(0, 1))
	case 'B':
		p.moveCursor(0, p.getParam(0, 1))
	case 'C':
		p.moveCursor(p.getParam(0, 1), 0)
	case 'D':
		p.moveCursor(-p.getParam(0, 1), 0)
	case 'E':
		p.moveCursor(0, p.getParam(0, 1))
		p.carriageReturn()
	case 'F':
		p.moveCursor(0, -p.getParam(0, 1))
		p.carriageReturn()
	case 'G':
		p.setCursor(p.getParam(0, 1)-1, p.t.Cursor.Row)
	case 'H', 'f':
		p.setCursor(p.getParam(1, 1)-1, p.getParam(0, 1)-1)
	case 'J':
		switch p.getParam(0, 0) {
		case 0:
			p.eraseToEndOfScreen()
		case 1:
			p.eraseToStartOfScreen()
		case 2, 3:
			p.eraseScreen()
			p.setCursor(0, 0)
		}
	case 'K':
		switch p.getParam(0, 0) {
		case 0:
			p.eraseToEndOfLine()
		case 1:
			p.eraseToStartOfLine()
		case 2:
			p.eraseLine()
		}
	case 'L':
		p.insertLines(p.getParam(0, 1))
	case 'M':
		p.deleteLines(p.getParam(0, 1))
	case 'P':
		p.deleteChars(p.getParam(0, 1))
	case '@':
		p.insertChars(p.getParam(0, 1))
	case 'X':
		p.eraseChars(p.getParam(0, 1))
	case 'S':
		p.scrollUp(p.getParam(0, 1))
	case 'T':
		p.scrollDown(p.getParam(0, 1))
	case 'd':
		p.setCursor(p.t.Cursor.Col, p.getParam(0, 1)-1)
	case 'm':
		p.executeSGR()
	case 'h':
		if p.csiPrivate == '?' {
			p.setPrivateModes(true)
		}
	case 'l':
		if p.csiPrivate == '?' {
			p.setPrivateModes(false)
		}
	case 's':
		p.saveCursor()
	case 'u':
		p.restoreCursor()
	case 'r':
		p.setScrollRegion()
	case 'q':
		if p.csiIntermediate == ' ' {
			p.setCursorStyle(p.getParam(0, 1))
		}
	}
}

func (p *Parser) setScrollRegion() {
	top := p.getParam(0, 1) - 1
	bottom := p.getParam(1, p.t.Rows)
	if top < 0 {
		top = 0
	}
	if bottom > p.t.Rows {
		bottom = p.t.Rows
	}
	if bottom-top < 2 {
		p.t.ScrollRegion = term.ScrollRegion{Start: 0, End: p.t.Rows}
		return
	}
	p.t.ScrollRegion = term.ScrollRegion{Start: top, End: bottom}
	p.setCursor(0, top)
}

func (p *Parser) setCursorStyle(style int) {
	var shape tideterm.CursorStyle
	switch style {
	case 3, 4:
		shape = tideterm.CursorUnderline
	case 5, 6:
		shape = tideterm.CursorBar
	default:
		shape = tideterm.CursorBlock
	}
	p.t.CursorStyle = shape
}

func (p *Parser) setPrivateModes(set bool) {
	for _, param := range p.csiParams {
		switch param {
		case 5:
			p.t.Reverse = set
		case 7:
			p.autoWrap = set
		case 25:
			p.t.HideCursor = !set
		case 1049:
			p.setAltScreen(set)
		case 2004:
			// Bracketed paste: handled by the key-input layer, outside
			// this core's scope (no keyboard dispatch lives here).
		}
	}
}

func (p *Parser) setAltScreen(enable bool) {
	if enable == p.altActive {
		return
	}
	p.altActive = enable
	if enable {
		p.t.Active = p.t.Alt
	} else {
		p.t.Active = p.t.Normal
	}
	p.t.Cursor = term.Cursor{}
	p.t.ScrollRegion = term.ScrollRegion{Start: 0, End: p.t.Rows}
	for r := 0; r < p.t.Rows; r++ {
		p.t.Active.RowInView(r).MarkAllDirty()
	}
}

func (p *Parser) executeSGR() {
	if len(p.csiParams) == 0 {
		p.resetAttrs()
		return
	}
	i := 0
	for i < len(p.csiParams) {
		param := p.csiParams[i]
		switch {
		case param == 0:
			p.resetAttrs()
		case param == 1:
			p.attrs |= tideterm.AttrBold
		case param == 2:
			p.attrs &^= tideterm.AttrBold
			p.attrs |= tideterm.AttrDim
		case param == 3:
			p.attrs |= tideterm.AttrItalic
		case param == 4:
			p.attrs |= tideterm.AttrUnderline
		case param == 5 || param == 6:
			p.attrs |= tideterm.AttrBlink
		case param == 7:
			p.attrs |= tideterm.AttrReverse
		case param == 8:
			p.attrs |= tideterm.AttrConceal
		case param == 9:
			p.attrs |= tideterm.AttrStrikethrough
		case param == 21 || param == 22:
			p.attrs &^= tideterm.AttrBold | tideterm.AttrDim
		case param == 23:
			p.attrs &^= tideterm.AttrItalic
		case param == 24:
			p.attrs &^= tideterm.AttrUnderline
		case param == 25:
			p.attrs &^= tideterm.AttrBlink
		case param == 27:
			p.attrs &^= tideterm.AttrReverse
		case param == 28:
			p.attrs &^= tideterm.AttrConceal
		case param == 29:
			p.attrs &^= tideterm.AttrStrikethrough
		case param >= 30 && param <= 37:
			p.fg = standardColor(param - 30)
			p.attrs |= tideterm.AttrHaveFG
		case param >= 90 && param <= 97:
			p.fg = standardColor(param - 90 + 8)
			p.attrs |= tideterm.AttrHaveFG
		case param >= 40 && param <= 47:
			p.bg = standardColor(param - 40)
			p.attrs |= tideterm.AttrHaveBG
		case param >= 100 && param <= 107:
			p.bg = standardColor(param - 100 + 8)
			p.attrs |= tideterm.AttrHaveBG
		case param == 38:
			if c, consumed, ok := p.extendedColor(i); ok {
				p.fg = c
				p.attrs |= tideterm.AttrHaveFG
				i += consumed
			}
		case param == 48:
			if c, consumed, ok := p.extendedColor(i); ok {
				p.bg = c
				p.attrs |= tideterm.AttrHaveBG
				i += consumed
			}
		case param == 39:
			p.attrs &^= tideterm.AttrHaveFG
		case param == 49:
			p.attrs &^= tideterm.AttrHaveBG
		}
		i++
	}
}

// extendedColor parses a 38/48-style extended color at csiParams[i],
// preferring the colon subparameter form (38:5:N, 38:2:[cs]:R:G:B) and
// falling back to the legacy semicolon form (38;5;N, 38;2;R;G;B). Returns
// the resolved color and how many extra top-level params it consumed.
func (p *Parser) extendedColor(i int) (tideterm.Color, int, bool) {
	if i < len(p.csiRawParams) {
		sgr := parseSGRParam(p.csiRawParams[i])
		if len(sgr.Subs) >= 2 && sgr.Subs[0] == 5 {
			return paletteColor(sgr.Subs[1]), 0, true
		}
		if len(sgr.Subs) >= 4 && sgr.Subs[0] == 2 {
			r, g, b := sgr.Subs[len(sgr.Subs)-3], sgr.Subs[len(sgr.Subs)-2], sgr.Subs[len(sgr.Subs)-1]
			return trueColor(r, g, b), 0, true
		}
	}
	if i+2 < len(p.csiParams) && p.csiParams[i+1] == 5 {
		return paletteColor(p.csiParams[i+2]), 2, true
	}
	if i+4 < len(p.csiParams) && p.csiParams[i+1] == 2 {
		return trueColor(p.csiParams[i+2], p.csiParams[i+3], p.csiParams[i+4]), 4, true
	}
	return tideterm.Color{}, 0, false
}

// SGRParam is a parsed colon-subparameter group, e.g. "38:2:255:128:0"
// becomes {Base: 38, Subs: [2, 255, 128, 0]}.
type SGRParam struct {
	Base int
	Subs []int
}

func parseSGRParam(raw string) SGRParam {
	if raw == "" {
		return SGRParam{}
	}
	parts := strings.Split(raw, ":")
	base, _ := strconv.Atoi(parts[0])
	subs := make([]int, 0, len(parts)-1)
	for _, s := range parts[1:] {
		n, _ := strconv.Atoi(s)
		subs = append(subs, n)
	}
	return SGRParam{Base: base, Subs: subs}
}

func (p *Parser) handleOSC(b byte) {
	if b >= '0' && b <= '9' {
		p.oscBuf.WriteByte(b)
		return
	}
	if b == ';' {
		p.oscCmd, _ = strconv.Atoi(p.oscBuf.String())
		p.oscBuf.Reset()
		p.state = stateOSCString
		return
	}
	p.state = stateGround
}

func (p *Parser) handleOSCString(b byte) {
	if b == 0x07 || b == 0x1B {
		p.executeOSC()
		p.state = stateGround
		return
	}
	p.oscBuf.WriteByte(b)
}

// executeOSC handles OSC 7000 palette management, the one OSC extension of
// the teacher's kept per DESIGN.md (glyph/sprite/screen-crop dropped — this
// core has no matching rendering mode for any of them).
func (p *Parser) executeOSC() {
	if p.oscCmd != 7000 {
		return
	}
	args := p.oscBuf.String()
	parts := strings.Split(args, ";")
	if len(parts) == 0 {
		return
	}
	switch parts[0] {
	case "da":
		p.palettes = make(map[int][]tideterm.Color)
	case "d":
		if len(parts) >= 2 {
			n, _ := strconv.Atoi(parts[1])
			delete(p.palettes, n)
		}
	case "i":
		if len(parts) >= 3 {
			n, _ := strconv.Atoi(parts[1])
			length, _ := strconv.Atoi(parts[2])
			p.palettes[n] = make([]tideterm.Color, length)
		}
	case "s":
		p.setPaletteEntry(parts)
	}
}

func (p *Parser) setPaletteEntry(parts []string) {
	if len(parts) < 4 {
		return
	}
	n, _ := strconv.Atoi(parts[1])
	idx, _ := strconv.Atoi(parts[2])
	pal := p.palettes[n]
	if idx < 0 || idx >= len(pal) {
		return
	}
	switch parts[3] {
	case "5":
		if len(parts) >= 5 {
			code, _ := strconv.Atoi(parts[4])
			pal[idx] = paletteColor(code)
		}
	case "r":
		if len(parts) >= 7 {
			r, _ := strconv.Atoi(parts[4])
			g, _ := strconv.Atoi(parts[5])
			b, _ := strconv.Atoi(parts[6])
			pal[idx] = trueColor(r, g, b)
		}
	default:
		code, _ := strconv.Atoi(parts[3])
		pal[idx] = standardColor(code)
	}
}

func (p *Parser) resetAttrs() {
	p.attrs = 0
	p.fg = tideterm.Color{}
	p.bg = tideterm.Color{}
}

func (p *Parser) reset() {
	p.resetAttrs()
	p.eraseScreen()
	p.setCursor(0, 0)
}

// wcwidth.Width classifies a rune's on-screen column footprint; writeRune
// only special-cases the wide (2-column) case since this core's Cell has
// no combining-mark storage: zero-width runes take one cell like narrow ones.
func (p *Parser) writeRune(r rune) {
	t := p.t
	width := wcwidth.Width(r)
	if width <= 0 {
		width = 1
	}

	if p.pendWrap {
		p.carriageReturn()
		p.lineFeed()
		p.pendWrap = false
	}

	if t.Cursor.Col+width > t.Cols {
		if p.autoWrap {
			p.carriageReturn()
			p.lineFeed()
		} else {
			t.Cursor.Col = t.Cols - width
			if t.Cursor.Col < 0 {
				t.Cursor.Col = 0
			}
		}
	}

	row := p.curRow()
	cell := &row.Cells[t.Cursor.Col]
	cell.Set(r, p.attrs, p.fg, p.bg)
	row.MarkDirty(t.Cursor.Col)

	for c := 1; c < width && t.Cursor.Col+c < t.Cols; c++ {
		filler := &row.Cells[t.Cursor.Col+c]
		filler.Set(0, p.attrs, p.fg, p.bg)
		row.MarkDirty(t.Cursor.Col + c)
	}

	t.Cursor.Col += width
	if t.Cursor.Col >= t.Cols {
		t.Cursor.Col = t.Cols - 1
		p.pendWrap = p.autoWrap
	}
}

func (p *Parser) curRow() *grid.Row {
	t := p.t
	return t.Active.RowAt(t.Active.Offset + t.Cursor.Row)
}

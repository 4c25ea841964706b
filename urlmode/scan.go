package urlmode

import (
	"strings"

	"github.com/tideterm/tideterm/grid"
)

// protocols are matched case-insensitively as a suffix of the sliding
// scan window; longest-recognized-first doesn't matter since every match
// transitions state immediately.
var protocols = []string{
	"http://",
	"https://",
	"ftp://",
	"ftps://",
	"file://",
	"gemini://",
	"gopher://",
}

// trimSet is trailing punctuation that commonly follows a URL in prose
// rather than belonging to it ("see https://example.com.").
const trimSet = ".,:;?!\"'%"

func isURLRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(`-._~:/?#@!$&'*+,;="%`, r)
}

type scanState int

const (
	stateProtocol scanState = iota
	stateURL
)

// Collect scans every visible cell of src once, column-major within
// row-major order, and returns the URLs it auto-detects, tagged with
// action. Keys are not assigned; call AssignHints for that.
func Collect(src GridSource, action Action) []URL {
	maxProtLen := 0
	for _, p := range protocols {
		if n := len([]rune(p)); n > maxProtLen {
			maxProtLen = n
		}
	}

	var window []rune
	var windowCoords []grid.Coord

	state := stateProtocol
	var start grid.Coord
	var buf []rune
	parens, brackets := 0, 0

	var urls []URL

	emit := func(end grid.Coord) {
		for len(buf) > 0 && strings.ContainsRune(trimSet, buf[len(buf)-1]) {
			buf = buf[:len(buf)-1]
			end.Col--
			if end.Col < 0 {
				end.Row--
				end.Col = src.Cols() - 1
			}
		}
		if len(buf) == 0 {
			return
		}
		urls = append(urls, URL{
			Text:   string(buf),
			Start:  grid.Coord{Col: start.Col, Row: start.Row + src.View()},
			End:    grid.Coord{Col: end.Col, Row: end.Row + src.View()},
			Action: action,
		})
	}

	for r := 0; r < src.Rows(); r++ {
		row := src.RowInView(r)
		for c := 0; c < src.Cols(); c++ {
			wc := row.Cells[c].Rune

			switch state {
			case stateProtocol:
				window = append(window, wc)
				windowCoords = append(windowCoords, grid.Coord{Col: c, Row: r})
				if len(window) > maxProtLen {
					window = window[len(window)-maxProtLen:]
					windowCoords = windowCoords[len(windowCoords)-maxProtLen:]
				}

				for _, p := range protocols {
					pr := len([]rune(p))
					if len(window) < pr {
						continue
					}
					suffix := window[len(window)-pr:]
					if strings.EqualFold(string(suffix), p) {
						state = stateURL
						start = windowCoords[len(windowCoords)-pr]
						buf = append([]rune{}, suffix...)
						parens, brackets = 0, 0
						break
					}
				}

			case stateURL:
				emitNow := false
				switch {
				case isURLRune(wc):
					buf = append(buf, wc)
				case wc == '(':
					parens++
					buf = append(buf, wc)
				case wc == '[':
					brackets++
					buf = append(buf, wc)
				case wc == ')':
					parens--
					if parens < 0 {
						emitNow = true
					} else {
						buf = append(buf, wc)
					}
				case wc == ']':
					brackets--
					if brackets < 0 {
						emitNow = true
					} else {
						buf = append(buf, wc)
					}
				default:
					emitNow = true
				}

				if c >= src.Cols()-1 && row.Linebreak {
					emitNow = true
				}

				if emitNow {
					end := grid.Coord{Col: c, Row: r}
					end.Col--
					if end.Col < 0 {
						end.Row--
						end.Col = src.Cols() - 1
					}
					emit(end)

					state = stateProtocol
					buf = nil
					parens, brackets = 0, 0
					window = nil
					windowCoords = nil
				}
			}
		}
	}

	return urls
}

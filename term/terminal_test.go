package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/grid"
	"github.com/tideterm/tideterm/urlmode"
)

func newTestTerminal(cols, rows, scrollback int) *Terminal {
	pal := tideterm.Palette{FG: tideterm.Color{Set: true, R: 255, G: 255, B: 255}}
	return New(cols, rows, scrollback, pal, tideterm.DiscardLogger())
}

func TestNewStartsOnNormalGridWithInactiveSelection(t *testing.T) {
	term := newTestTerminal(80, 24, 100)

	assert.Same(t, term.Normal, term.Active)
	assert.Equal(t, 124, term.Normal.NumRows)
	assert.Equal(t, 24, term.Alt.NumRows)
	assert.False(t, term.Selection.Active())
}

func TestGridViewSatisfiesURLModeGridSource(t *testing.T) {
	term := newTestTerminal(10, 5, 0)
	var src urlmode.GridSource = term.GridView()

	assert.Equal(t, 10, src.Cols())
	assert.Equal(t, 5, src.Rows())
}

func TestResizeClampsCursorAndInvalidatesSelection(t *testing.T) {
	term := newTestTerminal(80, 24, 50)
	term.Cursor = Cursor{Col: 79, Row: 23}
	term.Selection = grid.Selection{Start: grid.Coord{Col: 0, Row: 0}, End: grid.Coord{Col: 5, Row: 0}}

	term.Resize(40, 10, 8, 16)

	assert.Equal(t, 39, term.Cursor.Col)
	assert.Equal(t, 9, term.Cursor.Row)
	assert.False(t, term.Selection.Active())
	assert.Nil(t, term.LastCursor.Cell)
	assert.Equal(t, 40, term.Cols)
	assert.Equal(t, 10, term.Rows)
}

func TestURLModeTagsAndUntagsCells(t *testing.T) {
	term := newTestTerminal(20, 3, 0)

	term.URLs = []urlmode.URL{{
		Text:  "http://x",
		Start: grid.Coord{Col: 0, Row: 0},
		End:   grid.Coord{Col: 7, Row: 0},
	}}
	term.tagURL(term.URLs[0], true)

	row := term.Active.RowInView(0)
	for c := 0; c <= 7; c++ {
		assert.True(t, row.Cells[c].Attrs.Has(tideterm.AttrURL))
	}
	assert.False(t, row.Cells[8].Attrs.Has(tideterm.AttrURL))

	term.ResetURLMode()
	assert.Empty(t, term.URLs)
}

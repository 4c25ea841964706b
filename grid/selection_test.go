package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionActive(t *testing.T) {
	var none Selection
	none.Start.Col, none.End.Col = -1, -1
	assert.False(t, none.Active())

	sel := Selection{Start: Coord{Col: 0, Row: 0}, End: Coord{Col: 5, Row: 0}}
	assert.True(t, sel.Active())
}

func TestCoordInSelectionSingleLine(t *testing.T) {
	sel := Selection{Start: Coord{Col: 2, Row: 10}, End: Coord{Col: 6, Row: 10}}

	assert.True(t, CoordInSelection(sel, 4, 0, 10))
	assert.False(t, CoordInSelection(sel, 1, 0, 10))
	assert.False(t, CoordInSelection(sel, 7, 0, 10))
	assert.False(t, CoordInSelection(sel, 4, 1, 10))
}

func TestCoordInSelectionMultiLine(t *testing.T) {
	sel := Selection{Start: Coord{Col: 5, Row: 0}, End: Coord{Col: 3, Row: 2}}

	assert.True(t, CoordInSelection(sel, 9, 0, 0))  // on start row, right of start col
	assert.False(t, CoordInSelection(sel, 1, 0, 0)) // on start row, left of start col
	assert.True(t, CoordInSelection(sel, 0, 1, 0))  // middle row, fully selected
	assert.True(t, CoordInSelection(sel, 3, 2, 0))  // end row, at end col
	assert.False(t, CoordInSelection(sel, 4, 2, 0)) // end row, past end col
}

// CoordInSelection must give the same answer regardless of which endpoint
// the caller calls Start vs End.
func TestCoordInSelectionSymmetricUnderSwap(t *testing.T) {
	a := Selection{Start: Coord{Col: 5, Row: 0}, End: Coord{Col: 3, Row: 2}}
	b := Selection{Start: a.End, End: a.Start}

	for row := 0; row <= 2; row++ {
		for col := 0; col < 10; col++ {
			assert.Equal(t, CoordInSelection(a, col, row, 0), CoordInSelection(b, col, row, 0))
		}
	}
}

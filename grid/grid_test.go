package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tideterm/tideterm"
)

func TestGridRingArithmetic(t *testing.T) {
	def := tideterm.Empty(tideterm.Unset, tideterm.Unset)
	g := New(10, 5, def)

	g.View = 3
	assert.Equal(t, 3, g.ViewRowIndex(0))
	assert.Equal(t, 4, g.ViewRowIndex(1))
	// wraps past NumRows
	assert.Equal(t, 2, g.ViewRowIndex(4))

	row := g.RowInView(4)
	assert.Same(t, g.RowAt(2), row)
}

func TestGridResizePreservesViewPosition(t *testing.T) {
	def := tideterm.Empty(tideterm.Unset, tideterm.Unset)
	g := New(10, 5, def)
	g.View = 2

	marker := tideterm.Cell{Rune: 'x'}
	g.RowInView(0).Cells[0] = marker

	g.Resize(10, 8, def)

	assert.Equal(t, 'x', g.RowInView(0).Cells[0].Rune)
	assert.Equal(t, 8, g.NumRows)
	assert.True(t, g.RowInView(0).Dirty)
}

func TestGridResizeTruncatesColumnsWithoutReflow(t *testing.T) {
	def := tideterm.Empty(tideterm.Unset, tideterm.Unset)
	g := New(10, 3, def)
	for i := 0; i < 10; i++ {
		g.RowInView(0).Cells[i] = tideterm.Cell{Rune: rune('a' + i)}
	}

	g.Resize(4, 3, def)

	assert.Len(t, g.RowInView(0).Cells, 4)
	assert.Equal(t, 'a', g.RowInView(0).Cells[0].Rune)
	assert.Equal(t, 'd', g.RowInView(0).Cells[3].Rune)
}

func TestModWrapsNegative(t *testing.T) {
	assert.Equal(t, 4, mod(-1, 5))
	assert.Equal(t, 0, mod(5, 5))
	assert.Equal(t, 3, mod(3, 5))
}

func TestScrollDamageQueue(t *testing.T) {
	def := tideterm.Empty(tideterm.Unset, tideterm.Unset)
	g := New(10, 5, def)

	assert.False(t, g.HasScrollDamage())

	g.EmitScrollDamage(DamageScroll, Region{Start: 0, End: 5}, 1)
	assert.True(t, g.HasScrollDamage())

	drained := g.DrainScrollDamage()
	assert.Len(t, drained, 1)
	assert.Equal(t, DamageScroll, drained[0].Kind)
	assert.False(t, g.HasScrollDamage())
}

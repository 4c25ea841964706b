package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tideterm/tideterm"
)

func TestScrollDamageOrderPreserved(t *testing.T) {
	def := tideterm.Empty(tideterm.Unset, tideterm.Unset)
	g := New(10, 20, def)

	g.EmitScrollDamage(DamageScroll, Region{Start: 0, End: 10}, 1)
	g.EmitScrollDamage(DamageScrollReverse, Region{Start: 2, End: 8}, 3)

	drained := g.DrainScrollDamage()
	if assert.Len(t, drained, 2) {
		assert.Equal(t, DamageScroll, drained[0].Kind)
		assert.Equal(t, DamageScrollReverse, drained[1].Kind)
		assert.Equal(t, 3, drained[1].Lines)
	}
}

func TestResizeDropsPendingScrollDamage(t *testing.T) {
	def := tideterm.Empty(tideterm.Unset, tideterm.Unset)
	g := New(10, 20, def)

	g.EmitScrollDamage(DamageScroll, Region{Start: 0, End: 10}, 2)
	g.Resize(10, 15, def)

	assert.False(t, g.HasScrollDamage())
}

func TestRegionLen(t *testing.T) {
	r := Region{Start: 3, End: 9}
	assert.Equal(t, 6, r.Len())
}

package wcwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablesAreMonotoneAndNonOverlapping(t *testing.T) {
	for name, table := range map[string][]ucsRange{
		"invalid":      ucsInvalid,
		"zero_width":   ucsZeroWidth,
		"double_width": ucsDoubleWidth,
	} {
		t.Run(name, func(t *testing.T) {
			for i, r := range table {
				assert.GreaterOrEqualf(t, r.Stop, r.Start, "range %d: stop < start", i)
				if i > 0 {
					assert.Greaterf(t, r.Start, table[i-1].Stop, "range %d overlaps or touches range %d", i, i-1)
				}
			}
		})
	}
}

func TestWidthSmoke(t *testing.T) {
	assert.Equal(t, 1, Width('a'))
	assert.Equal(t, 2, Width(0x1F972)) // 🥲
	assert.Equal(t, 1, Width(0x00AD))  // soft hyphen quirk
	assert.Equal(t, -1, Width(0x07))   // BEL, a C0 control
	assert.Equal(t, 0, Width(0))
	assert.Equal(t, 0, Width(0x200B)) // zero width space
}

func TestWidthTotality(t *testing.T) {
	sample := []rune{
		0, 1, 31, 0x7f, 0x9f, 0xa0, 0xad, 'A', 'z', '0',
		0x300, 0x2028, 0xd800, 0xdfff, 0xfdd0, 0xfffe,
		0x1100, 0x4e00, 0xac00, 0xff01, 0x1f600, 0x20000,
		0x10ffff,
	}
	for _, cp := range sample {
		w := Width(cp)
		assert.Containsf(t, []int{-1, 0, 1, 2}, w, "width(%#x)=%d out of range", cp, w)
		if cp != 0 {
			assert.Equal(t, w, StringWidth([]rune{cp}, 1))
		}
	}
}

func TestStringWidthStopsAtNULAndPropagatesInvalid(t *testing.T) {
	assert.Equal(t, 3, StringWidth([]rune("abc\x00def"), 100))
	assert.Equal(t, -1, StringWidth([]rune{'a', 0x07, 'b'}, 3))
	assert.Equal(t, 0, StringWidth(nil, 5))
}

func TestInTableBoundsCheck(t *testing.T) {
	assert.False(t, inTable(ucsDoubleWidth, 'a'))
	assert.True(t, inTable(ucsDoubleWidth, 0x4e00))
	assert.False(t, inTable(nil, 'a'))
}

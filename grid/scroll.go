package grid

// RotateRegion scrolls region (Offset-relative, half-open) by n rows without
// copying cell data: it rotates which *Row occupies each ring slot within
// the region and emits matching scroll damage for the renderer's pixel
// memmove, relying on the same property the renderer's whole scroll-damage
// design depends on — a Row's Clean bits describe its own cells, not a
// screen position, so moving the *Row pointer around the ring costs
// nothing and invalidates nothing. Only the rows uncovered at the
// scrolled-from edge are cleared and marked dirty.
//
// Used for DECSTBM-restricted regions (never touch scrollback) and for any
// reverse scroll of the default full-height region (real terminals don't
// resurrect scrollback on RI/SD; see package vt). Forward-scrolling the
// default full-height region on a grid with spare ring capacity
// (scrollback) instead advances Offset — see vt's Parser.scrollUp — to actually
// grow the scrollback instead of just discarding the top row.
func (g *Grid) RotateRegion(kind DamageKind, region Region, n int) {
	length := region.Len()
	if n <= 0 || length <= 0 {
		return
	}
	if n > length {
		n = length
	}

	abs := make([]int, length)
	rows := make([]*Row, length)
	for i := range abs {
		abs[i] = g.mod(g.Offset + region.Start + i)
		rows[i] = g.rows[abs[i]]
	}

	var rotated []*Row
	var clearFrom, clearTo int
	switch kind {
	case DamageScroll:
		rotated = append(append([]*Row{}, rows[n:]...), rows[:n]...)
		clearFrom, clearTo = length-n, length
	case DamageScrollReverse:
		rotated = append(append([]*Row{}, rows[length-n:]...), rows[:length-n]...)
		clearFrom, clearTo = 0, n
	}

	for i, a := range abs {
		g.rows[a] = rotated[i]
	}
	for i := clearFrom; i < clearTo; i++ {
		row := g.rows[abs[i]]
		for c := range row.Cells {
			row.Cells[c] = g.DefaultCell
		}
		row.Linebreak = false
		row.MarkAllDirty()
	}

	g.EmitScrollDamage(kind, region, n)
}

// ScrollBackUp advances Offset by n, growing scrollback by n rows on a grid
// with spare ring capacity (NumRows > Rows) and simply discarding the top
// line on one without (the alternate screen). It's the Offset-trick
// counterpart to RotateRegion, used only for forward scrolls of the
// default full-height scroll region — see vt.scrollUp.
func (g *Grid) ScrollBackUp(rows, n int) {
	if n <= 0 {
		return
	}
	trackView := g.View == g.Offset
	for i := 0; i < n; i++ {
		bottom := g.mod(g.Offset + rows)
		row := g.rows[bottom]
		for c := range row.Cells {
			row.Cells[c] = g.DefaultCell
		}
		row.Linebreak = false
		row.MarkAllDirty()
		g.Offset = g.mod(g.Offset + 1)
	}
	if trackView {
		g.View = g.Offset
	}
	g.EmitScrollDamage(DamageScroll, Region{Start: 0, End: rows}, n)
}

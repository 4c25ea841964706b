package grid

// Selection is an anchor/extent pair in grid-absolute row coordinates.
// The sentinel Col == -1 on either endpoint means "no selection".
type Selection struct {
	Start, End Coord
}

// Active reports whether a selection is in effect.
func (s Selection) Active() bool {
	return s.Start.Col != -1 && s.End.Col != -1
}

// normalized returns the endpoints ordered so Start <= End lexicographically
// by (row, col).
func (s Selection) normalized() (start, end Coord) {
	start, end = s.Start, s.End
	if start.Row > end.Row || (start.Row == end.Row && start.Col > end.Col) {
		start, end = end, start
	}
	return start, end
}

// CoordInSelection reports whether the visible position (col, rowInView),
// translated into absolute row space via view, falls within sel.
//
// This mirrors the C renderer's coord_is_selected exactly, including the
// first-line/last-line/middle-line cases and the invariance under swapping
// Start and End (testable property §8.5).
func CoordInSelection(sel Selection, col, rowInView, view int) bool {
	if !sel.Active() {
		return false
	}

	start, end := sel.normalized()
	row := rowInView + view

	if start.Row == end.Row {
		return row == start.Row && col >= start.Col && col <= end.Col
	}

	switch row {
	case start.Row:
		return col >= start.Col
	case end.Row:
		return col <= end.Col
	default:
		return row > start.Row && row < end.Row
	}
}

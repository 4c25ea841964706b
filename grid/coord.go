// Package grid implements the logical grid model: a ring-buffered row array
// per screen (normal and alternate), scroll damage tracking, and the
// cursor/blink/selection state a resize must invalidate.
//
// Resize never reflows logical lines — on resize, rows are copied
// column-truncated and the remainder filled with the default cell, matching the original
// C renderer's explicit non-goal. There is no line-wrap-aware reflow here
// and none is planned.
package grid

// Coord is an absolute grid coordinate: Row is a ring index, already
// adjusted by the grid's View cursor where the producer cares about
// "where on screen was this" at the moment of capture (e.g. urlmode.Collect
// adds View before returning coordinates, exactly as the C url-mode scanner
// does). Col is a plain 0-based column.
type Coord struct {
	Col, Row int
}

// Region is a half-open row range within a single grid (the scroll region,
// or a scroll-damage region), e.g. [Start, End).
type Region struct {
	Start, End int
}

// Len returns End-Start.
func (r Region) Len() int { return r.End - r.Start }

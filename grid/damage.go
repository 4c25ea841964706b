package grid

// DamageKind distinguishes a forward scroll (content moves up, new lines
// enter at the bottom) from a reverse scroll (content moves down).
type DamageKind int

const (
	DamageScroll DamageKind = iota
	DamageScrollReverse
)

// ScrollDamage is a pending region-local scroll to be realized by the
// renderer as a pixel-level memmove within the shared buffer, instead of
// redrawing every cell in the region. EmitScrollDamage does not move cell
// data itself — only the renderer's memmove actually "scrolls" pixels.
type ScrollDamage struct {
	Kind   DamageKind
	Region Region
	Lines  int
}

// EmitScrollDamage enqueues a damage record. The queue is a plain FIFO
// slice (design note: "intrusive lists become owned ordered sequences");
// DrainScrollDamage both returns and clears it, matching the C core's
// tll_foreach-then-tll_remove loop in grid_render.
func (g *Grid) EmitScrollDamage(kind DamageKind, region Region, lines int) {
	g.scrollDamage = append(g.scrollDamage, ScrollDamage{Kind: kind, Region: region, Lines: lines})
}

// DrainScrollDamage returns the queued damage records and empties the
// queue. Callers must apply them in order.
func (g *Grid) DrainScrollDamage() []ScrollDamage {
	d := g.scrollDamage
	g.scrollDamage = nil
	return d
}

// HasScrollDamage reports whether any damage is queued, used by the frame
// orchestrator to seed its "all_clean" flag (spec.md §4.D step: all_clean
// starts true iff the scroll damage queue is empty).
func (g *Grid) HasScrollDamage() bool {
	return len(g.scrollDamage) > 0
}

package frame

import (
	"sync"
	"sync/atomic"

	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/grid"
	"github.com/tideterm/tideterm/render"
	"github.com/tideterm/tideterm/term"
)

// State is the per-orchestrator frame state machine of spec.md §4.D.
type State int

const (
	Idle State = iota
	Rendering
	AwaitingFrameCallback
)

// Orchestrator drives one frame at a time against a Compositor. While a
// frame callback is outstanding, a Refresh request is coalesced into a
// single pending refresh rather than starting a second overlapping frame.
type Orchestrator struct {
	mu             sync.Mutex
	state          State
	pendingRefresh bool

	pool *Pool // nil means render every dirty row inline (workers == 0)
}

// NewOrchestrator builds an Orchestrator. Pass nil for pool to render
// every frame's dirty rows inline on the calling goroutine.
func NewOrchestrator(pool *Pool) *Orchestrator {
	return &Orchestrator{pool: pool}
}

// State reports the current frame state, mainly for tests.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Refresh is the explicit entry point of spec.md §4.D. If a frame is
// already rendering or a frame callback is outstanding, it records a
// pending refresh and returns immediately.
func (o *Orchestrator) Refresh(t *term.Terminal, comp Compositor) {
	o.mu.Lock()
	if o.state != Idle {
		o.pendingRefresh = true
		o.mu.Unlock()
		return
	}
	o.state = Rendering
	o.mu.Unlock()

	o.renderFrame(t, comp)
}

// OnFrameCallback is the compositor's frame-callback entry point: it
// returns the orchestrator to Idle and, if a refresh was coalesced while
// waiting, immediately starts the next frame.
func (o *Orchestrator) OnFrameCallback(t *term.Terminal, comp Compositor) {
	o.mu.Lock()
	o.state = Idle
	pending := o.pendingRefresh
	o.pendingRefresh = false
	o.mu.Unlock()

	if pending {
		o.Refresh(t, comp)
	}
}

// renderFrame is the ten-step per-frame procedure of spec.md §4.D.
func (o *Orchestrator) renderFrame(t *term.Terminal, comp Compositor) {
	workers := 0
	if o.pool != nil {
		workers = o.pool.N()
	}

	// Step 1: acquire.
	buf, err := comp.Acquire(t.Cols*t.CellWidth, t.Rows*t.CellHeight, 1+workers)
	if err != nil {
		if t.Logger != nil {
			t.Logger.Warn("frame: buffer acquire failed, skipping frame", "err", err)
		}
		o.mu.Lock()
		o.state = Idle
		o.mu.Unlock()
		return
	}

	allClean := !t.Active.HasScrollDamage()

	// Step 2: cursor erase.
	if eraseCursor(comp, buf, t) {
		allClean = false
	}

	// Step 3: margin refill. Acquire always requests a buffer sized to
	// exactly cols*cellWidth x rows*cellHeight, so there is never a
	// right/bottom pixel margin to refill in this implementation; what
	// remains from the original procedure is forcing a full-grid redraw
	// whenever the buffer's identity changed underneath the grid.
	if t.MarginDirty {
		for r := 0; r < t.Rows; r++ {
			t.Active.RowInView(r).MarkAllDirty()
		}
		t.MarginDirty = false
		allClean = false
	}

	// Step 4: scroll application.
	for _, d := range t.Active.DrainScrollDamage() {
		applyScrollDamage(comp, buf, t, d)
		allClean = false
	}

	// Step 5: row dispatch.
	dirtyRows := make([]int, 0, t.Rows)
	for r := 0; r < t.Rows; r++ {
		if t.Active.RowInView(r).Dirty {
			dirtyRows = append(dirtyRows, r)
		}
	}
	if len(dirtyRows) > 0 {
		allClean = false
	}

	var blinkNeeded int32
	renderRow := func(r int) {
		row := t.Active.RowInView(r)
		row.Dirty = false
		col := 0
		for col < t.Cols {
			cell := &row.Cells[col]
			n := render.RenderCell(buf, t, cell, col, r, false, func() {
				atomic.StoreInt32(&blinkNeeded, 1)
			})
			if n < 1 {
				n = 1
			}
			col += n
		}
		comp.DamageBuffer(0, r*t.CellHeight, t.Cols*t.CellWidth, t.CellHeight)
	}

	// Step 6: worker barrier (folded into Dispatch for workers > 0; inline
	// otherwise).
	if workers > 0 {
		o.pool.Dispatch(dirtyRows, renderRow)
	} else {
		for _, r := range dirtyRows {
			renderRow(r)
		}
	}

	if atomic.LoadInt32(&blinkNeeded) == 1 {
		t.Blink.Arm(func() { o.Refresh(t, comp) })
	}

	// Step 7: blink disarm.
	if t.Blink.Active && !anyVisibleBlinking(t) {
		t.Blink.Disarm()
	}

	// Step 8: cursor visibility.
	if paintCursor(comp, buf, t, func() { t.Blink.Arm(func() { o.Refresh(t, comp) }) }) {
		allClean = false
	}

	// Step 9: flash overlay.
	if t.Flash.Active {
		paintFlash(buf, t)
		comp.DamageBuffer(0, 0, t.Cols*t.CellWidth, t.Rows*t.CellHeight)
		allClean = false
	}

	// Step 10: submit.
	if allClean {
		buf.SetBusy(false)
		o.mu.Lock()
		o.state = Idle
		o.mu.Unlock()
		return
	}

	comp.Attach(buf)
	comp.SetBufferScale(1)
	comp.RequestFrameCallback(func() { o.OnFrameCallback(t, comp) })
	comp.Commit()

	o.mu.Lock()
	o.state = AwaitingFrameCallback
	o.mu.Unlock()
}

// applyScrollDamage realizes one queued scroll record as a pixel-level
// copy within buf, instead of redrawing every cell in the region.
func applyScrollDamage(comp Compositor, buf Buffer, t *term.Terminal, d grid.ScrollDamage) {
	ch := t.CellHeight
	width := t.Cols * t.CellWidth
	lines := d.Region.Len() - d.Lines
	if lines <= 0 {
		return
	}

	var srcY, dstY int
	switch d.Kind {
	case grid.DamageScroll:
		srcY = (d.Region.Start + d.Lines) * ch
		dstY = d.Region.Start * ch
	case grid.DamageScrollReverse:
		srcY = d.Region.Start * ch
		dstY = (d.Region.Start + d.Lines) * ch
	}

	buf.CopyRect(0, dstY, 0, srcY, width, lines*ch)
	comp.DamageBuffer(0, dstY, width, lines*ch)
}

// anyVisibleBlinking reports whether any cell currently in view carries
// AttrBlink, used by step 7 to decide whether to disarm the blink timer.
func anyVisibleBlinking(t *term.Terminal) bool {
	for r := 0; r < t.Rows; r++ {
		row := t.Active.RowInView(r)
		for c := 0; c < t.Cols; c++ {
			if row.Cells[c].Attrs.Has(tideterm.AttrBlink) {
				return true
			}
		}
	}
	return false
}

// paintFlash OVER-composites a half-alpha yellow across the whole buffer
// for the "visual bell" overlay. The OVER blend itself is a Surface
// backend detail; FillRect's alpha channel carries it through.
func paintFlash(buf Buffer, t *term.Terminal) {
	buf.FillRect(0, 0, t.Cols*t.CellWidth, t.Rows*t.CellHeight, tideterm.RGBA{R: 255, G: 255, B: 0, A: 0x7FFF})
}

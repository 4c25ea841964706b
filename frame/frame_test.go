package frame

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/grid"
	"github.com/tideterm/tideterm/term"
)

type fakeBuffer struct {
	mu    sync.Mutex
	busy  bool
	fills int
	glyphs int
	copies int
}

func (b *fakeBuffer) FillRect(x, y, w, h int, c tideterm.RGBA) {
	b.mu.Lock()
	b.fills++
	b.mu.Unlock()
}
func (b *fakeBuffer) CompositeGlyph(g tideterm.Glyph, x, y int, fg tideterm.RGBA, pre bool) {
	b.mu.Lock()
	b.glyphs++
	b.mu.Unlock()
}
func (b *fakeBuffer) StrokeRect(x, y, w, h int, c tideterm.RGBA) {}
func (b *fakeBuffer) CopyRect(dstX, dstY, srcX, srcY, w, h int) {
	b.mu.Lock()
	b.copies++
	b.mu.Unlock()
}
func (b *fakeBuffer) Busy() bool { b.mu.Lock(); defer b.mu.Unlock(); return b.busy }
func (b *fakeBuffer) SetBusy(v bool) {
	b.mu.Lock()
	b.busy = v
	b.mu.Unlock()
}

type fakeCompositor struct {
	mu           sync.Mutex
	acquireErr   error
	damageCalls  int
	committed    int
	attached     Buffer
	pendingCB    func()
}

func (c *fakeCompositor) Acquire(w, h, refcount int) (Buffer, error) {
	if c.acquireErr != nil {
		return nil, c.acquireErr
	}
	return &fakeBuffer{busy: true}, nil
}
func (c *fakeCompositor) DamageBuffer(x, y, w, h int) {
	c.mu.Lock()
	c.damageCalls++
	c.mu.Unlock()
}
func (c *fakeCompositor) Attach(b Buffer) {
	c.mu.Lock()
	c.attached = b
	c.mu.Unlock()
}
func (c *fakeCompositor) SetBufferScale(scale int) {}
func (c *fakeCompositor) Commit() {
	c.mu.Lock()
	c.committed++
	c.mu.Unlock()
}
func (c *fakeCompositor) RequestFrameCallback(cb func()) {
	c.mu.Lock()
	c.pendingCB = cb
	c.mu.Unlock()
}

func (c *fakeCompositor) fireFrameCallback() {
	c.mu.Lock()
	cb := c.pendingCB
	c.pendingCB = nil
	c.mu.Unlock()
	if cb != nil {
		cb()
	}
}

type noGlyphFont struct{}

func (noGlyphFont) GlyphFor(r rune) (tideterm.Glyph, bool) { return tideterm.Glyph{}, false }
func (noGlyphFont) Underline() tideterm.LineMetrics        { return tideterm.LineMetrics{} }
func (noGlyphFont) Strikeout() tideterm.LineMetrics        { return tideterm.LineMetrics{} }

func newTestTerminal(cols, rows int) *term.Terminal {
	pal := tideterm.Palette{FG: tideterm.Color{Set: true, R: 255, G: 255, B: 255}}
	t := term.New(cols, rows, 0, pal, tideterm.DiscardLogger())
	t.CellWidth, t.CellHeight = 8, 16
	t.Fonts[0] = noGlyphFont{}
	return t
}

func TestOrchestratorSkipsSubmitWhenFrameIsAllClean(t *testing.T) {
	tm := newTestTerminal(10, 5)
	for r := 0; r < tm.Rows; r++ {
		tm.Active.RowInView(r).Dirty = false
		for c := 0; c < tm.Cols; c++ {
			tm.Active.RowInView(r).Cells[c].Clean = true
		}
	}
	tm.HideCursor = true

	comp := &fakeCompositor{}
	o := NewOrchestrator(nil)

	o.Refresh(tm, comp)

	assert.Equal(t, Idle, o.State())
	assert.Equal(t, 0, comp.committed)
}

func TestOrchestratorDispatchesDirtyRowsInline(t *testing.T) {
	tm := newTestTerminal(10, 5)
	tm.HideCursor = true

	comp := &fakeCompositor{}
	o := NewOrchestrator(nil)

	o.Refresh(tm, comp)

	assert.Equal(t, AwaitingFrameCallback, o.State())
	assert.Equal(t, 1, comp.committed)
	require.NotNil(t, comp.attached)
	buf := comp.attached.(*fakeBuffer)
	assert.Equal(t, tm.Cols*tm.Rows, buf.fills)

	for r := 0; r < tm.Rows; r++ {
		assert.False(t, tm.Active.RowInView(r).Dirty)
	}

	comp.fireFrameCallback()
	assert.Equal(t, Idle, o.State())
}

func TestOrchestratorDispatchesDirtyRowsViaWorkerPool(t *testing.T) {
	tm := newTestTerminal(10, 5)
	tm.HideCursor = true

	comp := &fakeCompositor{}
	pool := NewPool(2)
	defer pool.Stop()
	o := NewOrchestrator(pool)

	o.Refresh(tm, comp)

	require.NotNil(t, comp.attached)
	buf := comp.attached.(*fakeBuffer)
	assert.Equal(t, tm.Cols*tm.Rows, buf.fills)
	for r := 0; r < tm.Rows; r++ {
		assert.False(t, tm.Active.RowInView(r).Dirty)
	}
}

func TestOrchestratorCoalescesRefreshWhileAwaitingFrameCallback(t *testing.T) {
	tm := newTestTerminal(10, 5)
	tm.HideCursor = true
	comp := &fakeCompositor{}
	o := NewOrchestrator(nil)

	o.Refresh(tm, comp)
	require.Equal(t, AwaitingFrameCallback, o.State())

	tm.Active.RowInView(0).MarkDirty(0)
	o.Refresh(tm, comp) // coalesced: state stays AwaitingFrameCallback, no second commit yet
	assert.Equal(t, 1, comp.committed)
	assert.Equal(t, AwaitingFrameCallback, o.State())

	comp.fireFrameCallback()
	// the coalesced refresh fires its own frame once the callback lands
	assert.Equal(t, 2, comp.committed)
	assert.Equal(t, AwaitingFrameCallback, o.State())
}

func TestOrchestratorSkipsFrameOnAcquireFailure(t *testing.T) {
	tm := newTestTerminal(10, 5)
	comp := &fakeCompositor{acquireErr: assert.AnError}
	o := NewOrchestrator(nil)

	o.Refresh(tm, comp)

	assert.Equal(t, Idle, o.State())
	assert.Equal(t, 0, comp.committed)
}

func TestApplyScrollDamageCopiesPixelsAndDamagesDestination(t *testing.T) {
	tm := newTestTerminal(10, 5)
	buf := &fakeBuffer{}
	comp := &fakeCompositor{}

	tm.Active.EmitScrollDamage(grid.DamageScroll, grid.Region{Start: 0, End: 5}, 2)

	for _, d := range tm.Active.DrainScrollDamage() {
		applyScrollDamage(comp, buf, tm, d)
	}

	assert.Equal(t, 1, buf.copies)
	assert.Equal(t, 1, comp.damageCalls)
}

func TestMarginDirtyForcesFullRedrawNextFrame(t *testing.T) {
	tm := newTestTerminal(10, 5)
	for r := 0; r < tm.Rows; r++ {
		tm.Active.RowInView(r).Dirty = false
	}
	tm.HideCursor = true
	tm.MarginDirty = true

	comp := &fakeCompositor{}
	o := NewOrchestrator(nil)
	o.Refresh(tm, comp)

	assert.Equal(t, AwaitingFrameCallback, o.State())
	assert.False(t, tm.MarginDirty)
}

func TestBlinkDisarmsWhenNoVisibleCellBlinks(t *testing.T) {
	tm := newTestTerminal(10, 5)
	tm.HideCursor = true
	tm.Blink.Arm(func() {})
	require.True(t, tm.Blink.Active)

	comp := &fakeCompositor{}
	o := NewOrchestrator(nil)
	o.Refresh(tm, comp)

	assert.False(t, tm.Blink.Active)
}

func TestPaintCursorSkipsWhenHidden(t *testing.T) {
	tm := newTestTerminal(10, 5)
	tm.HideCursor = true
	buf := &fakeBuffer{}
	comp := &fakeCompositor{}

	drew := paintCursor(comp, buf, tm, func() {})

	assert.False(t, drew)
	assert.Nil(t, tm.LastCursor.Cell)
}

func TestPaintCursorDrawsWhenVisibleAndRecordsMark(t *testing.T) {
	tm := newTestTerminal(10, 5)
	tm.Cursor = term.Cursor{Col: 2, Row: 1}
	buf := &fakeBuffer{}
	comp := &fakeCompositor{}

	drew := paintCursor(comp, buf, tm, func() {})

	assert.True(t, drew)
	require.NotNil(t, tm.LastCursor.Cell)
	assert.Equal(t, 2, tm.LastCursor.InView.Col)
	assert.Equal(t, 1, tm.LastCursor.InView.Row)
}

package headless

import (
	"sync"
	"time"

	"github.com/tideterm/tideterm/frame"
)

// frameInterval approximates vsync pacing at 60Hz, the same cadence the
// teacher's cli.Renderer ticks its own render loop at (16ms).
const frameInterval = 16 * time.Millisecond

// Compositor is an in-process frame.Compositor: it pools Surface buffers
// by size and paces frame callbacks with a timer instead of a real
// display's presentation clock. cmd/tideterm's headless mode uses it as
// the thing frame.Orchestrator renders into; the ANSI preview (cli.go)
// is built from the terminal's cells, not from these pixels.
type Compositor struct {
	mu      sync.Mutex
	pool    []*Surface
	scale   int
	front   *Surface
	damage  []damageRect
	onFrame func()
}

type damageRect struct{ x, y, w, h int }

// NewCompositor returns a Compositor with an empty buffer pool.
func NewCompositor() *Compositor {
	return &Compositor{scale: 1}
}

// Acquire returns a pooled Surface of the requested size if one is free,
// or allocates a new one. refcount is accepted for interface parity with
// a real Wayland wl_buffer's release-event bookkeeping; this backend has
// no async release path, so it's unused beyond documenting intent.
func (c *Compositor) Acquire(w, h, refcount int) (frame.Buffer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.pool {
		if !s.Busy() && s.img.Bounds().Dx() == w && s.img.Bounds().Dy() == h {
			s.SetBusy(true)
			return s, nil
		}
	}
	s := NewSurface(w, h)
	s.SetBusy(true)
	c.pool = append(c.pool, s)
	return s, nil
}

// DamageBuffer records a damaged region of the current front buffer.
func (c *Compositor) DamageBuffer(x, y, w, h int) {
	c.mu.Lock()
	c.damage = append(c.damage, damageRect{x, y, w, h})
	c.mu.Unlock()
}

// Attach sets b as the front buffer for the next Commit. b is always a
// *Surface returned by this Compositor's own Acquire; the type assertion
// only guards against a caller wiring a mismatched Compositor/Buffer pair.
// The buffer it replaces as front is released (its busy flag cleared) so
// Acquire can hand it out again.
func (c *Compositor) Attach(b frame.Buffer) {
	s, ok := b.(*Surface)
	if !ok {
		return
	}
	c.mu.Lock()
	if c.front != nil && c.front != s {
		c.front.SetBusy(false)
	}
	c.front = s
	c.mu.Unlock()
}

// SetBufferScale records the output scale factor (HiDPI); headless
// rendering doesn't resample, and nothing reads the stored value back.
func (c *Compositor) SetBufferScale(scale int) {
	c.mu.Lock()
	c.scale = scale
	c.mu.Unlock()
}

// Commit clears accumulated damage. There is no display to flip to; the
// front buffer's pixels stay readable through Front().Image().
func (c *Compositor) Commit() {
	c.mu.Lock()
	c.damage = c.damage[:0]
	c.mu.Unlock()
}

// RequestFrameCallback fires cb once after frameInterval, standing in for
// a compositor's frame-done event so frame.Orchestrator's
// AwaitingFrameCallback state always eventually clears.
func (c *Compositor) RequestFrameCallback(cb func()) {
	time.AfterFunc(frameInterval, cb)
}

// Front returns the currently attached buffer, or nil if none has been
// attached yet.
func (c *Compositor) Front() *Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

package gtkshell

import (
	"sync"

	"github.com/gotk3/gotk3/cairo"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/tideterm/tideterm/frame"
)

// frameTickMillis paces RequestFrameCallback. GTK3 doesn't surface a raw
// Wayland frame-done event through gotk3, so a fixed-rate glib timeout is
// the closest available stand-in, same mechanism (glib.TimeoutAdd) the
// teacher uses for its own blink and auto-scroll timers.
const frameTickMillis = 16

// Window is the real frame.Compositor: one GTK3 top-level window holding
// a single drawing area, with a pool of cairo.Surface-backed Surface
// buffers attached/committed the way frame.Orchestrator drives any
// Compositor, adapted from the teacher's single always-redrawing
// gtk.DrawingArea (gtk/widget.go) to the acquire/damage/commit protocol.
type Window struct {
	mu    sync.Mutex
	win   *gtk.Window
	area  *gtk.DrawingArea
	pool  []*Surface
	front *Surface
	scale int
}

// NewWindow creates a top-level GTK window sized cols*cellW x rows*cellH
// pixels and wires its "draw" signal to paint whatever buffer was last
// committed.
func NewWindow(title string, widthPx, heightPx int) (*Window, error) {
	if err := gtk.InitCheck(nil); err != nil {
		return nil, err
	}

	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, err
	}
	win.SetTitle(title)
	win.SetDefaultSize(widthPx, heightPx)
	win.Connect("destroy", func() { gtk.MainQuit() })

	area, err := gtk.DrawingAreaNew()
	if err != nil {
		return nil, err
	}
	win.Add(area)

	w := &Window{win: win, area: area, scale: 1}
	area.Connect("draw", w.onDraw)
	return w, nil
}

// ShowAndRun displays the window and enters the GTK main loop. It blocks
// until the window is closed; callers run it on the locked OS thread GTK
// requires (runtime.LockOSThread in cmd/tideterm's main, same as the
// teacher's gtk-basic example).
func (w *Window) ShowAndRun() {
	w.win.ShowAll()
	gtk.Main()
}

// Widget exposes the drawing area so cmd/tideterm can wire keyboard/mouse
// signal handlers onto it (input dispatch is outside this package's
// scope: package vt only consumes already-decoded bytes).
func (w *Window) Widget() *gtk.DrawingArea { return w.area }

func (w *Window) onDraw(da *gtk.DrawingArea, cr *cairo.Context) bool {
	w.mu.Lock()
	front := w.front
	w.mu.Unlock()
	if front == nil {
		return false
	}
	cr.SetSourceSurface(front.Native(), 0, 0)
	cr.Paint()
	return false
}

// Acquire returns a pooled Surface of the requested size if one is free,
// allocating a new cairo image surface otherwise.
func (w *Window) Acquire(width, height, refcount int) (frame.Buffer, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, s := range w.pool {
		if !s.Busy() && s.w == width && s.h == height {
			s.SetBusy(true)
			return s, nil
		}
	}
	s := NewSurface(width, height)
	s.SetBusy(true)
	w.pool = append(w.pool, s)
	return s, nil
}

// DamageBuffer queues a redraw of the given pixel region. Cairo has no
// partial-surface damage concept of its own for a DrawingArea, so this
// maps onto GTK's own QueueDrawArea, same granularity as a Wayland
// wl_surface_damage_buffer call.
func (w *Window) DamageBuffer(x, y, width, height int) {
	w.area.QueueDrawArea(x, y, width, height)
}

// Attach sets b as the buffer the next Commit will present. b is always
// a *Surface returned by this Window's own Acquire. The buffer it
// replaces as front is released (its busy flag cleared) so Acquire can
// hand it out again.
func (w *Window) Attach(b frame.Buffer) {
	s, ok := b.(*Surface)
	if !ok {
		return
	}
	w.mu.Lock()
	if w.front != nil && w.front != s {
		w.front.SetBusy(false)
	}
	w.front = s
	w.mu.Unlock()
}

// SetBufferScale records a HiDPI scale factor, mirroring a Wayland
// client's own wl_surface_set_buffer_scale. Its only caller,
// frame.Orchestrator, passes 1; the stored value is not used when the
// front buffer is drawn.
func (w *Window) SetBufferScale(scale int) {
	w.mu.Lock()
	w.scale = scale
	w.mu.Unlock()
}

// Commit asks GTK to redraw the whole drawing area on its own paint
// cycle; the "draw" handler above blits the attached Surface once GTK
// gets to it.
func (w *Window) Commit() {
	w.area.QueueDraw()
}

// RequestFrameCallback fires cb once after frameTickMillis, glib's
// closest analog to a compositor's frame.done event.
func (w *Window) RequestFrameCallback(cb func()) {
	var handle glib.SourceHandle
	handle = glib.TimeoutAdd(frameTickMillis, func() bool {
		glib.SourceRemove(handle)
		cb()
		return false
	})
}

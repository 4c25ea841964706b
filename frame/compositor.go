// Package frame drives one rendered frame at a time: it owns the
// render-worker pool and the Idle/Rendering/AwaitingFrameCallback state
// machine that reconciles grid dirtiness against a compositor's own
// frame-callback pacing.
package frame

import "github.com/tideterm/tideterm/render"

// Compositor is the external seam (component H) standing in for the
// Wayland surface: acquiring a pixel buffer, damaging regions of it, and
// submitting it on the compositor's own frame-callback pacing. Concrete
// implementations live in package gtkshell (a real GTK/cairo window) and
// package headless (an in-process image.RGBA buffer used by tests and the
// ANSI preview mode).
type Compositor interface {
	// Acquire returns a buffer of the given pixel size, carrying refcount
	// references (1 for the orchestrator plus one per render worker).
	// Implementations may pool and reuse buffers not currently Busy.
	Acquire(w, h, refcount int) (Buffer, error)
	DamageBuffer(x, y, w, h int)
	Attach(b Buffer)
	SetBufferScale(scale int)
	Commit()
	// RequestFrameCallback registers cb to run the next time the
	// compositor signals it's ready for another frame.
	RequestFrameCallback(cb func())
}

// Buffer is a mappable pixel region backing one frame.
type Buffer interface {
	render.Surface

	// CopyRect performs an in-buffer pixel copy: the scroll-damage
	// memmove of step 4 in renderFrame. It's the one primitive
	// render.Surface doesn't need but the orchestrator does.
	CopyRect(dstX, dstY, srcX, srcY, w, h int)

	Busy() bool
	SetBusy(bool)
}

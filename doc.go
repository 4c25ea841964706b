// Package tideterm is the rendering and view-state core of a Wayland-native
// terminal emulator.
//
// It owns the logical grid model (package grid), the incremental cell
// renderer (package render), the parallel render-worker pool and frame
// state machine (package frame), cursor/blink/selection state (package
// grid), a URL auto-detection and hint-mode overlay (package urlmode), and
// a display-width classifier (package wcwidth).
//
// This package holds the types every other package shares: Cell, Color,
// Font and friends. The Terminal aggregate that is threaded explicitly
// through the rest of the core, instead of living behind a process-wide
// global, lives in package term.
//
// Out of scope, by design: the Wayland connection/globals bind-up, the
// compositor's buffer allocator, font shaping and glyph rasterization, the
// PTY byte stream and escape-sequence parser, configuration-file loading,
// key-binding dispatch outside URL mode, clipboard mechanics, and process
// spawning mechanics. Those are external collaborators behind small
// interfaces (see package frame's Compositor/Buffer, and Font below); two
// concrete backends (package gtkshell, package headless) implement them.
//
// Resize never reflows logical lines: rows are copied column-truncated.
// There is no subpixel positioning, no proportional-font support, no BiDi
// reordering, and no GPU path.
package tideterm

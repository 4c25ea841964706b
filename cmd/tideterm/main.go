// Command tideterm is the terminal emulator's entry point: it loads
// config, spawns a shell behind a PTY, and drives either a real GTK3
// window (package gtkshell) or the in-process ANSI preview renderer
// (package headless) depending on -headless and $WAYLAND_DISPLAY/
// $DISPLAY, the same "pick a concrete cli.Terminal or gtk.Terminal"
// decision the teacher's own examples/ directory makes per-binary,
// folded into one binary with a flag instead of two.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/config"
	"github.com/tideterm/tideterm/frame"
	"github.com/tideterm/tideterm/gtkshell"
	"github.com/tideterm/tideterm/headless"
	"github.com/tideterm/tideterm/term"
	"github.com/tideterm/tideterm/urlmode"
	"github.com/tideterm/tideterm/vt"
)

func main() {
	runtime.LockOSThread()

	var (
		cols       = flag.Int("cols", 80, "terminal columns")
		rows       = flag.Int("rows", 24, "terminal rows")
		fontFamily = flag.String("font", "Monospace", "font family (gtkshell only)")
		fontSize   = flag.Int("font-size", 13, "font size in points (gtkshell only)")
		shellPath  = flag.String("shell", "", "shell to run (defaults to $SHELL)")
		headlessOn = flag.Bool("headless", false, "render to an ANSI preview on stdout instead of opening a window")
	)
	flag.Parse()

	shell := *shellPath
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	args := flag.Args()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tideterm: %v\n", err)
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tideterm: config: %v\n", err)
		os.Exit(1)
	}

	logger := tideterm.NewLogger("tideterm")

	useHeadless := *headlessOn || (os.Getenv("WAYLAND_DISPLAY") == "" && os.Getenv("DISPLAY") == "")

	var runErr error
	if useHeadless {
		runErr = runHeadless(resolved, logger, shell, args, *cols, *rows)
	} else {
		runErr = runGTK(resolved, logger, shell, args, *cols, *rows, *fontFamily, *fontSize)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "tideterm: %v\n", runErr)
		os.Exit(1)
	}
}

// newTerminal builds a term.Terminal sized cols x rows, wires font slot
// 0 (and the other three bold/italic combinations, when distinct fonts
// are given) and derives CellWidth/CellHeight/FontExtents from it.
func newTerminal(resolved config.Resolved, logger tideterm.Logger, cols, rows int, fonts [4]tideterm.Font, cellW, cellH int) *term.Terminal {
	t := term.New(cols, rows, resolved.Scrollback, resolved.Palette, logger)
	t.CursorStyle = resolved.CursorStyle
	t.CellWidth = cellW
	t.CellHeight = cellH
	t.Fonts = fonts
	if fonts[0] != nil {
		t.FontExtents = extentsOf(fonts[0])
	}
	return t
}

// extentsOf pulls FontExtents off a font that exposes one via an
// Extents() method (both gtkshell.Font and headless.Font do); fonts
// without one leave t.FontExtents at its zero value.
func extentsOf(f tideterm.Font) tideterm.FontExtents {
	type extentser interface{ Extents() tideterm.FontExtents }
	if e, ok := f.(extentser); ok {
		return e.Extents()
	}
	return tideterm.FontExtents{}
}

// pump drains PTY output into parser and (if refresh is non-nil) drives
// a render after each read, until the PTY returns an error (child
// exited or was closed). URLs collected after each read carry action.
func pump(p *vt.PTY, parser *vt.Parser, t *term.Terminal, action urlmode.Action, refresh func()) {
	buf := make([]byte, 4096)
	for {
		n, err := p.Read(buf)
		if n > 0 {
			parser.Parse(buf[:n])
			t.URLs = urlmode.Collect(t.GridView(), action)
			if refresh != nil {
				refresh()
			}
		}
		if err != nil {
			return
		}
	}
}

func spawnShell(shell string, args []string) *exec.Cmd {
	cmd := exec.Command(shell, args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	return cmd
}

// runHeadless drains the child process to completion, rendering each
// update through frame.Orchestrator into an in-process
// headless.Compositor, then prints the final screen as an ANSI preview,
// the same shape as the teacher's buffer-only example: headless.Preview
// walks the terminal's cells, not the rendered pixels.
func runHeadless(resolved config.Resolved, logger tideterm.Logger, shell string, args []string, cols, rows int) error {
	font := headless.NewFont()
	cellW, cellH := font.CellSize()
	fonts := [4]tideterm.Font{font, font, font, font}

	t := newTerminal(resolved, logger, cols, rows, fonts, cellW, cellH)

	cmd := spawnShell(shell, args)
	pty, err := vt.Start(cmd, cols, rows)
	if err != nil {
		return fmt.Errorf("starting pty: %w", err)
	}
	defer pty.Close()

	parser := vt.NewParser(t)

	var pool *frame.Pool
	if resolved.Workers > 0 {
		pool = frame.NewPool(resolved.Workers)
		defer pool.Stop()
	}
	orch := frame.NewOrchestrator(pool)
	comp := headless.NewCompositor()

	pump(pty, parser, t, resolved.URLAction, func() { orch.Refresh(t, comp) })
	pty.Wait()

	headless.Preview(t, os.Stdout)
	return nil
}

// runGTK opens a real window via gtkshell and drives input/output
// concurrently: a reader goroutine pumps PTY bytes through the parser
// and marshals each refresh onto the GTK main loop via glib.IdleAdd,
// since GTK (like the teacher's own gtk/widget.go) is not safe to drive
// from any thread but its own.
func runGTK(resolved config.Resolved, logger tideterm.Logger, shell string, args []string, cols, rows int, fontFamily string, fontSize int) error {
	fonts := [4]tideterm.Font{
		gtkshell.NewFont(fontFamily, fontSize, false, false),
		gtkshell.NewFont(fontFamily, fontSize, true, false),
		gtkshell.NewFont(fontFamily, fontSize, false, true),
		gtkshell.NewFont(fontFamily, fontSize, true, true),
	}
	cellW, cellH := fonts[0].(*gtkshell.Font).CellSize()

	t := newTerminal(resolved, logger, cols, rows, fonts, cellW, cellH)

	win, err := gtkshell.NewWindow("tideterm", cols*cellW, rows*cellH)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}

	widget := win.Widget()
	widget.AddEvents(int(gdk.KEY_PRESS_MASK))
	widget.SetCanFocus(true)

	cmd := spawnShell(shell, args)
	pty, err := vt.Start(cmd, cols, rows)
	if err != nil {
		return fmt.Errorf("starting pty: %w", err)
	}
	defer pty.Close()

	parser := vt.NewParser(t)

	var pool *frame.Pool
	if resolved.Workers > 0 {
		pool = frame.NewPool(resolved.Workers)
		defer pool.Stop()
	}
	orch := frame.NewOrchestrator(pool)

	widget.Connect("key-press-event", func(_ *gtk.DrawingArea, ev *gdk.Event) bool {
		data := translateKeyEvent(ev)
		if len(data) > 0 {
			pty.Write(data)
		}
		return true
	})

	go pump(pty, parser, t, resolved.URLAction, func() {
		glib.IdleAdd(func() bool {
			orch.Refresh(t, win)
			return false
		})
	})

	go func() {
		pty.Wait()
		glib.IdleAdd(func() bool {
			gtk.MainQuit()
			return false
		})
	}()

	win.ShowAndRun()
	return nil
}

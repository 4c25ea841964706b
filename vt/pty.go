// Package vt wires a real PTY and a VT/ANSI escape-sequence parser to the
// term.Terminal/grid.Grid state the rest of this module renders. Neither
// concern needs a C dependency: github.com/creack/pty covers the pseudo-
// terminal, and the parser is plain byte-at-a-time state machine code.
package vt

import (
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// PTY spawns a command behind a pseudo-terminal and exposes its master end.
// It replaces the teacher's hand-rolled cgo ptmx/ptsname/grantpt dance with
// github.com/creack/pty, which wraps the same syscalls without cgo.
type PTY struct {
	master *os.File
	cmd    *exec.Cmd
}

// Start launches cmd attached to a new pseudo-terminal sized cols x rows.
func Start(cmd *exec.Cmd, cols, rows int) (*PTY, error) {
	master, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
	if err != nil {
		return nil, err
	}
	return &PTY{master: master, cmd: cmd}, nil
}

// Read reads output produced by the child process.
func (p *PTY) Read(b []byte) (int, error) {
	return p.master.Read(b)
}

// Write sends input to the child process.
func (p *PTY) Write(b []byte) (int, error) {
	return p.master.Write(b)
}

// Resize issues TIOCSWINSZ for the new grid size.
func (p *PTY) Resize(cols, rows int) error {
	return pty.Setsize(p.master, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
}

// Close closes the master end and lets the child see EOF/HUP.
func (p *PTY) Close() error {
	return p.master.Close()
}

// Wait blocks until the child process exits.
func (p *PTY) Wait() error {
	return p.cmd.Wait()
}

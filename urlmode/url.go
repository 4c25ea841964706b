// Package urlmode implements URL auto-detection over a rendered grid and
// the modal hint-key input loop used to activate a detected URL.
package urlmode

import "github.com/tideterm/tideterm/grid"

// Action is what happens when a URL is activated.
type Action int

const (
	ActionCopy Action = iota
	ActionLaunch
)

// URL is one detected (or bound) URL: its text, the hint key sequence
// assigned to it, its absolute grid extent, and what activating it does.
type URL struct {
	Text   string
	Key    string
	Start  grid.Coord
	End    grid.Coord
	Action Action
}

// GridSource is the read-only view of a terminal's visible grid that
// Collect needs. term.Terminal satisfies this implicitly; urlmode never
// imports package term, which would otherwise create an import cycle
// (term already imports urlmode to hold []URL).
type GridSource interface {
	Cols() int
	Rows() int
	View() int
	RowInView(r int) *grid.Row
}

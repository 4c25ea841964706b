package tideterm

// CursorStyle selects how the terminal cursor is rendered.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorUnderline
)

// FlashState tracks the "visual bell" flash overlay (spec.md §4.D step 9).
type FlashState struct {
	Active bool
}

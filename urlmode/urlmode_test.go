package urlmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/grid"
)

// fakeGrid is a minimal GridSource backed by literal rows of text, for
// exercising Collect without a full term.Terminal.
type fakeGrid struct {
	rows []*grid.Row
	view int
}

func newFakeGrid(lines []string, linebreak []bool, cols int) *fakeGrid {
	fg := &fakeGrid{}
	for i, line := range lines {
		r := grid.NewRow(cols, tideterm.Cell{Rune: ' '})
		for c, ch := range []rune(line) {
			if c >= cols {
				break
			}
			r.Cells[c] = tideterm.Cell{Rune: ch}
		}
		if i < len(linebreak) {
			r.Linebreak = linebreak[i]
		}
		fg.rows = append(fg.rows, r)
	}
	return fg
}

func (f *fakeGrid) Cols() int                    { return len(f.rows[0].Cells) }
func (f *fakeGrid) Rows() int                    { return len(f.rows) }
func (f *fakeGrid) View() int                    { return f.view }
func (f *fakeGrid) RowInView(r int) *grid.Row    { return f.rows[r] }

func TestCollectSimpleURL(t *testing.T) {
	g := newFakeGrid([]string{"see https://example.com/path for info"}, []bool{true}, 60)
	urls := Collect(g, ActionCopy)

	if assert.Len(t, urls, 1) {
		assert.Equal(t, "https://example.com/path", urls[0].Text)
	}
}

func TestCollectTrimsTrailingPunctuation(t *testing.T) {
	g := newFakeGrid([]string{"visit http://example.com."}, []bool{true}, 40)
	urls := Collect(g, ActionCopy)

	if assert.Len(t, urls, 1) {
		assert.Equal(t, "http://example.com", urls[0].Text)
	}
}

func TestCollectBalancesParensAndBrackets(t *testing.T) {
	g := newFakeGrid([]string{"(see http://example.com/a(b)c) done"}, []bool{true}, 50)
	urls := Collect(g, ActionCopy)

	if assert.Len(t, urls, 1) {
		assert.Equal(t, "http://example.com/a(b)c", urls[0].Text)
	}
}

func TestCollectCaseInsensitiveProtocol(t *testing.T) {
	g := newFakeGrid([]string{"HTTP://EXAMPLE.COM/X done"}, []bool{true}, 40)
	urls := Collect(g, ActionCopy)

	if assert.Len(t, urls, 1) {
		assert.Equal(t, "HTTP://EXAMPLE.COM/X", urls[0].Text)
	}
}

func TestCollectAppliesViewOffset(t *testing.T) {
	g := newFakeGrid([]string{"http://example.com done"}, []bool{true}, 40)
	g.view = 7
	urls := Collect(g, ActionCopy)

	if assert.Len(t, urls, 1) {
		assert.Equal(t, 7, urls[0].Start.Row)
	}
}

func TestAssignHintsNonEmptyAndUnique(t *testing.T) {
	urls := make([]URL, 20)
	AssignHints(urls)

	seen := map[string]bool{}
	for _, u := range urls {
		assert.NotEmpty(t, u.Key)
		assert.False(t, seen[u.Key], "duplicate hint %q", u.Key)
		seen[u.Key] = true
	}
}

func TestAssignHintsSingleURLGetsSingleCharHint(t *testing.T) {
	urls := make([]URL, 1)
	AssignHints(urls)
	assert.Len(t, urls[0].Key, 1)
}

func TestInputStateFeedActivatesUniqueMatch(t *testing.T) {
	urls := []URL{{Text: "a", Key: "x"}, {Text: "b", Key: "y"}}
	in := NewInputState(urls)

	match, done := in.Feed('x')
	if assert.True(t, done) && assert.NotNil(t, match) {
		assert.Equal(t, "a", match.Text)
	}
}

func TestInputStateFeedExtendsAmbiguousPrefix(t *testing.T) {
	urls := []URL{{Text: "a", Key: "xy"}, {Text: "b", Key: "xz"}}
	in := NewInputState(urls)

	match, done := in.Feed('x')
	assert.Nil(t, match)
	assert.False(t, done)
	assert.Equal(t, "x", in.Keys())

	match, done = in.Feed('y')
	if assert.True(t, done) && assert.NotNil(t, match) {
		assert.Equal(t, "a", match.Text)
	}
}

func TestInputStateFeedIgnoresInvalidKey(t *testing.T) {
	urls := []URL{{Text: "a", Key: "x"}}
	in := NewInputState(urls)

	match, done := in.Feed('q')
	assert.Nil(t, match)
	assert.False(t, done)
	assert.Equal(t, "", in.Keys())
}

func TestInputStateBackspace(t *testing.T) {
	urls := []URL{{Text: "a", Key: "xy"}}
	in := NewInputState(urls)
	in.Feed('x')
	assert.Equal(t, "x", in.Keys())
	in.Backspace()
	assert.Equal(t, "", in.Keys())
}

package term

import (
	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/urlmode"
)

// EnterURLMode scans the active grid for URLs, assigns hint keys, tags
// the cells each URL covers with AttrURL (forcing a re-render with the
// highlight on), and stores the result on t.URLs.
func (t *Terminal) EnterURLMode(action urlmode.Action) {
	urls := urlmode.Collect(t.GridView(), action)
	urlmode.AssignHints(urls)

	t.URLs = urls
	t.URLKeys = ""
	for _, u := range t.URLs {
		t.tagURL(u, true)
	}
}

// ResetURLMode clears AttrURL from every previously tagged cell and
// empties t.URLs / t.URLKeys.
func (t *Terminal) ResetURLMode() {
	if len(t.URLs) == 0 {
		return
	}
	for _, u := range t.URLs {
		t.tagURL(u, false)
	}
	t.URLs = nil
	t.URLKeys = ""
}

// tagURL walks u's absolute [Start,End] cell range and sets or clears
// AttrURL on each covered cell, mirroring tag_cells_for_url.
func (t *Terminal) tagURL(u urlmode.URL, value bool) {
	g := t.Active

	row, col := u.Start.Row, u.Start.Col
	endRow := g.Mod(u.End.Row)

	for {
		r := g.RowAt(row)
		cell := &r.Cells[col]
		if value {
			cell.SetAttr(tideterm.AttrURL)
		} else {
			cell.ClearAttr(tideterm.AttrURL)
		}
		r.MarkDirty(col)

		if g.Mod(row) == endRow && col == u.End.Col {
			break
		}

		col++
		if col >= t.Cols {
			col = 0
			row++
		}
	}
}

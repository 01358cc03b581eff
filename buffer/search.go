package buffer

import (
	"bytes"
	"slices"

	"github.com/iw2rmb/eru/syntax"
)

// Search is an incremental, circular row search over a document, driven one
// keystroke at a time by a prompt. The most recent match is shown by
// temporarily overwriting its span with syntax.Match; the row's previous
// classes are restored before the next keystroke is handled.
type Search struct {
	doc *Document

	lastMatch int
	direction int

	savedRow int
	savedHL  []syntax.Class

	savedCursor              Point
	savedRowOff, savedColOff int
	active                   bool
}

func NewSearch(d *Document) *Search {
	return &Search{doc: d, lastMatch: -1, direction: 1, savedRow: -1}
}

// Begin remembers the cursor and scroll offsets so End can restore them on
// cancel.
func (s *Search) Begin() {
	s.savedCursor = s.doc.Cursor()
	s.savedRowOff, s.savedColOff = s.doc.rowOff, s.doc.colOff
	s.lastMatch, s.direction = -1, 1
	s.active = true
}

// Active reports whether a search is between Begin and End.
func (s *Search) Active() bool { return s.active }

// LastMatch returns the row of the current match.
func (s *Search) LastMatch() (int, bool) {
	return s.lastMatch, s.lastMatch >= 0
}

// Direction is 1 when stepping forward and -1 when stepping backward.
func (s *Search) Direction() int { return s.direction }

// End finishes the search. When cancelled the cursor and scroll offsets
// saved by Begin are restored.
func (s *Search) End(cancelled bool) {
	s.restoreOverlay()
	s.lastMatch, s.direction = -1, 1
	if cancelled && s.active {
		s.doc.SetCursor(s.savedCursor)
		s.doc.rowOff, s.doc.colOff = s.savedRowOff, s.savedColOff
	}
	s.active = false
}

// OnKey handles one prompt keystroke for query. It has the PromptFunc
// signature.
func (s *Search) OnKey(query string, k Key) {
	s.restoreOverlay()

	switch k {
	case KeyEnter, KeyEscape:
		s.lastMatch, s.direction = -1, 1
		return
	case KeyArrowRight, KeyArrowDown:
		s.direction = 1
	case KeyArrowLeft, KeyArrowUp:
		s.direction = -1
	default:
		s.lastMatch, s.direction = -1, 1
	}

	// Without a previous match the scan always starts forward from row 0.
	if s.lastMatch == -1 {
		s.direction = 1
	}

	s.find([]byte(query))
}

func (s *Search) find(query []byte) {
	d := s.doc
	n := len(d.rows)
	if len(query) == 0 || n == 0 {
		return
	}

	cur := s.lastMatch
	for range n {
		cur += s.direction
		if cur == -1 {
			cur = n - 1
		} else if cur == n {
			cur = 0
		}

		row := d.rows[cur]
		rx := bytes.Index(row.rendered, query)
		if rx < 0 {
			continue
		}

		s.lastMatch = cur
		d.cy = cur
		d.cx = row.RawX(rx, d.tabStop)
		// Push the offset past the end so Scroll brings the match to the top.
		d.rowOff = n
		d.Scroll()

		s.savedRow = cur
		s.savedHL = slices.Clone(row.highlight)
		fill(row.highlight[rx:rx+len(query)], syntax.Match)
		return
	}
}

func (s *Search) restoreOverlay() {
	if s.savedHL == nil {
		return
	}
	if row := s.doc.Row(s.savedRow); row != nil && len(row.highlight) == len(s.savedHL) {
		copy(row.highlight, s.savedHL)
	}
	s.savedHL = nil
	s.savedRow = -1
}

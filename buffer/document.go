package buffer

import (
	"bytes"
	"strings"

	"github.com/iw2rmb/eru/syntax"
)

type Options struct {
	TabStop int // default: DefaultTabStop
}

// Document is the editable state of one open file: rows, cursor, scroll
// offsets, dirty counter and the active syntax profile.
//
// The cursor row may equal Len(), which addresses the empty virtual line
// after the last row; typing there appends a row.
type Document struct {
	rows []*Row

	cx, cy int

	rowOff, colOff         int
	screenRows, screenCols int

	dirty    int
	filename string
	syntax   *syntax.Profile
	tabStop  int
}

// New returns a document holding text split on '\n'. An empty text yields a
// document with no rows.
func New(text string, opt Options) *Document {
	d := &Document{tabStop: normalizeTabStop(opt.TabStop)}
	if text != "" {
		d.Load(strings.Split(strings.TrimSuffix(text, "\n"), "\n"))
	}
	return d
}

// Load replaces the content with lines, stripping trailing '\n' and '\r'
// from each, and resets cursor, scroll and the dirty counter.
func (d *Document) Load(lines []string) {
	d.rows = make([]*Row, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		d.rows = append(d.rows, newRow(i, []byte(line)))
	}
	d.highlightAll()
	d.cx, d.cy = 0, 0
	d.rowOff, d.colOff = 0, 0
	d.dirty = 0
}

// Len is the number of rows.
func (d *Document) Len() int { return len(d.rows) }

// Row returns row i, or nil when i is out of range. The pointer is only
// valid until the next structural edit.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

func (d *Document) Filename() string { return d.filename }

func (d *Document) SetFilename(name string) { d.filename = name }

func (d *Document) Syntax() *syntax.Profile { return d.syntax }

// SetSyntax switches the active profile and re-highlights every row.
func (d *Document) SetSyntax(p *syntax.Profile) {
	d.syntax = p
	d.highlightAll()
}

// SelectSyntax looks the filename up in reg and activates the result,
// which may be nil.
func (d *Document) SelectSyntax(reg *syntax.Registry) *syntax.Profile {
	d.SetSyntax(reg.Lookup(d.filename))
	return d.syntax
}

func (d *Document) TabStop() int { return d.tabStop }

// SetTabStop changes the tab width and rebuilds every row's render form.
func (d *Document) SetTabStop(n int) {
	n = normalizeTabStop(n)
	if n == d.tabStop {
		return
	}
	d.tabStop = n
	d.highlightAll()
}

// Dirty is the number of edits since the last load or save.
func (d *Document) Dirty() int { return d.dirty }

func (d *Document) IsDirty() bool { return d.dirty > 0 }

// MarkSaved resets the dirty counter after a successful save.
func (d *Document) MarkSaved() { d.dirty = 0 }

func (d *Document) Cursor() Point { return Point{Row: d.cy, Col: d.cx} }

// SetCursor moves the cursor to p clamped into the document.
func (d *Document) SetCursor(p Point) {
	p = d.clampPoint(p)
	d.cy, d.cx = p.Row, p.Col
}

func (d *Document) clampPoint(p Point) Point {
	row := clampInt(p.Row, 0, len(d.rows))
	maxCol := 0
	if row < len(d.rows) {
		maxCol = d.rows[row].Len()
	}
	return Point{Row: row, Col: clampInt(p.Col, 0, maxCol)}
}

// RenderX is the render column of the cursor.
func (d *Document) RenderX() int {
	if d.cy >= len(d.rows) {
		return 0
	}
	return d.rows[d.cy].RenderX(d.cx, d.tabStop)
}

// RowsToFlatText joins every row with a trailing '\n', the save payload.
func (d *Document) RowsToFlatText() []byte {
	n := 0
	for _, r := range d.rows {
		n += r.Len() + 1
	}
	var buf bytes.Buffer
	buf.Grow(n)
	for _, r := range d.rows {
		buf.Write(r.raw)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Text returns the rows joined by '\n' without a trailing newline.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, r := range d.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(r.raw)
	}
	return sb.String()
}

// Lines returns a copy of every row's raw content.
func (d *Document) Lines() []string {
	out := make([]string, len(d.rows))
	for i, r := range d.rows {
		out[i] = string(r.raw)
	}
	return out
}

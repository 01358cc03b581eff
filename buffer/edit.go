package buffer

import "slices"

// InsertRow inserts a row holding content at position at, renumbering the
// rows after it. Only the new row is rendered and highlighted; the comment
// cascade carries any change further down.
func (d *Document) InsertRow(at int, content []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}
	row := newRow(at, content)
	// Seed with the state the following row already carries in, so the
	// cascade only runs when the new row actually changes it.
	row.openBlockComment = d.carriedOpen(at)
	d.rows = slices.Insert(d.rows, at, row)
	d.renumber(at + 1)
	d.updateRow(at)
	d.dirty++
}

// DeleteRow removes row at and renumbers the rows after it. The row that
// moves into position at is re-highlighted against its new predecessor.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.rows[at] = nil
	d.rows = slices.Delete(d.rows, at, at+1)
	d.renumber(at)
	d.highlightFrom(at)
	d.dirty++
}

func (d *Document) renumber(from int) {
	for i := max(from, 0); i < len(d.rows); i++ {
		d.rows[i].index = i
	}
}

// InsertChar inserts c at the cursor and advances it.
func (d *Document) InsertChar(c byte) {
	if d.cy == len(d.rows) {
		d.InsertRow(len(d.rows), nil)
	}
	d.rows[d.cy].insertByte(d.cx, c)
	d.updateRow(d.cy)
	d.cx++
	d.dirty++
}

// InsertString inserts s byte by byte, splitting rows on '\n'.
func (d *Document) InsertString(s string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			d.InsertNewline()
		case '\r':
		default:
			d.InsertChar(s[i])
		}
	}
}

// DeleteChar applies backspace semantics: it removes the byte before the
// cursor, or joins the cursor row onto the previous one at column 0. It is
// a no-op at the start of the document and on the virtual line.
func (d *Document) DeleteChar() {
	if d.cy >= len(d.rows) {
		return
	}
	if d.cx == 0 && d.cy == 0 {
		return
	}

	if d.cx > 0 {
		if d.rows[d.cy].deleteByte(d.cx - 1) {
			d.updateRow(d.cy)
			d.dirty++
		}
		d.cx--
		return
	}

	// Join with the previous row.
	prev := d.cy - 1
	d.cx = d.rows[prev].Len()
	d.rows[prev].appendBytes(d.rows[d.cy].raw)
	d.updateRow(prev)
	d.dirty++
	d.DeleteRow(d.cy)
	d.cy = prev
}

// DeleteForward applies delete-key semantics: it removes the byte under the
// cursor, or joins the next row at end-of-row.
func (d *Document) DeleteForward() {
	if d.cy >= len(d.rows) {
		return
	}
	if d.cy == len(d.rows)-1 && d.cx >= d.rows[d.cy].Len() {
		return
	}
	d.MoveCursor(KeyArrowRight)
	d.DeleteChar()
}

// InsertNewline splits the cursor row at the cursor and moves the cursor to
// the start of the following row.
func (d *Document) InsertNewline() {
	if d.cy >= len(d.rows) {
		d.InsertRow(len(d.rows), nil)
		d.cy = len(d.rows)
		d.cx = 0
		return
	}

	x := clampInt(d.cx, 0, d.rows[d.cy].Len())
	if x == 0 {
		d.InsertRow(d.cy, nil)
	} else {
		d.InsertRow(d.cy+1, d.rows[d.cy].raw[x:])
		d.rows[d.cy].truncate(x)
		d.updateRow(d.cy)
	}
	d.cy++
	d.cx = 0
}

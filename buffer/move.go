package buffer

// MoveCursor applies one motion key. Left and Right wrap across row
// boundaries; after any motion the column is clamped to the new row.
func (d *Document) MoveCursor(k Key) {
	var row *Row
	if d.cy < len(d.rows) {
		row = d.rows[d.cy]
	}

	switch k {
	case KeyArrowLeft:
		if d.cx != 0 {
			d.cx--
		} else if d.cy > 0 {
			d.cy--
			d.cx = d.rows[d.cy].Len()
		}
	case KeyArrowRight:
		if row != nil && d.cx < row.Len() {
			d.cx++
		} else if row != nil && d.cx == row.Len() {
			d.cy++
			d.cx = 0
		}
	case KeyArrowUp:
		if d.cy != 0 {
			d.cy--
		}
	case KeyArrowDown:
		if d.cy < len(d.rows) {
			d.cy++
		}
	case KeyHome:
		d.cx = 0
	case KeyEnd:
		if row != nil {
			d.cx = row.Len()
		}
	case KeyPageUp, KeyPageDown:
		d.page(k)
		return
	default:
		return
	}

	d.clampCursorCol()
}

func (d *Document) clampCursorCol() {
	rowLen := 0
	if d.cy < len(d.rows) {
		rowLen = d.rows[d.cy].Len()
	}
	if d.cx > rowLen {
		d.cx = rowLen
	}
}

// page moves the cursor to the top or bottom edge of the screen and then a
// full screen further.
func (d *Document) page(k Key) {
	if k == KeyPageUp {
		d.cy = d.rowOff
	} else {
		d.cy = d.rowOff + d.screenRows - 1
		if d.cy > len(d.rows) {
			d.cy = len(d.rows)
		}
	}
	if d.cy < 0 {
		d.cy = 0
	}
	step := KeyArrowDown
	if k == KeyPageUp {
		step = KeyArrowUp
	}
	for range d.screenRows {
		d.MoveCursor(step)
	}
	d.clampCursorCol()
}

// ViewState is the view-only part of a document: the screen size and the
// scroll offsets of its top-left cell.
type ViewState struct {
	RowOffset  int
	ColOffset  int
	ScreenRows int
	ScreenCols int
}

func (d *Document) View() ViewState {
	return ViewState{
		RowOffset:  d.rowOff,
		ColOffset:  d.colOff,
		ScreenRows: d.screenRows,
		ScreenCols: d.screenCols,
	}
}

// SetScreenSize sets the number of text rows and columns available.
func (d *Document) SetScreenSize(rows, cols int) {
	d.screenRows = max(rows, 0)
	d.screenCols = max(cols, 0)
}

// SetOffsets sets the scroll offsets directly.
func (d *Document) SetOffsets(rowOff, colOff int) {
	d.rowOff = max(rowOff, 0)
	d.colOff = max(colOff, 0)
}

// Scroll adjusts the offsets so the cursor's render position is on screen.
func (d *Document) Scroll() {
	rx := d.RenderX()

	if d.cy < d.rowOff {
		d.rowOff = d.cy
	}
	if d.screenRows > 0 && d.cy >= d.rowOff+d.screenRows {
		d.rowOff = d.cy - d.screenRows + 1
	}
	if rx < d.colOff {
		d.colOff = rx
	}
	if d.screenCols > 0 && rx >= d.colOff+d.screenCols {
		d.colOff = rx - d.screenCols + 1
	}
}

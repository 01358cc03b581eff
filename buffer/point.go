package buffer

import "unicode"

// Point addresses a raw byte in the document by (row, col).
type Point struct {
	Row int
	Col int
}

// ComparePoints orders points by row, then column.
func ComparePoints(a, b Point) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func (p Point) Compare(q Point) int { return ComparePoints(p, q) }

func (p Point) Equal(q Point) bool { return p == q }

func (p Point) Less(q Point) bool { return ComparePoints(p, q) < 0 }

func (p Point) LessEqual(q Point) bool { return ComparePoints(p, q) <= 0 }

func (p Point) Greater(q Point) bool { return ComparePoints(p, q) > 0 }

func (p Point) GreaterEqual(q Point) bool { return ComparePoints(p, q) >= 0 }

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StartPoint is the first position of any document.
func (d *Document) StartPoint() Point { return Point{} }

// EndPoint is the position just past the last byte of the last row.
func (d *Document) EndPoint() Point {
	if len(d.rows) == 0 {
		return Point{}
	}
	last := len(d.rows) - 1
	return Point{Row: last, Col: d.rows[last].Len()}
}

// NextPoint advances p by one raw byte, moving to the start of the next row
// past end-of-row and stopping at EndPoint.
func (d *Document) NextPoint(p Point) Point {
	if len(d.rows) == 0 {
		return Point{}
	}
	if p.Row >= len(d.rows) {
		return d.EndPoint()
	}
	p.Col++
	if p.Col >= d.rows[p.Row].Len() {
		if p.Row == len(d.rows)-1 {
			p.Col = d.rows[p.Row].Len()
			return p
		}
		p.Row++
		p.Col = 0
	}
	return p
}

// PrevPoint moves p back by one raw byte, moving to the end of the previous
// row before column 0 and stopping at StartPoint.
func (d *Document) PrevPoint(p Point) Point {
	if len(d.rows) == 0 {
		return Point{}
	}
	if p.Row >= len(d.rows) {
		return d.EndPoint()
	}
	p.Col--
	if p.Col < 0 {
		if p.Row == 0 {
			return Point{}
		}
		p.Row--
		p.Col = d.rows[p.Row].Len()
	}
	return p
}

// isSpaceAt treats empty rows and the end of the last row as whitespace.
// NextPoint steps from a row's last byte straight to the next row's first,
// so a row break between two non-empty rows is never a word boundary.
func (d *Document) isSpaceAt(p Point) bool {
	if p.Row < 0 || p.Row >= len(d.rows) {
		return true
	}
	raw := d.rows[p.Row].raw
	if p.Col < 0 || p.Col >= len(raw) {
		return true
	}
	return unicode.IsSpace(rune(raw[p.Col]))
}

// PointW returns the first point after the cursor where the character
// switches between whitespace and non-whitespace relative to the character
// before it, or EndPoint if the document ends first.
func (d *Document) PointW() Point {
	end := d.EndPoint()
	pt := d.clampPoint(d.Cursor())
	for {
		next := d.NextPoint(pt)
		if next.GreaterEqual(end) {
			return end
		}
		if d.isSpaceAt(pt) != d.isSpaceAt(next) {
			return next
		}
		pt = next
	}
}

// MoveWordForward places the cursor at PointW.
func (d *Document) MoveWordForward() {
	d.SetCursor(d.PointW())
}

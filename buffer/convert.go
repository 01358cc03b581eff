package buffer

// OffsetClampMode selects how out-of-range inputs to the offset conversions
// are treated.
type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// ByteLen is the length of the document text with rows joined by a single
// '\n' and no trailing newline.
func (d *Document) ByteLen() int {
	total := 0
	for i, r := range d.rows {
		total += r.Len()
		if i < len(d.rows)-1 {
			total++
		}
	}
	return total
}

// PointFromOffset maps a byte offset into the joined text back to a point.
func (d *Document) PointFromOffset(off int, mode OffsetClampMode) (Point, bool) {
	off, ok := clampOffset(off, d.ByteLen(), mode)
	if !ok {
		return Point{}, false
	}

	cur := 0
	for i, r := range d.rows {
		next := cur + r.Len()
		if off <= next {
			return Point{Row: i, Col: off - cur}, true
		}
		cur = next + 1
	}
	return Point{}, true
}

// OffsetFromPoint maps p to a byte offset into the joined text. With
// OffsetError a point outside the document is rejected; with OffsetClamp it
// is clamped first. The virtual line after the last row maps to ByteLen.
func (d *Document) OffsetFromPoint(p Point, mode OffsetClampMode) (int, bool) {
	clamped := d.clampPoint(p)
	switch mode {
	case OffsetError:
		if clamped != p {
			return 0, false
		}
	case OffsetClamp:
	default:
		return 0, false
	}

	if clamped.Row >= len(d.rows) {
		return d.ByteLen(), true
	}
	off := 0
	for i := 0; i < clamped.Row; i++ {
		off += d.rows[i].Len() + 1
	}
	return off + clamped.Col, true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}

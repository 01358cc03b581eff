package buffer

import (
	"slices"

	"github.com/iw2rmb/eru/syntax"
)

// DefaultTabStop is the render width of a tab stop.
const DefaultTabStop = 8

// Row is one logical line. raw is the source of truth; rendered and
// highlight are caches rebuilt together whenever raw changes.
type Row struct {
	index int

	raw       []byte
	rendered  []byte
	highlight []syntax.Class

	openBlockComment bool
}

func newRow(index int, content []byte) *Row {
	return &Row{index: index, raw: slices.Clone(content)}
}

// Index is the row's position in its document.
func (r *Row) Index() int { return r.index }

// Len is the number of raw bytes.
func (r *Row) Len() int { return len(r.raw) }

// Raw returns the row's bytes. Callers must not modify the result.
func (r *Row) Raw() []byte { return r.raw }

func (r *Row) String() string { return string(r.raw) }

// Render returns the tab-expanded form. Callers must not modify the result.
func (r *Row) Render() []byte { return r.rendered }

// RenderLen is the number of rendered bytes.
func (r *Row) RenderLen() int { return len(r.rendered) }

// Highlight returns one class per rendered byte. Callers must not modify
// the result.
func (r *Row) Highlight() []syntax.Class { return r.highlight }

// OpenBlockComment reports whether a block comment is still open at the end
// of the row.
func (r *Row) OpenBlockComment() bool { return r.openBlockComment }

// RenderX maps raw column x to its render column.
func (r *Row) RenderX(x, tabStop int) int { return RawToRender(r.raw, x, tabStop) }

// RawX maps render column rx back to the raw column whose rendering covers
// it.
func (r *Row) RawX(rx, tabStop int) int { return RenderToRaw(r.raw, rx, tabStop) }

func normalizeTabStop(tabStop int) int {
	if tabStop <= 0 {
		return DefaultTabStop
	}
	return tabStop
}

// ExpandTabs returns raw with every tab replaced by one or more spaces so
// that the following column is a multiple of tabStop.
func ExpandTabs(raw []byte, tabStop int) []byte {
	tabStop = normalizeTabStop(tabStop)

	tabs := 0
	for _, c := range raw {
		if c == '\t' {
			tabs++
		}
	}
	out := make([]byte, 0, len(raw)+tabs*(tabStop-1))
	for _, c := range raw {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%tabStop != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// RawToRender returns the render column of raw column x.
func RawToRender(raw []byte, x, tabStop int) int {
	tabStop = normalizeTabStop(tabStop)
	x = clampInt(x, 0, len(raw))

	rx := 0
	for _, c := range raw[:x] {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RenderToRaw returns the first raw column whose accumulated render width
// exceeds rx, or len(raw) if none does. Because a tab covers several render
// columns, this is the best raw index for rx and not an exact inverse of
// RawToRender.
func RenderToRaw(raw []byte, rx, tabStop int) int {
	tabStop = normalizeTabStop(tabStop)

	cur := 0
	for cx, c := range raw {
		if c == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(raw)
}

// render rebuilds the render form and resets highlight to Normal.
func (r *Row) render(tabStop int) {
	r.rendered = ExpandTabs(r.raw, tabStop)
	if cap(r.highlight) >= len(r.rendered) {
		r.highlight = r.highlight[:len(r.rendered)]
	} else {
		r.highlight = make([]syntax.Class, len(r.rendered))
	}
	clear(r.highlight)
}

func (r *Row) insertByte(at int, c byte) {
	if at < 0 || at > len(r.raw) {
		at = len(r.raw)
	}
	r.raw = slices.Insert(r.raw, at, c)
}

func (r *Row) deleteByte(at int) bool {
	if at < 0 || at >= len(r.raw) {
		return false
	}
	r.raw = slices.Delete(r.raw, at, at+1)
	return true
}

func (r *Row) appendBytes(b []byte) {
	r.raw = append(r.raw, b...)
}

func (r *Row) truncate(at int) {
	at = clampInt(at, 0, len(r.raw))
	r.raw = r.raw[:at:at]
}

func (r *Row) clone() *Row {
	return &Row{
		index:            r.index,
		raw:              slices.Clone(r.raw),
		rendered:         slices.Clone(r.rendered),
		highlight:        slices.Clone(r.highlight),
		openBlockComment: r.openBlockComment,
	}
}

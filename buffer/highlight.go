package buffer

import (
	"bytes"

	"github.com/iw2rmb/eru/syntax"
)

const separatorChars = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return bytes.IndexByte([]byte(separatorChars), c) >= 0
}

// highlightRow classifies every byte of rendered into hl, which must have
// the same length. open is the block comment state carried in from the
// previous row; the state at the end of this row is returned.
func highlightRow(rendered []byte, hl []syntax.Class, p *syntax.Profile, open bool) bool {
	clear(hl)
	if p == nil {
		return false
	}

	scs := []byte(p.LineComment)
	mcs := []byte(p.BlockStart)
	mce := []byte(p.BlockEnd)
	blocks := p.HasBlockComments()
	strs := p.HasFlag(syntax.HighlightStrings)
	nums := p.HasFlag(syntax.HighlightNumbers)

	prevSep := true
	var inString byte
	inBlock := open

	n := len(rendered)
	i := 0
	for i < n {
		c := rendered[i]
		prevHL := syntax.Normal
		if i > 0 {
			prevHL = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inBlock && bytes.HasPrefix(rendered[i:], scs) {
			fill(hl[i:], syntax.Comment)
			break
		}

		if blocks && inString == 0 {
			if inBlock {
				hl[i] = syntax.BlockComment
				if bytes.HasPrefix(rendered[i:], mce) {
					fill(hl[i:i+len(mce)], syntax.BlockComment)
					i += len(mce)
					inBlock = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(rendered[i:], mcs) {
				fill(hl[i:i+len(mcs)], syntax.BlockComment)
				i += len(mcs)
				inBlock = true
				continue
			}
		}

		if strs {
			if inString != 0 {
				hl[i] = syntax.String
				if c == '\\' && i+1 < n {
					hl[i+1] = syntax.String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = syntax.String
				i++
				continue
			}
		}

		if nums {
			if (isDigit(c) && (prevSep || prevHL == syntax.Number)) ||
				(c == '.' && prevHL == syntax.Number) {
				hl[i] = syntax.Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, ok := matchKeyword(rendered, i, p.Keywords); ok {
				fill(hl[i:i+len(kw.Token)], kw.Class)
				i += len(kw.Token)
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return inBlock
}

// matchKeyword returns the longest keyword starting at i that is followed by
// a separator or the end of the row.
func matchKeyword(rendered []byte, i int, keywords []syntax.Keyword) (syntax.Keyword, bool) {
	var best syntax.Keyword
	found := false
	for _, kw := range keywords {
		end := i + len(kw.Token)
		if end > len(rendered) || (found && len(kw.Token) <= len(best.Token)) {
			continue
		}
		if string(rendered[i:end]) != kw.Token {
			continue
		}
		if end < len(rendered) && !isSeparator(rendered[end]) {
			continue
		}
		best, found = kw, true
	}
	return best, found
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func fill(hl []syntax.Class, c syntax.Class) {
	for i := range hl {
		hl[i] = c
	}
}

// carriedOpen is the block comment state flowing into row at.
func (d *Document) carriedOpen(at int) bool {
	return at > 0 && at-1 < len(d.rows) && d.rows[at-1].openBlockComment
}

// updateRow re-renders and re-highlights row at, then cascades.
func (d *Document) updateRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.rows[at].render(d.tabStop)
	d.highlightFrom(at)
}

// highlightFrom re-highlights row at and keeps going down the document while
// a row's end-of-row comment state differs from what it was before, so the
// following row sees a different carried-in state.
func (d *Document) highlightFrom(at int) {
	for i := max(at, 0); i < len(d.rows); i++ {
		row := d.rows[i]
		open := highlightRow(row.rendered, row.highlight, d.syntax, d.carriedOpen(i))
		changed := open != row.openBlockComment
		row.openBlockComment = open
		if !changed {
			return
		}
	}
}

// highlightAll re-renders and re-highlights every row without stopping
// early, used when the profile or tab stop changes.
func (d *Document) highlightAll() {
	for i, row := range d.rows {
		row.render(d.tabStop)
		row.openBlockComment = highlightRow(row.rendered, row.highlight, d.syntax, d.carriedOpen(i))
	}
}

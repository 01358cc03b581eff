package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/eru"
	"github.com/iw2rmb/eru/buffer"
	"github.com/iw2rmb/eru/internal/textwidth"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	m.drawRows(&sb)
	sb.WriteString(m.statusBar())
	sb.WriteByte('\n')
	sb.WriteString(m.messageBar())
	return sb.String()
}

func (m Model) drawRows(sb *strings.Builder) {
	view := m.doc.View()
	cur := m.doc.Cursor()
	cursorCol := m.doc.RenderX() - view.ColOffset

	for y := 0; y < view.ScreenRows; y++ {
		filerow := y + view.RowOffset
		onCursor := filerow == cur.Row
		if filerow >= m.doc.Len() {
			sb.WriteString(m.drawEmptyRow(y, view, onCursor))
		} else {
			col := -1
			if onCursor {
				col = cursorCol
			}
			sb.WriteString(m.drawRow(m.doc.Row(filerow), view, col))
		}
		sb.WriteByte('\n')
	}
}

// drawEmptyRow draws a row past the end of the document: a tilde, the
// cursor on the virtual line, or the welcome banner on an empty document.
func (m Model) drawEmptyRow(y int, view buffer.ViewState, onCursor bool) string {
	st := m.cfg.Style
	if m.doc.Len() == 0 && y == view.ScreenRows/3 {
		welcome := textwidth.Truncate(eru.Banner(), view.ScreenCols)
		padding := (view.ScreenCols - textwidth.Width(welcome)) / 2
		var sb strings.Builder
		if onCursor {
			sb.WriteString(st.Cursor.Render(" "))
			padding--
		} else if padding > 0 {
			sb.WriteString(st.Tilde.Render("~"))
			padding--
		}
		if padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}
		sb.WriteString(welcome)
		return sb.String()
	}
	if onCursor {
		return st.Cursor.Render(" ")
	}
	return st.Tilde.Render("~")
}

// drawRow draws the visible slice of a row, one style run per highlight
// class. cursorCol is the cursor's screen column on this row, or -1.
func (m Model) drawRow(row *buffer.Row, view buffer.ViewState, cursorCol int) string {
	st := m.cfg.Style
	render := row.Render()
	hl := row.Highlight()

	start := min(view.ColOffset, len(render))
	end := len(render)
	if view.ScreenCols > 0 {
		end = min(start+view.ScreenCols, len(render))
	}

	var sb strings.Builder
	runStart := start
	flush := func(i int) {
		if i > runStart {
			sb.WriteString(st.ForClass(hl[runStart]).Render(string(render[runStart:i])))
		}
	}

	for i := start; i < end; i++ {
		c := render[i]
		isCursor := cursorCol >= 0 && i-start == cursorCol
		if isCursor || isControl(c) {
			flush(i)
			cell := string(render[i : i+1])
			cellStyle := st.ForClass(hl[i])
			if isControl(c) {
				cell = controlSymbol(c)
				cellStyle = st.Control
			}
			if isCursor {
				cellStyle = st.Cursor
			}
			sb.WriteString(cellStyle.Render(cell))
			runStart = i + 1
			continue
		}
		if hl[i] != hl[runStart] {
			flush(i)
			runStart = i
		}
	}
	flush(end)

	if cursorCol >= end-start && (view.ScreenCols == 0 || cursorCol < view.ScreenCols) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func isControl(c byte) bool { return c < 0x20 || c == 0x7f }

// controlSymbol is ^@..^Z for the low control codes and ? for the rest.
func controlSymbol(c byte) string {
	if c <= 26 {
		return "^" + string(rune('@'+c))
	}
	return "?"
}

func (m Model) statusBar() string {
	cols := m.doc.View().ScreenCols

	name := m.doc.Filename()
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if m.doc.IsDirty() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", textwidth.Truncate(name, 20), m.doc.Len(), modified)

	ft := "no ft"
	if p := m.doc.Syntax(); p != nil {
		ft = p.Name
	}
	right := fmt.Sprintf("%s | %d/%d", ft, m.doc.Cursor().Row+1, m.doc.Len())

	line := textwidth.Truncate(left, cols)
	if gap := cols - textwidth.Width(line) - textwidth.Width(right); gap >= 0 {
		line += strings.Repeat(" ", gap) + right
	} else {
		line = textwidth.PadRight(line, cols)
	}
	return m.cfg.Style.StatusBar.Render(line)
}

func (m Model) messageBar() string {
	text := m.Status()
	if m.prompt != nil {
		text = m.prompt.text()
	}
	return m.cfg.Style.Message.Render(textwidth.Truncate(text, m.doc.View().ScreenCols))
}

package editor

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/eru/buffer"
	"github.com/iw2rmb/eru/internal/logging"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	dirty := m.doc.Dirty()
	edited := false
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, km.Quit):
		if m.doc.IsDirty() && m.quitTimes > 0 {
			cmd = m.setStatus(fmt.Sprintf(
				"WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", m.quitTimes))
			m.quitTimes--
			return m, cmd
		}
		m.log.Debug("quit", logging.FieldPath, m.doc.Filename(), logging.FieldDirty, m.doc.Dirty())
		m.rememberCursor()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, km.Save):
		cmd = (&m).save()
	case key.Matches(msg, km.Find):
		cmd = (&m).find()

	case key.Matches(msg, km.Undo):
		cmd = (&m).undo()
	case key.Matches(msg, km.Redo):
		cmd = (&m).redo()

	case key.Matches(msg, km.WordRight):
		m.doc.MoveWordForward()
	case key.Matches(msg, km.Left):
		m.doc.MoveCursor(buffer.KeyArrowLeft)
	case key.Matches(msg, km.Right):
		m.doc.MoveCursor(buffer.KeyArrowRight)
	case key.Matches(msg, km.Up):
		m.doc.MoveCursor(buffer.KeyArrowUp)
	case key.Matches(msg, km.Down):
		m.doc.MoveCursor(buffer.KeyArrowDown)
	case key.Matches(msg, km.PageUp):
		m.doc.MoveCursor(buffer.KeyPageUp)
	case key.Matches(msg, km.PageDown):
		m.doc.MoveCursor(buffer.KeyPageDown)
	case key.Matches(msg, km.Home):
		m.doc.MoveCursor(buffer.KeyHome)
	case key.Matches(msg, km.End):
		m.doc.MoveCursor(buffer.KeyEnd)

	case key.Matches(msg, km.Backspace):
		m.doc.DeleteChar()
		edited = true
	case key.Matches(msg, km.Delete):
		m.doc.DeleteForward()
		edited = true
	case key.Matches(msg, km.Enter):
		m.doc.InsertNewline()
		edited = true

	case key.Matches(msg, km.Refresh):

	default:
		switch {
		case msg.Type == tea.KeyTab:
			m.doc.InsertChar('\t')
			edited = true
		case msg.Type == tea.KeySpace:
			m.doc.InsertChar(' ')
			edited = true
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			// Paste events insert literal text, newlines included.
			m.doc.InsertString(string(msg.Runes))
			edited = true
		}
	}

	if edited && m.doc.Dirty() != dirty {
		m.hist.Push(m.doc)
	}
	m.quitTimes = m.cfg.QuitTimes
	m.doc.Scroll()
	return m, cmd
}

func (m *Model) undo() tea.Cmd {
	s, ok := m.hist.Undo()
	if !ok {
		return m.setStatus("Already at oldest change")
	}
	m.doc.Restore(s)
	m.hist.Sync(m.doc)
	return nil
}

func (m *Model) redo() tea.Cmd {
	s, ok := m.hist.Redo()
	if !ok {
		return m.setStatus("Already at newest change")
	}
	m.doc.Restore(s)
	m.hist.Sync(m.doc)
	return nil
}

// rememberCursor stores the cursor offset for the open file.
func (m *Model) rememberCursor() {
	if m.cfg.Store == nil || m.doc.Filename() == "" {
		return
	}
	path := storeKey(m.doc.Filename())
	off, _ := m.doc.OffsetFromPoint(m.doc.Cursor(), buffer.OffsetClamp)
	if err := m.cfg.Store.SetCursor(path, off); err != nil {
		m.log.Error("store cursor", logging.FieldPath, path, logging.FieldError, err)
	}
}

// keyFromMsg translates a Bubble Tea key into the document's key codes.
func keyFromMsg(msg tea.KeyMsg) buffer.Key {
	switch msg.Type {
	case tea.KeyUp:
		return buffer.KeyArrowUp
	case tea.KeyDown:
		return buffer.KeyArrowDown
	case tea.KeyLeft:
		return buffer.KeyArrowLeft
	case tea.KeyRight:
		return buffer.KeyArrowRight
	case tea.KeyPgUp:
		return buffer.KeyPageUp
	case tea.KeyPgDown:
		return buffer.KeyPageDown
	case tea.KeyHome:
		return buffer.KeyHome
	case tea.KeyEnd:
		return buffer.KeyEnd
	case tea.KeyDelete:
		return buffer.KeyDelete
	case tea.KeySpace:
		return ' '
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] < utf8.RuneSelf {
			return buffer.Key(msg.Runes[0])
		}
		return 0
	}
	// Control keys carry their ASCII code.
	if msg.Type >= 0 && msg.Type < utf8.RuneSelf {
		return buffer.Key(msg.Type)
	}
	return 0
}

package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/eru/buffer"
)

// prompt collects a line of input in the message bar. format holds one %s
// for the input.
type prompt struct {
	format   string
	input    []byte
	callback buffer.PromptFunc
	done     func(m *Model, input string, ok bool) tea.Cmd

	// Recall list, most recent first; pos -1 is the live input.
	history []string
	pos     int
}

func (p *prompt) text() string {
	return fmt.Sprintf(p.format, p.input)
}

// startPrompt opens a prompt. callback, if set, runs after every keystroke;
// done runs once when the prompt is accepted or cancelled.
func (m *Model) startPrompt(format string, callback buffer.PromptFunc, history []string, done func(m *Model, input string, ok bool) tea.Cmd) {
	m.prompt = &prompt{
		format:   format,
		callback: callback,
		done:     done,
		history:  history,
		pos:      -1,
	}
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := m.prompt
	km := m.cfg.KeyMap
	k := keyFromMsg(msg)

	switch {
	case msg.Type == tea.KeyEsc:
		m.clearStatus()
		if p.callback != nil {
			p.callback(string(p.input), buffer.KeyEscape)
		}
		m.prompt = nil
		return m, p.finish(&m, false)

	case msg.Type == tea.KeyEnter:
		if len(p.input) != 0 {
			m.clearStatus()
			if p.callback != nil {
				p.callback(string(p.input), buffer.KeyEnter)
			}
			m.prompt = nil
			return m, p.finish(&m, true)
		}

	case key.Matches(msg, km.Backspace), key.Matches(msg, km.Delete):
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}

	case key.Matches(msg, km.HistoryPrev):
		if p.pos+1 < len(p.history) {
			p.pos++
			p.input = []byte(p.history[p.pos])
		}
	case key.Matches(msg, km.HistoryNext):
		if p.pos >= 0 {
			p.pos--
			p.input = nil
			if p.pos >= 0 {
				p.input = []byte(p.history[p.pos])
			}
		}

	case msg.Type == tea.KeySpace:
		p.input = append(p.input, ' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		p.input = append(p.input, string(msg.Runes)...)
	}

	if p.callback != nil {
		p.callback(string(p.input), k)
	}
	return m, nil
}

func (p *prompt) finish(m *Model, ok bool) tea.Cmd {
	if p.done == nil {
		return nil
	}
	return p.done(m, string(p.input), ok)
}

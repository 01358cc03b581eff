package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/eru/internal/logging"
)

const searchPrompt = "Search: %s (Use ESC/Arrows/Enter)"

// find runs an incremental search from the message bar. Escape puts the
// cursor back where it was; Enter leaves it on the match.
func (m *Model) find() tea.Cmd {
	m.search.Begin()

	var history []string
	if m.cfg.Store != nil {
		qs, err := m.cfg.Store.Queries(searchHistoryDepth)
		if err != nil {
			m.log.Error("load search history", logging.FieldError, err)
		}
		history = qs
	}

	m.startPrompt(searchPrompt, m.search.OnKey, history, func(m *Model, query string, ok bool) tea.Cmd {
		m.search.End(!ok)
		m.doc.Scroll()
		if !ok {
			return nil
		}
		m.log.Debug("search", logging.FieldQuery, query)
		if m.cfg.Store != nil {
			if err := m.cfg.Store.AddQuery(query); err != nil {
				m.log.Error("store search query", logging.FieldQuery, query, logging.FieldError, err)
			}
		}
		return nil
	})
	return nil
}

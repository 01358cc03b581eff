package editor

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/eru/buffer"
	"github.com/iw2rmb/eru/internal/logging"
	"github.com/iw2rmb/eru/syntax"
)

// Model is a Bubble Tea component that edits one document.
type Model struct {
	cfg Config
	reg *syntax.Registry
	log *log.Logger

	doc    *buffer.Document
	hist   *buffer.History
	search *buffer.Search

	width, height int

	prompt    *prompt
	status    string
	statusAt  time.Time
	quitTimes int
	quitting  bool

	now func() time.Time
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.StatusTimeout <= 0 {
		cfg.StatusTimeout = defaultStatusTimeout
	}
	if cfg.HistoryLimit < 0 {
		cfg.HistoryLimit = 0
	}
	if cfg.QuitTimes < 0 {
		cfg.QuitTimes = 0
	}

	m := Model{
		cfg:       cfg,
		reg:       cfg.Registry,
		log:       cfg.Logger,
		quitTimes: cfg.QuitTimes,
		now:       time.Now,
	}
	if m.reg == nil {
		m.reg = syntax.Default()
	}
	if m.log == nil {
		m.log = logging.Default()
	}

	m.doc = buffer.New("", buffer.Options{TabStop: cfg.TabStop})
	m.hist = buffer.NewHistory(m.doc, cfg.HistoryLimit)
	m.search = buffer.NewSearch(m.doc)
	return m
}

// Document exposes the edited document.
func (m Model) Document() *buffer.Document { return m.doc }

// History exposes the undo chain.
func (m Model) History() *buffer.History { return m.hist }

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

// Status returns the current status message, or "" once it has expired.
func (m Model) Status() string {
	if m.status == "" || m.now().Sub(m.statusAt) >= m.cfg.StatusTimeout {
		return ""
	}
	return m.status
}

// Prompting reports whether a prompt owns the message bar.
func (m Model) Prompting() bool { return m.prompt != nil }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the terminal size. Two lines are reserved for the status
// and message bars.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.doc.SetScreenSize(max(m.height-2, 0), m.width)
	m.doc.Scroll()
	return m
}

// SetText replaces the document content without touching the filename,
// resetting undo history.
func (m Model) SetText(text string) Model {
	var lines []string
	if text != "" {
		lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	}
	m.doc.Load(lines)
	m.hist.Reset(m.doc)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case statusExpiredMsg:
		// Nothing to do: View drops the message once it is stale.
		return m, nil
	case tea.KeyMsg:
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

type statusExpiredMsg struct{}

// setStatus shows a message in the message bar and schedules a redraw for
// when it expires.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.status = msg
	m.statusAt = m.now()
	return tea.Tick(m.cfg.StatusTimeout, func(time.Time) tea.Msg { return statusExpiredMsg{} })
}

func (m *Model) clearStatus() {
	m.status = ""
}

package editor

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/eru/internal/store"
	"github.com/iw2rmb/eru/syntax"
)

// Config configures the editor Model.
type Config struct {
	// Forwarded to buffer.Options.
	TabStop int

	// Extra Ctrl-Q presses required to quit with unsaved changes.
	QuitTimes int

	// Undo steps kept; 0 keeps all of them.
	HistoryLimit int

	// How long a status message stays visible. Zero means 5s.
	StatusTimeout time.Duration

	// Optional collaborators. A nil Registry uses syntax.Default, a nil
	// Store disables session state and a nil Logger uses logging.Default.
	Registry *syntax.Registry
	Store    *store.Store
	Logger   *log.Logger

	// A zero KeyMap is replaced with DefaultKeyMap.
	KeyMap KeyMap
	Style  Style
}

const defaultStatusTimeout = 5 * time.Second

// searchHistoryDepth bounds the queries recalled in the search prompt.
const searchHistoryDepth = 50

package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/eru/syntax"
)

// Style controls the editor's rendering.
type Style struct {
	// Text styles bytes whose class has no entry in Classes.
	Text    lipgloss.Style
	Classes map[syntax.Class]lipgloss.Style

	Cursor  lipgloss.Style
	Control lipgloss.Style // non-printable bytes, drawn as ^X or ?
	Tilde   lipgloss.Style // rows past the end of the document

	StatusBar lipgloss.Style
	Message   lipgloss.Style
}

// classColors are ANSI colors per highlight class.
var classColors = map[syntax.Class]string{
	syntax.Comment:      "6",
	syntax.BlockComment: "6",
	syntax.Keyword1:     "3",
	syntax.Keyword2:     "2",
	syntax.String:       "5",
	syntax.Number:       "1",
	syntax.Match:        "4",
}

func DefaultStyle() Style {
	classes := make(map[syntax.Class]lipgloss.Style, len(classColors))
	for c, color := range classColors {
		classes[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return Style{
		Text:      lipgloss.NewStyle(),
		Classes:   classes,
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Control:   lipgloss.NewStyle().Reverse(true),
		Tilde:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusBar: lipgloss.NewStyle().Reverse(true),
		Message:   lipgloss.NewStyle(),
	}
}

// WithColors returns a copy of s whose class foregrounds are overridden by
// colors, keyed by class name (see syntax.ParseClass). Unknown names are
// ignored.
func (s Style) WithColors(colors map[string]string) Style {
	if len(colors) == 0 {
		return s
	}
	classes := make(map[syntax.Class]lipgloss.Style, len(s.Classes)+len(colors))
	for c, st := range s.Classes {
		classes[c] = st
	}
	for name, color := range colors {
		c, ok := syntax.ParseClass(name)
		if !ok {
			continue
		}
		base, ok := classes[c]
		if !ok {
			base = s.Text
		}
		classes[c] = base.Foreground(lipgloss.Color(color))
	}
	s.Classes = classes
	return s
}

// ForClass returns the style for bytes of class c.
func (s Style) ForClass(c syntax.Class) lipgloss.Style {
	if st, ok := s.Classes[c]; ok {
		return st
	}
	return s.Text
}

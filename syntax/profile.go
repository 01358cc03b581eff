package syntax

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProfile is wrapped by every profile validation failure.
var ErrInvalidProfile = errors.New("invalid syntax profile")

// Flags selects optional highlight passes.
type Flags uint8

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

// Keyword is one highlighted token and the class it is shown with.
type Keyword struct {
	Token string
	Class Class
}

// Profile describes the lexical rules for one file type.
type Profile struct {
	// Name is the filetype shown in the status bar.
	Name string
	// FileMatch patterns starting with '.' are compared to the filename
	// extension; any other pattern matches as a substring.
	FileMatch []string
	// Languages lists go-enry language names served by this profile.
	Languages []string
	Keywords  []Keyword

	LineComment string
	BlockStart  string
	BlockEnd    string
	Flags       Flags
}

func (p *Profile) HasFlag(f Flags) bool {
	return p != nil && p.Flags&f != 0
}

// HasBlockComments reports whether both block delimiters are configured.
func (p *Profile) HasBlockComments() bool {
	return p != nil && p.BlockStart != "" && p.BlockEnd != ""
}

// MatchesFilename reports whether any FileMatch pattern applies to filename.
func (p *Profile) MatchesFilename(filename, ext string) bool {
	if p == nil || filename == "" {
		return false
	}
	for _, pattern := range p.FileMatch {
		if strings.HasPrefix(pattern, ".") {
			if pattern == ext {
				return true
			}
			continue
		}
		if strings.Contains(filename, pattern) {
			return true
		}
	}
	return false
}

func (p *Profile) servesLanguage(lang string) bool {
	for _, l := range p.Languages {
		if strings.EqualFold(l, lang) {
			return true
		}
	}
	return false
}

// Validate checks the structural rules a profile must satisfy before it is
// registered.
func (p *Profile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil profile", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}
	if len(p.FileMatch) == 0 && len(p.Languages) == 0 {
		return fmt.Errorf("%w: %s: no filematch patterns or languages", ErrInvalidProfile, p.Name)
	}
	for _, pattern := range p.FileMatch {
		if pattern == "" {
			return fmt.Errorf("%w: %s: empty filematch pattern", ErrInvalidProfile, p.Name)
		}
	}
	if (p.BlockStart == "") != (p.BlockEnd == "") {
		return fmt.Errorf("%w: %s: block comment needs both start and end", ErrInvalidProfile, p.Name)
	}
	for _, kw := range p.Keywords {
		if kw.Token == "" {
			return fmt.Errorf("%w: %s: empty keyword", ErrInvalidProfile, p.Name)
		}
		if kw.Class != Keyword1 && kw.Class != Keyword2 {
			return fmt.Errorf("%w: %s: keyword %q has class %s", ErrInvalidProfile, p.Name, kw.Token, kw.Class)
		}
	}
	return nil
}

package syntax

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-enry/go-enry/v2"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var embeddedProfiles []byte

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Registry is an ordered, read-only list of profiles.
type Registry struct {
	profiles []*Profile
}

// NewRegistry validates profiles and returns a registry that consults them
// in the given order.
func NewRegistry(profiles ...*Profile) (*Registry, error) {
	out := make([]*Profile, 0, len(profiles))
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return &Registry{profiles: out}, nil
}

// Default returns the registry built from the embedded profile set.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		profiles, err := Parse(embeddedProfiles)
		if err != nil {
			panic(fmt.Sprintf("syntax: embedded profiles: %v", err))
		}
		reg, err := NewRegistry(profiles...)
		if err != nil {
			panic(fmt.Sprintf("syntax: embedded profiles: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// With returns a new registry where profiles are consulted before the
// receiver's own. The receiver is left untouched.
func (r *Registry) With(profiles ...*Profile) (*Registry, error) {
	all := make([]*Profile, 0, len(profiles)+r.Len())
	all = append(all, profiles...)
	if r != nil {
		all = append(all, r.profiles...)
	}
	return NewRegistry(all...)
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.profiles)
}

// Profiles returns the profiles in lookup order.
func (r *Registry) Profiles() []*Profile {
	if r == nil {
		return nil
	}
	return append([]*Profile(nil), r.profiles...)
}

// ByName returns the first profile called name, or nil.
func (r *Registry) ByName(name string) *Profile {
	if r == nil {
		return nil
	}
	for _, p := range r.profiles {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Lookup returns the first profile with a FileMatch pattern that applies to
// filename. When no pattern matches, the language go-enry infers from the
// filename is used to pick a profile that lists it. It returns nil when
// nothing applies.
func (r *Registry) Lookup(filename string) *Profile {
	if r == nil || filename == "" {
		return nil
	}

	ext := filepath.Ext(filename)
	for _, p := range r.profiles {
		if p.MatchesFilename(filename, ext) {
			return p
		}
	}

	lang := detectLanguage(filename)
	if lang == "" {
		return nil
	}
	for _, p := range r.profiles {
		if p.servesLanguage(lang) {
			return p
		}
	}
	return nil
}

func detectLanguage(filename string) string {
	base := filepath.Base(filename)
	if lang, _ := enry.GetLanguageByFilename(base); lang != "" {
		return lang
	}
	if lang, _ := enry.GetLanguageByExtension(base); lang != "" {
		return lang
	}
	return ""
}

// LoadFile reads a YAML profile file from path.
func LoadFile(path string) ([]*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open syntax file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Load reads a YAML profile document from r.
func Load(r io.Reader) ([]*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read syntax file: %w", err)
	}
	return Parse(data)
}

type profileFile struct {
	Profiles []profileEntry `yaml:"profiles"`
}

type profileEntry struct {
	Name         string   `yaml:"name"`
	FileMatch    []string `yaml:"filematch"`
	Languages    []string `yaml:"languages"`
	LineComment  string   `yaml:"line_comment"`
	BlockComment struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"block_comment"`
	Highlight []string `yaml:"highlight"`
	Keywords  struct {
		Keyword1 []string `yaml:"keyword1"`
		Keyword2 []string `yaml:"keyword2"`
	} `yaml:"keywords"`
}

// Parse decodes a YAML profile document. Every profile is validated.
func Parse(data []byte) ([]*Profile, error) {
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	out := make([]*Profile, 0, len(file.Profiles))
	for i, e := range file.Profiles {
		p, err := e.profile()
		if err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (e profileEntry) profile() (*Profile, error) {
	p := &Profile{
		Name:        e.Name,
		FileMatch:   append([]string(nil), e.FileMatch...),
		Languages:   append([]string(nil), e.Languages...),
		LineComment: e.LineComment,
		BlockStart:  e.BlockComment.Start,
		BlockEnd:    e.BlockComment.End,
	}
	for _, h := range e.Highlight {
		switch h {
		case "numbers":
			p.Flags |= HighlightNumbers
		case "strings":
			p.Flags |= HighlightStrings
		default:
			return nil, fmt.Errorf("%w: %s: unknown highlight pass %q", ErrInvalidProfile, e.Name, h)
		}
	}
	p.Keywords = make([]Keyword, 0, len(e.Keywords.Keyword1)+len(e.Keywords.Keyword2))
	for _, tok := range e.Keywords.Keyword1 {
		p.Keywords = append(p.Keywords, Keyword{Token: tok, Class: Keyword1})
	}
	for _, tok := range e.Keywords.Keyword2 {
		p.Keywords = append(p.Keywords, Keyword{Token: tok, Class: Keyword2})
	}
	return p, nil
}

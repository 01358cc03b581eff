package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/eru"
	"github.com/iw2rmb/eru/internal/config"
	"github.com/iw2rmb/eru/internal/logging"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	prev := logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })
	return dir
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), eru.VersionTag())
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"a", "b"})
	require.Error(t, cmd.Execute())
}

func TestNewSession_Defaults(t *testing.T) {
	isolate(t)

	s, err := newSession(context.Background(), viper.New(), "", nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	assert.Equal(t, config.Defaults().TabStop, s.cfg.TabStop)
	assert.Nil(t, s.store)
	assert.Equal(t, 0, s.model.Document().Len())
	assert.Same(t, logging.Default(), logging.FromContext(s.ctx))
}

func TestNewSession_WiresConfig(t *testing.T) {
	dir := isolate(t)

	syntaxFile := filepath.Join(dir, "syntax.yaml")
	writeTestFile(t, syntaxFile, `
profiles:
  - name: notes
    filematch: [".note"]
    keywords:
      keyword1: [TODO]
`)
	logFile := filepath.Join(dir, "logs", "eru.log")
	storePath := filepath.Join(dir, "state", "eru.db")
	cfgFile := filepath.Join(dir, "config.yaml")
	writeTestFile(t, cfgFile, strings.Join([]string{
		"tab_stop: 4",
		"log_level: debug",
		"log_file: " + logFile,
		"store_path: " + storePath,
		"syntax_file: " + syntaxFile,
		"colors:",
		"  keyword1: \"11\"",
	}, "\n"))

	doc := filepath.Join(dir, "today.note")
	writeTestFile(t, doc, "TODO\tship it\n")

	s, err := newSession(context.Background(), viper.New(), cfgFile, []string{doc})
	require.NoError(t, err)

	d := s.model.Document()
	assert.Equal(t, 4, d.TabStop())
	assert.Equal(t, "TODO    ship it", string(d.Row(0).Render()))
	require.NotNil(t, d.Syntax())
	assert.Equal(t, "notes", d.Syntax().Name)
	require.NotNil(t, s.store)
	assert.Equal(t, storePath, s.store.Path())

	logging.FromContext(s.ctx).Debug("session context")
	require.NoError(t, s.Close())
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting")
	assert.Contains(t, string(data), "level=debug")
	assert.Contains(t, string(data), "session context")
	assert.Contains(t, string(data), "opened")
}

func TestNewSession_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := newSession(context.Background(), viper.New(), filepath.Join(dir, "missing.yaml"), nil)
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeTestFile(t, bad, "tab_stop: 0\n")
	_, err = newSession(context.Background(), viper.New(), bad, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	noSyntax := filepath.Join(dir, "nosyntax.yaml")
	writeTestFile(t, noSyntax, "syntax_file: "+filepath.Join(dir, "nope.yaml")+"\n")
	_, err = newSession(context.Background(), viper.New(), noSyntax, nil)
	require.Error(t, err)

	_, err = newSession(context.Background(), viper.New(), "", []string{dir})
	require.Error(t, err)
}

func TestProgram_DelegatesToEditor(t *testing.T) {
	isolate(t)
	s, err := newSession(context.Background(), viper.New(), "", nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	var m tea.Model = program{editor: s.model}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 6})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})

	p := m.(program)
	assert.Equal(t, "hi", p.editor.Document().Text())
	assert.Contains(t, p.View(), "hi")
}

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "eru.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestQueries_NewestFirst(t *testing.T) {
	s := openTemp(t)

	for _, q := range []string{"foo", "bar", "bar", "", "baz"} {
		require.NoError(t, s.AddQuery(q))
	}

	all, err := s.Queries(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"baz", "bar", "foo"}, all)

	two, err := s.Queries(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"baz", "bar"}, two)
}

func TestQueries_Empty(t *testing.T) {
	s := openTemp(t)
	got, err := s.Queries(5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCursor(t *testing.T) {
	s := openTemp(t)

	_, err := s.Cursor("/tmp/a.c")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SetCursor("/tmp/a.c", 120))
	require.NoError(t, s.SetCursor("/tmp/b.c", -4))

	got, err := s.Cursor("/tmp/a.c")
	require.NoError(t, err)
	assert.Equal(t, 120, got)

	got, err = s.Cursor("/tmp/b.c")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestReopenKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eru.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.AddQuery("needle"))
	require.NoError(t, s.SetCursor("x.go", 7))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	qs, err := s.Queries(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"needle"}, qs)

	off, err := s.Cursor("x.go")
	require.NoError(t, err)
	assert.Equal(t, 7, off)
	assert.Equal(t, path, s.Path())
}

package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/eru/buffer"
	"github.com/iw2rmb/eru/internal/logging"
	"github.com/iw2rmb/eru/internal/store"
)

// ErrNoFilename is returned when saving a document that was never named.
var ErrNoFilename = errors.New("no filename")

const maxLineBytes = 64 << 20

// ReadLines reads the file at path as lines with '\n' and a trailing '\r'
// removed.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := sc.Text()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// WriteDocument writes every row of d followed by '\n' to d's file and
// returns the number of bytes written.
func WriteDocument(d *buffer.Document) (int, error) {
	if d.Filename() == "" {
		return 0, ErrNoFilename
	}
	data := d.RowsToFlatText()

	f, err := os.OpenFile(d.Filename(), os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, err
	}
	if err := f.Truncate(int64(len(data))); err != nil {
		_ = f.Close()
		return 0, err
	}
	n, err := f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// Open loads the file at path into the editor. A missing file opens an
// empty document under that name; any other read error is returned.
func (m Model) Open(path string) (Model, error) {
	lines, err := ReadLines(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return m, fmt.Errorf("open %s: %w", path, err)
	}

	m.doc.Load(lines)
	m.doc.SetFilename(path)
	(&m).selectSyntax()
	(&m).restoreCursor()
	m.hist.Reset(m.doc)

	m.log.Info("opened", logging.FieldPath, path, logging.FieldRows, m.doc.Len())
	return m, nil
}

func (m *Model) selectSyntax() {
	p := m.doc.SelectSyntax(m.reg)
	name := ""
	if p != nil {
		name = p.Name
	}
	m.log.Debug("syntax selected", logging.FieldPath, m.doc.Filename(), logging.FieldSyntax, name)
}

func (m *Model) restoreCursor() {
	if m.cfg.Store == nil || m.doc.Filename() == "" {
		return
	}
	path := storeKey(m.doc.Filename())
	off, err := m.cfg.Store.Cursor(path)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			m.log.Error("load cursor", logging.FieldPath, path, logging.FieldError, err)
		}
		return
	}
	p, _ := m.doc.PointFromOffset(off, buffer.OffsetClamp)
	m.doc.SetCursor(p)
	m.doc.Scroll()
}

// save writes the document, asking for a name first if it has none.
func (m *Model) save() tea.Cmd {
	if m.doc.Filename() == "" {
		m.startPrompt("Save as: %s (ESC to cancel)", nil, nil, func(m *Model, name string, ok bool) tea.Cmd {
			if !ok {
				return m.setStatus("Save aborted")
			}
			m.doc.SetFilename(name)
			m.selectSyntax()
			return m.writeFile()
		})
		return nil
	}
	return m.writeFile()
}

func (m *Model) writeFile() tea.Cmd {
	n, err := WriteDocument(m.doc)
	if err != nil {
		m.log.Error("save failed", logging.FieldPath, m.doc.Filename(), logging.FieldError, err)
		return m.setStatus(fmt.Sprintf("Can't save! I/O error: %s", err))
	}
	m.doc.MarkSaved()
	m.hist.MarkSaved()
	m.rememberCursor()
	cur := m.doc.Cursor()
	m.log.Info("saved", logging.FieldPath, m.doc.Filename(), logging.FieldBytes, n,
		logging.FieldRow, cur.Row, logging.FieldCol, cur.Col)
	return m.setStatus(fmt.Sprintf("%d bytes written to disk", n))
}

// storeKey is the session store key for a file: its absolute path when it
// can be resolved.
func storeKey(name string) string {
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return name
}

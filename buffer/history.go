package buffer

import "github.com/iw2rmb/eru/syntax"

// Snapshot is an immutable deep copy of a document's content. It shares no
// memory with the document it was taken from; only the syntax profile is
// shared.
type Snapshot struct {
	rows     []*Row
	cursor   Point
	dirty    int
	filename string
	syntax   *syntax.Profile
	tabStop  int
}

func (s *Snapshot) Len() int { return len(s.rows) }

func (s *Snapshot) Cursor() Point { return s.cursor }

func (s *Snapshot) Dirty() int { return s.dirty }

func (s *Snapshot) Filename() string { return s.filename }

// Lines returns a copy of every row's raw content.
func (s *Snapshot) Lines() []string {
	out := make([]string, len(s.rows))
	for i, r := range s.rows {
		out[i] = string(r.raw)
	}
	return out
}

func cloneRows(rows []*Row) []*Row {
	out := make([]*Row, len(rows))
	for i, r := range rows {
		out[i] = r.clone()
	}
	return out
}

// Snapshot deep-copies the document's content.
func (d *Document) Snapshot() *Snapshot {
	return &Snapshot{
		rows:     cloneRows(d.rows),
		cursor:   d.Cursor(),
		dirty:    d.dirty,
		filename: d.filename,
		syntax:   d.syntax,
		tabStop:  d.tabStop,
	}
}

// Restore replaces the document's content with a copy of s. Screen size and
// scroll offsets are kept.
func (d *Document) Restore(s *Snapshot) {
	if s == nil {
		return
	}
	d.rows = cloneRows(s.rows)
	d.dirty = s.dirty
	d.filename = s.filename
	d.syntax = s.syntax
	d.tabStop = s.tabStop
	d.SetCursor(s.cursor)
}

type historyNode struct {
	snap       *Snapshot
	undo, redo *historyNode
}

// History is a chain of snapshots. The current node mirrors the live
// document; Undo and Redo walk the chain and return the snapshot to
// restore.
type History struct {
	cur    *historyNode
	oldest *historyNode
	saved  *historyNode // node matching the file on disk, nil once pruned
	n      int
	limit  int
}

// NewHistory seeds the chain with the document's current content. limit
// bounds the number of undo steps kept; limit <= 0 keeps every step.
func NewHistory(d *Document, limit int) *History {
	root := &historyNode{snap: d.Snapshot()}
	return &History{cur: root, oldest: root, saved: root, n: 1, limit: limit}
}

// Push records the document as the new current node. Any redo branch beyond
// the previous current node is discarded.
func (h *History) Push(d *Document) {
	node := &historyNode{snap: d.Snapshot(), undo: h.cur}

	for r := h.cur.redo; r != nil; {
		next := r.redo
		if r == h.saved {
			h.saved = nil
		}
		r.undo, r.redo, r.snap = nil, nil, nil
		h.n--
		r = next
	}
	h.cur.redo = node
	h.cur = node
	h.n++

	if h.limit > 0 && h.n > h.limit+1 {
		drop := h.oldest
		if drop == h.saved {
			h.saved = nil
		}
		h.oldest = drop.redo
		h.oldest.undo = nil
		drop.redo, drop.snap = nil, nil
		h.n--
	}
}

// Undo steps back one node and returns its snapshot. It reports false and
// stays put at the start of the chain.
func (h *History) Undo() (*Snapshot, bool) {
	if h.cur.undo == nil {
		return nil, false
	}
	h.cur = h.cur.undo
	return h.cur.snap, true
}

// Redo steps forward one node and returns its snapshot. It reports false and
// stays put at the end of the chain.
func (h *History) Redo() (*Snapshot, bool) {
	if h.cur.redo == nil {
		return nil, false
	}
	h.cur = h.cur.redo
	return h.cur.snap, true
}

func (h *History) CanUndo() bool { return h.cur.undo != nil }

func (h *History) CanRedo() bool { return h.cur.redo != nil }

// Len is the number of snapshots in the chain.
func (h *History) Len() int { return h.n }

// Current returns the snapshot at the current position.
func (h *History) Current() *Snapshot { return h.cur.snap }

// Reset drops the whole chain and reseeds it from d, used after loading a
// new file.
func (h *History) Reset(d *Document) {
	root := &historyNode{snap: d.Snapshot()}
	h.cur, h.oldest, h.saved, h.n = root, root, root, 1
}

// MarkSaved records the current node as the content last written to disk.
func (h *History) MarkSaved() { h.saved = h.cur }

// Saved reports whether the current node is the one last marked saved.
func (h *History) Saved() bool { return h.saved != nil && h.saved == h.cur }

// Sync fixes d's dirty state after restoring the current node: clean on
// the saved node, dirty anywhere else.
func (h *History) Sync(d *Document) {
	switch {
	case h.Saved():
		d.MarkSaved()
	case !d.IsDirty():
		d.dirty = 1
	}
}

// Package store persists editor session state (search history and the last
// cursor offset per file) in a bbolt database.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketSearch = "search"
	bucketCursor = "cursor"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("not found")

// Store is a handle on an open session database.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database at path, creating parent directories
// as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketSearch, bucketCursor} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Path is the file backing the database.
func (s *Store) Path() string { return s.db.Path() }

// AddQuery appends a committed search query to the history. Empty queries
// and repeats of the most recent query are skipped.
func (s *Store) AddQuery(query string) error {
	if query == "" {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSearch))
		if _, last := b.Cursor().Last(); last != nil && string(last) == query {
			return nil
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(query))
	})
}

// Queries returns up to limit queries, most recent first. limit <= 0
// returns all of them.
func (s *Store) Queries(limit int) ([]string, error) {
	var out []string
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketSearch)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}
			out = append(out, string(v))
		}
		return nil
	})
	return out, err
}

// SetCursor records the cursor byte offset for path.
func (s *Store) SetCursor(path string, offset int) error {
	if offset < 0 {
		offset = 0
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCursor)).Put([]byte(path), marshalSeq(uint64(offset)))
	})
}

// Cursor returns the cursor byte offset recorded for path, or ErrNotFound.
func (s *Store) Cursor(path string) (int, error) {
	var offset int
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketCursor)).Get([]byte(path))
		if len(v) != 8 {
			return ErrNotFound
		}
		offset = int(unmarshalSeq(v))
		return nil
	})
	return offset, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

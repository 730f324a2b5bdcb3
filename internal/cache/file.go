// Package cache implements a ttl-bounded cache backed by a single flat
// json file. The whole file is loaded once when the store is opened and
// persisted once on Flush; in between all operations are in-memory.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Entry is one cached payload with its storage time in epoch milliseconds.
// Data is opaque to the store: it is never interpreted or mutated here.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// FileStore keeps cache entries as a single json object on disk, mapping
// cache keys to entries. Stale entries are treated as absent on read but
// are never evicted from the backing file.
type FileStore struct {
	path    string
	entries map[string]Entry
	now     func() time.Time
	l       logrus.FieldLogger
}

// NewFileStore opens the cache file at path. A missing or malformed file is
// treated as an empty cache and never surfaces as an error.
func NewFileStore(path string, l logrus.FieldLogger) *FileStore {
	s := &FileStore{
		path:    path,
		entries: make(map[string]Entry),
		now:     time.Now,
		l:       l,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.WithError(err).Warn("couldn't read cache file, starting with empty cache")
		}
		return s
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		l.WithError(err).Warn("couldn't parse cache file, starting with empty cache")
		s.entries = make(map[string]Entry)
	}

	return s
}

// Get returns the payload stored under key if it is younger than ttl.
// An entry aged exactly ttl is already stale.
func (s *FileStore) Get(key string, ttl time.Duration) (json.RawMessage, bool) {
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().UnixMilli()-e.Timestamp >= ttl.Milliseconds() {
		return nil, false
	}

	return e.Data, true
}

// Put sets or overwrites key in memory. Call Flush to persist.
func (s *FileStore) Put(key string, data json.RawMessage) {
	s.entries[key] = Entry{
		Data:      data,
		Timestamp: s.now().UnixMilli(),
	}
}

// Flush persists the whole entry map back to the cache file.
func (s *FileStore) Flush() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("marshalling cache entries: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}

	return nil
}

// Len returns the number of entries currently held, stale ones included.
func (s *FileStore) Len() int {
	return len(s.entries)
}

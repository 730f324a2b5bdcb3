package mock

import (
	"encoding/json"
	"time"
)

// CacheStore mocks app.CacheStore with an in-memory map and call counters.
type CacheStore struct {
	Data map[string]json.RawMessage

	Gets int
	Puts int

	// PutKeys records every key passed to Put, in order.
	PutKeys []string
}

// Get returns data stored under key. The ttl is ignored: entries put into
// the mock are always fresh.
func (s *CacheStore) Get(key string, ttl time.Duration) (json.RawMessage, bool) {
	s.Gets++
	if s.Data == nil {
		return nil, false
	}
	data, ok := s.Data[key]

	return data, ok
}

// Put stores data under key.
func (s *CacheStore) Put(key string, data json.RawMessage) {
	s.Puts++
	s.PutKeys = append(s.PutKeys, key)
	if s.Data == nil {
		s.Data = make(map[string]json.RawMessage)
	}
	s.Data[key] = data
}

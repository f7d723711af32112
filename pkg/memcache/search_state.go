// pkg/memcache/search_state.go
package mem

import (
	"sync"
	"time"
)

// SearchHistoryEntry is one executed search, most recent first in the list.
type SearchHistoryEntry struct {
	Query     string            `json:"query"`
	Filters   map[string]string `json:"filters"`
	Timestamp string            `json:"timestamp"`
}

// PopularCounter counts how often a term was searched in a given category
// (query, cuisine or station). Seq records first-seen order for tie-breaks.
type PopularCounter struct {
	Term  string `json:"term"`
	Type  string `json:"type"`
	Count int    `json:"count"`
	Seq   int64  `json:"-"`
}

// SearchState is the per-client search side state. It lives in process memory
// only; nothing here is written to the store.
type SearchState struct {
	History []SearchHistoryEntry
	Popular map[string]*PopularCounter
	NextSeq int64
}

func NewSearchState() *SearchState {
	return &SearchState{
		Popular: make(map[string]*PopularCounter),
	}
}

// clone returns an independent copy. History entries share their filter maps,
// which are never written after creation.
func (s *SearchState) clone() *SearchState {
	out := &SearchState{
		History: append([]SearchHistoryEntry(nil), s.History...),
		Popular: make(map[string]*PopularCounter, len(s.Popular)),
		NextSeq: s.NextSeq,
	}
	for key, counter := range s.Popular {
		copied := *counter
		out.Popular[key] = &copied
	}
	return out
}

// SearchStateStore hands out snapshots, never the live state: all mutation
// goes through Update so concurrent requests on one token cannot race.
type SearchStateStore interface {
	Get(sessionToken string) *SearchState
	Update(sessionToken string, ttl time.Duration, fn func(*SearchState)) *SearchState
	Delete(sessionToken string)
}

type stateEntry struct {
	state     *SearchState
	expiresAt time.Time
}

type SearchStates struct {
	mu   sync.RWMutex
	data map[string]stateEntry
}

func NewSearchStates() *SearchStates {
	return &SearchStates{
		data: make(map[string]stateEntry),
	}
}

// Get returns a snapshot of the token's state, or a fresh one when nothing is
// stored or the entry has expired.
func (s *SearchStates) Get(sessionToken string) *SearchState {
	s.mu.RLock()
	e, ok := s.data[sessionToken]
	s.mu.RUnlock()

	if !ok {
		return NewSearchState()
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, sessionToken)
		s.mu.Unlock()
		return NewSearchState()
	}
	return e.state.clone()
}

// Update applies fn to the live state under the lock, refreshes the TTL and
// returns a snapshot of the result.
func (s *SearchStates) Update(sessionToken string, ttl time.Duration, fn func(*SearchState)) *SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionToken]
	state := e.state
	if !ok || time.Now().After(e.expiresAt) {
		state = NewSearchState()
	}

	fn(state)

	s.data[sessionToken] = stateEntry{
		state:     state,
		expiresAt: time.Now().Add(ttl),
	}
	return state.clone()
}

func (s *SearchStates) Delete(sessionToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionToken)
}

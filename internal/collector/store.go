package collector

import (
	"slices"
	"sync"
)

// Record is a video waiting to be archived.
type Record struct {
	// Path is the downloaded file in the workspace.
	Path string

	// Name is the sanitized name the file gets inside the archive.
	Name string
}

// Store maps a session (Telegram user ID) to its ordered collection of
// records. It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[int64][]Record
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64][]Record),
	}
}

// Add appends a record to the session and returns the new collection size.
func (s *Store) Add(sessionID int64, r Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = append(s.sessions[sessionID], r)
	return len(s.sessions[sessionID])
}

// Len returns the number of records collected for the session.
func (s *Store) Len(sessionID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions[sessionID])
}

// Records returns a copy of the session's records in collection order.
func (s *Store) Records(sessionID int64) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.sessions[sessionID])
}

// Take removes the session's collection and returns it.
// The session is empty afterwards whatever the caller does with the records.
func (s *Store) Take(sessionID int64) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	return records
}

// Sessions returns the number of sessions with at least one record.
func (s *Store) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

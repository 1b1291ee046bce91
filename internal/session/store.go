// Package session holds in-memory chat transcripts, scoped to one
// interactive session. Nothing here survives process restart.
package session

import "sync"

// Role tags a transcript record as a user or assistant message.
type Role string

// The two transcript roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Record is one role-tagged message in a chat session.
type Record struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Store is an append-only ordered message log for a single session.
// It is safe for concurrent use; within one session the host delivers
// inputs sequentially, but the HTTP host may not guarantee that.
type Store struct {
	mu      sync.Mutex
	records []Record
}

// NewStore returns an empty transcript store.
func NewStore() *Store {
	return &Store{}
}

// Append inserts a record at the end, preserving total ordering.
func (s *Store) Append(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// All returns the full ordered transcript as a snapshot copy; mutating the
// returned slice does not affect the store.
func (s *Store) All() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the transcript.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

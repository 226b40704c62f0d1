// SPDX-License-Identifier: MIT

package progress

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrEmptyID indicates a blank question identifier.
var ErrEmptyID = errors.New("progress: empty question id")

// Record holds the counters of one question.
type Record struct {
	Correct     int       `json:"correct"`
	Incorrect   int       `json:"incorrect"`
	LastAttempt time.Time `json:"lastAttemptTimestamp"`
}

// Attempts is Correct + Incorrect.
func (r Record) Attempts() int { return r.Correct + r.Incorrect }

// Accuracy is Correct/Attempts, or 0 before the first attempt.
func (r Record) Accuracy() float64 {
	if n := r.Attempts(); n > 0 {
		return float64(r.Correct) / float64(n)
	}

	return 0
}

// Store is the progress collaborator. Implementations must be safe for
// concurrent use.
type Store interface {
	// Record counts one attempt at id and returns the updated record.
	Record(id string, correct bool) (Record, error)
	// Get returns the record for id and whether it exists.
	Get(id string) (Record, bool)
	// Snapshot returns a copy of every record keyed by id.
	Snapshot() map[string]Record
	// Reset drops every record.
	Reset()
}

// MemoryStore is a Store backed by a map guarded by a RWMutex.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClock overrides the timestamp source (default time.Now).
// Panics on a nil clock.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("progress: WithClock: nil clock")
	}

	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore returns an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{records: make(map[string]Record), now: time.Now}
	for _, set := range opts {
		if set != nil {
			set(s)
		}
	}

	return s
}

// Record implements Store. Surrounding whitespace in id is ignored.
func (s *MemoryStore) Record(id string, correct bool) (Record, error) {
	key := strings.TrimSpace(id)
	if key == "" {
		return Record{}, fmt.Errorf("Record: %w", ErrEmptyID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.records[key]
	if correct {
		rec.Correct++
	} else {
		rec.Incorrect++
	}
	rec.LastAttempt = s.now().UTC()
	s.records[key] = rec

	return rec, nil
}

// Get implements Store.
func (s *MemoryStore) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[strings.TrimSpace(id)]

	return rec, ok
}

// Snapshot implements Store.
func (s *MemoryStore) Snapshot() map[string]Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Record, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}

	return out
}

// IDs returns the known question ids in ascending order.
func (s *MemoryStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.records))
	for k := range s.records {
		ids = append(ids, k)
	}
	sort.Strings(ids)

	return ids
}

// Reset implements Store.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	s.records = make(map[string]Record)
	s.mu.Unlock()
}

// Len returns the number of tracked questions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

var _ Store = (*MemoryStore)(nil)

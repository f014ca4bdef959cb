package databases

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rwandapathways/pathways-api/models"
)

// Simulated round trip of the in-memory store
const (
	readDelay  = 300 * time.Millisecond
	listDelay  = 500 * time.Millisecond
	writeDelay = 500 * time.Millisecond
	sendDelay  = 300 * time.Millisecond
	// sign in lookups and registrations
	authDelay = 700 * time.Millisecond
)

// MemoryStore is an in-process record store standing in for a real backend.
// Every call waits a fixed artificial delay before touching the records.
type MemoryStore struct {
	mu           sync.RWMutex
	institutions []models.Institution
	users        []models.User
	messages     []models.Message

	latencyScale float64
	newID        func() string
	now          func() time.Time
}

// NewMemoryStore returns an empty store. latencyScale multiplies the
// simulated delays; 0 disables them.
func NewMemoryStore(latencyScale float64) *MemoryStore {
	return &MemoryStore{
		latencyScale: latencyScale,
		newID:        func() string { return uuid.New().String() },
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Seed loads the sample directory data and returns the store
func (s *MemoryStore) Seed() *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.institutions = SampleInstitutions()
	s.users = SampleUsers()
	s.messages = SampleMessages()
	return s
}

// wait blocks for the scaled delay or until ctx is done
func (s *MemoryStore) wait(ctx context.Context, base time.Duration) error {
	d := time.Duration(float64(base) * s.latencyScale)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

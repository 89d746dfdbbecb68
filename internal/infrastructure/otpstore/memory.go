package otpstore

import (
	"context"
	"sync"

	"github.com/kamalkharel2002/trackship/domain"
)

// MemoryStore implements domain.OTPStore with a process-local map. Entries
// do not survive restarts and are not shared between instances; use the
// Redis store for multi-instance deployments.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*domain.OTPEntry
}

// NewMemoryStore creates a new in-process OTP store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*domain.OTPEntry)}
}

// Put implements domain.OTPStore. A concurrent Put for the same email wins
// by last write, which is fine: each issued code supersedes the previous one.
func (s *MemoryStore) Put(ctx context.Context, email string, entry *domain.OTPEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := *entry
	s.entries[email] = &e
	return nil
}

// Get implements domain.OTPStore. Expired entries are still returned; the
// caller decides between missing and expired.
func (s *MemoryStore) Get(ctx context.Context, email string) (*domain.OTPEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[email]
	if !ok {
		return nil, domain.ErrOTPNotFound
	}
	e := *entry
	return &e, nil
}

// Delete implements domain.OTPStore
func (s *MemoryStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}

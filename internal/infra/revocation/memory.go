package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is used when no Redis address is configured; revocations do not survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		revoked: map[string]time.Time{},
		now:     time.Now,
	}
}

func (s *MemoryStore) Revoke(_ context.Context, jti string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !until.After(s.now()) {
		return nil
	}
	s.revoked[jti] = until
	s.purgeLocked()
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[jti]
	if !ok {
		return false, nil
	}
	if !until.After(s.now()) {
		delete(s.revoked, jti)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) purgeLocked() {
	now := s.now()
	for jti, until := range s.revoked {
		if !until.After(now) {
			delete(s.revoked, jti)
		}
	}
}

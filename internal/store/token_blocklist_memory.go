package store

import (
	"context"
	"sync"
	"time"
)

// memoryTokenBlocklist is the in-process [TokenBlocklist] used when no
// Redis is configured. Revocations do not survive a restart and are not
// shared between replicas.
type memoryTokenBlocklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryTokenBlocklist() TokenBlocklist {
	return newMemoryTokenBlocklist(time.Now)
}

func newMemoryTokenBlocklist(now func() time.Time) *memoryTokenBlocklist {
	return &memoryTokenBlocklist{
		revoked: make(map[string]time.Time),
		now:     now,
	}
}

func (m *memoryTokenBlocklist) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.pruneLocked(now)

	if !expiresAt.After(now) {
		return nil
	}
	m.revoked[tokenID] = expiresAt
	return nil
}

func (m *memoryTokenBlocklist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiresAt, ok := m.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !expiresAt.After(m.now()) {
		delete(m.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

// pruneLocked drops entries whose tokens have expired. Callers hold mu.
func (m *memoryTokenBlocklist) pruneLocked(now time.Time) {
	for id, expiresAt := range m.revoked {
		if !expiresAt.After(now) {
			delete(m.revoked, id)
		}
	}
}

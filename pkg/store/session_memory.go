package store

import (
	"sync"

	"github.com/google/uuid"
)

// MemorySessionStore keeps token -> user ID bindings in-process.
// Tokens never expire, matching the default contract.
type MemorySessionStore struct {
	mu   sync.RWMutex
	sess map[string]string
}

// NewMemorySessionStore initializes an empty session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sess: make(map[string]string)}
}

// NewSession issues a fresh opaque token bound to the user ID.
func (s *MemorySessionStore) NewSession(userID string) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sess[token] = userID
	s.mu.Unlock()
	return token, nil
}

// GetUserIDByToken resolves a token to its user ID.
func (s *MemorySessionStore) GetUserIDByToken(token string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	uid, ok := s.sess[token]
	return uid, ok, nil
}

// DeleteSession removes a token binding. Unknown tokens are a no-op.
func (s *MemorySessionStore) DeleteSession(token string) error {
	s.mu.Lock()
	delete(s.sess, token)
	s.mu.Unlock()
	return nil
}

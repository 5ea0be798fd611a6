package auth

import (
	"sync"
	"time"
)

type codeEntry struct {
	email string
	exp   time.Time
}

// codeStore holds one-time sign-in codes in memory with a TTL. Codes are
// single-use: consume removes the entry whether or not it is still valid.
type codeStore struct {
	items map[string]codeEntry
	mu    sync.Mutex
}

func newCodeStore() *codeStore {
	return &codeStore{items: make(map[string]codeEntry)}
}

func (s *codeStore) put(code, email string, exp time.Time) {
	s.mu.Lock()
	s.items[code] = codeEntry{email: email, exp: exp}
	s.mu.Unlock()
}

// consume removes the code and returns the email it was issued for.
// Returns false for unknown or expired codes.
func (s *codeStore) consume(code string) (string, bool) {
	s.mu.Lock()
	entry, ok := s.items[code]
	if ok {
		delete(s.items, code)
	}
	s.mu.Unlock()
	if !ok {
		return "", false
	}
	if time.Now().After(entry.exp) {
		return "", false
	}
	return entry.email, true
}

// internal/domain/cart/memory_store.go
package cart

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps ledgers in process memory. Contents are lost on restart.
// Ledgers idle for longer than the TTL are dropped, matching the Redis
// store's key expiry; empty ledgers are never kept.
type MemoryStore struct {
	mu        sync.Mutex
	ledgers   map[string]*Ledger
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryStore creates an empty in-memory store. A ttl of zero or less
// keeps ledgers until they are emptied or deleted.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ledgers: make(map[string]*Ledger),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Load returns a copy of the ledger for key
func (s *MemoryStore) Load(_ context.Context, key string) (*Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(key).clone(), nil
}

// Update runs fn on a copy of the ledger under the store lock and keeps the
// copy only when fn succeeds
func (s *MemoryStore) Update(_ context.Context, key string, fn func(*Ledger) error) (*Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()

	current := s.get(key)
	next := current.clone()
	if err := fn(next); err != nil {
		return current.clone(), err
	}

	next.UpdatedAt = s.now().UTC()
	if len(next.Lines) == 0 {
		delete(s.ledgers, key)
	} else {
		s.ledgers[key] = next
	}
	return next.clone(), nil
}

// Delete removes the ledger for key
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ledgers, key)
	return nil
}

// Len reports how many ledgers are held
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ledgers)
}

// get must be called with mu held
func (s *MemoryStore) get(key string) *Ledger {
	if l, ok := s.ledgers[key]; ok {
		if !s.expired(l) {
			return l
		}
		delete(s.ledgers, key)
	}
	return NewLedger(key)
}

// sweep drops expired ledgers at most once per TTL; must be called with mu held
func (s *MemoryStore) sweep() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	if now.Sub(s.lastSweep) < s.ttl {
		return
	}
	s.lastSweep = now

	for key, l := range s.ledgers {
		if s.expired(l) {
			delete(s.ledgers, key)
		}
	}
}

func (s *MemoryStore) expired(l *Ledger) bool {
	return s.ttl > 0 && s.now().Sub(l.UpdatedAt) > s.ttl
}

func (l *Ledger) clone() *Ledger {
	lines := make([]CartLine, len(l.Lines))
	copy(lines, l.Lines)

	return &Ledger{
		Key:       l.Key,
		Lines:     lines,
		UpdatedAt: l.UpdatedAt,
	}
}

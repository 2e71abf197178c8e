// Package memory is the in-process store backing unit tests.
package memory

import (
	"sync"

	"pawledger/internal/domain/ledger"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

type Store struct {
	mu           sync.RWMutex
	sessions     map[string]session.State
	transactions map[string][]ledger.Transaction
	events       map[string][]pet.DomainEvent
}

func NewStore() *Store {
	return &Store{
		sessions:     make(map[string]session.State),
		transactions: make(map[string][]ledger.Transaction),
		events:       make(map[string][]pet.DomainEvent),
	}
}

func (s *Store) SeedSession(state session.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.SessionID] = state
}

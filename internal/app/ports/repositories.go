package ports

import (
	"context"

	"pawledger/internal/domain/ledger"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

type SessionRepository interface {
	GetBySessionID(ctx context.Context, sessionID string) (session.State, error)
	// SaveWithVersion persists the state iff the stored version still equals
	// expectedVersion; expectedVersion 0 means create.
	SaveWithVersion(ctx context.Context, state session.State, expectedVersion int64) error
	Delete(ctx context.Context, sessionID string) error
}

type TransactionRepository interface {
	// Append stores the entry and evicts the oldest beyond the ledger cap.
	Append(ctx context.Context, sessionID string, tx ledger.Transaction) error
	ListBySessionID(ctx context.Context, sessionID string, limit int) ([]ledger.Transaction, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type EventRepository interface {
	Append(ctx context.Context, sessionID string, events []pet.DomainEvent) error
	ListBySessionID(ctx context.Context, sessionID string, limit int) ([]pet.DomainEvent, error)
}

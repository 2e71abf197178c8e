package memory

import (
	"context"

	"pawledger/internal/domain/pet"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, sessionID string, events []pet.DomainEvent) error {
	r.store.events[sessionID] = append(r.store.events[sessionID], events...)
	return nil
}

// ListBySessionID returns newest-first.
func (r EventRepo) ListBySessionID(_ context.Context, sessionID string, limit int) ([]pet.DomainEvent, error) {
	all := r.store.events[sessionID]
	out := make([]pet.DomainEvent, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

package memory

import (
	"context"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/session"
)

type SessionRepo struct {
	store *Store
}

func NewSessionRepo(store *Store) SessionRepo {
	return SessionRepo{store: store}
}

func (r SessionRepo) GetBySessionID(_ context.Context, sessionID string) (session.State, error) {
	state, ok := r.store.sessions[sessionID]
	if !ok {
		return session.State{}, ports.ErrNotFound
	}
	return state, nil
}

func (r SessionRepo) SaveWithVersion(_ context.Context, state session.State, expectedVersion int64) error {
	current, ok := r.store.sessions[state.SessionID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.sessions[state.SessionID] = state
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.sessions[state.SessionID] = state
	return nil
}

func (r SessionRepo) Delete(_ context.Context, sessionID string) error {
	delete(r.store.sessions, sessionID)
	delete(r.store.transactions, sessionID)
	return nil
}

package memory

import (
	"context"

	"pawledger/internal/domain/ledger"
)

type TransactionRepo struct {
	store *Store
}

func NewTransactionRepo(store *Store) TransactionRepo {
	return TransactionRepo{store: store}
}

func (r TransactionRepo) Append(_ context.Context, sessionID string, tx ledger.Transaction) error {
	r.store.transactions[sessionID] = ledger.Append(r.store.transactions[sessionID], tx)
	return nil
}

func (r TransactionRepo) ListBySessionID(_ context.Context, sessionID string, limit int) ([]ledger.Transaction, error) {
	entries := r.store.transactions[sessionID]
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]ledger.Transaction, len(entries))
	copy(out, entries)
	return out, nil
}

func (r TransactionRepo) DeleteBySessionID(_ context.Context, sessionID string) error {
	delete(r.store.transactions, sessionID)
	return nil
}

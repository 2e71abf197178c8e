package sqliterepo

import (
	"context"
	"database/sql"
	"fmt"

	"pawledger/internal/domain/ledger"
)

type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) TransactionRepo {
	return TransactionRepo{db: db}
}

func (r TransactionRepo) Append(ctx context.Context, sessionID string, tx ledger.Transaction) error {
	q := fromCtx(ctx, r.db)
	_, err := q.ExecContext(ctx,
		`INSERT INTO transactions (session_id, tx_id, description, amount, timestamp) VALUES (?, ?, ?, ?, ?)`,
		sessionID, tx.ID, tx.Description, tx.Amount, tx.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	_, err = q.ExecContext(ctx,
		`DELETE FROM transactions WHERE session_id = ? AND id NOT IN (
			SELECT id FROM transactions WHERE session_id = ? ORDER BY timestamp DESC, id DESC LIMIT ?
		)`,
		sessionID, sessionID, ledger.MaxEntries,
	)
	if err != nil {
		return fmt.Errorf("trim ledger: %w", err)
	}
	return nil
}

func (r TransactionRepo) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]ledger.Transaction, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := fromCtx(ctx, r.db).QueryContext(ctx,
		`SELECT tx_id, description, amount, timestamp FROM transactions
		 WHERE session_id = ? ORDER BY timestamp DESC, id DESC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.Transaction
	for rows.Next() {
		var tx ledger.Transaction
		if err := rows.Scan(&tx.ID, &tx.Description, &tx.Amount, &tx.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (r TransactionRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	_, err := fromCtx(ctx, r.db).ExecContext(ctx,
		`DELETE FROM transactions WHERE session_id = ?`, sessionID)
	return err
}

package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/session"
)

// SessionRepo stores the whole aggregate as one JSON document per session.
// The local store has exactly one reader and writer, so queryable columns
// buy nothing here.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) SessionRepo {
	return SessionRepo{db: db}
}

func (r SessionRepo) GetBySessionID(ctx context.Context, sessionID string) (session.State, error) {
	var stateJSON string
	err := fromCtx(ctx, r.db).QueryRowContext(ctx,
		`SELECT state_json FROM pet_sessions WHERE session_id = ?`, sessionID,
	).Scan(&stateJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return session.State{}, ports.ErrNotFound
	}
	if err != nil {
		return session.State{}, fmt.Errorf("load session: %w", err)
	}
	var state session.State
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return session.State{}, fmt.Errorf("decode session: %w", err)
	}
	return state, nil
}

func (r SessionRepo) SaveWithVersion(ctx context.Context, state session.State, expectedVersion int64) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	q := fromCtx(ctx, r.db)

	if expectedVersion == 0 {
		_, err := q.ExecContext(ctx,
			`INSERT INTO pet_sessions (session_id, state_json, version, updated_at) VALUES (?, ?, ?, ?)`,
			state.SessionID, string(b), state.Version, state.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
		return nil
	}

	res, err := q.ExecContext(ctx,
		`UPDATE pet_sessions SET state_json = ?, version = ?, updated_at = ? WHERE session_id = ? AND version = ?`,
		string(b), state.Version, state.UpdatedAt, state.SessionID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r SessionRepo) Delete(ctx context.Context, sessionID string) error {
	_, err := fromCtx(ctx, r.db).ExecContext(ctx,
		`DELETE FROM pet_sessions WHERE session_id = ?`, sessionID)
	return err
}

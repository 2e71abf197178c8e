package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pawledger/internal/domain/pet"

	"github.com/google/uuid"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, sessionID string, events []pet.DomainEvent) error {
	q := fromCtx(ctx, r.db)
	for _, e := range events {
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		_, err = q.ExecContext(ctx,
			`INSERT INTO domain_events (id, session_id, type, occurred_at, payload) VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), sessionID, e.Type, e.OccurredAt, string(payload),
		)
		if err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}
	return nil
}

func (r EventRepo) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]pet.DomainEvent, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := fromCtx(ctx, r.db).QueryContext(ctx,
		`SELECT type, occurred_at, payload FROM domain_events
		 WHERE session_id = ? ORDER BY occurred_at DESC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pet.DomainEvent
	for rows.Next() {
		var e pet.DomainEvent
		var payload string
		if err := rows.Scan(&e.Type, &e.OccurredAt, &payload); err != nil {
			return nil, err
		}
		if payload != "" {
			_ = json.Unmarshal([]byte(payload), &e.Payload)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

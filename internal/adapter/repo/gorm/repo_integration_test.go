package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/ledger"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("PAWLEDGER_DB_DSN")
	if dsn == "" {
		t.Skip("PAWLEDGER_DB_DSN is required for integration test")
	}
	return dsn
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	sessionID := "it-session-roundtrip"
	_ = db.Exec("DELETE FROM pet_sessions WHERE session_id = ?", sessionID).Error

	now := time.Now().UTC().Truncate(time.Millisecond)
	state, err := session.New(sessionID, "Mochi", pet.SpeciesCat, now)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	state.Pet.Counters.Clean = 3
	state.Pet.Unlocked = []pet.AchievementID{pet.AchievementFirstWeek}
	state.Pet.CompletedToday = map[pet.ActionID]bool{pet.ActionClean: true}
	state = state.WithChoreCooldown("dishes", now.Add(30*time.Second))

	repo := NewSessionRepo(db)
	if err := repo.SaveWithVersion(ctx, state, 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Pet.Name != "Mochi" || got.Pet.Species != pet.SpeciesCat {
		t.Fatalf("identity mismatch: %+v", got.Pet)
	}
	if got.Pet.Counters.Clean != 3 {
		t.Fatalf("expected clean counter 3, got %d", got.Pet.Counters.Clean)
	}
	if !got.Pet.HasUnlocked(pet.AchievementFirstWeek) {
		t.Fatalf("expected unlocked set round-tripped, got %v", got.Pet.Unlocked)
	}
	if !got.Pet.ChoreDoneToday(pet.ActionClean) {
		t.Fatalf("expected completed set round-tripped")
	}
	if got.ChoreReadyAt("dishes").IsZero() {
		t.Fatalf("expected chore cooldown round-tripped")
	}
	if !got.Pet.CreatedAt.Equal(state.Pet.CreatedAt) {
		t.Fatalf("expected createdAt millisecond precision, got %v want %v", got.Pet.CreatedAt, state.Pet.CreatedAt)
	}
}

func TestSessionRepo_VersionConflict(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	sessionID := "it-session-conflict"
	_ = db.Exec("DELETE FROM pet_sessions WHERE session_id = ?", sessionID).Error

	now := time.Now().UTC()
	state, err := session.New(sessionID, "Mochi", pet.SpeciesDog, now)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	repo := NewSessionRepo(db)
	if err := repo.SaveWithVersion(ctx, state, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	next := state
	next.Money = 90
	next.Version = 2
	if err := repo.SaveWithVersion(ctx, next, 1); err != nil {
		t.Fatalf("update: %v", err)
	}

	stale := state
	stale.Money = 50
	stale.Version = 2
	if err := repo.SaveWithVersion(ctx, stale, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}

	got, err := repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Money != 90 {
		t.Fatalf("expected the first update to win, got %v", got.Money)
	}
}

func TestTransactionRepo_CapTrimsOldest(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	sessionID := "it-tx-cap"
	_ = db.Exec("DELETE FROM transactions WHERE session_id = ?", sessionID).Error

	repo := NewTransactionRepo(db)
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < ledger.MaxEntries+5; i++ {
		entry := ledger.NewTransaction("feed", -5, base.Add(time.Duration(i)*time.Second))
		if err := repo.Append(ctx, sessionID, entry); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.ListBySessionID(ctx, sessionID, ledger.MaxEntries+10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != ledger.MaxEntries {
		t.Fatalf("expected cap at %d retained rows, got %d", ledger.MaxEntries, len(got))
	}
	if got[0].Timestamp.Before(got[len(got)-1].Timestamp) {
		t.Fatalf("expected newest first ordering")
	}
}

func TestEventRepo_AppendAndList(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	sessionID := "it-events"
	_ = db.Exec("DELETE FROM domain_events WHERE session_id = ?", sessionID).Error

	repo := NewEventRepo(db)
	now := time.Now().UTC()
	events := []pet.DomainEvent{
		{Type: "pet_adopted", OccurredAt: now, Payload: map[string]any{"name": "Mochi"}},
		{Type: "action_applied", OccurredAt: now.Add(time.Second), Payload: map[string]any{"action": "feed"}},
	}
	if err := repo.Append(ctx, sessionID, events); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.ListBySessionID(ctx, sessionID, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Type != "action_applied" {
		t.Fatalf("expected newest first, got %s", got[0].Type)
	}
	if got[0].Payload["action"] != "feed" {
		t.Fatalf("expected payload round-tripped, got %v", got[0].Payload)
	}
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	sessionID := "it-tx-rollback"
	_ = db.Exec("DELETE FROM pet_sessions WHERE session_id = ?", sessionID).Error

	repo := NewSessionRepo(db)
	manager := NewTxManager(db)

	state, err := session.New(sessionID, "Mochi", pet.SpeciesHamster, time.Now().UTC())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	boom := errors.New("boom")
	err = manager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := repo.SaveWithVersion(txCtx, state, 0); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the inner error surfaced, got %v", err)
	}

	if _, err := repo.GetBySessionID(ctx, sessionID); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected the create rolled back, got %v", err)
	}
}

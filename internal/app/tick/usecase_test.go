package tick

import (
	"context"
	"testing"
	"time"

	"pawledger/internal/adapter/repo/memory"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

func seedSession(t *testing.T, store *memory.Store, createdAt time.Time) session.State {
	t.Helper()
	state, err := session.New("s-1", "Mochi", pet.SpeciesCat, createdAt)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	store.SeedSession(state)
	return state
}

func newUseCase(store *memory.Store, now time.Time) UseCase {
	return UseCase{
		TxManager:   memory.NewTxManager(store),
		SessionRepo: memory.NewSessionRepo(store),
		EventRepo:   memory.NewEventRepo(store),
		Now:         func() time.Time { return now },
	}
}

func TestExecute_NoChangeUnderOneMinute(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	seedSession(t, store, createdAt)

	uc := newUseCase(store, createdAt.Add(30*time.Second))
	resp, err := uc.Execute(context.Background(), Request{SessionID: "s-1"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if resp.Changed {
		t.Fatalf("expected no change under a minute")
	}
	if resp.State.Version != 1 {
		t.Fatalf("expected version untouched, got %d", resp.State.Version)
	}
}

func TestExecute_PersistsDecay(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	seedSession(t, store, createdAt)

	now := createdAt.Add(10 * time.Minute)
	uc := newUseCase(store, now)
	resp, err := uc.Execute(context.Background(), Request{SessionID: "s-1"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !resp.Changed {
		t.Fatalf("expected change after 10 minutes")
	}
	if resp.State.Pet.Needs.Hunger != 75 {
		t.Fatalf("expected hunger 75, got %v", resp.State.Pet.Needs.Hunger)
	}

	stored, err := memory.NewSessionRepo(store).GetBySessionID(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if stored.Pet.Needs.Hunger != 75 {
		t.Fatalf("expected persisted hunger 75, got %v", stored.Pet.Needs.Hunger)
	}
	if !stored.LastUpdate.Equal(now) {
		t.Fatalf("expected decay anchor advanced, got %v", stored.LastUpdate)
	}
	if stored.Version != 2 {
		t.Fatalf("expected version 2, got %d", stored.Version)
	}
}

func TestExecute_DailyResetEmitsEventAndEvaluatesRules(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	state := seedSession(t, store, createdAt)
	state.Pet.CompletedToday = map[pet.ActionID]bool{pet.ActionClean: true}
	// 7 game days are 840 real seconds; an anchor this fresh keeps decay mild.
	state.LastUpdate = createdAt.Add(839 * time.Second)
	store.SeedSession(state)

	now := createdAt.Add(840 * time.Second)
	uc := newUseCase(store, now)
	resp, err := uc.Execute(context.Background(), Request{SessionID: "s-1"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !resp.Changed {
		t.Fatalf("expected daily reset to count as a change")
	}
	if len(resp.State.Pet.CompletedToday) != 0 {
		t.Fatalf("expected chore set cleared, got %v", resp.State.Pet.CompletedToday)
	}
	if resp.State.Pet.LastGameDay != 8 {
		t.Fatalf("expected last game day 8, got %d", resp.State.Pet.LastGameDay)
	}

	foundReset := false
	foundFirstWeek := false
	for _, e := range resp.Events {
		switch e.Type {
		case "daily_reset":
			foundReset = true
		case "achievement_unlocked":
			if e.Payload["id"] == "first_week" {
				foundFirstWeek = true
			}
		}
	}
	if !foundReset {
		t.Fatalf("expected daily_reset event, got %v", resp.Events)
	}
	if !foundFirstWeek {
		t.Fatalf("expected first_week unlock on the day tick, got %v", resp.Events)
	}
}

func TestExecute_DetectsDeath(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	state := seedSession(t, store, createdAt)
	state.Pet.Needs.Health = 0.5
	store.SeedSession(state)

	now := createdAt.Add(30 * time.Minute)
	uc := newUseCase(store, now)
	resp, err := uc.Execute(context.Background(), Request{SessionID: "s-1"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if resp.ResultCode != pet.ResultDead {
		t.Fatalf("expected DEAD, got %s", resp.ResultCode)
	}
	foundDeath := false
	for _, e := range resp.Events {
		if e.Type == "pet_died" {
			foundDeath = true
		}
	}
	if !foundDeath {
		t.Fatalf("expected pet_died event, got %v", resp.Events)
	}
}

func TestExecute_DeadPetIsTerminal(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	state := seedSession(t, store, createdAt)
	state.Pet.Needs.Health = 0
	store.SeedSession(state)

	uc := newUseCase(store, createdAt.Add(time.Hour))
	resp, err := uc.Execute(context.Background(), Request{SessionID: "s-1"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if resp.ResultCode != pet.ResultDead {
		t.Fatalf("expected DEAD, got %s", resp.ResultCode)
	}
	if resp.Changed {
		t.Fatalf("expected no further processing on a dead pet")
	}
	if resp.State.Version != 1 {
		t.Fatalf("expected no save for a dead pet, got version %d", resp.State.Version)
	}
}

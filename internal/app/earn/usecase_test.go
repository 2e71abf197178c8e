package earn

import (
	"context"
	"errors"
	"testing"
	"time"

	"pawledger/internal/adapter/repo/memory"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

func newFixture(t *testing.T, now time.Time) (*memory.Store, UseCase) {
	t.Helper()
	store := memory.NewStore()
	state, err := session.New("s-1", "Mochi", pet.SpeciesCat, now)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	store.SeedSession(state)

	return store, UseCase{
		TxManager:   memory.NewTxManager(store),
		SessionRepo: memory.NewSessionRepo(store),
		TxRepo:      memory.NewTransactionRepo(store),
		EventRepo:   memory.NewEventRepo(store),
		Now:         func() time.Time { return now },
	}
}

func TestExecute_ChoreRewardsMoney(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store, uc := newFixture(t, now)

	resp, err := uc.Execute(context.Background(), Request{SessionID: "s-1", ChoreID: "dishes"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if resp.Reward != 10 {
		t.Fatalf("expected reward 10, got %v", resp.Reward)
	}
	if resp.State.Money != 110 {
		t.Fatalf("expected $110, got %v", resp.State.Money)
	}
	if resp.State.LifetimeEarned != 10 {
		t.Fatalf("expected lifetime earned 10, got %v", resp.State.LifetimeEarned)
	}

	txs, _ := memory.NewTransactionRepo(store).ListBySessionID(context.Background(), "s-1", 10)
	if len(txs) != 1 || txs[0].Amount != 10 || txs[0].Description != "Wash Dishes" {
		t.Fatalf("expected one income transaction, got %+v", txs)
	}

	events, _ := memory.NewEventRepo(store).ListBySessionID(context.Background(), "s-1", 10)
	if len(events) == 0 || events[0].Type != "money_earned" {
		t.Fatalf("expected money_earned event, got %+v", events)
	}
}

func TestExecute_CooldownBlocksRepeat(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, uc := newFixture(t, now)

	if _, err := uc.Execute(context.Background(), Request{SessionID: "s-1", ChoreID: "vacuum"}); err != nil {
		t.Fatalf("first vacuum error: %v", err)
	}
	_, err := uc.Execute(context.Background(), Request{SessionID: "s-1", ChoreID: "vacuum"})
	if !errors.Is(err, ErrCooldownActive) {
		t.Fatalf("expected ErrCooldownActive, got %v", err)
	}
}

func TestExecute_CooldownIsPerChore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, uc := newFixture(t, now)

	if _, err := uc.Execute(context.Background(), Request{SessionID: "s-1", ChoreID: "vacuum"}); err != nil {
		t.Fatalf("vacuum error: %v", err)
	}
	if _, err := uc.Execute(context.Background(), Request{SessionID: "s-1", ChoreID: "laundry"}); err != nil {
		t.Fatalf("expected a different chore to stay available, got %v", err)
	}
}

func TestExecute_CooldownExpires(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	state, err := session.New("s-1", "Mochi", pet.SpeciesCat, start)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	store.SeedSession(state)

	now := start
	uc := UseCase{
		TxManager:   memory.NewTxManager(store),
		SessionRepo: memory.NewSessionRepo(store),
		TxRepo:      memory.NewTransactionRepo(store),
		EventRepo:   memory.NewEventRepo(store),
		Now:         func() time.Time { return now },
	}

	if _, err := uc.Execute(context.Background(), Request{SessionID: "s-1", ChoreID: "yard"}); err != nil {
		t.Fatalf("first yard error: %v", err)
	}

	now = start.Add(session.ChoreCooldown)
	resp, err := uc.Execute(context.Background(), Request{SessionID: "s-1", ChoreID: "yard"})
	if err != nil {
		t.Fatalf("expected chore available at the cooldown boundary, got %v", err)
	}
	if resp.State.Money != 150 {
		t.Fatalf("expected $150 after two yard rewards, got %v", resp.State.Money)
	}
}

func TestExecute_UnknownChore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, uc := newFixture(t, now)

	_, err := uc.Execute(context.Background(), Request{SessionID: "s-1", ChoreID: "moonwalk"})
	if !errors.Is(err, ErrUnknownChore) {
		t.Fatalf("expected ErrUnknownChore, got %v", err)
	}
}

func TestExecute_DeadPetCannotEarn(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store, uc := newFixture(t, now)

	dead, _ := memory.NewSessionRepo(store).GetBySessionID(context.Background(), "s-1")
	dead.Pet.Needs.Health = 0
	store.SeedSession(dead)

	_, err := uc.Execute(context.Background(), Request{SessionID: "s-1", ChoreID: "dishes"})
	if !errors.Is(err, ErrSessionTerminated) {
		t.Fatalf("expected ErrSessionTerminated, got %v", err)
	}
}

func TestExecute_EarningsUnlockFinancialMaster(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store, uc := newFixture(t, now)

	rich, _ := memory.NewSessionRepo(store).GetBySessionID(context.Background(), "s-1")
	rich.LifetimeEarned = 490
	store.SeedSession(rich)

	resp, err := uc.Execute(context.Background(), Request{SessionID: "s-1", ChoreID: "laundry"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	found := false
	for _, a := range resp.Unlocked {
		if a.ID == pet.AchievementFinancialMaster {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected financial_master at $502 lifetime, got %v", resp.Unlocked)
	}
}

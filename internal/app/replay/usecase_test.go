package replay

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"pawledger/internal/adapter/repo/memory"
	"pawledger/internal/domain/pet"
)

func seedEvents(t *testing.T, store *memory.Store, n int) {
	t.Helper()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := memory.NewEventRepo(store)
	for i := 0; i < n; i++ {
		err := repo.Append(context.Background(), "s-1", []pet.DomainEvent{{
			Type:       "action_applied",
			OccurredAt: at.Add(time.Duration(i) * time.Second),
			Payload:    map[string]any{"seq": fmt.Sprintf("%d", i)},
		}})
		if err != nil {
			t.Fatalf("append event: %v", err)
		}
	}
}

func TestExecute_DefaultLimit(t *testing.T) {
	store := memory.NewStore()
	seedEvents(t, store, 60)

	uc := UseCase{Events: memory.NewEventRepo(store)}
	resp, err := uc.Execute(context.Background(), Request{SessionID: "s-1"})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if len(resp.Events) != defaultLimit {
		t.Fatalf("expected %d events by default, got %d", defaultLimit, len(resp.Events))
	}
	if resp.Events[0].Payload["seq"] != "59" {
		t.Fatalf("expected newest event first, got %v", resp.Events[0].Payload)
	}
}

func TestExecute_CapsLimit(t *testing.T) {
	store := memory.NewStore()
	seedEvents(t, store, 5)

	uc := UseCase{Events: memory.NewEventRepo(store)}
	resp, err := uc.Execute(context.Background(), Request{SessionID: "s-1", Limit: 10000})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if len(resp.Events) != 5 {
		t.Fatalf("expected all 5 events, got %d", len(resp.Events))
	}
}

func TestExecute_EmptySessionID(t *testing.T) {
	uc := UseCase{Events: memory.NewEventRepo(memory.NewStore())}

	_, err := uc.Execute(context.Background(), Request{SessionID: ""})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

package ledger

import (
	"testing"
	"time"
)

func TestAppend_NewestFirst(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := Append(nil, NewTransaction("feed", -5, at))
	entries = Append(entries, NewTransaction("dishes", 10, at.Add(time.Second)))

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Description != "dishes" {
		t.Fatalf("expected newest entry first, got %s", entries[0].Description)
	}
}

func TestAppend_EvictsOldestBeyondCap(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var entries []Transaction
	for i := 0; i < MaxEntries+10; i++ {
		entries = Append(entries, NewTransaction("feed", -5, at.Add(time.Duration(i)*time.Second)))
	}

	if len(entries) != MaxEntries {
		t.Fatalf("expected cap at %d entries, got %d", MaxEntries, len(entries))
	}
	// The newest retained entry is the last appended one.
	want := at.Add(time.Duration(MaxEntries+9) * time.Second)
	if !entries[0].Timestamp.Equal(want) {
		t.Fatalf("expected newest timestamp %v, got %v", want, entries[0].Timestamp)
	}
	// The oldest retained entry has everything before it evicted.
	oldest := entries[len(entries)-1].Timestamp
	if oldest.Before(at.Add(10 * time.Second)) {
		t.Fatalf("expected the 10 oldest entries evicted, oldest retained is %v", oldest)
	}
}

func TestAppend_DoesNotMutateInput(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	original := Append(nil, NewTransaction("feed", -5, at))
	_ = Append(original, NewTransaction("treat", -8, at.Add(time.Second)))

	if len(original) != 1 || original[0].Description != "feed" {
		t.Fatalf("input slice mutated: %+v", original)
	}
}

func TestSummarize(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []Transaction{
		NewTransaction("feed", -5, at),
		NewTransaction("feed", -5, at),
		NewTransaction("vet", -25, at),
		NewTransaction("Wash Dishes", 10, at),
		NewTransaction("Yard Work", 25, at),
	}

	sum := Summarize(entries)
	if sum.TotalSpent != 35 {
		t.Fatalf("expected total spent 35, got %v", sum.TotalSpent)
	}
	if sum.TotalEarned != 35 {
		t.Fatalf("expected total earned 35, got %v", sum.TotalEarned)
	}
	if sum.ExpenseByCategory["feed"] != 10 {
		t.Fatalf("expected feed expenses 10, got %v", sum.ExpenseByCategory["feed"])
	}
	if sum.IncomeByCategory["Yard Work"] != 25 {
		t.Fatalf("expected yard income 25, got %v", sum.IncomeByCategory["Yard Work"])
	}
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)
	if sum.TotalSpent != 0 || sum.TotalEarned != 0 {
		t.Fatalf("expected zero totals, got %+v", sum)
	}
	if sum.ExpenseByCategory == nil || sum.IncomeByCategory == nil {
		t.Fatalf("expected initialized category maps")
	}
}

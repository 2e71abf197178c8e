// Package ledger models the session's append-only transaction history.
package ledger

import (
	"strconv"
	"time"
)

// MaxEntries caps the retained history; the oldest entries are evicted first.
const MaxEntries = 50

// Transaction is one ledger entry. Negative amounts are expenses, positive
// amounts income. Description doubles as the category key for analytics.
type Transaction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewTransaction builds an entry with a time-derived id.
func NewTransaction(description string, amount float64, at time.Time) Transaction {
	return Transaction{
		ID:          strconv.FormatInt(at.UnixMilli(), 10),
		Description: description,
		Amount:      amount,
		Timestamp:   at,
	}
}

// Append prepends the entry (newest first) and trims to MaxEntries.
func Append(entries []Transaction, tx Transaction) []Transaction {
	out := make([]Transaction, 0, len(entries)+1)
	out = append(out, tx)
	out = append(out, entries...)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

// Summary aggregates the retained history for the analytics view.
type Summary struct {
	TotalSpent        float64            `json:"total_spent"`
	TotalEarned       float64            `json:"total_earned"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
	IncomeByCategory  map[string]float64 `json:"income_by_category"`
}

func Summarize(entries []Transaction) Summary {
	out := Summary{
		ExpenseByCategory: map[string]float64{},
		IncomeByCategory:  map[string]float64{},
	}
	for _, tx := range entries {
		if tx.Amount < 0 {
			out.TotalSpent += -tx.Amount
			out.ExpenseByCategory[tx.Description] += -tx.Amount
		} else {
			out.TotalEarned += tx.Amount
			out.IncomeByCategory[tx.Description] += tx.Amount
		}
	}
	return out
}

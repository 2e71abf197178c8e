// Package ledgerview serves the financial history and its analytics rollup.
package ledgerview

import (
	"context"
	"errors"
	"strings"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/ledger"
)

var ErrInvalidRequest = errors.New("invalid ledger request")

type Request struct {
	SessionID string
}

type Response struct {
	Balance        float64              `json:"balance"`
	LifetimeEarned float64              `json:"lifetime_earned"`
	Transactions   []ledger.Transaction `json:"transactions"`
	Summary        ledger.Summary       `json:"summary"`
}

type UseCase struct {
	SessionRepo ports.SessionRepository
	TxRepo      ports.TransactionRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.SessionRepo.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		return Response{}, err
	}
	entries, err := u.TxRepo.ListBySessionID(ctx, req.SessionID, ledger.MaxEntries)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Balance:        state.Money,
		LifetimeEarned: state.LifetimeEarned,
		Transactions:   entries,
		Summary:        ledger.Summarize(entries),
	}, nil
}

// Package sessionmgmt covers session lifecycle: adopting a pet and resetting
// after a death (or a change of heart).
package sessionmgmt

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

var (
	ErrInvalidRequest = errors.New("invalid session request")
	ErrAlreadyExists  = errors.New("session already exists")
)

type CreateRequest struct {
	SessionID string
	Name      string
	Species   pet.Species
}

type CreateResponse struct {
	State session.State `json:"state"`
}

type ResetRequest struct {
	SessionID string
}

type UseCase struct {
	TxManager   ports.TxManager
	SessionRepo ports.SessionRepository
	TxRepo      ports.TransactionRepository
	EventRepo   ports.EventRepository
	Now         func() time.Time
}

func (u UseCase) Create(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	req.SessionID = strings.TrimSpace(req.SessionID)
	if req.SessionID == "" {
		return CreateResponse{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	state, err := session.New(req.SessionID, req.Name, req.Species, now)
	if err != nil {
		return CreateResponse{}, err
	}

	var out CreateResponse
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.SessionRepo.GetBySessionID(txCtx, req.SessionID); err == nil {
			return ErrAlreadyExists
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		if err := u.SessionRepo.SaveWithVersion(txCtx, state, 0); err != nil {
			return err
		}
		events := []pet.DomainEvent{{
			Type:       "pet_adopted",
			OccurredAt: now,
			Payload:    map[string]any{"name": state.Pet.Name, "species": string(state.Pet.Species)},
		}}
		if err := u.EventRepo.Append(txCtx, req.SessionID, events); err != nil {
			return err
		}
		out = CreateResponse{State: state}
		return nil
	})
	if err != nil {
		return CreateResponse{}, err
	}
	return out, nil
}

// Reset destroys the session and its ledger. Domain events stay: the event
// log is append-only history, not session state.
func (u UseCase) Reset(ctx context.Context, req ResetRequest) error {
	req.SessionID = strings.TrimSpace(req.SessionID)
	if req.SessionID == "" {
		return ErrInvalidRequest
	}
	return u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.TxRepo.DeleteBySessionID(txCtx, req.SessionID); err != nil {
			return err
		}
		return u.SessionRepo.Delete(txCtx, req.SessionID)
	})
}

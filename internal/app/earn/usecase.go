// Package earn implements the chore mini-game: a fixed reward behind a
// per-chore not-before gate. It touches money and the ledger, never the pet's
// needs.
package earn

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/ledger"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

var (
	ErrInvalidRequest    = errors.New("invalid earn request")
	ErrUnknownChore      = errors.New("unknown chore")
	ErrCooldownActive    = errors.New("chore cooldown active")
	ErrSessionTerminated = errors.New("session terminated")
)

type Request struct {
	SessionID string
	ChoreID   string
}

type Response struct {
	State    session.State     `json:"state"`
	Reward   float64           `json:"reward"`
	Events   []pet.DomainEvent `json:"events"`
	Unlocked []pet.Achievement `json:"unlocked,omitempty"`
}

type UseCase struct {
	TxManager   ports.TxManager
	SessionRepo ports.SessionRepository
	TxRepo      ports.TransactionRepository
	EventRepo   ports.EventRepository
	Now         func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.ChoreID = strings.TrimSpace(req.ChoreID)
	if req.SessionID == "" {
		return Response{}, ErrInvalidRequest
	}
	chore, ok := session.ChoreByID(req.ChoreID)
	if !ok {
		return Response{}, ErrUnknownChore
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.SessionRepo.GetBySessionID(txCtx, req.SessionID)
		if err != nil {
			return err
		}
		now := nowFn()

		if state.Pet.Dead() {
			return ErrSessionTerminated
		}
		if notBefore := state.ChoreReadyAt(req.ChoreID); now.Before(notBefore) {
			return ErrCooldownActive
		}

		next := state.WithChoreCooldown(req.ChoreID, now.Add(session.ChoreCooldown))
		next.Money += chore.Reward
		next.LifetimeEarned += chore.Reward
		next.UpdatedAt = now
		next.Version = state.Version + 1

		entry := ledger.NewTransaction(chore.Label, chore.Reward, now)
		if err := u.TxRepo.Append(txCtx, req.SessionID, entry); err != nil {
			return err
		}

		events := []pet.DomainEvent{{
			Type:       "money_earned",
			OccurredAt: now,
			Payload:    map[string]any{"chore": chore.ID, "reward": chore.Reward},
		}}

		var unlocked []pet.Achievement
		var unlockEvents []pet.DomainEvent
		next.Pet, unlocked, unlockEvents = pet.EvaluateAchievements(pet.AchievementInput{
			Pet:            next.Pet,
			GameDay:        pet.GameDayAt(next.Pet.CreatedAt, now),
			Money:          next.Money,
			LifetimeEarned: next.LifetimeEarned,
		}, now)
		events = append(events, unlockEvents...)

		if err := u.SessionRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.SessionID, events); err != nil {
			return err
		}

		out = Response{State: next, Reward: chore.Reward, Events: events, Unlocked: unlocked}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

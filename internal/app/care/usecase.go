package care

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/ledger"
	"pawledger/internal/domain/pet"
)

var (
	ErrInvalidRequest    = errors.New("invalid care request")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrChoreAlreadyDone  = pet.ErrChoreDone
	ErrPetDead           = pet.ErrPetDead
	ErrWrongPeriod       = pet.ErrWrongPeriod
	ErrUnknownAction     = pet.ErrUnknownAction
)

type UseCase struct {
	TxManager   ports.TxManager
	SessionRepo ports.SessionRepository
	TxRepo      ports.TransactionRepository
	EventRepo   ports.EventRepository
	Metrics     ports.ActionMetrics
	Care        pet.CareService
	Now         func() time.Time
}

// Execute applies one care action to the session's pet. The affordability
// check happens here, before the resolver is invoked, so the resolver never
// observes money. Every rejection leaves the stored snapshot unchanged; the
// decay catch-up is persisted only together with a successful action.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.SessionID = strings.TrimSpace(req.SessionID)
	if req.SessionID == "" {
		return Response{}, ErrInvalidRequest
	}
	spec, ok := pet.ActionByID(req.Action)
	if !ok {
		return Response{}, ErrUnknownAction
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

		// Catch up decay since the last persisted update; a day boundary
		// crossed meanwhile also resets the chore set.
		current := pet.Decay(state.Pet, state.LastUpdate, now)
		if pet.ShouldResetDaily(current, now) {
			current = pet.ResetDaily(current, now)
		}

		if spec.Cost > 0 && state.Money < spec.Cost {
			return ErrInsufficientFunds
		}

		result, err := u.Care.Apply(current, req.Action, now)
		if err != nil {
			return err
		}

		next := state
		next.Pet = result.UpdatedPet
		next.LastUpdate = now
		next.UpdatedAt = now
		next.Version = state.Version + 1
		events := result.Events

		if spec.Cost > 0 {
			next.Money -= spec.Cost
			entry := ledger.NewTransaction(string(req.Action), -spec.Cost, now)
			if err := u.TxRepo.Append(txCtx, req.SessionID, entry); err != nil {
				return err
			}
		}

		var unlocked []pet.Achievement
		next.Pet, unlocked, events = evaluateAchievements(next.Pet, next.Money, next.LifetimeEarned, now, events)

		if err := u.SessionRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.SessionID, events); err != nil {
			return err
		}

		out = Response{
			State:      next,
			View:       pet.DeriveView(next.Pet),
			Events:     events,
			ResultCode: result.ResultCode,
			Unlocked:   unlocked,
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(out.ResultCode)
	}
	return out, nil
}

func evaluateAchievements(p pet.Pet, money, lifetimeEarned float64, now time.Time, events []pet.DomainEvent) (pet.Pet, []pet.Achievement, []pet.DomainEvent) {
	next, unlocked, unlockEvents := pet.EvaluateAchievements(pet.AchievementInput{
		Pet:            p,
		GameDay:        pet.GameDayAt(p.CreatedAt, now),
		Money:          money,
		LifetimeEarned: lifetimeEarned,
	}, now)
	return next, unlocked, append(events, unlockEvents...)
}

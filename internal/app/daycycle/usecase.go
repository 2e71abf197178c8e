// Package daycycle exposes the skip-to-morning transform.
package daycycle

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

var ErrInvalidRequest = errors.New("invalid skip request")

type Request struct {
	SessionID string
}

type Response struct {
	State      session.State     `json:"state"`
	GameTime   pet.GameTime      `json:"game_time"`
	Events     []pet.DomainEvent `json:"events"`
	ResultCode pet.ResultCode    `json:"result_code"`
}

type UseCase struct {
	TxManager   ports.TxManager
	SessionRepo ports.SessionRepository
	EventRepo   ports.EventRepository
	Now         func() time.Time
}

// Execute fast-forwards a night to 07:00. Called during the day it is a pure
// no-op: nothing is persisted and the response carries UNAVAILABLE.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.SessionID = strings.TrimSpace(req.SessionID)
	if req.SessionID == "" {
		return Response{}, ErrInvalidRequest
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
			return pet.ErrPetDead
		}

		result := pet.SkipToNextDay(state.Pet, now)
		if result.ResultCode == pet.ResultUnavailable {
			out = Response{
				State:      state,
				GameTime:   pet.GameTimeAt(state.Pet.CreatedAt, now),
				ResultCode: pet.ResultUnavailable,
			}
			return nil
		}

		next := state
		next.Pet = result.UpdatedPet
		next.LastUpdate = now
		next.UpdatedAt = now
		next.Version = state.Version + 1
		events := result.Events

		if result.DayCrossed {
			var unlockEvents []pet.DomainEvent
			next.Pet, _, unlockEvents = pet.EvaluateAchievements(pet.AchievementInput{
				Pet:            next.Pet,
				GameDay:        pet.GameDayAt(next.Pet.CreatedAt, now),
				Money:          next.Money,
				LifetimeEarned: next.LifetimeEarned,
			}, now)
			events = append(events, unlockEvents...)
		}

		if err := u.SessionRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.SessionID, events); err != nil {
			return err
		}

		out = Response{
			State:      next,
			GameTime:   pet.GameTimeAt(next.Pet.CreatedAt, now),
			Events:     events,
			ResultCode: pet.ResultOK,
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

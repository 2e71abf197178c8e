// Package tick owns the periodic update: need decay, the daily-reset check
// and death detection. The caller fires it every 30 real seconds; the faster
// cosmetic clock refresh never goes through here.
package tick

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

var ErrInvalidRequest = errors.New("invalid tick request")

type Request struct {
	SessionID string
}

type Response struct {
	State      session.State     `json:"state"`
	View       pet.View          `json:"view"`
	Events     []pet.DomainEvent `json:"events"`
	ResultCode pet.ResultCode    `json:"result_code"`
	Changed    bool              `json:"changed"`
}

type UseCase struct {
	TxManager   ports.TxManager
	SessionRepo ports.SessionRepository
	EventRepo   ports.EventRepository
	Now         func() time.Time
}

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
			// Terminal: no further decay processing is meaningful.
			out = Response{State: state, View: pet.DeriveView(state.Pet), ResultCode: pet.ResultDead}
			return nil
		}

		wasDead := state.Pet.Dead()
		current := pet.Decay(state.Pet, state.LastUpdate, now)
		decayed := current.Needs != state.Pet.Needs
		reset := false
		if pet.ShouldResetDaily(current, now) {
			current = pet.ResetDaily(current, now)
			reset = true
		}

		if !decayed && !reset {
			out = Response{State: state, View: pet.DeriveView(state.Pet), ResultCode: pet.ResultOK}
			return nil
		}

		next := state
		next.Pet = current
		next.LastUpdate = now
		next.UpdatedAt = now
		next.Version = state.Version + 1

		var events []pet.DomainEvent
		if reset {
			events = append(events, pet.DomainEvent{
				Type:       "daily_reset",
				OccurredAt: now,
				Payload:    map[string]any{"game_day": current.LastGameDay},
			})
			// Day-count and streak rules can fire on a pure day tick.
			var unlockEvents []pet.DomainEvent
			next.Pet, _, unlockEvents = pet.EvaluateAchievements(pet.AchievementInput{
				Pet:            next.Pet,
				GameDay:        pet.GameDayAt(next.Pet.CreatedAt, now),
				Money:          next.Money,
				LifetimeEarned: next.LifetimeEarned,
			}, now)
			events = append(events, unlockEvents...)
		}

		code := pet.ResultOK
		if !wasDead && next.Pet.Dead() {
			code = pet.ResultDead
			events = append(events, pet.DomainEvent{Type: "pet_died", OccurredAt: now})
		}

		if err := u.SessionRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if len(events) > 0 {
			if err := u.EventRepo.Append(txCtx, req.SessionID, events); err != nil {
				return err
			}
		}

		out = Response{
			State:      next,
			View:       pet.DeriveView(next.Pet),
			Events:     events,
			ResultCode: code,
			Changed:    true,
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

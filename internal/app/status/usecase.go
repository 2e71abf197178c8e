package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	SessionRepo ports.SessionRepository
	Now         func() time.Time
}

// Execute is read-only: the decay preview shown here is recomputed from the
// stored snapshot on every call and never written back. Persisting is the
// tick's job.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.SessionRepo.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	preview := state
	preview.Pet = pet.Decay(state.Pet, state.LastUpdate, now)

	return Response{
		State:        preview,
		View:         pet.DeriveView(preview.Pet),
		GameTime:     pet.GameTimeAt(preview.Pet.CreatedAt, now),
		GameDay:      pet.GameDayAt(preview.Pet.CreatedAt, now),
		SleepTime:    pet.IsSleepTime(preview.Pet.CreatedAt, now),
		Emoji:        pet.SpeciesEmoji(preview.Pet.Species, preview.Pet.Stage),
		Actions:      pet.Catalog,
		Chores:       session.Chores,
		Achievements: pet.AchievementCatalog(),
	}, nil
}

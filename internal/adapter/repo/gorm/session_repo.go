package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pawledger/internal/adapter/repo/gorm/model"
	"pawledger/internal/app/ports"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"

	"gorm.io/gorm"
)

type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return SessionRepo{db: db}
}

func (r SessionRepo) GetBySessionID(ctx context.Context, sessionID string) (session.State, error) {
	var m model.PetSession
	if err := getDBFromCtx(ctx, r.db).Where("session_id = ?", sessionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.State{}, ports.ErrNotFound
		}
		return session.State{}, err
	}
	return fromRow(m)
}

func (r SessionRepo) SaveWithVersion(ctx context.Context, state session.State, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	m, err := toRow(state)
	if err != nil {
		return err
	}

	if expectedVersion == 0 {
		return db.Create(&m).Error
	}

	res := db.Model(&model.PetSession{}).
		Where("session_id = ? AND version = ?", state.SessionID, expectedVersion).
		Updates(map[string]any{
			"name":             m.Name,
			"species":          m.Species,
			"stage":            m.Stage,
			"level":            m.Level,
			"experience":       m.Experience,
			"hunger":           m.Hunger,
			"happiness":        m.Happiness,
			"health":           m.Health,
			"energy":           m.Energy,
			"hygiene":          m.Hygiene,
			"created_at_ms":    m.CreatedAtMs,
			"last_game_day":    m.LastGameDay,
			"completed_today":  m.CompletedToday,
			"clean_count":      m.CleanCount,
			"vet_count":        m.VetCount,
			"treat_count":      m.TreatCount,
			"sleep_count":      m.SleepCount,
			"unlocked":         m.Unlocked,
			"days_passed":      m.DaysPassed,
			"happy_streak":     m.HappyStreak,
			"money":            m.Money,
			"lifetime_earned":  m.LifetimeEarned,
			"last_update":      m.LastUpdate,
			"chore_not_before": m.ChoreNotBefore,
			"version":          m.Version,
			"updated_at":       m.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r SessionRepo) Delete(ctx context.Context, sessionID string) error {
	return getDBFromCtx(ctx, r.db).
		Where("session_id = ?", sessionID).
		Delete(&model.PetSession{}).Error
}

func toRow(state session.State) (model.PetSession, error) {
	completed, err := json.Marshal(state.Pet.CompletedToday)
	if err != nil {
		return model.PetSession{}, err
	}
	unlocked, err := json.Marshal(state.Pet.Unlocked)
	if err != nil {
		return model.PetSession{}, err
	}
	cooldowns, err := json.Marshal(state.ChoreNotBefore)
	if err != nil {
		return model.PetSession{}, err
	}
	return model.PetSession{
		SessionID:      state.SessionID,
		Name:           state.Pet.Name,
		Species:        string(state.Pet.Species),
		Stage:          string(state.Pet.Stage),
		Level:          int32(state.Pet.Level),
		Experience:     int32(state.Pet.Experience),
		Hunger:         state.Pet.Needs.Hunger,
		Happiness:      state.Pet.Needs.Happiness,
		Health:         state.Pet.Needs.Health,
		Energy:         state.Pet.Needs.Energy,
		Hygiene:        state.Pet.Needs.Hygiene,
		CreatedAtMs:    state.Pet.CreatedAt.UnixMilli(),
		LastGameDay:    int32(state.Pet.LastGameDay),
		CompletedToday: completed,
		CleanCount:     int32(state.Pet.Counters.Clean),
		VetCount:       int32(state.Pet.Counters.Vet),
		TreatCount:     int32(state.Pet.Counters.Treat),
		SleepCount:     int32(state.Pet.Counters.Sleep),
		Unlocked:       unlocked,
		DaysPassed:     int32(state.Pet.DaysPassed),
		HappyStreak:    int32(state.Pet.HappyStreak),
		Money:          state.Money,
		LifetimeEarned: state.LifetimeEarned,
		LastUpdate:     state.LastUpdate,
		ChoreNotBefore: cooldowns,
		Version:        state.Version,
		UpdatedAt:      state.UpdatedAt,
	}, nil
}

func fromRow(m model.PetSession) (session.State, error) {
	completed := map[pet.ActionID]bool{}
	if len(m.CompletedToday) > 0 {
		if err := json.Unmarshal(m.CompletedToday, &completed); err != nil {
			return session.State{}, err
		}
	}
	var unlocked []pet.AchievementID
	if len(m.Unlocked) > 0 {
		if err := json.Unmarshal(m.Unlocked, &unlocked); err != nil {
			return session.State{}, err
		}
	}
	var cooldowns map[string]time.Time
	if len(m.ChoreNotBefore) > 0 {
		if err := json.Unmarshal(m.ChoreNotBefore, &cooldowns); err != nil {
			return session.State{}, err
		}
	}

	return session.State{
		SessionID: m.SessionID,
		Pet: pet.Pet{
			Name:       m.Name,
			Species:    pet.Species(m.Species),
			Stage:      pet.Stage(m.Stage),
			Level:      int(m.Level),
			Experience: int(m.Experience),
			Needs: pet.Needs{
				Hunger:    m.Hunger,
				Happiness: m.Happiness,
				Health:    m.Health,
				Energy:    m.Energy,
				Hygiene:   m.Hygiene,
			},
			CreatedAt:      time.UnixMilli(m.CreatedAtMs),
			LastGameDay:    int(m.LastGameDay),
			CompletedToday: completed,
			Counters: pet.Counters{
				Clean: int(m.CleanCount),
				Vet:   int(m.VetCount),
				Treat: int(m.TreatCount),
				Sleep: int(m.SleepCount),
			},
			Unlocked:    unlocked,
			DaysPassed:  int(m.DaysPassed),
			HappyStreak: int(m.HappyStreak),
		},
		Money:          m.Money,
		LifetimeEarned: m.LifetimeEarned,
		LastUpdate:     m.LastUpdate,
		ChoreNotBefore: cooldowns,
		Version:        m.Version,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

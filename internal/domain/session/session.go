// Package session owns the caller-facing aggregate: the pet record, the money
// balance and the bookkeeping the simulation core reads but never stores.
package session

import (
	"errors"
	"strings"
	"time"

	"pawledger/internal/domain/pet"
)

var (
	ErrInvalidName    = errors.New("pet name must be 1-20 characters")
	ErrInvalidSpecies = errors.New("unknown species")
)

const StartingMoney = 100

// State is the single mutable-by-replacement record one owner holds. All
// simulation transitions read a State and produce a new one; persistence is
// an injected load/save capability around it.
type State struct {
	SessionID string  `json:"session_id"`
	Pet       pet.Pet `json:"pet"`
	Money     float64 `json:"money"`

	// LifetimeEarned accumulates every positive transaction. The ledger is
	// capped, so earnings-threshold rules cannot be answered from it.
	LifetimeEarned float64 `json:"lifetime_earned"`

	// LastUpdate anchors need decay between ticks.
	LastUpdate time.Time `json:"last_update"`

	// ChoreNotBefore gates the earning mini-game per chore id.
	ChoreNotBefore map[string]time.Time `json:"chore_not_before,omitempty"`

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New validates identity fields and assembles a newborn session.
func New(sessionID, name string, species pet.Species, now time.Time) (State, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > pet.MaxNameLength {
		return State{}, ErrInvalidName
	}
	if !pet.IsValidSpecies(species) {
		return State{}, ErrInvalidSpecies
	}

	p := pet.Pet{
		Name:           name,
		Species:        species,
		Stage:          pet.StageBaby,
		Level:          1,
		Experience:     0,
		Needs:          pet.NewbornNeeds,
		CreatedAt:      now,
		LastGameDay:    pet.GameDayAt(now, now),
		CompletedToday: map[pet.ActionID]bool{},
	}

	return State{
		SessionID:  sessionID,
		Pet:        p,
		Money:      StartingMoney,
		LastUpdate: now,
		Version:    1,
		UpdatedAt:  now,
	}, nil
}

func (s State) ChoreReadyAt(choreID string) time.Time {
	return s.ChoreNotBefore[choreID]
}

// WithChoreCooldown returns a copy with the chore's not-before gate set,
// leaving the receiver's map untouched.
func (s State) WithChoreCooldown(choreID string, notBefore time.Time) State {
	next := s
	next.ChoreNotBefore = make(map[string]time.Time, len(s.ChoreNotBefore)+1)
	for k, v := range s.ChoreNotBefore {
		next.ChoreNotBefore[k] = v
	}
	next.ChoreNotBefore[choreID] = notBefore
	return next
}

package pet

import (
	"errors"
	"time"
)

type ActionID string

const (
	ActionFeed  ActionID = "feed"
	ActionPlay  ActionID = "play"
	ActionRest  ActionID = "rest"
	ActionClean ActionID = "clean"
	ActionVet   ActionID = "vet"
	ActionToy   ActionID = "toy"
	ActionTreat ActionID = "treat"
	ActionSleep ActionID = "sleep"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrPetDead       = errors.New("pet is dead")
	ErrWrongPeriod   = errors.New("action not available in current period")
	ErrChoreDone     = errors.New("chore already completed today")
)

// ActionSpec describes one catalog entry: its money cost, availability and
// once-per-day restriction. Cost is consumed by the caller's ledger; the
// resolver itself never touches money.
type ActionSpec struct {
	ID          ActionID `json:"id"`
	Label       string   `json:"label"`
	Cost        float64  `json:"cost"`
	Chore       bool     `json:"chore"`
	NightOnly   bool     `json:"night_only"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
}

var Catalog = []ActionSpec{
	{ID: ActionFeed, Label: "Feed", Cost: 5, Icon: "🍖", Description: "Give your pet food"},
	{ID: ActionPlay, Label: "Play", Cost: 0, Icon: "🎾", Description: "Play together"},
	{ID: ActionRest, Label: "Rest", Cost: 0, Icon: "😴", Description: "Let your pet sleep"},
	{ID: ActionClean, Label: "Clean", Cost: 4, Chore: true, Icon: "🫧", Description: "Give your pet a bath"},
	{ID: ActionVet, Label: "Vet Visit", Cost: 25, Chore: true, Icon: "🏥", Description: "Take to the vet"},
	{ID: ActionToy, Label: "New Toy", Cost: 15, Icon: "🧸", Description: "Buy a new toy"},
	{ID: ActionTreat, Label: "Give Treat", Cost: 8, Icon: "🍪", Description: "Special treat"},
	{ID: ActionSleep, Label: "Sleep", Cost: 0, NightOnly: true, Icon: "🛏️", Description: "Rest overnight"},
}

func ActionByID(id ActionID) (ActionSpec, bool) {
	for _, spec := range Catalog {
		if spec.ID == id {
			return spec, true
		}
	}
	return ActionSpec{}, false
}

type CareResult struct {
	UpdatedPet Pet           `json:"updated_pet"`
	Events     []DomainEvent `json:"events"`
	ResultCode ResultCode    `json:"result_code"`
	LeveledUp  bool          `json:"leveled_up"`
}

// CareService resolves care actions against a pet snapshot.
type CareService struct{}

// Apply resolves one action: availability gates first, then the fixed stat
// deltas, then experience and level recomputation. Every rejection returns the
// sentinel error with the snapshot untouched.
func (CareService) Apply(p Pet, id ActionID, now time.Time) (CareResult, error) {
	spec, ok := ActionByID(id)
	if !ok {
		return CareResult{}, ErrUnknownAction
	}
	if p.Dead() {
		return CareResult{}, ErrPetDead
	}

	night := IsSleepTime(p.CreatedAt, now)
	if night != spec.NightOnly {
		return CareResult{}, ErrWrongPeriod
	}
	if spec.Chore && p.ChoreDoneToday(id) {
		return CareResult{}, ErrChoreDone
	}

	next := p
	switch id {
	case ActionFeed:
		next.Needs.Hunger = clampStat(next.Needs.Hunger + 30)
		next.Needs.Health = clampStat(next.Needs.Health + 5)
	case ActionPlay:
		if next.Needs.Hunger < 30 {
			// Playing while starving hurts instead of cheering up.
			next.Needs.Health = clampStat(next.Needs.Health - 20)
		} else {
			next.Needs.Happiness = clampStat(next.Needs.Happiness + 25)
		}
		next.Needs.Energy = clampStat(next.Needs.Energy - 15)
		next.Needs.Hunger = clampStat(next.Needs.Hunger - 10)
	case ActionRest:
		next.Needs.Energy = clampStat(next.Needs.Energy + 40)
		next.Needs.Health = clampStat(next.Needs.Health + 10)
	case ActionClean:
		next.Needs.Hygiene = clampStat(next.Needs.Hygiene + 35)
		next.Needs.Happiness = clampStat(next.Needs.Happiness + 10)
		next.Counters.Clean++
	case ActionVet:
		// Absolute, not additive.
		next.Needs.Health = 100
		next.Needs.Happiness = clampStat(next.Needs.Happiness - 10)
		next.Counters.Vet++
	case ActionToy:
		next.Needs.Happiness = clampStat(next.Needs.Happiness + 30)
		next.Needs.Energy = clampStat(next.Needs.Energy - 10)
	case ActionTreat:
		next.Needs.Happiness = clampStat(next.Needs.Happiness + 20)
		next.Needs.Hunger = clampStat(next.Needs.Hunger + 15)
		next.Counters.Treat++
	case ActionSleep:
		next.Needs.Energy = clampStat(next.Needs.Energy + 50)
		next.Needs.Health = clampStat(next.Needs.Health + 10)
		next.Counters.Sleep++
	}

	if spec.Chore {
		next = next.markChoreDone(id)
	}

	next.Experience += ExperiencePerAction
	leveled := false
	if level := LevelFor(next.Experience); level > next.Level {
		next.Level = level
		next.Stage = StageFor(level)
		leveled = true
	}

	events := []DomainEvent{{
		Type:       "action_applied",
		OccurredAt: now,
		Payload: map[string]any{
			"action":     string(id),
			"experience": next.Experience,
			"level":      next.Level,
			"needs": map[string]any{
				"hunger":    next.Needs.Hunger,
				"happiness": next.Needs.Happiness,
				"health":    next.Needs.Health,
				"energy":    next.Needs.Energy,
				"hygiene":   next.Needs.Hygiene,
			},
		},
	}}
	if leveled {
		events = append(events, DomainEvent{
			Type:       "level_up",
			OccurredAt: now,
			Payload:    map[string]any{"level": next.Level, "stage": string(next.Stage)},
		})
	}

	code := ResultOK
	if next.Dead() {
		code = ResultDead
		events = append(events, DomainEvent{Type: "pet_died", OccurredAt: now})
	}

	return CareResult{UpdatedPet: next, Events: events, ResultCode: code, LeveledUp: leveled}, nil
}

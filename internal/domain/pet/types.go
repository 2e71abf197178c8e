package pet

import "time"

type Species string

const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesRabbit  Species = "rabbit"
	SpeciesHamster Species = "hamster"
)

func IsValidSpecies(s Species) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesRabbit, SpeciesHamster:
		return true
	default:
		return false
	}
}

type Stage string

const (
	StageBaby  Stage = "baby"
	StageChild Stage = "child"
	StageAdult Stage = "adult"
)

type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodSad       Mood = "sad"
	MoodSick      Mood = "sick"
	MoodEnergetic Mood = "energetic"
	MoodTired     Mood = "tired"
	MoodHungry    Mood = "hungry"
	MoodDirty     Mood = "dirty"
)

// Needs are the five core stats, each clamped to [0,100].
type Needs struct {
	Hunger    float64 `json:"hunger"`
	Happiness float64 `json:"happiness"`
	Health    float64 `json:"health"`
	Energy    float64 `json:"energy"`
	Hygiene   float64 `json:"hygiene"`
}

// Counters are lifetime per-action tallies, monotonically non-decreasing.
type Counters struct {
	Clean int `json:"clean"`
	Vet   int `json:"vet"`
	Treat int `json:"treat"`
	Sleep int `json:"sleep"`
}

// Pet is the full pet record. Transitions replace the whole value; the
// simulation core never mutates a caller's copy in place.
type Pet struct {
	Name       string  `json:"name"`
	Species    Species `json:"species"`
	Stage      Stage   `json:"stage"`
	Level      int     `json:"level"`
	Experience int     `json:"experience"`

	Needs Needs `json:"needs"`

	// CreatedAt is the epoch game time is computed from. Only the day-skip
	// transform moves it (backward, so the clock jumps forward).
	CreatedAt   time.Time `json:"created_at"`
	LastGameDay int       `json:"last_game_day"`

	CompletedToday map[ActionID]bool `json:"completed_today"`

	Counters Counters `json:"counters"`

	Unlocked   []AchievementID `json:"unlocked"`
	DaysPassed int             `json:"days_passed"`

	// HappyStreak counts consecutive day boundaries crossed with
	// happiness above 80, for the pets_best_friend rule.
	HappyStreak int `json:"happy_streak"`
}

func (p Pet) Dead() bool {
	return p.Needs.Health <= 0
}

func (p Pet) HasUnlocked(id AchievementID) bool {
	for _, got := range p.Unlocked {
		if got == id {
			return true
		}
	}
	return false
}

func (p Pet) ChoreDoneToday(id ActionID) bool {
	return p.CompletedToday[id]
}

// markChoreDone returns a copy with the chore recorded, never touching the
// shared map of the receiver.
func (p Pet) markChoreDone(id ActionID) Pet {
	next := p
	next.CompletedToday = make(map[ActionID]bool, len(p.CompletedToday)+1)
	for k, v := range p.CompletedToday {
		next.CompletedToday[k] = v
	}
	next.CompletedToday[id] = true
	return next
}

type ResultCode string

const (
	ResultOK          ResultCode = "OK"
	ResultDead        ResultCode = "DEAD"
	ResultUnavailable ResultCode = "UNAVAILABLE"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// View is the derived presentation state for the current needs snapshot.
type View struct {
	Mood    Mood   `json:"mood"`
	Emoji   string `json:"emoji"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

func clampStat(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func floorStat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

package pet

// Decay rates per elapsed real minute.
const (
	HungerDecayPerMinute    = 0.5
	HappinessDecayPerMinute = 0.3
	EnergyDecayPerMinute    = 0.2
	HygieneDecayPerMinute   = 0.25
	HealthDecayPerMinute    = 0.1
)

// Progression.
const (
	ExperiencePerAction = 10
	ExperiencePerLevel  = 100
	ChildLevel          = 5
	AdultLevel          = 10
)

// Mood cascade thresholds, checked in priority order.
const (
	SickHealthBelow      = 30
	HungryHungerBelow    = 20
	DirtyHygieneBelow    = 25
	TiredEnergyBelow     = 20
	SadHappinessBelow    = 30
	EnergeticEnergyOver  = 70
	EnergeticJoyOver     = 70
	ContentHappinessOver = 60
	ContentHealthOver    = 60
	ContentHungerOver    = 50
)

// Day-skip penalties.
const (
	SkipHungerPenalty  = 40
	SkipEnergyPenalty  = 30
	SkipHygienePenalty = 25
)

// Initial stats for a freshly created pet.
var NewbornNeeds = Needs{
	Hunger:    80,
	Happiness: 80,
	Health:    100,
	Energy:    80,
	Hygiene:   100,
}

const MaxNameLength = 20

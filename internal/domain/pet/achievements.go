package pet

import "time"

type AchievementID string

const (
	AchievementFirstWeek       AchievementID = "first_week"
	AchievementPetMaster       AchievementID = "pet_master"
	AchievementFinancialMaster AchievementID = "financial_master"
	AchievementBestFriend      AchievementID = "pets_best_friend"
	AchievementCleanFreak      AchievementID = "clean_freak"
	AchievementVeterinarian    AchievementID = "veterinarian"
	AchievementTreatGiver      AchievementID = "treat_giver"
	AchievementNightOwl        AchievementID = "night_owl"
	AchievementMarathon        AchievementID = "marathon"
	AchievementLegend          AchievementID = "legend"
)

type Achievement struct {
	ID           AchievementID `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Icon         string        `json:"icon"`
	UnlockedIcon string        `json:"unlocked_icon"`
}

// AchievementInput is the full snapshot the rule predicates see. Lifetime
// earnings are the cumulative positive transaction total, not the balance.
type AchievementInput struct {
	Pet            Pet
	GameDay        int
	Money          float64
	LifetimeEarned float64
}

type achievementRule struct {
	Achievement
	unlocked func(AchievementInput) bool
}

// One canonical rule table keyed by achievement id; every rule is a pure
// predicate over the same snapshot and is evaluated uniformly after each
// mutation.
var achievementRules = []achievementRule{
	{
		Achievement: Achievement{ID: AchievementFirstWeek, Title: "First Week", Description: "Keep your pet alive for 7 days", Icon: "😴", UnlockedIcon: "🎉"},
		unlocked:    func(in AchievementInput) bool { return in.GameDay >= 7 },
	},
	{
		Achievement: Achievement{ID: AchievementPetMaster, Title: "Pet Master", Description: "Reach level 10 with your pet", Icon: "😴", UnlockedIcon: "👑"},
		unlocked:    func(in AchievementInput) bool { return in.Pet.Level >= 10 },
	},
	{
		Achievement: Achievement{ID: AchievementFinancialMaster, Title: "Financial Master", Description: "Earn $500 total", Icon: "😴", UnlockedIcon: "💎"},
		unlocked:    func(in AchievementInput) bool { return in.LifetimeEarned >= 500 },
	},
	{
		Achievement: Achievement{ID: AchievementBestFriend, Title: "Pet's Best Friend", Description: "Keep pet happiness above 80 for 3 consecutive days", Icon: "😴", UnlockedIcon: "❤️"},
		unlocked:    func(in AchievementInput) bool { return in.Pet.HappyStreak >= 3 },
	},
	{
		Achievement: Achievement{ID: AchievementCleanFreak, Title: "Clean Freak", Description: "Clean your pet 20 times", Icon: "😴", UnlockedIcon: "✨"},
		unlocked:    func(in AchievementInput) bool { return in.Pet.Counters.Clean >= 20 },
	},
	{
		Achievement: Achievement{ID: AchievementVeterinarian, Title: "Veterinarian", Description: "Visit the vet 10 times", Icon: "😴", UnlockedIcon: "🏥"},
		unlocked:    func(in AchievementInput) bool { return in.Pet.Counters.Vet >= 10 },
	},
	{
		Achievement: Achievement{ID: AchievementTreatGiver, Title: "Treat Giver", Description: "Give 50 treats", Icon: "😴", UnlockedIcon: "🍪"},
		unlocked:    func(in AchievementInput) bool { return in.Pet.Counters.Treat >= 50 },
	},
	{
		Achievement: Achievement{ID: AchievementNightOwl, Title: "Night Owl", Description: "Sleep 30 times", Icon: "😴", UnlockedIcon: "🌙"},
		unlocked:    func(in AchievementInput) bool { return in.Pet.Counters.Sleep >= 30 },
	},
	{
		Achievement: Achievement{ID: AchievementMarathon, Title: "Marathon", Description: "Keep your pet alive for 30 days", Icon: "😴", UnlockedIcon: "🏃"},
		unlocked:    func(in AchievementInput) bool { return in.GameDay >= 30 },
	},
	{
		Achievement: Achievement{ID: AchievementLegend, Title: "Legend", Description: "Reach level 50 and earn $1000", Icon: "😴", UnlockedIcon: "⭐"},
		unlocked:    func(in AchievementInput) bool { return in.Pet.Level >= 50 && in.Money >= 1000 },
	},
}

// AchievementCatalog returns the static catalog in display order.
func AchievementCatalog() []Achievement {
	out := make([]Achievement, 0, len(achievementRules))
	for _, rule := range achievementRules {
		out = append(out, rule.Achievement)
	}
	return out
}

// EvaluateAchievements runs every rule against the snapshot and appends newly
// satisfied ids to the pet's unlocked set. Unlocks are one-way and idempotent:
// an already-unlocked id is never duplicated no matter how often its condition
// re-fires.
func EvaluateAchievements(in AchievementInput, now time.Time) (Pet, []Achievement, []DomainEvent) {
	next := in.Pet
	var unlocked []Achievement
	var events []DomainEvent
	for _, rule := range achievementRules {
		if next.HasUnlocked(rule.ID) || !rule.unlocked(in) {
			continue
		}
		next.Unlocked = append(append([]AchievementID{}, next.Unlocked...), rule.ID)
		in.Pet = next
		unlocked = append(unlocked, rule.Achievement)
		events = append(events, DomainEvent{
			Type:       "achievement_unlocked",
			OccurredAt: now,
			Payload:    map[string]any{"id": string(rule.ID), "title": rule.Title},
		})
	}
	return next, unlocked, events
}

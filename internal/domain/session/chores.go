package session

import "time"

// ChoreCooldown is the not-before window after completing a chore. A plain
// timestamp gate, not a scheduler.
const ChoreCooldown = 30 * time.Second

// Chore is one entry of the earning mini-game: a fixed reward on a fixed
// cooldown, outside the pet simulation proper.
type Chore struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Icon   string  `json:"icon"`
	Reward float64 `json:"reward"`
}

var Chores = []Chore{
	{ID: "dishes", Label: "Wash Dishes", Icon: "🍽️", Reward: 10},
	{ID: "vacuum", Label: "Vacuum Room", Icon: "🧹", Reward: 15},
	{ID: "laundry", Label: "Do Laundry", Icon: "👕", Reward: 12},
	{ID: "homework", Label: "Complete Homework", Icon: "📚", Reward: 20},
	{ID: "yard", Label: "Yard Work", Icon: "🌱", Reward: 25},
	{ID: "organize", Label: "Organize Closet", Icon: "🗄️", Reward: 18},
}

func ChoreByID(id string) (Chore, bool) {
	for _, chore := range Chores {
		if chore.ID == id {
			return chore, true
		}
	}
	return Chore{}, false
}

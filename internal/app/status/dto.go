package status

import (
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

type Request struct {
	SessionID string
}

// Response is the decay-adjusted read model: what the pet looks like right
// now, without persisting the preview.
type Response struct {
	State        session.State     `json:"state"`
	View         pet.View          `json:"view"`
	GameTime     pet.GameTime      `json:"game_time"`
	GameDay      int               `json:"game_day"`
	SleepTime    bool              `json:"sleep_time"`
	Emoji        string            `json:"emoji"`
	Actions      []pet.ActionSpec  `json:"actions"`
	Chores       []session.Chore   `json:"chores"`
	Achievements []pet.Achievement `json:"achievements"`
}

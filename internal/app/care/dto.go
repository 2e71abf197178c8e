package care

import (
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"
)

type Request struct {
	SessionID string
	Action    pet.ActionID
}

type Response struct {
	State      session.State     `json:"state"`
	View       pet.View          `json:"view"`
	Events     []pet.DomainEvent `json:"events"`
	ResultCode pet.ResultCode    `json:"result_code"`
	Unlocked   []pet.Achievement `json:"unlocked,omitempty"`
}

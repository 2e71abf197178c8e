// Package replay lists the recent domain events of a session.
package replay

import (
	"context"
	"errors"
	"strings"

	"pawledger/internal/app/ports"
	"pawledger/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const defaultLimit = 50
const maxLimit = 500

type Request struct {
	SessionID string
	Limit     int
}

type Response struct {
	Events []pet.DomainEvent `json:"events"`
}

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	events, err := u.Events.ListBySessionID(ctx, req.SessionID, limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Events: events}, nil
}

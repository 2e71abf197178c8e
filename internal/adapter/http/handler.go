package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"pawledger/internal/app/care"
	"pawledger/internal/app/daycycle"
	"pawledger/internal/app/earn"
	"pawledger/internal/app/ledgerview"
	"pawledger/internal/app/ports"
	"pawledger/internal/app/replay"
	"pawledger/internal/app/sessionmgmt"
	"pawledger/internal/app/status"
	"pawledger/internal/app/tick"
	"pawledger/internal/domain/pet"
	"pawledger/internal/domain/session"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const sessionIDHeader = "X-Session-ID"

type Handler struct {
	SessionUC sessionmgmt.UseCase
	StatusUC  status.UseCase
	CareUC    care.UseCase
	EarnUC    earn.UseCase
	TickUC    tick.UseCase
	SkipUC    daycycle.UseCase
	LedgerUC  ledgerview.UseCase
	ReplayUC  replay.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api/pet")
	api.POST("", h.create)
	api.DELETE("", h.reset)
	api.GET("/status", h.status)
	api.POST("/action", h.action)
	api.POST("/earn", h.earn)
	api.POST("/tick", h.tick)
	api.POST("/skip", h.skip)
	api.GET("/ledger", h.ledger)
	api.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type createRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
}

type actionRequest struct {
	Action string `json:"action"`
}

type earnRequest struct {
	Chore string `json:"chore"`
}

func (h Handler) create(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body createRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.SessionUC.Create(c, sessionmgmt.CreateRequest{
		SessionID: sessionID,
		Name:      body.Name,
		Species:   pet.Species(body.Species),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.SessionUC.Reset(c, sessionmgmt.ResetRequest{SessionID: sessionID}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"status": "reset"})
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{SessionID: sessionID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CareUC.Execute(c, care.Request{
		SessionID: sessionID,
		Action:    pet.ActionID(body.Action),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) earn(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body earnRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.EarnUC.Execute(c, earn.Request{SessionID: sessionID, ChoreID: body.Chore})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.TickUC.Execute(c, tick.Request{SessionID: sessionID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) skip(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.SkipUC.Execute(c, daycycle.Request{SessionID: sessionID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) ledger(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.LedgerUC.Execute(c, ledgerview.Request{SessionID: sessionID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.ReplayUC.Execute(c, replay.Request{SessionID: sessionID, Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

var ErrMissingSessionIDHeader = errors.New("missing x-session-id header")

func requireSessionID(ctx *app.RequestContext) (string, error) {
	sessionID := strings.TrimSpace(string(ctx.GetHeader(sessionIDHeader)))
	if sessionID == "" {
		return "", ErrMissingSessionIDHeader
	}
	return sessionID, nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingSessionIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_session_id", err.Error())
	case errors.Is(err, care.ErrInsufficientFunds):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_funds", err.Error())
	case errors.Is(err, pet.ErrChoreDone):
		writeErrorBody(ctx, consts.StatusConflict, "chore_already_done", err.Error())
	case errors.Is(err, pet.ErrPetDead), errors.Is(err, earn.ErrSessionTerminated):
		writeErrorBody(ctx, consts.StatusConflict, "pet_dead", err.Error())
	case errors.Is(err, pet.ErrWrongPeriod):
		writeErrorBody(ctx, consts.StatusConflict, "wrong_period", err.Error())
	case errors.Is(err, earn.ErrCooldownActive):
		writeErrorBody(ctx, consts.StatusConflict, "chore_cooldown_active", err.Error())
	case errors.Is(err, pet.ErrUnknownAction):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_action", err.Error())
	case errors.Is(err, earn.ErrUnknownChore):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_chore", err.Error())
	case errors.Is(err, session.ErrInvalidName), errors.Is(err, session.ErrInvalidSpecies):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_pet", err.Error())
	case errors.Is(err, sessionmgmt.ErrAlreadyExists):
		writeErrorBody(ctx, consts.StatusConflict, "session_exists", err.Error())
	case errors.Is(err, care.ErrInvalidRequest),
		errors.Is(err, earn.ErrInvalidRequest),
		errors.Is(err, tick.ErrInvalidRequest),
		errors.Is(err, daycycle.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, ledgerview.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, sessionmgmt.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

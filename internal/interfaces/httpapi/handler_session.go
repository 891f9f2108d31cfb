package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/scoutschool/daily-shift/internal/domain/scoring"
	"github.com/scoutschool/daily-shift/internal/usecase"
)

type startSessionRequest struct {
	TimeLimit int `json:"time_limit" validate:"omitempty,gt=0,lte=600"`
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartSession")
	defer span.End()

	var req startSessionRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	limit := req.TimeLimit
	if limit <= 0 {
		limit = scoring.DefaultTimeLimitSeconds
	}

	sessionID, err := h.sessionService.Start(ctx, limit, usecase.SessionCallbacks{
		OnExpire: func() {
			h.logger.Info("session timer expired")
		},
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "start session failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionDTO{
		SessionID:        sessionID,
		TimeLimit:        limit,
		RemainingSeconds: limit,
		Active:           true,
	})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("session"))
	remaining, ok := h.sessionService.Remaining(sessionID)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: session %s is not active", usecase.ErrNotFound, sessionID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionDTO{
		SessionID:        sessionID,
		RemainingSeconds: remaining,
		Active:           true,
	})
}

func (h *Handler) StopSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StopSession")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("session"))
	h.sessionService.Stop(ctx, sessionID)

	writeSuccess(ctx, w, http.StatusOK, sessionDTO{
		SessionID: sessionID,
		Active:    false,
	})
}

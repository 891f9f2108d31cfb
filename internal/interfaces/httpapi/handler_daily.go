package httpapi

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/scoutschool/daily-shift/internal/usecase"
)

type completeDailyRequest struct {
	Answers     []string `json:"answers" validate:"required,min=1,dive,required"`
	TimeElapsed int      `json:"time_elapsed" validate:"gte=0"`
}

func (h *Handler) GetDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDaily")
	defer span.End()

	record, err := h.dailyService.Start(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "start daily shift failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dailyRecordToDTO(record))
}

func (h *Handler) CompleteDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteDaily")
	defer span.End()

	var req completeDailyRequest
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

	result, err := h.dailyService.Complete(ctx, usecase.CompleteDailyInput{
		Answers:     req.Answers,
		TimeElapsed: req.TimeElapsed,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "complete daily shift failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dailyResultDTO{
		Record: dailyRecordToDTO(result.Record),
		Score:  resultToDTO(result.Score),
		Stats:  statsToDTO(result.Stats),
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats")
	defer span.End()

	stats, err := h.dailyService.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTO(stats))
}

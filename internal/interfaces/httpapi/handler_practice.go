package httpapi

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/scoutschool/daily-shift/internal/usecase"
)

type practiceRequest struct {
	Teams []string `json:"teams" validate:"required,min=1,max=2,dive,required"`
	Count int      `json:"count" validate:"omitempty,gt=0,lte=50"`
}

func (h *Handler) StartPractice(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartPractice")
	defer span.End()

	var req practiceRequest
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

	questions, err := h.questionService.Practice(ctx, usecase.PracticeInput{
		Teams: req.Teams,
		Count: req.Count,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "start practice failed", "teams", req.Teams, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, questionsToDTO(questions))
}

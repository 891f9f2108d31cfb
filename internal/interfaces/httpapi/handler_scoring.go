package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/roster"
	"github.com/scoutschool/daily-shift/internal/usecase"
)

type scoreRequest struct {
	Correct          int     `json:"correct" validate:"gte=0"`
	Total            int     `json:"total" validate:"gt=0,gtefield=Correct"`
	TimeRemaining    float64 `json:"time_remaining" validate:"gte=0"`
	TimeLimit        float64 `json:"time_limit" validate:"gte=0"`
	PointsPerCorrect int     `json:"points_per_correct" validate:"omitempty,gt=0"`
	Timed            bool    `json:"timed"`
	SessionID        string  `json:"session_id"`
}

type lineupPlacementRecord struct {
	Line   int    `json:"line" validate:"gt=0"`
	Slot   string `json:"slot" validate:"required"`
	Player string `json:"player" validate:"required"`
}

type scoreLineupRequest struct {
	Team          string                  `json:"team" validate:"required"`
	LineCount     int                     `json:"line_count" validate:"omitempty,gt=0"`
	Placements    []lineupPlacementRecord `json:"placements" validate:"required,min=1,dive"`
	TimeRemaining float64                 `json:"time_remaining" validate:"gte=0"`
	TimeLimit     float64                 `json:"time_limit" validate:"gte=0"`
	Timed         bool                    `json:"timed"`
}

func (h *Handler) ScoreBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScoreBatch")
	defer span.End()

	var req scoreRequest
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

	// A submit against a running session pulls the remaining time from
	// its clock and ends the shift; a session that already expired
	// scores with no bonus.
	if req.SessionID != "" {
		remaining, ok := h.sessionService.Remaining(req.SessionID)
		if !ok {
			remaining = 0
		}
		req.Timed = true
		req.TimeRemaining = float64(remaining)
		h.sessionService.Stop(ctx, req.SessionID)
	}

	result, err := h.scoringService.Score(ctx, usecase.ScoreInput{
		Correct:          req.Correct,
		Total:            req.Total,
		TimeRemaining:    req.TimeRemaining,
		TimeLimit:        req.TimeLimit,
		PointsPerCorrect: req.PointsPerCorrect,
		Timed:            req.Timed,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "score batch failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(result))
}

func (h *Handler) ScoreLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScoreLineup")
	defer span.End()

	var req scoreLineupRequest
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

	teamAbbr := strings.ToUpper(strings.TrimSpace(req.Team))
	view, err := h.teamService.Roster(ctx, teamAbbr)
	if err != nil {
		h.logger.WarnContext(ctx, "score lineup roster lookup failed", "team", teamAbbr, "error", err)
		writeError(ctx, w, err)
		return
	}

	lineCount := req.LineCount
	if lineCount == 0 {
		lineCount = view.LineCount
	}

	byName := make(map[string]player.Player, len(view.Skaters)+len(view.Goalies))
	for _, p := range view.Skaters {
		byName[p.Name] = p
	}
	for _, p := range view.Goalies {
		byName[p.Name] = p
	}

	lineup := roster.NewUserLineup(lineCount)
	for _, placement := range req.Placements {
		slot, ok := parseSlotID(placement.Slot)
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: unknown slot %q", usecase.ErrInvalidInput, placement.Slot))
			return
		}

		p, ok := byName[placement.Player]
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: player %q is not on team %s", usecase.ErrInvalidInput, placement.Player, teamAbbr))
			return
		}

		if _, err := lineup.Place(placement.Line, slot, p); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
			return
		}
	}

	// An explicit submit must fill every slot; a run that hit the clock
	// is scored as-is, open slots counting as mistakes.
	timedOut := req.Timed && req.TimeRemaining <= 0
	if !lineup.Complete() && !timedOut {
		writeError(ctx, w, fmt.Errorf("%w: lineup is incomplete", usecase.ErrInvalidInput))
		return
	}

	result, err := h.scoringService.ScoreLineup(ctx, usecase.ScoreLineupInput{
		TeamAbbr:      teamAbbr,
		LineCount:     lineCount,
		Lineup:        lineup,
		TimeRemaining: req.TimeRemaining,
		TimeLimit:     req.TimeLimit,
		Timed:         req.Timed,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "score lineup failed", "team", teamAbbr, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(result))
}

func parseSlotID(raw string) (roster.SlotID, bool) {
	candidate := roster.SlotID(strings.ToUpper(strings.TrimSpace(raw)))
	for _, slot := range roster.LineSlots {
		if slot == candidate {
			return slot, true
		}
	}
	return "", false
}

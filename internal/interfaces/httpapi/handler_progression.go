package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/scoutschool/daily-shift/internal/domain/progression"
	"github.com/scoutschool/daily-shift/internal/usecase"
)

type setFavoriteRequest struct {
	Team string `json:"team" validate:"required"`
}

type startPhaseRequest struct {
	Phase string `json:"phase" validate:"required"`
}

type phaseResultRequest struct {
	Correct int `json:"correct" validate:"gte=0"`
	Total   int `json:"total" validate:"gt=0,gtefield=Correct"`
}

type placeGoalieRequest struct {
	Role   string `json:"role" validate:"required,oneof=starter backup"`
	Goalie string `json:"goalie" validate:"required"`
}

func (h *Handler) GetProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProgression")
	defer span.End()

	state, err := h.progressionService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get progression failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, progressionStateToDTO(state))
}

func (h *Handler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetFavorite")
	defer span.End()

	var req setFavoriteRequest
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

	state, err := h.progressionService.SetFavorite(ctx, strings.ToUpper(strings.TrimSpace(req.Team)))
	if err != nil {
		h.logger.WarnContext(ctx, "set favorite team failed", "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, progressionStateToDTO(state))
}

func (h *Handler) StartPhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartPhase")
	defer span.End()

	var req startPhaseRequest
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

	phase, ok := parsePhase(req.Phase)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown phase %q", usecase.ErrInvalidInput, req.Phase))
		return
	}

	teamAbbr := strings.ToUpper(strings.TrimSpace(r.PathValue("team")))
	start, err := h.progressionService.StartPhase(ctx, teamAbbr, phase)
	if err != nil {
		h.logger.WarnContext(ctx, "start phase failed", "team", teamAbbr, "phase", phase.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, phaseStartToDTO(start))
}

func (h *Handler) SubmitPhaseResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPhaseResult")
	defer span.End()

	var req phaseResultRequest
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

	teamAbbr := strings.ToUpper(strings.TrimSpace(r.PathValue("team")))
	outcome, err := h.progressionService.SubmitPhaseResult(ctx, teamAbbr, req.Correct, req.Total)
	if err != nil {
		h.logger.WarnContext(ctx, "submit phase result failed", "team", teamAbbr, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, phaseOutcomeToDTO(outcome))
}

func (h *Handler) PlaceGoalie(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlaceGoalie")
	defer span.End()

	var req placeGoalieRequest
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

	teamAbbr := strings.ToUpper(strings.TrimSpace(r.PathValue("team")))
	outcome, err := h.progressionService.PlaceGoalie(ctx, teamAbbr, req.Role, req.Goalie)
	if err != nil {
		h.logger.WarnContext(ctx, "place goalie failed", "team", teamAbbr, "role", req.Role, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tandemOutcomeToDTO(outcome))
}

func parsePhase(raw string) (progression.Phase, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "identify":
		return progression.PhaseIdentify, true
	case "evaluate":
		return progression.PhaseEvaluate, true
	case "construct":
		return progression.PhaseConstruct, true
	case "tandem":
		return progression.PhaseTandem, true
	default:
		return progression.PhaseIdle, false
	}
}

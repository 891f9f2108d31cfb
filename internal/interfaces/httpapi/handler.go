package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/scoutschool/daily-shift/internal/platform/logging"
	"github.com/scoutschool/daily-shift/internal/usecase"
)

type Handler struct {
	teamService        *usecase.TeamService
	questionService    *usecase.QuestionService
	scoringService     *usecase.ScoringService
	progressionService *usecase.ProgressionService
	dailyService       *usecase.DailyService
	sessionService     *usecase.SessionService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	questionService *usecase.QuestionService,
	scoringService *usecase.ScoringService,
	progressionService *usecase.ProgressionService,
	dailyService *usecase.DailyService,
	sessionService *usecase.SessionService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:        teamService,
		questionService:    questionService,
		scoringService:     scoringService,
		progressionService: progressionService,
		dailyService:       dailyService,
		sessionService:     sessionService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamViewToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	teamAbbr := strings.ToUpper(strings.TrimSpace(r.PathValue("team")))
	view, err := h.teamService.Roster(ctx, teamAbbr)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "team", teamAbbr, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterViewToDTO(view))
}

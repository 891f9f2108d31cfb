package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/scoutschool/daily-shift/internal/domain/team"
	"github.com/scoutschool/daily-shift/internal/platform/logging"
)

const defaultWarmupWorkers = 8

// WarmupInput bounds the startup validation pass.
type WarmupInput struct {
	MaxWorkers int
}

// WarmupResult summarizes per-team dataset readiness.
type WarmupResult struct {
	TeamCount   int              `json:"team_count"`
	ReadyCount  int              `json:"ready_count"`
	ThinCount   int              `json:"thin_count"`
	FailedCount int              `json:"failed_count"`
	WorkerCount int              `json:"worker_count"`
	Teams       []WarmupTeamCheck `json:"teams"`
	DurationMs  int64            `json:"duration_ms"`
}

// WarmupTeamCheck is one team's readiness row.
type WarmupTeamCheck struct {
	TeamAbbr   string `json:"team_abbr"`
	Skaters    int    `json:"skaters"`
	Goalies    int    `json:"goalies"`
	HasLines   bool   `json:"has_lines"`
	HasTandem  bool   `json:"has_tandem"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

const (
	warmupStatusReady  = "ready"
	warmupStatusThin   = "thin"
	warmupStatusFailed = "failed"
)

// WarmupService fans the per-team dataset checks over a worker pool at
// startup, so thin rosters surface in logs before a player ever hits
// an ErrInsufficientPool mid-session.
type WarmupService struct {
	teamRepo  team.Repository
	questions *QuestionService
	logger    *logging.Logger
}

func NewWarmupService(teamRepo team.Repository, questions *QuestionService, logger *logging.Logger) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmupService{
		teamRepo:  teamRepo,
		questions: questions,
		logger:    logger,
	}
}

// Run validates every team's pool concurrently and reports readiness.
func (s *WarmupService) Run(ctx context.Context, input WarmupInput) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "WarmupService.Run")
	defer span.End()

	start := time.Now()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("list teams for warmup: %w", err)
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = defaultWarmupWorkers
	}
	if workerCount > len(teams) && len(teams) > 0 {
		workerCount = len(teams)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	checks := make([]WarmupTeamCheck, len(teams))
	var readyCount, thinCount, failedCount atomic.Int32

	var workers sync.WaitGroup
	for i, t := range teams {
		i, t := i, t
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			taskStart := time.Now()
			check := s.checkTeam(ctx, t.Abbr)
			check.DurationMs = time.Since(taskStart).Milliseconds()
			checks[i] = check

			switch check.Status {
			case warmupStatusReady:
				readyCount.Add(1)
			case warmupStatusThin:
				thinCount.Add(1)
				s.logger.WarnContext(ctx, "team pool is thin", "team", t.Abbr, "message", check.Message)
			default:
				failedCount.Add(1)
				s.logger.ErrorContext(ctx, "team warmup check failed", "team", t.Abbr, "message", check.Message)
			}
		}); err != nil {
			workers.Done()
			failedCount.Add(1)
			checks[i] = WarmupTeamCheck{TeamAbbr: t.Abbr, Status: warmupStatusFailed, Message: err.Error()}
		}
	}
	workers.Wait()

	result := WarmupResult{
		TeamCount:   len(teams),
		ReadyCount:  int(readyCount.Load()),
		ThinCount:   int(thinCount.Load()),
		FailedCount: int(failedCount.Load()),
		WorkerCount: workerCount,
		Teams:       checks,
		DurationMs:  time.Since(start).Milliseconds(),
	}

	s.logger.InfoContext(ctx, "dataset warmup finished",
		"teams", result.TeamCount,
		"ready", result.ReadyCount,
		"thin", result.ThinCount,
		"failed", result.FailedCount,
		"duration_ms", result.DurationMs,
	)

	return result, nil
}

func (s *WarmupService) checkTeam(ctx context.Context, teamAbbr string) WarmupTeamCheck {
	check := WarmupTeamCheck{TeamAbbr: teamAbbr, Status: warmupStatusReady}

	players, err := s.questions.playerRepo.ListByTeam(ctx, teamAbbr)
	if err != nil {
		check.Status = warmupStatusFailed
		check.Message = err.Error()
		return check
	}
	for _, p := range players {
		if p.IsGoalie() {
			check.Goalies++
		} else {
			check.Skaters++
		}
	}
	check.HasTandem = check.Goalies >= 2

	structure, found, err := s.questions.rosterRepo.GetByTeam(ctx, teamAbbr)
	if err != nil {
		check.Status = warmupStatusFailed
		check.Message = err.Error()
		return check
	}
	check.HasLines = found
	if found {
		if err := structure.Validate(); err != nil {
			check.Status = warmupStatusFailed
			check.Message = err.Error()
			return check
		}
	}

	switch {
	case check.Skaters < PhaseBatchSize:
		check.Status = warmupStatusThin
		check.Message = fmt.Sprintf("%d skaters cannot fill a %d-question phase batch", check.Skaters, PhaseBatchSize)
	case !found:
		check.Status = warmupStatusThin
		check.Message = "no line structure; construction phase unavailable"
	case !check.HasTandem:
		// A single-goalie team is still playable, the tandem phase
		// just gets skipped.
		check.Message = fmt.Sprintf("%d goalies, tandem phase will be skipped", check.Goalies)
	}

	return check
}

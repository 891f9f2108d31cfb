package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/scoutschool/daily-shift/internal/domain/progression"
	"github.com/scoutschool/daily-shift/internal/domain/question"
	"github.com/scoutschool/daily-shift/internal/domain/team"
)

const (
	// PhaseBatchSize is the question count for the identify and
	// evaluate phases.
	PhaseBatchSize = 5

	phaseIdentifyThreshold  = 0.8
	phaseEvaluateThreshold  = 0.8
	phaseConstructThreshold = 1.0

	TandemRoleStarter = "starter"
	TandemRoleBackup  = "backup"
)

// PhaseStart is the material handed to the rendering layer when a phase
// batch begins: a question batch for identify/evaluate, a tandem task
// for the goalie phase, nothing extra for construction.
type PhaseStart struct {
	Team      string
	Phase     progression.Phase
	Questions []question.Question
	Tandem    *question.TandemTask
}

// PhaseOutcome reports the transition taken after a phase result.
type PhaseOutcome struct {
	Team         string
	Phase        progression.Phase
	Accuracy     float64
	Advanced     bool
	NextPhase    progression.Phase
	Mastered     bool
	UnlockedTeam string
}

// TandemOutcome reports the continuous completion check after a goalie
// placement.
type TandemOutcome struct {
	Complete     bool
	Mastered     bool
	UnlockedTeam string
}

// ProgressionService drives the per-team mastery ladder: identify,
// evaluate, construct, then the optional goalie tandem. State changes
// persist immediately through the progression repository.
type ProgressionService struct {
	progressRepo progression.Repository
	teamRepo     team.Repository
	questions    *QuestionService

	mu         sync.Mutex
	placements map[string]map[string]string
}

func NewProgressionService(progressRepo progression.Repository, teamRepo team.Repository, questions *QuestionService) *ProgressionService {
	return &ProgressionService{
		progressRepo: progressRepo,
		teamRepo:     teamRepo,
		questions:    questions,
		placements:   make(map[string]map[string]string),
	}
}

func (s *ProgressionService) Get(ctx context.Context) (progression.State, error) {
	ctx, span := startUsecaseSpan(ctx, "ProgressionService.Get")
	defer span.End()

	state, err := s.progressRepo.Get(ctx)
	if err != nil {
		return progression.State{}, fmt.Errorf("get progression state: %w", err)
	}

	return state, nil
}

// SetFavorite changes the favorite team and implicitly unlocks it.
func (s *ProgressionService) SetFavorite(ctx context.Context, teamAbbr string) (progression.State, error) {
	ctx, span := startUsecaseSpan(ctx, "ProgressionService.SetFavorite")
	defer span.End()

	teamAbbr = strings.ToUpper(strings.TrimSpace(teamAbbr))
	if teamAbbr == "" {
		return progression.State{}, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}
	if _, found, err := s.teamRepo.GetByAbbr(ctx, teamAbbr); err != nil {
		return progression.State{}, fmt.Errorf("look up favorite team: %w", err)
	} else if !found {
		return progression.State{}, fmt.Errorf("%w: unknown team %s", ErrNotFound, teamAbbr)
	}

	state, err := s.progressRepo.Get(ctx)
	if err != nil {
		return progression.State{}, fmt.Errorf("get progression state: %w", err)
	}

	state.FavoriteTeam = teamAbbr
	state.Unlock(teamAbbr)
	if err := s.progressRepo.Save(ctx, state); err != nil {
		return progression.State{}, fmt.Errorf("save progression state: %w", err)
	}

	return state, nil
}

// StartPhase begins a phase for a team. Identify and evaluate return a
// fresh question batch; the tandem phase returns the placement task.
// Starting any phase resets the in-flight counters.
func (s *ProgressionService) StartPhase(ctx context.Context, teamAbbr string, phase progression.Phase) (PhaseStart, error) {
	ctx, span := startUsecaseSpan(ctx, "ProgressionService.StartPhase")
	defer span.End()

	teamAbbr = strings.ToUpper(strings.TrimSpace(teamAbbr))
	if teamAbbr == "" {
		return PhaseStart{}, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}
	if phase < progression.PhaseIdentify || phase > progression.PhaseTandem {
		return PhaseStart{}, fmt.Errorf("%w: phase %s cannot be started", ErrInvalidInput, phase)
	}

	state, err := s.progressRepo.Get(ctx)
	if err != nil {
		return PhaseStart{}, fmt.Errorf("get progression state: %w", err)
	}
	if !state.IsUnlocked(teamAbbr) {
		return PhaseStart{}, fmt.Errorf("%w: team %s is locked", ErrInvalidInput, teamAbbr)
	}
	if state.IsMastered(teamAbbr) {
		return PhaseStart{}, fmt.Errorf("%w: team %s is already mastered", ErrInvalidInput, teamAbbr)
	}

	start := PhaseStart{Team: teamAbbr, Phase: phase}
	switch phase {
	case progression.PhaseIdentify, progression.PhaseEvaluate:
		batch, err := s.questions.PhaseBatch(ctx, teamAbbr, int(phase), PhaseBatchSize)
		if err != nil {
			return PhaseStart{}, err
		}
		start.Questions = batch
	case progression.PhaseConstruct:
		// Construction hands the rendering layer nothing extra; the
		// roster endpoint supplies the pool.
	case progression.PhaseTandem:
		task, err := s.questions.Tandem(ctx, teamAbbr)
		if err != nil {
			return PhaseStart{}, err
		}
		start.Tandem = &task
	}

	state.CurrentTeam = teamAbbr
	state.CurrentPhase = phase
	state.ResetPhaseCounters()
	if err := s.progressRepo.Save(ctx, state); err != nil {
		return PhaseStart{}, fmt.Errorf("save progression state: %w", err)
	}

	s.mu.Lock()
	delete(s.placements, teamAbbr)
	s.mu.Unlock()

	return start, nil
}

// SubmitPhaseResult applies a finished batch to the state machine.
// Falling short of the phase threshold routes back to a retry of the
// same phase with counters reset; partial progress never carries over.
func (s *ProgressionService) SubmitPhaseResult(ctx context.Context, teamAbbr string, correct, total int) (PhaseOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "ProgressionService.SubmitPhaseResult")
	defer span.End()

	teamAbbr = strings.ToUpper(strings.TrimSpace(teamAbbr))
	if total <= 0 || correct < 0 || correct > total {
		return PhaseOutcome{}, fmt.Errorf("%w: result %d/%d is invalid", ErrInvalidInput, correct, total)
	}

	state, err := s.progressRepo.Get(ctx)
	if err != nil {
		return PhaseOutcome{}, fmt.Errorf("get progression state: %w", err)
	}
	if state.CurrentTeam != teamAbbr {
		return PhaseOutcome{}, fmt.Errorf("%w: no phase in progress for team %s", ErrInvalidInput, teamAbbr)
	}
	phase := state.CurrentPhase
	if phase < progression.PhaseIdentify || phase > progression.PhaseConstruct {
		return PhaseOutcome{}, fmt.Errorf("%w: phase %s takes no batch result", ErrInvalidInput, phase)
	}

	accuracy := float64(correct) / float64(total)
	outcome := PhaseOutcome{
		Team:     teamAbbr,
		Phase:    phase,
		Accuracy: accuracy,
	}

	if accuracy < s.threshold(phase) {
		state.ResetPhaseCounters()
		outcome.NextPhase = phase
		if err := s.progressRepo.Save(ctx, state); err != nil {
			return PhaseOutcome{}, fmt.Errorf("save progression state: %w", err)
		}
		return outcome, nil
	}

	outcome.Advanced = true
	state.PhaseProgress = total
	state.PhaseCorrect = correct

	switch phase {
	case progression.PhaseIdentify:
		state.CurrentPhase = progression.PhaseEvaluate
	case progression.PhaseEvaluate:
		state.CurrentPhase = progression.PhaseConstruct
	case progression.PhaseConstruct:
		// Teams without a real tandem skip the goalie phase entirely.
		if s.hasTandem(ctx, teamAbbr) {
			state.CurrentPhase = progression.PhaseTandem
		} else {
			unlocked, err := s.master(ctx, &state, teamAbbr)
			if err != nil {
				return PhaseOutcome{}, err
			}
			outcome.Mastered = true
			outcome.UnlockedTeam = unlocked
		}
	}
	outcome.NextPhase = state.CurrentPhase

	if err := s.progressRepo.Save(ctx, state); err != nil {
		return PhaseOutcome{}, fmt.Errorf("save progression state: %w", err)
	}

	return outcome, nil
}

// PlaceGoalie records one starter/backup placement and immediately
// re-checks the tandem: completion is detected, never submitted.
func (s *ProgressionService) PlaceGoalie(ctx context.Context, teamAbbr, role, goalieName string) (TandemOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "ProgressionService.PlaceGoalie")
	defer span.End()

	teamAbbr = strings.ToUpper(strings.TrimSpace(teamAbbr))
	role = strings.ToLower(strings.TrimSpace(role))
	goalieName = strings.TrimSpace(goalieName)
	if role != TandemRoleStarter && role != TandemRoleBackup {
		return TandemOutcome{}, fmt.Errorf("%w: role must be %s or %s", ErrInvalidInput, TandemRoleStarter, TandemRoleBackup)
	}
	if goalieName == "" {
		return TandemOutcome{}, fmt.Errorf("%w: goalie name is required", ErrInvalidInput)
	}

	state, err := s.progressRepo.Get(ctx)
	if err != nil {
		return TandemOutcome{}, fmt.Errorf("get progression state: %w", err)
	}
	if state.CurrentTeam != teamAbbr || state.CurrentPhase != progression.PhaseTandem {
		return TandemOutcome{}, fmt.Errorf("%w: no tandem in progress for team %s", ErrInvalidInput, teamAbbr)
	}

	task, err := s.questions.Tandem(ctx, teamAbbr)
	if err != nil {
		return TandemOutcome{}, err
	}
	known := false
	for _, name := range task.Goalies {
		if name == goalieName {
			known = true
			break
		}
	}
	if !known {
		return TandemOutcome{}, fmt.Errorf("%w: %s is not a %s goalie", ErrInvalidInput, goalieName, teamAbbr)
	}

	s.mu.Lock()
	if s.placements[teamAbbr] == nil {
		s.placements[teamAbbr] = make(map[string]string, 2)
	}
	s.placements[teamAbbr][role] = goalieName
	starter := s.placements[teamAbbr][TandemRoleStarter]
	backup := s.placements[teamAbbr][TandemRoleBackup]
	s.mu.Unlock()

	if starter != task.Starter || backup != task.Backup {
		return TandemOutcome{}, nil
	}

	unlocked, err := s.master(ctx, &state, teamAbbr)
	if err != nil {
		return TandemOutcome{}, err
	}
	state.ResetPhaseCounters()
	if err := s.progressRepo.Save(ctx, state); err != nil {
		return TandemOutcome{}, fmt.Errorf("save progression state: %w", err)
	}

	s.mu.Lock()
	delete(s.placements, teamAbbr)
	s.mu.Unlock()

	return TandemOutcome{Complete: true, Mastered: true, UnlockedTeam: unlocked}, nil
}

func (s *ProgressionService) threshold(phase progression.Phase) float64 {
	switch phase {
	case progression.PhaseIdentify:
		return phaseIdentifyThreshold
	case progression.PhaseEvaluate:
		return phaseEvaluateThreshold
	default:
		return phaseConstructThreshold
	}
}

func (s *ProgressionService) hasTandem(ctx context.Context, teamAbbr string) bool {
	_, err := s.questions.Tandem(ctx, teamAbbr)
	return err == nil
}

// master records mastery and then decides the unlock: the mastered set
// must already contain the team when the next-team scan runs. Returns
// the abbreviation of the team unlocked by this mastery, if any.
func (s *ProgressionService) master(ctx context.Context, state *progression.State, teamAbbr string) (string, error) {
	firstMastery := state.Master(teamAbbr)
	state.CurrentPhase = progression.PhaseMastered
	if !firstMastery {
		return "", nil
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list teams for unlock: %w", err)
	}
	abbrs := make([]string, 0, len(teams))
	for _, t := range teams {
		abbrs = append(abbrs, t.Abbr)
	}
	sort.Strings(abbrs)

	idx := sort.SearchStrings(abbrs, teamAbbr)
	if idx >= len(abbrs) || abbrs[idx] != teamAbbr {
		return "", nil
	}

	// Next unmastered team alphabetically, wrapping around.
	for step := 1; step < len(abbrs); step++ {
		candidate := abbrs[(idx+step)%len(abbrs)]
		if state.IsMastered(candidate) {
			continue
		}
		if state.Unlock(candidate) {
			return candidate, nil
		}
		return "", nil
	}

	return "", nil
}

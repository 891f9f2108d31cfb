package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/question"
	"github.com/scoutschool/daily-shift/internal/domain/roster"
	"github.com/scoutschool/daily-shift/internal/domain/scoring"
)

// ScoreInput is one correct/total pair plus timing, the shared shape for
// trivia batches and constructed lineups.
type ScoreInput struct {
	Correct          int
	Total            int
	TimeRemaining    float64
	TimeLimit        float64
	PointsPerCorrect int
	Timed            bool
}

// ScoreLineupInput scores a constructed lineup against a team's answer key.
type ScoreLineupInput struct {
	TeamAbbr      string
	LineCount     int
	Lineup        *roster.UserLineup
	TimeRemaining float64
	TimeLimit     float64
	Timed         bool
}

type ScoringService struct {
	rosterRepo roster.Repository
	playerRepo player.Repository
}

func NewScoringService(rosterRepo roster.Repository, playerRepo player.Repository) *ScoringService {
	return &ScoringService{
		rosterRepo: rosterRepo,
		playerRepo: playerRepo,
	}
}

// Score applies the shared formula: accuracy times base points, times
// one plus the unused-time fraction in timed modes.
func (s *ScoringService) Score(ctx context.Context, input ScoreInput) (scoring.Result, error) {
	_, span := startUsecaseSpan(ctx, "ScoringService.Score")
	defer span.End()

	if input.Total < 0 || input.Correct < 0 || input.Correct > input.Total {
		return scoring.Result{}, fmt.Errorf("%w: correct/total pair %d/%d is invalid", ErrInvalidInput, input.Correct, input.Total)
	}
	if input.PointsPerCorrect <= 0 {
		input.PointsPerCorrect = scoring.PointsPerTriviaQuestion
	}
	if input.TimeLimit <= 0 {
		input.TimeLimit = scoring.DefaultTimeLimitSeconds
	}

	accuracy := 0.0
	if input.Total > 0 {
		accuracy = float64(input.Correct) / float64(input.Total)
	}

	speedBonus := 0.0
	if input.Timed {
		speedBonus = math.Max(0, input.TimeRemaining) / input.TimeLimit
		if speedBonus > 1 {
			speedBonus = 1
		}
	}

	base := float64(input.Total) * float64(input.PointsPerCorrect) * accuracy

	return scoring.Result{
		Correct:    input.Correct,
		Total:      input.Total,
		Accuracy:   accuracy,
		SpeedBonus: speedBonus,
		BaseScore:  base,
		FinalScore: int(math.Round(base * (1 + speedBonus))),
	}, nil
}

// EvaluateBatch grades submitted answers against a question batch and
// records a mistake for every wrong or blank answer. Comparison is by
// option value; a short answer slice counts the missing tail as blanks.
func (s *ScoringService) EvaluateBatch(ctx context.Context, questions []question.Question, answers []string) (int, []question.Mistake, error) {
	_, span := startUsecaseSpan(ctx, "ScoringService.EvaluateBatch")
	defer span.End()

	if len(questions) == 0 {
		return 0, nil, fmt.Errorf("%w: empty question batch", ErrInvalidInput)
	}
	if len(answers) > len(questions) {
		return 0, nil, fmt.Errorf("%w: %d answers for %d questions", ErrInvalidInput, len(answers), len(questions))
	}

	correct := 0
	var mistakes []question.Mistake
	for i, q := range questions {
		submitted := ""
		if i < len(answers) {
			submitted = strings.TrimSpace(answers[i])
		}
		if submitted == q.Answer {
			correct++
			continue
		}
		mistakes = append(mistakes, question.Mistake{
			Location:  fmt.Sprintf("Question %d (%s)", i+1, q.Kind),
			Submitted: submitted,
			Correct:   q.Answer,
			Debrief:   q.Debrief,
		})
	}

	return correct, mistakes, nil
}

// ScoreBatch grades and scores a trivia batch in one step.
func (s *ScoringService) ScoreBatch(ctx context.Context, questions []question.Question, answers []string, timeRemaining float64, timed bool) (scoring.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "ScoringService.ScoreBatch")
	defer span.End()

	correct, mistakes, err := s.EvaluateBatch(ctx, questions, answers)
	if err != nil {
		return scoring.Result{}, err
	}

	result, err := s.Score(ctx, ScoreInput{
		Correct:          correct,
		Total:            len(questions),
		TimeRemaining:    timeRemaining,
		PointsPerCorrect: scoring.PointsPerTriviaQuestion,
		Timed:            timed,
	})
	if err != nil {
		return scoring.Result{}, err
	}
	result.Mistakes = mistakes

	return result, nil
}

// ScoreLineup compares a constructed lineup slot-by-slot against the
// team's line structure. Identity is the player name: placed and
// answer-key records come from differently normalized sources, so
// record equality would be wrong here.
func (s *ScoringService) ScoreLineup(ctx context.Context, input ScoreLineupInput) (scoring.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "ScoringService.ScoreLineup")
	defer span.End()

	input.TeamAbbr = strings.ToUpper(strings.TrimSpace(input.TeamAbbr))
	if input.TeamAbbr == "" {
		return scoring.Result{}, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}
	if input.Lineup == nil {
		return scoring.Result{}, fmt.Errorf("%w: lineup is required", ErrInvalidInput)
	}

	structure, found, err := s.rosterRepo.GetByTeam(ctx, input.TeamAbbr)
	if err != nil {
		return scoring.Result{}, fmt.Errorf("get line structure: %w", err)
	}
	if !found {
		return scoring.Result{}, fmt.Errorf("%w: no line structure for team %s", ErrNotFound, input.TeamAbbr)
	}

	lineCount := input.LineCount
	if lineCount <= 0 || lineCount > len(structure.Lines) {
		lineCount = len(structure.Lines)
	}

	traits, err := s.traitIndex(ctx, input.TeamAbbr)
	if err != nil {
		return scoring.Result{}, err
	}

	correct := 0
	total := 0
	var mistakes []question.Mistake
	for _, line := range structure.Lines {
		if line.Number > lineCount {
			continue
		}
		for _, slot := range roster.LineSlots {
			total++
			want := line.Slots[slot].PlayerName
			got := input.Lineup.At(line.Number, slot)
			if got == want {
				correct++
				continue
			}
			mistakes = append(mistakes, question.Mistake{
				Location:  fmt.Sprintf("Line %d %s", line.Number, slot),
				Submitted: got,
				Correct:   want,
				Debrief:   question.Debrief{PlayerName: want, Trait: traits[want]},
			})
		}
	}

	result, err := s.Score(ctx, ScoreInput{
		Correct:          correct,
		Total:            total,
		TimeRemaining:    input.TimeRemaining,
		TimeLimit:        input.TimeLimit,
		PointsPerCorrect: scoring.PointsPerLineupSlot,
		Timed:            input.Timed,
	})
	if err != nil {
		return scoring.Result{}, err
	}
	result.Mistakes = mistakes

	return result, nil
}

func (s *ScoringService) traitIndex(ctx context.Context, teamAbbr string) (map[string]string, error) {
	players, err := s.playerRepo.ListByTeam(ctx, teamAbbr)
	if err != nil {
		return nil, fmt.Errorf("list team players for traits: %w", err)
	}

	traits := make(map[string]string, len(players))
	for _, p := range players {
		traits[p.Name] = p.UniqueTrait
	}

	return traits, nil
}

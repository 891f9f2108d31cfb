package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/scoutschool/daily-shift/internal/domain/progression"
	"github.com/scoutschool/daily-shift/internal/domain/scoring"
)

const dateKeyLayout = "2006-01-02"

// CompleteDailyInput carries the finished run: answers in question
// order (short slices count the tail as blanks) and wall-clock seconds
// spent before submission or timeout.
type CompleteDailyInput struct {
	Answers     []string
	TimeElapsed int
}

// DailyResult bundles everything the debrief screen needs.
type DailyResult struct {
	Record progression.DailyRecord
	Score  scoring.Result
	Stats  scoring.Stats
}

// DailyService owns the once-per-day challenge: generation is gated by
// the stored record, completion updates high score and streak.
type DailyService struct {
	dailyRepo progression.DailyRepository
	statsRepo scoring.StatsRepository
	questions *QuestionService
	scorer    *ScoringService
	now       func() time.Time
}

func NewDailyService(dailyRepo progression.DailyRepository, statsRepo scoring.StatsRepository, questions *QuestionService, scorer *ScoringService) *DailyService {
	return &DailyService{
		dailyRepo: dailyRepo,
		statsRepo: statsRepo,
		questions: questions,
		scorer:    scorer,
		now:       time.Now,
	}
}

// Start returns today's challenge record, generating and persisting it
// on the first call of the day. Later calls on the same date return the
// stored record unchanged, completed or not; a finished day is never
// regenerated.
func (s *DailyService) Start(ctx context.Context) (progression.DailyRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "DailyService.Start")
	defer span.End()

	today := s.now()
	key := today.Format(dateKeyLayout)

	record, found, err := s.dailyRepo.GetByDate(ctx, key)
	if err != nil {
		return progression.DailyRecord{}, fmt.Errorf("get daily record: %w", err)
	}
	if found {
		return record, nil
	}

	questions, err := s.questions.Daily(ctx, today)
	if err != nil {
		return progression.DailyRecord{}, err
	}

	record = progression.DailyRecord{
		DateKey:   key,
		Questions: questions,
	}
	if err := s.dailyRepo.Save(ctx, record); err != nil {
		return progression.DailyRecord{}, fmt.Errorf("save daily record: %w", err)
	}

	return record, nil
}

// Complete grades today's run, persists the finished record, and folds
// the score into the cumulative stats. A day already completed returns
// ErrChallengeCompleted and mutates nothing.
func (s *DailyService) Complete(ctx context.Context, input CompleteDailyInput) (DailyResult, error) {
	ctx, span := startUsecaseSpan(ctx, "DailyService.Complete")
	defer span.End()

	if input.TimeElapsed < 0 {
		return DailyResult{}, fmt.Errorf("%w: negative elapsed time", ErrInvalidInput)
	}
	if input.TimeElapsed > scoring.DefaultTimeLimitSeconds {
		input.TimeElapsed = scoring.DefaultTimeLimitSeconds
	}

	key := s.now().Format(dateKeyLayout)
	record, found, err := s.dailyRepo.GetByDate(ctx, key)
	if err != nil {
		return DailyResult{}, fmt.Errorf("get daily record: %w", err)
	}
	if !found {
		return DailyResult{}, fmt.Errorf("%w: no challenge started for %s", ErrNotFound, key)
	}
	if record.Completed {
		return DailyResult{}, fmt.Errorf("%w: %s", ErrChallengeCompleted, key)
	}

	correct, mistakes, err := s.scorer.EvaluateBatch(ctx, record.Questions, input.Answers)
	if err != nil {
		return DailyResult{}, err
	}
	result, err := s.scorer.Score(ctx, ScoreInput{
		Correct:          correct,
		Total:            len(record.Questions),
		TimeRemaining:    float64(scoring.DefaultTimeLimitSeconds - input.TimeElapsed),
		PointsPerCorrect: scoring.PointsPerTriviaQuestion,
		Timed:            true,
	})
	if err != nil {
		return DailyResult{}, err
	}
	result.Mistakes = mistakes

	record.Completed = true
	record.FinalScore = result.FinalScore
	record.FinalCorrect = result.Correct
	record.Mistakes = mistakes
	record.TimeElapsed = input.TimeElapsed
	if err := s.dailyRepo.Save(ctx, record); err != nil {
		return DailyResult{}, fmt.Errorf("save daily record: %w", err)
	}

	stats, err := s.updateStats(ctx, key, result)
	if err != nil {
		return DailyResult{}, err
	}

	return DailyResult{Record: record, Score: result, Stats: stats}, nil
}

// Stats returns the cumulative stats record.
func (s *DailyService) Stats(ctx context.Context) (scoring.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "DailyService.Stats")
	defer span.End()

	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		return scoring.Stats{}, fmt.Errorf("get stats: %w", err)
	}

	return stats, nil
}

// updateStats applies the streak rules: a perfect shift the calendar
// day after the last played date extends the streak, a perfect shift
// after a gap starts a new one, anything less breaks it. The streak and
// last-played date only move once per day.
func (s *DailyService) updateStats(ctx context.Context, dateKey string, result scoring.Result) (scoring.Stats, error) {
	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		return scoring.Stats{}, fmt.Errorf("get stats: %w", err)
	}

	if result.FinalScore > stats.HighScore {
		stats.HighScore = result.FinalScore
	}
	stats.TotalScore += result.FinalScore

	streak := stats.CurrentStreak
	if result.Perfect() {
		if stats.LastPlayedDate == previousDateKey(dateKey) {
			streak++
		} else if stats.LastPlayedDate != dateKey {
			streak = 1
		}
	} else {
		streak = 0
	}

	if stats.LastPlayedDate != dateKey {
		stats.CurrentStreak = streak
		stats.LastPlayedDate = dateKey
	}

	if err := s.statsRepo.Save(ctx, stats); err != nil {
		return scoring.Stats{}, fmt.Errorf("save stats: %w", err)
	}

	return stats, nil
}

func previousDateKey(dateKey string) string {
	day, err := time.Parse(dateKeyLayout, dateKey)
	if err != nil {
		return ""
	}
	return day.AddDate(0, 0, -1).Format(dateKeyLayout)
}

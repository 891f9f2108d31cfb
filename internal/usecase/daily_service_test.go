package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/scoutschool/daily-shift/internal/infrastructure/repository/memory"
)

func newSeededDailyService() *DailyService {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	rosterRepo := memory.NewRosterRepository(memory.SeedLineStructures())

	questions := NewQuestionService(playerRepo, rosterRepo)
	scorer := NewScoringService(rosterRepo, playerRepo)

	return NewDailyService(memory.NewDailyRepository(), memory.NewStatsRepository(), questions, scorer)
}

func fixDailyClock(svc *DailyService, day time.Time) {
	svc.now = func() time.Time { return day }
}

func perfectAnswers(svc *DailyService, t *testing.T) []string {
	t.Helper()

	record, err := svc.Start(t.Context())
	if err != nil {
		t.Fatalf("start daily failed: %v", err)
	}
	answers := make([]string, 0, len(record.Questions))
	for _, q := range record.Questions {
		answers = append(answers, q.Answer)
	}

	return answers
}

func TestDailyService_Start_ReturnsStoredRecord(t *testing.T) {
	svc := newSeededDailyService()
	fixDailyClock(svc, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	first, err := svc.Start(t.Context())
	if err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	if first.DateKey != "2026-03-14" {
		t.Fatalf("unexpected date key: %s", first.DateKey)
	}
	if len(first.Questions) != 10 {
		t.Fatalf("unexpected question count: %d", len(first.Questions))
	}

	second, err := svc.Start(t.Context())
	if err != nil {
		t.Fatalf("second start failed: %v", err)
	}
	for i := range first.Questions {
		if first.Questions[i].Prompt != second.Questions[i].Prompt {
			t.Fatalf("question %d regenerated between starts", i)
		}
	}
}

func TestDailyService_Complete_PerfectRun(t *testing.T) {
	svc := newSeededDailyService()
	fixDailyClock(svc, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	answers := perfectAnswers(svc, t)
	result, err := svc.Complete(t.Context(), CompleteDailyInput{Answers: answers, TimeElapsed: 30})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	// 10 correct at 100 points with half the clock left: 1000 * 1.5.
	if result.Score.FinalScore != 1500 {
		t.Fatalf("unexpected final score: %d", result.Score.FinalScore)
	}
	if !result.Record.Completed {
		t.Fatal("record should be marked completed")
	}
	if result.Record.TimeElapsed != 30 {
		t.Fatalf("unexpected elapsed time: %d", result.Record.TimeElapsed)
	}
	if result.Stats.HighScore != 1500 || result.Stats.TotalScore != 1500 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
	if result.Stats.CurrentStreak != 1 {
		t.Fatalf("first perfect day should start a streak, got %d", result.Stats.CurrentStreak)
	}
	if result.Stats.LastPlayedDate != "2026-03-14" {
		t.Fatalf("unexpected last played date: %s", result.Stats.LastPlayedDate)
	}
}

func TestDailyService_Complete_Twice(t *testing.T) {
	svc := newSeededDailyService()
	fixDailyClock(svc, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	answers := perfectAnswers(svc, t)
	if _, err := svc.Complete(t.Context(), CompleteDailyInput{Answers: answers, TimeElapsed: 20}); err != nil {
		t.Fatalf("first complete failed: %v", err)
	}

	_, err := svc.Complete(t.Context(), CompleteDailyInput{Answers: answers, TimeElapsed: 20})
	if !errors.Is(err, ErrChallengeCompleted) {
		t.Fatalf("expected ErrChallengeCompleted, got %v", err)
	}
}

func TestDailyService_Complete_NotStarted(t *testing.T) {
	svc := newSeededDailyService()
	fixDailyClock(svc, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	_, err := svc.Complete(t.Context(), CompleteDailyInput{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDailyService_StreakExtendsAcrossConsecutiveDays(t *testing.T) {
	svc := newSeededDailyService()

	fixDailyClock(svc, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	answers := perfectAnswers(svc, t)
	if _, err := svc.Complete(t.Context(), CompleteDailyInput{Answers: answers, TimeElapsed: 10}); err != nil {
		t.Fatalf("day one complete failed: %v", err)
	}

	fixDailyClock(svc, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	answers = perfectAnswers(svc, t)
	result, err := svc.Complete(t.Context(), CompleteDailyInput{Answers: answers, TimeElapsed: 10})
	if err != nil {
		t.Fatalf("day two complete failed: %v", err)
	}
	if result.Stats.CurrentStreak != 2 {
		t.Fatalf("consecutive perfect days should extend the streak, got %d", result.Stats.CurrentStreak)
	}
}

func TestDailyService_StreakResetsAfterGap(t *testing.T) {
	svc := newSeededDailyService()

	fixDailyClock(svc, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	answers := perfectAnswers(svc, t)
	if _, err := svc.Complete(t.Context(), CompleteDailyInput{Answers: answers, TimeElapsed: 10}); err != nil {
		t.Fatalf("day one complete failed: %v", err)
	}

	fixDailyClock(svc, time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC))
	answers = perfectAnswers(svc, t)
	result, err := svc.Complete(t.Context(), CompleteDailyInput{Answers: answers, TimeElapsed: 10})
	if err != nil {
		t.Fatalf("post-gap complete failed: %v", err)
	}
	if result.Stats.CurrentStreak != 1 {
		t.Fatalf("a gap should restart the streak at one, got %d", result.Stats.CurrentStreak)
	}
}

func TestDailyService_ImperfectRunBreaksStreak(t *testing.T) {
	svc := newSeededDailyService()
	fixDailyClock(svc, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	answers := perfectAnswers(svc, t)
	answers[0] = "wrong"
	result, err := svc.Complete(t.Context(), CompleteDailyInput{Answers: answers, TimeElapsed: 10})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if result.Stats.CurrentStreak != 0 {
		t.Fatalf("an imperfect run should break the streak, got %d", result.Stats.CurrentStreak)
	}
	if result.Score.Correct != 9 {
		t.Fatalf("unexpected correct count: %d", result.Score.Correct)
	}
	if len(result.Record.Mistakes) != 1 {
		t.Fatalf("unexpected mistake count: %d", len(result.Record.Mistakes))
	}
}

func TestDailyService_Complete_ClampsElapsedTime(t *testing.T) {
	svc := newSeededDailyService()
	fixDailyClock(svc, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	answers := perfectAnswers(svc, t)
	result, err := svc.Complete(t.Context(), CompleteDailyInput{Answers: answers, TimeElapsed: 500})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if result.Score.SpeedBonus != 0 {
		t.Fatalf("a run over the limit should earn no bonus, got %f", result.Score.SpeedBonus)
	}
}

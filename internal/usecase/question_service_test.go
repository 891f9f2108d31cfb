package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/question"
	"github.com/scoutschool/daily-shift/internal/infrastructure/repository/memory"
)

func newSeededQuestionService() *QuestionService {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	rosterRepo := memory.NewRosterRepository(memory.SeedLineStructures())
	return NewQuestionService(playerRepo, rosterRepo)
}

func TestQuestionService_Daily_SameDateSameQuestions(t *testing.T) {
	svc := newSeededQuestionService()
	date := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	first, err := svc.Daily(t.Context(), date)
	if err != nil {
		t.Fatalf("daily generation failed: %v", err)
	}
	second, err := svc.Daily(t.Context(), date)
	if err != nil {
		t.Fatalf("daily regeneration failed: %v", err)
	}

	if len(first) != 10 {
		t.Fatalf("unexpected question count: %d", len(first))
	}
	for i := range first {
		if first[i].Prompt != second[i].Prompt {
			t.Fatalf("question %d prompt differs between runs: %q vs %q", i, first[i].Prompt, second[i].Prompt)
		}
		if first[i].Answer != second[i].Answer {
			t.Fatalf("question %d answer differs between runs", i)
		}
		for j := range first[i].Options {
			if first[i].Options[j] != second[i].Options[j] {
				t.Fatalf("question %d option order differs between runs", i)
			}
		}
	}
}

func TestQuestionService_Daily_DeckComposition(t *testing.T) {
	svc := newSeededQuestionService()

	questions, err := svc.Daily(t.Context(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("daily generation failed: %v", err)
	}

	counts := map[question.Kind]int{}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			t.Fatalf("generated question is invalid: %v", err)
		}
		counts[q.Kind]++
	}
	if counts[question.KindIdentity] != 4 {
		t.Fatalf("expected 4 identity questions, got %d", counts[question.KindIdentity])
	}
	if counts[question.KindPosition] != 3 {
		t.Fatalf("expected 3 positional questions, got %d", counts[question.KindPosition])
	}
	if counts[question.KindJersey] != 3 {
		t.Fatalf("expected 3 jersey questions, got %d", counts[question.KindJersey])
	}
}

func TestQuestionService_Daily_InsufficientPool(t *testing.T) {
	players := memory.SeedPlayers()[:5]
	svc := NewQuestionService(memory.NewPlayerRepository(players), memory.NewRosterRepository(nil))

	_, err := svc.Daily(t.Context(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrInsufficientPool) {
		t.Fatalf("expected ErrInsufficientPool, got %v", err)
	}
}

func TestQuestionService_Practice_SingleTeam(t *testing.T) {
	svc := newSeededQuestionService()

	questions, err := svc.Practice(t.Context(), PracticeInput{Teams: []string{"ana"}, Count: 6})
	if err != nil {
		t.Fatalf("practice generation failed: %v", err)
	}
	if len(questions) != 6 {
		t.Fatalf("unexpected question count: %d", len(questions))
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			t.Fatalf("generated question is invalid: %v", err)
		}
		if q.Kind != question.KindPosition && q.Kind != question.KindJersey {
			t.Fatalf("unexpected practice question kind: %s", q.Kind)
		}
	}
}

func TestQuestionService_Practice_TooManyTeams(t *testing.T) {
	svc := newSeededQuestionService()

	_, err := svc.Practice(t.Context(), PracticeInput{Teams: []string{"ANA", "BOS", "CGY"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestQuestionService_PhaseBatch_Identify(t *testing.T) {
	svc := newSeededQuestionService()

	questions, err := svc.PhaseBatch(t.Context(), "ANA", 1, PhaseBatchSize)
	if err != nil {
		t.Fatalf("phase batch failed: %v", err)
	}
	if len(questions) != PhaseBatchSize {
		t.Fatalf("unexpected batch size: %d", len(questions))
	}
	for _, q := range questions {
		if q.Kind != question.KindIdentity {
			t.Fatalf("identify batch produced a %s question", q.Kind)
		}
		if err := q.Validate(); err != nil {
			t.Fatalf("generated question is invalid: %v", err)
		}
	}
}

func TestQuestionService_PhaseBatch_Evaluate(t *testing.T) {
	svc := newSeededQuestionService()

	questions, err := svc.PhaseBatch(t.Context(), "BOS", 2, PhaseBatchSize)
	if err != nil {
		t.Fatalf("phase batch failed: %v", err)
	}

	counts := map[question.Kind]int{}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			t.Fatalf("generated question is invalid: %v", err)
		}
		counts[q.Kind]++
	}
	if counts[question.KindMatchup] == 0 || counts[question.KindLineAssign] == 0 {
		t.Fatalf("evaluate batch should mix matchups and line assignments, got %v", counts)
	}
}

func TestQuestionService_PhaseBatch_UnknownPhase(t *testing.T) {
	svc := newSeededQuestionService()

	_, err := svc.PhaseBatch(t.Context(), "ANA", 4, PhaseBatchSize)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestQuestionService_Tandem_RanksByRating(t *testing.T) {
	svc := newSeededQuestionService()

	task, err := svc.Tandem(t.Context(), "ANA")
	if err != nil {
		t.Fatalf("tandem generation failed: %v", err)
	}
	if task.Starter != "Marek Dostal" {
		t.Fatalf("unexpected starter: %s", task.Starter)
	}
	if task.Backup != "Cal Whitfield" {
		t.Fatalf("unexpected backup: %s", task.Backup)
	}
	if len(task.Goalies) != 2 {
		t.Fatalf("unexpected goalie count: %d", len(task.Goalies))
	}
}

func TestQuestionService_Tandem_SingleGoalie(t *testing.T) {
	var players []player.Player
	for _, p := range memory.SeedPlayers() {
		if p.TeamAbbr == "ANA" && p.Name != "Cal Whitfield" {
			players = append(players, p)
		}
	}
	svc := NewQuestionService(memory.NewPlayerRepository(players), memory.NewRosterRepository(nil))

	_, err := svc.Tandem(t.Context(), "ANA")
	if !errors.Is(err, ErrInsufficientPool) {
		t.Fatalf("expected ErrInsufficientPool, got %v", err)
	}
}

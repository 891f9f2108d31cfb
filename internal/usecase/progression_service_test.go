package usecase

import (
	"errors"
	"testing"

	"github.com/scoutschool/daily-shift/internal/domain/progression"
	"github.com/scoutschool/daily-shift/internal/infrastructure/repository/memory"
)

func newSeededProgressionService(favorite string) (*ProgressionService, *memory.ProgressionRepository) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	rosterRepo := memory.NewRosterRepository(memory.SeedLineStructures())
	teamRepo := memory.NewTeamRepositoryFromPlayers(memory.SeedPlayers())
	progressRepo := memory.NewProgressionRepository(favorite)

	questions := NewQuestionService(playerRepo, rosterRepo)

	return NewProgressionService(progressRepo, teamRepo, questions), progressRepo
}

func TestProgressionService_FullMasteryLadder(t *testing.T) {
	svc, _ := newSeededProgressionService("ANA")
	ctx := t.Context()

	start, err := svc.StartPhase(ctx, "ANA", progression.PhaseIdentify)
	if err != nil {
		t.Fatalf("start identify failed: %v", err)
	}
	if len(start.Questions) != PhaseBatchSize {
		t.Fatalf("unexpected identify batch size: %d", len(start.Questions))
	}

	outcome, err := svc.SubmitPhaseResult(ctx, "ANA", 4, 5)
	if err != nil {
		t.Fatalf("submit identify failed: %v", err)
	}
	if !outcome.Advanced || outcome.NextPhase != progression.PhaseEvaluate {
		t.Fatalf("80%% on identify should advance to evaluate, got %+v", outcome)
	}

	if _, err := svc.StartPhase(ctx, "ANA", progression.PhaseEvaluate); err != nil {
		t.Fatalf("start evaluate failed: %v", err)
	}
	outcome, err = svc.SubmitPhaseResult(ctx, "ANA", 5, 5)
	if err != nil {
		t.Fatalf("submit evaluate failed: %v", err)
	}
	if outcome.NextPhase != progression.PhaseConstruct {
		t.Fatalf("expected construct next, got %s", outcome.NextPhase)
	}

	if _, err := svc.StartPhase(ctx, "ANA", progression.PhaseConstruct); err != nil {
		t.Fatalf("start construct failed: %v", err)
	}
	outcome, err = svc.SubmitPhaseResult(ctx, "ANA", 5, 5)
	if err != nil {
		t.Fatalf("submit construct failed: %v", err)
	}
	if outcome.NextPhase != progression.PhaseTandem {
		t.Fatalf("a two-goalie team should continue into the tandem, got %s", outcome.NextPhase)
	}

	start, err = svc.StartPhase(ctx, "ANA", progression.PhaseTandem)
	if err != nil {
		t.Fatalf("start tandem failed: %v", err)
	}
	if start.Tandem == nil {
		t.Fatal("tandem phase should carry the placement task")
	}

	tandem, err := svc.PlaceGoalie(ctx, "ANA", TandemRoleStarter, "Marek Dostal")
	if err != nil {
		t.Fatalf("place starter failed: %v", err)
	}
	if tandem.Complete {
		t.Fatal("tandem should not complete with only the starter placed")
	}

	tandem, err = svc.PlaceGoalie(ctx, "ANA", TandemRoleBackup, "Cal Whitfield")
	if err != nil {
		t.Fatalf("place backup failed: %v", err)
	}
	if !tandem.Complete || !tandem.Mastered {
		t.Fatalf("correct tandem should master the team, got %+v", tandem)
	}
	if tandem.UnlockedTeam != "BOS" {
		t.Fatalf("mastering ANA should unlock BOS, got %q", tandem.UnlockedTeam)
	}

	state, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get state failed: %v", err)
	}
	if !state.IsMastered("ANA") {
		t.Fatal("ANA should be mastered")
	}
	if !state.IsUnlocked("BOS") {
		t.Fatal("BOS should be unlocked")
	}
	if state.CurrentPhase != progression.PhaseMastered {
		t.Fatalf("unexpected phase after mastery: %s", state.CurrentPhase)
	}
}

func TestProgressionService_BelowThresholdRetriesPhase(t *testing.T) {
	svc, repo := newSeededProgressionService("ANA")
	ctx := t.Context()

	if _, err := svc.StartPhase(ctx, "ANA", progression.PhaseIdentify); err != nil {
		t.Fatalf("start identify failed: %v", err)
	}

	outcome, err := svc.SubmitPhaseResult(ctx, "ANA", 3, 5)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if outcome.Advanced {
		t.Fatal("60% should not clear the identify threshold")
	}
	if outcome.NextPhase != progression.PhaseIdentify {
		t.Fatalf("failed batch should retry the same phase, got %s", outcome.NextPhase)
	}

	state, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get state failed: %v", err)
	}
	if state.PhaseProgress != 0 || state.PhaseCorrect != 0 {
		t.Fatalf("failed batch should reset counters, got %d/%d", state.PhaseCorrect, state.PhaseProgress)
	}
}

func TestProgressionService_ConstructDemandsPerfection(t *testing.T) {
	svc, repo := newSeededProgressionService("ANA")
	ctx := t.Context()

	state, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get state failed: %v", err)
	}
	state.CurrentTeam = "ANA"
	state.CurrentPhase = progression.PhaseConstruct
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save state failed: %v", err)
	}

	outcome, err := svc.SubmitPhaseResult(ctx, "ANA", 14, 15)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if outcome.Advanced {
		t.Fatal("construction requires a perfect lineup")
	}
}

func TestProgressionService_StartPhase_LockedTeam(t *testing.T) {
	svc, _ := newSeededProgressionService("ANA")

	_, err := svc.StartPhase(t.Context(), "BOS", progression.PhaseIdentify)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for locked team, got %v", err)
	}
}

func TestProgressionService_SetFavorite_UnknownTeam(t *testing.T) {
	svc, _ := newSeededProgressionService("ANA")

	_, err := svc.SetFavorite(t.Context(), "ZZZ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProgressionService_SetFavorite_Unlocks(t *testing.T) {
	svc, _ := newSeededProgressionService("ANA")

	state, err := svc.SetFavorite(t.Context(), "cgy")
	if err != nil {
		t.Fatalf("set favorite failed: %v", err)
	}
	if state.FavoriteTeam != "CGY" {
		t.Fatalf("unexpected favorite: %s", state.FavoriteTeam)
	}
	if !state.IsUnlocked("CGY") {
		t.Fatal("favorite team should be unlocked")
	}
}

func TestProgressionService_PlaceGoalie_InvalidRole(t *testing.T) {
	svc, _ := newSeededProgressionService("ANA")

	_, err := svc.PlaceGoalie(t.Context(), "ANA", "coach", "Marek Dostal")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProgressionService_UnlockWrapsAndSkipsMastered(t *testing.T) {
	svc, repo := newSeededProgressionService("CGY")
	ctx := t.Context()

	state, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get state failed: %v", err)
	}
	state.MasteredTeams = []string{"ANA"}
	state.UnlockedTeams = []string{"ANA", "CGY"}
	state.CurrentTeam = "CGY"
	state.CurrentPhase = progression.PhaseTandem
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save state failed: %v", err)
	}

	if _, err := svc.PlaceGoalie(ctx, "CGY", TandemRoleStarter, "Antti Makela"); err != nil {
		t.Fatalf("place starter failed: %v", err)
	}
	outcome, err := svc.PlaceGoalie(ctx, "CGY", TandemRoleBackup, "Shea Durnan")
	if err != nil {
		t.Fatalf("place backup failed: %v", err)
	}
	if !outcome.Mastered {
		t.Fatal("correct tandem should master the team")
	}
	if outcome.UnlockedTeam != "BOS" {
		t.Fatalf("unlock should wrap past mastered ANA to BOS, got %q", outcome.UnlockedTeam)
	}
}

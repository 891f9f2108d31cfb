package usecase

import (
	"errors"
	"testing"

	"github.com/scoutschool/daily-shift/internal/infrastructure/repository/memory"
)

func newSeededTeamService(favorite string) *TeamService {
	players := memory.SeedPlayers()
	return NewTeamService(
		memory.NewTeamRepositoryFromPlayers(players),
		memory.NewPlayerRepository(players),
		memory.NewRosterRepository(memory.SeedLineStructures()),
		memory.NewProgressionRepository(favorite),
	)
}

func TestTeamService_List_FlagsFavorite(t *testing.T) {
	svc := newSeededTeamService("BOS")

	views, err := svc.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("unexpected team count: %d", len(views))
	}

	order := []string{"ANA", "BOS", "CGY"}
	for i, view := range views {
		if view.Abbr != order[i] {
			t.Fatalf("teams out of order: got %s at %d", view.Abbr, i)
		}
		wantUnlocked := view.Abbr == "BOS"
		if view.Unlocked != wantUnlocked {
			t.Fatalf("team %s unlocked=%v, want %v", view.Abbr, view.Unlocked, wantUnlocked)
		}
		if view.Favorite != (view.Abbr == "BOS") {
			t.Fatalf("team %s favorite flag wrong", view.Abbr)
		}
		if view.Mastered {
			t.Fatalf("team %s should not start mastered", view.Abbr)
		}
	}
}

func TestTeamService_Roster_SplitsGoalies(t *testing.T) {
	svc := newSeededTeamService("ANA")

	view, err := svc.Roster(t.Context(), "ana")
	if err != nil {
		t.Fatalf("roster failed: %v", err)
	}

	if view.Team.Abbr != "ANA" {
		t.Fatalf("unexpected team: %s", view.Team.Abbr)
	}
	if len(view.Skaters) != 17 {
		t.Fatalf("unexpected skater count: %d", len(view.Skaters))
	}
	if len(view.Goalies) != 2 {
		t.Fatalf("unexpected goalie count: %d", len(view.Goalies))
	}
	if view.LineCount != 3 {
		t.Fatalf("unexpected line count: %d", view.LineCount)
	}
}

func TestTeamService_Roster_UnknownTeam(t *testing.T) {
	svc := newSeededTeamService("ANA")

	_, err := svc.Roster(t.Context(), "ZZZ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

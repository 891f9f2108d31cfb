package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scoutschool/daily-shift/internal/domain/player"
)

const playersJSON = `[
  {
    "id": "8478402",
    "team_name": "Anaheim Ducks",
    "team_abbr": "ANA",
    "player_name": "Tage Morgan",
    "position": "C",
    "rating": 93,
    "unique_trait": "Led the team in faceoff wins.",
    "is_unique_fact": true,
    "jersey_number": "19",
    "age": "27",
    "height": "6'1\""
  },
  {
    "id": "8478403",
    "team_name": "Anaheim Ducks",
    "team_abbr": "ANA",
    "player_name": "Emil Vasko",
    "position": "D",
    "rating": 89,
    "unique_trait": "Blocks everything.",
    "is_unique_fact": true,
    "jersey_number": "XX",
    "age": "?",
    "height": "?"
  }
]`

const goalieRatingsCSV = `playerId,name,team,position,Overall_Talent_Rating
8480001,Marek Dostal,ANA,G,88.4
8480002,Cal Whitfield,ana,G,83.0
`

const goalieLookupCSV = `playerId,primaryNumber,height,birthDate
8480001,30,6'4",1998-02-11
`

const structuresJSON = `[
  {
    "team_abbr": "ana",
    "lines": {
      "Line 1": {"C": "Tage Morgan", "W1": "Tage Morgan", "W2": "Tage Morgan", "D1": "Emil Vasko", "D2": "Emil Vasko"}
    }
  }
]`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoader_LoadPlayers(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, PlayersFile, playersJSON)

	players, err := NewLoader().LoadPlayers(path)
	if err != nil {
		t.Fatalf("load players failed: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("unexpected player count: %d", len(players))
	}

	first := players[0]
	if first.ID != 8478402 || first.Name != "Tage Morgan" {
		t.Fatalf("unexpected first player: %+v", first)
	}
	if first.JerseyNumber != 19 || first.Age != 27 {
		t.Fatalf("numeric fields not parsed: %+v", first)
	}

	// Placeholder jersey/age map to zero rather than failing the load.
	second := players[1]
	if second.JerseyNumber != 0 || second.Age != 0 {
		t.Fatalf("placeholders should map to zero: %+v", second)
	}
}

func TestLoader_LoadPlayers_RejectsBadPosition(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, PlayersFile, `[
  {"id": "1", "team_name": "X", "team_abbr": "XXX", "player_name": "Bad Pos",
   "position": "Q", "rating": 50, "jersey_number": "1", "age": "20", "height": "6'0\""}
]`)

	if _, err := NewLoader().LoadPlayers(path); err == nil {
		t.Fatal("expected an unknown position to fail the load")
	}
}

func TestLoader_LoadGoalies_JoinsByID(t *testing.T) {
	dir := t.TempDir()
	ratings := writeTestFile(t, dir, GoalieRatingsFile, goalieRatingsCSV)
	lookup := writeTestFile(t, dir, GoalieLookupFile, goalieLookupCSV)

	loader := NewLoader()
	loader.now = func() time.Time { return time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC) }

	goalies, err := loader.LoadGoalies(ratings, lookup)
	if err != nil {
		t.Fatalf("load goalies failed: %v", err)
	}
	if len(goalies) != 2 {
		t.Fatalf("unexpected goalie count: %d", len(goalies))
	}

	starter := goalies[0]
	if starter.Name != "Marek Dostal" || starter.Position != player.PositionGoalie {
		t.Fatalf("unexpected starter row: %+v", starter)
	}
	if starter.Rating != 88 {
		t.Fatalf("rating should round, got %d", starter.Rating)
	}
	if starter.JerseyNumber != 30 || starter.Age != 28 {
		t.Fatalf("lookup join missed: %+v", starter)
	}
	if starter.UniqueTrait == "" {
		t.Fatal("goalie trait should be derived")
	}

	// No lookup row: bio fields stay placeholders, the goalie still loads.
	backup := goalies[1]
	if backup.TeamAbbr != "ANA" {
		t.Fatalf("team abbreviation should normalize upper, got %s", backup.TeamAbbr)
	}
	if backup.JerseyNumber != 0 || backup.Height != "?" {
		t.Fatalf("missing lookup should keep placeholders: %+v", backup)
	}
}

func TestLoader_LoadStructures_ResolvesRatings(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, StructuresFile, structuresJSON)

	ratings := map[string]int{"Tage Morgan": 93, "Emil Vasko": 89}
	structures, err := NewLoader().LoadStructures(path, ratings)
	if err != nil {
		t.Fatalf("load structures failed: %v", err)
	}
	if len(structures) != 1 {
		t.Fatalf("unexpected structure count: %d", len(structures))
	}

	s := structures[0]
	if s.TeamAbbr != "ANA" {
		t.Fatalf("team abbreviation should normalize upper, got %s", s.TeamAbbr)
	}
	if len(s.Lines) != 1 || s.Lines[0].Number != 1 {
		t.Fatalf("unexpected lines: %+v", s.Lines)
	}
	center := s.Lines[0].Slots["C"]
	if center.PlayerName != "Tage Morgan" || center.Rating != 93 {
		t.Fatalf("rating not resolved: %+v", center)
	}
}

func TestLoader_LoadStructures_RejectsUnknownPlayer(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, StructuresFile, structuresJSON)

	_, err := NewLoader().LoadStructures(path, map[string]int{"Tage Morgan": 93})
	if err == nil {
		t.Fatal("a structure referencing an unknown player should fail the load")
	}
}

func TestLoader_Load_FullPack(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, PlayersFile, playersJSON)
	writeTestFile(t, dir, GoalieRatingsFile, goalieRatingsCSV)
	writeTestFile(t, dir, GoalieLookupFile, goalieLookupCSV)
	writeTestFile(t, dir, StructuresFile, structuresJSON)

	ds, err := NewLoader().Load(dir)
	if err != nil {
		t.Fatalf("load pack failed: %v", err)
	}
	if len(ds.Players) != 4 {
		t.Fatalf("skaters and goalies should merge, got %d players", len(ds.Players))
	}
	if len(ds.Structures) != 1 {
		t.Fatalf("unexpected structure count: %d", len(ds.Structures))
	}
}

func TestLoader_Load_MissingPlayersFile(t *testing.T) {
	if _, err := NewLoader().Load(t.TempDir()); err == nil {
		t.Fatal("a pack without players is unusable")
	}
}

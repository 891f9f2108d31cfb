package dataset

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/roster"
)

// Conventional file names inside a content pack directory.
const (
	PlayersFile       = "nhl_players.json"
	GoalieRatingsFile = "goalie_ratings.csv"
	GoalieLookupFile  = "goalie_lookup.csv"
	StructuresFile    = "team_line_structures.json"
)

// Dataset is the fully joined content pack served by the repositories:
// skaters from the pre-built JSON, goalies merged in from the two CSV
// sources, and the per-team line-structure answer keys.
type Dataset struct {
	Players    []player.Player
	Structures []roster.LineStructure
}

type Loader struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewLoader() *Loader {
	return &Loader{
		validate: validator.New(),
		now:      time.Now,
	}
}

// Load reads a content pack directory. The player JSON is mandatory;
// the goalie CSV pair and the line-structure file are optional, a pack
// without them simply fields no tandem or construction content.
func (l *Loader) Load(dir string) (Dataset, error) {
	players, err := l.LoadPlayers(filepath.Join(dir, PlayersFile))
	if err != nil {
		return Dataset{}, err
	}

	ratingsPath := filepath.Join(dir, GoalieRatingsFile)
	lookupPath := filepath.Join(dir, GoalieLookupFile)
	if fileExists(ratingsPath) && fileExists(lookupPath) {
		goalies, err := l.LoadGoalies(ratingsPath, lookupPath)
		if err != nil {
			return Dataset{}, err
		}
		players = append(players, goalies...)
	}

	ds := Dataset{Players: players}

	structuresPath := filepath.Join(dir, StructuresFile)
	if fileExists(structuresPath) {
		structures, err := l.LoadStructures(structuresPath, ratingIndex(players))
		if err != nil {
			return Dataset{}, err
		}
		ds.Structures = structures
	}

	return ds, nil
}

func ratingIndex(players []player.Player) map[string]int {
	ratings := make(map[string]int, len(players))
	for _, p := range players {
		ratings[p.Name] = p.Rating
	}

	return ratings
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset file %s", path)
	}

	return raw, nil
}

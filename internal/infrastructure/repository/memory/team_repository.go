package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
	index map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	sorted := make([]team.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Abbr < sorted[j].Abbr })

	index := make(map[string]team.Team, len(sorted))
	for _, t := range sorted {
		index[t.Abbr] = t
	}

	return &TeamRepository{
		teams: sorted,
		index: index,
	}
}

// NewTeamRepositoryFromPlayers derives the team list from the player
// dataset: unique abbreviations, sorted.
func NewTeamRepositoryFromPlayers(players []player.Player) *TeamRepository {
	seen := make(map[string]team.Team)
	for _, p := range players {
		if _, ok := seen[p.TeamAbbr]; !ok {
			seen[p.TeamAbbr] = team.Team{Abbr: p.TeamAbbr, Name: p.TeamName}
		}
	}

	teams := make([]team.Team, 0, len(seen))
	for _, t := range seen {
		teams = append(teams, t)
	}

	return NewTeamRepository(teams)
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)

	return out, nil
}

func (r *TeamRepository) GetByAbbr(_ context.Context, abbr string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.index[abbr]

	return t, ok, nil
}

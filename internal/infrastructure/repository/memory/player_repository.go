package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/scoutschool/daily-shift/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	byTeam  map[string][]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	sorted := make([]player.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byTeam := make(map[string][]player.Player)
	for _, p := range sorted {
		byTeam[p.TeamAbbr] = append(byTeam[p.TeamAbbr], p)
	}

	return &PlayerRepository{
		players: sorted,
		byTeam:  byTeam,
	}
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamAbbr string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.byTeam[teamAbbr]
	out := make([]player.Player, 0, len(players))
	out = append(out, players...)

	return out, nil
}

func (r *PlayerRepository) ListGoaliesByTeam(_ context.Context, teamAbbr string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []player.Player
	for _, p := range r.byTeam[teamAbbr] {
		if p.IsGoalie() {
			out = append(out, p)
		}
	}

	return out, nil
}

package memory

import (
	"context"
	"sync"

	"github.com/scoutschool/daily-shift/internal/domain/roster"
)

type RosterRepository struct {
	mu         sync.RWMutex
	structures map[string]roster.LineStructure
}

func NewRosterRepository(structures []roster.LineStructure) *RosterRepository {
	index := make(map[string]roster.LineStructure, len(structures))
	for _, ls := range structures {
		index[ls.TeamAbbr] = ls
	}

	return &RosterRepository{structures: index}
}

func (r *RosterRepository) GetByTeam(_ context.Context, teamAbbr string) (roster.LineStructure, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ls, ok := r.structures[teamAbbr]

	return ls, ok, nil
}

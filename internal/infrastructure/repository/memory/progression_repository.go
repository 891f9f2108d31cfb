package memory

import (
	"context"
	"sync"

	"github.com/scoutschool/daily-shift/internal/domain/progression"
)

// ProgressionRepository keeps the progression blob in memory with the
// same gateway semantics as the durable store: the first Get initializes
// defaults with the favorite team pre-unlocked and writes them back.
type ProgressionRepository struct {
	mu              sync.RWMutex
	state           progression.State
	initialized     bool
	defaultFavorite string
}

func NewProgressionRepository(defaultFavorite string) *ProgressionRepository {
	return &ProgressionRepository{defaultFavorite: defaultFavorite}
}

func (r *ProgressionRepository) Get(_ context.Context) (progression.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		r.state = progression.State{FavoriteTeam: r.defaultFavorite}
		if r.defaultFavorite != "" {
			r.state.Unlock(r.defaultFavorite)
		}
		r.initialized = true
	}

	return cloneState(r.state), nil
}

func (r *ProgressionRepository) Save(_ context.Context, state progression.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = cloneState(state)
	r.initialized = true

	return nil
}

func cloneState(s progression.State) progression.State {
	out := s
	out.MasteredTeams = append([]string(nil), s.MasteredTeams...)
	out.UnlockedTeams = append([]string(nil), s.UnlockedTeams...)

	return out
}

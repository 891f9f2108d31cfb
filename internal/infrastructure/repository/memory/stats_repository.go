package memory

import (
	"context"
	"sync"

	"github.com/scoutschool/daily-shift/internal/domain/scoring"
)

type StatsRepository struct {
	mu    sync.RWMutex
	stats scoring.Stats
}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{}
}

func (r *StatsRepository) Get(_ context.Context) (scoring.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.stats, nil
}

func (r *StatsRepository) Save(_ context.Context, stats scoring.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats = stats

	return nil
}

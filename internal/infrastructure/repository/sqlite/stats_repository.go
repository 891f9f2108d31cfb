package sqlite

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/scoutschool/daily-shift/internal/domain/scoring"
)

const keyStats = "stats"

// StatsRepository persists the cumulative stats blob, with the same
// defaults-write-back and corrupt-heal policy as the progression blob.
type StatsRepository struct {
	store *Store
}

func NewStatsRepository(store *Store) *StatsRepository {
	return &StatsRepository{store: store}
}

func (r *StatsRepository) Get(ctx context.Context) (scoring.Stats, error) {
	var m statsModel
	found, err := r.store.get(ctx, keyStats, &m)
	if err != nil {
		if !errors.Is(err, ErrCorruptValue) {
			return scoring.Stats{}, err
		}
		r.store.logger.WarnContext(ctx, "healing corrupt stats", "error", err.Error())
		found = false
	}
	if !found {
		stats := scoring.Stats{}
		if err := r.Save(ctx, stats); err != nil {
			return scoring.Stats{}, err
		}
		return stats, nil
	}

	return m.toDomain(), nil
}

func (r *StatsRepository) Save(ctx context.Context, stats scoring.Stats) error {
	return r.store.put(ctx, keyStats, statsToModel(stats))
}

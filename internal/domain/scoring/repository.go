package scoring

import "context"

// StatsRepository persists cumulative stats. Get on an empty store
// returns zero-value stats after writing them back; a corrupt record
// heals to the same defaults instead of surfacing a parse error.
type StatsRepository interface {
	Get(ctx context.Context) (Stats, error)
	Save(ctx context.Context, stats Stats) error
}

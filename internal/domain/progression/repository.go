package progression

import "context"

// Repository persists the progression blob. Get on a fresh store
// initializes defaults (favorite team pre-unlocked) and writes them
// back before returning; a corrupt blob heals to the same defaults.
type Repository interface {
	Get(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
}

// DailyRepository persists per-day challenge records keyed YYYY-MM-DD.
type DailyRepository interface {
	GetByDate(ctx context.Context, dateKey string) (DailyRecord, bool, error)
	Save(ctx context.Context, record DailyRecord) error
}

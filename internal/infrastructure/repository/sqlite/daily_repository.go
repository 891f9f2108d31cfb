package sqlite

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/scoutschool/daily-shift/internal/domain/progression"
)

const keyDailyPrefix = "daily:"

// DailyRepository persists one challenge record per calendar date.
// A corrupt day reads as absent and its row is dropped, so the next
// start regenerates and overwrites it.
type DailyRepository struct {
	store *Store
}

func NewDailyRepository(store *Store) *DailyRepository {
	return &DailyRepository{store: store}
}

func (r *DailyRepository) GetByDate(ctx context.Context, dateKey string) (progression.DailyRecord, bool, error) {
	var m dailyRecordModel
	found, err := r.store.get(ctx, keyDailyPrefix+dateKey, &m)
	if err != nil {
		if !errors.Is(err, ErrCorruptValue) {
			return progression.DailyRecord{}, false, err
		}
		r.store.logger.WarnContext(ctx, "dropping corrupt daily record", "date", dateKey, "error", err.Error())
		if err := r.store.delete(ctx, keyDailyPrefix+dateKey); err != nil {
			return progression.DailyRecord{}, false, err
		}
		return progression.DailyRecord{}, false, nil
	}
	if !found {
		return progression.DailyRecord{}, false, nil
	}

	return m.toDomain(), true, nil
}

func (r *DailyRepository) Save(ctx context.Context, record progression.DailyRecord) error {
	if err := record.Validate(); err != nil {
		return errors.Wrap(err, "daily record")
	}

	return r.store.put(ctx, keyDailyPrefix+record.DateKey, dailyRecordToModel(record))
}

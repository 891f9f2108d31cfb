package sqlite

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/scoutschool/daily-shift/internal/domain/progression"
)

const keyProgression = "progression"

// ProgressionRepository persists the progression blob under a single
// key. The first read writes the defaults back so the store is never
// read empty twice; a corrupt blob heals the same way.
type ProgressionRepository struct {
	store           *Store
	defaultFavorite string
}

func NewProgressionRepository(store *Store, defaultFavorite string) *ProgressionRepository {
	return &ProgressionRepository{
		store:           store,
		defaultFavorite: defaultFavorite,
	}
}

func (r *ProgressionRepository) Get(ctx context.Context) (progression.State, error) {
	var m progressionStateModel
	found, err := r.store.get(ctx, keyProgression, &m)
	if err != nil {
		if !errors.Is(err, ErrCorruptValue) {
			return progression.State{}, err
		}
		r.store.logger.WarnContext(ctx, "healing corrupt progression state", "error", err.Error())
		found = false
	}
	if !found {
		state := defaultProgressionState(r.defaultFavorite)
		if err := r.Save(ctx, state); err != nil {
			return progression.State{}, err
		}
		return state, nil
	}

	return m.toDomain(), nil
}

func (r *ProgressionRepository) Save(ctx context.Context, state progression.State) error {
	return r.store.put(ctx, keyProgression, progressionStateToModel(state))
}

func defaultProgressionState(favorite string) progression.State {
	state := progression.State{FavoriteTeam: favorite}
	if favorite != "" {
		state.Unlock(favorite)
	}

	return state
}

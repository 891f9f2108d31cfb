package cache

import (
	"context"

	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/roster"
	"github.com/scoutschool/daily-shift/internal/domain/team"
	basecache "github.com/scoutschool/daily-shift/internal/platform/cache"
)

// TeamRepository is a read-through cache in front of a team source.
// Team and roster data only changes on a dataset sync, so TTL staleness
// is acceptable everywhere in the question path.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByAbbr(ctx context.Context, abbr string) (team.Team, bool, error) {
	key := "team:abbr:" + abbr
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByAbbr(ctx, abbr)
		if err != nil {
			return nil, err
		}
		return cachedTeamByAbbr{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByAbbr)
	return cached.value, cached.exists, nil
}

type cachedTeamByAbbr struct {
	value  team.Team
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:all", func(ctx context.Context) (any, error) {
		items, err := r.next.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamAbbr string) ([]player.Player, error) {
	key := "player:team:" + teamAbbr
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamAbbr)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) ListGoaliesByTeam(ctx context.Context, teamAbbr string) ([]player.Player, error) {
	key := "player:goalies:" + teamAbbr
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListGoaliesByTeam(ctx, teamAbbr)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

type RosterRepository struct {
	next  roster.Repository
	cache *basecache.Store
}

func NewRosterRepository(next roster.Repository, cache *basecache.Store) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) GetByTeam(ctx context.Context, teamAbbr string) (roster.LineStructure, bool, error) {
	key := "roster:team:" + teamAbbr
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByTeam(ctx, teamAbbr)
		if err != nil {
			return nil, err
		}
		return cachedRosterByTeam{value: cloneStructure(item), exists: exists}, nil
	})
	if err != nil {
		return roster.LineStructure{}, false, err
	}

	cached, _ := v.(cachedRosterByTeam)
	return cloneStructure(cached.value), cached.exists, nil
}

type cachedRosterByTeam struct {
	value  roster.LineStructure
	exists bool
}

func cloneStructure(s roster.LineStructure) roster.LineStructure {
	out := s
	out.Lines = make([]roster.Line, len(s.Lines))
	for i, line := range s.Lines {
		cloned := line
		cloned.Slots = make(map[roster.SlotID]roster.Assignment, len(line.Slots))
		for slot, assignment := range line.Slots {
			cloned.Slots[slot] = assignment
		}
		out.Lines[i] = cloned
	}

	return out
}

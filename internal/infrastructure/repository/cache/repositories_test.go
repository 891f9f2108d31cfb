package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/roster"
	"github.com/scoutschool/daily-shift/internal/domain/team"
	basecache "github.com/scoutschool/daily-shift/internal/platform/cache"
)

type countingTeamRepo struct {
	listCalls int
	getCalls  int
	teams     []team.Team
}

func (r *countingTeamRepo) List(context.Context) ([]team.Team, error) {
	r.listCalls++
	return append([]team.Team(nil), r.teams...), nil
}

func (r *countingTeamRepo) GetByAbbr(_ context.Context, abbr string) (team.Team, bool, error) {
	r.getCalls++
	for _, t := range r.teams {
		if t.Abbr == abbr {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

type countingPlayerRepo struct {
	calls   int
	players []player.Player
}

func (r *countingPlayerRepo) ListAll(context.Context) ([]player.Player, error) {
	r.calls++
	return append([]player.Player(nil), r.players...), nil
}

func (r *countingPlayerRepo) ListByTeam(_ context.Context, teamAbbr string) ([]player.Player, error) {
	r.calls++
	var out []player.Player
	for _, p := range r.players {
		if p.TeamAbbr == teamAbbr {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *countingPlayerRepo) ListGoaliesByTeam(_ context.Context, teamAbbr string) ([]player.Player, error) {
	r.calls++
	var out []player.Player
	for _, p := range r.players {
		if p.TeamAbbr == teamAbbr && p.IsGoalie() {
			out = append(out, p)
		}
	}
	return out, nil
}

type countingRosterRepo struct {
	calls     int
	structure roster.LineStructure
}

func (r *countingRosterRepo) GetByTeam(_ context.Context, teamAbbr string) (roster.LineStructure, bool, error) {
	r.calls++
	if teamAbbr != r.structure.TeamAbbr {
		return roster.LineStructure{}, false, nil
	}
	return r.structure, true, nil
}

func TestTeamRepository_ListHitsSourceOnce(t *testing.T) {
	ctx := context.Background()
	source := &countingTeamRepo{teams: []team.Team{{Abbr: "ANA", Name: "Anaheim Ducks"}}}
	repo := NewTeamRepository(source, basecache.NewStore(time.Minute))

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, source.listCalls)
}

func TestTeamRepository_CachesNegativeLookup(t *testing.T) {
	ctx := context.Background()
	source := &countingTeamRepo{teams: []team.Team{{Abbr: "ANA", Name: "Anaheim Ducks"}}}
	repo := NewTeamRepository(source, basecache.NewStore(time.Minute))

	_, exists, err := repo.GetByAbbr(ctx, "ZZZ")
	require.NoError(t, err)
	require.False(t, exists)

	_, exists, err = repo.GetByAbbr(ctx, "ZZZ")
	require.NoError(t, err)
	require.False(t, exists)
	require.Equal(t, 1, source.getCalls)
}

func TestPlayerRepository_KeysByTeamAndRole(t *testing.T) {
	ctx := context.Background()
	source := &countingPlayerRepo{players: []player.Player{
		{ID: 1, Name: "Tage Morgan", TeamAbbr: "ANA", Position: player.PositionCenter},
		{ID: 2, Name: "Marek Dostal", TeamAbbr: "ANA", Position: player.PositionGoalie},
		{ID: 3, Name: "Miles Okafor", TeamAbbr: "BOS", Position: player.PositionCenter},
	}}
	repo := NewPlayerRepository(source, basecache.NewStore(time.Minute))

	skatersAndGoalies, err := repo.ListByTeam(ctx, "ANA")
	require.NoError(t, err)
	require.Len(t, skatersAndGoalies, 2)

	goalies, err := repo.ListGoaliesByTeam(ctx, "ANA")
	require.NoError(t, err)
	require.Len(t, goalies, 1)
	require.Equal(t, "Marek Dostal", goalies[0].Name)

	// Distinct keys, so neither second call collapses into the other.
	_, err = repo.ListByTeam(ctx, "ANA")
	require.NoError(t, err)
	_, err = repo.ListGoaliesByTeam(ctx, "ANA")
	require.NoError(t, err)
	require.Equal(t, 2, source.calls)
}

func TestRosterRepository_CallerMutationDoesNotPoisonCache(t *testing.T) {
	ctx := context.Background()
	source := &countingRosterRepo{structure: roster.LineStructure{
		TeamAbbr: "ANA",
		Lines: []roster.Line{{
			Number: 1,
			Slots: map[roster.SlotID]roster.Assignment{
				roster.SlotCenter: {PlayerName: "Tage Morgan", Rating: 93},
			},
		}},
	}}
	repo := NewRosterRepository(source, basecache.NewStore(time.Minute))

	first, exists, err := repo.GetByTeam(ctx, "ANA")
	require.NoError(t, err)
	require.True(t, exists)

	first.Lines[0].Slots[roster.SlotCenter] = roster.Assignment{PlayerName: "Someone Else", Rating: 1}

	second, exists, err := repo.GetByTeam(ctx, "ANA")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, "Tage Morgan", second.Lines[0].Slots[roster.SlotCenter].PlayerName)
	require.Equal(t, 1, source.calls)
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/progression"
	"github.com/scoutschool/daily-shift/internal/domain/roster"
	"github.com/scoutschool/daily-shift/internal/domain/team"
)

// TeamView is a team decorated with the caller's progression flags.
type TeamView struct {
	Abbr     string
	Name     string
	Unlocked bool
	Mastered bool
	Favorite bool
}

// RosterView is the pool handed to the rendering layer for drills and
// construction tasks.
type RosterView struct {
	Team      team.Team
	Skaters   []player.Player
	Goalies   []player.Player
	LineCount int
}

type TeamService struct {
	teamRepo     team.Repository
	playerRepo   player.Repository
	rosterRepo   roster.Repository
	progressRepo progression.Repository
}

func NewTeamService(teamRepo team.Repository, playerRepo player.Repository, rosterRepo roster.Repository, progressRepo progression.Repository) *TeamService {
	return &TeamService{
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		rosterRepo:   rosterRepo,
		progressRepo: progressRepo,
	}
}

// List returns every team with unlock/mastery flags, sorted by
// abbreviation.
func (s *TeamService) List(ctx context.Context) ([]TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	state, err := s.progressRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get progression state: %w", err)
	}

	views := make([]TeamView, 0, len(teams))
	for _, t := range teams {
		views = append(views, TeamView{
			Abbr:     t.Abbr,
			Name:     t.Name,
			Unlocked: state.IsUnlocked(t.Abbr),
			Mastered: state.IsMastered(t.Abbr),
			Favorite: state.FavoriteTeam == t.Abbr,
		})
	}

	return views, nil
}

// Roster returns a team's skaters, goalies and line-structure size.
func (s *TeamService) Roster(ctx context.Context, teamAbbr string) (RosterView, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Roster")
	defer span.End()

	teamAbbr = strings.ToUpper(strings.TrimSpace(teamAbbr))
	if teamAbbr == "" {
		return RosterView{}, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}

	t, found, err := s.teamRepo.GetByAbbr(ctx, teamAbbr)
	if err != nil {
		return RosterView{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return RosterView{}, fmt.Errorf("%w: unknown team %s", ErrNotFound, teamAbbr)
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamAbbr)
	if err != nil {
		return RosterView{}, fmt.Errorf("list team players: %w", err)
	}

	view := RosterView{Team: t}
	for _, p := range players {
		if p.IsGoalie() {
			view.Goalies = append(view.Goalies, p)
		} else {
			view.Skaters = append(view.Skaters, p)
		}
	}

	structure, found, err := s.rosterRepo.GetByTeam(ctx, teamAbbr)
	if err != nil {
		return RosterView{}, fmt.Errorf("get line structure: %w", err)
	}
	if found {
		view.LineCount = len(structure.Lines)
	}

	return view, nil
}

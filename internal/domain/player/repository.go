package player

import "context"

// Repository describes player reference-data access from use cases.
type Repository interface {
	ListAll(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamAbbr string) ([]Player, error)
	ListGoaliesByTeam(ctx context.Context, teamAbbr string) ([]Player, error)
}

package roster

import "context"

// Repository describes line-structure answer-key access from use cases.
type Repository interface {
	GetByTeam(ctx context.Context, teamAbbr string) (LineStructure, bool, error)
}

package team

import "context"

// Repository describes team reference-data access from use cases.
// List returns teams sorted by abbreviation.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByAbbr(ctx context.Context, abbr string) (Team, bool, error)
}

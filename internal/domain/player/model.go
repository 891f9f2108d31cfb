package player

import "fmt"

// Position is the primary position code carried by the source dataset.
type Position string

const (
	PositionCenter    Position = "C"
	PositionLeftWing  Position = "L"
	PositionRightWing Position = "R"
	PositionDefense   Position = "D"
	PositionGoalie    Position = "G"
)

var AllPositions = map[Position]struct{}{
	PositionCenter:    {},
	PositionLeftWing:  {},
	PositionRightWing: {},
	PositionDefense:   {},
	PositionGoalie:    {},
}

// Category collapses forward variants into a single bucket for
// positional drills: C/L/R all count as Forward.
type Category string

const (
	CategoryForward Category = "Forward"
	CategoryDefense Category = "Defense"
	CategoryGoalie  Category = "Goalie"
)

var AllCategories = []Category{CategoryForward, CategoryDefense, CategoryGoalie}

func (p Position) Category() Category {
	switch p {
	case PositionCenter, PositionLeftWing, PositionRightWing:
		return CategoryForward
	case PositionDefense:
		return CategoryDefense
	default:
		return CategoryGoalie
	}
}

// Player is a reference-data athlete record. Loaded once per process and
// treated as read-only afterwards; goalies share the shape with Position G
// and a rating derived from goals saved above expected.
type Player struct {
	ID           int64
	Name         string
	TeamName     string
	TeamAbbr     string
	Position     Position
	JerseyNumber int
	Age          int
	Height       string
	Rating       int
	UniqueTrait  string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamAbbr == "" {
		return fmt.Errorf("player team abbreviation is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.JerseyNumber < 0 || p.JerseyNumber > 99 {
		return fmt.Errorf("invalid jersey number: %d", p.JerseyNumber)
	}
	if p.Rating < 0 {
		return fmt.Errorf("player rating must not be negative")
	}

	return nil
}

func (p Player) IsGoalie() bool {
	return p.Position == PositionGoalie
}

func (p Player) IsSkater() bool {
	return !p.IsGoalie() && p.Position != ""
}

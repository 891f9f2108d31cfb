package team

import "fmt"

// Team is a franchise derived from the player dataset. Abbr is the
// stable identifier used across progression state and line structures.
type Team struct {
	Abbr string
	Name string
}

func (t Team) Validate() error {
	if t.Abbr == "" {
		return fmt.Errorf("team abbreviation is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

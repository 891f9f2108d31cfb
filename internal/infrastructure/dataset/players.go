package dataset

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/scoutschool/daily-shift/internal/domain/player"
)

// playerRecord mirrors the pre-built player JSON. The build pipeline
// emits id, jersey number and age as strings with "XX" / "?"
// placeholders where the lookup source had no row, so the numeric
// fields stay strings until mapping.
type playerRecord struct {
	ID           string `json:"id" validate:"required"`
	TeamName     string `json:"team_name" validate:"required"`
	TeamAbbr     string `json:"team_abbr" validate:"required"`
	PlayerName   string `json:"player_name" validate:"required"`
	Position     string `json:"position" validate:"required,oneof=C L R D G"`
	Rating       int    `json:"rating" validate:"gte=0"`
	UniqueTrait  string `json:"unique_trait"`
	IsUniqueFact bool   `json:"is_unique_fact"`
	JerseyNumber string `json:"jersey_number"`
	Age          string `json:"age"`
	Height       string `json:"height"`
}

// LoadPlayers reads and validates the player JSON, mapping each record
// into a domain player. A record that fails validation or domain
// mapping aborts the load; a half-loaded pool would poison every
// generated question downstream.
func (l *Loader) LoadPlayers(path string) ([]player.Player, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var records []playerRecord
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrapf(err, "decode player json %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Newf("player json %s is empty", path)
	}

	players := make([]player.Player, 0, len(records))
	for i, rec := range records {
		if err := l.validate.Struct(rec); err != nil {
			return nil, errors.Wrapf(err, "player record %d", i)
		}
		p, err := rec.toDomain()
		if err != nil {
			return nil, errors.Wrapf(err, "player record %d (%s)", i, rec.PlayerName)
		}
		players = append(players, p)
	}

	return players, nil
}

func (rec playerRecord) toDomain() (player.Player, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rec.ID), 10, 64)
	if err != nil {
		return player.Player{}, errors.Wrapf(err, "parse player id %q", rec.ID)
	}

	p := player.Player{
		ID:           id,
		Name:         strings.TrimSpace(rec.PlayerName),
		TeamName:     strings.TrimSpace(rec.TeamName),
		TeamAbbr:     strings.ToUpper(strings.TrimSpace(rec.TeamAbbr)),
		Position:     player.Position(rec.Position),
		JerseyNumber: parsePlaceholderInt(rec.JerseyNumber),
		Age:          parsePlaceholderInt(rec.Age),
		Height:       strings.TrimSpace(rec.Height),
		Rating:       rec.Rating,
		UniqueTrait:  strings.TrimSpace(rec.UniqueTrait),
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, err
	}

	return p, nil
}

// parsePlaceholderInt accepts "42", "42.0" and the pipeline's "XX"/"?"
// placeholders; anything unparsable maps to zero.
func parsePlaceholderInt(s string) int {
	s = strings.TrimSpace(strings.TrimSuffix(s, ".0"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

package dataset

import (
	"encoding/csv"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/scoutschool/daily-shift/internal/domain/player"
)

// goalieRating is one row of the ratings CSV, keyed by player id.
type goalieRating struct {
	ID       string
	Name     string
	TeamAbbr string
	Rating   int
}

// goalieLookup is one row of the biographical CSV.
type goalieLookup struct {
	JerseyNumber int
	Height       string
	BirthDate    time.Time
}

// LoadGoalies joins the goalie ratings CSV with the biographical lookup
// CSV by player id at load time. Goalies missing a lookup row keep
// placeholder bio fields; a goalie missing a rating row does not exist.
func (l *Loader) LoadGoalies(ratingsPath, lookupPath string) ([]player.Player, error) {
	ratings, err := readGoalieRatings(ratingsPath)
	if err != nil {
		return nil, err
	}
	lookups, err := readGoalieLookups(lookupPath)
	if err != nil {
		return nil, err
	}

	ranked := make([]goalieRating, len(ratings))
	copy(ranked, ratings)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rating > ranked[j].Rating })
	rank := make(map[string]int, len(ranked))
	for i, g := range ranked {
		rank[g.ID] = i + 1
	}

	goalies := make([]player.Player, 0, len(ratings))
	for _, g := range ratings {
		p := player.Player{
			Name:        g.Name,
			TeamName:    g.TeamAbbr,
			TeamAbbr:    g.TeamAbbr,
			Position:    player.PositionGoalie,
			Rating:      g.Rating,
			UniqueTrait: goalieTrait(rank[g.ID], g.Rating),
			Height:      "?",
		}
		id, err := strconv.ParseInt(g.ID, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse goalie id %q", g.ID)
		}
		p.ID = id

		if bio, ok := lookups[g.ID]; ok {
			p.JerseyNumber = bio.JerseyNumber
			p.Height = bio.Height
			if !bio.BirthDate.IsZero() {
				p.Age = ageAt(bio.BirthDate, l.now())
			}
		}

		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "goalie %s", g.Name)
		}
		goalies = append(goalies, p)
	}

	return goalies, nil
}

func readGoalieRatings(path string) ([]goalieRating, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idCol, err := column(header, "playerId")
	if err != nil {
		return nil, errors.Wrapf(err, "ratings csv %s", path)
	}
	nameCol, err := column(header, "name")
	if err != nil {
		return nil, errors.Wrapf(err, "ratings csv %s", path)
	}
	teamCol, err := column(header, "team")
	if err != nil {
		return nil, errors.Wrapf(err, "ratings csv %s", path)
	}
	ratingCol, err := column(header, "Overall_Talent_Rating")
	if err != nil {
		return nil, errors.Wrapf(err, "ratings csv %s", path)
	}

	ratings := make([]goalieRating, 0, len(rows))
	for i, row := range rows {
		rating, err := strconv.ParseFloat(strings.TrimSpace(row[ratingCol]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "ratings csv %s row %d", path, i+2)
		}
		ratings = append(ratings, goalieRating{
			ID:       strings.TrimSpace(row[idCol]),
			Name:     strings.TrimSpace(row[nameCol]),
			TeamAbbr: strings.ToUpper(strings.TrimSpace(row[teamCol])),
			Rating:   int(math.Round(rating)),
		})
	}

	return ratings, nil
}

func readGoalieLookups(path string) (map[string]goalieLookup, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idCol, err := column(header, "playerId")
	if err != nil {
		return nil, errors.Wrapf(err, "lookup csv %s", path)
	}
	numberCol, err := column(header, "primaryNumber")
	if err != nil {
		return nil, errors.Wrapf(err, "lookup csv %s", path)
	}
	heightCol, err := column(header, "height")
	if err != nil {
		return nil, errors.Wrapf(err, "lookup csv %s", path)
	}
	birthCol, err := column(header, "birthDate")
	if err != nil {
		return nil, errors.Wrapf(err, "lookup csv %s", path)
	}

	lookups := make(map[string]goalieLookup, len(rows))
	for _, row := range rows {
		bio := goalieLookup{
			JerseyNumber: parsePlaceholderInt(row[numberCol]),
			Height:       strings.TrimSpace(row[heightCol]),
		}
		if birth, err := time.Parse("2006-01-02", strings.TrimSpace(row[birthCol])); err == nil {
			bio.BirthDate = birth
		}
		lookups[strings.TrimSpace(row[idCol])] = bio
	}

	return lookups, nil
}

func readCSV(path string) (rows [][]string, header map[string]int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open csv %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read csv %s", path)
	}
	if len(records) < 2 {
		return nil, nil, errors.Newf("csv %s has no data rows", path)
	}

	header = make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}

	return records[1:], header, nil
}

func column(header map[string]int, name string) (int, error) {
	idx, ok := header[name]
	if !ok {
		return 0, errors.Newf("missing column %q", name)
	}

	return idx, nil
}

// goalieTrait mirrors the trait ladder of the build pipeline: league
// rank first, raw rating as the fallback.
func goalieTrait(rank, rating int) string {
	switch {
	case rank == 1:
		return "League's highest-rated goaltender. A true wall."
	case rank <= 10:
		return "Top 10 rated goaltender in the league."
	case rating >= 80:
		return "A reliable starter who steals games."
	default:
		return "A steady backup who keeps his team in it."
	}
}

func ageAt(birth, now time.Time) int {
	return int(now.Sub(birth).Hours() / 24 / 365.25)
}

package dataset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/scoutschool/daily-shift/internal/domain/roster"
)

// structureRecord mirrors the line-structure JSON: lines keyed "Line 1",
// "Line 2", ..., each holding slot-id → player-name pairs.
type structureRecord struct {
	TeamAbbr string                       `json:"team_abbr" validate:"required"`
	Lines    map[string]map[string]string `json:"lines" validate:"required,min=1"`
}

// LoadStructures reads the answer-key JSON and resolves each placed
// name's rating through the already-loaded player pool. A placed name
// absent from the pool fails the load: an answer key referencing a
// player the questions can never show is a broken pack.
func (l *Loader) LoadStructures(path string, ratings map[string]int) ([]roster.LineStructure, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var records []structureRecord
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrapf(err, "decode line structures %s", path)
	}

	structures := make([]roster.LineStructure, 0, len(records))
	for _, rec := range records {
		if err := l.validate.Struct(rec); err != nil {
			return nil, errors.Wrapf(err, "line structure for %q", rec.TeamAbbr)
		}
		structure, err := rec.toDomain(ratings)
		if err != nil {
			return nil, errors.Wrapf(err, "line structure for %q", rec.TeamAbbr)
		}
		if err := structure.Validate(); err != nil {
			return nil, errors.Wrapf(err, "line structure for %q", rec.TeamAbbr)
		}
		structures = append(structures, structure)
	}

	return structures, nil
}

func (rec structureRecord) toDomain(ratings map[string]int) (roster.LineStructure, error) {
	structure := roster.LineStructure{
		TeamAbbr: strings.ToUpper(strings.TrimSpace(rec.TeamAbbr)),
	}

	for label, slots := range rec.Lines {
		number, err := lineNumber(label)
		if err != nil {
			return roster.LineStructure{}, err
		}

		line := roster.Line{
			Number: number,
			Slots:  make(map[roster.SlotID]roster.Assignment, len(slots)),
		}
		for slotKey, name := range slots {
			name = strings.TrimSpace(name)
			rating, ok := ratings[name]
			if !ok {
				return roster.LineStructure{}, errors.Newf("%s %s references unknown player %q", label, slotKey, name)
			}
			line.Slots[roster.SlotID(strings.ToUpper(strings.TrimSpace(slotKey)))] = roster.Assignment{
				PlayerName: name,
				Rating:     rating,
			}
		}
		structure.Lines = append(structure.Lines, line)
	}

	sort.Slice(structure.Lines, func(i, j int) bool {
		return structure.Lines[i].Number < structure.Lines[j].Number
	})

	return structure, nil
}

func lineNumber(label string) (int, error) {
	suffix, ok := strings.CutPrefix(strings.TrimSpace(label), "Line ")
	if !ok {
		return 0, errors.Newf("line label %q is not of the form \"Line N\"", label)
	}
	number, err := strconv.Atoi(suffix)
	if err != nil || number < 1 {
		return 0, errors.Newf("line label %q is not of the form \"Line N\"", label)
	}

	return number, nil
}

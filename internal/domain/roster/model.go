package roster

import (
	"fmt"
	"sort"

	"github.com/scoutschool/daily-shift/internal/domain/player"
)

// SlotID names one of the five skater slots inside a line.
type SlotID string

const (
	SlotCenter     SlotID = "C"
	SlotWingOne    SlotID = "W1"
	SlotWingTwo    SlotID = "W2"
	SlotDefenseOne SlotID = "D1"
	SlotDefenseTwo SlotID = "D2"
)

// LineSlots is the canonical slot order within a line.
var LineSlots = []SlotID{SlotCenter, SlotWingOne, SlotWingTwo, SlotDefenseOne, SlotDefenseTwo}

// Accepts reports whether a skater position may fill this slot: the
// center slot takes centers only, wing slots take any forward variant,
// defense slots take defensemen.
func (s SlotID) Accepts(pos player.Position) bool {
	switch s {
	case SlotCenter:
		return pos == player.PositionCenter
	case SlotWingOne, SlotWingTwo:
		return pos == player.PositionCenter || pos == player.PositionLeftWing || pos == player.PositionRightWing
	case SlotDefenseOne, SlotDefenseTwo:
		return pos == player.PositionDefense
	default:
		return false
	}
}

// Assignment is the answer-key entry for one slot.
type Assignment struct {
	PlayerName string
	Rating     int
}

// Line is one named unit of the answer key.
type Line struct {
	Number int
	Slots  map[SlotID]Assignment
}

// LineStructure is a team's full answer key for line construction and
// line-assignment drills. Lines are ordered 1..3.
type LineStructure struct {
	TeamAbbr string
	Lines    []Line
}

// DepthLabel is the assignment answer for skaters outside the top lines.
const DepthLabel = "Depth"

func (ls LineStructure) Validate() error {
	if ls.TeamAbbr == "" {
		return fmt.Errorf("line structure team abbreviation is required")
	}
	if len(ls.Lines) == 0 {
		return fmt.Errorf("line structure has no lines")
	}
	for _, line := range ls.Lines {
		if line.Number < 1 || line.Number > len(ls.Lines) {
			return fmt.Errorf("invalid line number: %d", line.Number)
		}
		for _, slot := range LineSlots {
			if _, ok := line.Slots[slot]; !ok {
				return fmt.Errorf("line %d is missing slot %s", line.Number, slot)
			}
		}
	}

	return nil
}

// LineOf returns the line number a skater belongs to, or 0 when the
// skater is outside the structure (a depth player).
func (ls LineStructure) LineOf(playerName string) int {
	for _, line := range ls.Lines {
		for _, assignment := range line.Slots {
			if assignment.PlayerName == playerName {
				return line.Number
			}
		}
	}

	return 0
}

// AssignmentLabel is the display answer for a line-assignment drill:
// "Line N" for rostered skaters, DepthLabel otherwise.
func (ls LineStructure) AssignmentLabel(playerName string) string {
	if n := ls.LineOf(playerName); n > 0 {
		return fmt.Sprintf("Line %d", n)
	}

	return DepthLabel
}

// CompareSkaters ranks two skaters by lineup position: a lower line
// number ranks higher, any line ranks above depth, and two depth
// skaters fall back to rating. Returns >0 when a ranks above b, <0
// when below, 0 on a genuine tie (same line, or equal-rated depth).
func (ls LineStructure) CompareSkaters(a, b player.Player) int {
	lineA := ls.LineOf(a.Name)
	lineB := ls.LineOf(b.Name)

	switch {
	case lineA > 0 && lineB > 0:
		return lineB - lineA
	case lineA > 0:
		return 1
	case lineB > 0:
		return -1
	default:
		return a.Rating - b.Rating
	}
}

// AssignmentLabels lists every possible answer for this structure in
// display order, Depth last.
func (ls LineStructure) AssignmentLabels() []string {
	labels := make([]string, 0, len(ls.Lines)+1)
	numbers := make([]int, 0, len(ls.Lines))
	for _, line := range ls.Lines {
		numbers = append(numbers, line.Number)
	}
	sort.Ints(numbers)
	for _, n := range numbers {
		labels = append(labels, fmt.Sprintf("Line %d", n))
	}

	return append(labels, DepthLabel)
}

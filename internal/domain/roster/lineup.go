package roster

import (
	"fmt"

	"github.com/scoutschool/daily-shift/internal/domain/player"
)

// UserLineup tracks in-progress slot placements for a construction task.
// Slots hold player names; an empty string means the slot is open.
type UserLineup struct {
	lines map[int]map[SlotID]string
}

func NewUserLineup(lineCount int) *UserLineup {
	lines := make(map[int]map[SlotID]string, lineCount)
	for i := 1; i <= lineCount; i++ {
		slots := make(map[SlotID]string, len(LineSlots))
		for _, slot := range LineSlots {
			slots[slot] = ""
		}
		lines[i] = slots
	}

	return &UserLineup{lines: lines}
}

// Place puts a skater into a slot after checking the position-fit rule.
// An occupied slot is displaced (the previous occupant returns to the
// pool); an invalid placement is rejected with no mutation.
func (u *UserLineup) Place(line int, slot SlotID, p player.Player) (displaced string, err error) {
	slots, ok := u.lines[line]
	if !ok {
		return "", fmt.Errorf("line %d is not part of this task", line)
	}
	if _, ok := slots[slot]; !ok {
		return "", fmt.Errorf("unknown slot %s", slot)
	}
	if !slot.Accepts(p.Position) {
		return "", fmt.Errorf("position %s cannot fill slot %s", p.Position, slot)
	}

	displaced = slots[slot]
	slots[slot] = p.Name

	return displaced, nil
}

// At returns the player name placed in a slot, empty when open.
func (u *UserLineup) At(line int, slot SlotID) string {
	if slots, ok := u.lines[line]; ok {
		return slots[slot]
	}

	return ""
}

// Complete reports whether every slot is filled.
func (u *UserLineup) Complete() bool {
	for _, slots := range u.lines {
		for _, name := range slots {
			if name == "" {
				return false
			}
		}
	}

	return len(u.lines) > 0
}

// LineCount returns how many lines the task covers.
func (u *UserLineup) LineCount() int {
	return len(u.lines)
}

package roster

import (
	"testing"

	"github.com/scoutschool/daily-shift/internal/domain/player"
)

func testStructure() LineStructure {
	return LineStructure{
		TeamAbbr: "BOS",
		Lines: []Line{
			{Number: 1, Slots: map[SlotID]Assignment{
				SlotCenter:     {PlayerName: "Center One", Rating: 92},
				SlotWingOne:    {PlayerName: "Wing One", Rating: 90},
				SlotWingTwo:    {PlayerName: "Wing Two", Rating: 88},
				SlotDefenseOne: {PlayerName: "Defense One", Rating: 87},
				SlotDefenseTwo: {PlayerName: "Defense Two", Rating: 85},
			}},
			{Number: 2, Slots: map[SlotID]Assignment{
				SlotCenter:     {PlayerName: "Center Two", Rating: 84},
				SlotWingOne:    {PlayerName: "Wing Three", Rating: 82},
				SlotWingTwo:    {PlayerName: "Wing Four", Rating: 80},
				SlotDefenseOne: {PlayerName: "Defense Three", Rating: 79},
				SlotDefenseTwo: {PlayerName: "Defense Four", Rating: 78},
			}},
		},
	}
}

func TestSlotAccepts(t *testing.T) {
	cases := []struct {
		slot SlotID
		pos  player.Position
		want bool
	}{
		{SlotCenter, player.PositionCenter, true},
		{SlotCenter, player.PositionLeftWing, false},
		{SlotWingOne, player.PositionCenter, true},
		{SlotWingTwo, player.PositionRightWing, true},
		{SlotWingOne, player.PositionDefense, false},
		{SlotDefenseOne, player.PositionDefense, true},
		{SlotDefenseTwo, player.PositionCenter, false},
		{SlotDefenseOne, player.PositionGoalie, false},
	}

	for _, tc := range cases {
		if got := tc.slot.Accepts(tc.pos); got != tc.want {
			t.Errorf("slot %s accepts %s = %v, want %v", tc.slot, tc.pos, got, tc.want)
		}
	}
}

func TestLineStructure_AssignmentLabel(t *testing.T) {
	ls := testStructure()

	if got := ls.AssignmentLabel("Center Two"); got != "Line 2" {
		t.Fatalf("expected Line 2, got %s", got)
	}
	if got := ls.AssignmentLabel("Nobody"); got != DepthLabel {
		t.Fatalf("expected %s, got %s", DepthLabel, got)
	}
	if got := ls.LineOf("Wing One"); got != 1 {
		t.Fatalf("expected line 1, got %d", got)
	}
}

func TestUserLineup_PlaceRejectsPositionMismatch(t *testing.T) {
	u := NewUserLineup(1)

	defender := player.Player{ID: 1, Name: "D One", TeamAbbr: "BOS", Position: player.PositionDefense, Rating: 80}
	if _, err := u.Place(1, SlotCenter, defender); err == nil {
		t.Fatal("expected defenseman in center slot to be rejected")
	}
	if got := u.At(1, SlotCenter); got != "" {
		t.Fatalf("rejected placement must not mutate the lineup, got %q", got)
	}
}

func TestUserLineup_PlaceDisplacesOccupant(t *testing.T) {
	u := NewUserLineup(1)

	first := player.Player{ID: 1, Name: "First", TeamAbbr: "BOS", Position: player.PositionCenter, Rating: 80}
	second := player.Player{ID: 2, Name: "Second", TeamAbbr: "BOS", Position: player.PositionCenter, Rating: 81}

	if _, err := u.Place(1, SlotCenter, first); err != nil {
		t.Fatalf("place first: %v", err)
	}
	displaced, err := u.Place(1, SlotCenter, second)
	if err != nil {
		t.Fatalf("place second: %v", err)
	}
	if displaced != "First" {
		t.Fatalf("expected First displaced, got %q", displaced)
	}
	if got := u.At(1, SlotCenter); got != "Second" {
		t.Fatalf("expected Second in slot, got %q", got)
	}
}

func TestUserLineup_Complete(t *testing.T) {
	u := NewUserLineup(1)
	if u.Complete() {
		t.Fatal("empty lineup must not be complete")
	}

	players := []player.Player{
		{ID: 1, Name: "C", Position: player.PositionCenter},
		{ID: 2, Name: "W1", Position: player.PositionLeftWing},
		{ID: 3, Name: "W2", Position: player.PositionRightWing},
		{ID: 4, Name: "D1", Position: player.PositionDefense},
		{ID: 5, Name: "D2", Position: player.PositionDefense},
	}
	for i, slot := range LineSlots {
		if _, err := u.Place(1, slot, players[i]); err != nil {
			t.Fatalf("place %s: %v", slot, err)
		}
	}

	if !u.Complete() {
		t.Fatal("expected lineup to be complete")
	}
}

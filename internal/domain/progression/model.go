package progression

import (
	"fmt"
	"slices"

	"github.com/scoutschool/daily-shift/internal/domain/question"
)

// Phase is one stage of the per-team mastery ladder.
type Phase int

const (
	PhaseIdle      Phase = 0
	PhaseIdentify  Phase = 1
	PhaseEvaluate  Phase = 2
	PhaseConstruct Phase = 3
	PhaseTandem    Phase = 4
	PhaseMastered  Phase = 5
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseIdentify:
		return "identify"
	case PhaseEvaluate:
		return "evaluate"
	case PhaseConstruct:
		return "construct"
	case PhaseTandem:
		return "tandem"
	case PhaseMastered:
		return "mastered"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the persisted progression blob plus the in-flight phase
// counters for the team currently being worked.
type State struct {
	MasteredTeams []string
	UnlockedTeams []string
	FavoriteTeam  string

	CurrentTeam   string
	CurrentPhase  Phase
	PhaseProgress int
	PhaseCorrect  int
}

func (s State) Validate() error {
	if s.FavoriteTeam != "" && !s.IsUnlocked(s.FavoriteTeam) {
		return fmt.Errorf("favorite team %s must be unlocked", s.FavoriteTeam)
	}
	if s.CurrentPhase < PhaseIdle || s.CurrentPhase > PhaseMastered {
		return fmt.Errorf("invalid phase: %d", int(s.CurrentPhase))
	}

	return nil
}

func (s State) IsMastered(teamAbbr string) bool {
	return slices.Contains(s.MasteredTeams, teamAbbr)
}

func (s State) IsUnlocked(teamAbbr string) bool {
	return slices.Contains(s.UnlockedTeams, teamAbbr)
}

// Master adds a team to the mastered set. Idempotent: returns false
// when the team was already mastered.
func (s *State) Master(teamAbbr string) bool {
	if s.IsMastered(teamAbbr) {
		return false
	}
	s.MasteredTeams = append(s.MasteredTeams, teamAbbr)

	return true
}

// Unlock adds a team to the unlocked set without duplicating.
func (s *State) Unlock(teamAbbr string) bool {
	if s.IsUnlocked(teamAbbr) {
		return false
	}
	s.UnlockedTeams = append(s.UnlockedTeams, teamAbbr)

	return true
}

// ResetPhaseCounters zeroes the in-flight batch counters; a failed
// batch retries the same phase with no carried progress.
func (s *State) ResetPhaseCounters() {
	s.PhaseProgress = 0
	s.PhaseCorrect = 0
}

// DailyRecord is one calendar day's challenge. Once Completed the day
// can never be regenerated; the stored record gates replay.
type DailyRecord struct {
	DateKey      string
	Questions    []question.Question
	Completed    bool
	FinalScore   int
	FinalCorrect int
	Mistakes     []question.Mistake
	TimeElapsed  int
}

func (r DailyRecord) Validate() error {
	if r.DateKey == "" {
		return fmt.Errorf("daily record date key is required")
	}
	if len(r.Questions) == 0 {
		return fmt.Errorf("daily record has no questions")
	}

	return nil
}

package question

import "fmt"

// Kind tags the question variants the generator can produce.
type Kind string

const (
	KindIdentity   Kind = "identity"
	KindPosition   Kind = "position"
	KindJersey     Kind = "jersey"
	KindMatchup    Kind = "matchup"
	KindLineAssign Kind = "line_assign"
	KindTandem     Kind = "tandem"
)

// OptionCount returns how many options a multiple-choice variant
// carries. Matchups are two players plus an explicit tie option;
// positional drills offer the three normalized categories.
func (k Kind) OptionCount() int {
	switch k {
	case KindMatchup, KindPosition:
		return 3
	default:
		return 4
	}
}

// Debrief is the review payload attached to each question and mistake.
type Debrief struct {
	PlayerName string
	Trait      string
}

// Question is one multiple-choice item. Options always contain the
// answer exactly once; option order is already shuffled by the
// generator. Tandem tasks are not questions, see TandemTask.
type Question struct {
	Kind    Kind
	Prompt  string
	Options []string
	Answer  string
	Debrief Debrief
}

func (q Question) Validate() error {
	if q.Kind == "" || q.Kind == KindTandem {
		return fmt.Errorf("invalid question kind: %q", q.Kind)
	}
	if q.Prompt == "" {
		return fmt.Errorf("question prompt is required")
	}
	if want := q.Kind.OptionCount(); len(q.Options) != want {
		return fmt.Errorf("%s question needs %d options, has %d", q.Kind, want, len(q.Options))
	}

	answerCount := 0
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("empty option value")
		}
		if _, dup := seen[opt]; dup {
			return fmt.Errorf("duplicate option value: %q", opt)
		}
		seen[opt] = struct{}{}
		if opt == q.Answer {
			answerCount++
		}
	}
	if answerCount != 1 {
		return fmt.Errorf("options must contain the answer exactly once, found %d", answerCount)
	}

	return nil
}

// TandemTask is the goalie-ranking placement task. Starter and Backup
// name the two highest-rated goalies; completion is checked after every
// placement rather than on submit.
type TandemTask struct {
	TeamAbbr string
	Goalies  []string
	Starter  string
	Backup   string
}

func (t TandemTask) Validate() error {
	if t.TeamAbbr == "" {
		return fmt.Errorf("tandem team abbreviation is required")
	}
	if len(t.Goalies) < 2 {
		return fmt.Errorf("tandem needs at least two goalies, has %d", len(t.Goalies))
	}
	if t.Starter == "" || t.Backup == "" || t.Starter == t.Backup {
		return fmt.Errorf("tandem starter/backup pair is invalid")
	}

	return nil
}

// Mistake records one wrong or unanswered item for the debrief screen.
// Submitted is empty when the user left the item blank.
type Mistake struct {
	Location  string
	Submitted string
	Correct   string
	Debrief   Debrief
}

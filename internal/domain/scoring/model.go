package scoring

import (
	"github.com/scoutschool/daily-shift/internal/domain/question"
)

const (
	// QuestionsPerShift is the fixed size of a daily challenge batch.
	QuestionsPerShift = 10

	// DefaultTimeLimitSeconds is the countdown length for timed modes.
	DefaultTimeLimitSeconds = 60

	PointsPerTriviaQuestion = 100
	PointsPerLineupSlot     = 10
)

// Result is the outcome of scoring a trivia batch or a constructed
// lineup. FinalScore already includes the speed bonus in timed modes.
type Result struct {
	Correct    int
	Total      int
	Accuracy   float64
	SpeedBonus float64
	BaseScore  float64
	FinalScore int
	Mistakes   []question.Mistake
}

// Perfect reports a flawless batch, the condition that feeds the streak.
func (r Result) Perfect() bool {
	return r.Total > 0 && r.Correct == r.Total
}

// Stats is the cumulative score record persisted across sessions.
// LastPlayedDate is a YYYY-MM-DD key used to dedupe streak updates.
type Stats struct {
	HighScore      int
	CurrentStreak  int
	TotalScore     int
	LastPlayedDate string
}

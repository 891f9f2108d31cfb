package sqlite

import (
	"github.com/scoutschool/daily-shift/internal/domain/progression"
	"github.com/scoutschool/daily-shift/internal/domain/question"
	"github.com/scoutschool/daily-shift/internal/domain/scoring"
)

// Persisted payload shapes. These are decoupled from the domain types
// so a domain rename can never silently orphan stored rows.

type progressionStateModel struct {
	MasteredTeams []string `json:"mastered_teams"`
	UnlockedTeams []string `json:"unlocked_teams"`
	FavoriteTeam  string   `json:"favorite_team"`
	CurrentTeam   string   `json:"current_team"`
	CurrentPhase  int      `json:"current_phase"`
	PhaseProgress int      `json:"phase_progress"`
	PhaseCorrect  int      `json:"phase_correct"`
}

func progressionStateToModel(state progression.State) progressionStateModel {
	return progressionStateModel{
		MasteredTeams: append([]string(nil), state.MasteredTeams...),
		UnlockedTeams: append([]string(nil), state.UnlockedTeams...),
		FavoriteTeam:  state.FavoriteTeam,
		CurrentTeam:   state.CurrentTeam,
		CurrentPhase:  int(state.CurrentPhase),
		PhaseProgress: state.PhaseProgress,
		PhaseCorrect:  state.PhaseCorrect,
	}
}

func (m progressionStateModel) toDomain() progression.State {
	return progression.State{
		MasteredTeams: append([]string(nil), m.MasteredTeams...),
		UnlockedTeams: append([]string(nil), m.UnlockedTeams...),
		FavoriteTeam:  m.FavoriteTeam,
		CurrentTeam:   m.CurrentTeam,
		CurrentPhase:  progression.Phase(m.CurrentPhase),
		PhaseProgress: m.PhaseProgress,
		PhaseCorrect:  m.PhaseCorrect,
	}
}

type debriefModel struct {
	PlayerName string `json:"player_name"`
	Trait      string `json:"trait"`
}

type questionModel struct {
	Kind    string       `json:"kind"`
	Prompt  string       `json:"prompt"`
	Options []string     `json:"options"`
	Answer  string       `json:"answer"`
	Debrief debriefModel `json:"debrief"`
}

type mistakeModel struct {
	Location  string       `json:"location"`
	Submitted string       `json:"submitted"`
	Correct   string       `json:"correct"`
	Debrief   debriefModel `json:"debrief"`
}

type dailyRecordModel struct {
	DateKey      string          `json:"date_key"`
	Questions    []questionModel `json:"questions"`
	Completed    bool            `json:"completed"`
	FinalScore   int             `json:"final_score"`
	FinalCorrect int             `json:"final_correct"`
	Mistakes     []mistakeModel  `json:"mistakes,omitempty"`
	TimeElapsed  int             `json:"time_elapsed"`
}

func dailyRecordToModel(record progression.DailyRecord) dailyRecordModel {
	m := dailyRecordModel{
		DateKey:      record.DateKey,
		Completed:    record.Completed,
		FinalScore:   record.FinalScore,
		FinalCorrect: record.FinalCorrect,
		TimeElapsed:  record.TimeElapsed,
	}
	for _, q := range record.Questions {
		m.Questions = append(m.Questions, questionModel{
			Kind:    string(q.Kind),
			Prompt:  q.Prompt,
			Options: append([]string(nil), q.Options...),
			Answer:  q.Answer,
			Debrief: debriefModel{PlayerName: q.Debrief.PlayerName, Trait: q.Debrief.Trait},
		})
	}
	for _, mistake := range record.Mistakes {
		m.Mistakes = append(m.Mistakes, mistakeModel{
			Location:  mistake.Location,
			Submitted: mistake.Submitted,
			Correct:   mistake.Correct,
			Debrief:   debriefModel{PlayerName: mistake.Debrief.PlayerName, Trait: mistake.Debrief.Trait},
		})
	}

	return m
}

func (m dailyRecordModel) toDomain() progression.DailyRecord {
	record := progression.DailyRecord{
		DateKey:      m.DateKey,
		Completed:    m.Completed,
		FinalScore:   m.FinalScore,
		FinalCorrect: m.FinalCorrect,
		TimeElapsed:  m.TimeElapsed,
	}
	for _, q := range m.Questions {
		record.Questions = append(record.Questions, question.Question{
			Kind:    question.Kind(q.Kind),
			Prompt:  q.Prompt,
			Options: append([]string(nil), q.Options...),
			Answer:  q.Answer,
			Debrief: question.Debrief{PlayerName: q.Debrief.PlayerName, Trait: q.Debrief.Trait},
		})
	}
	for _, mistake := range m.Mistakes {
		record.Mistakes = append(record.Mistakes, question.Mistake{
			Location:  mistake.Location,
			Submitted: mistake.Submitted,
			Correct:   mistake.Correct,
			Debrief:   question.Debrief{PlayerName: mistake.Debrief.PlayerName, Trait: mistake.Debrief.Trait},
		})
	}

	return record
}

type statsModel struct {
	HighScore      int    `json:"high_score"`
	CurrentStreak  int    `json:"current_streak"`
	TotalScore     int    `json:"total_score"`
	LastPlayedDate string `json:"last_played_date"`
}

func statsToModel(stats scoring.Stats) statsModel {
	return statsModel{
		HighScore:      stats.HighScore,
		CurrentStreak:  stats.CurrentStreak,
		TotalScore:     stats.TotalScore,
		LastPlayedDate: stats.LastPlayedDate,
	}
}

func (m statsModel) toDomain() scoring.Stats {
	return scoring.Stats{
		HighScore:      m.HighScore,
		CurrentStreak:  m.CurrentStreak,
		TotalScore:     m.TotalScore,
		LastPlayedDate: m.LastPlayedDate,
	}
}

package httpapi

import (
	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/progression"
	"github.com/scoutschool/daily-shift/internal/domain/question"
	"github.com/scoutschool/daily-shift/internal/domain/scoring"
	"github.com/scoutschool/daily-shift/internal/usecase"
)

type teamDTO struct {
	Abbr     string `json:"abbr"`
	Name     string `json:"name"`
	Unlocked bool   `json:"unlocked"`
	Mastered bool   `json:"mastered"`
	Favorite bool   `json:"favorite"`
}

func teamViewToDTO(view usecase.TeamView) teamDTO {
	return teamDTO{
		Abbr:     view.Abbr,
		Name:     view.Name,
		Unlocked: view.Unlocked,
		Mastered: view.Mastered,
		Favorite: view.Favorite,
	}
}

type playerDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TeamName     string `json:"team_name"`
	TeamAbbr     string `json:"team_abbr"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jersey_number"`
	Age          int    `json:"age,omitempty"`
	Height       string `json:"height,omitempty"`
	Rating       int    `json:"rating"`
	UniqueTrait  string `json:"unique_trait,omitempty"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:           p.ID,
		Name:         p.Name,
		TeamName:     p.TeamName,
		TeamAbbr:     p.TeamAbbr,
		Position:     string(p.Position),
		JerseyNumber: p.JerseyNumber,
		Age:          p.Age,
		Height:       p.Height,
		Rating:       p.Rating,
		UniqueTrait:  p.UniqueTrait,
	}
}

type rosterDTO struct {
	Team      teamSummaryDTO `json:"team"`
	Skaters   []playerDTO    `json:"skaters"`
	Goalies   []playerDTO    `json:"goalies"`
	LineCount int            `json:"line_count"`
}

type teamSummaryDTO struct {
	Abbr string `json:"abbr"`
	Name string `json:"name"`
}

func rosterViewToDTO(view usecase.RosterView) rosterDTO {
	skaters := make([]playerDTO, 0, len(view.Skaters))
	for _, p := range view.Skaters {
		skaters = append(skaters, playerToDTO(p))
	}
	goalies := make([]playerDTO, 0, len(view.Goalies))
	for _, p := range view.Goalies {
		goalies = append(goalies, playerToDTO(p))
	}

	return rosterDTO{
		Team:      teamSummaryDTO{Abbr: view.Team.Abbr, Name: view.Team.Name},
		Skaters:   skaters,
		Goalies:   goalies,
		LineCount: view.LineCount,
	}
}

type debriefDTO struct {
	PlayerName string `json:"player_name"`
	Trait      string `json:"trait,omitempty"`
}

type questionDTO struct {
	Kind    string     `json:"kind"`
	Prompt  string     `json:"prompt"`
	Options []string   `json:"options"`
	Answer  string     `json:"answer"`
	Debrief debriefDTO `json:"debrief"`
}

func questionToDTO(q question.Question) questionDTO {
	return questionDTO{
		Kind:    string(q.Kind),
		Prompt:  q.Prompt,
		Options: q.Options,
		Answer:  q.Answer,
		Debrief: debriefDTO{PlayerName: q.Debrief.PlayerName, Trait: q.Debrief.Trait},
	}
}

func questionsToDTO(questions []question.Question) []questionDTO {
	items := make([]questionDTO, 0, len(questions))
	for _, q := range questions {
		items = append(items, questionToDTO(q))
	}
	return items
}

type mistakeDTO struct {
	Location  string     `json:"location"`
	Submitted string     `json:"submitted"`
	Correct   string     `json:"correct"`
	Debrief   debriefDTO `json:"debrief"`
}

func mistakesToDTO(mistakes []question.Mistake) []mistakeDTO {
	items := make([]mistakeDTO, 0, len(mistakes))
	for _, m := range mistakes {
		items = append(items, mistakeDTO{
			Location:  m.Location,
			Submitted: m.Submitted,
			Correct:   m.Correct,
			Debrief:   debriefDTO{PlayerName: m.Debrief.PlayerName, Trait: m.Debrief.Trait},
		})
	}
	return items
}

type resultDTO struct {
	Correct    int          `json:"correct"`
	Total      int          `json:"total"`
	Accuracy   float64      `json:"accuracy"`
	SpeedBonus float64      `json:"speed_bonus"`
	BaseScore  float64      `json:"base_score"`
	FinalScore int          `json:"final_score"`
	Mistakes   []mistakeDTO `json:"mistakes"`
}

func resultToDTO(result scoring.Result) resultDTO {
	return resultDTO{
		Correct:    result.Correct,
		Total:      result.Total,
		Accuracy:   result.Accuracy,
		SpeedBonus: result.SpeedBonus,
		BaseScore:  result.BaseScore,
		FinalScore: result.FinalScore,
		Mistakes:   mistakesToDTO(result.Mistakes),
	}
}

type statsDTO struct {
	HighScore      int    `json:"high_score"`
	CurrentStreak  int    `json:"current_streak"`
	TotalScore     int    `json:"total_score"`
	LastPlayedDate string `json:"last_played_date,omitempty"`
}

func statsToDTO(stats scoring.Stats) statsDTO {
	return statsDTO{
		HighScore:      stats.HighScore,
		CurrentStreak:  stats.CurrentStreak,
		TotalScore:     stats.TotalScore,
		LastPlayedDate: stats.LastPlayedDate,
	}
}

type dailyRecordDTO struct {
	DateKey      string        `json:"date_key"`
	Questions    []questionDTO `json:"questions"`
	Completed    bool          `json:"completed"`
	FinalScore   int           `json:"final_score"`
	FinalCorrect int           `json:"final_correct"`
	Mistakes     []mistakeDTO  `json:"mistakes,omitempty"`
	TimeElapsed  int           `json:"time_elapsed"`
}

func dailyRecordToDTO(record progression.DailyRecord) dailyRecordDTO {
	return dailyRecordDTO{
		DateKey:      record.DateKey,
		Questions:    questionsToDTO(record.Questions),
		Completed:    record.Completed,
		FinalScore:   record.FinalScore,
		FinalCorrect: record.FinalCorrect,
		Mistakes:     mistakesToDTO(record.Mistakes),
		TimeElapsed:  record.TimeElapsed,
	}
}

type dailyResultDTO struct {
	Record dailyRecordDTO `json:"record"`
	Score  resultDTO      `json:"score"`
	Stats  statsDTO       `json:"stats"`
}

type progressionStateDTO struct {
	MasteredTeams []string `json:"mastered_teams"`
	UnlockedTeams []string `json:"unlocked_teams"`
	FavoriteTeam  string   `json:"favorite_team,omitempty"`
	CurrentTeam   string   `json:"current_team,omitempty"`
	CurrentPhase  string   `json:"current_phase"`
	PhaseProgress int      `json:"phase_progress"`
	PhaseCorrect  int      `json:"phase_correct"`
}

func progressionStateToDTO(state progression.State) progressionStateDTO {
	return progressionStateDTO{
		MasteredTeams: state.MasteredTeams,
		UnlockedTeams: state.UnlockedTeams,
		FavoriteTeam:  state.FavoriteTeam,
		CurrentTeam:   state.CurrentTeam,
		CurrentPhase:  state.CurrentPhase.String(),
		PhaseProgress: state.PhaseProgress,
		PhaseCorrect:  state.PhaseCorrect,
	}
}

type tandemTaskDTO struct {
	TeamAbbr string   `json:"team_abbr"`
	Goalies  []string `json:"goalies"`
	Starter  string   `json:"starter"`
	Backup   string   `json:"backup"`
}

func tandemTaskToDTO(task question.TandemTask) tandemTaskDTO {
	return tandemTaskDTO{
		TeamAbbr: task.TeamAbbr,
		Goalies:  task.Goalies,
		Starter:  task.Starter,
		Backup:   task.Backup,
	}
}

type phaseStartDTO struct {
	Team      string         `json:"team"`
	Phase     string         `json:"phase"`
	Questions []questionDTO  `json:"questions,omitempty"`
	Tandem    *tandemTaskDTO `json:"tandem,omitempty"`
}

func phaseStartToDTO(start usecase.PhaseStart) phaseStartDTO {
	dto := phaseStartDTO{
		Team:      start.Team,
		Phase:     start.Phase.String(),
		Questions: questionsToDTO(start.Questions),
	}
	if start.Tandem != nil {
		tandem := tandemTaskToDTO(*start.Tandem)
		dto.Tandem = &tandem
	}
	return dto
}

type phaseOutcomeDTO struct {
	Team         string  `json:"team"`
	Phase        string  `json:"phase"`
	Accuracy     float64 `json:"accuracy"`
	Advanced     bool    `json:"advanced"`
	NextPhase    string  `json:"next_phase"`
	Mastered     bool    `json:"mastered"`
	UnlockedTeam string  `json:"unlocked_team,omitempty"`
}

func phaseOutcomeToDTO(outcome usecase.PhaseOutcome) phaseOutcomeDTO {
	return phaseOutcomeDTO{
		Team:         outcome.Team,
		Phase:        outcome.Phase.String(),
		Accuracy:     outcome.Accuracy,
		Advanced:     outcome.Advanced,
		NextPhase:    outcome.NextPhase.String(),
		Mastered:     outcome.Mastered,
		UnlockedTeam: outcome.UnlockedTeam,
	}
}

type tandemOutcomeDTO struct {
	Complete     bool   `json:"complete"`
	Mastered     bool   `json:"mastered"`
	UnlockedTeam string `json:"unlocked_team,omitempty"`
}

func tandemOutcomeToDTO(outcome usecase.TandemOutcome) tandemOutcomeDTO {
	return tandemOutcomeDTO{
		Complete:     outcome.Complete,
		Mastered:     outcome.Mastered,
		UnlockedTeam: outcome.UnlockedTeam,
	}
}

type sessionDTO struct {
	SessionID        string `json:"session_id"`
	TimeLimit        int    `json:"time_limit,omitempty"`
	RemainingSeconds int    `json:"remaining_seconds"`
	Active           bool   `json:"active"`
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/question"
	"github.com/scoutschool/daily-shift/internal/domain/roster"
	"github.com/scoutschool/daily-shift/internal/domain/scoring"
	"github.com/scoutschool/daily-shift/internal/platform/rng"
)

const (
	// TieOptionRating labels the explicit tie answer in rating matchups.
	TieOptionRating = "They have the same rating"
	// TieOptionLine labels the tie answer in lineup-rank matchups.
	TieOptionLine = "Same line"

	matchupDeltaMin = 5
	matchupDeltaMax = 15

	identityDistractors = 3
	jerseyDistractors   = 3
)

// shuffleSource routes every random decision inside one question through
// either the seeded daily path or true randomness. Each independent
// decision point passes a distinct offset so seeded shuffles cannot
// correlate: 0 option order, 1 distractor order, 2 opponent pick.
type shuffleSource struct {
	seeded bool
	seed   int64
}

func (src shuffleSource) shuffle(items []string, offset int64) {
	if src.seeded {
		rng.Shuffle(items, src.seed+offset)
		return
	}
	rng.ShuffleRandom(items)
}

func (src shuffleSource) shufflePlayers(items []player.Player, offset int64) {
	if src.seeded {
		rng.Shuffle(items, src.seed+offset)
		return
	}
	rng.ShuffleRandom(items)
}

func (src shuffleSource) pick(n int, offset int64) int {
	if src.seeded {
		return rng.Pick(src.seed+offset, n)
	}
	return rng.PickRandom(n)
}

// PracticeInput configures a team-centric or battle practice session.
// One team is a roster drill, two teams is a battle quiz.
type PracticeInput struct {
	Teams []string
	Count int
}

// QuestionService builds fully-formed questions from the player pool and
// line-structure answer keys. Every emitted question has passed
// question.Validate; a pool too thin for valid distractors surfaces
// ErrInsufficientPool instead of a malformed question.
type QuestionService struct {
	playerRepo player.Repository
	rosterRepo roster.Repository
	now        func() time.Time
}

func NewQuestionService(playerRepo player.Repository, rosterRepo roster.Repository) *QuestionService {
	return &QuestionService{
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
		now:        time.Now,
	}
}

// Daily generates the seeded challenge for a calendar date: a 4/3/3 deck
// of identity, positional and jersey checks over a league-wide pool, both
// deck order and player order shuffled by the daily seed. Every caller on
// the same date receives the identical set.
func (s *QuestionService) Daily(ctx context.Context, date time.Time) ([]question.Question, error) {
	ctx, span := startUsecaseSpan(ctx, "QuestionService.Daily")
	defer span.End()

	pool, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players for daily challenge: %w", err)
	}
	if len(pool) < scoring.QuestionsPerShift+identityDistractors {
		return nil, fmt.Errorf("%w: %d players cannot fill a %d-question shift", ErrInsufficientPool, len(pool), scoring.QuestionsPerShift)
	}

	seed := rng.DailySeed(date)

	shuffled := make([]player.Player, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(shuffled, seed)

	deck := []question.Kind{
		question.KindIdentity, question.KindPosition, question.KindJersey,
		question.KindIdentity, question.KindPosition, question.KindJersey,
		question.KindIdentity, question.KindPosition, question.KindJersey,
		question.KindIdentity,
	}
	rng.Shuffle(deck, seed+1)

	questions := make([]question.Question, 0, scoring.QuestionsPerShift)
	for i := 0; i < scoring.QuestionsPerShift; i++ {
		target := shuffled[len(shuffled)-1-i]
		src := shuffleSource{seeded: true, seed: seed + int64(i)}

		q, err := s.buildQuestion(deck[i], pool, target, nil, src)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// Practice generates a non-seeded positional/jersey drill over one or two
// team rosters. Thin rosters are backfilled with random league players
// until the pool can cover the requested count.
func (s *QuestionService) Practice(ctx context.Context, input PracticeInput) ([]question.Question, error) {
	ctx, span := startUsecaseSpan(ctx, "QuestionService.Practice")
	defer span.End()

	if len(input.Teams) == 0 || len(input.Teams) > 2 {
		return nil, fmt.Errorf("%w: practice takes one or two teams", ErrInvalidInput)
	}
	if input.Count <= 0 {
		input.Count = scoring.QuestionsPerShift
	}

	league, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players for practice: %w", err)
	}

	wanted := make(map[string]struct{}, len(input.Teams))
	for _, abbr := range input.Teams {
		abbr = strings.ToUpper(strings.TrimSpace(abbr))
		if abbr == "" {
			return nil, fmt.Errorf("%w: empty team abbreviation", ErrInvalidInput)
		}
		wanted[abbr] = struct{}{}
	}

	pool := make([]player.Player, 0, input.Count)
	inPool := make(map[int64]struct{})
	for _, p := range league {
		if _, ok := wanted[p.TeamAbbr]; ok {
			pool = append(pool, p)
			inPool[p.ID] = struct{}{}
		}
	}

	// Backfill from the rest of the league until the shift is coverable.
	rest := make([]player.Player, 0, len(league))
	for _, p := range league {
		if _, ok := inPool[p.ID]; !ok {
			rest = append(rest, p)
		}
	}
	rng.ShuffleRandom(rest)
	for len(pool) < input.Count && len(rest) > 0 {
		pool = append(pool, rest[len(rest)-1])
		rest = rest[:len(rest)-1]
	}
	if len(pool) < input.Count {
		return nil, fmt.Errorf("%w: only %d players available for a %d-question practice", ErrInsufficientPool, len(pool), input.Count)
	}

	// Practice sessions seed from the wall clock: reproducible within
	// the session, different across sessions.
	modeSeed := rng.TimeSeed(s.now())
	rng.Shuffle(pool, modeSeed)

	deck := make([]question.Kind, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		if i%2 == 0 {
			deck = append(deck, question.KindPosition)
		} else {
			deck = append(deck, question.KindJersey)
		}
	}
	rng.Shuffle(deck, modeSeed+1)

	questions := make([]question.Question, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		src := shuffleSource{seeded: true, seed: modeSeed + int64(i)}
		q, err := s.buildQuestion(deck[i], league, pool[len(pool)-1-i], nil, src)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// PhaseBatch generates the question batch for a mastery phase: identity
// checks for the identify phase, a matchup/line-assignment mix for the
// evaluate phase. Non-seeded; retries see a fresh batch.
func (s *QuestionService) PhaseBatch(ctx context.Context, teamAbbr string, phase int, count int) ([]question.Question, error) {
	ctx, span := startUsecaseSpan(ctx, "QuestionService.PhaseBatch")
	defer span.End()

	teamAbbr = strings.ToUpper(strings.TrimSpace(teamAbbr))
	if teamAbbr == "" {
		return nil, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: batch count must be positive", ErrInvalidInput)
	}

	teamPool, err := s.playerRepo.ListByTeam(ctx, teamAbbr)
	if err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}
	skaters := make([]player.Player, 0, len(teamPool))
	for _, p := range teamPool {
		if p.IsSkater() {
			skaters = append(skaters, p)
		}
	}
	if len(skaters) < count {
		return nil, fmt.Errorf("%w: team %s has %d skaters, need %d", ErrInsufficientPool, teamAbbr, len(skaters), count)
	}

	league, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players for phase batch: %w", err)
	}

	var structure *roster.LineStructure
	var deck []question.Kind
	switch phase {
	case 1:
		for i := 0; i < count; i++ {
			deck = append(deck, question.KindIdentity)
		}
	case 2:
		ls, found, err := s.rosterRepo.GetByTeam(ctx, teamAbbr)
		if err != nil {
			return nil, fmt.Errorf("get line structure: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: no line structure for team %s", ErrNotFound, teamAbbr)
		}
		structure = &ls
		for i := 0; i < count; i++ {
			if i%2 == 0 {
				deck = append(deck, question.KindMatchup)
			} else {
				deck = append(deck, question.KindLineAssign)
			}
		}
	default:
		return nil, fmt.Errorf("%w: phase %d has no question batch", ErrInvalidInput, phase)
	}
	rng.ShuffleRandom(deck)

	rng.ShuffleRandom(skaters)

	src := shuffleSource{}
	questions := make([]question.Question, 0, count)
	for i := 0; i < count; i++ {
		q, err := s.buildQuestion(deck[i], league, skaters[len(skaters)-1-i], structure, src)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// Tandem builds the goalie-ranking task for a team. The two
// highest-rated goalies are canonically Starter and Backup.
func (s *QuestionService) Tandem(ctx context.Context, teamAbbr string) (question.TandemTask, error) {
	ctx, span := startUsecaseSpan(ctx, "QuestionService.Tandem")
	defer span.End()

	teamAbbr = strings.ToUpper(strings.TrimSpace(teamAbbr))
	if teamAbbr == "" {
		return question.TandemTask{}, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}

	goalies, err := s.playerRepo.ListGoaliesByTeam(ctx, teamAbbr)
	if err != nil {
		return question.TandemTask{}, fmt.Errorf("list goalies: %w", err)
	}
	if len(goalies) < 2 {
		return question.TandemTask{}, fmt.Errorf("%w: team %s has %d goalies, tandem needs 2", ErrInsufficientPool, teamAbbr, len(goalies))
	}

	ranked := make([]player.Player, len(goalies))
	copy(ranked, goalies)
	sortPlayersByRatingDesc(ranked)

	names := make([]string, len(ranked))
	for i, g := range ranked {
		names[i] = g.Name
	}
	rng.ShuffleRandom(names)

	task := question.TandemTask{
		TeamAbbr: teamAbbr,
		Goalies:  names,
		Starter:  ranked[0].Name,
		Backup:   ranked[1].Name,
	}
	if err := task.Validate(); err != nil {
		return question.TandemTask{}, fmt.Errorf("%w: %v", ErrInsufficientPool, err)
	}

	return task, nil
}

func (s *QuestionService) buildQuestion(kind question.Kind, pool []player.Player, target player.Player, structure *roster.LineStructure, src shuffleSource) (question.Question, error) {
	var (
		q   question.Question
		err error
	)
	switch kind {
	case question.KindIdentity:
		q, err = generateIdentityCheck(pool, target, src)
	case question.KindPosition:
		q, err = generatePositionalDrill(target, src)
	case question.KindJersey:
		q, err = generateJerseyCheck(pool, target, src)
	case question.KindMatchup:
		if structure != nil {
			q, err = generateLineMatchup(pool, target, *structure, src)
		} else {
			q, err = generateRatingMatchup(pool, target, src)
		}
	case question.KindLineAssign:
		if structure == nil {
			return question.Question{}, fmt.Errorf("%w: line assignment needs a line structure", ErrInvalidInput)
		}
		q, err = generateLineAssignment(target, *structure, src)
	default:
		return question.Question{}, fmt.Errorf("%w: unknown question kind %q", ErrInvalidInput, kind)
	}
	if err != nil {
		return question.Question{}, err
	}
	if err := q.Validate(); err != nil {
		return question.Question{}, fmt.Errorf("generated %s question is malformed: %w", kind, err)
	}

	return q, nil
}

func generateIdentityCheck(pool []player.Player, target player.Player, src shuffleSource) (question.Question, error) {
	candidates := make([]string, 0, len(pool))
	seen := map[string]struct{}{target.Name: {}}
	for _, p := range pool {
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		candidates = append(candidates, p.Name)
	}
	if len(candidates) < identityDistractors {
		return question.Question{}, fmt.Errorf("%w: %d name distractors available, need %d", ErrInsufficientPool, len(candidates), identityDistractors)
	}

	src.shuffle(candidates, 1)
	options := append([]string{target.Name}, candidates[:identityDistractors]...)
	src.shuffle(options, 0)

	return question.Question{
		Kind: question.KindIdentity,
		Prompt: fmt.Sprintf("Which player wears #%d for the %s at %s?",
			target.JerseyNumber, target.TeamName, target.Position.Category()),
		Options: options,
		Answer:  target.Name,
		Debrief: question.Debrief{PlayerName: target.Name, Trait: target.UniqueTrait},
	}, nil
}

func generatePositionalDrill(target player.Player, src shuffleSource) (question.Question, error) {
	options := make([]string, 0, len(player.AllCategories))
	for _, c := range player.AllCategories {
		options = append(options, string(c))
	}
	src.shuffle(options, 0)

	return question.Question{
		Kind: question.KindPosition,
		Prompt: fmt.Sprintf("What is the primary position of %s (%s)?",
			target.Name, target.TeamAbbr),
		Options: options,
		Answer:  string(target.Position.Category()),
		Debrief: question.Debrief{PlayerName: target.Name, Trait: target.UniqueTrait},
	}, nil
}

func generateJerseyCheck(pool []player.Player, target player.Player, src shuffleSource) (question.Question, error) {
	seen := map[int]struct{}{target.JerseyNumber: {}}
	decoys := make([]string, 0, len(pool))
	for _, p := range pool {
		if _, dup := seen[p.JerseyNumber]; dup {
			continue
		}
		seen[p.JerseyNumber] = struct{}{}
		decoys = append(decoys, strconv.Itoa(p.JerseyNumber))
	}
	if len(decoys) < jerseyDistractors {
		return question.Question{}, fmt.Errorf("%w: %d jersey distractors available, need %d", ErrInsufficientPool, len(decoys), jerseyDistractors)
	}

	src.shuffle(decoys, 1)
	options := append([]string{strconv.Itoa(target.JerseyNumber)}, decoys[:jerseyDistractors]...)
	src.shuffle(options, 0)

	return question.Question{
		Kind: question.KindJersey,
		Prompt: fmt.Sprintf("What jersey number does %s (%s) wear?",
			target.Name, target.TeamAbbr),
		Options: options,
		Answer:  strconv.Itoa(target.JerseyNumber),
		Debrief: question.Debrief{PlayerName: target.Name, Trait: target.UniqueTrait},
	}, nil
}

func generateRatingMatchup(pool []player.Player, target player.Player, src shuffleSource) (question.Question, error) {
	// Prefer an opponent inside the interesting rating band.
	banded := make([]player.Player, 0, len(pool))
	others := make([]player.Player, 0, len(pool))
	for _, p := range pool {
		if p.ID == target.ID || p.Name == target.Name {
			continue
		}
		others = append(others, p)
		delta := p.Rating - target.Rating
		if delta < 0 {
			delta = -delta
		}
		if delta >= matchupDeltaMin && delta <= matchupDeltaMax {
			banded = append(banded, p)
		}
	}
	if len(others) == 0 {
		return question.Question{}, fmt.Errorf("%w: no opponent available for rating matchup", ErrInsufficientPool)
	}

	var opponent player.Player
	if len(banded) > 0 {
		opponent = banded[src.pick(len(banded), 2)]
	} else {
		opponent = others[src.pick(len(others), 2)]
	}

	pair := []player.Player{target, opponent}
	src.shufflePlayers(pair, 0)

	label := func(p player.Player) string {
		return fmt.Sprintf("%s (%d)", p.Name, p.Rating)
	}
	options := []string{label(pair[0]), label(pair[1]), TieOptionRating}

	answer := TieOptionRating
	higher := target
	if opponent.Rating > target.Rating {
		higher = opponent
	}
	if target.Rating != opponent.Rating {
		answer = label(higher)
	}

	return question.Question{
		Kind:    question.KindMatchup,
		Prompt:  "Which player has the higher overall rating?",
		Options: options,
		Answer:  answer,
		Debrief: question.Debrief{PlayerName: higher.Name, Trait: higher.UniqueTrait},
	}, nil
}

func generateLineMatchup(pool []player.Player, target player.Player, structure roster.LineStructure, src shuffleSource) (question.Question, error) {
	others := make([]player.Player, 0, len(pool))
	for _, p := range pool {
		if p.ID == target.ID || p.Name == target.Name {
			continue
		}
		if p.TeamAbbr == structure.TeamAbbr && p.IsSkater() {
			others = append(others, p)
		}
	}
	if len(others) == 0 {
		return question.Question{}, fmt.Errorf("%w: no opponent available for line matchup", ErrInsufficientPool)
	}
	opponent := others[src.pick(len(others), 2)]

	pair := []player.Player{target, opponent}
	src.shufflePlayers(pair, 0)
	options := []string{pair[0].Name, pair[1].Name, TieOptionLine}

	answer := TieOptionLine
	winner := target
	switch cmp := structure.CompareSkaters(target, opponent); {
	case cmp > 0:
		answer = target.Name
	case cmp < 0:
		answer = opponent.Name
		winner = opponent
	}

	return question.Question{
		Kind: question.KindMatchup,
		Prompt: fmt.Sprintf("Who plays higher in the %s lineup?",
			structure.TeamAbbr),
		Options: options,
		Answer:  answer,
		Debrief: question.Debrief{PlayerName: winner.Name, Trait: winner.UniqueTrait},
	}, nil
}

func generateLineAssignment(target player.Player, structure roster.LineStructure, src shuffleSource) (question.Question, error) {
	options := structure.AssignmentLabels()
	src.shuffle(options, 0)

	return question.Question{
		Kind: question.KindLineAssign,
		Prompt: fmt.Sprintf("Where does %s slot into the %s lineup?",
			target.Name, structure.TeamAbbr),
		Options: options,
		Answer:  structure.AssignmentLabel(target.Name),
		Debrief: question.Debrief{PlayerName: target.Name, Trait: target.UniqueTrait},
	}, nil
}

func sortPlayersByRatingDesc(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Rating > players[j].Rating
	})
}

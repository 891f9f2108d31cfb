package memory

import (
	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/roster"
)

const (
	TeamAnaheim = "ANA"
	TeamBoston  = "BOS"
	TeamCalgary = "CGY"
)

// SeedPlayers is a three-team league small enough for tests and demos:
// each team carries three full lines, two depth skaters and a goalie
// tandem.
func SeedPlayers() []player.Player {
	return []player.Player{
		// Anaheim
		{ID: 101, Name: "Tage Morgan", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionCenter, JerseyNumber: 19, Age: 27, Height: "6'1\"", Rating: 93, UniqueTrait: "Led the team in faceoff wins three straight seasons."},
		{ID: 102, Name: "Rene Caulfield", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionLeftWing, JerseyNumber: 11, Age: 24, Height: "5'11\"", Rating: 91, UniqueTrait: "Scored on his first career shot."},
		{ID: 103, Name: "Oscar Brandt", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionRightWing, JerseyNumber: 26, Age: 29, Height: "6'0\"", Rating: 90, UniqueTrait: "Has a 20-game point streak to his name."},
		{ID: 104, Name: "Emil Vasko", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionDefense, JerseyNumber: 4, Age: 31, Height: "6'4\"", Rating: 89, UniqueTrait: "Blocks more shots than anyone in the division."},
		{ID: 105, Name: "Johnny Arceneaux", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionDefense, JerseyNumber: 7, Age: 26, Height: "6'2\"", Rating: 88, UniqueTrait: "Converted from forward in juniors."},
		{ID: 106, Name: "Pavel Rystrom", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionCenter, JerseyNumber: 22, Age: 23, Height: "6'0\"", Rating: 85, UniqueTrait: "Youngest alternate captain in franchise history."},
		{ID: 107, Name: "Dmitri Kolvar", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionLeftWing, JerseyNumber: 38, Age: 25, Height: "6'3\"", Rating: 84, UniqueTrait: "Won a gold medal at the world juniors."},
		{ID: 108, Name: "Wes Harlan", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionRightWing, JerseyNumber: 14, Age: 28, Height: "5'10\"", Rating: 83, UniqueTrait: "Fastest skater at the last combine."},
		{ID: 109, Name: "Corey Lachapelle", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionDefense, JerseyNumber: 2, Age: 33, Height: "6'5\"", Rating: 82, UniqueTrait: "Has played over 800 consecutive games."},
		{ID: 110, Name: "Anders Melberg", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionDefense, JerseyNumber: 44, Age: 24, Height: "6'1\"", Rating: 81, UniqueTrait: "Scored a coast-to-coast goal last playoffs."},
		{ID: 111, Name: "Bo Tremaine", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionCenter, JerseyNumber: 91, Age: 22, Height: "6'2\"", Rating: 78, UniqueTrait: "First-round pick two drafts ago."},
		{ID: 112, Name: "Lukas Ferrand", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionLeftWing, JerseyNumber: 63, Age: 27, Height: "6'0\"", Rating: 77, UniqueTrait: "Penalty-kill specialist with three shorthanded goals."},
		{ID: 113, Name: "Matty Olsen", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionRightWing, JerseyNumber: 41, Age: 30, Height: "5'11\"", Rating: 76, UniqueTrait: "Career plus-minus never below zero."},
		{ID: 114, Name: "Grant Ishida", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionDefense, JerseyNumber: 58, Age: 25, Height: "6'3\"", Rating: 75, UniqueTrait: "Logs the most short-handed minutes on the roster."},
		{ID: 115, Name: "Sacha Brodeur", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionDefense, JerseyNumber: 77, Age: 21, Height: "6'2\"", Rating: 74, UniqueTrait: "Quarterbacked the top power play in juniors."},
		{ID: 116, Name: "Teddy Vanek", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionCenter, JerseyNumber: 52, Age: 20, Height: "6'0\"", Rating: 68, UniqueTrait: "Made the roster as an undrafted invite."},
		{ID: 117, Name: "Ilya Drachev", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionLeftWing, JerseyNumber: 71, Age: 23, Height: "6'1\"", Rating: 67, UniqueTrait: "Scored a hat trick in his AHL debut."},
		{ID: 118, Name: "Marek Dostal", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionGoalie, JerseyNumber: 30, Age: 28, Height: "6'4\"", Rating: 88, UniqueTrait: "Leads the league in goals saved above expected."},
		{ID: 119, Name: "Cal Whitfield", TeamName: "Anaheim Ducks", TeamAbbr: TeamAnaheim, Position: player.PositionGoalie, JerseyNumber: 35, Age: 25, Height: "6'2\"", Rating: 83, UniqueTrait: "Posted a shutout in his NHL debut."},

		// Boston
		{ID: 201, Name: "Miles Okafor", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionCenter, JerseyNumber: 17, Age: 28, Height: "6'2\"", Rating: 94, UniqueTrait: "Two-time league faceoff percentage leader."},
		{ID: 202, Name: "Luca Marchetti", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionLeftWing, JerseyNumber: 63, Age: 26, Height: "5'9\"", Rating: 92, UniqueTrait: "Shortest 40-goal scorer in club history."},
		{ID: 203, Name: "Henrik Stahl", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionRightWing, JerseyNumber: 88, Age: 25, Height: "6'3\"", Rating: 91, UniqueTrait: "Owns the hardest shot in the conference."},
		{ID: 204, Name: "Declan Murphy", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionDefense, JerseyNumber: 25, Age: 30, Height: "6'5\"", Rating: 90, UniqueTrait: "Captained two different teams before turning 28."},
		{ID: 205, Name: "Aleksi Rautio", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionDefense, JerseyNumber: 6, Age: 27, Height: "6'1\"", Rating: 89, UniqueTrait: "Has never missed a game to injury."},
		{ID: 206, Name: "Sam Pruitt", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionCenter, JerseyNumber: 13, Age: 29, Height: "6'0\"", Rating: 86, UniqueTrait: "League leader in takeaways last season."},
		{ID: 207, Name: "Viktor Lindqvist", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionLeftWing, JerseyNumber: 29, Age: 24, Height: "6'2\"", Rating: 85, UniqueTrait: "Scored in nine straight games as a rookie."},
		{ID: 208, Name: "Tomas Hrbek", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionRightWing, JerseyNumber: 42, Age: 31, Height: "6'0\"", Rating: 84, UniqueTrait: "Three-time winner of the team's community award."},
		{ID: 209, Name: "Noel Bergevin", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionDefense, JerseyNumber: 54, Age: 26, Height: "6'4\"", Rating: 83, UniqueTrait: "Hit 25 minutes of ice time in a playoff overtime."},
		{ID: 210, Name: "Jack Carmody", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionDefense, JerseyNumber: 48, Age: 23, Height: "6'2\"", Rating: 82, UniqueTrait: "Former college hockey champion and captain."},
		{ID: 211, Name: "Artem Sokolov", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionCenter, JerseyNumber: 72, Age: 22, Height: "6'1\"", Rating: 79, UniqueTrait: "Won the fastest-skater event at the skills competition."},
		{ID: 212, Name: "Brady Quill", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionLeftWing, JerseyNumber: 56, Age: 27, Height: "6'0\"", Rating: 78, UniqueTrait: "Has fought exactly once, and won."},
		{ID: 213, Name: "Petr Janda", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionRightWing, JerseyNumber: 39, Age: 28, Height: "5'11\"", Rating: 77, UniqueTrait: "Best shootout percentage on the roster."},
		{ID: 214, Name: "Gus Thorne", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionDefense, JerseyNumber: 81, Age: 29, Height: "6'6\"", Rating: 76, UniqueTrait: "Tallest skater in the lineup."},
		{ID: 215, Name: "Reid Maclellan", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionDefense, JerseyNumber: 64, Age: 24, Height: "6'0\"", Rating: 75, UniqueTrait: "Walked on at development camp and earned a contract."},
		{ID: 216, Name: "Owen Tisdale", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionCenter, JerseyNumber: 67, Age: 21, Height: "6'1\"", Rating: 69, UniqueTrait: "Scored the fastest goal in team rookie-camp history."},
		{ID: 217, Name: "Felix Aubert", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionRightWing, JerseyNumber: 45, Age: 22, Height: "5'10\"", Rating: 68, UniqueTrait: "Dressed as the emergency forward twice last season."},
		{ID: 218, Name: "Linus Wahlberg", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionGoalie, JerseyNumber: 31, Age: 29, Height: "6'3\"", Rating: 90, UniqueTrait: "Back-to-back shutouts in last year's playoffs."},
		{ID: 219, Name: "Danny Reyes", TeamName: "Boston Bruins", TeamAbbr: TeamBoston, Position: player.PositionGoalie, JerseyNumber: 41, Age: 24, Height: "6'1\"", Rating: 84, UniqueTrait: "Stopped three penalty shots in one month."},

		// Calgary
		{ID: 301, Name: "Ezra Postma", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionCenter, JerseyNumber: 16, Age: 27, Height: "6'0\"", Rating: 92, UniqueTrait: "Has recorded a point in every rink in the league."},
		{ID: 302, Name: "Casey Renfrew", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionLeftWing, JerseyNumber: 9, Age: 25, Height: "6'1\"", Rating: 90, UniqueTrait: "Led all rookies in hits and goals the same year."},
		{ID: 303, Name: "Yuri Balakov", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionRightWing, JerseyNumber: 93, Age: 28, Height: "6'2\"", Rating: 89, UniqueTrait: "Five-time scorer of the fans' goal of the month."},
		{ID: 304, Name: "Harvey Lockhart", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionDefense, JerseyNumber: 3, Age: 32, Height: "6'3\"", Rating: 88, UniqueTrait: "Played a full season without taking a penalty."},
		{ID: 305, Name: "Janne Kivela", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionDefense, JerseyNumber: 21, Age: 26, Height: "6'0\"", Rating: 87, UniqueTrait: "Olympic silver medalist."},
		{ID: 306, Name: "Trey Donato", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionCenter, JerseyNumber: 27, Age: 24, Height: "5'11\"", Rating: 84, UniqueTrait: "Scored his first NHL goal on his birthday."},
		{ID: 307, Name: "Magnus Ostberg", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionLeftWing, JerseyNumber: 62, Age: 26, Height: "6'4\"", Rating: 83, UniqueTrait: "Biggest winger in the division."},
		{ID: 308, Name: "Colt Ramsey", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionRightWing, JerseyNumber: 34, Age: 29, Height: "6'0\"", Rating: 82, UniqueTrait: "Has a goal in four straight season openers."},
		{ID: 309, Name: "Stefan Brankovic", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionDefense, JerseyNumber: 8, Age: 27, Height: "6'2\"", Rating: 81, UniqueTrait: "First player from his hometown to reach the NHL."},
		{ID: 310, Name: "Davey Okonkwo", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionDefense, JerseyNumber: 55, Age: 23, Height: "6'1\"", Rating: 80, UniqueTrait: "Turned down a football scholarship to play hockey."},
		{ID: 311, Name: "Rhys Callahan", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionCenter, JerseyNumber: 71, Age: 21, Height: "6'0\"", Rating: 77, UniqueTrait: "Youngest player on the roster."},
		{ID: 312, Name: "Niko Saarinen", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionLeftWing, JerseyNumber: 82, Age: 25, Height: "5'10\"", Rating: 76, UniqueTrait: "Mid-season call-up who never went back down."},
		{ID: 313, Name: "Beau Fontaine", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionRightWing, JerseyNumber: 46, Age: 27, Height: "6'1\"", Rating: 75, UniqueTrait: "Team's nominee for the sportsmanship trophy."},
		{ID: 314, Name: "Karl Vetter", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionDefense, JerseyNumber: 29, Age: 31, Height: "6'4\"", Rating: 74, UniqueTrait: "Over a thousand career blocked shots."},
		{ID: 315, Name: "Dario Benassi", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionDefense, JerseyNumber: 51, Age: 22, Height: "6'0\"", Rating: 73, UniqueTrait: "Scored an overtime winner in his second game."},
		{ID: 316, Name: "Harris Whitlock", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionCenter, JerseyNumber: 64, Age: 20, Height: "6'2\"", Rating: 67, UniqueTrait: "Still enrolled in night classes for engineering."},
		{ID: 317, Name: "Jon Pelletier", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionLeftWing, JerseyNumber: 57, Age: 23, Height: "6'0\"", Rating: 66, UniqueTrait: "Son of a former franchise goaltender."},
		{ID: 318, Name: "Antti Makela", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionGoalie, JerseyNumber: 33, Age: 30, Height: "6'5\"", Rating: 89, UniqueTrait: "Most saves in a single game last season."},
		{ID: 319, Name: "Shea Durnan", TeamName: "Calgary Flames", TeamAbbr: TeamCalgary, Position: player.PositionGoalie, JerseyNumber: 37, Age: 26, Height: "6'2\"", Rating: 85, UniqueTrait: "Famous for a diving paddle save in the playoffs."},
	}
}

// SeedLineStructures is the answer key matching SeedPlayers: three
// lines per team assembled from the top-rated skaters at each slot.
func SeedLineStructures() []roster.LineStructure {
	return []roster.LineStructure{
		{
			TeamAbbr: TeamAnaheim,
			Lines: []roster.Line{
				{Number: 1, Slots: map[roster.SlotID]roster.Assignment{
					roster.SlotCenter:     {PlayerName: "Tage Morgan", Rating: 93},
					roster.SlotWingOne:    {PlayerName: "Rene Caulfield", Rating: 91},
					roster.SlotWingTwo:    {PlayerName: "Oscar Brandt", Rating: 90},
					roster.SlotDefenseOne: {PlayerName: "Emil Vasko", Rating: 89},
					roster.SlotDefenseTwo: {PlayerName: "Johnny Arceneaux", Rating: 88},
				}},
				{Number: 2, Slots: map[roster.SlotID]roster.Assignment{
					roster.SlotCenter:     {PlayerName: "Pavel Rystrom", Rating: 85},
					roster.SlotWingOne:    {PlayerName: "Dmitri Kolvar", Rating: 84},
					roster.SlotWingTwo:    {PlayerName: "Wes Harlan", Rating: 83},
					roster.SlotDefenseOne: {PlayerName: "Corey Lachapelle", Rating: 82},
					roster.SlotDefenseTwo: {PlayerName: "Anders Melberg", Rating: 81},
				}},
				{Number: 3, Slots: map[roster.SlotID]roster.Assignment{
					roster.SlotCenter:     {PlayerName: "Bo Tremaine", Rating: 78},
					roster.SlotWingOne:    {PlayerName: "Lukas Ferrand", Rating: 77},
					roster.SlotWingTwo:    {PlayerName: "Matty Olsen", Rating: 76},
					roster.SlotDefenseOne: {PlayerName: "Grant Ishida", Rating: 75},
					roster.SlotDefenseTwo: {PlayerName: "Sacha Brodeur", Rating: 74},
				}},
			},
		},
		{
			TeamAbbr: TeamBoston,
			Lines: []roster.Line{
				{Number: 1, Slots: map[roster.SlotID]roster.Assignment{
					roster.SlotCenter:     {PlayerName: "Miles Okafor", Rating: 94},
					roster.SlotWingOne:    {PlayerName: "Luca Marchetti", Rating: 92},
					roster.SlotWingTwo:    {PlayerName: "Henrik Stahl", Rating: 91},
					roster.SlotDefenseOne: {PlayerName: "Declan Murphy", Rating: 90},
					roster.SlotDefenseTwo: {PlayerName: "Aleksi Rautio", Rating: 89},
				}},
				{Number: 2, Slots: map[roster.SlotID]roster.Assignment{
					roster.SlotCenter:     {PlayerName: "Sam Pruitt", Rating: 86},
					roster.SlotWingOne:    {PlayerName: "Viktor Lindqvist", Rating: 85},
					roster.SlotWingTwo:    {PlayerName: "Tomas Hrbek", Rating: 84},
					roster.SlotDefenseOne: {PlayerName: "Noel Bergevin", Rating: 83},
					roster.SlotDefenseTwo: {PlayerName: "Jack Carmody", Rating: 82},
				}},
				{Number: 3, Slots: map[roster.SlotID]roster.Assignment{
					roster.SlotCenter:     {PlayerName: "Artem Sokolov", Rating: 79},
					roster.SlotWingOne:    {PlayerName: "Brady Quill", Rating: 78},
					roster.SlotWingTwo:    {PlayerName: "Petr Janda", Rating: 77},
					roster.SlotDefenseOne: {PlayerName: "Gus Thorne", Rating: 76},
					roster.SlotDefenseTwo: {PlayerName: "Reid Maclellan", Rating: 75},
				}},
			},
		},
		{
			TeamAbbr: TeamCalgary,
			Lines: []roster.Line{
				{Number: 1, Slots: map[roster.SlotID]roster.Assignment{
					roster.SlotCenter:     {PlayerName: "Ezra Postma", Rating: 92},
					roster.SlotWingOne:    {PlayerName: "Casey Renfrew", Rating: 90},
					roster.SlotWingTwo:    {PlayerName: "Yuri Balakov", Rating: 89},
					roster.SlotDefenseOne: {PlayerName: "Harvey Lockhart", Rating: 88},
					roster.SlotDefenseTwo: {PlayerName: "Janne Kivela", Rating: 87},
				}},
				{Number: 2, Slots: map[roster.SlotID]roster.Assignment{
					roster.SlotCenter:     {PlayerName: "Trey Donato", Rating: 84},
					roster.SlotWingOne:    {PlayerName: "Magnus Ostberg", Rating: 83},
					roster.SlotWingTwo:    {PlayerName: "Colt Ramsey", Rating: 82},
					roster.SlotDefenseOne: {PlayerName: "Stefan Brankovic", Rating: 81},
					roster.SlotDefenseTwo: {PlayerName: "Davey Okonkwo", Rating: 80},
				}},
				{Number: 3, Slots: map[roster.SlotID]roster.Assignment{
					roster.SlotCenter:     {PlayerName: "Rhys Callahan", Rating: 77},
					roster.SlotWingOne:    {PlayerName: "Niko Saarinen", Rating: 76},
					roster.SlotWingTwo:    {PlayerName: "Beau Fontaine", Rating: 75},
					roster.SlotDefenseOne: {PlayerName: "Karl Vetter", Rating: 74},
					roster.SlotDefenseTwo: {PlayerName: "Dario Benassi", Rating: 73},
				}},
			},
		},
	}
}

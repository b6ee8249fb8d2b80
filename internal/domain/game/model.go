package game

import (
	"fmt"
	"time"

	"github.com/courtsidehq/courtside/internal/domain/injury"
	"github.com/courtsidehq/courtside/internal/domain/rankings"
)

// Team is one side of a matchup, merged from schedule and standings data.
// Standings-derived fields stay at their zero values when the team is
// missing from the standings index.
type Team struct {
	ID             string
	Tricode        string
	Name           string
	Wins           int
	Losses         int
	PlayoffRank    int
	Streak         string
	L10            string
	HomeRecord     string
	RoadRecord     string
	L10Home        string
	L10Road        string
	MonthlyRecords map[string]string
}

// Record returns the "W-L" display string.
func (t Team) Record() string {
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

// Broadcaster is a national broadcaster attached to a game.
type Broadcaster struct {
	Name    string
	Display string
}

// Game is a single scheduled game with all display data attached.
// Rankings and injuries are populated once after construction.
type Game struct {
	ID                  string
	Time                time.Time
	TimeDisplay         string
	Away                Team
	Home                Team
	NationalBroadcaster *Broadcaster

	TeamRankings   []rankings.Record
	PlayerRankings []rankings.Record
	Injuries       []injury.Record
}

// Matchup returns the "AWY at HOM" display string.
func (g Game) Matchup() string {
	return g.Away.Tricode + " at " + g.Home.Tricode
}

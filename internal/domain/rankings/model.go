package rankings

// Record is one (subject, statistic) entry from a top-10 leaderboard.
// Name holds the team tricode for team leaderboards and the player name
// for player leaderboards. Rank is 1-based response-order position; the
// upstream ordering is authoritative, ties included.
type Record struct {
	Name    string
	Tricode string
	TeamID  string
	Stat    string
	Rank    int
	Value   float64
}

// TeamRank is one statistic a team ranks in, as returned by the team index.
type TeamRank struct {
	Stat  string
	Rank  int
	Value float64
}

// PlayerRank is one statistic a player ranks in, grouped by team tricode
// in the player index.
type PlayerRank struct {
	PlayerName string
	Stat       string
	Rank       int
	Value      float64
}

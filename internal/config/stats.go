package config

// Tracked statistics and their display wiring. These tables are fixed at
// build time; the formatter and the rankings indexer both key off them, so
// iteration order here is the deterministic tie-break order for display.

// TeamStatKeys lists every tracked team statistic in table order.
var TeamStatKeys = []string{
	"BASE_PTS",
	"BASE_FG_PCT",
	"BASE_FG3_PCT",
	"BASE_FG3M",
	"BASE_AST",
	"BASE_REB",
	"BASE_STL",
	"BASE_BLK",
	"OPP_PTS",
	"ADV_TM_NET_RATING",
	"ADV_TM_OFF_RATING",
	"ADV_TM_DEF_RATING",
}

// PlayerStatKeys are the per-game-average player statistics served by the
// official leaders endpoint.
var PlayerStatKeys = []string{"PTS", "AST", "REB", "STL", "BLK", "FG_PCT", "FG3M", "FG3_PCT"}

// PlayerTotalStatKeys are season-total player statistics served by the
// query tool endpoint.
var PlayerTotalStatKeys = []string{"BASE_DD2", "BASE_TD3"}

// TeamStatsAscending marks stats where a lower value is better, so the
// leaderboard request sorts ascending.
var TeamStatsAscending = map[string]bool{
	"ADV_TM_DEF_RATING": true,
	"OPP_PTS":           true,
}

// TeamStatNames maps tracked keys to friendly display labels.
var TeamStatNames = map[string]string{
	"BASE_PTS":          "PPG",
	"BASE_FG_PCT":       "FG%",
	"BASE_FG3_PCT":      "3P%",
	"BASE_FG3M":         "3PM",
	"BASE_AST":          "AST",
	"BASE_REB":          "REB",
	"BASE_STL":          "STL",
	"BASE_BLK":          "BLK",
	"OPP_PTS":           "Opp PPG",
	"ADV_TM_NET_RATING": "Net RTG",
	"ADV_TM_OFF_RATING": "Off RTG",
	"ADV_TM_DEF_RATING": "Def RTG",
}

// TeamStatResponseKeys maps tracked keys to the field name carried in the
// query tool response's stats object.
var TeamStatResponseKeys = map[string]string{
	"BASE_PTS":          "PTS_PG",
	"BASE_FG_PCT":       "FG_PCT",
	"BASE_FG3_PCT":      "FG3_PCT",
	"BASE_FG3M":         "FG3M_PG",
	"BASE_AST":          "AST_PG",
	"BASE_REB":          "REB_PG",
	"BASE_STL":          "STL_PG",
	"BASE_BLK":          "BLK_PG",
	"OPP_PTS":           "OPP_PTS_PG",
	"ADV_TM_NET_RATING": "TM_NET_RATING",
	"ADV_TM_OFF_RATING": "TM_OFF_RATING",
	"ADV_TM_DEF_RATING": "TM_DEF_RATING",
}

var PlayerStatNames = map[string]string{
	"PTS":      "PPG",
	"AST":      "APG",
	"REB":      "RPG",
	"STL":      "SPG",
	"BLK":      "BPG",
	"FG_PCT":   "FG%",
	"FG3M":     "3PM",
	"FG3_PCT":  "3P%",
	"BASE_DD2": "Double Doubles",
	"BASE_TD3": "Triple Doubles",
}

// PlayerStatResponseKeys maps tracked keys to their field in the leaders
// payload (camel case) or the query tool stats object (upper case totals).
var PlayerStatResponseKeys = map[string]string{
	"PTS":      "pts",
	"AST":      "ast",
	"REB":      "reb",
	"STL":      "stl",
	"BLK":      "blk",
	"FG_PCT":   "fgPct",
	"FG3M":     "fg3m",
	"FG3_PCT":  "fg3Pct",
	"BASE_DD2": "DD2",
	"BASE_TD3": "TD3",
}

// Tier tables partition friendly stat labels between the parent message and
// the thread reply.
var (
	ParentTeamStats   = []string{"PPG", "FG%", "3P%", "BLK", "Opp PPG", "3PM"}
	ThreadTeamStats   = []string{"Net RTG", "Off RTG", "Def RTG", "AST", "REB", "STL"}
	ParentPlayerStats = []string{"PPG", "APG", "RPG", "FG%", "3PM", "3P%"}
	ThreadPlayerStats = []string{"SPG", "BPG", "Double Doubles", "Triple Doubles"}
)

// PlayerStatDisplayOrder fixes stat ordering inside one player's line:
// scoring/rebounding/assists group, then shooting, then steals/blocks,
// then season totals.
var PlayerStatDisplayOrder = []string{
	"PPG", "RPG", "APG",
	"FG%", "3PM", "3P%",
	"SPG", "BPG",
	"Double Doubles", "Triple Doubles",
}

// PercentStats are stored as fractions upstream and displayed x100.
var PercentStats = map[string]bool{
	"FG%": true,
	"3P%": true,
}

// WholeNumberStats are season totals displayed with no decimals.
var WholeNumberStats = map[string]bool{
	"Double Doubles": true,
	"Triple Doubles": true,
}

// ExcludedPlayers never appear in injury output, regardless of status.
var ExcludedPlayers = map[string]bool{
	"Terry Rozier": true,
	"Jayson Tatum": true,
}

// TeamStatOrder returns the table position of a friendly team stat label,
// used as the stable tie-break after rank.
func TeamStatOrder(label string) int {
	for i, key := range TeamStatKeys {
		if TeamStatNames[key] == label {
			return i
		}
	}
	return len(TeamStatKeys)
}

// PlayerStatDisplayRank returns the position of a friendly player stat label
// in the fixed display-group sequence.
func PlayerStatDisplayRank(label string) int {
	for i, name := range PlayerStatDisplayOrder {
		if name == label {
			return i
		}
	}
	return len(PlayerStatDisplayOrder)
}

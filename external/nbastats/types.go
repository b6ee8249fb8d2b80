package nbastats

import "strings"

// FlexID is a team or player identifier that upstream payloads carry
// inconsistently as either a JSON number or a JSON string. It always
// normalizes to the string form so index keys match across sources.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	raw = strings.Trim(raw, `"`)
	if raw == "null" {
		raw = ""
	}
	*f = FlexID(raw)
	return nil
}

func (f FlexID) String() string {
	return string(f)
}

type scheduleEnvelope struct {
	LeagueSchedule struct {
		GameDates []gameDateBucket `json:"gameDates"`
	} `json:"leagueSchedule"`
}

type gameDateBucket struct {
	GameDate string          `json:"gameDate"`
	Games    []ScheduledGame `json:"games"`
}

// ScheduledGame is one game row from the schedule payload, before any
// standings or rankings enrichment.
type ScheduledGame struct {
	GameID       string       `json:"gameId"`
	GameTimeEst  string       `json:"gameTimeEst"`
	AwayTeam     ScheduleTeam `json:"awayTeam"`
	HomeTeam     ScheduleTeam `json:"homeTeam"`
	Broadcasters struct {
		NationalBroadcasters []BroadcasterEntry `json:"nationalBroadcasters"`
	} `json:"broadcasters"`
}

type ScheduleTeam struct {
	TeamID      FlexID `json:"teamId"`
	TeamTricode string `json:"teamTricode"`
	TeamName    string `json:"teamName"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
}

type BroadcasterEntry struct {
	BroadcasterDisplay string `json:"broadcasterDisplay"`
}

type standingsEnvelope struct {
	LeagueStandings struct {
		Teams []standingsTeam `json:"teams"`
	} `json:"leagueStandings"`
}

type standingsTeam struct {
	TeamID            FlexID `json:"teamId"`
	TeamAbbr          string `json:"teamAbbr"`
	PlayoffRank       int    `json:"playoffRank"`
	CurrentStreakText string `json:"currentStreakText"`
	L10               string `json:"l10"`
	Home              string `json:"home"`
	Road              string `json:"road"`
	L10Home           string `json:"l10Home"`
	L10Road           string `json:"l10Road"`
	Oct               string `json:"oct"`
	Nov               string `json:"nov"`
	Dec               string `json:"dec"`
	Jan               string `json:"jan"`
	Feb               string `json:"feb"`
	Mar               string `json:"mar"`
	Apr               string `json:"apr"`
	May               string `json:"may"`
	Jun               string `json:"jun"`
}

func (t standingsTeam) monthlyRecords() map[string]string {
	months := map[string]string{
		"oct": t.Oct, "nov": t.Nov, "dec": t.Dec,
		"jan": t.Jan, "feb": t.Feb, "mar": t.Mar,
		"apr": t.Apr, "may": t.May, "jun": t.Jun,
	}
	out := make(map[string]string, len(months))
	for month, record := range months {
		if strings.TrimSpace(record) != "" {
			out[month] = record
		}
	}
	return out
}

type teamLeadersEnvelope struct {
	Teams []teamLeaderRow `json:"teams"`
}

type teamLeaderRow struct {
	TeamID      FlexID             `json:"teamId"`
	TeamTricode string             `json:"teamTricode"`
	TeamName    string             `json:"teamName"`
	Stats       map[string]float64 `json:"stats"`
}

// playerLeadersEnvelope keeps rows dynamic: the value field's name changes
// per statistic, so one parsing function extracts the typed record.
type playerLeadersEnvelope struct {
	Players []map[string]any `json:"players"`
}

type playerTotalsEnvelope struct {
	Players []playerTotalRow `json:"players"`
}

type playerTotalRow struct {
	PlayerID         FlexID             `json:"playerId"`
	Name             string             `json:"name"`
	TeamAbbreviation string             `json:"teamAbbreviation"`
	Stats            map[string]float64 `json:"stats"`
}

type injuryEnvelope struct {
	Players []injuryRow `json:"players"`
}

type injuryRow struct {
	TeamID           FlexID `json:"teamId"`
	PlayerName       string `json:"playerName"`
	InjuryStatus     string `json:"injuryStatus"`
	InjuryType       string `json:"injuryType"`
	InjuryLocation   string `json:"injuryLocation"`
	InjuryDetails    string `json:"injuryDetails"`
	TeamAbbreviation string `json:"teamAbbreviation"`
}

func getString(row map[string]any, key string) string {
	if value, ok := row[key].(string); ok {
		return value
	}
	return ""
}

func getFloat(row map[string]any, key string) float64 {
	switch value := row[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case int64:
		return float64(value)
	default:
		return 0
	}
}

func getInt(row map[string]any, key string) int {
	return int(getFloat(row, key))
}

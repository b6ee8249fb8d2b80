package standings

// Record is one team's standings row. TeamID is always the string form of
// the upstream id; callers normalize before lookup.
type Record struct {
	TeamID         string
	Tricode        string
	PlayoffRank    int
	Streak         string
	L10            string
	HomeRecord     string
	RoadRecord     string
	L10Home        string
	L10Road        string
	MonthlyRecords map[string]string
}

// Months lists the month keys used for monthly records, in season order.
var Months = []string{"oct", "nov", "dec", "jan", "feb", "mar", "apr", "may", "jun"}

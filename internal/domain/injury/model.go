package injury

import "strings"

// Severity buckets for display. Anything not matching either tier is
// dropped from both.
type Tier int

const (
	TierNone Tier = iota
	TierQuestionable
	TierOut
)

// Record is one player's entry from the league injury report.
type Record struct {
	PlayerName string
	Status     string
	Type       string
	Location   string
	Detail     string
	Tricode    string
	TeamID     string
}

// TierOf classifies a raw status string. Comparison is case-insensitive.
func TierOf(status string) Tier {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "GTD", "QUESTIONABLE", "DOUBTFUL":
		return TierQuestionable
	case "OUT":
		return TierOut
	default:
		return TierNone
	}
}

// TeamInjuries groups player names for one team by severity tier.
type TeamInjuries struct {
	Questionable []string
	Out          []string
}

package format

import (
	"fmt"
	"strings"

	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/domain/game"
	"github.com/courtsidehq/courtside/internal/domain/injury"
)

// Parent renders the concise primary message for one game.
func Parent(g *game.Game) string {
	lines := []string{headerLine(g)}

	lines = append(lines, streakLine(g.Away), streakLine(g.Home))
	lines = append(lines, teamRankingLines(g, labelSet(config.ParentTeamStats))...)
	lines = append(lines, playerRankingLines(g, labelSet(config.ParentPlayerStats))...)

	// Footer markers are always present; live injury data replaces the
	// placeholder text, it never adds extra lines.
	lines = append(lines,
		fmt.Sprintf("%s NOTABLES", config.SectionEmoji("notable")),
		fmt.Sprintf("%s MILESTONES", config.SectionEmoji("milestone")),
		injurySummaryLine(g, injury.TierQuestionable, "gtd", "GTD/QUESTIONABLE"),
		injurySummaryLine(g, injury.TierOut, "out", "INJURIES"),
	)

	return strings.Join(lines, "\n")
}

func headerLine(g *game.Game) string {
	header := fmt.Sprintf("%s %s (%s) %s at %s %s (%s) %s | %s",
		seedLabel(g.Away.PlayoffRank), tricodeOrTBD(g.Away), g.Away.Record(), config.TeamEmoji(g.Away.Tricode),
		seedLabel(g.Home.PlayoffRank), tricodeOrTBD(g.Home), g.Home.Record(), config.TeamEmoji(g.Home.Tricode),
		g.TimeDisplay,
	)
	if g.NationalBroadcaster != nil {
		header += " | " + config.BroadcasterEmoji(g.NationalBroadcaster.Name)
	}
	return header
}

func streakLine(t game.Team) string {
	return fmt.Sprintf("%s %s | L10: %s", config.TeamEmoji(t.Tricode), t.Streak, t.L10)
}

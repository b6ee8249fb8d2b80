package format

import (
	"fmt"
	"strings"

	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/domain/game"
	"github.com/courtsidehq/courtside/internal/domain/injury"
	"github.com/courtsidehq/courtside/internal/domain/standings"
)

// Thread renders the detailed follow-up for one game, or "" when nothing
// beyond boilerplate would appear. An empty return means no thread reply
// should be posted at all.
func Thread(g *game.Game) string {
	rankingLines := teamRankingLines(g, labelSet(config.ThreadTeamStats))
	rankingLines = append(rankingLines, playerRankingLines(g, labelSet(config.ThreadPlayerStats))...)
	injuryLines := detailedInjuryLines(g)

	if len(rankingLines) == 0 && len(injuryLines) == 0 {
		return ""
	}

	lines := []string{
		fmt.Sprintf("*Detailed Preview: %s @ %s*", tricodeOrTBD(g.Away), tricodeOrTBD(g.Home)),
		"",
		extendedStandingsLine(g.Away, false),
		extendedStandingsLine(g.Home, true),
	}

	if monthly := monthlyRecordLines(g); len(monthly) > 0 {
		lines = append(lines, "")
		lines = append(lines, monthly...)
	}

	if len(rankingLines) > 0 {
		lines = append(lines, "")
		lines = append(lines, rankingLines...)
	}

	lines = append(lines, "")
	lines = append(lines, injuryLines...)

	lines = append(lines,
		"",
		fmt.Sprintf("%s *NOTABLES*", config.SectionEmoji("notable")),
		"_Add notable storylines here_",
		"",
		fmt.Sprintf("%s *MILESTONES*", config.SectionEmoji("milestone")),
		"_Add milestone watch items here_",
	)

	return strings.Join(lines, "\n")
}

func extendedStandingsLine(t game.Team, isHome bool) string {
	split, splitL10 := t.RoadRecord, t.L10Road
	splitLabel := "Away"
	if isHome {
		split, splitL10 = t.HomeRecord, t.L10Home
		splitLabel = "Home"
	}
	return fmt.Sprintf("%s %s | L10: %s, %s: %s | L10: %s",
		config.TeamEmoji(t.Tricode), t.Streak, t.L10, splitLabel, split, splitL10)
}

func monthlyRecordLines(g *game.Game) []string {
	var lines []string
	for _, t := range []game.Team{g.Away, g.Home} {
		if len(t.MonthlyRecords) == 0 {
			continue
		}
		var parts []string
		for _, month := range standings.Months {
			if record := t.MonthlyRecords[month]; record != "" {
				parts = append(parts, strings.ToUpper(month)+": "+record)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, fmt.Sprintf("%s %s", config.TeamEmoji(t.Tricode), strings.Join(parts, ", ")))
		}
	}
	return lines
}

// detailedInjuryLines renders both severity sections with type and status
// per player, or nil when no game participant has a qualifying injury.
func detailedInjuryLines(g *game.Game) []string {
	questionable := detailedEntriesForTier(g, injury.TierQuestionable)
	out := detailedEntriesForTier(g, injury.TierOut)
	if len(questionable) == 0 && len(out) == 0 {
		return nil
	}

	lines := []string{fmt.Sprintf("%s *GTD/QUESTIONABLE*", config.SectionEmoji("gtd"))}
	if len(questionable) > 0 {
		lines = append(lines, questionable...)
	} else {
		lines = append(lines, "_None reported_")
	}

	lines = append(lines, "", fmt.Sprintf("%s *OUT*", config.SectionEmoji("out")))
	if len(out) > 0 {
		lines = append(lines, out...)
	} else {
		lines = append(lines, "_None reported_")
	}

	return lines
}

func detailedEntriesForTier(g *game.Game, tier injury.Tier) []string {
	var lines []string
	for _, teamID := range []string{g.Away.ID, g.Home.ID} {
		for _, rec := range g.Injuries {
			if rec.TeamID != teamID || injury.TierOf(rec.Status) != tier {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s %s - %s (%s)",
				config.TeamEmoji(rec.Tricode), rec.PlayerName, rec.Type, rec.Status))
		}
	}
	return lines
}

// Package format renders a game into the two Slack message bodies: the
// concise parent message and the detailed thread reply. Which statistic
// lands in which body is fixed by the tier tables in internal/config.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/domain/game"
	"github.com/courtsidehq/courtside/internal/domain/injury"
	"github.com/courtsidehq/courtside/internal/domain/rankings"
)

// NoGamesNotice is posted when the schedule has no games for the day.
const NoGamesNotice = "No NBA games scheduled for today"

// StatValue renders a raw stat value for display. Percentages arrive as
// fractions and are shown x100 with one decimal; season totals get no
// decimals; everything else one decimal.
func StatValue(label string, value float64) string {
	switch {
	case config.PercentStats[label]:
		return fmt.Sprintf("%.1f", value*100)
	case config.WholeNumberStats[label]:
		return fmt.Sprintf("%.0f", value)
	default:
		return fmt.Sprintf("%.1f", value)
	}
}

func statEntry(stat string, rank int, value float64) string {
	return fmt.Sprintf("#%d in %s (%s)", rank, stat, StatValue(stat, value))
}

func seedLabel(rank int) string {
	if rank <= 0 {
		return "#-"
	}
	return fmt.Sprintf("#%d", rank)
}

func tricodeOrTBD(t game.Team) string {
	if strings.TrimSpace(t.Tricode) == "" {
		return "TBD"
	}
	return t.Tricode
}

func labelSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return set
}

// teamRankingLines renders one rankings line per team for the stats in the
// tier set. Input order is preserved, so the attached slice's (rank, table
// order) sort carries through to display.
func teamRankingLines(g *game.Game, tier map[string]bool) []string {
	var lines []string
	for _, t := range []game.Team{g.Away, g.Home} {
		var entries []string
		for _, rec := range g.TeamRankings {
			if rec.Tricode != t.Tricode || !tier[rec.Stat] {
				continue
			}
			entries = append(entries, statEntry(rec.Stat, rec.Rank, rec.Value))
		}
		if len(entries) > 0 {
			lines = append(lines, fmt.Sprintf("%s %s ranks %s",
				config.SectionEmoji("top10"), t.Tricode, strings.Join(entries, ", ")))
		}
	}
	return lines
}

// playerRankingLines renders one line per ranked player, away team first.
// Players keep the order they appear in the attached slice (best rank
// first, name on ties); stats inside a line follow the fixed display-group
// sequence rather than rank.
func playerRankingLines(g *game.Game, tier map[string]bool) []string {
	var lines []string
	for _, t := range []game.Team{g.Away, g.Home} {
		var order []string
		grouped := map[string][]rankings.Record{}
		for _, rec := range g.PlayerRankings {
			if rec.Tricode != t.Tricode || !tier[rec.Stat] {
				continue
			}
			if _, seen := grouped[rec.Name]; !seen {
				order = append(order, rec.Name)
			}
			grouped[rec.Name] = append(grouped[rec.Name], rec)
		}

		for _, name := range order {
			recs := grouped[name]
			sort.SliceStable(recs, func(i, j int) bool {
				return config.PlayerStatDisplayRank(recs[i].Stat) < config.PlayerStatDisplayRank(recs[j].Stat)
			})
			entries := make([]string, 0, len(recs))
			for _, rec := range recs {
				entries = append(entries, statEntry(rec.Stat, rec.Rank, rec.Value))
			}
			lines = append(lines, fmt.Sprintf("%s %s (%s) ranks %s",
				config.SectionEmoji("top10"), name, t.Tricode, strings.Join(entries, ", ")))
		}
	}
	return lines
}

// injuryNames collects player names for one team and tier, in report order.
func injuryNames(g *game.Game, teamID string, tier injury.Tier) []string {
	var names []string
	for _, rec := range g.Injuries {
		if rec.TeamID != teamID || injury.TierOf(rec.Status) != tier {
			continue
		}
		names = append(names, rec.PlayerName)
	}
	return names
}

// injurySummaryLine renders one footer line for a severity bucket: the
// away team's names, a separator, then the home team's. When neither team
// has entries the fixed placeholder text stands in.
func injurySummaryLine(g *game.Game, tier injury.Tier, emoji, placeholder string) string {
	away := injuryNames(g, g.Away.ID, tier)
	home := injuryNames(g, g.Home.ID, tier)
	if len(away) == 0 && len(home) == 0 {
		return fmt.Sprintf("%s %s", config.SectionEmoji(emoji), placeholder)
	}

	var parts []string
	if len(away) > 0 {
		parts = append(parts, strings.Join(away, ", "))
	}
	if len(away) > 0 && len(home) > 0 {
		parts = append(parts, "|")
	}
	if len(home) > 0 {
		parts = append(parts, strings.Join(home, ", "))
	}
	return fmt.Sprintf("%s %s", config.SectionEmoji(emoji), strings.Join(parts, " "))
}

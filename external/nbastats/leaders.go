package nbastats

import (
	"context"
	"fmt"
	"strconv"

	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/domain/rankings"
)

const leaderboardSize = 10

// FetchTeamLeaderboard retrieves the top-10 teams for one tracked team
// statistic. Rank is assigned from response order; the upstream sort,
// including its tie-breaking, is authoritative.
func (c *Client) FetchTeamLeaderboard(ctx context.Context, statKey, season string) ([]rankings.Record, error) {
	responseKey := config.TeamStatResponseKeys[statKey]
	if responseKey == "" {
		return nil, fmt.Errorf("unknown team statistic %q", statKey)
	}

	query := map[string]string{
		"measures":        statKey,
		"leagueId":        c.leagueID,
		"seasonYear":      season,
		"seasonType":      regularSeason,
		"perMode":         "PerGame",
		"Grouping":        "None",
		"sortColumn":      responseKey + "|" + sortOrder(statKey),
		"MaxRowsReturned": strconv.Itoa(leaderboardSize),
	}

	var envelope teamLeadersEnvelope
	if err := c.doJSON(ctx, "/api/querytool/season/team", c.keys.QueryTool, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch team leaderboard stat=%s: %w", statKey, err)
	}

	label := config.TeamStatNames[statKey]
	out := make([]rankings.Record, 0, leaderboardSize)
	for i, row := range envelope.Teams {
		if i >= leaderboardSize {
			break
		}
		out = append(out, rankings.Record{
			Name:    row.TeamTricode,
			Tricode: row.TeamTricode,
			TeamID:  row.TeamID.String(),
			Stat:    label,
			Rank:    i + 1,
			Value:   row.Stats[responseKey],
		})
	}

	return out, nil
}

// FetchPlayerLeaderboard retrieves the top-10 players for one per-game
// statistic from the official leaders endpoint. This endpoint reports rank
// explicitly, so the payload's rank is kept rather than recomputed.
func (c *Client) FetchPlayerLeaderboard(ctx context.Context, statKey, season string) ([]rankings.Record, error) {
	responseKey := config.PlayerStatResponseKeys[statKey]
	if responseKey == "" {
		return nil, fmt.Errorf("unknown player statistic %q", statKey)
	}

	query := map[string]string{
		"leagueId":     c.leagueID,
		"season":       season,
		"seasonType":   regularSeason,
		"statCategory": statKey,
		"perMode":      "PerGame",
		"topX":         strconv.Itoa(leaderboardSize),
	}

	var envelope playerLeadersEnvelope
	if err := c.doJSON(ctx, "/api/stats/player/leaders/official", c.keys.Stats, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch player leaderboard stat=%s: %w", statKey, err)
	}

	label := config.PlayerStatNames[statKey]
	out := make([]rankings.Record, 0, leaderboardSize)
	for i, row := range envelope.Players {
		if i >= leaderboardSize {
			break
		}
		out = append(out, rankings.Record{
			Name:    getString(row, "name"),
			Tricode: getString(row, "teamAbbreviation"),
			Stat:    label,
			Rank:    getInt(row, "rank"),
			Value:   getFloat(row, responseKey),
		})
	}

	return out, nil
}

// FetchPlayerTotalsLeaderboard retrieves season-total leaderboards
// (double-doubles, triple-doubles) from the query tool, which has no rank
// field; rank comes from response order.
func (c *Client) FetchPlayerTotalsLeaderboard(ctx context.Context, statKey, season string) ([]rankings.Record, error) {
	responseKey := config.PlayerStatResponseKeys[statKey]
	if responseKey == "" {
		return nil, fmt.Errorf("unknown player statistic %q", statKey)
	}

	query := map[string]string{
		"measures":        statKey,
		"leagueId":        c.leagueID,
		"seasonYear":      season,
		"seasonType":      regularSeason,
		"perMode":         "Totals",
		"Grouping":        "None",
		"sortColumn":      responseKey + "|DESC",
		"MaxRowsReturned": strconv.Itoa(leaderboardSize),
	}

	var envelope playerTotalsEnvelope
	if err := c.doJSON(ctx, "/api/querytool/season/player", c.keys.QueryTool, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch player totals leaderboard stat=%s: %w", statKey, err)
	}

	label := config.PlayerStatNames[statKey]
	out := make([]rankings.Record, 0, leaderboardSize)
	for i, row := range envelope.Players {
		if i >= leaderboardSize {
			break
		}
		out = append(out, rankings.Record{
			Name:    row.Name,
			Tricode: row.TeamAbbreviation,
			Stat:    label,
			Rank:    i + 1,
			Value:   row.Stats[responseKey],
		})
	}

	return out, nil
}

func sortOrder(statKey string) string {
	if config.TeamStatsAscending[statKey] {
		return "ASC"
	}
	return "DESC"
}

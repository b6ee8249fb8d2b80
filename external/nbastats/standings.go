package nbastats

import (
	"context"
	"fmt"

	"github.com/courtsidehq/courtside/internal/domain/standings"
)

// FetchStandings retrieves the league standings for a season as a flat list
// of per-team records.
func (c *Client) FetchStandings(ctx context.Context, season string) ([]standings.Record, error) {
	query := map[string]string{
		"leagueId":   c.leagueID,
		"season":     season,
		"seasonType": regularSeason,
	}

	var envelope standingsEnvelope
	if err := c.doJSON(ctx, "/api/standings/league", c.keys.Standings, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch standings season=%s: %w", season, err)
	}

	out := make([]standings.Record, 0, len(envelope.LeagueStandings.Teams))
	for _, team := range envelope.LeagueStandings.Teams {
		if team.TeamID.String() == "" {
			continue
		}
		out = append(out, standings.Record{
			TeamID:         team.TeamID.String(),
			Tricode:        team.TeamAbbr,
			PlayoffRank:    team.PlayoffRank,
			Streak:         team.CurrentStreakText,
			L10:            team.L10,
			HomeRecord:     team.Home,
			RoadRecord:     team.Road,
			L10Home:        team.L10Home,
			L10Road:        team.L10Road,
			MonthlyRecords: team.monthlyRecords(),
		})
	}

	return out, nil
}

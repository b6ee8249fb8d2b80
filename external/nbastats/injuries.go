package nbastats

import (
	"context"
	"fmt"

	"github.com/courtsidehq/courtside/internal/domain/injury"
)

// FetchInjuries retrieves the current league-wide injury report. No
// filtering happens here; exclusion and severity grouping are query-time
// concerns one layer up.
func (c *Client) FetchInjuries(ctx context.Context) ([]injury.Record, error) {
	query := map[string]string{
		"leagueId": c.leagueID,
	}

	var envelope injuryEnvelope
	if err := c.doJSON(ctx, "/api/stats/injury", c.keys.Stats, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch injuries: %w", err)
	}

	out := make([]injury.Record, 0, len(envelope.Players))
	for _, row := range envelope.Players {
		out = append(out, injury.Record{
			PlayerName: row.PlayerName,
			Status:     row.InjuryStatus,
			Type:       row.InjuryType,
			Location:   row.InjuryLocation,
			Detail:     row.InjuryDetails,
			Tricode:    row.TeamAbbreviation,
			TeamID:     row.TeamID.String(),
		})
	}

	return out, nil
}

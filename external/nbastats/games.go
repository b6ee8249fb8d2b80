package nbastats

import (
	"context"
	"time"

	"github.com/courtsidehq/courtside/internal/domain/game"
)

// FetchGamesForDay fetches the season schedule and maps the given day's
// games into domain form. Rankings and injuries are attached later by the
// preview layer.
func (c *Client) FetchGamesForDay(ctx context.Context, season string, day time.Time) ([]game.Game, error) {
	schedule, err := c.FetchSchedule(ctx, season)
	if err != nil {
		return nil, err
	}

	rows := schedule.GamesOn(day)
	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		parsed, display := ParseGameTime(row.GameTimeEst, day)
		g := game.Game{
			ID:          row.GameID,
			Time:        parsed,
			TimeDisplay: display,
			Away:        mapScheduleTeam(row.AwayTeam),
			Home:        mapScheduleTeam(row.HomeTeam),
		}
		if len(row.Broadcasters.NationalBroadcasters) > 0 {
			name := row.Broadcasters.NationalBroadcasters[0].BroadcasterDisplay
			if name != "" {
				g.NationalBroadcaster = &game.Broadcaster{Name: name, Display: name}
			}
		}
		out = append(out, g)
	}

	return out, nil
}

func mapScheduleTeam(row ScheduleTeam) game.Team {
	return game.Team{
		ID:      row.TeamID.String(),
		Tricode: row.TeamTricode,
		Name:    row.TeamName,
		Wins:    row.Wins,
		Losses:  row.Losses,
	}
}

package nbastats

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// FetchSchedule retrieves the full season schedule payload.
func (c *Client) FetchSchedule(ctx context.Context, season string) (Schedule, error) {
	query := map[string]string{
		"leagueId": c.leagueID,
		"season":   season,
	}

	var envelope scheduleEnvelope
	if err := c.doJSON(ctx, "/api/schedule/full", c.keys.Schedule, query, &envelope); err != nil {
		return Schedule{}, fmt.Errorf("fetch schedule season=%s: %w", season, err)
	}

	return Schedule{dates: envelope.LeagueSchedule.GameDates}, nil
}

// Schedule is the dated game buckets from one schedule fetch.
type Schedule struct {
	dates []gameDateBucket
}

// GamesOn returns the games scheduled for a calendar day. The upstream
// bucket date is a free-form string that contains an "MM/DD/YYYY" token.
func (s Schedule) GamesOn(day time.Time) []ScheduledGame {
	want := day.Format("01/02/2006")
	for _, bucket := range s.dates {
		if strings.Contains(bucket.GameDate, want) {
			return bucket.Games
		}
	}
	return nil
}

// ParseGameTime converts the schedule's ISO-ish eastern timestamp into a
// time plus its display string. Parse failures fall back to "TBD".
func ParseGameTime(raw string, now time.Time) (time.Time, string) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return now, "TBD"
	}
	value = strings.Replace(value, "Z", "+00:00", 1)

	parsed, err := time.Parse("2006-01-02T15:04:05-07:00", value)
	if err != nil {
		parsed, err = time.Parse("2006-01-02T15:04:05", value)
	}
	if err != nil {
		return now, "TBD"
	}

	display := strings.TrimPrefix(parsed.Format("03:04 PM"), "0") + " ET"
	return parsed, display
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/courtsidehq/courtside/internal/domain/game"
	"github.com/courtsidehq/courtside/internal/domain/rankings"
	"github.com/courtsidehq/courtside/internal/domain/standings"
	"github.com/courtsidehq/courtside/internal/format"
	"github.com/courtsidehq/courtside/internal/platform/logging"
)

// ScheduleProvider returns one day's games in domain form.
type ScheduleProvider interface {
	FetchGamesForDay(ctx context.Context, season string, day time.Time) ([]game.Game, error)
}

// GamePoster delivers a rendered game preview. An empty threadText means
// no thread reply is wanted. Implemented by the Slack adapter and by the
// dry-run printer.
type GamePoster interface {
	PostGameWithThread(ctx context.Context, channel, parentText, threadText string) (parentTS, threadTS string, err error)
}

type RunInput struct {
	Season  string
	Day     time.Time
	Channel string
}

type RunReport struct {
	GameCount   int
	PostedCount int
	FailedCount int
}

// PreviewService drives a daily run: fetch the day's games, warm every
// data source once, enrich each game, render, and deliver.
type PreviewService struct {
	schedule  ScheduleProvider
	standings *StandingsService
	rankings  *RankingsService
	injuries  *InjuryService
	poster    GamePoster
	logger    *logging.Logger
}

func NewPreviewService(
	schedule ScheduleProvider,
	standingsSvc *StandingsService,
	rankingsSvc *RankingsService,
	injuriesSvc *InjuryService,
	poster GamePoster,
	logger *logging.Logger,
) *PreviewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PreviewService{
		schedule:  schedule,
		standings: standingsSvc,
		rankings:  rankingsSvc,
		injuries:  injuriesSvc,
		poster:    poster,
		logger:    logger,
	}
}

// TodaysGames returns the day's schedule fully enriched: standings merged
// into each team, rankings and injuries attached. Source failures degrade
// to missing detail, never to a run failure; only an unreachable schedule
// aborts.
func (s *PreviewService) TodaysGames(ctx context.Context, season string, day time.Time) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreviewService.TodaysGames")
	defer span.End()

	if s.schedule == nil {
		return nil, fmt.Errorf("%w: schedule provider is not configured", ErrDependencyUnavailable)
	}

	games, err := s.schedule.FetchGamesForDay(ctx, season, day)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}
	if len(games) == 0 {
		return nil, nil
	}

	// Warm each source once, in parallel. Each service guards its own
	// first population, so the per-game queries below are cache hits.
	var wg conc.WaitGroup
	wg.Go(func() {
		if err := s.rankings.Refresh(ctx, season); err != nil {
			s.logger.WarnContext(ctx, "rankings warm-up failed", "error", err.Error())
		}
	})
	wg.Go(func() { s.standings.IndexBySeason(ctx, season) })
	wg.Go(func() { s.injuries.Warm(ctx) })
	wg.Wait()

	standingsIndex := s.standings.IndexBySeason(ctx, season)
	for i := range games {
		s.enrichGame(ctx, &games[i], standingsIndex)
	}

	return games, nil
}

func (s *PreviewService) enrichGame(ctx context.Context, g *game.Game, standingsIndex map[string]standings.Record) {
	mergeStandings(&g.Away, standingsIndex)
	mergeStandings(&g.Home, standingsIndex)

	for _, t := range []game.Team{g.Away, g.Home} {
		for _, r := range s.rankings.RankingsForTeam(t.ID) {
			g.TeamRankings = append(g.TeamRankings, rankings.Record{
				Name:    t.Tricode,
				Tricode: t.Tricode,
				TeamID:  t.ID,
				Stat:    r.Stat,
				Rank:    r.Rank,
				Value:   r.Value,
			})
		}
		for _, r := range s.rankings.RankingsForTeamPlayers(t.Tricode) {
			g.PlayerRankings = append(g.PlayerRankings, rankings.Record{
				Name:    r.PlayerName,
				Tricode: t.Tricode,
				TeamID:  t.ID,
				Stat:    r.Stat,
				Rank:    r.Rank,
				Value:   r.Value,
			})
		}
		g.Injuries = append(g.Injuries, s.injuries.DetailedInjuriesForTeam(ctx, t.ID)...)
	}
}

// mergeStandings copies standings detail onto a schedule team. A missing
// entry leaves the schedule fields as-is.
func mergeStandings(t *game.Team, index map[string]standings.Record) {
	rec, ok := index[t.ID]
	if !ok {
		return
	}
	t.PlayoffRank = rec.PlayoffRank
	t.Streak = rec.Streak
	t.L10 = rec.L10
	t.HomeRecord = rec.HomeRecord
	t.RoadRecord = rec.RoadRecord
	t.L10Home = rec.L10Home
	t.L10Road = rec.L10Road
	t.MonthlyRecords = rec.MonthlyRecords
}

// Run renders and posts every game for the day. A delivery failure is
// logged and counted but does not stop the remaining games.
func (s *PreviewService) Run(ctx context.Context, input RunInput) (RunReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreviewService.Run")
	defer span.End()

	if s.poster == nil {
		return RunReport{}, fmt.Errorf("%w: game poster is not configured", ErrDependencyUnavailable)
	}
	if input.Channel == "" {
		return RunReport{}, fmt.Errorf("%w: channel is required", ErrInvalidInput)
	}

	games, err := s.TodaysGames(ctx, input.Season, input.Day)
	if err != nil {
		return RunReport{}, err
	}

	if len(games) == 0 {
		s.logger.InfoContext(ctx, "no games scheduled", "day", input.Day.Format("2006-01-02"))
		if _, _, err := s.poster.PostGameWithThread(ctx, input.Channel, format.NoGamesNotice, ""); err != nil {
			return RunReport{}, fmt.Errorf("post no-games notice: %w", err)
		}
		return RunReport{}, nil
	}

	report := RunReport{GameCount: len(games)}
	for i := range games {
		g := &games[i]
		parent := format.Parent(g)
		thread := format.Thread(g)

		parentTS, threadTS, err := s.poster.PostGameWithThread(ctx, input.Channel, parent, thread)
		if err != nil {
			report.FailedCount++
			s.logger.ErrorContext(ctx, "failed to post game preview",
				"game", g.Matchup(),
				"error", err.Error(),
			)
			continue
		}
		report.PostedCount++
		s.logger.InfoContext(ctx, "posted game preview",
			"game", g.Matchup(),
			"parent_ts", parentTS,
			"thread_ts", threadTS,
			"has_thread", thread != "",
		)
	}

	return report, nil
}

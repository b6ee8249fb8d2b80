package app

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/courtsidehq/courtside/external/nbastats"
	"github.com/courtsidehq/courtside/external/slackchat"
	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/platform/logging"
	"github.com/courtsidehq/courtside/internal/platform/resilience"
	"github.com/courtsidehq/courtside/internal/usecase"
)

// Options tweak how a run is wired without touching configuration.
type Options struct {
	// DryRun renders messages to the logger instead of posting to Slack.
	DryRun bool
	// PlainText skips Block Kit blocks and posts text-only messages.
	PlainText bool
}

// App holds the wired services for one bot run.
type App struct {
	NBA     *nbastats.Client
	Slack   *slackchat.Client
	Preview *usecase.PreviewService
}

// New wires configuration into the full service graph.
func New(cfg config.Config, opts Options, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Default()
	}

	nbaClient := nbastats.NewClient(nbastats.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.NBATimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:  cfg.NBABaseURL,
		LeagueID: cfg.LeagueID,
		Keys: nbastats.Keys{
			Schedule:  cfg.ScheduleAPIKey,
			Standings: cfg.StandingsKey,
			QueryTool: cfg.QueryToolKey,
			Stats:     cfg.StatsKey,
		},
		MaxRetries:     cfg.NBAMaxRetries,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: cfg.NBACircuitEnabled},
	})

	slackClient := slackchat.NewClient(slackchat.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.SlackTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:        cfg.SlackBaseURL,
		BotToken:       cfg.SlackBotToken,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: cfg.SlackCircuitEnabled},
	})

	var poster usecase.GamePoster
	if opts.DryRun {
		poster = &dryRunPoster{logger: logger}
	} else {
		poster = &slackPoster{client: slackClient, plainText: opts.PlainText}
	}

	rankingsSvc := usecase.NewRankingsService(nbaClient, cfg.FetchWorkers, logger)
	standingsSvc := usecase.NewStandingsService(nbaClient, logger)
	injurySvc := usecase.NewInjuryService(nbaClient, logger)
	previewSvc := usecase.NewPreviewService(nbaClient, standingsSvc, rankingsSvc, injurySvc, poster, logger)

	return &App{
		NBA:     nbaClient,
		Slack:   slackClient,
		Preview: previewSvc,
	}
}

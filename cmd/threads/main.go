package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/courtsidehq/courtside/external/nbastats"
	"github.com/courtsidehq/courtside/internal/app"
	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/observability"
	idgen "github.com/courtsidehq/courtside/internal/platform/id"
	"github.com/courtsidehq/courtside/internal/platform/logging"
	"github.com/courtsidehq/courtside/internal/usecase"
)

func main() {
	var (
		channel   = flag.String("channel", "daily-threads", "channel alias or id to post to")
		date      = flag.String("date", "", "day to run for (YYYY-MM-DD, default today)")
		dryRun    = flag.Bool("dry-run", false, "render messages to the log instead of posting")
		plainText = flag.Bool("no-blocks", false, "post text-only messages without Block Kit blocks")
		verbose   = flag.Bool("verbose", false, "console logging at debug level")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Default().Error("load config", "error", err.Error())
		os.Exit(1)
	}

	var logger *logging.Logger
	if *verbose {
		logger = logging.NewConsole(logging.LevelDebug)
	} else {
		logger = logging.NewJSON(cfg.LogLevel)
	}
	if runID, idErr := idgen.NewRandomGenerator().NewID(); idErr == nil {
		logger = logger.With("run_id", runID)
	}
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err.Error())
		os.Exit(1)
	}
	defer func() { _ = stopProfiler() }()

	day := time.Now()
	if *date != "" {
		day, err = time.Parse("2006-01-02", *date)
		if err != nil {
			logger.Error("parse -date", "value", *date, "error", err.Error())
			os.Exit(2)
		}
	}

	channelID, err := cfg.ResolveChannel(*channel)
	if err != nil {
		logger.Error("resolve channel", "channel", *channel, "error", err.Error())
		os.Exit(2)
	}

	application := app.New(cfg, app.Options{DryRun: *dryRun, PlainText: *plainText}, logger)

	if !*dryRun {
		info, err := application.Slack.TestAuth(ctx)
		if err != nil {
			logger.Error("slack auth check failed", "error", err.Error())
			os.Exit(1)
		}
		logger.Info("slack connected", "bot", info.User, "workspace", info.Team)
	}

	season := nbastats.CurrentSeason(day)
	report, err := application.Preview.Run(ctx, usecase.RunInput{
		Season:  season,
		Day:     day,
		Channel: channelID,
	})
	if err != nil {
		logger.Error("run failed", "season", season, "error", err.Error())
		os.Exit(1)
	}

	logger.Info("run complete",
		"season", season,
		"games", report.GameCount,
		"posted", report.PostedCount,
		"failed", report.FailedCount,
	)
	if report.FailedCount > 0 {
		os.Exit(1)
	}
}

package usecase

import (
	"context"
	"fmt"

	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/domain/injury"
	"github.com/courtsidehq/courtside/internal/platform/cache"
	"github.com/courtsidehq/courtside/internal/platform/logging"
)

type InjuryProvider interface {
	FetchInjuries(ctx context.Context) ([]injury.Record, error)
}

// InjuryService serves severity-bucketed views over the league injury
// report. The raw report is cached once per run; exclusions and severity
// grouping are applied at query time so both views share one fetch.
type InjuryService struct {
	provider InjuryProvider
	logger   *logging.Logger
	store    *cache.Store
}

func NewInjuryService(provider InjuryProvider, logger *logging.Logger) *InjuryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &InjuryService{
		provider: provider,
		logger:   logger,
		store:    cache.NewStore(0),
	}
}

func (s *InjuryService) report(ctx context.Context) []injury.Record {
	if s.provider == nil {
		s.logger.WarnContext(ctx, "injury provider is not configured")
		return nil
	}

	value, err := s.store.GetOrLoad(ctx, "injuries", func(ctx context.Context) (any, error) {
		return s.provider.FetchInjuries(ctx)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "injury fetch failed, degrading to empty report", "error", err.Error())
		return nil
	}

	records, ok := value.([]injury.Record)
	if !ok {
		s.logger.ErrorContext(ctx, "unexpected cached injury report type", "type", fmt.Sprintf("%T", value))
		return nil
	}
	return records
}

// Warm fetches the report ahead of the per-team queries so the preview
// warm-up can run it alongside the other sources.
func (s *InjuryService) Warm(ctx context.Context) {
	s.report(ctx)
}

// InjuriesForTeam buckets a team's injured players into questionable-tier
// and out-tier name lists. Statuses outside both tiers are dropped.
func (s *InjuryService) InjuriesForTeam(ctx context.Context, teamID string) injury.TeamInjuries {
	ctx, span := startUsecaseSpan(ctx, "usecase.InjuryService.InjuriesForTeam")
	defer span.End()

	var out injury.TeamInjuries
	for _, rec := range s.report(ctx) {
		if rec.TeamID != teamID || config.ExcludedPlayers[rec.PlayerName] {
			continue
		}
		switch injury.TierOf(rec.Status) {
		case injury.TierQuestionable:
			out.Questionable = append(out.Questionable, rec.PlayerName)
		case injury.TierOut:
			out.Out = append(out.Out, rec.PlayerName)
		}
	}
	return out
}

// DetailedInjuriesForTeam returns the same two tiers but with the full
// record per player, for verbose thread display.
func (s *InjuryService) DetailedInjuriesForTeam(ctx context.Context, teamID string) []injury.Record {
	ctx, span := startUsecaseSpan(ctx, "usecase.InjuryService.DetailedInjuriesForTeam")
	defer span.End()

	var out []injury.Record
	for _, rec := range s.report(ctx) {
		if rec.TeamID != teamID || config.ExcludedPlayers[rec.PlayerName] {
			continue
		}
		if injury.TierOf(rec.Status) == injury.TierNone {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// ClearCache drops the cached report so the next query refetches.
func (s *InjuryService) ClearCache(ctx context.Context) {
	s.store.Clear(ctx)
}

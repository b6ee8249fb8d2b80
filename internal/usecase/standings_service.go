package usecase

import (
	"context"
	"fmt"

	"github.com/courtsidehq/courtside/internal/domain/standings"
	"github.com/courtsidehq/courtside/internal/platform/cache"
	"github.com/courtsidehq/courtside/internal/platform/logging"
)

type StandingsProvider interface {
	FetchStandings(ctx context.Context, season string) ([]standings.Record, error)
}

type StandingsService struct {
	provider StandingsProvider
	logger   *logging.Logger
	store    *cache.Store
}

func NewStandingsService(provider StandingsProvider, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		provider: provider,
		logger:   logger,
		store:    cache.NewStore(0),
	}
}

// IndexBySeason returns standings keyed by team id, fetching at most once
// per season per run. A fetch failure degrades to an empty index so game
// previews still render without standings detail.
func (s *StandingsService) IndexBySeason(ctx context.Context, season string) map[string]standings.Record {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.IndexBySeason")
	defer span.End()

	if s.provider == nil {
		s.logger.WarnContext(ctx, "standings provider is not configured")
		return map[string]standings.Record{}
	}

	value, err := s.store.GetOrLoad(ctx, "standings:"+season, func(ctx context.Context) (any, error) {
		records, err := s.provider.FetchStandings(ctx, season)
		if err != nil {
			return nil, err
		}
		index := make(map[string]standings.Record, len(records))
		for _, rec := range records {
			index[rec.TeamID] = rec
		}
		return index, nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "standings fetch failed, degrading to empty index",
			"season", season,
			"error", err.Error(),
		)
		return map[string]standings.Record{}
	}

	index, ok := value.(map[string]standings.Record)
	if !ok {
		s.logger.ErrorContext(ctx, "unexpected cached standings type", "type", fmt.Sprintf("%T", value))
		return map[string]standings.Record{}
	}
	return index
}

// ClearCache drops the cached index so the next lookup refetches.
func (s *StandingsService) ClearCache(ctx context.Context) {
	s.store.Clear(ctx)
}

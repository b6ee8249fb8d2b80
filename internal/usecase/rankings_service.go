package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/domain/rankings"
	"github.com/courtsidehq/courtside/internal/platform/cache"
	"github.com/courtsidehq/courtside/internal/platform/logging"
)

// RankingsProvider fetches one top-10 leaderboard per call. Implemented by
// external/nbastats.
type RankingsProvider interface {
	FetchTeamLeaderboard(ctx context.Context, statKey, season string) ([]rankings.Record, error)
	FetchPlayerLeaderboard(ctx context.Context, statKey, season string) ([]rankings.Record, error)
	FetchPlayerTotalsLeaderboard(ctx context.Context, statKey, season string) ([]rankings.Record, error)
}

// Leaderboards holds every fetched top-10 list keyed by display label
// ("PPG", "Net RTG", ...). A statistic whose fetch failed is present with
// an empty slice.
type Leaderboards struct {
	Teams   map[string][]rankings.Record
	Players map[string][]rankings.Record
}

type leaderboardTaskKind string

const (
	taskTeamStat        leaderboardTaskKind = "team"
	taskPlayerStat      leaderboardTaskKind = "player"
	taskPlayerTotalStat leaderboardTaskKind = "player_totals"
)

type leaderboardTask struct {
	kind    leaderboardTaskKind
	statKey string
}

type leaderboardTaskResult struct {
	task    leaderboardTask
	records []rankings.Record
	err     error
}

type RankingsService struct {
	provider RankingsProvider
	logger   *logging.Logger
	workers  int
	store    *cache.Store

	mu          sync.RWMutex
	teamIndex   map[string][]rankings.TeamRank
	playerIndex map[string][]rankings.PlayerRank
}

func NewRankingsService(provider RankingsProvider, workers int, logger *logging.Logger) *RankingsService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = 5
	}
	return &RankingsService{
		provider:    provider,
		logger:      logger,
		workers:     workers,
		store:       cache.NewStore(0),
		teamIndex:   map[string][]rankings.TeamRank{},
		playerIndex: map[string][]rankings.PlayerRank{},
	}
}

// FetchAll pulls every tracked leaderboard concurrently. Each statistic is
// one pool task; a task failure degrades that statistic to an empty
// leaderboard instead of failing the batch. Results are cached per season
// for the lifetime of the run.
func (s *RankingsService) FetchAll(ctx context.Context, season string) (Leaderboards, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingsService.FetchAll")
	defer span.End()

	if s.provider == nil {
		return Leaderboards{}, fmt.Errorf("%w: rankings provider is not configured", ErrDependencyUnavailable)
	}

	value, err := s.store.GetOrLoad(ctx, "rankings:"+season, func(ctx context.Context) (any, error) {
		return s.fetchAll(ctx, season)
	})
	if err != nil {
		return Leaderboards{}, err
	}

	boards, ok := value.(Leaderboards)
	if !ok {
		return Leaderboards{}, fmt.Errorf("unexpected cached rankings type %T", value)
	}
	return boards, nil
}

func (s *RankingsService) fetchAll(ctx context.Context, season string) (Leaderboards, error) {
	tasks := make([]leaderboardTask, 0, len(config.TeamStatKeys)+len(config.PlayerStatKeys)+len(config.PlayerTotalStatKeys))
	for _, key := range config.TeamStatKeys {
		tasks = append(tasks, leaderboardTask{kind: taskTeamStat, statKey: key})
	}
	for _, key := range config.PlayerStatKeys {
		tasks = append(tasks, leaderboardTask{kind: taskPlayerStat, statKey: key})
	}
	for _, key := range config.PlayerTotalStatKeys {
		tasks = append(tasks, leaderboardTask{kind: taskPlayerTotalStat, statKey: key})
	}

	results := make(chan leaderboardTaskResult, len(tasks))

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return Leaderboards{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			records, err := s.runLeaderboardTask(ctx, task, season)
			results <- leaderboardTaskResult{task: task, records: records, err: err}
		}); err != nil {
			workers.Done()
			return Leaderboards{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	boards := Leaderboards{
		Teams:   make(map[string][]rankings.Record, len(config.TeamStatKeys)),
		Players: make(map[string][]rankings.Record, len(config.PlayerStatKeys)+len(config.PlayerTotalStatKeys)),
	}
	failed := 0
	for row := range results {
		if row.err != nil {
			failed++
			s.logger.WarnContext(ctx, "leaderboard fetch failed, degrading to empty",
				"kind", string(row.task.kind),
				"stat", row.task.statKey,
				"error", row.err.Error(),
			)
			row.records = nil
		}
		label := statLabel(row.task)
		switch row.task.kind {
		case taskTeamStat:
			boards.Teams[label] = row.records
		default:
			boards.Players[label] = row.records
		}
	}

	s.logger.InfoContext(ctx, "leaderboards fetched",
		"season", season,
		"tasks", len(tasks),
		"failed", failed,
		"workers", s.workers,
	)

	return boards, nil
}

func (s *RankingsService) runLeaderboardTask(ctx context.Context, task leaderboardTask, season string) ([]rankings.Record, error) {
	switch task.kind {
	case taskTeamStat:
		return s.provider.FetchTeamLeaderboard(ctx, task.statKey, season)
	case taskPlayerStat:
		return s.provider.FetchPlayerLeaderboard(ctx, task.statKey, season)
	case taskPlayerTotalStat:
		return s.provider.FetchPlayerTotalsLeaderboard(ctx, task.statKey, season)
	default:
		return nil, fmt.Errorf("%w: unknown leaderboard task kind %q", ErrInvalidInput, task.kind)
	}
}

func statLabel(task leaderboardTask) string {
	if task.kind == taskTeamStat {
		return config.TeamStatNames[task.statKey]
	}
	return config.PlayerStatNames[task.statKey]
}

// BuildIndexes inverts the leaderboards into per-team lookups. Calling it
// again replaces the previous indexes wholesale, so repeated builds from
// the same boards are idempotent.
func (s *RankingsService) BuildIndexes(boards Leaderboards) {
	teamIndex := map[string][]rankings.TeamRank{}
	for label, records := range boards.Teams {
		for _, rec := range records {
			if rec.TeamID == "" || rec.Rank < 1 || rec.Rank > 10 {
				continue
			}
			teamIndex[rec.TeamID] = append(teamIndex[rec.TeamID], rankings.TeamRank{
				Stat:  label,
				Rank:  rec.Rank,
				Value: rec.Value,
			})
		}
	}

	playerIndex := map[string][]rankings.PlayerRank{}
	for label, records := range boards.Players {
		for _, rec := range records {
			// Rank is re-checked here because the official leaders
			// endpoint reports it in the payload.
			if rec.Tricode == "" || rec.Rank < 1 || rec.Rank > 10 {
				continue
			}
			playerIndex[rec.Tricode] = append(playerIndex[rec.Tricode], rankings.PlayerRank{
				PlayerName: rec.Name,
				Stat:       label,
				Rank:       rec.Rank,
				Value:      rec.Value,
			})
		}
	}

	s.mu.Lock()
	s.teamIndex = teamIndex
	s.playerIndex = playerIndex
	s.mu.Unlock()
}

// Refresh is FetchAll followed by BuildIndexes.
func (s *RankingsService) Refresh(ctx context.Context, season string) error {
	boards, err := s.FetchAll(ctx, season)
	if err != nil {
		return err
	}
	s.BuildIndexes(boards)
	return nil
}

// RankingsForTeam returns every top-10 appearance for a team, best rank
// first. Ties keep the fixed statistic table order so output is stable
// across runs. Teams with no appearances get an empty slice.
func (s *RankingsService) RankingsForTeam(teamID string) []rankings.TeamRank {
	s.mu.RLock()
	ranks := s.teamIndex[teamID]
	s.mu.RUnlock()

	out := make([]rankings.TeamRank, len(ranks))
	copy(out, ranks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return config.TeamStatOrder(out[i].Stat) < config.TeamStatOrder(out[j].Stat)
	})
	return out
}

// RankingsForTeamPlayers returns every top-10 appearance by the team's
// players, best rank first and alphabetical by player on ties.
func (s *RankingsService) RankingsForTeamPlayers(tricode string) []rankings.PlayerRank {
	s.mu.RLock()
	ranks := s.playerIndex[tricode]
	s.mu.RUnlock()

	out := make([]rankings.PlayerRank, len(ranks))
	copy(out, ranks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out
}

// ClearCache drops cached leaderboards so the next FetchAll refetches.
// Indexes stay in place until the next BuildIndexes.
func (s *RankingsService) ClearCache(ctx context.Context) {
	s.store.Clear(ctx)
}

package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/courtsidehq/courtside/internal/domain/rankings"
	"github.com/courtsidehq/courtside/internal/platform/logging"
)

type stubRankingsProvider struct {
	teamCalls   atomic.Int32
	playerCalls atomic.Int32
	totalsCalls atomic.Int32

	teamBoards   map[string][]rankings.Record
	playerBoards map[string][]rankings.Record
	totalsBoards map[string][]rankings.Record
	failStats    map[string]bool
}

func (p *stubRankingsProvider) FetchTeamLeaderboard(_ context.Context, statKey, _ string) ([]rankings.Record, error) {
	p.teamCalls.Add(1)
	if p.failStats[statKey] {
		// Partial rows may accompany the error; callers must discard them.
		return p.teamBoards[statKey], errors.New("upstream unavailable")
	}
	return p.teamBoards[statKey], nil
}

func (p *stubRankingsProvider) FetchPlayerLeaderboard(_ context.Context, statKey, _ string) ([]rankings.Record, error) {
	p.playerCalls.Add(1)
	if p.failStats[statKey] {
		return nil, errors.New("upstream unavailable")
	}
	return p.playerBoards[statKey], nil
}

func (p *stubRankingsProvider) FetchPlayerTotalsLeaderboard(_ context.Context, statKey, _ string) ([]rankings.Record, error) {
	p.totalsCalls.Add(1)
	if p.failStats[statKey] {
		return nil, errors.New("upstream unavailable")
	}
	return p.totalsBoards[statKey], nil
}

func TestRankingsService_FetchAll_DegradesFailedStatToEmpty(t *testing.T) {
	t.Parallel()

	provider := &stubRankingsProvider{
		teamBoards: map[string][]rankings.Record{
			"BASE_PTS": {{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "PPG", Rank: 1, Value: 120.5}},
			"BASE_AST": {{Name: "DEN", Tricode: "DEN", TeamID: "1610612743", Stat: "AST", Rank: 1, Value: 30.1}},
		},
		failStats: map[string]bool{"BASE_AST": true},
	}

	service := NewRankingsService(provider, 5, logging.NewNop())

	boards, err := service.FetchAll(context.Background(), "2025-26")
	if err != nil {
		t.Fatalf("FetchAll error: %v", err)
	}

	if got := boards.Teams["PPG"]; len(got) != 1 || got[0].Tricode != "OKC" {
		t.Fatalf("unexpected PPG leaderboard: %+v", got)
	}
	if got, ok := boards.Teams["AST"]; !ok {
		t.Fatal("failed statistic should still be present with an empty leaderboard")
	} else if len(got) != 0 {
		t.Fatalf("rows returned alongside an error must be discarded, got %+v", got)
	}
}

func TestRankingsService_FetchAll_CachesPerSeason(t *testing.T) {
	t.Parallel()

	provider := &stubRankingsProvider{}
	service := NewRankingsService(provider, 5, logging.NewNop())

	ctx := context.Background()
	if _, err := service.FetchAll(ctx, "2025-26"); err != nil {
		t.Fatalf("first FetchAll error: %v", err)
	}
	first := provider.teamCalls.Load()
	if first == 0 {
		t.Fatal("expected team leaderboard fetches on first call")
	}

	if _, err := service.FetchAll(ctx, "2025-26"); err != nil {
		t.Fatalf("second FetchAll error: %v", err)
	}
	if provider.teamCalls.Load() != first {
		t.Fatalf("second FetchAll should hit the cache, calls went %d -> %d", first, provider.teamCalls.Load())
	}

	service.ClearCache(ctx)
	if _, err := service.FetchAll(ctx, "2025-26"); err != nil {
		t.Fatalf("FetchAll after ClearCache error: %v", err)
	}
	if provider.teamCalls.Load() == first {
		t.Fatal("ClearCache should force a refetch")
	}
}

func TestRankingsService_BuildIndexes_ExcludesRanksOverTen(t *testing.T) {
	t.Parallel()

	service := NewRankingsService(&stubRankingsProvider{}, 5, logging.NewNop())
	service.BuildIndexes(Leaderboards{
		Players: map[string][]rankings.Record{
			"PPG": {
				{Name: "Shai Gilgeous-Alexander", Tricode: "OKC", Stat: "PPG", Rank: 1, Value: 32.7},
				{Name: "Chet Holmgren", Tricode: "OKC", Stat: "PPG", Rank: 11, Value: 17.1},
				{Name: "Jalen Williams", Tricode: "OKC", Stat: "PPG", Rank: 0, Value: 21.6},
			},
		},
	})

	got := service.RankingsForTeamPlayers("OKC")
	if len(got) != 1 {
		t.Fatalf("expected only the true top-10 entry, got %+v", got)
	}
	if got[0].PlayerName != "Shai Gilgeous-Alexander" {
		t.Fatalf("unexpected player: %+v", got[0])
	}
}

func TestRankingsService_RankingsForTeam_TieBreaksByTableOrder(t *testing.T) {
	t.Parallel()

	service := NewRankingsService(&stubRankingsProvider{}, 5, logging.NewNop())
	boards := Leaderboards{
		Teams: map[string][]rankings.Record{
			"Opp PPG": {{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "Opp PPG", Rank: 1, Value: 105.2}},
			"PPG":     {{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "PPG", Rank: 1, Value: 120.5}},
			"AST":     {{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "AST", Rank: 3, Value: 28.9}},
		},
	}

	for range [5]struct{}{} {
		service.BuildIndexes(boards)
		got := service.RankingsForTeam("1610612760")
		if len(got) != 3 {
			t.Fatalf("expected 3 rankings, got %+v", got)
		}
		// Both rank-1 entries appear before rank 3, and PPG precedes
		// Opp PPG because of the fixed statistic table order.
		if got[0].Stat != "PPG" || got[1].Stat != "Opp PPG" || got[2].Stat != "AST" {
			t.Fatalf("unexpected order: %+v", got)
		}
		if got[0].Rank != 1 || got[0].Value != 120.5 {
			t.Fatalf("rank/value did not round-trip through the index: %+v", got[0])
		}
	}
}

func TestRankingsService_RankingsForTeamPlayers_SortsByRankThenName(t *testing.T) {
	t.Parallel()

	service := NewRankingsService(&stubRankingsProvider{}, 5, logging.NewNop())
	service.BuildIndexes(Leaderboards{
		Players: map[string][]rankings.Record{
			"APG": {{Name: "Zach Edey", Tricode: "MEM", Stat: "APG", Rank: 2, Value: 8.1}},
			"RPG": {{Name: "Aaron Gordon", Tricode: "MEM", Stat: "RPG", Rank: 2, Value: 11.3}},
			"PPG": {{Name: "Ja Morant", Tricode: "MEM", Stat: "PPG", Rank: 5, Value: 25.4}},
		},
	})

	got := service.RankingsForTeamPlayers("MEM")
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %+v", got)
	}
	if got[0].PlayerName != "Aaron Gordon" || got[1].PlayerName != "Zach Edey" || got[2].PlayerName != "Ja Morant" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestRankingsService_AbsentTeamHasNoEntries(t *testing.T) {
	t.Parallel()

	service := NewRankingsService(&stubRankingsProvider{}, 5, logging.NewNop())
	service.BuildIndexes(Leaderboards{
		Teams: map[string][]rankings.Record{
			"PPG": {{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "PPG", Rank: 1, Value: 120.5}},
		},
	})

	if got := service.RankingsForTeam("1610612765"); len(got) != 0 {
		t.Fatalf("team absent from every leaderboard should have no entries, got %+v", got)
	}
	if got := service.RankingsForTeamPlayers("DET"); len(got) != 0 {
		t.Fatalf("tricode absent from every leaderboard should have no entries, got %+v", got)
	}
}

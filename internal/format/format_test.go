package format

import (
	"strings"
	"testing"

	"github.com/courtsidehq/courtside/internal/domain/game"
	"github.com/courtsidehq/courtside/internal/domain/injury"
	"github.com/courtsidehq/courtside/internal/domain/rankings"
)

func previewGame() *game.Game {
	return &game.Game{
		ID:          "0022500123",
		TimeDisplay: "7:30 PM ET",
		Away: game.Team{
			ID: "1610612760", Tricode: "OKC", Name: "Thunder",
			Wins: 40, Losses: 8, PlayoffRank: 1, Streak: "W5", L10: "9-1",
			HomeRecord: "21-3", RoadRecord: "19-5", L10Home: "5-0", L10Road: "4-1",
		},
		Home: game.Team{
			ID: "1610612743", Tricode: "DEN", Name: "Nuggets",
			Wins: 33, Losses: 15, PlayoffRank: 3, Streak: "L2", L10: "6-4",
			HomeRecord: "20-4", RoadRecord: "13-11", L10Home: "4-1", L10Road: "2-3",
		},
	}
}

func TestStatValue(t *testing.T) {
	t.Parallel()

	// Percentages are fractions upstream and display x100, one decimal.
	if got := StatValue("FG%", 0.452); got != "45.2" {
		t.Fatalf("FG%% value = %q, want 45.2", got)
	}
	if got := StatValue("3P%", 0.401); got != "40.1" {
		t.Fatalf("3P%% value = %q, want 40.1", got)
	}
	// Season totals get no decimals.
	if got := StatValue("Double Doubles", 38); got != "38" {
		t.Fatalf("double doubles value = %q, want 38", got)
	}
	if got := StatValue("Triple Doubles", 12); got != "12" {
		t.Fatalf("triple doubles value = %q, want 12", got)
	}
	// Everything else one decimal.
	if got := StatValue("PPG", 120.55); got != "120.6" {
		t.Fatalf("PPG value = %q, want 120.6", got)
	}
}

func TestParent_HeaderLine(t *testing.T) {
	t.Parallel()

	g := previewGame()
	g.NationalBroadcaster = &game.Broadcaster{Name: "ESPN", Display: "ESPN"}

	lines := strings.Split(Parent(g), "\n")
	want := "#1 OKC (40-8) :_okc: at #3 DEN (33-15) :_den: | 7:30 PM ET | :ESPN:"
	if lines[0] != want {
		t.Fatalf("header = %q, want %q", lines[0], want)
	}
}

func TestParent_MissingStandingsAndTimeRenderPlaceholders(t *testing.T) {
	t.Parallel()

	g := &game.Game{
		TimeDisplay: "TBD",
		Away:        game.Team{ID: "1", Tricode: "OKC"},
		Home:        game.Team{ID: "2", Tricode: "DEN"},
	}

	header := strings.Split(Parent(g), "\n")[0]
	if !strings.HasPrefix(header, "#- OKC (0-0)") {
		t.Fatalf("missing playoff rank should render a placeholder, got %q", header)
	}
	if !strings.Contains(header, "| TBD") {
		t.Fatalf("unparsable time should render TBD, got %q", header)
	}
}

func TestParent_FooterPlaceholdersWithoutInjuries(t *testing.T) {
	t.Parallel()

	body := Parent(previewGame())
	for _, marker := range []string{"NOTABLES", "MILESTONES", "GTD/QUESTIONABLE", "INJURIES"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("parent body missing %q marker:\n%s", marker, body)
		}
	}
}

func TestParent_LiveInjuriesReplacePlaceholders(t *testing.T) {
	t.Parallel()

	g := previewGame()
	g.Injuries = []injury.Record{
		{PlayerName: "Chet Holmgren", Status: "GTD", TeamID: "1610612760", Tricode: "OKC"},
		{PlayerName: "Aaron Gordon", Status: "OUT", TeamID: "1610612743", Tricode: "DEN"},
		{PlayerName: "Jamal Murray", Status: "QUESTIONABLE", TeamID: "1610612743", Tricode: "DEN"},
	}

	body := Parent(g)
	if strings.Contains(body, "GTD/QUESTIONABLE") {
		t.Fatalf("live questionable data should replace the placeholder:\n%s", body)
	}
	// Away entries come before home entries with a separator between.
	if !strings.Contains(body, "Chet Holmgren | Jamal Murray") {
		t.Fatalf("questionable line should list away then home:\n%s", body)
	}
	if strings.Contains(body, ":out: INJURIES") {
		t.Fatalf("live out data should replace the placeholder:\n%s", body)
	}
	if !strings.Contains(body, "Aaron Gordon") {
		t.Fatalf("out line missing player:\n%s", body)
	}
}

func TestParent_OnlyParentTierStatsAppear(t *testing.T) {
	t.Parallel()

	g := previewGame()
	g.TeamRankings = []rankings.Record{
		{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "PPG", Rank: 1, Value: 120.5},
		{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "Net RTG", Rank: 1, Value: 12.9},
	}

	body := Parent(g)
	if !strings.Contains(body, "#1 in PPG (120.5)") {
		t.Fatalf("parent-tier stat missing:\n%s", body)
	}
	if strings.Contains(body, "Net RTG") {
		t.Fatalf("thread-tier stat leaked into parent:\n%s", body)
	}
}

func TestParent_PlayerLineFollowsDisplayGroupOrder(t *testing.T) {
	t.Parallel()

	g := previewGame()
	// Attached order is (rank, name); inside one player's line the fixed
	// display-group sequence wins instead.
	g.PlayerRankings = []rankings.Record{
		{Name: "Shai Gilgeous-Alexander", Tricode: "OKC", Stat: "FG%", Rank: 4, Value: 0.535},
		{Name: "Shai Gilgeous-Alexander", Tricode: "OKC", Stat: "PPG", Rank: 1, Value: 32.7},
		{Name: "Shai Gilgeous-Alexander", Tricode: "OKC", Stat: "APG", Rank: 8, Value: 6.4},
	}

	body := Parent(g)
	want := "Shai Gilgeous-Alexander (OKC) ranks #1 in PPG (32.7), #8 in APG (6.4), #4 in FG% (53.5)"
	if !strings.Contains(body, want) {
		t.Fatalf("player line ordering wrong, want substring %q in:\n%s", want, body)
	}
}

func TestThread_EmptyWithoutThreadContent(t *testing.T) {
	t.Parallel()

	g := previewGame()
	// Parent-tier content only; nothing qualifies for the thread.
	g.TeamRankings = []rankings.Record{
		{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "PPG", Rank: 1, Value: 120.5},
	}

	if body := Thread(g); body != "" {
		t.Fatalf("thread should be empty without thread-tier content, got:\n%s", body)
	}
}

func TestThread_RendersThreadTierAndInjuries(t *testing.T) {
	t.Parallel()

	g := previewGame()
	g.Away.MonthlyRecords = map[string]string{"oct": "5-1", "jan": "8-2"}
	g.TeamRankings = []rankings.Record{
		{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "Net RTG", Rank: 1, Value: 12.9},
	}
	g.PlayerRankings = []rankings.Record{
		{Name: "Nikola Jokic", Tricode: "DEN", Stat: "Triple Doubles", Rank: 1, Value: 18},
	}
	g.Injuries = []injury.Record{
		{PlayerName: "Aaron Gordon", Status: "OUT", Type: "Calf", TeamID: "1610612743", Tricode: "DEN"},
	}

	body := Thread(g)
	if !strings.Contains(body, "*Detailed Preview: OKC @ DEN*") {
		t.Fatalf("missing thread header:\n%s", body)
	}
	if !strings.Contains(body, "#1 in Net RTG (12.9)") {
		t.Fatalf("missing thread-tier team stat:\n%s", body)
	}
	if !strings.Contains(body, "#1 in Triple Doubles (18)") {
		t.Fatalf("triple doubles should render with no decimals:\n%s", body)
	}
	if !strings.Contains(body, "OCT: 5-1, JAN: 8-2") {
		t.Fatalf("monthly records missing or out of order:\n%s", body)
	}
	if !strings.Contains(body, "Aaron Gordon - Calf (OUT)") {
		t.Fatalf("detailed injury line missing:\n%s", body)
	}
	if !strings.Contains(body, "_None reported_") {
		t.Fatalf("empty severity section should note none reported:\n%s", body)
	}
}

func TestThread_InjuriesAloneForceThread(t *testing.T) {
	t.Parallel()

	g := previewGame()
	g.Injuries = []injury.Record{
		{PlayerName: "Jamal Murray", Status: "GTD", Type: "Knee", TeamID: "1610612743", Tricode: "DEN"},
	}

	if body := Thread(g); body == "" {
		t.Fatal("detailed injuries should force a thread even without rankings")
	}
}

func TestFormatting_DeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	g := previewGame()
	g.TeamRankings = []rankings.Record{
		{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "PPG", Rank: 1, Value: 120.5},
		{Name: "OKC", Tricode: "OKC", TeamID: "1610612760", Stat: "Opp PPG", Rank: 1, Value: 105.2},
	}

	first := Parent(g)
	for i := 0; i < 10; i++ {
		if got := Parent(g); got != first {
			t.Fatalf("run %d rendered differently:\n%s\nvs\n%s", i, got, first)
		}
	}
}

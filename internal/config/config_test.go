package config

import (
	"testing"
	"time"

	"github.com/courtsidehq/courtside/internal/platform/logging"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NBA_API_KEY", "sched-key")
	t.Setenv("NBA_STANDINGS_KEY", "standings-key")
	t.Setenv("QUERY_TOOL_API_KEY", "qt-key")
	t.Setenv("STATS_API_KEY", "stats-key")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-token")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.NBABaseURL != "https://api.nba.com/v0" {
		t.Errorf("NBABaseURL = %q", cfg.NBABaseURL)
	}
	if cfg.LeagueID != "00" {
		t.Errorf("LeagueID = %q", cfg.LeagueID)
	}
	if cfg.NBATimeout != 15*time.Second || cfg.SlackTimeout != 10*time.Second {
		t.Errorf("timeouts = %v / %v", cfg.NBATimeout, cfg.SlackTimeout)
	}
	if cfg.FetchWorkers != 5 {
		t.Errorf("FetchWorkers = %d, want 5", cfg.FetchWorkers)
	}
	if !cfg.NBACircuitEnabled || !cfg.SlackCircuitEnabled {
		t.Errorf("circuit breakers should default on, got nba=%v slack=%v", cfg.NBACircuitEnabled, cfg.SlackCircuitEnabled)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.AppEnv != EnvDev {
		t.Errorf("AppEnv = %q, want dev", cfg.AppEnv)
	}
}

func TestLoadRejectsMissingCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SLACK_BOT_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail without a bot token")
	}
}

func TestLoadRejectsInvalidAppEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject unknown APP_ENV values")
	}
}

func TestLoadClampsWorkerCount(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RANKINGS_FETCH_WORKERS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.FetchWorkers != 1 {
		t.Fatalf("FetchWorkers = %d, want clamp to 1", cfg.FetchWorkers)
	}
}

func TestLoadParsesCircuitFlags(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NBA_CIRCUIT_ENABLED", "false")
	t.Setenv("SLACK_CIRCUIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.NBACircuitEnabled || cfg.SlackCircuitEnabled {
		t.Fatalf("circuit flags should parse false, got nba=%v slack=%v", cfg.NBACircuitEnabled, cfg.SlackCircuitEnabled)
	}

	t.Setenv("NBA_CIRCUIT_ENABLED", "not-a-bool")
	if _, err := Load(); err == nil {
		t.Fatal("Load should reject a malformed NBA_CIRCUIT_ENABLED")
	}
}

func TestResolveChannel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SLACK_CHANNEL_ID_DAILY_THREADS", "C0DAILY123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	got, err := cfg.ResolveChannel("daily-threads")
	if err != nil {
		t.Fatalf("ResolveChannel alias error: %v", err)
	}
	if got != "C0DAILY123" {
		t.Fatalf("alias resolved to %q", got)
	}

	got, err = cfg.ResolveChannel("C987654321")
	if err != nil {
		t.Fatalf("ResolveChannel raw id error: %v", err)
	}
	if got != "C987654321" {
		t.Fatalf("raw id resolved to %q", got)
	}

	if _, err := cfg.ResolveChannel("nonexistent"); err == nil {
		t.Fatal("unknown alias should error")
	}
}

func TestStatTables(t *testing.T) {
	t.Parallel()

	// Every tracked key has a friendly label and a response key.
	for _, key := range TeamStatKeys {
		if TeamStatNames[key] == "" || TeamStatResponseKeys[key] == "" {
			t.Errorf("team stat %q missing label or response key", key)
		}
	}
	for _, key := range append(append([]string{}, PlayerStatKeys...), PlayerTotalStatKeys...) {
		if PlayerStatNames[key] == "" || PlayerStatResponseKeys[key] == "" {
			t.Errorf("player stat %q missing label or response key", key)
		}
	}

	// Tier tables only reference labels that exist.
	known := map[string]bool{}
	for _, key := range TeamStatKeys {
		known[TeamStatNames[key]] = true
	}
	for _, label := range append(append([]string{}, ParentTeamStats...), ThreadTeamStats...) {
		if !known[label] {
			t.Errorf("team tier table references unknown label %q", label)
		}
	}

	if TeamStatOrder("PPG") >= TeamStatOrder("Opp PPG") {
		t.Error("PPG must precede Opp PPG in the fixed table order")
	}
	if PlayerStatDisplayRank("PPG") >= PlayerStatDisplayRank("FG%") {
		t.Error("scoring group must precede shooting group in display order")
	}
}

func TestEmojiHelpers(t *testing.T) {
	t.Parallel()

	if got := TeamEmoji("LAL"); got != ":_lal:" {
		t.Errorf("TeamEmoji = %q", got)
	}
	if got := TeamEmoji(""); got != "" {
		t.Errorf("TeamEmoji empty = %q", got)
	}
	if got := BroadcasterEmoji("NBA TV"); got != ":NBATV:" {
		t.Errorf("BroadcasterEmoji = %q", got)
	}
	if got := SectionEmoji("top10"); got != ":t10:" {
		t.Errorf("SectionEmoji = %q", got)
	}
}

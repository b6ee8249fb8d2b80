package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/courtsidehq/courtside/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for one bot run. Credential fields are
// validated up front so a missing key aborts before any fetch.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string

	NBABaseURL        string
	ScheduleAPIKey    string `validate:"required"`
	StandingsKey      string `validate:"required"`
	QueryToolKey      string `validate:"required"`
	StatsKey          string `validate:"required"`
	LeagueID          string
	NBATimeout        time.Duration
	NBAMaxRetries     int
	NBACircuitEnabled bool

	SlackBaseURL        string
	SlackBotToken       string `validate:"required"`
	SlackChannels       map[string]string
	SlackTimeout        time.Duration
	SlackCircuitEnabled bool

	FetchWorkers int

	UptraceEnabled   bool
	UptraceDSN       string
	PyroscopeEnabled bool
	PyroscopeAddr    string

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	nbaTimeout, err := getEnvAsDuration("NBA_API_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_API_TIMEOUT: %w", err)
	}
	nbaRetries, err := getEnvAsInt("NBA_API_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_API_MAX_RETRIES: %w", err)
	}
	nbaCircuitEnabled, err := strconv.ParseBool(getEnv("NBA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_CIRCUIT_ENABLED: %w", err)
	}
	slackTimeout, err := getEnvAsDuration("SLACK_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse SLACK_TIMEOUT: %w", err)
	}
	slackCircuitEnabled, err := strconv.ParseBool(getEnv("SLACK_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SLACK_CIRCUIT_ENABLED: %w", err)
	}
	fetchWorkers, err := getEnvAsInt("RANKINGS_FETCH_WORKERS", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse RANKINGS_FETCH_WORKERS: %w", err)
	}
	if fetchWorkers < 1 {
		fetchWorkers = 1
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("SERVICE_NAME", "courtside"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),

		NBABaseURL:        strings.TrimRight(getEnv("NBA_API_BASE", "https://api.nba.com/v0"), "/"),
		ScheduleAPIKey:    strings.TrimSpace(os.Getenv("NBA_API_KEY")),
		StandingsKey:      strings.TrimSpace(os.Getenv("NBA_STANDINGS_KEY")),
		QueryToolKey:      strings.TrimSpace(os.Getenv("QUERY_TOOL_API_KEY")),
		StatsKey:          strings.TrimSpace(os.Getenv("STATS_API_KEY")),
		LeagueID:          getEnv("NBA_LEAGUE_ID", "00"),
		NBATimeout:        nbaTimeout,
		NBAMaxRetries:     nbaRetries,
		NBACircuitEnabled: nbaCircuitEnabled,

		SlackBaseURL:        strings.TrimRight(getEnv("SLACK_API_BASE", "https://slack.com/api"), "/"),
		SlackBotToken:       strings.TrimSpace(os.Getenv("SLACK_BOT_TOKEN")),
		SlackChannels:       loadChannelAliases(),
		SlackTimeout:        slackTimeout,
		SlackCircuitEnabled: slackCircuitEnabled,

		FetchWorkers: fetchWorkers,

		UptraceEnabled:   uptraceEnabled,
		UptraceDSN:       uptraceDSN,
		PyroscopeEnabled: pyroscopeEnabled,
		PyroscopeAddr:    getEnv("PYROSCOPE_SERVER_ADDRESS", ""),

		LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("missing required configuration: %w", err)
	}

	return cfg, nil
}

// ResolveChannel maps a channel alias to its Slack channel id. A value that
// is not a known alias is treated as a raw channel id.
func (c Config) ResolveChannel(nameOrID string) (string, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(nameOrID)), "-", "_")
	if key == "" {
		return "", fmt.Errorf("channel is required")
	}
	if id, ok := c.SlackChannels[key]; ok && id != "" {
		return id, nil
	}
	if strings.HasPrefix(strings.ToUpper(nameOrID), "C") && len(nameOrID) >= 9 {
		return strings.TrimSpace(nameOrID), nil
	}
	return "", fmt.Errorf("unknown channel %q and no SLACK_CHANNEL_ID_%s set", nameOrID, strings.ToUpper(key))
}

func loadChannelAliases() map[string]string {
	out := make(map[string]string)
	for _, envKey := range os.Environ() {
		parts := strings.SplitN(envKey, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key, value := parts[0], strings.TrimSpace(parts[1])
		if !strings.HasPrefix(key, "SLACK_CHANNEL_ID_") || value == "" {
			continue
		}
		alias := strings.ToLower(strings.TrimPrefix(key, "SLACK_CHANNEL_ID_"))
		out[alias] = value
	}
	return out
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

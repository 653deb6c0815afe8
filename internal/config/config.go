package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/entity"
	"github.com/spf13/viper"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	Channels           []entity.Channel
	// PostMatches enables Slack posts. When false every run is a dry run.
	PostMatches bool

	HistoryBackend string
	HistoryDir     string
	DatabasePath   string
	S3Bucket       string
	AWSRegion      string

	DaysBetweenRuns int
	PromptDays      int
	MatchStrategy   string
	// MatchSeed makes rounds reproducible. Zero seeds from the clock.
	MatchSeed     int64
	NotifyWorkers int
	// RosterWorkers bounds the concurrent users.info lookups of a roster listing.
	RosterWorkers int

	RunTime string
	RunOnce bool
	Port    string
	LogMode string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("POST_MATCHES", false)
	v.SetDefault("HISTORY_BACKEND", domain.BackendCSV)
	v.SetDefault("HISTORY_DIR", "./doughnut_history")
	v.SetDefault("DATABASE_PATH", "./doughnut.db")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("DAYS_BETWEEN_RUNS", domain.DefaultDaysBetweenRuns)
	v.SetDefault("PROMPT_DAYS", domain.DefaultPromptDays)
	v.SetDefault("MATCH_STRATEGY", domain.StrategyWeighted)
	v.SetDefault("MATCH_SEED", 0)
	v.SetDefault("NOTIFY_WORKERS", 4)
	v.SetDefault("ROSTER_WORKERS", 8)
	v.SetDefault("RUN_TIME", "09:00")
	v.SetDefault("RUN_ONCE", false)
	v.SetDefault("PORT", "3000")
	v.SetDefault("LOG_MODE", "prod")

	v.AutomaticEnv()

	channels, err := ParseChannels(v.GetString("SLACK_CHANNELS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		SlackBotToken:      v.GetString("SLACK_BOT_TOKEN"),
		SlackSigningSecret: v.GetString("SLACK_SIGNING_SECRET"),
		Channels:           channels,
		PostMatches:        v.GetBool("POST_MATCHES"),
		HistoryBackend:     strings.ToLower(v.GetString("HISTORY_BACKEND")),
		HistoryDir:         v.GetString("HISTORY_DIR"),
		DatabasePath:       v.GetString("DATABASE_PATH"),
		S3Bucket:           v.GetString("S3_BUCKET"),
		AWSRegion:          v.GetString("AWS_REGION"),
		DaysBetweenRuns:    v.GetInt("DAYS_BETWEEN_RUNS"),
		PromptDays:         v.GetInt("PROMPT_DAYS"),
		MatchStrategy:      strings.ToLower(v.GetString("MATCH_STRATEGY")),
		MatchSeed:          v.GetInt64("MATCH_SEED"),
		NotifyWorkers:      v.GetInt("NOTIFY_WORKERS"),
		RosterWorkers:      v.GetInt("ROSTER_WORKERS"),
		RunTime:            v.GetString("RUN_TIME"),
		RunOnce:            v.GetBool("RUN_ONCE"),
		Port:               v.GetString("PORT"),
		LogMode:            v.GetString("LOG_MODE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseChannels reads "name:id" pairs separated by commas.
func ParseChannels(value string) ([]entity.Channel, error) {
	var channels []entity.Channel
	seen := make(map[string]bool)

	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, id, ok := strings.Cut(item, ":")
		name, id = strings.TrimSpace(name), strings.TrimSpace(id)
		if !ok || name == "" || id == "" {
			return nil, fmt.Errorf("invalid channel %q, expected name:id", item)
		}
		if seen[id] {
			return nil, fmt.Errorf("channel %s is listed more than once", id)
		}
		seen[id] = true

		channels = append(channels, entity.Channel{SlackChannelID: id, Name: name})
	}

	return channels, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.SlackBotToken == "" {
		errs = append(errs, errors.New("SLACK_BOT_TOKEN is required"))
	}
	if len(c.Channels) == 0 {
		errs = append(errs, errors.New("SLACK_CHANNELS must list at least one name:id channel"))
	}
	if !c.RunOnce && c.SlackSigningSecret == "" {
		errs = append(errs, errors.New("SLACK_SIGNING_SECRET is required unless RUN_ONCE is set"))
	}

	switch c.HistoryBackend {
	case domain.BackendCSV:
		if c.HistoryDir == "" {
			errs = append(errs, errors.New("HISTORY_DIR is required for the csv backend"))
		}
	case domain.BackendSQLite:
		if c.DatabasePath == "" {
			errs = append(errs, errors.New("DATABASE_PATH is required for the sqlite backend"))
		}
		if c.S3Bucket != "" {
			errs = append(errs, errors.New("S3_BUCKET is only supported with the csv backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown HISTORY_BACKEND %q", c.HistoryBackend))
	}

	if c.DaysBetweenRuns <= 0 {
		errs = append(errs, errors.New("DAYS_BETWEEN_RUNS must be positive"))
	}
	if c.PromptDays <= 0 {
		errs = append(errs, errors.New("PROMPT_DAYS must be positive"))
	}
	if c.PromptDays >= c.DaysBetweenRuns {
		errs = append(errs, errors.New("PROMPT_DAYS must be less than DAYS_BETWEEN_RUNS"))
	}
	if c.NotifyWorkers <= 0 {
		errs = append(errs, errors.New("NOTIFY_WORKERS must be positive"))
	}
	if c.RosterWorkers <= 0 {
		errs = append(errs, errors.New("ROSTER_WORKERS must be positive"))
	}

	if c.MatchStrategy != domain.StrategyWeighted && c.MatchStrategy != domain.StrategySimple {
		errs = append(errs, fmt.Errorf("unknown MATCH_STRATEGY %q", c.MatchStrategy))
	}
	if _, _, err := domain.ParseClock(c.RunTime); err != nil {
		errs = append(errs, fmt.Errorf("RUN_TIME: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

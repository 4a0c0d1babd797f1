package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/practicum"

	"github.com/joho/godotenv"
)

const (
	defaultLogLevel     = "info"
	defaultEnvironment  = "development"
	defaultPollSchedule = "@every 10m"
	defaultNotifyRate   = 1.0
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	Credentials       homework.Credentials
	PracticumEndpoint string
	TelegramAPIURL    string // empty means the public Bot API
	LogLevel          string
	Environment       string
	PollSchedule      string // cron spec, e.g. "@every 10m"
	RequestTimeout    time.Duration
	NotifyRatePerSec  float64
}

// Defaults returns the configuration used before the environment has been read.
func Defaults() *AppConfig {
	return &AppConfig{
		PracticumEndpoint: practicum.DefaultEndpoint,
		LogLevel:          defaultLogLevel,
		Environment:       defaultEnvironment,
		PollSchedule:      defaultPollSchedule,
		RequestTimeout:    practicum.DefaultTimeout,
		NotifyRatePerSec:  defaultNotifyRate,
	}
}

// Load reads configuration from environment variables and .env file (if present).
// Missing credentials yield a *homework.ConfigError.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*AppConfig, error) {
	cfg := Defaults()

	cfg.Credentials.PracticumToken = getenv("PRACTICUM_TOKEN")
	cfg.Credentials.TelegramToken = getenv("TELEGRAM_TOKEN")

	if chatIDStr := strings.TrimSpace(getenv("TELEGRAM_CHAT_ID")); chatIDStr != "" {
		chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, &homework.ConfigError{Err: fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)}
		}
		cfg.Credentials.TelegramChatID = chatID
	}
	if err := cfg.Credentials.Validate(); err != nil {
		return nil, err
	}

	if v := strings.ToLower(getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.ToLower(getenv("ENVIRONMENT")); v != "" {
		cfg.Environment = v
	}
	if v := getenv("POLL_SCHEDULE"); v != "" {
		cfg.PollSchedule = v
	}
	if v := getenv("PRACTICUM_ENDPOINT"); v != "" {
		cfg.PracticumEndpoint = v
	}
	cfg.TelegramAPIURL = getenv("TELEGRAM_API_URL")

	if v := getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, &homework.ConfigError{Err: fmt.Errorf("invalid REQUEST_TIMEOUT %q", v)}
		}
		cfg.RequestTimeout = d
	}
	if v := getenv("NOTIFY_RATE_PER_SEC"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate <= 0 {
			return nil, &homework.ConfigError{Err: fmt.Errorf("invalid NOTIFY_RATE_PER_SEC %q", v)}
		}
		cfg.NotifyRatePerSec = rate
	}

	return cfg, nil
}

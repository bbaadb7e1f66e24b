package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults preserved from the service this bot replaced: poll every 600s
// against the Practicum homework-statuses endpoint.
const (
	DefaultEndpoint     = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPollInterval = 10 * time.Minute
	DefaultHTTPTimeout  = 30 * time.Second
)

// Config holds everything tunable via the config file.
//
// Secrets (API token, bot token, chat id) are NOT part of this struct;
// they come from the environment (see secrets.go) and are never hot-reloaded.
type Config struct {
	Practicum PracticumConfig `json:"practicum"`
	Telegram  TelegramConfig  `json:"telegram"`
	Logging   LoggingConfig   `json:"logging"`
}

// PracticumConfig controls the review-status API client and the poll cadence.
//
// All durations are Go duration strings (e.g. "30s", "10m").
type PracticumConfig struct {
	Endpoint     string `json:"endpoint,omitempty"`
	PollInterval string `json:"poll_interval,omitempty"`
	HTTPTimeout  string `json:"http_timeout,omitempty"`
}

// TelegramConfig controls outbound delivery pacing.
// Token bucket: rate_per_sec sustained, burst on top.
type TelegramConfig struct {
	RatePerSec int `json:"rate_per_sec,omitempty"`
	Burst      int `json:"burst,omitempty"`
}

type LoggingConfig struct {
	Level   string            `json:"level,omitempty"`
	Console bool              `json:"console"`
	File    LoggingFileConfig `json:"file,omitempty"`
}

type LoggingFileConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path,omitempty"`
}

// ParseDurationField parses one duration-string config field, naming the
// field path in any error. Empty parses to zero; negative values are
// rejected (nothing in this config means anything when negative).
func ParseDurationField(path, raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", path, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: duration must be >= 0", path)
	}
	return d, nil
}

// ParseDurationOrDefault is ParseDurationField with def substituted for an
// omitted (empty or zero) field.
func ParseDurationOrDefault(path, raw string, def time.Duration) (time.Duration, error) {
	d, err := ParseDurationField(path, raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return def, nil
	}
	return d, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Practicum: PracticumConfig{
			Endpoint:     DefaultEndpoint,
			PollInterval: DefaultPollInterval.String(),
			HTTPTimeout:  DefaultHTTPTimeout.String(),
		},
		Telegram: TelegramConfig{
			RatePerSec: 1,
			Burst:      3,
		},
		Logging: LoggingConfig{
			Level:   "INFO",
			Console: true,
		},
	}
}

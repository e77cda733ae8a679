// Package config loads the tool settings. Precedence, lowest to highest:
// built-in defaults, an optional YAML file, then WEBSCOUT_* environment
// variables. A .env file in the working directory is folded into the
// environment first.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/webscout/webscout/pkg/defaults"
	"github.com/webscout/webscout/pkg/duration"
	"github.com/webscout/webscout/pkg/scraper"
)

// Settings is the configuration surface consumed by the CLI. The core
// packages receive these values; they never read the environment
// themselves.
type Settings struct {
	// Timeout is the per-request HTTP timeout
	Timeout time.Duration `yaml:"timeout"`

	// MaxBodySize is the response body cap in bytes
	MaxBodySize int64 `yaml:"max_body_size"`

	// MinInterval is the minimum spacing between outbound requests
	MinInterval time.Duration `yaml:"min_interval"`

	// PoolSize limits simultaneous connections
	PoolSize int `yaml:"pool_size"`

	// PageSize is the pager window size for discovery results
	PageSize int `yaml:"page_size"`

	// CallerCooldown is the per-caller command cooldown
	CallerCooldown time.Duration `yaml:"caller_cooldown"`

	// UserAgent overrides the default browser user agent
	UserAgent string `yaml:"user_agent"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Timeout:        duration.HTTPRequest,
		MaxBodySize:    defaults.MaxBodySize,
		MinInterval:    duration.RequestInterval,
		PoolSize:       defaults.PoolSize,
		PageSize:       defaults.PageSize,
		CallerCooldown: duration.CallerCooldown,
		UserAgent:      defaults.UAChrome,
	}
}

// Load builds Settings from defaults, the YAML file at path (skipped when
// path is empty), and environment overrides, in that order.
func Load(path string) (*Settings, error) {
	// Best-effort: a missing .env is not an error.
	_ = godotenv.Load()

	s := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := s.applyEnv(); err != nil {
		return nil, err
	}
	return s, nil
}

// applyEnv folds WEBSCOUT_* variables over the current values.
func (s *Settings) applyEnv() error {
	var err error
	if v := os.Getenv("WEBSCOUT_TIMEOUT"); v != "" {
		if s.Timeout, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("WEBSCOUT_TIMEOUT: %w", err)
		}
	}
	if v := os.Getenv("WEBSCOUT_MIN_INTERVAL"); v != "" {
		if s.MinInterval, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("WEBSCOUT_MIN_INTERVAL: %w", err)
		}
	}
	if v := os.Getenv("WEBSCOUT_CALLER_COOLDOWN"); v != "" {
		if s.CallerCooldown, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("WEBSCOUT_CALLER_COOLDOWN: %w", err)
		}
	}
	if v := os.Getenv("WEBSCOUT_MAX_BODY_SIZE"); v != "" {
		if s.MaxBodySize, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("WEBSCOUT_MAX_BODY_SIZE: %w", err)
		}
	}
	if v := os.Getenv("WEBSCOUT_POOL_SIZE"); v != "" {
		if s.PoolSize, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("WEBSCOUT_POOL_SIZE: %w", err)
		}
	}
	if v := os.Getenv("WEBSCOUT_PAGE_SIZE"); v != "" {
		if s.PageSize, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("WEBSCOUT_PAGE_SIZE: %w", err)
		}
	}
	if v := os.Getenv("WEBSCOUT_USER_AGENT"); v != "" {
		s.UserAgent = v
	}
	return nil
}

// ScraperConfig converts the settings into a scraper configuration.
func (s *Settings) ScraperConfig() *scraper.Config {
	return &scraper.Config{
		Timeout:     s.Timeout,
		MaxBodySize: s.MaxBodySize,
		MinInterval: s.MinInterval,
		PoolSize:    s.PoolSize,
		UserAgent:   s.UserAgent,
	}
}

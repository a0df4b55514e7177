package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/example/spothopper-reserve/internal/domain/reservation"
)

const (
	DefaultBaseURL   = "https://www.spothopperapp.com/api/spots"
	DefaultVenue     = "slainte"
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) spothopper-reserve/1.0"
)

type Config struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`

	// Venue is the default venue name, looked up in Venues.
	Venue  string             `yaml:"venue"`
	Venues reservation.Venues `yaml:"venues"`

	// form defaults; the booking form has no flags for these yet
	Space             string `yaml:"space"`
	TextingPermission bool   `yaml:"texting_permission"`

	HTTPTimeout time.Duration `yaml:"http_timeout"`
	LogLevel    string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		UserAgent:   DefaultUserAgent,
		Venue:       DefaultVenue,
		Venues:      reservation.DefaultVenues(),
		Space:       reservation.DefaultSpace,
		HTTPTimeout: 20 * time.Second,
		LogLevel:    "info",
	}
}

// Load reads defaults, then the YAML file at path (if any), then env
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = strings.TrimSpace(os.Getenv("RESERVE_CONFIG"))
	}
	// file venues are decoded on their own, then laid over the built-in table
	builtin := cfg.Venues
	cfg.Venues = nil
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.Venues = builtin.With(cfg.Venues)
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	c.BaseURL = getenv("SPOTHOPPER_BASE_URL", c.BaseURL)
	c.UserAgent = getenv("SPOTHOPPER_USER_AGENT", c.UserAgent)
	c.Venue = getenv("RESERVE_VENUE", c.Venue)
	c.Space = getenv("RESERVE_SPACE", c.Space)
	c.LogLevel = getenv("LOG_LEVEL", c.LogLevel)

	if v := getenv("RESERVE_TEXTING_PERMISSION", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RESERVE_TEXTING_PERMISSION: %w", err)
		}
		c.TextingPermission = b
	}
	if v := getenv("HTTP_TIMEOUT_SECONDS", ""); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil || sec < 1 {
			return fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS")
		}
		c.HTTPTimeout = time.Duration(sec) * time.Second
	}
	return nil
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if len(c.Venues) == 0 {
		return fmt.Errorf("at least one venue is required")
	}
	if _, err := c.Venues.Lookup(c.Venue); err != nil {
		return fmt.Errorf("default venue: %w", err)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be > 0")
	}
	return nil
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Collab.validate(); err != nil {
		return fmt.Errorf("collab: %w", err)
	}
	if err := c.Events.validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}
	if err := c.Redis.validate(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if err := c.History.validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}

	return nil
}

func (c *CollabConfig) validate() error {
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("idle_timeout must be > 0 (got %v)", c.IdleTimeout)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be > 0 (got %v)", c.SweepInterval)
	}
	if c.SweepInterval > c.IdleTimeout {
		return fmt.Errorf("sweep_interval (%v) must not exceed idle_timeout (%v)", c.SweepInterval, c.IdleTimeout)
	}
	return nil
}

func (e *EventsConfig) validate() error {
	if e.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be > 0 (got %d)", e.BufferSize)
	}
	if e.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", e.Workers)
	}
	return nil
}

func (r *RedisConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.Addr == "" {
		return fmt.Errorf("addr is required when redis is enabled")
	}
	if r.ChannelPrefix == "" {
		return fmt.Errorf("channel_prefix is required when redis is enabled")
	}
	return nil
}

func (h *HistoryConfig) validate() error {
	if h.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", h.DefaultPageSize)
	}
	if h.MaxPageSize < h.DefaultPageSize {
		return fmt.Errorf("max_page_size (%d) must be >= default_page_size (%d)", h.MaxPageSize, h.DefaultPageSize)
	}
	if h.RetentionDays < 0 {
		return fmt.Errorf("retention_days must be >= 0 (got %d)", h.RetentionDays)
	}
	return nil
}

package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo data settings.
type Config struct {
	// Count is the number of work items to create. Targets cycle through
	// every status so that each one is represented.
	Count      int    `yaml:"count"        env:"SEEDER_COUNT"        env-default:"40"`
	Requesters int    `yaml:"requesters"   env:"SEEDER_REQUESTERS"   env-default:"5"`
	Executors  int    `yaml:"executors"    env:"SEEDER_EXECUTORS"    env-default:"3"`
	BaseUserID int64  `yaml:"base_user_id" env:"SEEDER_BASE_USER_ID" env-default:"1000"`
	Categories string `yaml:"categories"   env:"SEEDER_CATEGORIES"   env-default:"facilities,it support,hr,finance"`
	DryRun     bool   `yaml:"dry_run"      env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("seeder config: count must be >= 0")
	case c.Requesters < 1 || c.Executors < 1:
		return fmt.Errorf("seeder config: requesters and executors must be >= 1")
	case c.BaseUserID < 1:
		return fmt.Errorf("seeder config: base_user_id must be >= 1")
	}
	return nil
}

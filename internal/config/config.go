package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Storage backends for trap and character records
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Storage StorageConfig
	Rules   RulesConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN,required"`
	AppID   string `env:"DISCORD_APP_ID,required"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// StorageConfig selects where trap configurations live
type StorageConfig struct {
	Backend    string `env:"STORAGE_BACKEND" envDefault:"memory"`
	RedisURL   string `env:"REDIS_URL"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"traps.db"`
}

// RulesConfig holds rule-system settings
type RulesConfig struct {
	// Variant picks the defense resolver: "4e" reads sheet attributes,
	// "fixed" uses DefaultDefense for every defense.
	Variant        string `env:"RULES_VARIANT" envDefault:"4e"`
	DefaultDefense int    `env:"RULES_DEFAULT_DEFENSE" envDefault:"10"`
	DiceSeed       int64  `env:"DICE_SEED"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that struct tags cannot express
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StorageSQLite:
	case StorageRedis:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis storage backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	switch c.Rules.Variant {
	case "4e", "fixed":
	default:
		return fmt.Errorf("unknown RULES_VARIANT %q", c.Rules.Variant)
	}

	return nil
}

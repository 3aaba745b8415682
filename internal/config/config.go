// Package config is the application configuration: the reusable core
// sections plus the bot's own.
package config

import (
	"fmt"
	"os"
	"strings"

	coreconfig "github.com/benuhq/benubot/core/config"
	"github.com/benuhq/benubot/core/database"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// ManagerConfig identifies the approving manager.
type ManagerConfig struct {
	ChatID int64 `yaml:"chat_id" envconfig:"MANAGER_CHAT_ID"`
}

// InferenceConfig points at the text-generation endpoint.
type InferenceConfig struct {
	URL    string `yaml:"url" envconfig:"INFERENCE_URL"`
	APIKey string `yaml:"api_key" envconfig:"INFERENCE_API_KEY"`
}

// StoreConfig selects the sheet store backend.
type StoreConfig struct {
	Backend string `yaml:"backend" envconfig:"STORE_BACKEND"`
}

// Config aggregates everything the bot needs.
type Config struct {
	Telegram  coreconfig.TelegramConfig  `yaml:"telegram"`
	Webhook   coreconfig.WebhookConfig   `yaml:"webhook"`
	Logging   coreconfig.LoggingConfig   `yaml:"logging"`
	RateLimit coreconfig.RateLimitConfig `yaml:"rate_limit"`

	Database  database.Config `yaml:"database"`
	Store     StoreConfig     `yaml:"store"`
	Manager   ManagerConfig   `yaml:"manager"`
	Inference InferenceConfig `yaml:"inference"`
}

// Core extracts the sections owned by the core framework.
func (c *Config) Core() *coreconfig.Config {
	return &coreconfig.Config{
		Telegram:  c.Telegram,
		Webhook:   c.Webhook,
		Logging:   c.Logging,
		RateLimit: c.RateLimit,
	}
}

// Load reads the YAML file, applies env overrides, and validates.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates and defaults in place.
func Normalize(cfg *Config) error {
	core := cfg.Core()
	if err := coreconfig.Normalize(core); err != nil {
		return err
	}
	cfg.Telegram = core.Telegram
	cfg.RateLimit = core.RateLimit

	if cfg.Manager.ChatID == 0 {
		return fmt.Errorf("manager.chat_id is required")
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	if backend == "" {
		backend = StoreMemory
	}
	switch backend {
	case StoreMemory:
	case StorePostgres:
		if cfg.Database.Host == "" || cfg.Database.Name == "" {
			return fmt.Errorf("database.host and database.name are required when store.backend is 'postgres'")
		}
	default:
		return fmt.Errorf("invalid store.backend %q; allowed: memory, postgres", cfg.Store.Backend)
	}
	cfg.Store.Backend = backend

	if strings.TrimSpace(cfg.Inference.URL) == "" {
		return fmt.Errorf("inference.url is required")
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir   string   `json:"data_dir" mapstructure:"data_dir"`
	QueryPath string   `json:"query_path" mapstructure:"query_path"`
	LogPath   string   `json:"log_path" mapstructure:"log_path"`
	Seed      int64    `json:"seed" mapstructure:"seed"`
	Counts    Counts   `json:"counts" mapstructure:"counts"`
	Database  Database `json:"database" mapstructure:"database"`
}

// Counts are the default row counts per root relation; the generate command
// can override them per run.
type Counts struct {
	Customers int `json:"customers" mapstructure:"customers"`
	Products  int `json:"products" mapstructure:"products"`
	Orders    int `json:"orders" mapstructure:"orders"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	Path     string `json:"path" mapstructure:"path"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

// Load builds the config from whatever viper has read, filling defaults for
// anything unset.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration an empty project starts from.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "data/raw"
	}
	if c.QueryPath == "" {
		c.QueryPath = "sql/master_join.sql"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/ingestion.log"
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.Counts.Customers == 0 {
		c.Counts.Customers = 25
	}
	if c.Counts.Products == 0 {
		c.Counts.Products = 25
	}
	if c.Counts.Orders == 0 {
		c.Counts.Orders = 25
	}
	if c.Database.Provider == "" {
		c.Database.Provider = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "db/ecommerce.db"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DATABASE_URL"
	}
}

// DatabaseURL resolves the store location: the configured environment
// variable wins, otherwise sqlite falls back to the configured file path.
func (c *Config) DatabaseURL() (string, error) {
	if url := os.Getenv(c.Database.URLEnv); url != "" {
		return url, nil
	}
	switch c.Database.Provider {
	case "sqlite", "sqlite3":
		return "sqlite://" + c.Database.Path, nil
	}
	return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
}

func (c *Config) Validate() error {
	supportedProviders := []string{"sqlite", "sqlite3", "postgresql", "postgres", "mysql"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.QueryPath == "" {
		return fmt.Errorf("query_path cannot be empty")
	}
	return nil
}

// EnsureDirectories creates the directories the pipeline writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.DataDir,
		filepath.Dir(c.LogPath),
		filepath.Dir(c.Database.Path),
		filepath.Dir(c.QueryPath),
	}

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

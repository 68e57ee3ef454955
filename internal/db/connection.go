// Package db opens the persistent store for one pipeline stage. Connections
// are scoped resources: acquired at stage start, closed on every exit path,
// never shared across stages.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/datasmiths/shopforge/internal/config"
	"github.com/datasmiths/shopforge/internal/dataset"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type Connection struct {
	DB       *sql.DB
	provider string
}

// Open resolves the configured store URL, picks the matching driver, and
// verifies the store is reachable.
func Open(ctx context.Context, cfg *config.Config) (*Connection, error) {
	url, err := cfg.DatabaseURL()
	if err != nil {
		return nil, err
	}

	driver, dsn := driverFor(cfg.Database.Provider, url)
	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", cfg.Database.Provider, err)
	}

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, &dataset.ResourceError{Stage: "store", Path: dsn, Err: err}
	}

	return &Connection{DB: database, provider: cfg.Database.Provider}, nil
}

func driverFor(provider, url string) (driver, dsn string) {
	switch provider {
	case "postgresql", "postgres":
		return "pgx", url
	case "mysql":
		return "mysql", url
	default:
		return "sqlite3", strings.TrimPrefix(url, "sqlite://")
	}
}

// Placeholder returns the statement placeholder format the provider expects.
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	switch c.provider {
	case "postgresql", "postgres":
		return squirrel.Dollar
	default:
		return squirrel.Question
	}
}

func (c *Connection) Close() error {
	return c.DB.Close()
}

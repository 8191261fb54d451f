package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type PoolConfig struct {
	URL         string
	MaxConns    int
	MaxIdle     int
	MaxLifetime time.Duration
	PingTimeout time.Duration
}

func DefaultPoolConfig(url string) PoolConfig {
	return PoolConfig{
		URL:         url,
		MaxConns:    20,
		MaxIdle:     5,
		MaxLifetime: 30 * time.Minute,
		PingTimeout: 5 * time.Second,
	}
}

// Open builds the pooled connection shared by all repositories.
func Open(ctx context.Context, cfg PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

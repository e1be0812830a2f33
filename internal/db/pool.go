package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool connects to PostgreSQL and verifies the connection. Sessions are
// tagged with the service name so they show up in pg_stat_activity.
func NewPool(ctx context.Context, databaseURL, serviceName string) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(databaseURL, serviceName)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

// poolConfig parses the DSN. An application_name given in the DSN wins over
// the service name.
func poolConfig(databaseURL, serviceName string) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	params := cfg.ConnConfig.RuntimeParams
	if serviceName != "" && params["application_name"] == "" {
		params["application_name"] = serviceName
	}
	return cfg, nil
}

// api/db/postgres.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsecollective/pulse/api/config"
	logger "github.com/pulsecollective/pulse/api/logging"
)

// NewPostgres opens a pgx pool and verifies connectivity. The caller owns the
// returned pool and must Close it on shutdown.
func NewPostgres(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := config.GetString("postgres.dsn")
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	if maxConns := config.GetInt("postgres.maxConns"); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return pool, nil
}

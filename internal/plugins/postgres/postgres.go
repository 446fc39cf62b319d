package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"roomgate/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// New opens the pool used by the ownership lookups. The gateway only reads,
// so the pool is sized for short point queries.
func New(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	pgxCfg, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}
	if _, ok := pgxCfg.RuntimeParams["application_name"]; !ok && cfg.ApplicationName != "" {
		pgxCfg.RuntimeParams["application_name"] = cfg.ApplicationName
	}
	db := stdlib.OpenDB(*pgxCfg)
	// Pool tuning
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping %s: %w", pgxCfg.Host, err)
	}
	return db, nil
}

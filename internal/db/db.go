// Package db provides a pgxpool-based connection pool with schema
// bootstrap, prepared statement registration, and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fifa4x4/predictor-api/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// schema is everything the predictor persists: the team registry with
// optional strength ratings. Prediction results are never stored.
const schema = `
CREATE TABLE IF NOT EXISTS teams (
	name         text PRIMARY KEY,
	abbreviation text NOT NULL DEFAULT '',
	rating       double precision,
	updated_at   timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_teams_name_lower ON teams (lower(name));
`

// New creates and validates a new connection pool. The schema is
// applied first over a one-off connection so the prepared statements
// registered per pool connection always have their tables in place.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	if err := ensureSchema(ctx, cfg.DatabaseURL); err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

func ensureSchema(ctx context.Context, dsn string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect for schema check: %w", err)
	}
	defer conn.Close(ctx)
	if _, err := conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// registerPreparedStatements registers every statement the API and CLI
// use. Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Team registry
		"team_list":   "SELECT name, abbreviation, rating FROM teams ORDER BY rating DESC NULLS LAST, name",
		"team_lookup": "SELECT name, abbreviation, rating FROM teams WHERE lower(name) = lower($1)",
		"team_upsert": `INSERT INTO teams (name, abbreviation, rating, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (name) DO UPDATE
			SET abbreviation = EXCLUDED.abbreviation,
			    rating = EXCLUDED.rating,
			    updated_at = now()`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}

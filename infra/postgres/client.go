// Package postgres projects settlement events into PostgreSQL via pgx.
package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pool and checks it with a ping.
func Connect(ctx context.Context, dsn string, maxConns int) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: parse config")
	}
	if maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: connect")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "postgres: ping")
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS settlement_events (
	seq         BIGINT      NOT NULL,
	idx         INTEGER     NOT NULL,
	type        TEXT        NOT NULL,
	market_id   BIGINT      NOT NULL,
	asset_id    BIGINT      NOT NULL,
	bettor_id   BIGINT,
	bet_id      BIGINT,
	side        TEXT,
	multiplier  INTEGER,
	amount      BIGINT      NOT NULL,
	fee         BIGINT      NOT NULL,
	guaranteed  BIGINT      NOT NULL DEFAULT 0,
	resolution  TEXT,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (seq, idx)
);
CREATE INDEX IF NOT EXISTS settlement_events_market_idx ON settlement_events (market_id, seq);
CREATE INDEX IF NOT EXISTS settlement_events_bettor_idx ON settlement_events (bettor_id, seq);
`

// Migrate creates the projection table if it does not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return errors.Wrap(err, "postgres: migrate")
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"log/slog"

	"civiclens/internal/config"
	"civiclens/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool   *pgxpool.Pool
	Report *ReportRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres", "host", cfg.Postgres.Host, "db", cfg.Postgres.Database)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	logger.Info("Pinging Postgres database")
	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := EnsureSchema(ctx, pool); err != nil {
		logger.Error("Failed to ensure schema", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.EnsureSchema", err)
	}

	pg := &Postgres{
		Pool:   pool,
		Report: NewReportRepo(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}

// EnsureSchema creates the reports table and its spatial index. The GIST
// index over geo_point backs the nearby query the same way a 2dsphere
// index would in a document store.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE IF NOT EXISTS reports (
			id            uuid PRIMARY KEY,
			description   text NOT NULL CHECK (btrim(description) <> ''),
			image_url     text NOT NULL,
			geo_point     geography(Point, 4326) NOT NULL,
			address       text NOT NULL DEFAULT '',
			reporter_info text NOT NULL DEFAULT 'Anonymous',
			status        text NOT NULL DEFAULT 'pending'
			              CHECK (status IN ('pending', 'investigating', 'resolved')),
			submitted_at  timestamptz NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS reports_geo_idx ON reports USING GIST (geo_point);
		CREATE INDEX IF NOT EXISTS reports_submitted_at_idx ON reports (submitted_at DESC);
	`)
	return err
}

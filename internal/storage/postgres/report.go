package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"civiclens/internal/domain"
	"civiclens/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func (p *ReportRepo) Save(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Save"

	if report == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	lat, lng := report.Location.Lat(), report.Location.Lng()
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO reports (id, description, image_url, geo_point, address, reporter_info, status, submitted_at)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.SubmittedAt.IsZero() {
		report.SubmittedAt = time.Now().UTC()
	}
	if report.Status == "" {
		report.Status = domain.StatusPending
	}
	if report.ReporterInfo == "" {
		report.ReporterInfo = "Anonymous"
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Description,
		report.ImageURL,
		lng,
		lat,
		report.Address,
		report.ReporterInfo,
		report.Status,
		report.SubmittedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) ListRecent(ctx context.Context, limit int) ([]domain.Report, error) {
	const op = "postgres.Report.ListRecent"

	if limit <= 0 || limit > 1000 {
		limit = 1000
	}

	const query = `
		SELECT id,
			   description,
			   image_url,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   address,
			   reporter_info,
			   status,
			   submitted_at
		FROM reports
		ORDER BY submitted_at DESC
		LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return scanReports(ctx, rows, op, p.logger)
}

func (p *ReportRepo) FindNear(ctx context.Context, lat, lng, radiusMeters float64) ([]domain.Report, error) {
	const op = "postgres.Report.FindNear"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || radiusMeters <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// geo_point is geography, so ST_DWithin works in meters directly.
	const query = `
		SELECT id,
			   description,
			   image_url,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   address,
			   reporter_info,
			   status,
			   submitted_at
		FROM reports
		WHERE ST_DWithin(
			geo_point,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		ORDER BY submitted_at DESC
	`

	rows, err := p.pool.Query(ctx, query, lng, lat, radiusMeters)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return scanReports(ctx, rows, op, p.logger)
}

// Locations loads the heatmap projection of every report: coordinates,
// status and timestamp only.
func (p *ReportRepo) Locations(ctx context.Context) ([]domain.ReportLocation, error) {
	const op = "postgres.Report.Locations"

	const query = `
		SELECT ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lng,
			   status,
			   submitted_at
		FROM reports
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	locs := make([]domain.ReportLocation, 0, 64)
	for rows.Next() {
		var loc domain.ReportLocation
		if err := rows.Scan(&loc.Lat, &loc.Lng, &loc.Status, &loc.SubmittedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		locs = append(locs, loc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return locs, nil
}

func (p *ReportRepo) CountByStatus(ctx context.Context) (map[domain.ReportStatus]int64, error) {
	const op = "postgres.Report.CountByStatus"

	const query = `
		SELECT status, COUNT(*)
		FROM reports
		GROUP BY status
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	counts := make(map[domain.ReportStatus]int64, 3)
	for rows.Next() {
		var status domain.ReportStatus
		var cnt int64
		if err := rows.Scan(&status, &cnt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		counts[status] = cnt
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return counts, nil
}

func (p *ReportRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	const op = "postgres.Report.CountSince"

	const query = `
		SELECT COUNT(*)
		FROM reports
		WHERE submitted_at >= $1
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, since).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}

// DeleteByImagePrefix removes reports whose photo URL starts with the
// given prefix. Used by the admin cleanup endpoint to purge records
// created before object storage was wired in.
func (p *ReportRepo) DeleteByImagePrefix(ctx context.Context, prefix string) (int64, error) {
	const op = "postgres.Report.DeleteByImagePrefix"

	if prefix == "" {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		DELETE FROM reports
		WHERE image_url LIKE $1 || '%'
	`

	cmd, err := p.pool.Exec(ctx, query, prefix)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cmd.RowsAffected(), nil
}

func scanReports(ctx context.Context, rows pgx.Rows, op string, logger *slog.Logger) ([]domain.Report, error) {
	reports := make([]domain.Report, 0, 32)
	for rows.Next() {
		var (
			r        domain.Report
			lat, lng float64
		)
		if err := rows.Scan(
			&r.ID,
			&r.Description,
			&r.ImageURL,
			&lat,
			&lng,
			&r.Address,
			&r.ReporterInfo,
			&r.Status,
			&r.SubmittedAt,
		); err != nil {
			logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		r.Location = domain.NewPoint(lat, lng)
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return reports, nil
}

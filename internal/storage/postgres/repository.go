package postgres

import (
	"context"
	"time"

	"civiclens/internal/domain"
)

type ReportRepository interface {
	Save(ctx context.Context, report *domain.Report) error
	ListRecent(ctx context.Context, limit int) ([]domain.Report, error)
	FindNear(ctx context.Context, lat, lng, radiusMeters float64) ([]domain.Report, error)
	Locations(ctx context.Context) ([]domain.ReportLocation, error)
	CountByStatus(ctx context.Context) (map[domain.ReportStatus]int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	DeleteByImagePrefix(ctx context.Context, prefix string) (int64, error)
}

func (p *Postgres) Reports() ReportRepository { return p.Report }

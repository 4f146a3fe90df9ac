package service

import (
	"context"
	"time"

	"civiclens/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ReportRepository is the persistence contract the services consume.
// Backed by Postgres with a GIST index over the report point.
type ReportRepository interface {
	Save(ctx context.Context, report *domain.Report) error
	ListRecent(ctx context.Context, limit int) ([]domain.Report, error)
	FindNear(ctx context.Context, lat, lng, radiusMeters float64) ([]domain.Report, error)
	Locations(ctx context.Context) ([]domain.ReportLocation, error)
	CountByStatus(ctx context.Context) (map[domain.ReportStatus]int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	DeleteByImagePrefix(ctx context.Context, prefix string) (int64, error)
}

// BlobStore persists a local file into durable object storage. Put must
// remove the local file regardless of outcome.
type BlobStore interface {
	Put(ctx context.Context, localPath, objectName string) (string, error)
}

// NotifyQueue accepts best-effort moderation notifications.
type NotifyQueue interface {
	Enqueue(ctx context.Context, payload domain.ReportNotification) error
}

type IngestService interface {
	Submit(ctx context.Context, req domain.SubmitReportRequest) (*domain.SubmittedReport, error)
}

type HeatmapService interface {
	ComputeHeatmap(ctx context.Context) (*domain.HeatmapResponse, error)
}

type QueryService interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Report, error)
	FindNear(ctx context.Context, q domain.NearbyQuery) ([]domain.Report, error)
	Stats(ctx context.Context) (*domain.ReportStats, error)
	CleanupLocal(ctx context.Context) (int64, error)
}

type Service struct {
	Ingest  IngestService
	Heatmap HeatmapService
	Query   QueryService
}

func NewService(ingest IngestService, heatmap HeatmapService, query QueryService) *Service {
	return &Service{
		Ingest:  ingest,
		Heatmap: heatmap,
		Query:   query,
	}
}

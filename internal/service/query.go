package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"civiclens/internal/domain"
	"civiclens/pkg/e"
	"civiclens/pkg/validator"
)

const (
	defaultListLimit    = 1000
	defaultRadiusMeters = 5000

	// localURLPrefix marks reports saved before object storage was
	// wired in; the cleanup endpoint purges them.
	localURLPrefix = "/uploads/"
)

type queryService struct {
	repo   ReportRepository
	logger *slog.Logger
}

func NewQueryService(repo ReportRepository, logger *slog.Logger) QueryService {
	return &queryService{repo: repo, logger: logger}
}

func (s *queryService) ListRecent(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *queryService) FindNear(ctx context.Context, q domain.NearbyQuery) ([]domain.Report, error) {
	const op = "query.FindNear"

	if q.RadiusMeters == 0 {
		q.RadiusMeters = defaultRadiusMeters
	}
	if err := validator.ValidateStruct(q); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}

	return s.repo.FindNear(ctx, q.Lat, q.Lng, q.RadiusMeters)
}

func (s *queryService) Stats(ctx context.Context) (*domain.ReportStats, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.CountSince(ctx, nowUTC().Add(-recentWindow))
	if err != nil {
		return nil, err
	}

	stats := &domain.ReportStats{
		Pending:       byStatus[domain.StatusPending],
		Investigating: byStatus[domain.StatusInvestigating],
		Resolved:      byStatus[domain.StatusResolved],
		Recent:        recent,
	}
	stats.Total = stats.Pending + stats.Investigating + stats.Resolved

	return stats, nil
}

func (s *queryService) CleanupLocal(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteByImagePrefix(ctx, localURLPrefix)
	if err != nil {
		return 0, err
	}
	s.logger.Info("cleanup removed local-URL reports", slog.Int64("deleted", deleted))
	return deleted, nil
}

func nowUTC() time.Time { return time.Now().UTC() }

package service

import (
	"context"
	"math"
	"time"

	"log/slog"

	"civiclens/internal/domain"
)

// recentWindow is the trailing window used for both the heatmap recent
// counters and the stats recent counter.
const recentWindow = 30 * 24 * time.Hour

type heatmapService struct {
	repo   ReportRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewHeatmapService(repo ReportRepository, logger *slog.Logger) HeatmapService {
	return &heatmapService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

type gridKey struct {
	lat, lng float64
}

// ComputeHeatmap buckets every report into ~110 m grid cells (coordinates
// rounded to 3 decimals) and scores each cell. Pure function of the
// current report set, recomputed on every call.
func (s *heatmapService) ComputeHeatmap(ctx context.Context) (*domain.HeatmapResponse, error) {
	locs, err := s.repo.Locations(ctx)
	if err != nil {
		s.logger.Error("heatmap load failed", slog.Any("error", err))
		return nil, err
	}

	cutoff := s.now().UTC().Add(-recentWindow)

	groups := make(map[gridKey]*domain.HeatBucket, len(locs))
	for _, loc := range locs {
		key := gridKey{lat: round3(loc.Lat), lng: round3(loc.Lng)}

		bucket, ok := groups[key]
		if !ok {
			bucket = &domain.HeatBucket{
				Lat: key.lat,
				Lng: key.lng,
				Statuses: map[domain.ReportStatus]int{
					domain.StatusPending:       0,
					domain.StatusInvestigating: 0,
					domain.StatusResolved:      0,
				},
			}
			groups[key] = bucket
		}

		bucket.Count++
		bucket.Statuses[loc.Status]++
		if loc.SubmittedAt.After(cutoff) {
			bucket.Recent++
		}
	}

	data := make([]domain.HeatBucket, 0, len(groups))
	for _, bucket := range groups {
		bucket.Intensity = intensity(bucket.Count, bucket.Recent)
		data = append(data, *bucket)
	}

	s.logger.Debug("heatmap computed",
		slog.Int("reports", len(locs)),
		slog.Int("buckets", len(data)),
	)

	return &domain.HeatmapResponse{
		Success:        true,
		Data:           data,
		TotalReports:   len(locs),
		TotalLocations: len(data),
	}, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// intensity weighs recent activity roughly 2.3x over historical volume
// and caps the score at 10 to bound the visual scale.
func intensity(count, recent int) float64 {
	return math.Min(float64(count)*0.3+float64(recent)*0.7, 10)
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"civiclens/internal/domain"
	"civiclens/internal/service"
	mock_service "civiclens/internal/service/mocks"
)

func loc(lat, lng float64, status domain.ReportStatus, age time.Duration) domain.ReportLocation {
	return domain.ReportLocation{
		Lat:         lat,
		Lng:         lng,
		Status:      status,
		SubmittedAt: time.Now().UTC().Add(-age),
	}
}

func TestComputeHeatmap_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().Locations(gomock.Any()).Return([]domain.ReportLocation{}, nil).Times(1)

	svc := service.NewHeatmapService(repo, newTestLogger())

	got, err := svc.ComputeHeatmap(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.Success {
		t.Fatal("success must be true for empty set")
	}
	if len(got.Data) != 0 || got.TotalReports != 0 || got.TotalLocations != 0 {
		t.Fatalf("expected empty response, got %+v", got)
	}
}

func TestComputeHeatmap_MergesNearbyCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Both round to (12.346, 77.654) regardless of submission order.
	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().Locations(gomock.Any()).Return([]domain.ReportLocation{
		loc(12.34567, 77.65432, domain.StatusPending, time.Hour),
		loc(12.34561, 77.65439, domain.StatusResolved, 40*24*time.Hour),
	}, nil).Times(1)

	svc := service.NewHeatmapService(repo, newTestLogger())

	got, err := svc.ComputeHeatmap(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Data) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(got.Data))
	}

	bucket := got.Data[0]
	if bucket.Lat != 12.346 || bucket.Lng != 77.654 {
		t.Fatalf("bucket centroid: got=(%v, %v) want=(12.346, 77.654)", bucket.Lat, bucket.Lng)
	}
	if bucket.Count != 2 {
		t.Fatalf("count: got=%d want=2", bucket.Count)
	}
	if bucket.Recent != 1 {
		t.Fatalf("recent: got=%d want=1 (one report is 40 days old)", bucket.Recent)
	}
	if bucket.Statuses[domain.StatusPending] != 1 || bucket.Statuses[domain.StatusResolved] != 1 {
		t.Fatalf("statuses: got=%v", bucket.Statuses)
	}
	if got.TotalReports != 2 || got.TotalLocations != 1 {
		t.Fatalf("totals: got reports=%d locations=%d", got.TotalReports, got.TotalLocations)
	}

	// count*0.3 + recent*0.7 = 2*0.3 + 1*0.7
	if bucket.Intensity != 1.3 {
		t.Fatalf("intensity: got=%v want=1.3", bucket.Intensity)
	}
}

func TestComputeHeatmap_SeparateCells(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().Locations(gomock.Any()).Return([]domain.ReportLocation{
		loc(12.346, 77.654, domain.StatusPending, time.Hour),
		loc(12.347, 77.654, domain.StatusPending, time.Hour),
	}, nil).Times(1)

	svc := service.NewHeatmapService(repo, newTestLogger())

	got, err := svc.ComputeHeatmap(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Data) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got.Data))
	}
}

func TestComputeHeatmap_IntensityCappedAtTen(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locs := make([]domain.ReportLocation, 0, 50)
	for i := 0; i < 50; i++ {
		locs = append(locs, loc(12.346, 77.654, domain.StatusPending, time.Hour))
	}

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().Locations(gomock.Any()).Return(locs, nil).Times(1)

	svc := service.NewHeatmapService(repo, newTestLogger())

	got, err := svc.ComputeHeatmap(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Data) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(got.Data))
	}
	if got.Data[0].Intensity != 10 {
		t.Fatalf("intensity must cap at 10, got %v", got.Data[0].Intensity)
	}
}

func TestComputeHeatmap_IntensityMonotonic(t *testing.T) {
	t.Parallel()

	prev := 0.0
	for n := 1; n <= 20; n++ {
		ctrl := gomock.NewController(t)
		repo := mock_service.NewMockReportRepository(ctrl)

		locs := make([]domain.ReportLocation, 0, n)
		for i := 0; i < n; i++ {
			locs = append(locs, loc(12.346, 77.654, domain.StatusPending, time.Hour))
		}
		repo.EXPECT().Locations(gomock.Any()).Return(locs, nil).Times(1)

		got, err := service.NewHeatmapService(repo, newTestLogger()).ComputeHeatmap(context.Background())
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		cur := got.Data[0].Intensity
		if cur < prev {
			t.Fatalf("intensity decreased: n=%d cur=%v prev=%v", n, cur, prev)
		}
		if cur > 10 {
			t.Fatalf("intensity above cap: n=%d cur=%v", n, cur)
		}
		prev = cur
		ctrl.Finish()
	}
}

func TestComputeHeatmap_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("db down")

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().Locations(gomock.Any()).Return(nil, wantErr).Times(1)

	svc := service.NewHeatmapService(repo, newTestLogger())

	if _, err := svc.ComputeHeatmap(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v got %v", wantErr, err)
	}
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"civiclens/internal/domain"
	"civiclens/internal/service"
	mock_service "civiclens/internal/service/mocks"
	"civiclens/pkg/e"
)

func TestQueryStats_TotalEqualsStatusSum(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		byStatus map[domain.ReportStatus]int64
		recent   int64
	}{
		{"empty", map[domain.ReportStatus]int64{}, 0},
		{"only pending", map[domain.ReportStatus]int64{domain.StatusPending: 7}, 3},
		{"mixed", map[domain.ReportStatus]int64{
			domain.StatusPending:       4,
			domain.StatusInvestigating: 2,
			domain.StatusResolved:      9,
		}, 5},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockReportRepository(ctrl)
			repo.EXPECT().CountByStatus(gomock.Any()).Return(tc.byStatus, nil).Times(1)
			repo.EXPECT().CountSince(gomock.Any(), gomock.Any()).Return(tc.recent, nil).Times(1)

			svc := service.NewQueryService(repo, newTestLogger())

			got, err := svc.Stats(context.Background())
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.Total != got.Pending+got.Investigating+got.Resolved {
				t.Fatalf("total %d != pending %d + investigating %d + resolved %d",
					got.Total, got.Pending, got.Investigating, got.Resolved)
			}
			if got.Recent != tc.recent {
				t.Fatalf("recent: got=%d want=%d", got.Recent, tc.recent)
			}
		})
	}
}

func TestQueryListRecent_ClampsLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().ListRecent(gomock.Any(), 1000).Return([]domain.Report{}, nil).Times(2)
	repo.EXPECT().ListRecent(gomock.Any(), 50).Return([]domain.Report{}, nil).Times(1)

	svc := service.NewQueryService(repo, newTestLogger())

	for _, limit := range []int{0, 5000, 50} {
		if _, err := svc.ListRecent(context.Background(), limit); err != nil {
			t.Fatalf("limit=%d: %v", limit, err)
		}
	}
}

func TestQueryFindNear_DefaultRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().
		FindNear(gomock.Any(), 28.6139, 77.2090, float64(5000)).
		Return([]domain.Report{}, nil).
		Times(1)

	svc := service.NewQueryService(repo, newTestLogger())

	_, err := svc.FindNear(context.Background(), domain.NearbyQuery{Lat: 28.6139, Lng: 77.2090})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestQueryFindNear_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECTs: the repo must not be reached.
	repo := mock_service.NewMockReportRepository(ctrl)
	svc := service.NewQueryService(repo, newTestLogger())

	_, err := svc.FindNear(context.Background(), domain.NearbyQuery{Lat: 95, Lng: 77})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
}

func TestQueryCleanupLocal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	repo.EXPECT().
		DeleteByImagePrefix(gomock.Any(), "/uploads/").
		Return(int64(4), nil).
		Times(1)

	svc := service.NewQueryService(repo, newTestLogger())

	deleted, err := svc.CleanupLocal(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if deleted != 4 {
		t.Fatalf("deleted: got=%d want=4", deleted)
	}
}

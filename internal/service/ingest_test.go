package service_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"civiclens/internal/domain"
	"civiclens/internal/geo"
	"civiclens/internal/service"
	mock_service "civiclens/internal/service/mocks"
	"civiclens/pkg/e"
)

const maxPhotoBytes = 5 * 1024 * 1024

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func tempPhoto(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report-test.jpg")
	if err := os.WriteFile(path, bytes.Repeat([]byte{0xff}, size), 0o600); err != nil {
		t.Fatalf("write temp photo: %v", err)
	}
	return path
}

func validSubmit(path string, size int64) domain.SubmitReportRequest {
	return domain.SubmitReportRequest{
		PhotoPath:    path,
		PhotoName:    "report-test.jpg",
		MimeType:     "image/jpeg",
		SizeBytes:    size,
		Description:  "test",
		Lat:          28.6139,
		Lng:          77.2090,
		Address:      "New Delhi",
		ReporterInfo: "",
	}
}

func TestIngestSubmit_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	blobs := mock_service.NewMockBlobStore(ctrl)
	queue := mock_service.NewMockNotifyQueue(ctrl)

	path := tempPhoto(t, 100*1024)
	req := validSubmit(path, 100*1024)

	wantURL := "https://storage.googleapis.com/civiclens-uploads/report-1.jpg"

	blobs.EXPECT().
		Put(gomock.Any(), path, gomock.Any()).
		Return(wantURL, nil).
		Times(1)

	var saved *domain.Report
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.Report) error {
			saved = r
			return nil
		}).
		Times(1)

	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	svc := service.NewIngestService(repo, blobs, queue, geo.India, true, maxPhotoBytes, newTestLogger())

	got, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ImageURL != wantURL {
		t.Fatalf("imageUrl: got=%q want=%q", got.ImageURL, wantURL)
	}
	if got.Location.Coordinates != [2]float64{77.2090, 28.6139} {
		t.Fatalf("coordinates: got=%v want=[77.2090 28.6139]", got.Location.Coordinates)
	}
	if saved == nil {
		t.Fatal("report not saved")
	}
	if saved.Status != domain.StatusPending {
		t.Fatalf("status: got=%q want=%q", saved.Status, domain.StatusPending)
	}
	if saved.ReporterInfo != "Anonymous" {
		t.Fatalf("reporterInfo default: got=%q", saved.ReporterInfo)
	}
	if got.ID != saved.ID.String() {
		t.Fatalf("projection id: got=%q want=%q", got.ID, saved.ID)
	}
}

func TestIngestSubmit_UniqueIDs(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	blobs := mock_service.NewMockBlobStore(ctrl)

	blobs.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://storage.googleapis.com/b/o.jpg", nil).
		Times(3)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(3)

	svc := service.NewIngestService(repo, blobs, nil, geo.India, false, maxPhotoBytes, newTestLogger())

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		path := tempPhoto(t, 1024)
		got, err := svc.Submit(context.Background(), validSubmit(path, 1024))
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if seen[got.ID] {
			t.Fatalf("duplicate report id %q", got.ID)
		}
		seen[got.ID] = true
	}
}

func TestIngestSubmit_ValidationErrors_NoStorageWrites(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*domain.SubmitReportRequest)
		wantErr error
	}{
		{
			name:    "missing photo",
			mutate:  func(r *domain.SubmitReportRequest) { r.PhotoPath = ""; r.SizeBytes = 0 },
			wantErr: e.ErrPhotoRequired,
		},
		{
			name:    "not an image",
			mutate:  func(r *domain.SubmitReportRequest) { r.MimeType = "application/pdf" },
			wantErr: e.ErrNotAnImage,
		},
		{
			name:    "oversized photo",
			mutate:  func(r *domain.SubmitReportRequest) { r.SizeBytes = 6 * 1024 * 1024 },
			wantErr: e.ErrPhotoTooLarge,
		},
		{
			name:    "blank description",
			mutate:  func(r *domain.SubmitReportRequest) { r.Description = "   " },
			wantErr: e.ErrInvalidInput,
		},
		{
			name:    "latitude out of range",
			mutate:  func(r *domain.SubmitReportRequest) { r.Lat = 95 },
			wantErr: e.ErrInvalidInput,
		},
		{
			name:    "outside region",
			mutate:  func(r *domain.SubmitReportRequest) { r.Lat = 51.5074; r.Lng = -0.1278 },
			wantErr: e.ErrOutsideRegion,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No EXPECTs: any blob or repo call fails the test.
			repo := mock_service.NewMockReportRepository(ctrl)
			blobs := mock_service.NewMockBlobStore(ctrl)

			path := tempPhoto(t, 1024)
			req := validSubmit(path, 1024)
			tc.mutate(&req)

			svc := service.NewIngestService(repo, blobs, nil, geo.India, true, maxPhotoBytes, newTestLogger())

			_, err := svc.Submit(context.Background(), req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v got %v", tc.wantErr, err)
			}

			if req.PhotoPath != "" {
				if _, statErr := os.Stat(req.PhotoPath); !os.IsNotExist(statErr) {
					t.Fatalf("temp file not removed after rejection: %v", statErr)
				}
			}
		})
	}
}

func TestIngestSubmit_BlobFailure_NoReportSaved(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	blobs := mock_service.NewMockBlobStore(ctrl)

	path := tempPhoto(t, 1024)

	blobs.EXPECT().
		Put(gomock.Any(), path, gomock.Any()).
		Return("", errors.New("bucket unavailable")).
		Times(1)
	// repo.Save must not be called.

	svc := service.NewIngestService(repo, blobs, nil, geo.India, true, maxPhotoBytes, newTestLogger())

	_, err := svc.Submit(context.Background(), validSubmit(path, 1024))
	if !errors.Is(err, e.ErrBlobUpload) {
		t.Fatalf("expected ErrBlobUpload got %v", err)
	}
}

func TestIngestSubmit_PersistFailure_AfterUpload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	blobs := mock_service.NewMockBlobStore(ctrl)

	path := tempPhoto(t, 1024)
	wantErr := errors.New("db down")

	blobs.EXPECT().
		Put(gomock.Any(), path, gomock.Any()).
		Return("https://storage.googleapis.com/b/o.jpg", nil).
		Times(1)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(wantErr).
		Times(1)

	svc := service.NewIngestService(repo, blobs, nil, geo.India, true, maxPhotoBytes, newTestLogger())

	_, err := svc.Submit(context.Background(), validSubmit(path, 1024))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v got %v", wantErr, err)
	}
}

func TestIngestSubmit_QueueFailure_DoesNotFailSubmission(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	blobs := mock_service.NewMockBlobStore(ctrl)
	queue := mock_service.NewMockNotifyQueue(ctrl)

	path := tempPhoto(t, 1024)

	blobs.EXPECT().
		Put(gomock.Any(), path, gomock.Any()).
		Return("https://storage.googleapis.com/b/o.jpg", nil).
		Times(1)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down")).
		Times(1)

	svc := service.NewIngestService(repo, blobs, queue, geo.India, true, maxPhotoBytes, newTestLogger())

	if _, err := svc.Submit(context.Background(), validSubmit(path, 1024)); err != nil {
		t.Fatalf("queue failure must not fail submission: %v", err)
	}
}

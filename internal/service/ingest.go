package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"civiclens/internal/domain"
	"civiclens/internal/geo"
	"civiclens/pkg/e"
	"civiclens/pkg/validator"

	"github.com/google/uuid"
)

type ingestService struct {
	repo          ReportRepository
	blobs         BlobStore
	queue         NotifyQueue
	region        geo.Region
	enforceRegion bool
	maxSizeBytes  int64
	logger        *slog.Logger
}

func NewIngestService(
	repo ReportRepository,
	blobs BlobStore,
	queue NotifyQueue,
	region geo.Region,
	enforceRegion bool,
	maxSizeBytes int64,
	logger *slog.Logger,
) IngestService {
	if maxSizeBytes <= 0 {
		maxSizeBytes = 5 * 1024 * 1024
	}
	return &ingestService{
		repo:          repo,
		blobs:         blobs,
		queue:         queue,
		region:        region,
		enforceRegion: enforceRegion,
		maxSizeBytes:  maxSizeBytes,
		logger:        logger,
	}
}

// Submit runs the ingestion pipeline: validate, upload the photo, persist
// the report, notify. No report row is ever written for a failed upload.
// A row write failure after a successful upload leaves an orphaned blob;
// that is logged and accepted, not compensated.
func (s *ingestService) Submit(ctx context.Context, req domain.SubmitReportRequest) (*domain.SubmittedReport, error) {
	s.logger.Info("report submit START",
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.Int64("photo_bytes", req.SizeBytes),
	)

	if err := s.validate(req); err != nil {
		s.removeTemp(req.PhotoPath)
		s.logger.Warn("report submit rejected", slog.Any("error", err))
		return nil, err
	}

	objectName := photoObjectName(req.PhotoName)

	imageURL, err := s.blobs.Put(ctx, req.PhotoPath, objectName)
	if err != nil {
		s.logger.Error("photo upload failed", slog.String("object", objectName), slog.Any("error", err))
		return nil, fmt.Errorf("ingest.Submit: %w", e.ErrBlobUpload)
	}

	report := &domain.Report{
		ID:           uuid.New(),
		Description:  strings.TrimSpace(req.Description),
		ImageURL:     imageURL,
		Location:     domain.NewPoint(req.Lat, req.Lng),
		Address:      req.Address,
		ReporterInfo: reporterOrDefault(req.ReporterInfo),
		Status:       domain.StatusPending,
		SubmittedAt:  time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, report); err != nil {
		// The blob is already durable at this point. Accepted debt:
		// log the orphan, do not attempt a compensating delete.
		s.logger.Error("report persist failed, orphaned blob",
			slog.String("image_url", imageURL),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notify(ctx, report)

	s.logger.Info("report submit END", slog.String("report_id", report.ID.String()))

	return &domain.SubmittedReport{
		ID:          report.ID.String(),
		Description: report.Description,
		ImageURL:    report.ImageURL,
		Location:    report.Location,
		Timestamp:   report.SubmittedAt.Format(time.RFC3339),
	}, nil
}

func (s *ingestService) validate(req domain.SubmitReportRequest) error {
	const op = "ingest.validate"

	if req.PhotoPath == "" || req.SizeBytes == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrPhotoRequired)
	}
	if !strings.HasPrefix(req.MimeType, "image/") {
		return fmt.Errorf("%s: %w", op, e.ErrNotAnImage)
	}
	if req.SizeBytes > s.maxSizeBytes {
		return fmt.Errorf("%s: %w", op, e.ErrPhotoTooLarge)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}
	if s.enforceRegion && !s.region.Contains(req.Lat, req.Lng) {
		return fmt.Errorf("%s: %w", op, e.ErrOutsideRegion)
	}
	return nil
}

// notify is best-effort: a queue failure never fails the submission.
func (s *ingestService) notify(ctx context.Context, report *domain.Report) {
	if s.queue == nil {
		return
	}
	payload := domain.ReportNotification{
		ReportID:    report.ID,
		Description: report.Description,
		Lat:         report.Location.Lat(),
		Lng:         report.Location.Lng(),
		Address:     report.Address,
		SubmittedAt: report.SubmittedAt,
	}
	if err := s.queue.Enqueue(ctx, payload); err != nil {
		s.logger.Error("notify enqueue failed", slog.Any("error", err))
		return
	}
	s.logger.Debug("notify enqueued", slog.String("report_id", report.ID.String()))
}

// removeTemp cleans up the spooled upload when the request never reaches
// the blob store. The blob store owns removal on the upload path.
func (s *ingestService) removeTemp(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("temp file remove failed", slog.String("path", path), slog.Any("error", err))
	}
}

func photoObjectName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("report-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

func reporterOrDefault(info string) string {
	if strings.TrimSpace(info) == "" {
		return "Anonymous"
	}
	return info
}

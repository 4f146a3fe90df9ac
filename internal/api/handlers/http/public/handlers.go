package public

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"log/slog"

	"civiclens/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportSubmitter interface {
	Submit(ctx context.Context, req domain.SubmitReportRequest) (*domain.SubmittedReport, error)
}

type HeatmapComputer interface {
	ComputeHeatmap(ctx context.Context) (*domain.HeatmapResponse, error)
}

type ReportQueries interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Report, error)
	FindNear(ctx context.Context, q domain.NearbyQuery) ([]domain.Report, error)
	Stats(ctx context.Context) (*domain.ReportStats, error)
}

type Handler struct {
	logger       *slog.Logger
	Ingest       ReportSubmitter
	Heatmap      HeatmapComputer
	Query        ReportQueries
	tempDir      string
	maxSizeBytes int64
}

func NewHandler(logger *slog.Logger, ingest ReportSubmitter, heatmap HeatmapComputer, query ReportQueries, tempDir string, maxSizeBytes int64) *Handler {
	if tempDir == "" {
		tempDir = "uploads"
	}
	if maxSizeBytes <= 0 {
		maxSizeBytes = 5 * 1024 * 1024
	}
	return &Handler{
		logger:       logger,
		Ingest:       ingest,
		Heatmap:      heatmap,
		Query:        query,
		tempDir:      tempDir,
		maxSizeBytes: maxSizeBytes,
	}
}

// SubmitReport handles POST /api/report. The photo is spooled to a
// local temp file before it goes to object storage; downstream code
// owns removing it on every path.
func (h *Handler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	// Slack above the photo limit covers the text fields and the
	// multipart framing; the photo itself is re-checked against
	// maxSizeBytes below so the caller gets the size-limit message.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSizeBytes+1<<20)

	if err := r.ParseMultipartForm(h.maxSizeBytes + 1<<20); err != nil {
		l.Warn("multipart parse failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadRequest, errResp(h.sizeLimitMessage()))
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errResp("Photo is required"))
		return
	}
	defer file.Close()

	if header.Size > h.maxSizeBytes {
		h.writeJSON(w, http.StatusBadRequest, errResp(h.sizeLimitMessage()))
		return
	}

	description := r.FormValue("description")
	latStr := r.FormValue("latitude")
	lngStr := r.FormValue("longitude")
	if description == "" || latStr == "" || lngStr == "" {
		h.writeJSON(w, http.StatusBadRequest, errResp("Description, latitude, and longitude are required"))
		return
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		h.writeJSON(w, http.StatusBadRequest, errResp("Latitude and longitude must be valid numbers"))
		return
	}

	tempPath, err := h.spool(file, header.Filename)
	if err != nil {
		l.Error("spool upload failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errResp("Failed to submit report"))
		return
	}

	req := domain.SubmitReportRequest{
		PhotoPath:    tempPath,
		PhotoName:    header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		SizeBytes:    header.Size,
		Description:  description,
		Lat:          lat,
		Lng:          lng,
		Address:      r.FormValue("address"),
		ReporterInfo: r.FormValue("reporterInfo"),
	}

	report, err := h.Ingest.Submit(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Report submitted successfully",
		"report":  report,
	})
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Query.ListRecent(r.Context(), parseInt(r.URL.Query().Get("limit"), 1000))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reports": reports,
	})
}

func (h *Handler) NearbyReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if latStr == "" || lngStr == "" {
		h.writeJSON(w, http.StatusBadRequest, errResp("Latitude and longitude are required"))
		return
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		h.writeJSON(w, http.StatusBadRequest, errResp("Latitude and longitude must be valid numbers"))
		return
	}

	reports, err := h.Query.FindNear(r.Context(), domain.NearbyQuery{
		Lat:          lat,
		Lng:          lng,
		RadiusMeters: float64(parseInt(q.Get("radius"), 0)),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reports": reports,
	})
}

func (h *Handler) HeatmapData(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Heatmap.ComputeHeatmap(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) PublicStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Query.Stats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}

// spool copies the uploaded part into the local temp dir, multer style.
func (h *Handler) spool(src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(h.tempDir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(originalName)
	f, err := os.CreateTemp(h.tempDir, "report-*"+ext)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, src); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}

func (h *Handler) sizeLimitMessage() string {
	return fmt.Sprintf("File size too large. Maximum size is %dMB.", h.maxSizeBytes/(1024*1024))
}

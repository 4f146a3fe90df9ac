package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"log/slog"

	"civiclens/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ReportCleaner interface {
	CleanupLocal(ctx context.Context) (int64, error)
}

type Handler struct {
	logger  *slog.Logger
	Cleaner ReportCleaner
}

func NewHandler(logger *slog.Logger, cleaner ReportCleaner) *Handler {
	return &Handler{
		logger:  logger,
		Cleaner: cleaner,
	}
}

// CleanupReports handles DELETE /api/reports/cleanup: purges reports
// whose photo URL still points at the local /uploads/ path.
func (h *Handler) CleanupReports(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	deleted, err := h.Cleaner.CleanupLocal(r.Context())
	if err != nil {
		l.Error("cleanup failed", slog.Any("error", err))
		status := http.StatusInternalServerError
		if errors.Is(err, e.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		h.writeJSON(w, status, map[string]string{"error": "Failed to clean up reports"})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      fmt.Sprintf("Cleaned up %d reports with local URLs", deleted),
		"deletedCount": deleted,
	})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

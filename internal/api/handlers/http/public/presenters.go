package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"civiclens/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrPhotoRequired):
		h.writeJSON(w, http.StatusBadRequest, errResp("Photo is required"))
	case errors.Is(err, e.ErrPhotoTooLarge):
		h.writeJSON(w, http.StatusBadRequest, errResp(h.sizeLimitMessage()))
	case errors.Is(err, e.ErrNotAnImage):
		h.writeJSON(w, http.StatusBadRequest, errResp("Only image files are allowed"))
	case errors.Is(err, e.ErrOutsideRegion):
		h.writeJSON(w, http.StatusBadRequest, errResp("Reporting is only allowed within India."))
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		h.writeJSON(w, http.StatusBadRequest, errResp("Invalid report data"))
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errResp("Not found"))
	case errors.Is(err, e.ErrBlobUpload):
		h.writeJSON(w, http.StatusInternalServerError, errResp("Failed to upload image to cloud storage"))
	default:
		h.writeJSON(w, http.StatusInternalServerError, errResp("Something went wrong!"))
	}
}

func errResp(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
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

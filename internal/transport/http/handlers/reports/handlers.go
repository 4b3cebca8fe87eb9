package reportshandler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/auth"
	"staffhub/internal/domain/reports"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
	"staffhub/internal/transport/http/shared"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	elevated := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	r.Route("/reports", func(r chi.Router) {
		r.Use(elevated)
		r.Get("/attendance", h.handleAttendanceSummary)
		r.Get("/attendance/export", h.handleAttendanceExport)
	})
}

func (h *Handler) loadSummary(w http.ResponseWriter, r *http.Request, reqID string) (reports.Summary, bool) {
	start, err := shared.ParseOptionalDate(r.URL.Query().Get("startDate"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid startDate", reqID)
		return reports.Summary{}, false
	}
	end, err := shared.ParseOptionalDate(r.URL.Query().Get("endDate"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid endDate", reqID)
		return reports.Summary{}, false
	}

	summary, err := h.Service.AttendanceSummary(r.Context(), start, end, time.Now())
	if errors.Is(err, reports.ErrInvalidRange) {
		api.Fail(w, http.StatusBadRequest, "start date must not be after end date", reqID)
		return reports.Summary{}, false
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to build attendance report", reqID)
		return reports.Summary{}, false
	}
	return summary, true
}

func (h *Handler) handleAttendanceSummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	summary, ok := h.loadSummary(w, r, reqID)
	if !ok {
		return
	}
	api.Success(w, "attendance report", summary, reqID)
}

func (h *Handler) handleAttendanceExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	format, ok := reports.ParseFormat(r.URL.Query().Get("format"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "format must be csv, pdf or xlsx", reqID)
		return
	}

	summary, ok := h.loadSummary(w, r, reqID)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+format.Filename())
	if err := reports.Export(w, format, summary); err != nil {
		// The status line is already out; all we can do is log.
		slog.Error("report export failed", "format", format, "error", err, "requestId", reqID)
	}
}

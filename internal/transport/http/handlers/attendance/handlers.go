package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/attendance"
	"staffhub/internal/domain/audit"
	"staffhub/internal/domain/auth"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
	"staffhub/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
	Audit   *audit.Service
}

func NewHandler(service *attendance.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	elevated := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	r.Route("/attendance", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
		r.Get("/today", h.handleToday)
		r.Get("/user/{userID}", h.handleUserHistory)
		r.With(elevated).Get("/", h.handleListAll)
		r.With(elevated).Post("/absent", h.handleMarkAbsent)
	})
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	record, err := h.Service.CheckIn(r.Context(), principal.UserID, time.Now())
	if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
		api.Fail(w, http.StatusBadRequest, "already checked in today", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "check-in failed", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "attendance.check_in", "attendance", record.ID, reqID, middleware.ClientIP(r), record)
	api.Created(w, "checked in", record, reqID)
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	record, err := h.Service.CheckOut(r.Context(), principal.UserID, time.Now())
	switch {
	case errors.Is(err, attendance.ErrNoCheckInFound):
		api.Fail(w, http.StatusBadRequest, "no check-in record found for today", reqID)
		return
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		api.Fail(w, http.StatusBadRequest, "already checked out today", reqID)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "check-out failed", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "attendance.check_out", "attendance", record.ID, reqID, middleware.ClientIP(r), record)
	api.Success(w, "checked out", record, reqID)
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	record, ok, err := h.Service.Today(r.Context(), principal.UserID, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load today's attendance", reqID)
		return
	}
	if !ok {
		api.Success(w, "no attendance record for today", nil, reqID)
		return
	}
	api.Success(w, "today's attendance", record, reqID)
}

// handleUserHistory serves an employee their own history; elevated roles may
// read anyone's.
func (h *Handler) handleUserHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())
	userID, ok := shared.PathID(w, r, "userID")
	if !ok {
		return
	}

	if !principal.CanAccessRecord(userID) {
		api.Fail(w, http.StatusForbidden, "insufficient permissions", reqID)
		return
	}

	start, err := shared.ParseOptionalDate(r.URL.Query().Get("startDate"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid startDate", reqID)
		return
	}
	end, err := shared.ParseOptionalDate(r.URL.Query().Get("endDate"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid endDate", reqID)
		return
	}

	records, err := h.Service.HistoryForUser(r.Context(), userID, start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load attendance history", reqID)
		return
	}
	api.Success(w, "attendance history", records, reqID)
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	date, err := shared.ParseOptionalDate(r.URL.Query().Get("date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid date", reqID)
		return
	}

	records, err := h.Service.ListAll(r.Context(), date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list attendance", reqID)
		return
	}
	api.Success(w, "attendance records", records, reqID)
}

type markAbsentPayload struct {
	UserID string `json:"userId"`
	Date   string `json:"date"`
	Notes  string `json:"notes"`
}

func (h *Handler) handleMarkAbsent(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	var payload markAbsentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("userId", payload.UserID)
	v.Required("date", payload.Date)
	date, _ := v.Date("date", payload.Date)
	if v.Reject(w, reqID) {
		return
	}

	record, err := h.Service.MarkAbsent(r.Context(), payload.UserID, date, payload.Notes)
	if errors.Is(err, attendance.ErrDuplicate) {
		api.Fail(w, http.StatusBadRequest, "attendance already recorded for this date", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to mark absent", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "attendance.mark_absent", "attendance", record.ID, reqID, middleware.ClientIP(r), record)
	api.Created(w, "marked absent", record, reqID)
}

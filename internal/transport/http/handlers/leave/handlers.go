package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/audit"
	"staffhub/internal/domain/auth"
	"staffhub/internal/domain/leave"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
	"staffhub/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
	Audit   *audit.Service
}

func NewHandler(service *leave.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	elevated := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	r.Route("/leave", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", h.handleRequest)
		r.Get("/user/{userID}", h.handleForUser)
		r.With(elevated).Get("/", h.handleListAll)
		r.With(elevated).Put("/{leaveID}/approve", h.handleApprove)
		r.With(elevated).Put("/{leaveID}/reject", h.handleReject)
		r.Put("/{leaveID}/cancel", h.handleCancel)
	})
}

type requestPayload struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	LeaveType string `json:"leaveType"`
	Reason    string `json:"reason"`
}

func (h *Handler) handleRequest(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	var payload requestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("startDate", payload.StartDate)
	v.Required("endDate", payload.EndDate)
	v.Required("leaveType", payload.LeaveType)
	v.Required("reason", payload.Reason)
	start, _ := v.Date("startDate", payload.StartDate)
	end, _ := v.Date("endDate", payload.EndDate)
	if v.Reject(w, reqID) {
		return
	}

	request, err := h.Service.Request(r.Context(), principal.UserID, start, end, payload.LeaveType, payload.Reason, time.Now())
	switch {
	case errors.Is(err, leave.ErrInvalidDateRange):
		api.Fail(w, http.StatusBadRequest, "start date must not be after end date", reqID)
		return
	case errors.Is(err, leave.ErrPastDate):
		api.Fail(w, http.StatusBadRequest, "start date must not be in the past", reqID)
		return
	case errors.Is(err, leave.ErrOverlappingLeave):
		api.Fail(w, http.StatusBadRequest, "an existing leave request overlaps this period", reqID)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "failed to submit leave request", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "leave.request", "leave", request.ID, reqID, middleware.ClientIP(r), request)
	api.Created(w, "leave request submitted", request, reqID)
}

func (h *Handler) handleForUser(w http.ResponseWriter, r *http.Request) {
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

	status, ok := parseStatus(r.URL.Query().Get("status"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid status", reqID)
		return
	}

	requests, err := h.Service.ForUser(r.Context(), userID, status)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list leave requests", reqID)
		return
	}
	api.Success(w, "leave requests", requests, reqID)
}

func (h *Handler) handleListAll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	status, ok := parseStatus(r.URL.Query().Get("status"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid status", reqID)
		return
	}

	requests, err := h.Service.ListAll(r.Context(), status)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list leave requests", reqID)
		return
	}
	api.Success(w, "leave requests", requests, reqID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())
	leaveID, ok := shared.PathID(w, r, "leaveID")
	if !ok {
		return
	}

	request, err := h.Service.Approve(r.Context(), leaveID, principal.UserID, time.Now())
	if !h.writeTransitionError(w, err, reqID) {
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "leave.approve", "leave", request.ID, reqID, middleware.ClientIP(r), request)
	api.Success(w, "leave request approved", request, reqID)
}

type rejectPayload struct {
	RejectionReason string `json:"rejectionReason"`
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())
	leaveID, ok := shared.PathID(w, r, "leaveID")
	if !ok {
		return
	}

	var payload rejectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	request, err := h.Service.Reject(r.Context(), leaveID, principal.UserID, payload.RejectionReason, time.Now())
	if !h.writeTransitionError(w, err, reqID) {
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "leave.reject", "leave", request.ID, reqID, middleware.ClientIP(r), request)
	api.Success(w, "leave request rejected", request, reqID)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())
	leaveID, ok := shared.PathID(w, r, "leaveID")
	if !ok {
		return
	}

	request, err := h.Service.Cancel(r.Context(), leaveID, principal)
	switch {
	case errors.Is(err, leave.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "not allowed to cancel this leave request", reqID)
		return
	}
	if !h.writeTransitionError(w, err, reqID) {
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "leave.cancel", "leave", request.ID, reqID, middleware.ClientIP(r), request)
	api.Success(w, "leave request cancelled", request, reqID)
}

// writeTransitionError maps shared approve/reject/cancel failures; it
// reports true when the caller may proceed with the success path.
func (h *Handler) writeTransitionError(w http.ResponseWriter, err error, reqID string) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "leave request not found", reqID)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		api.Fail(w, http.StatusBadRequest, "leave request has already been processed", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "leave request update failed", reqID)
	}
	return false
}

func parseStatus(raw string) (*leave.Status, bool) {
	if raw == "" {
		return nil, true
	}
	status := leave.Status(raw)
	if !status.Valid() {
		return nil, false
	}
	return &status, true
}

package staffhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/audit"
	"staffhub/internal/domain/auth"
	"staffhub/internal/domain/staff"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
	"staffhub/internal/transport/http/shared"
)

type Handler struct {
	Service *staff.Service
	Audit   *audit.Service
}

func NewHandler(service *staff.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	elevated := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	r.Route("/staff", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.With(elevated).Get("/", h.handleList)
		r.With(elevated).Post("/", h.handleCreate)
		r.Get("/{userID}", h.handleGet)
		r.Put("/{userID}", h.handleUpdate)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Delete("/{userID}", h.handleDelete)
	})
}

type profilePayload struct {
	UserID           string                  `json:"userId"`
	Department       string                  `json:"department"`
	Position         string                  `json:"position"`
	HireDate         string                  `json:"hireDate"`
	Address          string                  `json:"address"`
	PhoneNumber      string                  `json:"phoneNumber"`
	EmergencyContact *staff.EmergencyContact `json:"emergencyContact"`
	DateOfBirth      string                  `json:"dateOfBirth"`
	Skills           []string                `json:"skills"`
	Salary           *float64                `json:"salary"`
}

type patchPayload struct {
	Department       *string                 `json:"department"`
	Position         *string                 `json:"position"`
	HireDate         *string                 `json:"hireDate"`
	Address          *string                 `json:"address"`
	PhoneNumber      *string                 `json:"phoneNumber"`
	EmergencyContact *staff.EmergencyContact `json:"emergencyContact"`
	DateOfBirth      *string                 `json:"dateOfBirth"`
	Skills           *[]string               `json:"skills"`
	Salary           *float64                `json:"salary"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	profiles, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list staff profiles", reqID)
		return
	}
	api.Success(w, "staff profiles", profiles, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("userId", payload.UserID)
	v.Required("department", payload.Department)
	v.Required("position", payload.Position)
	hireDate, dateOfBirth := parseProfileDates(v, payload.HireDate, payload.DateOfBirth)
	if v.Reject(w, reqID) {
		return
	}

	profile, err := h.Service.Create(r.Context(), staff.Profile{
		UserID:           payload.UserID,
		Department:       payload.Department,
		Position:         payload.Position,
		HireDate:         hireDate,
		Address:          payload.Address,
		PhoneNumber:      payload.PhoneNumber,
		EmergencyContact: payload.EmergencyContact,
		DateOfBirth:      dateOfBirth,
		Skills:           payload.Skills,
		Salary:           payload.Salary,
	})
	switch {
	case errors.Is(err, staff.ErrUserNotFound):
		api.Fail(w, http.StatusNotFound, "user not found", reqID)
		return
	case errors.Is(err, staff.ErrProfileExists):
		api.Fail(w, http.StatusBadRequest, "profile already exists for this user", reqID)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "failed to create staff profile", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "staff.create", "staff_profile", profile.ID, reqID, middleware.ClientIP(r), profile)
	api.Created(w, "staff profile created", profile, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
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

	profile, err := h.Service.ByUserID(r.Context(), userID)
	if errors.Is(err, staff.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "staff profile not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load staff profile", reqID)
		return
	}
	api.Success(w, "staff profile", profile, reqID)
}

// handleUpdate lets an owner change contact fields only; anything else in
// the payload is dropped rather than rejected. Elevated roles patch any
// field.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var payload patchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	patch, ok := payload.toPatch(w, reqID)
	if !ok {
		return
	}

	selfOnly := !principal.Role.Elevated()
	profile, err := h.Service.Update(r.Context(), userID, patch, selfOnly)
	switch {
	case errors.Is(err, staff.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "staff profile not found", reqID)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "failed to update staff profile", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "staff.update", "staff_profile", profile.ID, reqID, middleware.ClientIP(r), profile)
	api.Success(w, "staff profile updated", profile, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())
	userID, ok := shared.PathID(w, r, "userID")
	if !ok {
		return
	}

	err := h.Service.Delete(r.Context(), userID)
	if errors.Is(err, staff.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "staff profile not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to delete staff profile", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "staff.delete", "staff_profile", userID, reqID, middleware.ClientIP(r), nil)
	api.Success(w, "staff profile deleted", nil, reqID)
}

func (p patchPayload) toPatch(w http.ResponseWriter, reqID string) (staff.Patch, bool) {
	patch := staff.Patch{
		Department:       p.Department,
		Position:         p.Position,
		Address:          p.Address,
		PhoneNumber:      p.PhoneNumber,
		EmergencyContact: p.EmergencyContact,
		Skills:           p.Skills,
		Salary:           p.Salary,
	}
	if p.HireDate != nil {
		parsed, err := shared.ParseDate(*p.HireDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid hireDate", reqID)
			return staff.Patch{}, false
		}
		patch.HireDate = &parsed
	}
	if p.DateOfBirth != nil {
		parsed, err := shared.ParseDate(*p.DateOfBirth)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid dateOfBirth", reqID)
			return staff.Patch{}, false
		}
		patch.DateOfBirth = &parsed
	}
	return patch, true
}

// parseProfileDates records issues on the validator; callers rely on
// Reject to surface them.
func parseProfileDates(v *shared.Validator, hireDate, dateOfBirth string) (*time.Time, *time.Time) {
	var hire, birth *time.Time
	if hireDate != "" {
		if parsed, ok := v.Date("hireDate", hireDate); ok {
			hire = &parsed
		}
	}
	if dateOfBirth != "" {
		if parsed, ok := v.Date("dateOfBirth", dateOfBirth); ok {
			birth = &parsed
		}
	}
	return hire, birth
}

package teamhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/audit"
	"staffhub/internal/domain/auth"
	"staffhub/internal/domain/staff"
	"staffhub/internal/domain/team"
	"staffhub/internal/domain/user"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
	"staffhub/internal/transport/http/shared"
)

type Handler struct {
	Service *team.Service
	Audit   *audit.Service
}

func NewHandler(service *team.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	elevated := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	r.Route("/team", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.With(elevated).Post("/", h.handleCreate)
		r.Get("/stats", h.handleStats)
		r.Get("/department/{department}", h.handleByDepartment)
		r.Get("/{memberID}", h.handleGet)
		r.With(elevated).Put("/{memberID}", h.handleUpdate)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Delete("/{memberID}", h.handleDeactivate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	q := r.URL.Query()

	var filters team.Filters
	if raw := q.Get("role"); raw != "" {
		role := auth.Role(raw)
		if !role.Valid() {
			api.Fail(w, http.StatusBadRequest, "invalid role", reqID)
			return
		}
		filters.Role = &role
	}
	filters.Department = q.Get("department")
	filters.Search = q.Get("search")

	page := shared.ParsePage(r, 10, 100)
	members, total, err := h.Service.List(r.Context(), filters, page.Limit, page.Offset())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list team members", reqID)
		return
	}
	api.List(w, "team members", members, page.Meta(total), reqID)
}

type createPayload struct {
	Email        string          `json:"email"`
	Password     string          `json:"password"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Role         string          `json:"role"`
	StaffProfile *profilePayload `json:"staffProfile"`
}

type profilePayload struct {
	Department       string                  `json:"department"`
	Position         string                  `json:"position"`
	HireDate         string                  `json:"hireDate"`
	Address          string                  `json:"address"`
	PhoneNumber      string                  `json:"phoneNumber"`
	EmergencyContact *staff.EmergencyContact `json:"emergencyContact"`
	Skills           []string                `json:"skills"`
	Salary           *float64                `json:"salary"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("email", payload.Email)
	v.Email("email", payload.Email)
	v.Required("password", payload.Password)
	v.MinLength("password", payload.Password, 6)
	v.Required("firstName", payload.FirstName)
	v.Required("lastName", payload.LastName)

	input := team.CreateInput{User: user.CreateInput{
		Email:     payload.Email,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Role:      auth.ParseRole(payload.Role),
	}}
	if payload.StaffProfile != nil {
		profile := staff.Profile{
			Department:       payload.StaffProfile.Department,
			Position:         payload.StaffProfile.Position,
			Address:          payload.StaffProfile.Address,
			PhoneNumber:      payload.StaffProfile.PhoneNumber,
			EmergencyContact: payload.StaffProfile.EmergencyContact,
			Skills:           payload.StaffProfile.Skills,
			Salary:           payload.StaffProfile.Salary,
		}
		if payload.StaffProfile.HireDate != "" {
			if parsed, ok := v.Date("staffProfile.hireDate", payload.StaffProfile.HireDate); ok {
				profile.HireDate = &parsed
			}
		}
		input.Profile = &profile
	}
	if v.Reject(w, reqID) {
		return
	}

	member, err := h.Service.Create(r.Context(), input)
	if errors.Is(err, user.ErrEmailTaken) {
		api.Fail(w, http.StatusBadRequest, "email already registered", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create team member", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "team.create", "user", member.ID, reqID, middleware.ClientIP(r), member)
	api.Created(w, "team member created", member, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	memberID, ok := shared.PathID(w, r, "memberID")
	if !ok {
		return
	}

	member, err := h.Service.ByID(r.Context(), memberID)
	if errors.Is(err, team.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "team member not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load team member", reqID)
		return
	}
	api.Success(w, "team member", member, reqID)
}

type updatePayload struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Role         *string `json:"role"`
	IsActive     *bool   `json:"isActive"`
	StaffProfile *struct {
		Department       *string                 `json:"department"`
		Position         *string                 `json:"position"`
		HireDate         *string                 `json:"hireDate"`
		Address          *string                 `json:"address"`
		PhoneNumber      *string                 `json:"phoneNumber"`
		EmergencyContact *staff.EmergencyContact `json:"emergencyContact"`
		Skills           *[]string               `json:"skills"`
		Salary           *float64                `json:"salary"`
	} `json:"staffProfile"`
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())
	memberID, ok := shared.PathID(w, r, "memberID")
	if !ok {
		return
	}

	var payload updatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	userPatch := team.UserPatch{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		IsActive:  payload.IsActive,
	}
	if payload.Role != nil {
		role := auth.Role(*payload.Role)
		if !role.Valid() {
			api.Fail(w, http.StatusBadRequest, "invalid role", reqID)
			return
		}
		userPatch.Role = &role
	}

	var profilePatch staff.Patch
	if payload.StaffProfile != nil {
		sp := payload.StaffProfile
		profilePatch = staff.Patch{
			Department:       sp.Department,
			Position:         sp.Position,
			Address:          sp.Address,
			PhoneNumber:      sp.PhoneNumber,
			EmergencyContact: sp.EmergencyContact,
			Skills:           sp.Skills,
			Salary:           sp.Salary,
		}
		if sp.HireDate != nil {
			parsed, err := shared.ParseDate(*sp.HireDate)
			if err != nil {
				api.Fail(w, http.StatusBadRequest, "invalid hireDate", reqID)
				return
			}
			profilePatch.HireDate = &parsed
		}
	}

	member, err := h.Service.Update(r.Context(), memberID, userPatch, profilePatch)
	if errors.Is(err, team.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "team member not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update team member", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "team.update", "user", member.ID, reqID, middleware.ClientIP(r), member)
	api.Success(w, "team member updated", member, reqID)
}

// handleDeactivate soft deletes: the account is flagged inactive and drops
// out of listings, but attendance/leave/task history keeps its rows.
func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())
	memberID, ok := shared.PathID(w, r, "memberID")
	if !ok {
		return
	}

	err := h.Service.Deactivate(r.Context(), memberID)
	if errors.Is(err, team.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "team member not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to deactivate team member", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "team.deactivate", "user", memberID, reqID, middleware.ClientIP(r), nil)
	api.Success(w, "team member deactivated", nil, reqID)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to compute team stats", reqID)
		return
	}
	api.Success(w, "team stats", stats, reqID)
}

func (h *Handler) handleByDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	members, err := h.Service.ByDepartment(r.Context(), chi.URLParam(r, "department"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list department members", reqID)
		return
	}
	api.Success(w, "department members", members, reqID)
}

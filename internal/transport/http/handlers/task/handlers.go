package taskhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/audit"
	"staffhub/internal/domain/auth"
	"staffhub/internal/domain/task"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
	"staffhub/internal/transport/http/shared"
)

type Handler struct {
	Service *task.Service
	Audit   *audit.Service
}

func NewHandler(service *task.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	elevated := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	r.Route("/tasks", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.With(elevated).Post("/", h.handleCreate)
		r.Get("/stats", h.handleStats)
		r.Get("/overdue", h.handleOverdue)
		r.Get("/user/{userID}", h.handleByUser)
		r.Get("/project/{projectID}", h.handleByProject)
		r.Get("/{taskID}", h.handleGet)
		r.Put("/{taskID}", h.handleUpdate)
		r.With(elevated).Delete("/{taskID}", h.handleDelete)
	})
}

// buildFilters reads only the recognized query parameters; anything else
// is ignored. For an employee the result is scoped to their own tasks,
// and explicitly asking for another user's tasks is a 403.
func buildFilters(r *http.Request, principal auth.Principal) (task.Filters, string, bool) {
	q := r.URL.Query()
	var filters task.Filters

	if raw := q.Get("status"); raw != "" {
		status := task.Status(raw)
		if !status.Valid() {
			return filters, "invalid status", false
		}
		filters.Status = &status
	}
	if raw := q.Get("priority"); raw != "" {
		priority := task.Priority(raw)
		if !priority.Valid() {
			return filters, "invalid priority", false
		}
		filters.Priority = &priority
	}
	if raw := q.Get("assignedToId"); raw != "" {
		filters.AssignedToID = &raw
	}
	if raw := q.Get("createdById"); raw != "" {
		filters.CreatedByID = &raw
	}
	if raw := q.Get("projectId"); raw != "" {
		filters.ProjectID = &raw
	}
	if raw := q.Get("dueDateBefore"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			return filters, "invalid dueDateBefore", false
		}
		filters.DueDateBefore = &parsed
	}
	if raw := q.Get("dueDateAfter"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			return filters, "invalid dueDateAfter", false
		}
		filters.DueDateAfter = &parsed
	}

	if principal.Role == auth.RoleEmployee {
		self := principal.UserID
		if filters.AssignedToID != nil && *filters.AssignedToID != self {
			return filters, "", false
		}
		if filters.CreatedByID != nil && *filters.CreatedByID != self {
			return filters, "", false
		}
		if filters.AssignedToID == nil && filters.CreatedByID == nil {
			filters.OwnedBy = &self
		}
	}
	return filters, "", true
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	filters, problem, ok := buildFilters(r, principal)
	if !ok {
		if problem != "" {
			api.Fail(w, http.StatusBadRequest, problem, reqID)
		} else {
			api.Fail(w, http.StatusForbidden, "can only view your own tasks", reqID)
		}
		return
	}

	page := shared.ParsePage(r, 10, 100)
	result, err := h.Service.List(r.Context(), filters, page.Number, page.Limit,
		r.URL.Query().Get("sortBy"), r.URL.Query().Get("sortOrder"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list tasks", reqID)
		return
	}
	api.List(w, "tasks", result.Tasks, page.Meta(result.Total), reqID)
}

type createPayload struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	DueDate      *string `json:"dueDate"`
	ProjectID    *string `json:"projectId"`
	AssignedToID *string `json:"assignedToId"`
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
	v.Required("title", payload.Title)
	if payload.Status != "" && !task.Status(payload.Status).Valid() {
		v.Add("status", "must be one of TODO, IN_PROGRESS, REVIEW, DONE")
	}
	if payload.Priority != "" && !task.Priority(payload.Priority).Valid() {
		v.Add("priority", "must be one of LOW, MEDIUM, HIGH, URGENT")
	}
	var dueDate *time.Time
	if payload.DueDate != nil {
		if parsed, ok := v.Date("dueDate", *payload.DueDate); ok {
			dueDate = &parsed
		}
	}
	if v.Reject(w, reqID) {
		return
	}

	created, err := h.Service.Create(r.Context(), task.Task{
		Title:        payload.Title,
		Description:  payload.Description,
		Status:       task.Status(payload.Status),
		Priority:     task.Priority(payload.Priority),
		DueDate:      dueDate,
		ProjectID:    payload.ProjectID,
		AssignedToID: payload.AssignedToID,
		CreatedByID:  principal.UserID,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to create task", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "task.create", "task", created.ID, reqID, middleware.ClientIP(r), created)
	api.Created(w, "task created", created, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	taskID, ok := shared.PathID(w, r, "taskID")
	if !ok {
		return
	}

	t, err := h.Service.ByID(r.Context(), taskID)
	if errors.Is(err, task.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "task not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load task", reqID)
		return
	}
	if principal.Role == auth.RoleEmployee && !ownsTask(t, principal.UserID) {
		api.Fail(w, http.StatusForbidden, "can only view your own tasks", reqID)
		return
	}
	api.Success(w, "task", t, reqID)
}

type updatePayload struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
	Priority     *string `json:"priority"`
	DueDate      *string `json:"dueDate"`
	ProjectID    *string `json:"projectId"`
	AssignedToID *string `json:"assignedToId"`
}

// handleUpdate enforces the employee patch policy: the task must be
// assigned to them and any field outside status/description fails the
// whole request. Nothing is silently dropped here; the staff-profile
// update is the place with drop semantics.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())
	taskID, ok := shared.PathID(w, r, "taskID")
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	current, err := h.Service.ByID(r.Context(), taskID)
	if errors.Is(err, task.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "task not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load task", reqID)
		return
	}

	if principal.Role == auth.RoleEmployee {
		if current.AssignedToID == nil || *current.AssignedToID != principal.UserID {
			api.Fail(w, http.StatusForbidden, "can only update your assigned tasks", reqID)
			return
		}
		keys := make([]string, 0, len(raw))
		for key := range raw {
			keys = append(keys, key)
		}
		if disallowed := task.DisallowedEmployeeFields(keys); len(disallowed) > 0 {
			api.Fail(w, http.StatusForbidden,
				"employees may only update: status, description (disallowed: "+strings.Join(disallowed, ", ")+")", reqID)
			return
		}
	}

	payloadBytes, _ := json.Marshal(raw)
	var payload updatePayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	patch, problem := payload.toPatch()
	if problem != "" {
		api.Fail(w, http.StatusBadRequest, problem, reqID)
		return
	}

	updated, err := h.Service.Update(r.Context(), taskID, patch, time.Now())
	if errors.Is(err, task.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "task not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update task", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "task.update", "task", updated.ID, reqID, middleware.ClientIP(r), updated)
	api.Success(w, "task updated", updated, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())
	taskID, ok := shared.PathID(w, r, "taskID")
	if !ok {
		return
	}

	err := h.Service.Delete(r.Context(), taskID)
	if errors.Is(err, task.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "task not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to delete task", reqID)
		return
	}

	h.Audit.Record(r.Context(), principal.UserID, "task.delete", "task", taskID, reqID, middleware.ClientIP(r), nil)
	api.Success(w, "task deleted", nil, reqID)
}

func (h *Handler) handleByUser(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())
	userID, ok := shared.PathID(w, r, "userID")
	if !ok {
		return
	}

	if !principal.CanAccessRecord(userID) {
		api.Fail(w, http.StatusForbidden, "can only view your own tasks", reqID)
		return
	}

	tasks, err := h.Service.ByUser(r.Context(), userID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list tasks", reqID)
		return
	}
	api.Success(w, "tasks", tasks, reqID)
}

func (h *Handler) handleByProject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	projectID, ok := shared.PathID(w, r, "projectID")
	if !ok {
		return
	}

	tasks, err := h.Service.ByProject(r.Context(), projectID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list tasks", reqID)
		return
	}
	if principal.Role == auth.RoleEmployee {
		tasks = ownedOnly(tasks, principal.UserID)
	}
	api.Success(w, "tasks", tasks, reqID)
}

func (h *Handler) handleOverdue(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	tasks, err := h.Service.Overdue(r.Context(), time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list overdue tasks", reqID)
		return
	}
	if principal.Role == auth.RoleEmployee {
		tasks = ownedOnly(tasks, principal.UserID)
	}
	api.Success(w, "overdue tasks", tasks, reqID)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	// An employee's stats are always their own; elevated roles may scope
	// to any user via ?userId or see the whole board.
	var userID *string
	if principal.Role == auth.RoleEmployee {
		userID = &principal.UserID
	} else if raw := r.URL.Query().Get("userId"); raw != "" {
		userID = &raw
	}

	stats, err := h.Service.Stats(r.Context(), userID, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to compute task stats", reqID)
		return
	}
	api.Success(w, "task stats", stats, reqID)
}

func ownsTask(t task.Task, userID string) bool {
	if t.CreatedByID == userID {
		return true
	}
	return t.AssignedToID != nil && *t.AssignedToID == userID
}

func ownedOnly(tasks []task.Task, userID string) []task.Task {
	owned := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if ownsTask(t, userID) {
			owned = append(owned, t)
		}
	}
	return owned
}

func (p updatePayload) toPatch() (task.Patch, string) {
	patch := task.Patch{
		Title:        p.Title,
		Description:  p.Description,
		ProjectID:    p.ProjectID,
		AssignedToID: p.AssignedToID,
	}
	if p.Status != nil {
		status := task.Status(*p.Status)
		if !status.Valid() {
			return task.Patch{}, "invalid status"
		}
		patch.Status = &status
	}
	if p.Priority != nil {
		priority := task.Priority(*p.Priority)
		if !priority.Valid() {
			return task.Patch{}, "invalid priority"
		}
		patch.Priority = &priority
	}
	if p.DueDate != nil {
		parsed, err := shared.ParseDate(*p.DueDate)
		if err != nil {
			return task.Patch{}, "invalid dueDate"
		}
		patch.DueDate = &parsed
	}
	return patch, ""
}

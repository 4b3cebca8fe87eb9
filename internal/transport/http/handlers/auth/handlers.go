package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"staffhub/internal/domain/audit"
	"staffhub/internal/domain/auth"
	"staffhub/internal/domain/user"
	"staffhub/internal/transport/http/api"
	"staffhub/internal/transport/http/middleware"
	"staffhub/internal/transport/http/shared"
)

type Handler struct {
	Users    *user.Service
	Audit    *audit.Service
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(users *user.Service, auditSvc *audit.Service, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{Users: users, Audit: auditSvc, Secret: secret, TokenTTL: tokenTTL}
}

// RegisterRoutes mounts the public endpoints; the rate limiter wraps login
// and register at the router level.
func (h *Handler) RegisterRoutes(r chi.Router, loginLimiter func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.With(loginLimiter).Post("/register", h.handleRegister)
		r.With(loginLimiter).Post("/login", h.handleLogin)
		r.With(middleware.RequireAuth).Get("/profile", h.handleProfile)
	})
}

type registerPayload struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload registerPayload
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
	if v.Reject(w, reqID) {
		return
	}

	created, err := h.Users.Register(r.Context(), user.CreateInput{
		Email:     payload.Email,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Role:      auth.ParseRole(payload.Role),
	})
	if errors.Is(err, user.ErrEmailTaken) {
		api.Fail(w, http.StatusBadRequest, "email already registered", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "registration failed", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Principal{UserID: created.ID, Role: created.Role}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "registration failed", reqID)
		return
	}

	h.Audit.Record(r.Context(), created.ID, "auth.register", "user", created.ID, reqID, middleware.ClientIP(r), nil)
	api.Created(w, "registered successfully", map[string]any{"token": token, "user": created}, reqID)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("email", payload.Email)
	v.Required("password", payload.Password)
	if v.Reject(w, reqID) {
		return
	}

	u, err := h.Users.Authenticate(r.Context(), payload.Email, payload.Password)
	if errors.Is(err, user.ErrInvalidCredentials) {
		api.Fail(w, http.StatusUnauthorized, "invalid credentials", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login failed", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Principal{UserID: u.ID, Role: u.Role}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login failed", reqID)
		return
	}

	h.Audit.Record(r.Context(), u.ID, "auth.login", "user", u.ID, reqID, middleware.ClientIP(r), nil)
	api.Success(w, "login successful", map[string]any{"token": token, "user": u}, reqID)
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	principal, _ := middleware.GetUser(r.Context())

	u, err := h.Users.ByID(r.Context(), principal.UserID)
	if errors.Is(err, user.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "user not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to load profile", reqID)
		return
	}
	api.Success(w, "profile", map[string]any{"user": u}, reqID)
}

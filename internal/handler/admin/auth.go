package admin

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/middleware"
)

// AuthHandler serves login, logout and the current-user endpoint.
type AuthHandler struct {
	users  domain.UserService
	logger *slog.Logger
}

func NewAuthHandler(users domain.UserService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{users: users, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  *domain.AdminUser `json:"user"`
}

// Login serves POST /admin/login: credentials in, bearer token out.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	if err := handler.Validate(req); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	token, err := h.users.IssueToken(r.Context(), user.ID)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	h.logger.Info("admin login", "user_id", user.ID, "email", user.Email)
	handler.Success(w, http.StatusOK, "Login successful.", loginResponse{Token: token, User: user})
}

// Logout serves POST /admin/logout, revoking the presented token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token, _ := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)

	if token != "" {
		if err := h.users.RevokeToken(r.Context(), token); err != nil {
			handler.Error(w, r, h.logger, err)
			return
		}
	}

	handler.Success(w, http.StatusOK, "Logged out.", nil)
}

// Me serves GET /admin/user: the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handler.Error(w, r, h.logger, domain.Unauthorized("auth.me", "Unauthenticated."))
		return
	}
	handler.Success(w, http.StatusOK, "", user)
}

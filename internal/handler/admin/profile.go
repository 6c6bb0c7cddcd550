package admin

import (
	"log/slog"
	"net/http"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/middleware"
)

// ProfileHandler serves the authenticated user's own profile and password.
type ProfileHandler struct {
	users  domain.UserService
	logger *slog.Logger
}

func NewProfileHandler(users domain.UserService, logger *slog.Logger) *ProfileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileHandler{users: users, logger: logger}
}

// Get serves GET /admin/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handler.Error(w, r, h.logger, domain.Unauthorized("profile.get", "Unauthenticated."))
		return
	}
	handler.Success(w, http.StatusOK, "", user)
}

// Update serves POST /admin/profile (multipart: name, email, optional
// profile image).
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handler.Error(w, r, h.logger, domain.Unauthorized("profile.update", "Unauthenticated."))
		return
	}

	if err := parseMultipart(r); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	image, err := formImage(r, "profile_image")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	updated, err := h.users.UpdateProfile(r.Context(), *user, domain.UpdateProfileParams{
		Name:  formValue(r, "name"),
		Email: formValue(r, "email"),
		Image: image,
	})
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusOK, "Profile updated successfully.", updated)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ChangePassword serves POST /admin/change-password.
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		handler.Error(w, r, h.logger, domain.Unauthorized("profile.change_password", "Unauthenticated."))
		return
	}

	var req changePasswordRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	if err := handler.Validate(req); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	if err := h.users.ChangePassword(r.Context(), *user, req.CurrentPassword, req.NewPassword); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusOK, "Password changed successfully.", nil)
}

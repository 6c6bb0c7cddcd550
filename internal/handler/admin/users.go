package admin

import (
	"log/slog"
	"net/http"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/middleware"
)

// UserHandler serves admin account management. Create and delete are
// superadmin-only, enforced again in the service layer.
type UserHandler struct {
	users  domain.UserService
	logger *slog.Logger
}

func NewUserHandler(users domain.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{users: users, logger: logger}
}

// List serves GET /admin/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", users)
}

// Get serves GET /admin/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	handler.Success(w, http.StatusOK, "", user)
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin superadmin"`
}

// Create serves POST /admin/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	if actor == nil {
		handler.Error(w, r, h.logger, domain.Unauthorized("user.create", "Unauthenticated."))
		return
	}

	var req createUserRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	if err := handler.Validate(req); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	user, err := h.users.Create(r.Context(), *actor, domain.CreateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusCreated, "Admin user created successfully.", user)
}

type updateUserRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin superadmin"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// Update serves PUT /admin/users/{id}. Role changes from non-superadmins
// are ignored, not rejected.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	if actor == nil {
		handler.Error(w, r, h.logger, domain.Unauthorized("user.update", "Unauthenticated."))
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	var req updateUserRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}
	if err := handler.Validate(req); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	params := domain.UpdateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		params.Role = &role
	}

	user, err := h.users.Update(r.Context(), *actor, id, params)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusOK, "Admin user updated successfully.", user)
}

// Delete serves DELETE /admin/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	if actor == nil {
		handler.Error(w, r, h.logger, domain.Unauthorized("user.delete", "Unauthenticated."))
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	if err := h.users.Delete(r.Context(), *actor, id); err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.Success(w, http.StatusOK, "Admin user deleted successfully.", nil)
}

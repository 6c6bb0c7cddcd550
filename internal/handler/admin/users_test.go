package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/middleware"
)

func withActor(req *http.Request, actor *domain.AdminUser) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, actor)
	return req.WithContext(ctx)
}

func TestUserHandler_Create(t *testing.T) {
	superadmin := &domain.AdminUser{ID: 1, Role: domain.RoleSuperadmin}

	users := &domain.MockUserService{
		CreateFn: func(ctx context.Context, actor domain.AdminUser, params domain.CreateUserParams) (*domain.AdminUser, error) {
			if actor.Role != domain.RoleSuperadmin {
				return nil, domain.Forbidden("user.create", "only superadmins can create admin users")
			}
			return &domain.AdminUser{ID: 2, Name: params.Name, Email: params.Email, Role: params.Role}, nil
		},
	}

	h := NewUserHandler(users, nil)

	t.Run("superadmin creates admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/users",
			strings.NewReader(`{"name":"New Admin","email":"new@example.com","password":"password123","role":"admin"}`))
		w := httptest.NewRecorder()
		h.Create(w, withActor(req, superadmin))

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "new@example.com")
		// The password hash never appears in responses.
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("plain admin is forbidden", func(t *testing.T) {
		admin := &domain.AdminUser{ID: 3, Role: domain.RoleAdmin}
		req := httptest.NewRequest(http.MethodPost, "/admin/users",
			strings.NewReader(`{"name":"X","email":"x@example.com","password":"password123","role":"admin"}`))
		w := httptest.NewRecorder()
		h.Create(w, withActor(req, admin))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/users",
			strings.NewReader(`{"name":"X","email":"x@example.com","password":"password123","role":"root"}`))
		w := httptest.NewRecorder()
		h.Create(w, withActor(req, superadmin))

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Errors, "role")
	})
}

func TestUserHandler_Delete(t *testing.T) {
	superadmin := &domain.AdminUser{ID: 1, Role: domain.RoleSuperadmin}

	users := &domain.MockUserService{
		DeleteFn: func(ctx context.Context, actor domain.AdminUser, id int64) error {
			if actor.ID == id {
				return domain.Forbidden("user.delete", "you cannot delete your own account")
			}
			return nil
		},
	}

	h := NewUserHandler(users, nil)

	t.Run("deletes another account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/users/2", nil)
		req.SetPathValue("id", "2")
		w := httptest.NewRecorder()
		h.Delete(w, withActor(req, superadmin))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("self deletion rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/users/1", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		h.Delete(w, withActor(req, superadmin))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/users/abc", nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		h.Delete(w, withActor(req, superadmin))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_UpdateRolePointer(t *testing.T) {
	superadmin := &domain.AdminUser{ID: 1, Role: domain.RoleSuperadmin}

	var gotParams domain.UpdateUserParams
	users := &domain.MockUserService{
		UpdateFn: func(ctx context.Context, actor domain.AdminUser, id int64, params domain.UpdateUserParams) (*domain.AdminUser, error) {
			gotParams = params
			return &domain.AdminUser{ID: id, Name: params.Name, Email: params.Email}, nil
		},
	}

	h := NewUserHandler(users, nil)

	t.Run("role omitted stays nil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/admin/users/2",
			strings.NewReader(`{"name":"A","email":"a@example.com"}`))
		req.SetPathValue("id", "2")
		w := httptest.NewRecorder()
		h.Update(w, withActor(req, superadmin))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, gotParams.Role)
	})

	t.Run("role present is forwarded", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/admin/users/2",
			strings.NewReader(`{"name":"A","email":"a@example.com","role":"superadmin"}`))
		req.SetPathValue("id", "2")
		w := httptest.NewRecorder()
		h.Update(w, withActor(req, superadmin))

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotParams.Role)
		assert.Equal(t, domain.RoleSuperadmin, *gotParams.Role)
	})
}

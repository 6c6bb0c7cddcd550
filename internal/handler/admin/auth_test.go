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
)

func TestAuthHandler_Login(t *testing.T) {
	users := &domain.MockUserService{
		AuthenticateFn: func(ctx context.Context, email, password string) (*domain.AdminUser, error) {
			if email == "admin@example.com" && password == "secret-password" {
				return &domain.AdminUser{ID: 1, Email: email, Role: domain.RoleSuperadmin}, nil
			}
			return nil, domain.Unauthorized("user.authenticate", "invalid email or password")
		},
		IssueTokenFn: func(ctx context.Context, userID int64) (string, error) {
			return "issued-token", nil
		},
	}

	h := NewAuthHandler(users, nil)

	t.Run("valid credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/login",
			strings.NewReader(`{"email":"admin@example.com","password":"secret-password"}`))
		w := httptest.NewRecorder()
		h.Login(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Token string            `json:"token"`
				User  *domain.AdminUser `json:"user"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "issued-token", body.Data.Token)
		assert.Equal(t, int64(1), body.Data.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/login",
			strings.NewReader(`{"email":"admin@example.com","password":"wrong-password"}`))
		w := httptest.NewRecorder()
		h.Login(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "token")
	})

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		h.Login(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	revoked := ""
	users := &domain.MockUserService{
		RevokeTokenFn: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}

	h := NewAuthHandler(users, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	h.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "some-token", revoked)
}

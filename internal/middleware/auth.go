package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
)

type contextKey string

// UserContextKey is the context key for storing the authenticated user
const UserContextKey contextKey = "user"

// WithUser resolves the bearer token from the Authorization header and adds
// the user to the request context. It never rejects: routes that require a
// user wrap RequireAuth as well.
func WithUser(users domain.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.UserByToken(r.Context(), token)
			if err != nil {
				// Invalid token, continue without user
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the request carries a valid bearer token, returning
// 401 otherwise.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			writeAuthError(w, http.StatusUnauthorized, "Unauthenticated.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSuperadmin ensures the authenticated user is a superadmin,
// returning 403 otherwise.
func RequireSuperadmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil {
			writeAuthError(w, http.StatusUnauthorized, "Unauthenticated.")
			return
		}
		if user.Role != domain.RoleSuperadmin {
			writeAuthError(w, http.StatusForbidden, "This action requires superadmin privileges.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext retrieves the authenticated user from the context.
func UserFromContext(ctx context.Context) *domain.AdminUser {
	if user, ok := ctx.Value(UserContextKey).(*domain.AdminUser); ok {
		return user
	}
	return nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":false,"message":"` + message + `"}`))
}

package domain

import (
	"context"
	"time"
)

// Role governs what an admin user may do. Only superadmins may create or
// delete admin users or change roles; any admin may update their own record.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// AdminUser is an operator account. PasswordHash never leaves the store
// layer in API responses (json:"-").
type AdminUser struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ProfileImage *string   `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateUserParams struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type UpdateUserParams struct {
	Name  string
	Email string
	// Role is applied only when the actor is a superadmin; otherwise it is
	// silently ignored, matching the original behavior.
	Role *Role
	// Password, when non-nil, is re-hashed and replaced.
	Password *string
}

type UpdateProfileParams struct {
	Name  string
	Email string
	Image *ImageUpload
}

// UserService manages admin accounts and bearer-token sessions. Every
// mutating operation takes the acting user explicitly; authorization is
// never read from ambient state.
type UserService interface {
	// Authenticate verifies credentials and returns the account.
	Authenticate(ctx context.Context, email, password string) (*AdminUser, error)

	// IssueToken creates an opaque bearer token for the user.
	IssueToken(ctx context.Context, userID int64) (string, error)

	// UserByToken resolves a bearer token to its user, rejecting expired
	// tokens.
	UserByToken(ctx context.Context, token string) (*AdminUser, error)

	// RevokeToken invalidates a bearer token (logout).
	RevokeToken(ctx context.Context, token string) error

	List(ctx context.Context) ([]AdminUser, error)
	Get(ctx context.Context, id int64) (*AdminUser, error)
	Create(ctx context.Context, actor AdminUser, params CreateUserParams) (*AdminUser, error)
	Update(ctx context.Context, actor AdminUser, id int64, params UpdateUserParams) (*AdminUser, error)
	Delete(ctx context.Context, actor AdminUser, id int64) error

	UpdateProfile(ctx context.Context, actor AdminUser, params UpdateProfileParams) (*AdminUser, error)
	ChangePassword(ctx context.Context, actor AdminUser, current, next string) error
}

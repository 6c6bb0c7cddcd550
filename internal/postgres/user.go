package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/auth"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/storage"
)

// tokenTTL is how long an issued bearer token stays valid.
const tokenTTL = 30 * 24 * time.Hour

// UserService implements domain.UserService on Postgres. Tokens are opaque
// random strings; only their SHA-256 digest is stored.
type UserService struct {
	db      *DB
	storage storage.Storage
	logger  *slog.Logger
}

var _ domain.UserService = (*UserService)(nil)

func NewUserService(db *DB, store storage.Storage, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{db: db, storage: store, logger: logger}
}

const userColumns = `id, name, email, password_hash, role, profile_image, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.AdminUser, error) {
	var u domain.AdminUser
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Role, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Authenticate verifies credentials. Unknown email and wrong password
// produce the same error so the response does not leak which one failed.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.AdminUser, error) {
	const op = "user.authenticate"

	u, err := scanUser(s.db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err == pgx.ErrNoRows {
		return nil, domain.Unauthorized(op, "invalid email or password")
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to look up user")
	}

	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return nil, domain.Unauthorized(op, "invalid email or password")
	}

	return u, nil
}

// IssueToken creates a bearer token for the user. The plain token is
// returned once and never stored.
func (s *UserService) IssueToken(ctx context.Context, userID int64) (string, error) {
	const op = "user.issue_token"

	token, err := auth.GenerateToken()
	if err != nil {
		return "", domain.Internal(err, op, "failed to generate token")
	}

	_, err = s.db.pool.Exec(ctx, `
		INSERT INTO api_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)`,
		userID, hashToken(token), time.Now().Add(tokenTTL))
	if err != nil {
		return "", domain.Internal(err, op, "failed to store token")
	}

	return token, nil
}

// UserByToken resolves a bearer token to its user, rejecting unknown and
// expired tokens alike.
func (s *UserService) UserByToken(ctx context.Context, token string) (*domain.AdminUser, error) {
	const op = "user.by_token"

	u, err := scanUser(s.db.pool.QueryRow(ctx, `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.profile_image, u.created_at, u.updated_at
		FROM api_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token_hash = $1 AND t.expires_at > now()`,
		hashToken(token)))
	if err == pgx.ErrNoRows {
		return nil, domain.Unauthorized(op, "invalid or expired token")
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to look up token")
	}

	return u, nil
}

// RevokeToken invalidates a bearer token. Revoking an unknown token is a
// no-op so logout is idempotent.
func (s *UserService) RevokeToken(ctx context.Context, token string) error {
	const op = "user.revoke_token"

	_, err := s.db.pool.Exec(ctx,
		`DELETE FROM api_tokens WHERE token_hash = $1`, hashToken(token))
	if err != nil {
		return domain.Internal(err, op, "failed to revoke token")
	}
	return nil
}

// List returns all admin users, oldest first.
func (s *UserService) List(ctx context.Context) ([]domain.AdminUser, error) {
	const op = "user.list"

	rows, err := s.db.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list users")
	}
	defer rows.Close()

	var users []domain.AdminUser
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to scan user")
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, op, "failed to read users")
	}

	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.AdminUser, error) {
	const op = "user.get"

	u, err := scanUser(s.db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, domain.NotFound(op, "user", "")
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to get user")
	}
	return u, nil
}

// Create adds an admin account. Superadmin only.
func (s *UserService) Create(ctx context.Context, actor domain.AdminUser, params domain.CreateUserParams) (*domain.AdminUser, error) {
	const op = "user.create"

	if actor.Role != domain.RoleSuperadmin {
		return nil, domain.Forbidden(op, "only superadmins can create admin users")
	}

	if err := validateUserParams(op, params.Name, params.Email, params.Role); err != nil {
		return nil, err
	}
	if err := auth.ValidatePassword(params.Password); err != nil {
		return nil, domain.NewValidationError(op, "password", "The password must be at least 8 characters.")
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to hash password")
	}

	u, err := scanUser(s.db.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		params.Name, params.Email, hash, params.Role))
	if isUniqueViolation(err) {
		return nil, domain.NewValidationError(op, "email", "The email has already been taken.")
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create user")
	}

	s.logger.Info("admin user created",
		"user_id", u.ID, "email", u.Email, "role", u.Role, "created_by", actor.ID)
	return u, nil
}

// Update modifies an account. Admins may only update their own record;
// superadmins may update anyone. Role changes are applied only when the
// actor is a superadmin; otherwise the requested role is silently ignored.
func (s *UserService) Update(ctx context.Context, actor domain.AdminUser, id int64, params domain.UpdateUserParams) (*domain.AdminUser, error) {
	const op = "user.update"

	if actor.Role != domain.RoleSuperadmin && actor.ID != id {
		return nil, domain.Forbidden(op, "you can only update your own account")
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	role := existing.Role
	if params.Role != nil && actor.Role == domain.RoleSuperadmin {
		role = *params.Role
	}

	if err := validateUserParams(op, params.Name, params.Email, role); err != nil {
		return nil, err
	}

	hash := existing.PasswordHash
	if params.Password != nil {
		if err := auth.ValidatePassword(*params.Password); err != nil {
			return nil, domain.NewValidationError(op, "password", "The password must be at least 8 characters.")
		}
		hash, err = auth.HashPassword(*params.Password)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to hash password")
		}
	}

	u, err := scanUser(s.db.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, role = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, params.Name, params.Email, hash, role))
	if isUniqueViolation(err) {
		return nil, domain.NewValidationError(op, "email", "The email has already been taken.")
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to update user")
	}

	return u, nil
}

// Delete removes an account. Superadmin only; self-deletion is rejected.
func (s *UserService) Delete(ctx context.Context, actor domain.AdminUser, id int64) error {
	const op = "user.delete"

	if actor.Role != domain.RoleSuperadmin {
		return domain.Forbidden(op, "only superadmins can delete admin users")
	}
	if actor.ID == id {
		return domain.Forbidden(op, "you cannot delete your own account")
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = func() error {
		tx, err := s.db.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if _, err := tx.Exec(ctx, `DELETE FROM api_tokens WHERE user_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}()
	if err != nil {
		return domain.Internal(err, op, "failed to delete user")
	}

	s.logger.Info("admin user deleted",
		"user_id", existing.ID, "email", existing.Email, "deleted_by", actor.ID)
	return nil
}

// UpdateProfile lets any admin update their own name, email and avatar.
func (s *UserService) UpdateProfile(ctx context.Context, actor domain.AdminUser, params domain.UpdateProfileParams) (*domain.AdminUser, error) {
	const op = "user.update_profile"

	if err := validateUserParams(op, params.Name, params.Email, actor.Role); err != nil {
		return nil, err
	}

	imagePath := actor.ProfileImage
	if params.Image != nil {
		key := storage.Key("profiles", params.Image.Filename)
		if _, err := s.storage.Put(ctx, key, params.Image.Content, params.Image.ContentType); err != nil {
			return nil, domain.Internal(err, op, "failed to store profile image")
		}
		imagePath = &key
	}

	u, err := scanUser(s.db.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $2, email = $3, profile_image = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		actor.ID, params.Name, params.Email, imagePath))
	if isUniqueViolation(err) {
		return nil, domain.NewValidationError(op, "email", "The email has already been taken.")
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to update profile")
	}

	if params.Image != nil && actor.ProfileImage != nil {
		if err := s.storage.Delete(ctx, *actor.ProfileImage); err != nil {
			s.logger.Error("failed to remove stored file", "key", *actor.ProfileImage, "error", err)
		}
	}

	return u, nil
}

// ChangePassword verifies the current password before replacing it.
func (s *UserService) ChangePassword(ctx context.Context, actor domain.AdminUser, current, next string) error {
	const op = "user.change_password"

	if err := auth.VerifyPassword(current, actor.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return domain.NewValidationError(op, "current_password", "The current password is incorrect.")
		}
		return domain.Internal(err, op, "failed to verify password")
	}

	if err := auth.ValidatePassword(next); err != nil {
		return domain.NewValidationError(op, "new_password", "The new password must be at least 8 characters.")
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return domain.Internal(err, op, "failed to hash password")
	}

	_, err = s.db.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		actor.ID, hash)
	if err != nil {
		return domain.Internal(err, op, "failed to change password")
	}

	s.logger.Info("password changed", "user_id", actor.ID)
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func validateUserParams(op, name, email string, role domain.Role) error {
	var verr error

	if strings.TrimSpace(name) == "" {
		verr = domain.AddFieldError(verr, "name", "The name field is required.")
	}
	if strings.TrimSpace(email) == "" {
		verr = domain.AddFieldError(verr, "email", "The email field is required.")
	} else if _, err := mail.ParseAddress(email); err != nil {
		verr = domain.AddFieldError(verr, "email", "The email must be a valid email address.")
	}
	if !role.Valid() {
		verr = domain.AddFieldError(verr, "role", "The selected role is invalid.")
	}

	if ve, ok := verr.(*domain.ValidationError); ok {
		ve.Op = op
		return ve
	}
	return verr
}

// Package bootstrap handles one-time initialization tasks for the
// application.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
)

// AdminConfig contains configuration for the initial superadmin account.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// Validate checks that the admin configuration is usable.
func (c *AdminConfig) Validate() error {
	if c.Email == "" {
		return errors.New("admin email is required")
	}
	if c.Password == "" {
		return errors.New("admin password is required")
	}
	if len(c.Password) < 8 {
		return errors.New("admin password must be at least 8 characters")
	}
	return nil
}

// userStore is the slice of domain.UserService that seeding needs.
type userStore interface {
	Authenticate(ctx context.Context, email, password string) (*domain.AdminUser, error)
	List(ctx context.Context) ([]domain.AdminUser, error)
	Create(ctx context.Context, actor domain.AdminUser, params domain.CreateUserParams) (*domain.AdminUser, error)
}

// EnsureSuperadmin creates the initial superadmin account if no account with
// the configured email exists. It is idempotent - safe to call on every
// startup. With no config set it logs a warning and skips, which allows dev
// runs without credentials.
func EnsureSuperadmin(ctx context.Context, users userStore, cfg *AdminConfig, logger *slog.Logger) error {
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		logger.Warn("bootstrap: skipping superadmin creation - ADMIN_EMAIL or ADMIN_PASSWORD not set",
			"hint", "Set these environment variables to create a superadmin on first startup",
		)
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid admin configuration: %w", err)
	}

	existing, err := users.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	for _, u := range existing {
		if u.Email == cfg.Email {
			logger.Info("bootstrap: superadmin already exists", "email", cfg.Email)
			return nil
		}
	}

	name := cfg.Name
	if name == "" {
		name = "Administrator"
	}

	// Seeding runs before any user exists, so the actor is a synthetic
	// superadmin.
	seeder := domain.AdminUser{Role: domain.RoleSuperadmin}
	user, err := users.Create(ctx, seeder, domain.CreateUserParams{
		Name:     name,
		Email:    cfg.Email,
		Password: cfg.Password,
		Role:     domain.RoleSuperadmin,
	})
	if err != nil {
		// A concurrent boot may have won the race; treat duplicates as done.
		if domain.ValidationFields(err) != nil || domain.IsCode(err, domain.ECONFLICT) {
			logger.Info("bootstrap: superadmin already exists", "email", cfg.Email)
			return nil
		}
		return fmt.Errorf("failed to create superadmin: %w", err)
	}

	logger.Info("bootstrap: superadmin created", "user_id", user.ID, "email", user.Email)
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AsyadNazeem/mubarak-product-backend/internal"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/bootstrap"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/email"
	adminhandler "github.com/AsyadNazeem/mubarak-product-backend/internal/handler/admin"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/handler/api"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/middleware"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/postgres"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/router"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/routes"
	"github.com/AsyadNazeem/mubarak-product-backend/internal/storage"
	"github.com/AsyadNazeem/mubarak-product-backend/migrations"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrations.Up(ctx, cfg.DatabaseUrl); err != nil {
		return err
	}
	logger.Info("migrations applied")

	db, err := postgres.NewDB(ctx, cfg.DatabaseUrl, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Storage.LocalURL)
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}

	// Services
	categoryService := postgres.NewCategoryService(db, store, logger)
	subcategoryService := postgres.NewSubcategoryService(db, store, logger)
	productService := postgres.NewProductService(db, store, logger)
	contactService := postgres.NewContactService(db, logger)
	userService := postgres.NewUserService(db, store, logger)

	// Outbound email: contact notifications go to the configured inbox.
	// Without one, submissions are stored but nobody is notified.
	var notifier api.ContactNotifier
	if cfg.Contact.NotifyEmail != "" {
		sender := email.NewSMTPSender(&email.SMTPConfig{
			Host:     cfg.Email.Host,
			Port:     int(cfg.Email.Port),
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
			FromName: cfg.Email.FromName,
		}, logger)
		notifier = email.NewContactNotifier(sender, cfg.Email.From, cfg.Contact.NotifyEmail)
	} else {
		logger.Warn("CONTACT_NOTIFY_EMAIL not set, contact notifications disabled")
	}

	if err := bootstrap.EnsureSuperadmin(ctx, userService, &bootstrap.AdminConfig{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	}, logger); err != nil {
		return err
	}

	metrics := middleware.NewMetrics("mubarak")

	r := router.New(
		middleware.RequestID,
		metrics.Middleware,
		router.Logger(logger),
		router.Recovery(logger),
		router.CORS([]string{"*"}),
		middleware.Timeout(),
		middleware.WithUser(userService),
	)

	r.Get("/health", healthHandler(db))
	r.Handle(http.MethodGet, "/metrics", metrics.Handler())
	r.Static("/uploads", cfg.Storage.LocalPath)

	routes.RegisterPublicRoutes(r, routes.PublicDeps{
		ProductHandler: api.NewProductHandler(productService, categoryService, store, logger),
		ContactHandler: api.NewContactHandler(contactService, notifier, logger),
	})
	routes.RegisterAdminRoutes(r, routes.AdminDeps{
		AuthHandler:        adminhandler.NewAuthHandler(userService, logger),
		CategoryHandler:    adminhandler.NewCategoryHandler(categoryService, logger),
		SubcategoryHandler: adminhandler.NewSubcategoryHandler(subcategoryService, logger),
		ProductHandler:     adminhandler.NewProductHandler(productService, logger),
		UserHandler:        adminhandler.NewUserHandler(userService, logger),
		ContactHandler:     adminhandler.NewContactHandler(contactService, logger),
		ProfileHandler:     adminhandler.NewProfileHandler(userService, logger),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func healthHandler(db *postgres.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Pool().Ping(ctx); err != nil {
			http.Error(w, `{"status":"unhealthy"}`, http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/scolaria/scolaria-backend/internal/adapter/postgres"
	annotationrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/annotation"
	assignmentrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/assignment"
	historyrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/history"
	notificationrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/notification"
	tenantrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/tenant"
	themerepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/theme"
	userrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/user"
	versionrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/version"
	"github.com/scolaria/scolaria-backend/internal/auth"
	"github.com/scolaria/scolaria-backend/internal/config"
	annotationsvc "github.com/scolaria/scolaria-backend/internal/service/annotation"
	authsvc "github.com/scolaria/scolaria-backend/internal/service/auth"
	notificationsvc "github.com/scolaria/scolaria-backend/internal/service/notification"
	tenantsvc "github.com/scolaria/scolaria-backend/internal/service/tenant"
	themesvc "github.com/scolaria/scolaria-backend/internal/service/theme"
	versionsvc "github.com/scolaria/scolaria-backend/internal/service/version"
	workflowsvc "github.com/scolaria/scolaria-backend/internal/service/workflow"
	"github.com/scolaria/scolaria-backend/internal/transport/middleware"
	"github.com/scolaria/scolaria-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// Postgres and Redis, wires repositories, services and HTTP handlers, and
// serves until the process receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	// Repositories.
	tenants := tenantrepo.New(pool)
	users := userrepo.New(pool)
	themes := themerepo.New(pool)
	versions := versionrepo.New(pool)
	annotations := annotationrepo.New(pool)
	assignments := assignmentrepo.New(pool)
	history := historyrepo.New(pool)
	notifications := notificationrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	notificationService := notificationsvc.NewService(logger, notifications)
	authService := authsvc.NewService(logger, users, tenants, jwtManager)
	tenantService := tenantsvc.NewService(logger, tenants, users, txManager)
	themeService := themesvc.NewService(logger, themes, versions, txManager)
	versionService := versionsvc.NewService(logger, versions, themes, txManager)
	annotationService := annotationsvc.NewService(logger, annotations, themes, notificationService)
	workflowService := workflowsvc.NewService(logger, themes, versions, annotations, assignments, history, users, notificationService, txManager)

	// Middleware chains.
	base := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)
	protected := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Tenant(tenants),
	}

	var rdb *redis.Client
	if cfg.RateLimit.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close() //nolint:errcheck
		limiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
		protected = append(protected, limiter.Limit())
	}

	router := rest.NewRouter(rest.RouterDeps{
		Auth:          rest.NewAuthHandler(logger, authService),
		Tenants:       rest.NewTenantHandler(logger, tenantService),
		Themes:        rest.NewThemeHandler(logger, themeService),
		Workflow:      rest.NewWorkflowHandler(logger, workflowService),
		Annotations:   rest.NewAnnotationHandler(logger, annotationService),
		Versions:      rest.NewVersionHandler(logger, versionService),
		Notifications: rest.NewNotificationHandler(logger, notificationService),
		Health:        rest.NewHealthHandler(pool, BuildVersion()),
	}, base, middleware.Chain(protected...))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

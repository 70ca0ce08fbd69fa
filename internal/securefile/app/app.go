package app

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

	httpapi "github.com/aussiebroadwan/securefile/internal/securefile/http"
	"github.com/aussiebroadwan/securefile/internal/securefile/metrics"
	"github.com/aussiebroadwan/securefile/internal/securefile/service"
	"github.com/aussiebroadwan/securefile/internal/securefile/store"
	"github.com/aussiebroadwan/securefile/internal/securefile/store/drivers/sqlite"
	"github.com/aussiebroadwan/securefile/pkg/jwtx"
	"github.com/aussiebroadwan/securefile/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the SecureFile Edu server with all its dependencies
type Application struct {
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	// Core dependencies
	db     store.Store
	signer *jwtx.HS256

	// Services
	sessionService      *service.SessionService
	authFlowService     *service.AuthFlowService
	feedService         *service.FeedService
	settingsService     *service.SettingsService
	fileService         *service.FileService
	uploadService       *service.UploadService
	threatService       *service.ThreatService
	tutorialService     *service.TutorialService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "securefile",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: metrics.New(),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, err := InitSessionKey(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.signer = signer

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, used by tests that skip the listener.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Start seeds the feed and starts the background workers.
func (app *Application) Start(ctx context.Context) error {
	if err := app.feedService.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed event feed: %w", err)
	}
	app.feedService.Start()
	app.housekeepingService.Start()
	return nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if err := app.Start(context.Background()); err != nil {
		return err
	}

	app.logger.Info("securefile starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.stopWorkers(context.Background())
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down securefile...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Timers and session hooks get their own context, the grace deadline may be spent
	app.stopWorkers(context.Background())

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("securefile stopped")
	return nil
}

// stopWorkers cancels every timer: uploads, alerts, countdowns, the feed
// generator and housekeeping.
func (app *Application) stopWorkers(ctx context.Context) {
	app.uploadService.StopAll()
	app.threatService.StopAll()
	app.sessionService.StopAll(ctx)
	app.feedService.Stop()
	app.housekeepingService.Stop()
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	log, m := app.logger, app.metrics

	app.sessionService = service.NewSessionService(log, m, app.cfg.SessionTimeout, app.cfg.SessionWarning)
	app.feedService = service.NewFeedService(app.db, log, m, app.cfg.FeedInterval, app.cfg.FeedCapacity)
	app.settingsService = service.NewSettingsService(app.sessionService, app.feedService, log)
	app.fileService = &service.FileService{
		Store:    app.db,
		Sessions: app.sessionService,
		Settings: app.settingsService,
		Feed:     app.feedService,
		Logger:   log,
		Metrics:  m,
	}
	app.uploadService = service.NewUploadService(
		app.fileService,
		app.sessionService,
		app.settingsService,
		log,
		m,
		app.cfg.UploadTick,
		app.cfg.UploadStep,
	)
	app.threatService = service.NewThreatService(app.sessionService, app.feedService, log, m)
	app.tutorialService = &service.TutorialService{Sessions: app.sessionService}

	// Settings first so later hooks see the session's defaults
	app.sessionService.AddHooks(
		app.settingsService,
		app.fileService,
		app.uploadService,
		app.threatService,
	)

	app.authFlowService = service.NewAuthFlowService(
		app.sessionService,
		app.feedService,
		app.signer,
		log,
		m,
		app.cfg.Issuer,
		app.cfg.AuthLatency,
	)

	app.housekeepingService = service.NewHousekeepingService(
		app.sessionService,
		app.authFlowService,
		app.feedService,
		log,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.SecureCookies = app.cfg.Env != "dev"
	router.Metrics = app.metrics
	router.SessionService = app.sessionService
	router.AuthFlowService = app.authFlowService
	router.FileService = app.fileService
	router.UploadService = app.uploadService
	router.FeedService = app.feedService
	router.ThreatService = app.threatService
	router.SettingsService = app.settingsService
	router.TutorialService = app.tutorialService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

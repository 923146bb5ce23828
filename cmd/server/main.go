// Package main initializes and starts the child-health tracking HTTP server,
// setting up configuration, logging, the database connection, repositories,
// services, handlers and routing.
package main

import (
	"fmt"

	nethttp "net/http"

	"github.com/avolkova/kidtrack/internal/config"
	"github.com/avolkova/kidtrack/internal/db"
	"github.com/avolkova/kidtrack/internal/logger"
	"github.com/avolkova/kidtrack/internal/repository"
	"github.com/avolkova/kidtrack/internal/server/handler/http"
	"github.com/avolkova/kidtrack/internal/service"
	"github.com/avolkova/kidtrack/internal/session"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// orDefault returns v unless it is empty, in which case it returns def.
// It matches cmp.Or for strings; cmp.Or itself needs Go 1.22, which is
// newer than the toolchain available here.
func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", orDefault(version, "N/A"))
	fmt.Printf("Build date: %s\n", orDefault(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Missing connection string or signing secret is fatal at startup.
	if err := options.Validate(); err != nil {
		zapLogger.Fatal("invalid configuration", zap.Error(err))
	}

	// Acquire the process-wide PostgreSQL handle.
	manager := db.NewManager(options.DatabaseDSN)
	defer func() { _ = manager.Close() }()
	postgresDB, err := manager.Acquire()
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Session token signing.
	sessions := session.NewManager(options.SessionSecret, options.SessionTTL)

	// Initialize repositories.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	childRepo := repository.NewPostgresChildRepository(postgresDB)
	medicationRepo := repository.NewPostgresMedicationRepository(postgresDB)
	sleepRepo := repository.NewPostgresSleepRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo)
	childService := service.NewChildService(childRepo)
	medicationService := service.NewMedicationService(medicationRepo, childRepo)
	sleepService := service.NewSleepService(sleepRepo, childRepo)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService, Sessions: sessions, Log: zapLogger}
	childrenHandler := &http.ChildrenHandler{Service: childService, Log: zapLogger}
	medicationsHandler := &http.MedicationsHandler{Service: medicationService, Log: zapLogger}
	sleepHandler := &http.SleepHandler{Service: sleepService, Log: zapLogger}
	healthHandler := &http.HealthHandler{DB: postgresDB, Log: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		authHandler,
		childrenHandler,
		medicationsHandler,
		sleepHandler,
		healthHandler,
		sessions,
		zapLogger,
	)

	server := &nethttp.Server{
		Addr:    options.Address,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}

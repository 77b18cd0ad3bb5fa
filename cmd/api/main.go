package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"propfund/internal/config"
	"propfund/internal/database"
	_ "propfund/internal/docs" // Import swagger docs
	"propfund/internal/events"
	"propfund/internal/logger"
	"propfund/internal/server"
	"propfund/internal/services"
	"propfund/internal/telemetry"
	"propfund/internal/validator"
)

// @title           Propfund API
// @version         1.0
// @description     Propfund runs fundraising and revenue distribution for tokenized real-estate shares.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(ctx context.Context) error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	services.ConfigureLockDetection(appConfig.LockDeadlockTimeout, log)

	shutdownTracing, err := telemetry.Setup(ctx, "propfund-api", appConfig.OTelEndpoint, appConfig.OTelEnabled)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warnf("tracer shutdown error: %v", err)
		}
	}()

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(database.DefaultMigrationsDir); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	journal, err := events.OpenBoltJournal(appConfig.EventJournalPath)
	if err != nil {
		return fmt.Errorf("failed to open event journal: %w", err)
	}
	defer func() {
		if err := journal.Close(); err != nil {
			log.Warnf("event journal close error: %v", err)
		}
	}()

	validator.Register()

	svc := server.NewServices(dbManager.DB(), journal, appConfig)
	if appConfig.BootstrapAdminAddress != "" {
		if err := svc.Access.Bootstrap(appConfig.BootstrapAdminAddress); err != nil {
			return fmt.Errorf("failed to bootstrap admin: %w", err)
		}
		log.Infow("bootstrap admin granted", "address", appConfig.BootstrapAdminAddress)
	}

	router := server.NewRouter(svc)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Propfund server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

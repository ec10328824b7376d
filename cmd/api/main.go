package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	paymentMethodUseCase "github.com/paymentshop/payments-service/internal/domain/usecase/paymentmethod"

	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/api/handler"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/api/routes"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/database"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/database/migration"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/logger"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/paymentshop/payments-service/internal/infrastructure/adapter/time"
	"github.com/paymentshop/payments-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	db, err := dbManager.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrationMgr := migration.NewMigrationManager(db, appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	paymentMethodRepo := repository.NewPaymentMethodRepository(db, appLogger)
	uow := database.NewUnitOfWork(db, appLogger)

	useCase := paymentMethodUseCase.NewService(paymentMethodRepo, uow, tp, appLogger)

	paymentMethodHandler := handler.NewPaymentMethodHandler(useCase, appLogger)
	indexHandler := handler.NewIndexHandler()
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, paymentMethodHandler, indexHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or PS_DB_HOST environment variable)")
	}
	if cfg.Database.Port == "" {
		missing = append(missing, "database.port (or PS_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or PS_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or PS_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missing = append(missing, "database.queryTimeout")
	}

	if cfg.Environment == "" {
		missing = append(missing, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}

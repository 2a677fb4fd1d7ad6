package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/nordbok/bokforing/internal/adapter/http"
	"github.com/nordbok/bokforing/internal/adapter/http/handler"
	postgresRepo "github.com/nordbok/bokforing/internal/adapter/repository/postgres"
	redisRepo "github.com/nordbok/bokforing/internal/adapter/repository/redis"
	"github.com/nordbok/bokforing/internal/infrastructure/config"
	"github.com/nordbok/bokforing/internal/infrastructure/logger"
	"github.com/nordbok/bokforing/internal/infrastructure/metrics"
	"github.com/nordbok/bokforing/internal/infrastructure/postgres"
	"github.com/nordbok/bokforing/internal/infrastructure/redis"
	"github.com/nordbok/bokforing/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(log, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Metrics
	m := metrics.New()
	m.DBConnections.Set(float64(cfg.DatabaseMaxConns))

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	companyRepo := postgresRepo.NewCompanyRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	seriesRepo := postgresRepo.NewSeriesRepository(pool)
	voucherRepo := postgresRepo.NewVoucherRepository(pool)
	lockRepo := postgresRepo.NewPeriodLockRepository(pool)
	reportRepo := postgresRepo.NewReportRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)

	// Initialize use cases
	companyUC := usecase.NewCompanyUseCase(txManager, companyRepo, seriesRepo, auditRepo, idGen)
	accountUC := usecase.NewAccountUseCase(accountRepo, companyRepo, idGen)
	voucherUC := usecase.NewVoucherUseCase(txManager, companyRepo, accountRepo, seriesRepo, voucherRepo, lockRepo, auditRepo, idGen, retrier)
	lockUC := usecase.NewPeriodLockUseCase(txManager, companyRepo, lockRepo, auditRepo, idGen)
	reportUC := usecase.NewReportUseCase(reportRepo, accountRepo, companyRepo)
	exportUC := usecase.NewExportUseCase(companyRepo, accountRepo, voucherRepo)

	// Initialize handlers
	companyHandler := handler.NewCompanyHandler(companyUC)
	accountHandler := handler.NewAccountHandler(accountUC)
	voucherHandler := handler.NewVoucherHandler(voucherUC, m)
	lockHandler := handler.NewPeriodLockHandler(lockUC, m)
	reportHandler := handler.NewReportHandler(reportUC)
	exportHandler := handler.NewExportHandler(exportUC, cfg.ExportDir, m)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CompanyHandler:    companyHandler,
		AccountHandler:    accountHandler,
		VoucherHandler:    voucherHandler,
		PeriodLockHandler: lockHandler,
		ReportHandler:     reportHandler,
		ExportHandler:     exportHandler,
		HealthHandler:     healthHandler,
		IdempotencyStore:  idempotencyStore,
		IdempotencyTTL:    cfg.IdempotencyTTL,
		Logger:            log,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

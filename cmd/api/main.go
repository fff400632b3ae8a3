package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/user-directory-service/internal/api/http"
	"github.com/spec-kit/user-directory-service/internal/api/http/handlers"
	"github.com/spec-kit/user-directory-service/internal/config"
	"github.com/spec-kit/user-directory-service/internal/observability"
	"github.com/spec-kit/user-directory-service/internal/persistence"
	"github.com/spec-kit/user-directory-service/internal/repository"
	"github.com/spec-kit/user-directory-service/internal/service"
	"github.com/spec-kit/user-directory-service/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	administrationRepo := repository.NewAdministrationRepository(pool)
	txRunner := repository.NewTxRunner(pool)

	validator := validation.NewValidator()

	userService := service.NewUserService(*cfg, service.UserDependencies{
		UserRepo:           userRepo,
		DepartmentRepo:     departmentRepo,
		AdministrationRepo: administrationRepo,
		Validator:          validator,
		Tx:                 txRunner,
	})
	administrationService := service.NewAdministrationService(administrationRepo, validator)
	departmentService := service.NewDepartmentService(departmentRepo, administrationRepo, validator, txRunner)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg),
		Users:           handlers.NewUsersHandler(userService),
		Administrations: handlers.NewAdministrationsHandler(administrationService),
		Departments:     handlers.NewDepartmentsHandler(departmentService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

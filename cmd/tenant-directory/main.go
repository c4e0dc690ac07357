package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tenant-directory/internal/config"
	"tenant-directory/internal/database"
	httpapi "tenant-directory/internal/http"
	"tenant-directory/internal/logger"
	"tenant-directory/internal/migrate"
	"tenant-directory/internal/repository"
	"tenant-directory/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "tenant-directory")
	if err != nil {
		log, _ = zap.NewProduction()
	}
	defer log.Sync()

	if cfg.APIKey == "" {
		log.Warn("API_KEY not configured, all requests will be rejected with 500")
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("cannot connect to postgres", zap.Error(err))
	}
	defer database.Close(db)

	if err := migrate.EnsureSchema(db); err != nil {
		log.Fatal("schema init failed", zap.Error(err))
	}

	activitiesRepo := repository.NewPostgresActivitiesRepository(db)
	buildingsRepo := repository.NewPostgresBuildingsRepository(db)
	organizationsRepo := repository.NewPostgresOrganizationsRepository(db)
	tasksRepo := repository.NewPostgresTasksRepository(db)

	activitySvc := service.NewActivityService(activitiesRepo, log)
	buildingSvc := service.NewBuildingService(buildingsRepo, log)
	organizationSvc := service.NewOrganizationService(organizationsRepo, buildingsRepo, activitySvc, log)
	taskSvc := service.NewTaskService(tasksRepo, buildingsRepo, log)

	router := httpapi.NewRouter(log)
	router.RegisterDirectoryRoutes(cfg.APIKey,
		httpapi.NewActivityHandler(activitySvc, log),
		httpapi.NewBuildingHandler(buildingSvc, log),
		httpapi.NewOrganizationHandler(organizationSvc, log),
		httpapi.NewTaskHandler(taskSvc, log),
	)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}

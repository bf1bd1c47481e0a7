package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/progressly/internal/api"
	"github.com/limbo/progressly/internal/repository"
	"github.com/limbo/progressly/internal/service"
	"github.com/limbo/progressly/pkg/cleanup"
	"github.com/limbo/progressly/pkg/config"
	jwtservice "github.com/limbo/progressly/pkg/jwt_service"
	"github.com/limbo/progressly/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	lg, err := logger.New(cfg.GetStringOr("LOG_MODE", "dev"))
	if err != nil {
		log.Fatal("creating logger error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{Name: "logger sync", F: func() error {
		_ = lg.Sync()
		return nil
	}})
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		lg.Error("database connection error", "error", err.Error())
		return
	}

	challengesRepo := repository.NewChallengesRepo(pool)
	activitiesRepo := repository.NewActivitiesRepo(pool)
	categoriesRepo := repository.NewCategoriesRepo(pool)
	metricsRepo := repository.NewDailyMetricsRepo(pool)
	patternsRepo := repository.NewPatternsRepo(pool)

	serv := api.New(&api.ServicesList{
		ChallengesService: service.NewChallengesService(challengesRepo, lg),
		ActivitiesService: service.NewActivitiesService(activitiesRepo, cfg.GetInt("DAY_BOUNDARY_HOUR", service.DefaultDayStartHour), lg),
		CategoriesService: service.NewCategoriesService(categoriesRepo, lg),
		MetricsService:    service.NewMetricsService(challengesRepo, activitiesRepo, metricsRepo, lg),
		PatternService:    service.NewPatternService(challengesRepo, activitiesRepo, metricsRepo, patternsRepo, lg),
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET")),
		Logger:            lg,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	}()

	select {
	case err = <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server error", "error", err.Error())
		}
	case <-ctx.Done():
		lg.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err = serv.Shutdown(shutdownCtx); err != nil {
			lg.Error("graceful shutdown error", "error", err.Error())
		}
	}
}

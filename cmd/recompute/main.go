package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/limbo/progressly/internal/repository"
	"github.com/limbo/progressly/internal/service"
	"github.com/limbo/progressly/pkg/cleanup"
	"github.com/limbo/progressly/pkg/config"
	"github.com/limbo/progressly/pkg/logger"
)

var CLI struct {
	LogMode string `help:"Logger mode, dev or prod." default:"dev" env:"LOG_MODE"`

	Metrics  MetricsCmd  `cmd:"" help:"Recompute daily metrics of a challenge in chronological order."`
	Patterns PatternsCmd `cmd:"" help:"Rerun behavior pattern detection for a challenge."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("recompute"),
		kong.Description("Offline recomputation of challenge metrics and behavior patterns"),
		kong.UsageOnError(),
	)

	cfg := config.New()
	lg, err := logger.New(CLI.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	challengesRepo := repository.NewChallengesRepo(pool)
	activitiesRepo := repository.NewActivitiesRepo(pool)
	metricsRepo := repository.NewDailyMetricsRepo(pool)
	patternsRepo := repository.NewPatternsRepo(pool)

	app := &appContext{
		ctx:        ctx,
		challenges: challengesRepo,
		activities: activitiesRepo,
		metrics:    service.NewMetricsService(challengesRepo, activitiesRepo, metricsRepo, lg),
		patterns:   service.NewPatternService(challengesRepo, activitiesRepo, metricsRepo, patternsRepo, lg),
		log:        lg,
	}

	err = kctx.Run(app)
	cleanup.CleanUp()
	_ = lg.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

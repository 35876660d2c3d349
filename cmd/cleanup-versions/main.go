// Command cleanup-versions prunes old theme version snapshots beyond the
// configured retention count. Milestone snapshots are never pruned. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/scolaria/scolaria-backend/internal/adapter/postgres"
	"github.com/scolaria/scolaria-backend/internal/adapter/postgres/version"
	"github.com/scolaria/scolaria-backend/internal/app"
	"github.com/scolaria/scolaria-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	versionRepo := version.New(pool)

	pruned, err := versionRepo.Prune(ctx, cfg.Workflow.VersionRetention)
	if err != nil {
		logger.Error("prune failed",
			slog.String("error", err.Error()),
			slog.Int("retention", cfg.Workflow.VersionRetention),
		)
		os.Exit(1)
	}

	logger.Info("prune completed",
		slog.Int("pruned", pruned),
		slog.Int("retention", cfg.Workflow.VersionRetention),
	)
}

// Command purge-history deletes status history records older than
// history.retention_days. It is intended to be invoked by an external cron
// job, not as an in-process goroutine. A retention of zero keeps
// everything and the command exits without touching the database.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/taskflow-backend/internal/app"
	"github.com/heartmarshall/taskflow-backend/internal/config"
	"github.com/heartmarshall/taskflow-backend/internal/service/history"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.History.RetentionDays <= 0 {
		logger.Info("history retention disabled, nothing to purge")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := history.NewService(logger, historyrepo.New(pool), cfg.History)

	if _, err := svc.Purge(ctx, time.Now().UTC()); err != nil {
		logger.Error("history purge failed",
			slog.String("error", err.Error()),
			slog.Int("retention_days", cfg.History.RetentionDays),
		)
		os.Exit(1)
	}
}

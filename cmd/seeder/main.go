// Command seeder fills a development database with demo work items spread
// over every lifecycle status. Items go through the workflow service, so
// the resulting history is the same as real usage would produce. It is
// intended to be run against local or staging databases only.
//
// Flags:
//
//	--count          number of work items (overrides config)
//	--dry-run        log the plan without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/notify"
	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/workitem"
	"github.com/heartmarshall/taskflow-backend/internal/app"
	"github.com/heartmarshall/taskflow-backend/internal/app/seeder"
	"github.com/heartmarshall/taskflow-backend/internal/config"
	"github.com/heartmarshall/taskflow-backend/internal/event"
	"github.com/heartmarshall/taskflow-backend/internal/metrics"
	"github.com/heartmarshall/taskflow-backend/internal/service/history"
	"github.com/heartmarshall/taskflow-backend/internal/service/workflow"
)

func main() {
	countFlag := flag.Int("count", -1, "number of work items to create (default: from config)")
	dryRunFlag := flag.Bool("dry-run", false, "log the plan without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// App config provides the DB connection.
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *countFlag >= 0 {
		seederCfg.Count = *countFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	m := metrics.New()
	dispatcher := event.NewDispatcher(logger, appCfg.Events, m, event.NewNotificationHandler(notify.NewLogNotifier(logger)))
	svc := workflow.NewService(
		logger,
		workitem.New(pool),
		history.NewService(logger, historyrepo.New(pool), appCfg.History),
		dispatcher,
		m,
		postgres.NewTxManager(pool),
	)
	pipeline := seeder.NewPipeline(logger, svc, *seederCfg)

	dispatchCtx, stopDispatch := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return dispatcher.Run(dispatchCtx) })
	g.Go(func() error {
		defer stopDispatch()
		return pipeline.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for status, r := range pipeline.Results() {
		logger.Info("seeded", slog.String("status", status.String()), slog.Int("created", r.Created), slog.Int("errors", r.Errors))
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}

// Package app wires the taskflow server together and runs it until the
// context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/notify"
	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/workitem"
	redisnotify "github.com/heartmarshall/taskflow-backend/internal/adapter/redis"
	"github.com/heartmarshall/taskflow-backend/internal/auth"
	"github.com/heartmarshall/taskflow-backend/internal/config"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/internal/event"
	"github.com/heartmarshall/taskflow-backend/internal/metrics"
	"github.com/heartmarshall/taskflow-backend/internal/service/collab"
	"github.com/heartmarshall/taskflow-backend/internal/service/history"
	"github.com/heartmarshall/taskflow-backend/internal/service/workflow"
	"github.com/heartmarshall/taskflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/taskflow-backend/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// notifier is the delivery port shared by the event dispatcher and the
// collaboration registry.
type notifier interface {
	Broadcast(ctx context.Context, workItemID int64, n domain.Notification)
	SendTo(ctx context.Context, userID int64, n domain.Notification)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when enabled), serves HTTP and runs the event
// dispatcher and presence sweeper until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
		slog.Bool("redis", cfg.Redis.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	var notes notifier = notify.NewLogNotifier(logger)
	if cfg.Redis.Enabled {
		client, err := redisnotify.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		notes = redisnotify.NewNotifier(logger, client, cfg.Redis.ChannelPrefix)
	}

	st := newStack(cfg, logger, pool, notes)
	defer st.limiter.Stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           st.handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout, st.dispatcher, st.registry, st.presence)
}

// stack is the wired application minus the listener.
type stack struct {
	handler    http.Handler
	dispatcher *event.Dispatcher
	registry   *collab.Registry
	presence   *notify.Queue
	limiter    *middleware.RateLimiter
	tokens     *auth.JWTManager
}

// newStack connects repositories, services and transport. The caller owns
// the pool and must run the dispatcher, registry and presence queue and
// stop the limiter.
func newStack(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, notes notifier) *stack {
	m := metrics.New()

	health := rest.NewHealthHandler(pool, Version)
	if p, ok := notes.(pinger); ok {
		health.WithComponent("notifier", p)
	}

	items := workitem.New(pool)
	historySvc := history.NewService(logger, historyrepo.New(pool), cfg.History)
	dispatcher := event.NewDispatcher(logger, cfg.Events, m, event.NewNotificationHandler(notes))
	workflowSvc := workflow.NewService(logger, items, historySvc, dispatcher, m, postgres.NewTxManager(pool))
	// Presence is announced off the request path so a slow broker never
	// delays a page load.
	presenceNotes := notify.NewQueue(logger, notes, cfg.Events.BufferSize)
	registry := collab.NewRegistry(logger, cfg.Collab, presenceNotes, items, m)

	m.RegisterGauges(registry.ActiveItems, dispatcher.Pending)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(rateLimitCleanup)

	router := rest.NewRouter(rest.RouterConfig{
		WorkItems: rest.NewWorkItemHandler(workflowSvc, logger),
		History:   rest.NewHistoryHandler(historySvc, logger),
		Presence:  rest.NewPresenceHandler(registry, logger),
		Health:    health,
		Metrics:   m.Handler(),
		Middleware: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.Metrics(m),
			middleware.CORS(cfg.CORS),
			middleware.Auth(tokens),
			limiter.Limit(cfg.Server.RateLimitPerMinute),
		},
	})

	return &stack{
		handler:    router,
		dispatcher: dispatcher,
		registry:   registry,
		presence:   presenceNotes,
		limiter:    limiter,
		tokens:     tokens,
	}
}

type runner interface {
	Run(ctx context.Context) error
}

// serve runs the HTTP server alongside the background runners. On
// shutdown the server drains first; the runners are stopped only after
// that, so events published by in-flight requests are still delivered.
func serve(
	ctx context.Context,
	logger *slog.Logger,
	srv *http.Server,
	shutdownTimeout time.Duration,
	background ...runner,
) error {
	bgCtx, stopBackground := context.WithCancel(context.WithoutCancel(ctx))
	defer stopBackground()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		stopBackground()
		if err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	for _, r := range background {
		g.Go(func() error { return r.Run(bgCtx) })
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

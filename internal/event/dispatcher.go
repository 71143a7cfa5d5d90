// Package event delivers committed status changes to in-process handlers.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/taskflow-backend/internal/config"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

// Handler consumes status changes. Handlers must not block for long; one
// slow handler delays every event behind it on the same worker.
type Handler interface {
	Handle(ctx context.Context, ev domain.StatusChanged)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, ev domain.StatusChanged)

// Handle calls f(ctx, ev).
func (f HandlerFunc) Handle(ctx context.Context, ev domain.StatusChanged) { f(ctx, ev) }

type dispatchMetrics interface {
	EventDropped()
}

// Dispatcher is a buffered fan-out of StatusChanged events to handlers,
// served by a fixed worker pool. Publish never blocks: when the buffer is
// full or the dispatcher has stopped, the event is dropped and counted.
type Dispatcher struct {
	queue    chan domain.StatusChanged
	handlers []Handler
	workers  int
	metrics  dispatchMetrics
	log      *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a dispatcher. Call Run to start delivery.
func NewDispatcher(log *slog.Logger, cfg config.EventsConfig, metrics dispatchMetrics, handlers ...Handler) *Dispatcher {
	return &Dispatcher{
		queue:    make(chan domain.StatusChanged, cfg.BufferSize),
		handlers: handlers,
		workers:  cfg.Workers,
		metrics:  metrics,
		log:      log.With("component", "event_dispatcher"),
	}
}

// Publish enqueues ev for delivery.
func (d *Dispatcher) Publish(ev domain.StatusChanged) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ev, "dispatcher stopped")
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.drop(ev, "buffer full")
	}
}

// Pending returns the number of queued events.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// Run starts the workers and blocks until ctx is cancelled. Events already
// queued at that point are still delivered before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	deliverCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ev := range d.queue {
				d.deliver(deliverCtx, ev)
			}
		}()
	}

	<-ctx.Done()

	d.mu.Lock()
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	wg.Wait()
	d.log.Info("event dispatcher stopped")
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, ev domain.StatusChanged) {
	for _, h := range d.handlers {
		d.safeHandle(ctx, h, ev)
	}
}

func (d *Dispatcher) safeHandle(ctx context.Context, h Handler, ev domain.StatusChanged) {
	defer func() {
		if rec := recover(); rec != nil {
			d.log.ErrorContext(ctx, "event handler panic",
				slog.Int64("work_item_id", ev.WorkItemID),
				slog.String("panic", fmt.Sprint(rec)),
			)
		}
	}()
	h.Handle(ctx, ev)
}

func (d *Dispatcher) drop(ev domain.StatusChanged, reason string) {
	d.metrics.EventDropped()
	d.log.Warn("status change event dropped",
		slog.String("reason", reason),
		slog.Int64("work_item_id", ev.WorkItemID),
		slog.String("to", string(ev.NewStatus)),
	)
}

package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

type notifier interface {
	Broadcast(ctx context.Context, workItemID int64, n domain.Notification)
	SendTo(ctx context.Context, userID int64, n domain.Notification)
}

type delivery struct {
	direct bool
	target int64 // work item id, or user id when direct
	note   domain.Notification
}

// Queue hands notifications to another notifier on a background goroutine
// so that callers never wait on the broker. Enqueueing never blocks: when
// the buffer is full or the queue has stopped, the notification is dropped
// and logged.
type Queue struct {
	next notifier
	jobs chan delivery
	log  *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewQueue creates a queue in front of next. Call Run to start delivery.
func NewQueue(log *slog.Logger, next notifier, size int) *Queue {
	return &Queue{
		next: next,
		jobs: make(chan delivery, size),
		log:  log.With("component", "notify_queue"),
	}
}

// Broadcast enqueues a notification for a work item's watchers.
func (q *Queue) Broadcast(_ context.Context, workItemID int64, note domain.Notification) {
	q.enqueue(delivery{target: workItemID, note: note})
}

// SendTo enqueues a notification for one user.
func (q *Queue) SendTo(_ context.Context, userID int64, note domain.Notification) {
	q.enqueue(delivery{direct: true, target: userID, note: note})
}

// Pending returns the number of queued notifications.
func (q *Queue) Pending() int {
	return len(q.jobs)
}

// Run delivers notifications until ctx is cancelled, then flushes what is
// already queued and returns.
func (q *Queue) Run(ctx context.Context) error {
	deliverCtx := context.WithoutCancel(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for d := range q.jobs {
			if d.direct {
				q.next.SendTo(deliverCtx, d.target, d.note)
			} else {
				q.next.Broadcast(deliverCtx, d.target, d.note)
			}
		}
	}()

	<-ctx.Done()

	q.mu.Lock()
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	<-done
	q.log.Info("notification queue stopped")
	return nil
}

func (q *Queue) enqueue(d delivery) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.drop(d, "queue stopped")
		return
	}
	select {
	case q.jobs <- d:
	default:
		q.drop(d, "buffer full")
	}
}

func (q *Queue) drop(d delivery, reason string) {
	q.log.Warn("notification dropped",
		slog.String("reason", reason),
		slog.String("type", string(d.note.Type)),
		slog.Int64("work_item_id", d.note.WorkItemID),
	)
}

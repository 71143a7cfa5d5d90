// Package notify holds notifier implementations that need no broker.
package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

// LogNotifier writes notifications to the log. It is the notifier used
// when no broker is configured.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "log_notifier")}
}

// Broadcast logs a notification addressed to a work item's watchers.
func (n *LogNotifier) Broadcast(ctx context.Context, workItemID int64, note domain.Notification) {
	n.log.InfoContext(ctx, "notification",
		slog.String("audience", "work_item"),
		slog.Int64("work_item_id", workItemID),
		slog.String("type", string(note.Type)),
		slog.Int64("actor_id", note.ActorID),
		slog.String("text", note.Text),
	)
}

// SendTo logs a notification addressed to one user.
func (n *LogNotifier) SendTo(ctx context.Context, userID int64, note domain.Notification) {
	n.log.InfoContext(ctx, "notification",
		slog.String("audience", "user"),
		slog.Int64("user_id", userID),
		slog.Int64("work_item_id", note.WorkItemID),
		slog.String("type", string(note.Type)),
		slog.String("text", note.Text),
	)
}

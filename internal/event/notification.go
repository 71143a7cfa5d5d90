package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

type notifier interface {
	Broadcast(ctx context.Context, workItemID int64, n domain.Notification)
	SendTo(ctx context.Context, userID int64, n domain.Notification)
}

// NotificationHandler turns status changes into notifications: a broadcast
// to everyone watching the item, plus a direct message to the participant
// who has to act next or whose request was resolved.
type NotificationHandler struct {
	notifier notifier
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(n notifier) *NotificationHandler {
	return &NotificationHandler{notifier: n}
}

// Handle implements Handler.
func (h *NotificationHandler) Handle(ctx context.Context, ev domain.StatusChanged) {
	n := domain.Notification{
		ID:         uuid.NewString(),
		Type:       domain.NotificationStatusChanged,
		WorkItemID: ev.WorkItemID,
		ActorID:    ev.ActorID,
		ActorName:  ev.ActorName,
		Status:     ev.NewStatus,
		Previous:   ev.PreviousStatus,
		Text:       fmt.Sprintf("work item %d moved from %s to %s", ev.WorkItemID, ev.PreviousStatus, ev.NewStatus),
		OccurredAt: ev.OccurredAt,
	}
	h.notifier.Broadcast(ctx, ev.WorkItemID, n)

	if to, ok := directRecipient(ev); ok && to != ev.ActorID {
		direct := n
		direct.ID = uuid.NewString()
		h.notifier.SendTo(ctx, to, direct)
	}
}

// directRecipient picks who gets a personal notification for ev.
func directRecipient(ev domain.StatusChanged) (int64, bool) {
	switch ev.NewStatus {
	case domain.StatusAssigned:
		if ev.ExecutorID != nil {
			return *ev.ExecutorID, true
		}
	case domain.StatusCompleted, domain.StatusApproved, domain.StatusRejected, domain.StatusCancelled:
		return ev.RequesterID, ev.RequesterID != 0
	}
	return 0, false
}

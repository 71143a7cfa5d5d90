package domain

import "time"

// StatusHistoryRecord is an immutable audit entry written once per
// successful transition.
type StatusHistoryRecord struct {
	ID             int64
	WorkItemID     int64
	PreviousStatus Status
	NewStatus      Status
	ActorID        int64
	ActorName      string
	Notes          string
	CreatedAt      time.Time
}

// StatusChanged is the fact produced by a successful transition. The history
// recorder persists it inside the transaction; the event dispatcher delivers
// it to notification consumers after commit.
type StatusChanged struct {
	WorkItemID     int64
	Operation      Operation
	PreviousStatus Status
	NewStatus      Status
	ActorID        int64
	ActorName      string
	Notes          string
	OccurredAt     time.Time

	// Participants at the time of the change, for direct notifications.
	RequesterID int64
	ExecutorID  *int64
}

// HistoryFilter selects history records. Zero-valued fields do not filter.
type HistoryFilter struct {
	WorkItemID *int64
	ActorID    *int64
	Status     *Status // matches NewStatus
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// Notification is what the notification port delivers, either for a status
// change or for collaboration presence.
type Notification struct {
	ID         string
	Type       NotificationType
	WorkItemID int64
	ActorID    int64
	ActorName  string
	Status     Status
	Previous   Status
	Text       string
	OccurredAt time.Time
}

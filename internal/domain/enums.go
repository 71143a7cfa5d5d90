package domain

// Status is the lifecycle state of a work item.
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusRequested  Status = "REQUESTED"
	StatusAssigned   Status = "ASSIGNED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
	StatusCancelled  Status = "CANCELLED"
)

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []Status{
	StatusDraft, StatusRequested, StatusAssigned, StatusInProgress,
	StatusCompleted, StatusApproved, StatusRejected, StatusCancelled,
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusRequested, StatusAssigned, StatusInProgress,
		StatusCompleted, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Operation names a transition.
type Operation string

const (
	OpSubmit   Operation = "submit"
	OpAssign   Operation = "assign"
	OpStart    Operation = "start"
	OpComplete Operation = "complete"
	OpApprove  Operation = "approve"
	OpReject   Operation = "reject"
	OpCancel   Operation = "cancel"
)

// AllOperations lists every transition operation.
var AllOperations = []Operation{
	OpSubmit, OpAssign, OpStart, OpComplete, OpApprove, OpReject, OpCancel,
}

func (o Operation) String() string { return string(o) }

func (o Operation) IsValid() bool {
	switch o {
	case OpSubmit, OpAssign, OpStart, OpComplete, OpApprove, OpReject, OpCancel:
		return true
	}
	return false
}

// Role is the organizational role of an actor. Identity guards (requester,
// executor) are checked against ids; role guards against this value.
type Role string

const (
	RoleRequester Role = "requester"
	RoleAssigner  Role = "assigner"
	RoleExecutor  Role = "executor"
	RoleApprover  Role = "approver"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleRequester, RoleAssigner, RoleExecutor, RoleApprover, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Kind distinguishes the two legacy entity variants that share one lifecycle.
type Kind string

const (
	KindActivity    Kind = "ACTIVITY"
	KindTaskRequest Kind = "TASK_REQUEST"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindActivity, KindTaskRequest:
		return true
	}
	return false
}

// Priority of a work item.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// NotificationType identifies what a notification tells its recipients.
type NotificationType string

const (
	NotificationStatusChanged NotificationType = "STATUS_CHANGED"
	NotificationViewing       NotificationType = "VIEWING"
	NotificationEditing       NotificationType = "EDITING"
	NotificationCommented     NotificationType = "COMMENTED"
	NotificationLeft          NotificationType = "LEFT"
)

func (n NotificationType) String() string { return string(n) }

// IsPresence reports whether n is produced by the collaboration registry.
func (n NotificationType) IsPresence() bool {
	switch n {
	case NotificationViewing, NotificationEditing, NotificationCommented, NotificationLeft:
		return true
	}
	return false
}

package domain

import (
	"strings"
	"time"
)

// TransitionCommand carries the actor and the operation-specific inputs of a
// transition. Fields that an operation does not use are ignored.
type TransitionCommand struct {
	Actor Actor
	Notes string
	At    time.Time

	// assign
	ExecutorID     int64
	EstimatedHours *float64

	// complete
	ActualHours *float64
}

type transitionFunc func(w *WorkItem, cmd TransitionCommand) error

// stateStrategy holds the operations a status accepts. A nil field means the
// operation is illegal in that status.
type stateStrategy struct {
	submit   transitionFunc
	assign   transitionFunc
	start    transitionFunc
	complete transitionFunc
	approve  transitionFunc
	reject   transitionFunc
	cancel   transitionFunc
}

func (s stateStrategy) lookup(op Operation) transitionFunc {
	switch op {
	case OpSubmit:
		return s.submit
	case OpAssign:
		return s.assign
	case OpStart:
		return s.start
	case OpComplete:
		return s.complete
	case OpApprove:
		return s.approve
	case OpReject:
		return s.reject
	case OpCancel:
		return s.cancel
	}
	return nil
}

// strategies maps each status to its behavior. Terminal statuses are absent
// and resolve to the zero strategy, which rejects everything.
var strategies = map[Status]stateStrategy{
	StatusDraft: {
		submit: submitDraft,
	},
	StatusRequested: {
		assign: assignRequested,
		cancel: cancelOpen,
	},
	StatusAssigned: {
		start:  startAssigned,
		cancel: cancelOpen,
	},
	StatusInProgress: {
		complete: completeInProgress,
		cancel:   cancelOpen,
	},
	StatusCompleted: {
		approve: approveCompleted,
		reject:  rejectCompleted,
	},
}

func strategyFor(s Status) stateStrategy {
	return strategies[s]
}

// Apply runs op against a copy of w and returns the updated copy. On error
// the receiver is untouched and the returned item equals w.
//
// Checks run in order: operation legal in the current status
// (*TransitionError), actor guard (*PermissionError), then inputs
// (*ValidationError).
func (w WorkItem) Apply(op Operation, cmd TransitionCommand) (WorkItem, error) {
	if !op.IsValid() {
		return w, NewValidationError("operation", "unknown operation")
	}

	fn := strategyFor(w.Status).lookup(op)
	to, legal := NextStatus(w.Status, op)
	if fn == nil || !legal {
		return w, NewTransitionError(w.Status, op)
	}

	if cmd.At.IsZero() {
		cmd.At = time.Now().UTC()
	}

	next := w
	if err := fn(&next, cmd); err != nil {
		return w, err
	}
	next.Status = to
	next.UpdatedAt = cmd.At
	return next, nil
}

// Submit moves a DRAFT item to REQUESTED.
func (w WorkItem) Submit(cmd TransitionCommand) (WorkItem, error) { return w.Apply(OpSubmit, cmd) }

// Assign routes a REQUESTED item to an executor.
func (w WorkItem) Assign(cmd TransitionCommand) (WorkItem, error) { return w.Apply(OpAssign, cmd) }

// Start marks an ASSIGNED item as being worked on.
func (w WorkItem) Start(cmd TransitionCommand) (WorkItem, error) { return w.Apply(OpStart, cmd) }

// Complete finishes an IN_PROGRESS item.
func (w WorkItem) Complete(cmd TransitionCommand) (WorkItem, error) {
	return w.Apply(OpComplete, cmd)
}

// Approve accepts a COMPLETED item.
func (w WorkItem) Approve(cmd TransitionCommand) (WorkItem, error) {
	return w.Apply(OpApprove, cmd)
}

// Reject refuses a COMPLETED item.
func (w WorkItem) Reject(cmd TransitionCommand) (WorkItem, error) { return w.Apply(OpReject, cmd) }

// Cancel abandons an item that has not been completed yet.
func (w WorkItem) Cancel(cmd TransitionCommand) (WorkItem, error) { return w.Apply(OpCancel, cmd) }

// ---------------------------------------------------------------------------
// Per-status behavior
// ---------------------------------------------------------------------------

func submitDraft(w *WorkItem, cmd TransitionCommand) error {
	if !w.IsRequester(cmd.Actor.ID) {
		return NewPermissionError(OpSubmit, cmd.Actor.ID, "only the requester can submit")
	}
	if strings.TrimSpace(w.Description) == "" {
		return NewValidationError("description", "required before submit")
	}
	w.RequestedAt = timePtr(cmd.At)
	return nil
}

func assignRequested(w *WorkItem, cmd TransitionCommand) error {
	if !cmd.Actor.HasRole(RoleAssigner) {
		return NewPermissionError(OpAssign, cmd.Actor.ID, "assigner role required")
	}

	var errs []FieldError
	if cmd.ExecutorID <= 0 {
		errs = append(errs, FieldError{Field: "executor_id", Message: "required"})
	}
	if cmd.EstimatedHours != nil && *cmd.EstimatedHours < 0 {
		errs = append(errs, FieldError{Field: "estimated_hours", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}

	w.AssignerID = int64Ptr(cmd.Actor.ID)
	w.ExecutorID = int64Ptr(cmd.ExecutorID)
	w.AssignedAt = timePtr(cmd.At)
	if cmd.EstimatedHours != nil {
		w.EstimatedHours = float64Ptr(*cmd.EstimatedHours)
	}
	return nil
}

func startAssigned(w *WorkItem, cmd TransitionCommand) error {
	if !w.IsExecutor(cmd.Actor.ID) {
		return NewPermissionError(OpStart, cmd.Actor.ID, "only the assigned executor can start")
	}
	w.StartedAt = timePtr(cmd.At)
	return nil
}

func completeInProgress(w *WorkItem, cmd TransitionCommand) error {
	if !w.IsExecutor(cmd.Actor.ID) {
		return NewPermissionError(OpComplete, cmd.Actor.ID, "only the assigned executor can complete")
	}
	if cmd.ActualHours != nil {
		if *cmd.ActualHours < 0 {
			return NewValidationError("actual_hours", "must be >= 0")
		}
		w.ActualHours = float64Ptr(*cmd.ActualHours)
	}
	w.CompletedAt = timePtr(cmd.At)
	return nil
}

func approveCompleted(w *WorkItem, cmd TransitionCommand) error {
	if !cmd.Actor.HasRole(RoleApprover) {
		return NewPermissionError(OpApprove, cmd.Actor.ID, "approver role required")
	}
	w.ApproverID = int64Ptr(cmd.Actor.ID)
	w.ApprovedAt = timePtr(cmd.At)
	return nil
}

func rejectCompleted(w *WorkItem, cmd TransitionCommand) error {
	if !cmd.Actor.HasRole(RoleApprover) {
		return NewPermissionError(OpReject, cmd.Actor.ID, "approver role required")
	}
	w.ApproverID = int64Ptr(cmd.Actor.ID)
	w.RejectedAt = timePtr(cmd.At)
	return nil
}

// cancelOpen serves REQUESTED, ASSIGNED and IN_PROGRESS. Once COMPLETED the
// item has no cancel strategy at all.
func cancelOpen(w *WorkItem, cmd TransitionCommand) error {
	if !w.IsRequester(cmd.Actor.ID) && !cmd.Actor.Role.IsAdmin() {
		return NewPermissionError(OpCancel, cmd.Actor.ID, "only the requester or an admin can cancel")
	}
	w.CancelledAt = timePtr(cmd.At)
	return nil
}

func timePtr(t time.Time) *time.Time { return &t }

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

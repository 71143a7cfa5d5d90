package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// Submit moves a DRAFT work item to REQUESTED. Requester only.
func (s *Service) Submit(ctx context.Context, input TransitionInput) (*domain.WorkItem, error) {
	return s.transition(ctx, domain.OpSubmit, input, domain.TransitionCommand{})
}

// Assign routes a REQUESTED work item to an executor. Assigner role.
func (s *Service) Assign(ctx context.Context, input AssignInput) (*domain.WorkItem, error) {
	return s.transition(ctx, domain.OpAssign, input.TransitionInput, domain.TransitionCommand{
		ExecutorID:     input.ExecutorID,
		EstimatedHours: input.EstimatedHours,
	})
}

// Start marks an ASSIGNED work item as in progress. Assigned executor only.
func (s *Service) Start(ctx context.Context, input TransitionInput) (*domain.WorkItem, error) {
	return s.transition(ctx, domain.OpStart, input, domain.TransitionCommand{})
}

// Complete finishes an IN_PROGRESS work item. Assigned executor only.
func (s *Service) Complete(ctx context.Context, input CompleteInput) (*domain.WorkItem, error) {
	return s.transition(ctx, domain.OpComplete, input.TransitionInput, domain.TransitionCommand{
		ActualHours: input.ActualHours,
	})
}

// Approve accepts a COMPLETED work item. Approver role.
func (s *Service) Approve(ctx context.Context, input TransitionInput) (*domain.WorkItem, error) {
	return s.transition(ctx, domain.OpApprove, input, domain.TransitionCommand{})
}

// Reject refuses a COMPLETED work item. Approver role.
func (s *Service) Reject(ctx context.Context, input TransitionInput) (*domain.WorkItem, error) {
	return s.transition(ctx, domain.OpReject, input, domain.TransitionCommand{})
}

// Cancel abandons a REQUESTED, ASSIGNED or IN_PROGRESS work item.
// Requester or admin.
func (s *Service) Cancel(ctx context.Context, input TransitionInput) (*domain.WorkItem, error) {
	return s.transition(ctx, domain.OpCancel, input, domain.TransitionCommand{})
}

// Transition dispatches op by name. The REST layer uses it for operations
// that carry no extra fields.
func (s *Service) Transition(ctx context.Context, op domain.Operation, input TransitionInput) (*domain.WorkItem, error) {
	return s.transition(ctx, op, input, domain.TransitionCommand{})
}

func (s *Service) transition(
	ctx context.Context,
	op domain.Operation,
	input TransitionInput,
	cmd domain.TransitionCommand,
) (*domain.WorkItem, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cmd.Actor = actor
	cmd.Notes = input.Notes

	var (
		updated *domain.WorkItem
		event   domain.StatusChanged
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.items.GetByID(txCtx, input.WorkItemID)
		if err != nil {
			return fmt.Errorf("get work item: %w", err)
		}
		if input.ExpectedVersion != 0 && current.Version != input.ExpectedVersion {
			return fmt.Errorf("work item %d: expected version %d, have %d: %w",
				current.ID, input.ExpectedVersion, current.Version, domain.ErrConflict)
		}

		var saved *domain.WorkItem
		saved, event, err = s.applyAndSave(txCtx, current, op, cmd)
		if err != nil {
			return err
		}
		updated = saved
		return nil
	})
	if err != nil {
		s.metrics.TransitionRejected(op, rejectReason(err))
		return nil, err
	}

	s.afterCommit(ctx, op, event)
	return updated, nil
}

// applyAndSave runs inside a transaction. The strategy error is returned
// unwrapped so callers see the TransitionError/PermissionError as produced.
func (s *Service) applyAndSave(
	ctx context.Context,
	current *domain.WorkItem,
	op domain.Operation,
	cmd domain.TransitionCommand,
) (*domain.WorkItem, domain.StatusChanged, error) {
	if cmd.At.IsZero() {
		cmd.At = s.now()
	}

	next, err := current.Apply(op, cmd)
	if err != nil {
		return nil, domain.StatusChanged{}, err
	}

	saved, err := s.items.Update(ctx, &next)
	if err != nil {
		return nil, domain.StatusChanged{}, fmt.Errorf("update work item: %w", err)
	}

	event := domain.StatusChanged{
		WorkItemID:     saved.ID,
		Operation:      op,
		PreviousStatus: current.Status,
		NewStatus:      saved.Status,
		ActorID:        cmd.Actor.ID,
		ActorName:      cmd.Actor.DisplayName,
		Notes:          cmd.Notes,
		OccurredAt:     cmd.At,
		RequesterID:    saved.RequesterID,
		ExecutorID:     saved.ExecutorID,
	}
	if event.PreviousStatus != event.NewStatus {
		if err := s.history.Record(ctx, event); err != nil {
			return nil, domain.StatusChanged{}, fmt.Errorf("record history: %w", err)
		}
	}

	return saved, event, nil
}

// afterCommit runs once the transaction is durable.
func (s *Service) afterCommit(ctx context.Context, op domain.Operation, event domain.StatusChanged) {
	s.metrics.TransitionApplied(op, event.NewStatus)
	s.events.Publish(event)

	s.log.InfoContext(ctx, "work item transitioned",
		slog.Int64("work_item_id", event.WorkItemID),
		slog.Int64("actor_id", event.ActorID),
		slog.String("operation", string(op)),
		slog.String("from", string(event.PreviousStatus)),
		slog.String("to", string(event.NewStatus)),
	)
}

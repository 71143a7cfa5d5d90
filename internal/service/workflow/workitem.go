package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// CreateWorkItem creates a work item owned by the calling actor. With
// Submit set, the submit transition runs in the same transaction, so the
// item starts in REQUESTED with a DRAFT -> REQUESTED history record.
func (s *Service) CreateWorkItem(ctx context.Context, input CreateInput) (*domain.WorkItem, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = domain.KindActivity
	}

	now := s.now()
	draft := domain.NewWorkItem(kind, actor.ID, now)
	draft.Description = strings.TrimSpace(input.Description)
	draft.Category = domain.NormalizeCategory(input.Category)
	if input.Priority != "" {
		draft.Priority = input.Priority
	}
	draft.DueDate = input.DueDate
	draft.EstimatedHours = input.EstimatedHours
	draft.Notes = input.Notes

	var (
		created   *domain.WorkItem
		event     domain.StatusChanged
		submitted bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.items.Create(txCtx, &draft)
		if err != nil {
			return fmt.Errorf("create work item: %w", err)
		}
		if !input.Submit {
			return nil
		}

		created, event, err = s.applyAndSave(txCtx, created, domain.OpSubmit, domain.TransitionCommand{
			Actor: actor,
			At:    now,
		})
		if err != nil {
			return err
		}
		submitted = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "work item created",
		slog.Int64("work_item_id", created.ID),
		slog.Int64("actor_id", actor.ID),
		slog.String("kind", string(created.Kind)),
	)
	if submitted {
		s.afterCommit(ctx, domain.OpSubmit, event)
	}

	return created, nil
}

// GetWorkItem returns a work item with its comments and attachments.
func (s *Service) GetWorkItem(ctx context.Context, id int64) (*domain.WorkItem, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id <= 0 {
		return nil, domain.NewValidationError("work_item_id", "required")
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get work item: %w", err)
	}
	return item, nil
}

// ListWorkItems returns a page of work items and the total match count.
func (s *Service) ListWorkItems(ctx context.Context, filter domain.WorkItemFilter) ([]domain.WorkItem, int, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	var errs []domain.FieldError
	if filter.Status != nil && !filter.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if filter.Kind != nil && !filter.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown kind"})
	}
	if filter.Priority != nil && !filter.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "limit and offset must be >= 0"})
	}
	if len(errs) > 0 {
		return nil, 0, &domain.ValidationError{Errors: errs}
	}

	items, total, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list work items: %w", err)
	}
	return items, total, nil
}

// UpdateDetails edits descriptive fields while the item is DRAFT or
// REQUESTED. Requester or admin. No history record is written since the
// status does not change.
func (s *Service) UpdateDetails(ctx context.Context, input UpdateDetailsInput) (*domain.WorkItem, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.WorkItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.items.GetByID(txCtx, input.WorkItemID)
		if err != nil {
			return fmt.Errorf("get work item: %w", err)
		}
		if input.ExpectedVersion != 0 && current.Version != input.ExpectedVersion {
			return fmt.Errorf("work item %d: expected version %d, have %d: %w",
				current.ID, input.ExpectedVersion, current.Version, domain.ErrConflict)
		}
		if !current.IsRequester(actor.ID) && !actor.Role.IsAdmin() {
			return domain.NewPermissionError("edit", actor.ID, "only the requester or an admin can edit details")
		}
		if !current.IsEditable() {
			return fmt.Errorf("work item %d is %s: details are locked after assignment: %w",
				current.ID, current.Status, domain.ErrInvalidTransition)
		}

		d := input.Details
		if d.Description != nil && strings.TrimSpace(*d.Description) == "" && current.Status != domain.StatusDraft {
			return domain.NewValidationError("description", "required once submitted")
		}

		next := *current
		next.ApplyDetails(d)
		next.UpdatedAt = s.now()

		updated, err = s.items.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update work item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "work item details updated",
		slog.Int64("work_item_id", updated.ID),
		slog.Int64("actor_id", actor.ID),
	)

	return updated, nil
}

// DeleteWorkItem removes a work item. Admin only. Fails with ErrConflict
// while status history references the item.
func (s *Service) DeleteWorkItem(ctx context.Context, id int64) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !actor.Role.IsAdmin() {
		return domain.NewPermissionError("delete", actor.ID, "admin role required")
	}
	if id <= 0 {
		return domain.NewValidationError("work_item_id", "required")
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete work item: %w", err)
	}

	s.log.InfoContext(ctx, "work item deleted",
		slog.Int64("work_item_id", id),
		slog.Int64("actor_id", actor.ID),
	)
	return nil
}

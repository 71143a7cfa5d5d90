// Package workflow runs work item transitions: load, apply the status
// strategy, persist with a version check and record history in one
// transaction, then publish StatusChanged once the transaction commits.
package workflow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

type workItemRepo interface {
	Create(ctx context.Context, item *domain.WorkItem) (*domain.WorkItem, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkItem, error)
	Update(ctx context.Context, item *domain.WorkItem) (*domain.WorkItem, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.WorkItemFilter) ([]domain.WorkItem, int, error)
	AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error)
	AddAttachment(ctx context.Context, a domain.Attachment) (domain.Attachment, error)
}

type historyRecorder interface {
	Record(ctx context.Context, ev domain.StatusChanged) error
}

type eventPublisher interface {
	Publish(ev domain.StatusChanged)
}

type transitionMetrics interface {
	TransitionApplied(op domain.Operation, to domain.Status)
	TransitionRejected(op domain.Operation, reason string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides work item lifecycle operations.
type Service struct {
	items   workItemRepo
	history historyRecorder
	events  eventPublisher
	metrics transitionMetrics
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new workflow service.
func NewService(
	log *slog.Logger,
	items workItemRepo,
	history historyRecorder,
	events eventPublisher,
	metrics transitionMetrics,
	tx txManager,
) *Service {
	return &Service{
		items:   items,
		history: history,
		events:  events,
		metrics: metrics,
		tx:      tx,
		log:     log.With("service", "workflow"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// rejectReason labels a failed transition for metrics.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	default:
		return "error"
	}
}

// Package history records and queries the status audit trail.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/taskflow-backend/internal/config"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

type historyRepo interface {
	Create(ctx context.Context, rec domain.StatusHistoryRecord) (domain.StatusHistoryRecord, error)
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.StatusHistoryRecord, error)
	Count(ctx context.Context, filter domain.HistoryFilter) (int, error)
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service writes history records for status changes and serves read-only
// projections over them.
type Service struct {
	repo historyRepo
	cfg  config.HistoryConfig
	log  *slog.Logger
}

// NewService creates a new history service.
func NewService(log *slog.Logger, repo historyRepo, cfg config.HistoryConfig) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
		log:  log.With("service", "history"),
	}
}

// Record appends a history record built from ev. It runs on whatever
// querier ctx carries, so the workflow service calls it inside its
// transaction.
func (s *Service) Record(ctx context.Context, ev domain.StatusChanged) error {
	if ev.WorkItemID <= 0 {
		return domain.NewValidationError("work_item_id", "required")
	}
	if ev.PreviousStatus == ev.NewStatus {
		return domain.NewValidationError("new_status", "must differ from previous status")
	}

	_, err := s.repo.Create(ctx, domain.StatusHistoryRecord{
		WorkItemID:     ev.WorkItemID,
		PreviousStatus: ev.PreviousStatus,
		NewStatus:      ev.NewStatus,
		ActorID:        ev.ActorID,
		ActorName:      ev.ActorName,
		Notes:          ev.Notes,
		CreatedAt:      ev.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("create history record: %w", err)
	}
	return nil
}

// Page is one page of history records plus the total match count.
type Page struct {
	Records []domain.StatusHistoryRecord
	Total   int
	Limit   int
	Offset  int
}

// List returns history records ordered by (created_at, id) ascending.
func (s *Service) List(ctx context.Context, filter domain.HistoryFilter) (*Page, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validateFilter(filter); err != nil {
		return nil, err
	}

	filter.Limit = s.clampLimit(filter.Limit)

	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count history: %w", err)
	}

	return &Page{Records: records, Total: total, Limit: filter.Limit, Offset: filter.Offset}, nil
}

// ListByWorkItem returns the history of one work item.
func (s *Service) ListByWorkItem(ctx context.Context, workItemID int64, limit, offset int) (*Page, error) {
	if workItemID <= 0 {
		return nil, domain.NewValidationError("work_item_id", "required")
	}
	return s.List(ctx, domain.HistoryFilter{WorkItemID: &workItemID, Limit: limit, Offset: offset})
}

// Purge deletes records older than the configured retention. It returns
// zero without touching the store when retention is disabled.
func (s *Service) Purge(ctx context.Context, now time.Time) (int64, error) {
	if s.cfg.RetentionDays <= 0 {
		return 0, nil
	}

	cutoff := now.AddDate(0, 0, -s.cfg.RetentionDays)
	deleted, err := s.repo.PurgeBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge history: %w", err)
	}

	s.log.InfoContext(ctx, "history purged",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
	return deleted, nil
}

func (s *Service) validateFilter(f domain.HistoryFilter) error {
	var errs []domain.FieldError
	if f.WorkItemID != nil && *f.WorkItemID <= 0 {
		errs = append(errs, domain.FieldError{Field: "work_item_id", Message: "must be positive"})
	}
	if f.ActorID != nil && *f.ActorID <= 0 {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "must be positive"})
	}
	if f.Status != nil && !f.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be before to"})
	}
	if f.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if f.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}
	return limit
}

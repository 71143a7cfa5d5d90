// Package workitem implements the WorkItem repository using PostgreSQL.
// Work items are updated with an optimistic version check; comments and
// attachments are append-only child rows.
package workitem

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides work item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new work item repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var workItemColumns = []string{
	"id", "kind", "description", "category", "priority", "due_date", "notes",
	"status", "requester_id", "assigner_id", "executor_id", "approver_id",
	"requested_at", "assigned_at", "started_at", "completed_at",
	"approved_at", "rejected_at", "cancelled_at",
	"estimated_hours", "actual_hours", "version", "created_at", "updated_at",
}

const insertSQL = `
INSERT INTO work_items (
    kind, description, category, priority, due_date, notes,
    status, requester_id, assigner_id, executor_id, approver_id,
    requested_at, assigned_at, started_at, completed_at,
    approved_at, rejected_at, cancelled_at,
    estimated_hours, actual_hours, version, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10, $11,
    $12, $13, $14, $15,
    $16, $17, $18,
    $19, $20, 1, $21, $21
)
RETURNING id, version, created_at, updated_at`

const updateSQL = `
UPDATE work_items SET
    description = $3, category = $4, priority = $5, due_date = $6, notes = $7,
    status = $8, assigner_id = $9, executor_id = $10, approver_id = $11,
    requested_at = $12, assigned_at = $13, started_at = $14, completed_at = $15,
    approved_at = $16, rejected_at = $17, cancelled_at = $18,
    estimated_hours = $19, actual_hours = $20,
    updated_at = $21,
    version = version + 1
WHERE id = $1 AND version = $2`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM work_items WHERE id = $1)`

const deleteSQL = `DELETE FROM work_items WHERE id = $1`

const commentsSQL = `
SELECT id, work_item_id, author_id, author_name, body, created_at
FROM work_item_comments
WHERE work_item_id = $1
ORDER BY created_at, id`

const attachmentsSQL = `
SELECT id, work_item_id, file_name, content_type, size_bytes, storage_key, uploaded_by, uploaded_at
FROM work_item_attachments
WHERE work_item_id = $1
ORDER BY uploaded_at, id`

const insertCommentSQL = `
INSERT INTO work_item_comments (work_item_id, author_id, author_name, body, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const insertAttachmentSQL = `
INSERT INTO work_item_attachments (work_item_id, file_name, content_type, size_bytes, storage_key, uploaded_by, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a work item with its comments and attachments.
// Returns domain.ErrNotFound if the work item does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.WorkItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Select(workItemColumns...).
		From("work_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get work_item query: %w", err)
	}

	item, err := scanWorkItem(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "work_item", id)
	}

	if item.Comments, err = r.listComments(ctx, q, id); err != nil {
		return nil, err
	}
	if item.Attachments, err = r.listAttachments(ctx, q, id); err != nil {
		return nil, err
	}

	return &item, nil
}

// Exists reports whether a work item with the given id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "work_item", id)
	}
	return exists, nil
}

// List returns work items matching the filter, newest first, and the total
// number of matches ignoring limit/offset. Comments and attachments are not
// loaded. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.WorkItemFilter) ([]domain.WorkItem, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	where := filterConditions(filter)

	countSQL, countArgs, err := psql.Select("count(*)").From("work_items").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count work_items query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count work_items: %w", err)
	}

	limit, offset := clampPage(filter.Limit, filter.Offset)
	listSQL, listArgs, err := psql.Select(workItemColumns...).
		From("work_items").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list work_items query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list work_items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.WorkItem, 0, limit)
	for rows.Next() {
		item, err := scanWorkItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan work_item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list work_items: %w", err)
	}

	return items, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new work item and returns it with id, version and
// timestamps populated. Comments and attachments on the input are ignored.
func (r *Repo) Create(ctx context.Context, item *domain.WorkItem) (*domain.WorkItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created := *item
	created.Comments = []domain.Comment{}
	created.Attachments = []domain.Attachment{}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	err := q.QueryRow(ctx, insertSQL,
		string(item.Kind), item.Description, item.Category, string(item.Priority), item.DueDate, item.Notes,
		string(item.Status), item.RequesterID, item.AssignerID, item.ExecutorID, item.ApproverID,
		item.RequestedAt, item.AssignedAt, item.StartedAt, item.CompletedAt,
		item.ApprovedAt, item.RejectedAt, item.CancelledAt,
		item.EstimatedHours, item.ActualHours, created.CreatedAt,
	).Scan(&created.ID, &created.Version, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "work_item", 0)
	}

	return &created, nil
}

// Update writes every mutable column of item if the stored version equals
// item.Version, and returns the item with the incremented version.
// Returns domain.ErrConflict when another writer got there first and
// domain.ErrNotFound when the row is gone.
func (r *Repo) Update(ctx context.Context, item *domain.WorkItem) (*domain.WorkItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	updatedAt := item.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	tag, err := q.Exec(ctx, updateSQL,
		item.ID, item.Version,
		item.Description, item.Category, string(item.Priority), item.DueDate, item.Notes,
		string(item.Status), item.AssignerID, item.ExecutorID, item.ApproverID,
		item.RequestedAt, item.AssignedAt, item.StartedAt, item.CompletedAt,
		item.ApprovedAt, item.RejectedAt, item.CancelledAt,
		item.EstimatedHours, item.ActualHours,
		updatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "work_item", item.ID)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, existsSQL, item.ID).Scan(&exists); err != nil {
			return nil, postgres.MapError(err, "work_item", item.ID)
		}
		if !exists {
			return nil, fmt.Errorf("work_item %d: %w", item.ID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("work_item %d: version %d is stale: %w", item.ID, item.Version, domain.ErrConflict)
	}

	updated := *item
	updated.Version = item.Version + 1
	updated.UpdatedAt = updatedAt
	return &updated, nil
}

// Delete removes a work item together with its comments and attachments.
// Returns domain.ErrConflict while status history references the item and
// domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapDeleteError(err, "work_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("work_item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddComment appends a comment and returns it with id populated.
// Returns domain.ErrNotFound if the work item does not exist.
func (r *Repo) AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertCommentSQL,
		c.WorkItemID, c.AuthorID, c.AuthorName, c.Body, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, "work_item", c.WorkItemID)
	}
	return c, nil
}

// AddAttachment appends attachment metadata and returns it with id populated.
// Returns domain.ErrNotFound if the work item does not exist.
func (r *Repo) AddAttachment(ctx context.Context, a domain.Attachment) (domain.Attachment, error) {
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertAttachmentSQL,
		a.WorkItemID, a.FileName, a.ContentType, a.SizeBytes, a.StorageKey, a.UploadedBy, a.UploadedAt,
	).Scan(&a.ID)
	if err != nil {
		return domain.Attachment{}, postgres.MapError(err, "work_item", a.WorkItemID)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) listComments(ctx context.Context, q postgres.Querier, itemID int64) ([]domain.Comment, error) {
	rows, err := q.Query(ctx, commentsSQL, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments for work_item %d: %w", itemID, err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.WorkItemID, &c.AuthorID, &c.AuthorName, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *Repo) listAttachments(ctx context.Context, q postgres.Querier, itemID int64) ([]domain.Attachment, error) {
	rows, err := q.Query(ctx, attachmentsSQL, itemID)
	if err != nil {
		return nil, fmt.Errorf("list attachments for work_item %d: %w", itemID, err)
	}
	defer rows.Close()

	attachments := []domain.Attachment{}
	for rows.Next() {
		var a domain.Attachment
		if err := rows.Scan(&a.ID, &a.WorkItemID, &a.FileName, &a.ContentType, &a.SizeBytes,
			&a.StorageKey, &a.UploadedBy, &a.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

func filterConditions(f domain.WorkItemFilter) sq.And {
	where := sq.And{}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": string(*f.Status)})
	}
	if f.Kind != nil {
		where = append(where, sq.Eq{"kind": string(*f.Kind)})
	}
	if f.RequesterID != nil {
		where = append(where, sq.Eq{"requester_id": *f.RequesterID})
	}
	if f.ExecutorID != nil {
		where = append(where, sq.Eq{"executor_id": *f.ExecutorID})
	}
	if f.Category != nil {
		where = append(where, sq.Eq{"category": domain.NormalizeCategory(*f.Category)})
	}
	if f.Priority != nil {
		where = append(where, sq.Eq{"priority": string(*f.Priority)})
	}
	return where
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func scanWorkItem(row pgx.Row) (domain.WorkItem, error) {
	var (
		item                   domain.WorkItem
		kind, priority, status string
	)
	err := row.Scan(
		&item.ID, &kind, &item.Description, &item.Category, &priority, &item.DueDate, &item.Notes,
		&status, &item.RequesterID, &item.AssignerID, &item.ExecutorID, &item.ApproverID,
		&item.RequestedAt, &item.AssignedAt, &item.StartedAt, &item.CompletedAt,
		&item.ApprovedAt, &item.RejectedAt, &item.CancelledAt,
		&item.EstimatedHours, &item.ActualHours, &item.Version, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return domain.WorkItem{}, err
	}

	item.Kind = domain.Kind(kind)
	item.Priority = domain.Priority(priority)
	item.Status = domain.Status(status)
	if !item.Status.IsValid() {
		return domain.WorkItem{}, errors.New("unknown status " + status)
	}
	return item, nil
}

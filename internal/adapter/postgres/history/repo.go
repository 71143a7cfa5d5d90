// Package history implements the append-only status history store.
package history

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var historyColumns = []string{
	"id", "work_item_id", "previous_status", "new_status",
	"actor_id", "actor_name", "notes", "created_at",
}

const insertSQL = `
INSERT INTO status_history (work_item_id, previous_status, new_status, actor_id, actor_name, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const purgeSQL = `DELETE FROM status_history WHERE created_at < $1`

// Repo provides status history persistence. Records are never updated.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends a record and returns it with the id populated.
func (r *Repo) Create(ctx context.Context, rec domain.StatusHistoryRecord) (domain.StatusHistoryRecord, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		rec.WorkItemID, string(rec.PreviousStatus), string(rec.NewStatus),
		rec.ActorID, rec.ActorName, rec.Notes, rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return domain.StatusHistoryRecord{}, postgres.MapError(err, "status_history for work_item", rec.WorkItemID)
	}
	return rec, nil
}

// List returns records matching the filter ordered by (created_at, id).
// Limit <= 0 returns every match.
func (r *Repo) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.StatusHistoryRecord, error) {
	b := psql.Select(historyColumns...).
		From("status_history").
		Where(filterConditions(filter)).
		OrderBy("created_at", "id")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list status_history query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list status_history: %w", err)
	}
	defer rows.Close()

	records := []domain.StatusHistoryRecord{}
	for rows.Next() {
		var (
			rec      domain.StatusHistoryRecord
			prev, nw string
		)
		if err := rows.Scan(&rec.ID, &rec.WorkItemID, &prev, &nw,
			&rec.ActorID, &rec.ActorName, &rec.Notes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan status_history: %w", err)
		}
		rec.PreviousStatus = domain.Status(prev)
		rec.NewStatus = domain.Status(nw)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list status_history: %w", err)
	}

	return records, nil
}

// Count returns the number of records matching the filter, ignoring
// limit and offset.
func (r *Repo) Count(ctx context.Context, filter domain.HistoryFilter) (int, error) {
	query, args, err := psql.Select("count(*)").
		From("status_history").
		Where(filterConditions(filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count status_history query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count status_history: %w", err)
	}
	return n, nil
}

// PurgeBefore deletes records created strictly before cutoff and returns
// how many were removed.
func (r *Repo) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, purgeSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge status_history: %w", err)
	}
	return tag.RowsAffected(), nil
}

func filterConditions(f domain.HistoryFilter) sq.And {
	where := sq.And{}
	if f.WorkItemID != nil {
		where = append(where, sq.Eq{"work_item_id": *f.WorkItemID})
	}
	if f.ActorID != nil {
		where = append(where, sq.Eq{"actor_id": *f.ActorID})
	}
	if f.Status != nil {
		where = append(where, sq.Eq{"new_status": string(*f.Status)})
	}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.Lt{"created_at": *f.To})
	}
	return where
}

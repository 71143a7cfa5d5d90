package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

// userSeq hands out actor ids that do not collide between parallel tests
// sharing one database.
var userSeq atomic.Int64

func init() {
	userSeq.Store(time.Now().UnixNano() % 1_000_000 * 1000)
}

// NextUserID returns a fresh actor id for test data.
func NextUserID() int64 {
	return userSeq.Add(1)
}

// SeedWorkItem inserts a work item in the given status with the actor and
// timestamp columns that status implies. Returns the stored item.
func SeedWorkItem(t *testing.T, pool *pgxpool.Pool, status domain.Status) domain.WorkItem {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.NewWorkItem(domain.KindActivity, NextUserID(), now)
	item.Description = "seeded work item"
	item.Category = "facilities"
	item.Status = status
	item.Version = 1

	if status != domain.StatusDraft {
		item.RequestedAt = &now
	}
	switch status {
	case domain.StatusAssigned, domain.StatusInProgress, domain.StatusCompleted,
		domain.StatusApproved, domain.StatusRejected:
		assigner, executor := NextUserID(), NextUserID()
		item.AssignerID = &assigner
		item.ExecutorID = &executor
		item.AssignedAt = &now
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO work_items (kind, description, category, priority, status, requester_id,
		     assigner_id, executor_id, requested_at, assigned_at, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		 RETURNING id`,
		string(item.Kind), item.Description, item.Category, string(item.Priority), string(item.Status),
		item.RequesterID, item.AssignerID, item.ExecutorID, item.RequestedAt, item.AssignedAt,
		item.Version, now,
	).Scan(&item.ID)
	if err != nil {
		t.Fatalf("testhelper: seed work item: %v", err)
	}

	return item
}

// SeedHistory inserts a status history row for itemID.
func SeedHistory(t *testing.T, pool *pgxpool.Pool, itemID int64, from, to domain.Status, actorID int64, at time.Time) domain.StatusHistoryRecord {
	t.Helper()

	rec := domain.StatusHistoryRecord{
		WorkItemID:     itemID,
		PreviousStatus: from,
		NewStatus:      to,
		ActorID:        actorID,
		ActorName:      "seed actor",
		CreatedAt:      at.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO status_history (work_item_id, previous_status, new_status, actor_id, actor_name, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		rec.WorkItemID, string(rec.PreviousStatus), string(rec.NewStatus), rec.ActorID, rec.ActorName, rec.Notes, rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		t.Fatalf("testhelper: seed history: %v", err)
	}

	return rec
}

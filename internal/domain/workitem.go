package domain

import (
	"strings"
	"time"
)

// WorkItem is a unit of work moving through the request/assign/execute/approve
// lifecycle. Status and the actor/timestamp fields below it change only
// through Apply; every timestamp is set exactly when its transition happens.
type WorkItem struct {
	ID          int64
	Kind        Kind
	Description string
	Category    string
	Priority    Priority
	DueDate     *time.Time
	Notes       string

	Status      Status
	RequesterID int64
	AssignerID  *int64
	ExecutorID  *int64
	ApproverID  *int64

	RequestedAt *time.Time
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	ApprovedAt  *time.Time
	RejectedAt  *time.Time
	CancelledAt *time.Time

	EstimatedHours *float64
	ActualHours    *float64

	Comments    []Comment
	Attachments []Attachment

	// Version is the optimistic-concurrency token. Repositories reject an
	// update whose Version does not match the stored row.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWorkItem returns a DRAFT work item owned by requesterID.
func NewWorkItem(kind Kind, requesterID int64, now time.Time) WorkItem {
	return WorkItem{
		Kind:        kind,
		Priority:    PriorityMedium,
		Status:      StatusDraft,
		RequesterID: requesterID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsRequester reports whether actorID owns the work item.
func (w *WorkItem) IsRequester(actorID int64) bool {
	return w.RequesterID == actorID
}

// IsExecutor reports whether actorID is the assigned executor.
func (w *WorkItem) IsExecutor(actorID int64) bool {
	return w.ExecutorID != nil && *w.ExecutorID == actorID
}

// IsEditable reports whether descriptive fields may still change.
func (w *WorkItem) IsEditable() bool {
	return w.Status == StatusDraft || w.Status == StatusRequested
}

// AllowedOperations returns the operations the current status accepts,
// ignoring actor guards.
func (w *WorkItem) AllowedOperations() []Operation {
	return OperationsFrom(w.Status)
}

// Comment is an entry in a work item's discussion thread.
type Comment struct {
	ID         int64
	WorkItemID int64
	AuthorID   int64
	AuthorName string
	Body       string
	CreatedAt  time.Time
}

// Attachment is file metadata attached to a work item. The bytes live in an
// external store addressed by StorageKey.
type Attachment struct {
	ID          int64
	WorkItemID  int64
	FileName    string
	ContentType string
	SizeBytes   int64
	StorageKey  string
	UploadedBy  int64
	UploadedAt  time.Time
}

// WorkItemFilter selects work items for listing.
type WorkItemFilter struct {
	Status      *Status
	Kind        *Kind
	RequesterID *int64
	ExecutorID  *int64
	Category    *string
	Priority    *Priority
	Limit       int
	Offset      int
}

// WorkItemDetails holds the descriptive fields editable before assignment.
// nil means unchanged.
type WorkItemDetails struct {
	Description    *string
	Category       *string
	Priority       *Priority
	DueDate        *time.Time
	EstimatedHours *float64
	Notes          *string
}

// ApplyDetails copies non-nil fields onto the work item.
func (w *WorkItem) ApplyDetails(d WorkItemDetails) {
	if d.Description != nil {
		w.Description = strings.TrimSpace(*d.Description)
	}
	if d.Category != nil {
		w.Category = NormalizeCategory(*d.Category)
	}
	if d.Priority != nil {
		w.Priority = *d.Priority
	}
	if d.DueDate != nil {
		due := *d.DueDate
		w.DueDate = &due
	}
	if d.EstimatedHours != nil {
		h := *d.EstimatedHours
		w.EstimatedHours = &h
	}
	if d.Notes != nil {
		w.Notes = *d.Notes
	}
}

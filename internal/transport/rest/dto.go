package rest

import (
	"time"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/internal/service/collab"
	"github.com/heartmarshall/taskflow-backend/internal/service/history"
)

type workItemResponse struct {
	ID           int64              `json:"id"`
	Kind         domain.Kind        `json:"kind"`
	Status       domain.Status      `json:"status"`
	LegacyStatus string             `json:"legacy_status"`
	Description  string             `json:"description"`
	Category     string             `json:"category,omitempty"`
	Priority     domain.Priority    `json:"priority"`
	DueDate      *time.Time         `json:"due_date,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	RequesterID  int64              `json:"requester_id"`
	AssignerID   *int64             `json:"assigner_id,omitempty"`
	ExecutorID   *int64             `json:"executor_id,omitempty"`
	ApproverID   *int64             `json:"approver_id,omitempty"`
	RequestedAt  *time.Time         `json:"requested_at,omitempty"`
	AssignedAt   *time.Time         `json:"assigned_at,omitempty"`
	StartedAt    *time.Time         `json:"started_at,omitempty"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	ApprovedAt   *time.Time         `json:"approved_at,omitempty"`
	RejectedAt   *time.Time         `json:"rejected_at,omitempty"`
	CancelledAt  *time.Time         `json:"cancelled_at,omitempty"`
	Estimated    *float64           `json:"estimated_hours,omitempty"`
	Actual       *float64           `json:"actual_hours,omitempty"`
	Allowed      []domain.Operation `json:"allowed_operations"`

	Comments    []commentResponse    `json:"comments,omitempty"`
	Attachments []attachmentResponse `json:"attachments,omitempty"`

	Version      int64              `json:"version"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type commentResponse struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type attachmentResponse struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes"`
	StorageKey  string    `json:"storage_key"`
	UploadedBy  int64     `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type listResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type historyRecordResponse struct {
	ID             int64         `json:"id"`
	WorkItemID     int64         `json:"work_item_id"`
	PreviousStatus domain.Status `json:"previous_status"`
	NewStatus      domain.Status `json:"new_status"`
	ActorID        int64         `json:"actor_id"`
	ActorName      string        `json:"actor_name"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

type presenceResponse struct {
	WorkItemID int64   `json:"work_item_id"`
	Viewers    []int64 `json:"viewers"`
	EditorID   *int64  `json:"editor_id,omitempty"`
}

func toWorkItemResponse(w *domain.WorkItem) workItemResponse {
	resp := workItemResponse{
		ID:           w.ID,
		Kind:         w.Kind,
		Status:       w.Status,
		LegacyStatus: domain.LegacyName(w.Kind, w.Status),
		Description:  w.Description,
		Category:     w.Category,
		Priority:     w.Priority,
		DueDate:      w.DueDate,
		Notes:        w.Notes,
		RequesterID:  w.RequesterID,
		AssignerID:   w.AssignerID,
		ExecutorID:   w.ExecutorID,
		ApproverID:   w.ApproverID,
		RequestedAt:  w.RequestedAt,
		AssignedAt:   w.AssignedAt,
		StartedAt:    w.StartedAt,
		CompletedAt:  w.CompletedAt,
		ApprovedAt:   w.ApprovedAt,
		RejectedAt:   w.RejectedAt,
		CancelledAt:  w.CancelledAt,
		Estimated:    w.EstimatedHours,
		Actual:       w.ActualHours,
		Allowed:      w.AllowedOperations(),
		Version:      w.Version,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
	if resp.Allowed == nil {
		resp.Allowed = []domain.Operation{}
	}
	for _, c := range w.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
	}
	for _, a := range w.Attachments {
		resp.Attachments = append(resp.Attachments, toAttachmentResponse(a))
	}
	return resp
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
}

func toAttachmentResponse(a domain.Attachment) attachmentResponse {
	return attachmentResponse{
		ID:          a.ID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		StorageKey:  a.StorageKey,
		UploadedBy:  a.UploadedBy,
		UploadedAt:  a.UploadedAt,
	}
}

func toHistoryPage(p *history.Page) listResponse[historyRecordResponse] {
	items := make([]historyRecordResponse, len(p.Records))
	for i, rec := range p.Records {
		items[i] = historyRecordResponse{
			ID:             rec.ID,
			WorkItemID:     rec.WorkItemID,
			PreviousStatus: rec.PreviousStatus,
			NewStatus:      rec.NewStatus,
			ActorID:        rec.ActorID,
			ActorName:      rec.ActorName,
			Notes:          rec.Notes,
			CreatedAt:      rec.CreatedAt,
		}
	}
	return listResponse[historyRecordResponse]{Items: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}
}

func toPresenceResponse(p collab.Presence) presenceResponse {
	viewers := p.Viewers
	if viewers == nil {
		viewers = []int64{}
	}
	return presenceResponse{WorkItemID: p.WorkItemID, Viewers: viewers, EditorID: p.EditorID}
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/internal/service/workflow"
)

type workflowService interface {
	CreateWorkItem(ctx context.Context, input workflow.CreateInput) (*domain.WorkItem, error)
	GetWorkItem(ctx context.Context, id int64) (*domain.WorkItem, error)
	ListWorkItems(ctx context.Context, filter domain.WorkItemFilter) ([]domain.WorkItem, int, error)
	UpdateDetails(ctx context.Context, input workflow.UpdateDetailsInput) (*domain.WorkItem, error)
	DeleteWorkItem(ctx context.Context, id int64) error
	Assign(ctx context.Context, input workflow.AssignInput) (*domain.WorkItem, error)
	Complete(ctx context.Context, input workflow.CompleteInput) (*domain.WorkItem, error)
	Transition(ctx context.Context, op domain.Operation, input workflow.TransitionInput) (*domain.WorkItem, error)
	AddComment(ctx context.Context, input workflow.AddCommentInput) (*domain.Comment, error)
	AddAttachment(ctx context.Context, input workflow.AddAttachmentInput) (*domain.Attachment, error)
}

// WorkItemHandler serves work item CRUD, transitions, comments and
// attachments.
type WorkItemHandler struct {
	svc workflowService
	log *slog.Logger
}

// NewWorkItemHandler creates a WorkItemHandler.
func NewWorkItemHandler(svc workflowService, logger *slog.Logger) *WorkItemHandler {
	return &WorkItemHandler{svc: svc, log: logger.With("handler", "work_item")}
}

type createRequest struct {
	Kind           domain.Kind     `json:"kind"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Priority       domain.Priority `json:"priority"`
	DueDate        *time.Time      `json:"due_date"`
	EstimatedHours *float64        `json:"estimated_hours"`
	Notes          string          `json:"notes"`
	Submit         bool            `json:"submit"`
}

type updateRequest struct {
	ExpectedVersion int64            `json:"expected_version"`
	Description     *string          `json:"description"`
	Category        *string          `json:"category"`
	Priority        *domain.Priority `json:"priority"`
	DueDate         *time.Time       `json:"due_date"`
	EstimatedHours  *float64         `json:"estimated_hours"`
	Notes           *string          `json:"notes"`
}

type transitionRequest struct {
	Notes           string   `json:"notes"`
	ExpectedVersion int64    `json:"expected_version"`
	ExecutorID      int64    `json:"executor_id"`
	EstimatedHours  *float64 `json:"estimated_hours"`
	ActualHours     *float64 `json:"actual_hours"`
}

type commentRequest struct {
	Body string `json:"body"`
}

type attachmentRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	StorageKey  string `json:"storage_key"`
}

// Create creates a work item, optionally submitting it right away.
// POST /api/work-items
func (h *WorkItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	item, err := h.svc.CreateWorkItem(r.Context(), workflow.CreateInput{
		Kind:           req.Kind,
		Description:    req.Description,
		Category:       req.Category,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		Notes:          req.Notes,
		Submit:         req.Submit,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkItemResponse(item))
}

// Get returns a work item with its comments and attachments.
// GET /api/work-items/{id}
func (h *WorkItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	item, err := h.svc.GetWorkItem(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkItemResponse(item))
}

// List returns a filtered page of work items.
// GET /api/work-items?status=&kind=&requester_id=&executor_id=&category=&priority=&limit=&offset=
func (h *WorkItemHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseWorkItemFilter(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	items, total, err := h.svc.ListWorkItems(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := listResponse[workItemResponse]{
		Items:  make([]workItemResponse, len(items)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i := range items {
		resp.Items[i] = toWorkItemResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseWorkItemFilter reads list filters from the query string. When kind
// is given, status may use that kind's legacy vocabulary.
func parseWorkItemFilter(r *http.Request) (domain.WorkItemFilter, error) {
	var (
		f    domain.WorkItemFilter
		err  error
		errs []domain.FieldError
	)
	q := r.URL.Query()

	if v := q.Get("kind"); v != "" {
		kind := domain.Kind(strings.ToUpper(v))
		f.Kind = &kind
	}
	if v := q.Get("status"); v != "" {
		status := domain.Status(strings.ToUpper(strings.TrimSpace(v)))
		if f.Kind != nil && f.Kind.IsValid() {
			if status, err = domain.ParseLegacyStatus(*f.Kind, v); err != nil {
				errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
			}
		}
		f.Status = &status
	}
	if v := q.Get("priority"); v != "" {
		p := domain.Priority(strings.ToUpper(v))
		f.Priority = &p
	}
	f.Category = queryString(r, "category")

	if f.RequesterID, err = queryInt64(r, "requester_id"); err != nil {
		errs = append(errs, domain.FieldError{Field: "requester_id", Message: "must be an integer"})
	}
	if f.ExecutorID, err = queryInt64(r, "executor_id"); err != nil {
		errs = append(errs, domain.FieldError{Field: "executor_id", Message: "must be an integer"})
	}
	if f.Limit, err = queryInt(r, "limit"); err != nil {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
	}
	if f.Offset, err = queryInt(r, "offset"); err != nil {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
	}

	if len(errs) > 0 {
		return f, &domain.ValidationError{Errors: errs}
	}
	return f, nil
}

// Update edits descriptive fields.
// PATCH /api/work-items/{id}
func (h *WorkItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req updateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	item, err := h.svc.UpdateDetails(r.Context(), workflow.UpdateDetailsInput{
		WorkItemID:      id,
		ExpectedVersion: req.ExpectedVersion,
		Details: domain.WorkItemDetails{
			Description:    req.Description,
			Category:       req.Category,
			Priority:       req.Priority,
			DueDate:        req.DueDate,
			EstimatedHours: req.EstimatedHours,
			Notes:          req.Notes,
		},
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkItemResponse(item))
}

// Delete removes a work item that has no history. Admin only.
// DELETE /api/work-items/{id}
func (h *WorkItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteWorkItem(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Transition returns the handler for one lifecycle operation.
// POST /api/work-items/{id}/{op}
func (h *WorkItemHandler) Transition(op domain.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}
		var req transitionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, h.log, err)
			return
		}

		base := workflow.TransitionInput{
			WorkItemID:      id,
			Notes:           req.Notes,
			ExpectedVersion: req.ExpectedVersion,
		}

		var item *domain.WorkItem
		switch op {
		case domain.OpAssign:
			item, err = h.svc.Assign(r.Context(), workflow.AssignInput{
				TransitionInput: base,
				ExecutorID:      req.ExecutorID,
				EstimatedHours:  req.EstimatedHours,
			})
		case domain.OpComplete:
			item, err = h.svc.Complete(r.Context(), workflow.CompleteInput{
				TransitionInput: base,
				ActualHours:     req.ActualHours,
			})
		default:
			item, err = h.svc.Transition(r.Context(), op, base)
		}
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toWorkItemResponse(item))
	}
}

// AddComment appends a comment.
// POST /api/work-items/{id}/comments
func (h *WorkItemHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	c, err := h.svc.AddComment(r.Context(), workflow.AddCommentInput{WorkItemID: id, Body: req.Body})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(*c))
}

// AddAttachment records attachment metadata.
// POST /api/work-items/{id}/attachments
func (h *WorkItemHandler) AddAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req attachmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	a, err := h.svc.AddAttachment(r.Context(), workflow.AddAttachmentInput{
		WorkItemID:  id,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		StorageKey:  req.StorageKey,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAttachmentResponse(*a))
}

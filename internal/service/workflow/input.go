package workflow

import (
	"strings"
	"time"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

const (
	maxDescriptionLen = 2000
	maxCategoryLen    = 100
	maxNotesLen       = 2000
	maxCommentLen     = 4000
	maxFileNameLen    = 255
)

// TransitionInput holds the fields every transition takes.
type TransitionInput struct {
	WorkItemID int64
	Notes      string
	// ExpectedVersion, when non-zero, must equal the stored version.
	ExpectedVersion int64
}

// Validate checks all fields and collects all errors.
func (i TransitionInput) Validate() error {
	errs := i.fieldErrors()
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i TransitionInput) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError
	if i.WorkItemID <= 0 {
		errs = append(errs, domain.FieldError{Field: "work_item_id", Message: "required"})
	}
	if len(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}
	if i.ExpectedVersion < 0 {
		errs = append(errs, domain.FieldError{Field: "expected_version", Message: "must be >= 0"})
	}
	return errs
}

// AssignInput holds the parameters for routing a work item to an executor.
// Executor and estimate checks happen in the assign guard.
type AssignInput struct {
	TransitionInput
	ExecutorID     int64
	EstimatedHours *float64
}

// CompleteInput holds the parameters for completing a work item.
type CompleteInput struct {
	TransitionInput
	ActualHours *float64
}

// CreateInput holds the parameters for creating a work item.
type CreateInput struct {
	Kind           domain.Kind
	Description    string
	Category       string
	Priority       domain.Priority
	DueDate        *time.Time
	EstimatedHours *float64
	Notes          string
	// Submit creates the item directly in REQUESTED.
	Submit bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind != "" && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown kind"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if len(strings.TrimSpace(i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.Submit && strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required when submitting"})
	}
	if len(i.Category) > maxCategoryLen {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 100 characters"})
	}
	if len(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}
	if i.EstimatedHours != nil && *i.EstimatedHours < 0 {
		errs = append(errs, domain.FieldError{Field: "estimated_hours", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDetailsInput holds the descriptive fields to change. nil fields are
// left as they are.
type UpdateDetailsInput struct {
	WorkItemID      int64
	ExpectedVersion int64
	Details         domain.WorkItemDetails
}

// Validate checks all fields and collects all errors.
func (i UpdateDetailsInput) Validate() error {
	var errs []domain.FieldError
	d := i.Details

	if i.WorkItemID <= 0 {
		errs = append(errs, domain.FieldError{Field: "work_item_id", Message: "required"})
	}
	if d.Description == nil && d.Category == nil && d.Priority == nil &&
		d.DueDate == nil && d.EstimatedHours == nil && d.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "details", Message: "at least one field must be provided"})
	}
	if d.Description != nil && len(strings.TrimSpace(*d.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if d.Category != nil && len(*d.Category) > maxCategoryLen {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 100 characters"})
	}
	if d.Priority != nil && !d.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if d.EstimatedHours != nil && *d.EstimatedHours < 0 {
		errs = append(errs, domain.FieldError{Field: "estimated_hours", Message: "must be >= 0"})
	}
	if d.Notes != nil && len(*d.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddCommentInput holds a new comment.
type AddCommentInput struct {
	WorkItemID int64
	Body       string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkItemID <= 0 {
		errs = append(errs, domain.FieldError{Field: "work_item_id", Message: "required"})
	}
	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(body) > maxCommentLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddAttachmentInput holds attachment metadata. The file itself is stored
// by the caller; StorageKey addresses it.
type AddAttachmentInput struct {
	WorkItemID  int64
	FileName    string
	ContentType string
	SizeBytes   int64
	StorageKey  string
}

// Validate checks all fields and collects all errors.
func (i AddAttachmentInput) Validate() error {
	var errs []domain.FieldError

	if i.WorkItemID <= 0 {
		errs = append(errs, domain.FieldError{Field: "work_item_id", Message: "required"})
	}
	name := strings.TrimSpace(i.FileName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if len(name) > maxFileNameLen {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "max 255 characters"})
	}
	if i.SizeBytes < 0 {
		errs = append(errs, domain.FieldError{Field: "size_bytes", Message: "must be >= 0"})
	}
	if strings.TrimSpace(i.StorageKey) == "" {
		errs = append(errs, domain.FieldError{Field: "storage_key", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

const defaultContentType = "application/octet-stream"

// AddComment appends a comment to the work item's thread.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.items.AddComment(ctx, domain.Comment{
		WorkItemID: input.WorkItemID,
		AuthorID:   actor.ID,
		AuthorName: actor.DisplayName,
		Body:       strings.TrimSpace(input.Body),
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.Int64("work_item_id", input.WorkItemID),
		slog.Int64("actor_id", actor.ID),
	)
	return &c, nil
}

// AddAttachment records attachment metadata. Terminal items accept no new
// attachments.
func (s *Service) AddAttachment(ctx context.Context, input AddAttachmentInput) (*domain.Attachment, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	contentType := strings.TrimSpace(input.ContentType)
	if contentType == "" {
		contentType = defaultContentType
	}

	var added domain.Attachment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetByID(txCtx, input.WorkItemID)
		if err != nil {
			return fmt.Errorf("get work item: %w", err)
		}
		if item.Status.IsTerminal() {
			return fmt.Errorf("work item %d is %s: attachments are closed: %w",
				item.ID, item.Status, domain.ErrInvalidTransition)
		}

		added, err = s.items.AddAttachment(txCtx, domain.Attachment{
			WorkItemID:  input.WorkItemID,
			FileName:    strings.TrimSpace(input.FileName),
			ContentType: contentType,
			SizeBytes:   input.SizeBytes,
			StorageKey:  input.StorageKey,
			UploadedBy:  actor.ID,
			UploadedAt:  s.now(),
		})
		if err != nil {
			return fmt.Errorf("add attachment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "attachment added",
		slog.Int64("work_item_id", input.WorkItemID),
		slog.Int64("actor_id", actor.ID),
		slog.String("file_name", added.FileName),
	)
	return &added, nil
}

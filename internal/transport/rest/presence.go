package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/internal/service/collab"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

type presenceRegistry interface {
	RegisterViewer(ctx context.Context, itemID, userID int64) bool
	RegisterEditor(ctx context.Context, itemID, userID int64) bool
	RegisterComment(ctx context.Context, itemID, userID int64, text string) bool
	Unregister(ctx context.Context, itemID, userID int64) bool
	Snapshot(itemID int64) collab.Presence
}

// PresenceHandler exposes the collaboration registry. Every call acts for
// the authenticated user; one user cannot register another.
type PresenceHandler struct {
	registry presenceRegistry
	log      *slog.Logger
}

// NewPresenceHandler creates a PresenceHandler.
func NewPresenceHandler(registry presenceRegistry, logger *slog.Logger) *PresenceHandler {
	return &PresenceHandler{registry: registry, log: logger.With("handler", "presence")}
}

type presenceResult struct {
	OK       bool             `json:"ok"`
	Presence presenceResponse `json:"presence"`
}

// View registers (or refreshes) the caller as a viewer.
// POST /api/work-items/{id}/presence/view
func (h *PresenceHandler) View(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, func(ctx context.Context, itemID, userID int64) bool {
		return h.registry.RegisterViewer(ctx, itemID, userID)
	})
}

// Edit claims the exclusive editor slot. ok is false when someone else
// holds it.
// POST /api/work-items/{id}/presence/edit
func (h *PresenceHandler) Edit(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, func(ctx context.Context, itemID, userID int64) bool {
		return h.registry.RegisterEditor(ctx, itemID, userID)
	})
}

// Comment announces that the caller is commenting.
// POST /api/work-items/{id}/presence/comment
func (h *PresenceHandler) Comment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if len(req.Body) > collab.MaxCommentLen {
		writeError(w, r, h.log, domain.NewValidationError("body", "max 4000 characters"))
		return
	}
	h.register(w, r, func(ctx context.Context, itemID, userID int64) bool {
		return h.registry.RegisterComment(ctx, itemID, userID, req.Body)
	})
}

// Leave removes the caller from the session.
// POST /api/work-items/{id}/presence/leave
func (h *PresenceHandler) Leave(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, func(ctx context.Context, itemID, userID int64) bool {
		return h.registry.Unregister(ctx, itemID, userID)
	})
}

// Get returns the current viewers and editor.
// GET /api/work-items/{id}/presence
func (h *PresenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.ActorFromCtx(r.Context()); !ok {
		writeError(w, r, h.log, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPresenceResponse(h.registry.Snapshot(id)))
}

func (h *PresenceHandler) register(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, itemID, userID int64) bool,
) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(w, r, h.log, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	ok = fn(r.Context(), id, actor.ID)
	writeJSON(w, http.StatusOK, presenceResult{OK: ok, Presence: toPresenceResponse(h.registry.Snapshot(id))})
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/internal/service/history"
)

type historyService interface {
	List(ctx context.Context, filter domain.HistoryFilter) (*history.Page, error)
	ListByWorkItem(ctx context.Context, workItemID int64, limit, offset int) (*history.Page, error)
	Purge(ctx context.Context, now time.Time) (int64, error)
}

// HistoryHandler serves the status history audit trail.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
	now func() time.Time
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history"), now: time.Now}
}

// List returns history records across work items.
// GET /api/history?work_item_id=&actor_id=&status=&from=&to=&limit=&offset=
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseHistoryFilter(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	page, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryPage(page))
}

// ListByWorkItem returns one work item's history.
// GET /api/work-items/{id}/history
func (h *HistoryHandler) ListByWorkItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListByWorkItem(r.Context(), id, limit, offset)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryPage(page))
}

// Purge applies the retention policy. Admin only, enforced by the router.
// POST /api/admin/history/purge
func (h *HistoryHandler) Purge(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.Purge(r.Context(), h.now())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func parseHistoryFilter(r *http.Request) (domain.HistoryFilter, error) {
	var (
		f    domain.HistoryFilter
		err  error
		errs []domain.FieldError
	)
	q := r.URL.Query()

	if f.WorkItemID, err = queryInt64(r, "work_item_id"); err != nil {
		errs = append(errs, domain.FieldError{Field: "work_item_id", Message: "must be an integer"})
	}
	if f.ActorID, err = queryInt64(r, "actor_id"); err != nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "must be an integer"})
	}
	if v := q.Get("status"); v != "" {
		s := domain.Status(strings.ToUpper(v))
		f.Status = &s
	}
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"from", &f.From}, {"to", &f.To}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		t, perr := time.Parse(time.RFC3339, v)
		if perr != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "must be RFC 3339"})
			continue
		}
		*p.dst = &t
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

// Package collab tracks who is viewing and editing each work item.
//
// Presence is an in-memory cache scoped to the process. It is never
// persisted and is not shared between instances; a multi-instance
// deployment sees per-instance presence while notifications may still fan
// out through a shared broker.
package collab

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/config"
	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

// MaxCommentLen bounds the text carried by a COMMENTED broadcast.
const MaxCommentLen = 4000

type presenceNotifier interface {
	Broadcast(ctx context.Context, workItemID int64, n domain.Notification)
}

type itemChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type presenceMetrics interface {
	PresenceEvent(t domain.NotificationType)
}

// session is the presence state of one work item. All fields except editor
// are guarded by mu. A dead session has been removed from the registry map
// and must not be revived; callers that find one retry with a fresh entry.
type session struct {
	mu      sync.Mutex
	viewers map[int64]time.Time // user id -> last seen
	editor  atomic.Int64        // 0 means the slot is free
	dead    bool
}

func newSession() *session {
	return &session{viewers: make(map[int64]time.Time)}
}

// Presence is a point-in-time view of one work item's session.
type Presence struct {
	WorkItemID int64
	Viewers    []int64
	EditorID   *int64
}

// Registry holds one session per work item with at least one viewer.
type Registry struct {
	sessions sync.Map // map[int64]*session
	active   atomic.Int64

	notifier presenceNotifier
	items    itemChecker
	metrics  presenceMetrics
	cfg      config.CollabConfig
	log      *slog.Logger
	now      func() time.Time
}

// NewRegistry creates a registry. items may be nil, in which case work item
// existence is not checked.
func NewRegistry(
	log *slog.Logger,
	cfg config.CollabConfig,
	notifier presenceNotifier,
	items itemChecker,
	metrics presenceMetrics,
) *Registry {
	return &Registry{
		notifier: notifier,
		items:    items,
		metrics:  metrics,
		cfg:      cfg,
		log:      log.With("service", "collab"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RegisterViewer adds userID to the item's viewers and refreshes their
// last-seen time. VIEWING is broadcast only when the user was not already
// present. It returns false when the work item cannot be confirmed.
func (r *Registry) RegisterViewer(ctx context.Context, itemID, userID int64) bool {
	if itemID <= 0 || userID <= 0 || !r.exists(ctx, itemID) {
		return false
	}

	s := r.acquire(itemID)
	_, present := s.viewers[userID]
	s.viewers[userID] = r.now()
	s.mu.Unlock()

	if !present {
		r.emit(ctx, domain.NotificationViewing, itemID, userID, "")
	}
	return true
}

// RegisterEditor claims the item's editor slot for userID. It returns false
// when another user holds the slot. The editor is also registered as a
// viewer. Reclaiming a slot already held by userID succeeds silently.
func (r *Registry) RegisterEditor(ctx context.Context, itemID, userID int64) bool {
	if itemID <= 0 || userID <= 0 || !r.exists(ctx, itemID) {
		return false
	}

	s := r.acquire(itemID)
	claimed := s.editor.CompareAndSwap(0, userID)
	if !claimed && s.editor.Load() != userID {
		s.mu.Unlock()
		return false
	}
	s.viewers[userID] = r.now()
	s.mu.Unlock()

	if claimed {
		r.emit(ctx, domain.NotificationEditing, itemID, userID, "")
	}
	return true
}

// RegisterComment broadcasts COMMENTED for the item. The registry itself is
// not changed. Text longer than MaxCommentLen is refused.
func (r *Registry) RegisterComment(ctx context.Context, itemID, userID int64, text string) bool {
	if itemID <= 0 || userID <= 0 || len(text) > MaxCommentLen || !r.exists(ctx, itemID) {
		return false
	}
	r.emit(ctx, domain.NotificationCommented, itemID, userID, text)
	return true
}

// Unregister removes userID from the item, releasing the editor slot if
// they hold it. LEFT is broadcast if the user had been viewing. The session
// is dropped once its last viewer leaves. It reports whether the user was
// present.
func (r *Registry) Unregister(ctx context.Context, itemID, userID int64) bool {
	v, ok := r.sessions.Load(itemID)
	if !ok {
		return false
	}
	s := v.(*session)

	s.mu.Lock()
	if s.dead {
		s.mu.Unlock()
		return false
	}
	s.editor.CompareAndSwap(userID, 0)
	_, present := s.viewers[userID]
	delete(s.viewers, userID)
	if len(s.viewers) == 0 {
		r.drop(itemID, s)
	}
	s.mu.Unlock()

	if present {
		r.emit(ctx, domain.NotificationLeft, itemID, userID, "")
	}
	return present
}

// GetViewers returns the item's viewers in ascending id order. A missing
// session yields an empty slice.
func (r *Registry) GetViewers(itemID int64) []int64 {
	v, ok := r.sessions.Load(itemID)
	if !ok {
		return []int64{}
	}
	s := v.(*session)

	s.mu.Lock()
	ids := make([]int64, 0, len(s.viewers))
	for id := range s.viewers {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// GetEditor returns the current editor of the item, if any.
func (r *Registry) GetEditor(itemID int64) (int64, bool) {
	v, ok := r.sessions.Load(itemID)
	if !ok {
		return 0, false
	}
	id := v.(*session).editor.Load()
	return id, id != 0
}

// Snapshot returns viewers and editor of the item.
func (r *Registry) Snapshot(itemID int64) Presence {
	p := Presence{WorkItemID: itemID, Viewers: r.GetViewers(itemID)}
	if id, ok := r.GetEditor(itemID); ok {
		p.EditorID = &id
	}
	return p
}

// ActiveItems returns the number of work items with a live session.
func (r *Registry) ActiveItems() int {
	return int(r.active.Load())
}

// acquire returns the live session for itemID with its mutex held,
// creating one if needed.
func (r *Registry) acquire(itemID int64) *session {
	for {
		fresh := newSession()
		v, loaded := r.sessions.LoadOrStore(itemID, fresh)
		s := v.(*session)

		s.mu.Lock()
		if !s.dead {
			if !loaded {
				r.active.Add(1)
			}
			return s
		}
		s.mu.Unlock()
	}
}

// drop marks s dead and removes it from the map. Caller holds s.mu.
func (r *Registry) drop(itemID int64, s *session) {
	s.dead = true
	if r.sessions.CompareAndDelete(itemID, s) {
		r.active.Add(-1)
	}
}

func (r *Registry) exists(ctx context.Context, itemID int64) bool {
	if r.items == nil {
		return true
	}
	ok, err := r.items.Exists(ctx, itemID)
	if err != nil {
		r.log.WarnContext(ctx, "presence item lookup failed",
			slog.Int64("work_item_id", itemID),
			slog.String("error", err.Error()),
		)
		return false
	}
	return ok
}

func (r *Registry) emit(ctx context.Context, typ domain.NotificationType, itemID, userID int64, text string) {
	r.metrics.PresenceEvent(typ)
	r.notifier.Broadcast(ctx, itemID, domain.Notification{
		ID:         uuid.NewString(),
		Type:       typ,
		WorkItemID: itemID,
		ActorID:    userID,
		Text:       text,
		OccurredAt: r.now(),
	})
}

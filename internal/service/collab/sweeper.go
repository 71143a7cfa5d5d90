package collab

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

type departure struct {
	itemID int64
	userID int64
}

// Run sweeps idle presence every SweepInterval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Sweep(ctx); n > 0 {
				r.log.DebugContext(ctx, "idle presence swept", slog.Int("removed", n))
			}
		}
	}
}

// Sweep removes viewers whose last activity is older than IdleTimeout,
// releasing the editor slot they hold and dropping emptied sessions. LEFT
// is broadcast for each removal after all locks are released. It returns
// the number of removed viewers.
func (r *Registry) Sweep(ctx context.Context) int {
	cutoff := r.now().Add(-r.cfg.IdleTimeout)

	var gone []departure
	r.sessions.Range(func(key, value any) bool {
		itemID := key.(int64)
		s := value.(*session)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.dead {
			return true
		}
		for userID, seen := range s.viewers {
			if seen.After(cutoff) {
				continue
			}
			delete(s.viewers, userID)
			s.editor.CompareAndSwap(userID, 0)
			gone = append(gone, departure{itemID: itemID, userID: userID})
		}
		if len(s.viewers) == 0 {
			r.drop(itemID, s)
		}
		return true
	})

	for _, d := range gone {
		r.emit(ctx, domain.NotificationLeft, d.itemID, d.userID, "idle timeout")
	}
	return len(gone)
}

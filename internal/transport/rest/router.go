package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/internal/transport/middleware"
)

// RouterConfig bundles the handlers and the middleware chain. Middleware
// is applied in order, the first entry being the outermost.
type RouterConfig struct {
	WorkItems  *WorkItemHandler
	History    *HistoryHandler
	Presence   *PresenceHandler
	Health     *HealthHandler
	Metrics    http.Handler
	Middleware []middleware.Middleware
}

// NewRouter builds the HTTP surface. Probes and /metrics sit outside the
// API middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Get("/live", cfg.Health.Live)
	r.Get("/ready", cfg.Health.Ready)
	r.Get("/health", cfg.Health.Health)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		for _, mw := range cfg.Middleware {
			r.Use(mw)
		}

		r.Route("/work-items", func(r chi.Router) {
			r.Post("/", cfg.WorkItems.Create)
			r.Get("/", cfg.WorkItems.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", cfg.WorkItems.Get)
				r.Patch("/", cfg.WorkItems.Update)
				r.Delete("/", cfg.WorkItems.Delete)

				for _, op := range domain.AllOperations {
					r.Post("/"+op.String(), cfg.WorkItems.Transition(op))
				}

				r.Post("/comments", cfg.WorkItems.AddComment)
				r.Post("/attachments", cfg.WorkItems.AddAttachment)
				r.Get("/history", cfg.History.ListByWorkItem)

				r.Get("/presence", cfg.Presence.Get)
				r.Post("/presence/view", cfg.Presence.View)
				r.Post("/presence/edit", cfg.Presence.Edit)
				r.Post("/presence/comment", cfg.Presence.Comment)
				r.Post("/presence/leave", cfg.Presence.Leave)
			})
		})

		r.Get("/history", cfg.History.List)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleAdmin))
			r.Post("/history/purge", cfg.History.Purge)
		})
	})

	return r
}

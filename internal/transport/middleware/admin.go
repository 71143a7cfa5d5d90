package middleware

import (
	"net/http"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// RequireRole rejects requests whose actor does not hold role. Admins hold
// every role.
func RequireRole(role domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ctxutil.ActorFromCtx(r.Context())
			if !ok {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				return
			}
			if !actor.HasRole(role) {
				writeError(w, r, http.StatusForbidden, "FORBIDDEN", string(role)+" role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Package middleware holds the HTTP middleware shared by the REST surface.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/taskflow-backend/pkg/ctxutil"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

type errorBody struct {
	Error errorPayload `json:"error"`
}

type errorPayload struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes the same JSON error envelope the REST handlers use.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: errorPayload{
		Code:      code,
		Message:   message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	}})
}

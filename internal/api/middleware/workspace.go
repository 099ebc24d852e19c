package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lexdesk/lexdesk/internal/api/response"
)

type contextKey string

const workspaceIDKey contextKey = "workspaceID"

// WorkspaceContext extracts the integer workspace ID from the URL and
// adds it to the request context.
func WorkspaceContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "workspaceID"))
		if err != nil || id < 1 {
			response.BadRequest(w, "Invalid workspace ID")
			return
		}

		ctx := context.WithValue(r.Context(), workspaceIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetWorkspaceID gets the workspace ID from context
func GetWorkspaceID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(workspaceIDKey).(int)
	return id, ok
}

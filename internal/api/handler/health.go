package handler

import (
	"net/http"

	"github.com/lexdesk/lexdesk/internal/api/response"
)

// Health returns a simple liveness response
func Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

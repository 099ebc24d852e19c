package handler

import (
	"errors"
	"net/http"

	"github.com/lexdesk/lexdesk/internal/api/response"
	"github.com/lexdesk/lexdesk/internal/errs"
	"github.com/lexdesk/lexdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// UserHandler handles user endpoints. There is no session layer; all
// requests resolve to the configured demo user.
type UserHandler struct {
	users      *service.UserService
	demoUserID int
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *service.UserService, demoUserID int) *UserHandler {
	return &UserHandler{users: users, demoUserID: demoUserID}
}

// Current returns the demo user. The password field never leaves the
// server.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), h.demoUserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		log.Error().Err(err).Msg("failed to fetch demo user")
		response.InternalError(w)
		return
	}

	response.OK(w, user)
}

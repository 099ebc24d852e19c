package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lexdesk/lexdesk/internal/api/middleware"
	"github.com/lexdesk/lexdesk/internal/api/response"
	"github.com/lexdesk/lexdesk/internal/domain"
	"github.com/lexdesk/lexdesk/internal/errs"
	"github.com/lexdesk/lexdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// WorkspaceHandler handles workspace endpoints
type WorkspaceHandler struct {
	workspaces *service.WorkspaceService
	demoUserID int
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaces *service.WorkspaceService, demoUserID int) *WorkspaceHandler {
	return &WorkspaceHandler{workspaces: workspaces, demoUserID: demoUserID}
}

// List handles listing the demo user's workspaces
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.workspaces.ListByUser(r.Context(), h.demoUserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list workspaces")
		response.InternalError(w)
		return
	}

	response.OK(w, workspaces)
}

// Get handles getting a workspace by ID
func (h *WorkspaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "Missing workspace ID")
		return
	}

	workspace, err := h.workspaces.GetByID(r.Context(), workspaceID)
	if err != nil {
		if errors.Is(err, errs.ErrWorkspaceNotFound) {
			response.NotFound(w, "Workspace not found")
			return
		}
		log.Error().Err(err).Int("workspace_id", workspaceID).Msg("failed to get workspace")
		response.InternalError(w)
		return
	}

	response.OK(w, workspace)
}

// Create handles workspace creation. Ownership is forced to the demo
// user regardless of the payload.
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.WorkspaceCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.Invalid(w, validationMessages(err))
		return
	}

	workspace, err := h.workspaces.Create(r.Context(), h.demoUserID, input)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidIncidentDate) {
			response.Invalid(w, map[string]string{"dateOfIncident": "invalid date format"})
			return
		}
		log.Error().Err(err).Msg("failed to create workspace")
		response.InternalError(w)
		return
	}

	response.Created(w, workspace)
}

// Update handles a partial workspace update
func (h *WorkspaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "Missing workspace ID")
		return
	}

	var input domain.WorkspaceUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.Invalid(w, validationMessages(err))
		return
	}

	workspace, err := h.workspaces.Update(r.Context(), workspaceID, input)
	if err != nil {
		if errors.Is(err, errs.ErrWorkspaceNotFound) {
			response.NotFound(w, "Workspace not found")
			return
		}
		if errors.Is(err, errs.ErrInvalidIncidentDate) {
			response.Invalid(w, map[string]string{"dateOfIncident": "invalid date format"})
			return
		}
		log.Error().Err(err).Int("workspace_id", workspaceID).Msg("failed to update workspace")
		response.InternalError(w)
		return
	}

	response.OK(w, workspace)
}

// Delete handles deleting a workspace
func (h *WorkspaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "Missing workspace ID")
		return
	}

	if err := h.workspaces.Delete(r.Context(), workspaceID); err != nil {
		if errors.Is(err, errs.ErrWorkspaceNotFound) {
			response.NotFound(w, "Workspace not found")
			return
		}
		log.Error().Err(err).Int("workspace_id", workspaceID).Msg("failed to delete workspace")
		response.InternalError(w)
		return
	}

	response.Message(w, http.StatusOK, "Workspace deleted successfully")
}

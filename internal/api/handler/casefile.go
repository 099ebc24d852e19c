package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lexdesk/lexdesk/internal/api/middleware"
	"github.com/lexdesk/lexdesk/internal/api/response"
	"github.com/lexdesk/lexdesk/internal/domain"
	"github.com/lexdesk/lexdesk/internal/errs"
	"github.com/lexdesk/lexdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// CaseFileHandler handles case file metadata endpoints
type CaseFileHandler struct {
	caseFiles *service.CaseFileService
}

// NewCaseFileHandler creates a new case file handler
func NewCaseFileHandler(caseFiles *service.CaseFileService) *CaseFileHandler {
	return &CaseFileHandler{caseFiles: caseFiles}
}

// List handles listing the case files of a workspace
func (h *CaseFileHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "Missing workspace ID")
		return
	}

	caseFiles, err := h.caseFiles.ListByWorkspace(r.Context(), workspaceID)
	if err != nil {
		log.Error().Err(err).Int("workspace_id", workspaceID).Msg("failed to list case files")
		response.InternalError(w)
		return
	}

	response.OK(w, caseFiles)
}

// Create handles recording case file metadata. The workspace ID comes
// from the URL, overriding whatever the body carries.
func (h *CaseFileHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "Missing workspace ID")
		return
	}

	var input domain.CaseFileCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	input.WorkspaceID = workspaceID

	if err := validate.Struct(input); err != nil {
		response.Invalid(w, validationMessages(err))
		return
	}

	caseFile, err := h.caseFiles.Create(r.Context(), workspaceID, input)
	if err != nil {
		log.Error().Err(err).Int("workspace_id", workspaceID).Msg("failed to create case file")
		response.InternalError(w)
		return
	}

	response.Created(w, caseFile)
}

// Delete handles deleting a case file record
func (h *CaseFileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	fileID, err := strconv.Atoi(chi.URLParam(r, "fileID"))
	if err != nil || fileID < 1 {
		response.BadRequest(w, "Invalid file ID")
		return
	}

	if err := h.caseFiles.Delete(r.Context(), fileID); err != nil {
		if errors.Is(err, errs.ErrCaseFileNotFound) {
			response.NotFound(w, "Case file not found")
			return
		}
		log.Error().Err(err).Int("file_id", fileID).Msg("failed to delete case file")
		response.InternalError(w)
		return
	}

	response.Message(w, http.StatusOK, "Case file deleted successfully")
}

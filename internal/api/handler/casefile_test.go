package handler_test

import (
	"net/http"
	"testing"

	"github.com/lexdesk/lexdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseFiles_CreateAndList(t *testing.T) {
	srv := newTestServer(t, true)

	rec := doJSON(t, srv, http.MethodPost, "/api/workspaces/1/files", map[string]any{
		"fileName": "merger-agreement.pdf",
		"fileSize": 48213,
		"mimeType": "application/pdf",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.CaseFile
	decodeBody(t, rec, &created)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 1, created.WorkspaceID)
	assert.False(t, created.UploadedAt.IsZero())

	rec = doJSON(t, srv, http.MethodGet, "/api/workspaces/1/files", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var files []domain.CaseFile
	decodeBody(t, rec, &files)
	require.Len(t, files, 1)
	assert.Equal(t, "merger-agreement.pdf", files[0].FileName)
}

func TestCaseFiles_WorkspaceIDFromURL(t *testing.T) {
	srv := newTestServer(t, true)

	// A workspaceId in the body is overridden by the URL.
	rec := doJSON(t, srv, http.MethodPost, "/api/workspaces/1/files", map[string]any{
		"workspaceId": 99,
		"fileName":    "exhibit-a.jpg",
		"fileSize":    1024,
		"mimeType":    "image/jpeg",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.CaseFile
	decodeBody(t, rec, &created)
	assert.Equal(t, 1, created.WorkspaceID)
}

func TestCaseFiles_Validation(t *testing.T) {
	srv := newTestServer(t, true)

	rec := doJSON(t, srv, http.MethodPost, "/api/workspaces/1/files", map[string]any{
		"fileSize": 1024,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &body)
	assert.Contains(t, body.Errors, "fileName")
	assert.Contains(t, body.Errors, "mimeType")
}

func TestCaseFiles_Delete(t *testing.T) {
	srv := newTestServer(t, true)

	rec := doJSON(t, srv, http.MethodPost, "/api/workspaces/1/files", map[string]any{
		"fileName": "draft.docx",
		"fileSize": 2048,
		"mimeType": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/api/workspaces/1/files/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/api/workspaces/1/files/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

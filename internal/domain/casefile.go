package domain

import "time"

// CaseFile is the metadata record of a document uploaded to a
// workspace. File content itself is not stored by this service.
type CaseFile struct {
	ID          int       `json:"id"`
	WorkspaceID int       `json:"workspaceId"`
	FileName    string    `json:"fileName"`
	FileSize    int       `json:"fileSize"`
	MimeType    string    `json:"mimeType"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// CaseFileCreate represents case file creation data. WorkspaceID is
// taken from the URL, not the body.
type CaseFileCreate struct {
	WorkspaceID int    `json:"workspaceId" validate:"min=1"`
	FileName    string `json:"fileName" validate:"required,max=255"`
	FileSize    int    `json:"fileSize" validate:"gte=0"`
	MimeType    string `json:"mimeType" validate:"required,max=255"`
}

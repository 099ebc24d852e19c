package service

import (
	"context"
	"fmt"

	"github.com/lexdesk/lexdesk/internal/domain"
)

// CaseFileStore is the case file slice of the entity store.
type CaseFileStore interface {
	CreateCaseFile(ctx context.Context, input domain.CaseFileCreate) (*domain.CaseFile, error)
	ListCaseFiles(ctx context.Context, workspaceID int) ([]domain.CaseFile, error)
	DeleteCaseFile(ctx context.Context, id int) error
}

// CaseFileService handles case file metadata operations
type CaseFileService struct {
	caseFiles CaseFileStore
}

// NewCaseFileService creates a new case file service
func NewCaseFileService(caseFiles CaseFileStore) *CaseFileService {
	return &CaseFileService{caseFiles: caseFiles}
}

// Create records case file metadata against a workspace. The
// workspace reference is not validated.
func (s *CaseFileService) Create(ctx context.Context, workspaceID int, input domain.CaseFileCreate) (*domain.CaseFile, error) {
	input.WorkspaceID = workspaceID
	caseFile, err := s.caseFiles.CreateCaseFile(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create case file: %w", err)
	}
	return caseFile, nil
}

// ListByWorkspace retrieves the case files of a workspace.
func (s *CaseFileService) ListByWorkspace(ctx context.Context, workspaceID int) ([]domain.CaseFile, error) {
	caseFiles, err := s.caseFiles.ListCaseFiles(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list case files: %w", err)
	}
	return caseFiles, nil
}

// Delete removes a case file record.
func (s *CaseFileService) Delete(ctx context.Context, id int) error {
	if err := s.caseFiles.DeleteCaseFile(ctx, id); err != nil {
		return fmt.Errorf("failed to delete case file %d: %w", id, err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/lexdesk/lexdesk/internal/domain"
)

// WorkspaceStore is the workspace slice of the entity store.
type WorkspaceStore interface {
	CreateWorkspace(ctx context.Context, input domain.WorkspaceCreate) (*domain.Workspace, error)
	GetWorkspace(ctx context.Context, id int) (*domain.Workspace, error)
	ListWorkspaces(ctx context.Context, userID int) ([]domain.Workspace, error)
	UpdateWorkspace(ctx context.Context, id int, input domain.WorkspaceUpdate) (*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, id int) error
}

// WorkspaceService handles workspace operations
type WorkspaceService struct {
	workspaces WorkspaceStore
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(workspaces WorkspaceStore) *WorkspaceService {
	return &WorkspaceService{workspaces: workspaces}
}

// Create creates a new workspace owned by userID.
func (s *WorkspaceService) Create(ctx context.Context, userID int, input domain.WorkspaceCreate) (*domain.Workspace, error) {
	input.UserID = userID
	workspace, err := s.workspaces.CreateWorkspace(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return workspace, nil
}

// GetByID retrieves a workspace by ID.
func (s *WorkspaceService) GetByID(ctx context.Context, id int) (*domain.Workspace, error) {
	workspace, err := s.workspaces.GetWorkspace(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace %d: %w", id, err)
	}
	return workspace, nil
}

// ListByUser retrieves all workspaces for a user.
func (s *WorkspaceService) ListByUser(ctx context.Context, userID int) ([]domain.Workspace, error) {
	workspaces, err := s.workspaces.ListWorkspaces(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// Update applies a partial update to a workspace.
func (s *WorkspaceService) Update(ctx context.Context, id int, input domain.WorkspaceUpdate) (*domain.Workspace, error) {
	workspace, err := s.workspaces.UpdateWorkspace(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update workspace %d: %w", id, err)
	}
	return workspace, nil
}

// Delete removes a workspace. Its case files are left behind.
func (s *WorkspaceService) Delete(ctx context.Context, id int) error {
	if err := s.workspaces.DeleteWorkspace(ctx, id); err != nil {
		return fmt.Errorf("failed to delete workspace %d: %w", id, err)
	}
	return nil
}

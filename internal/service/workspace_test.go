package service

import (
	"context"
	"testing"

	"github.com/lexdesk/lexdesk/internal/domain"
	"github.com/lexdesk/lexdesk/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceService_Create(t *testing.T) {
	mockStore := new(MockWorkspaceStore)
	svc := NewWorkspaceService(mockStore)
	ctx := context.Background()

	t.Run("forces owner to caller", func(t *testing.T) {
		expected := &domain.Workspace{ID: 1, Name: "Estate of Miller", CaseType: "Probate", UserID: 1}
		mockStore.On("CreateWorkspace", ctx, mock.MatchedBy(func(in domain.WorkspaceCreate) bool {
			return in.UserID == 1
		})).Return(expected, nil)

		workspace, err := svc.Create(ctx, 1, domain.WorkspaceCreate{
			Name:     "Estate of Miller",
			CaseType: "Probate",
			UserID:   42, // payload-supplied owner is ignored
		})
		require.NoError(t, err)
		assert.Equal(t, expected, workspace)

		mockStore.AssertExpectations(t)
	})
}

func TestWorkspaceService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found wraps sentinel", func(t *testing.T) {
		mockStore := new(MockWorkspaceStore)
		mockStore.On("GetWorkspace", ctx, 7).Return(nil, errs.ErrWorkspaceNotFound)

		svc := NewWorkspaceService(mockStore)
		_, err := svc.GetByID(ctx, 7)
		assert.ErrorIs(t, err, errs.ErrWorkspaceNotFound)
	})

	t.Run("success", func(t *testing.T) {
		mockStore := new(MockWorkspaceStore)
		expected := &domain.Workspace{ID: 7, Name: "Estate of Miller"}
		mockStore.On("GetWorkspace", ctx, 7).Return(expected, nil)

		svc := NewWorkspaceService(mockStore)
		workspace, err := svc.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, expected, workspace)
	})
}

func TestWorkspaceService_Update(t *testing.T) {
	mockStore := new(MockWorkspaceStore)
	svc := NewWorkspaceService(mockStore)
	ctx := context.Background()

	input := domain.WorkspaceUpdate{Summary: domain.Ptr("revised")}
	mockStore.On("UpdateWorkspace", ctx, 3, input).Return(nil, errs.ErrWorkspaceNotFound)

	_, err := svc.Update(ctx, 3, input)
	assert.ErrorIs(t, err, errs.ErrWorkspaceNotFound)
}

func TestWorkspaceService_Delete(t *testing.T) {
	mockStore := new(MockWorkspaceStore)
	svc := NewWorkspaceService(mockStore)
	ctx := context.Background()

	mockStore.On("DeleteWorkspace", ctx, 3).Return(nil)

	require.NoError(t, svc.Delete(ctx, 3))
	mockStore.AssertExpectations(t)
}

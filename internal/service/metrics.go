package service

import (
	"context"
	"fmt"

	"github.com/lexdesk/lexdesk/internal/domain"
)

// PlaceholderStats supplies the dashboard counters the store cannot
// derive. The values are presentation stand-ins carried over from the
// design mockups; swap this source out once signed contracts and
// translations are tracked for real.
type PlaceholderStats struct {
	SignedContracts       int
	CompletedTranslations int
}

// DefaultPlaceholderStats matches the numbers the dashboard design
// specifies.
var DefaultPlaceholderStats = PlaceholderStats{
	SignedContracts:       61,
	CompletedTranslations: 18,
}

// MetricsService computes dashboard counters for a user.
type MetricsService struct {
	workspaces  WorkspaceStore
	placeholder PlaceholderStats
}

// NewMetricsService creates a new metrics service
func NewMetricsService(workspaces WorkspaceStore, placeholder PlaceholderStats) *MetricsService {
	return &MetricsService{workspaces: workspaces, placeholder: placeholder}
}

// Dashboard aggregates the four dashboard counters. Workspace totals
// are derived from the store, the other two come from the placeholder
// source.
func (s *MetricsService) Dashboard(ctx context.Context, userID int) (*domain.DashboardMetrics, error) {
	workspaces, err := s.workspaces.ListWorkspaces(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	completed := 0
	for _, workspace := range workspaces {
		if workspace.Status == domain.StatusCompleted {
			completed++
		}
	}

	return &domain.DashboardMetrics{
		TotalWorkspaces:       len(workspaces),
		TotalSignedContracts:  s.placeholder.SignedContracts,
		CompletedProjects:     completed,
		CompletedTranslations: s.placeholder.CompletedTranslations,
	}, nil
}

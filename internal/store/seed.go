package store

import (
	"context"
	"fmt"

	"github.com/lexdesk/lexdesk/internal/domain"
)

// Seed loads the demo user and sample workspace the dashboard expects
// on first launch.
func Seed(ctx context.Context, s *MemStore) error {
	if _, err := s.CreateUser(ctx, domain.UserCreate{
		Username:  "johndoe",
		Password:  "password123",
		Email:     "john.doe@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Role:      domain.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	if _, err := s.CreateWorkspace(ctx, domain.WorkspaceCreate{
		Name:           "Johnson & Partners Merger",
		CaseType:       "Corporate",
		Summary:        domain.Ptr("Merger and acquisition case"),
		Complainant:    domain.Ptr("Johnson LLC"),
		Accused:        domain.Ptr("Partners Inc"),
		Validity:       domain.Ptr("Next Format"),
		Allegations:    domain.Ptr("Corporate merger disputes"),
		FactsSummary:   domain.Ptr("Complex merger case involving multiple stakeholders"),
		DateOfIncident: domain.Ptr("2024-05-03"),
		Representing:   domain.Ptr("Johnson LLC"),
		Client:         domain.Ptr("Johnson LLC"),
		Opponent:       domain.Ptr("Partners Inc"),
		AreaOfLaw:      domain.Ptr("Corporate Law"),
		Timeline:       domain.Ptr("3 Months"),
		Status:         domain.StatusActive,
		UserID:         1,
	}); err != nil {
		return fmt.Errorf("failed to seed sample workspace: %w", err)
	}

	return nil
}

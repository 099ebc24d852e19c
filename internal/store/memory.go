// Package store holds the in-memory entity collections. The store is
// authoritative for the process lifetime only; a restart loses all
// data. That is deliberate, this is a demo-grade backend.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lexdesk/lexdesk/internal/domain"
	"github.com/lexdesk/lexdesk/internal/errs"
)

// Workspaces created without an owner are attributed to the demo user.
const fallbackUserID = 1

// MemStore keeps all entities in maps keyed by monotonically assigned
// integer identifiers. Identifiers are never reused after deletion.
// Every method takes the lock for its whole body, so a single store
// call is the unit of atomicity.
type MemStore struct {
	mu sync.RWMutex

	users      map[int]domain.User
	workspaces map[int]domain.Workspace
	caseFiles  map[int]domain.CaseFile

	nextUserID      int
	nextWorkspaceID int
	nextCaseFileID  int
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		users:           make(map[int]domain.User),
		workspaces:      make(map[int]domain.Workspace),
		caseFiles:       make(map[int]domain.CaseFile),
		nextUserID:      1,
		nextWorkspaceID: 1,
		nextCaseFileID:  1,
	}
}

// CreateUser inserts a user, assigning the next identifier and the
// default role. Username and email uniqueness is not enforced.
func (m *MemStore) CreateUser(ctx context.Context, input domain.UserCreate) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := domain.User{
		ID:        m.nextUserID,
		Username:  input.Username,
		Password:  input.Password,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      role,
		CreatedAt: time.Now(),
	}
	m.nextUserID++
	m.users[user.ID] = user

	return &user, nil
}

// GetUser retrieves a user by ID.
func (m *MemStore) GetUser(ctx context.Context, id int) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username via linear scan.
func (m *MemStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

// CreateWorkspace inserts a workspace. Omitted optional fields are
// stored as nil, status defaults to active and a missing owner falls
// back to the demo user. Creation and update timestamps are equal at
// insert.
func (m *MemStore) CreateWorkspace(ctx context.Context, input domain.WorkspaceCreate) (*domain.Workspace, error) {
	incidentDate, err := parseOptionalDate(input.DateOfIncident)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}
	userID := input.UserID
	if userID == 0 {
		userID = fallbackUserID
	}

	now := time.Now()
	workspace := domain.Workspace{
		ID:             m.nextWorkspaceID,
		Name:           input.Name,
		CaseType:       input.CaseType,
		Summary:        cloneString(input.Summary),
		Complainant:    cloneString(input.Complainant),
		Accused:        cloneString(input.Accused),
		Validity:       cloneString(input.Validity),
		Allegations:    cloneString(input.Allegations),
		FactsSummary:   cloneString(input.FactsSummary),
		DateOfIncident: incidentDate,
		Representing:   cloneString(input.Representing),
		Client:         cloneString(input.Client),
		Opponent:       cloneString(input.Opponent),
		AreaOfLaw:      cloneString(input.AreaOfLaw),
		Timeline:       cloneString(input.Timeline),
		Status:         status,
		UserID:         userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.nextWorkspaceID++
	m.workspaces[workspace.ID] = workspace

	return &workspace, nil
}

// GetWorkspace retrieves a workspace by ID.
func (m *MemStore) GetWorkspace(ctx context.Context, id int) (*domain.Workspace, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	workspace, ok := m.workspaces[id]
	if !ok {
		return nil, errs.ErrWorkspaceNotFound
	}
	return &workspace, nil
}

// ListWorkspaces retrieves all workspaces owned by a user, in
// insertion order.
func (m *MemStore) ListWorkspaces(ctx context.Context, userID int) ([]domain.Workspace, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	workspaces := make([]domain.Workspace, 0)
	for _, workspace := range m.workspaces {
		if workspace.UserID == userID {
			workspaces = append(workspaces, workspace)
		}
	}
	sort.Slice(workspaces, func(i, j int) bool { return workspaces[i].ID < workspaces[j].ID })

	return workspaces, nil
}

// UpdateWorkspace merges a partial update into a stored workspace and
// refreshes the update timestamp. Required scalars keep the stored
// value when the incoming value is nil or zero; optional fields keep
// it only when nil, so an explicit empty string overwrites.
func (m *MemStore) UpdateWorkspace(ctx context.Context, id int, input domain.WorkspaceUpdate) (*domain.Workspace, error) {
	incidentDate, err := parseOptionalDate(input.DateOfIncident)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	workspace, ok := m.workspaces[id]
	if !ok {
		return nil, errs.ErrWorkspaceNotFound
	}

	if input.Name != nil && *input.Name != "" {
		workspace.Name = *input.Name
	}
	if input.CaseType != nil && *input.CaseType != "" {
		workspace.CaseType = *input.CaseType
	}
	if input.Status != nil && *input.Status != "" {
		workspace.Status = *input.Status
	}
	if input.UserID != nil && *input.UserID != 0 {
		workspace.UserID = *input.UserID
	}

	if input.Summary != nil {
		workspace.Summary = cloneString(input.Summary)
	}
	if input.Complainant != nil {
		workspace.Complainant = cloneString(input.Complainant)
	}
	if input.Accused != nil {
		workspace.Accused = cloneString(input.Accused)
	}
	if input.Validity != nil {
		workspace.Validity = cloneString(input.Validity)
	}
	if input.Allegations != nil {
		workspace.Allegations = cloneString(input.Allegations)
	}
	if input.FactsSummary != nil {
		workspace.FactsSummary = cloneString(input.FactsSummary)
	}
	if input.Representing != nil {
		workspace.Representing = cloneString(input.Representing)
	}
	if input.Client != nil {
		workspace.Client = cloneString(input.Client)
	}
	if input.Opponent != nil {
		workspace.Opponent = cloneString(input.Opponent)
	}
	if input.AreaOfLaw != nil {
		workspace.AreaOfLaw = cloneString(input.AreaOfLaw)
	}
	if input.Timeline != nil {
		workspace.Timeline = cloneString(input.Timeline)
	}
	if incidentDate != nil {
		workspace.DateOfIncident = incidentDate
	}

	workspace.UpdatedAt = time.Now()
	m.workspaces[id] = workspace

	return &workspace, nil
}

// DeleteWorkspace removes a workspace. Case files referencing it are
// left in place; there is no cascade.
func (m *MemStore) DeleteWorkspace(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.workspaces[id]; !ok {
		return errs.ErrWorkspaceNotFound
	}
	delete(m.workspaces, id)
	return nil
}

// CreateCaseFile inserts a case file record. The referenced workspace
// is not validated.
func (m *MemStore) CreateCaseFile(ctx context.Context, input domain.CaseFileCreate) (*domain.CaseFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	caseFile := domain.CaseFile{
		ID:          m.nextCaseFileID,
		WorkspaceID: input.WorkspaceID,
		FileName:    input.FileName,
		FileSize:    input.FileSize,
		MimeType:    input.MimeType,
		UploadedAt:  time.Now(),
	}
	m.nextCaseFileID++
	m.caseFiles[caseFile.ID] = caseFile

	return &caseFile, nil
}

// ListCaseFiles retrieves the case files of a workspace, in insertion
// order.
func (m *MemStore) ListCaseFiles(ctx context.Context, workspaceID int) ([]domain.CaseFile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	caseFiles := make([]domain.CaseFile, 0)
	for _, caseFile := range m.caseFiles {
		if caseFile.WorkspaceID == workspaceID {
			caseFiles = append(caseFiles, caseFile)
		}
	}
	sort.Slice(caseFiles, func(i, j int) bool { return caseFiles[i].ID < caseFiles[j].ID })

	return caseFiles, nil
}

// DeleteCaseFile removes a case file record.
func (m *MemStore) DeleteCaseFile(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.caseFiles[id]; !ok {
		return errs.ErrCaseFileNotFound
	}
	delete(m.caseFiles, id)
	return nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := domain.ParseIncidentDate(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidIncidentDate, *s)
	}
	return &t, nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

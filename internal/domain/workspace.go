package domain

import "time"

// Workspace represents a legal case record container. Optional
// descriptive fields are pointers so an unset field serializes as
// null, matching the dashboard wire format.
type Workspace struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	CaseType       string     `json:"caseType"`
	Summary        *string    `json:"summary"`
	Complainant    *string    `json:"complainant"`
	Accused        *string    `json:"accused"`
	Validity       *string    `json:"validity"`
	Allegations    *string    `json:"allegations"`
	FactsSummary   *string    `json:"factsSummary"`
	DateOfIncident *time.Time `json:"dateOfIncident"`
	Representing   *string    `json:"representing"`
	Client         *string    `json:"client"`
	Opponent       *string    `json:"opponent"`
	AreaOfLaw      *string    `json:"areaOfLaw"`
	Timeline       *string    `json:"timeline"`
	Status         string     `json:"status"`
	UserID         int        `json:"userId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// WorkspaceCreate represents workspace creation data. DateOfIncident
// arrives as a date string and is parsed on insert.
type WorkspaceCreate struct {
	Name           string  `json:"name" validate:"required,max=255"`
	CaseType       string  `json:"caseType" validate:"required,max=255"`
	Summary        *string `json:"summary"`
	Complainant    *string `json:"complainant"`
	Accused        *string `json:"accused"`
	Validity       *string `json:"validity"`
	Allegations    *string `json:"allegations"`
	FactsSummary   *string `json:"factsSummary"`
	DateOfIncident *string `json:"dateOfIncident"`
	Representing   *string `json:"representing"`
	Client         *string `json:"client"`
	Opponent       *string `json:"opponent"`
	AreaOfLaw      *string `json:"areaOfLaw"`
	Timeline       *string `json:"timeline"`
	Status         string  `json:"status" validate:"omitempty,max=64"`
	UserID         int     `json:"userId"`
}

// WorkspaceUpdate represents a partial workspace update. A nil field
// keeps the stored value; a non-nil field overwrites it, except that
// the required scalars (name, caseType, status, userId) also fall back
// to the stored value when set to their zero value. The dashboard
// client sends full objects and relies on that fallback.
type WorkspaceUpdate struct {
	Name           *string `json:"name" validate:"omitempty,max=255"`
	CaseType       *string `json:"caseType" validate:"omitempty,max=255"`
	Summary        *string `json:"summary"`
	Complainant    *string `json:"complainant"`
	Accused        *string `json:"accused"`
	Validity       *string `json:"validity"`
	Allegations    *string `json:"allegations"`
	FactsSummary   *string `json:"factsSummary"`
	DateOfIncident *string `json:"dateOfIncident"`
	Representing   *string `json:"representing"`
	Client         *string `json:"client"`
	Opponent       *string `json:"opponent"`
	AreaOfLaw      *string `json:"areaOfLaw"`
	Timeline       *string `json:"timeline"`
	Status         *string `json:"status" validate:"omitempty,max=64"`
	UserID         *int    `json:"userId"`
}

// Workspace status constants
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Incident date layouts accepted on the wire, tried in order.
var incidentDateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseIncidentDate parses a wire-format incident date string.
func ParseIncidentDate(s string) (time.Time, error) {
	var err error
	for _, layout := range incidentDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// Ptr returns a pointer to v. Convenience for building optional fields.
func Ptr[T any](v T) *T {
	return &v
}

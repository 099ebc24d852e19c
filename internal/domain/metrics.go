package domain

// DashboardMetrics holds the four counters the dashboard header shows.
// TotalSignedContracts and CompletedTranslations are placeholder
// values supplied by the metrics service, not derived from the store.
type DashboardMetrics struct {
	TotalWorkspaces       int `json:"totalWorkspaces"`
	TotalSignedContracts  int `json:"totalSignedContracts"`
	CompletedProjects     int `json:"completedProjects"`
	CompletedTranslations int `json:"completedTranslations"`
}

package handler

import (
	"net/http"

	"github.com/lexdesk/lexdesk/internal/api/response"
	"github.com/lexdesk/lexdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// MetricsHandler handles the dashboard metrics endpoint
type MetricsHandler struct {
	metrics    *service.MetricsService
	demoUserID int
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(metrics *service.MetricsService, demoUserID int) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, demoUserID: demoUserID}
}

// Dashboard returns the aggregated dashboard counters for the demo
// user.
func (h *MetricsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.metrics.Dashboard(r.Context(), h.demoUserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate dashboard metrics")
		response.InternalError(w)
		return
	}

	response.OK(w, metrics)
}

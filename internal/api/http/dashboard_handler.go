package http

import (
	"net/http"

	"carservice-backend/internal/service"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
	activitySvc  service.ActivityService
}

func NewDashboardHandler(dashboardSvc service.DashboardService, activitySvc service.ActivityService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, activitySvc: activitySvc}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardSvc.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.activitySvc.Recent(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

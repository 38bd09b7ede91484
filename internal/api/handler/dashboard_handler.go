package handler

import (
	"github.com/gin-gonic/gin"

	"gitops-dashboard/internal/service"
	"gitops-dashboard/pkg/responses"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns the full dashboard snapshot.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	responses.OK(c, h.dashboardService.Snapshot())
}

// GetClusterHealth returns the cluster health gauge.
func (h *DashboardHandler) GetClusterHealth(c *gin.Context) {
	responses.OK(c, h.dashboardService.ClusterHealth())
}

// GetSyncStatus returns the repository-level sync status.
func (h *DashboardHandler) GetSyncStatus(c *gin.Context) {
	responses.OK(c, h.dashboardService.SyncStatus())
}

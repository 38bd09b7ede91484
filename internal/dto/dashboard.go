package dto

import "gitops-dashboard/internal/model"

// DashboardState is the full snapshot pushed to a dashboard when it
// connects and served on the dashboard endpoint.
type DashboardState struct {
	Applications    []*model.Application   `json:"applications"`
	Activities      []*model.Activity      `json:"activities"`
	ClusterHealth   *model.ClusterHealth   `json:"clusterHealth"`
	SyncStatus      *model.SyncStatus      `json:"syncStatus"`
	DeploymentStats *model.DeploymentStats `json:"deploymentStats"`
}

package service

import (
	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/store"
)

// snapshotActivityLimit bounds the activity feed in dashboard
// snapshots. Older entries stay queryable on the activities endpoint.
const snapshotActivityLimit = 10

type DashboardService interface {
	Snapshot() *dto.DashboardState
	ClusterHealth() model.ClusterHealth
	SyncStatus() model.SyncStatus
}

type dashboardService struct {
	store *store.Store
}

func NewDashboardService(s *store.Store) DashboardService {
	return &dashboardService{store: s}
}

// Snapshot assembles the complete dashboard state in one pass.
func (s *dashboardService) Snapshot() *dto.DashboardState {
	health := s.store.ClusterHealth()
	syncStatus := s.store.SyncStatus()
	stats := s.store.DeploymentStats()

	return &dto.DashboardState{
		Applications:    s.store.ListApplications(),
		Activities:      s.store.ListActivities(snapshotActivityLimit),
		ClusterHealth:   &health,
		SyncStatus:      &syncStatus,
		DeploymentStats: &stats,
	}
}

func (s *dashboardService) ClusterHealth() model.ClusterHealth {
	return s.store.ClusterHealth()
}

func (s *dashboardService) SyncStatus() model.SyncStatus {
	return s.store.SyncStatus()
}

package store

import (
	"time"

	"github.com/samber/lo"

	"gitops-dashboard/internal/model"
	"gitops-dashboard/pkg/constants"
)

// ClusterHealth returns the stored singleton.
func (s *Store) ClusterHealth() model.ClusterHealth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clusterHealth
}

// SetClusterHealth overwrites the singleton. Used by the scheduler's
// periodic derivation refresh.
func (s *Store) SetClusterHealth(health model.ClusterHealth) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clusterHealth = health
}

// SyncStatus returns the stored singleton.
func (s *Store) SyncStatus() model.SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncStatus
}

// UpdateSyncStatus overwrites the singleton, always stamping
// lastSyncTime; the previous revision is preserved when none is
// supplied.
func (s *Store) UpdateSyncStatus(synced bool, revision *string) model.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if revision == nil {
		revision = s.syncStatus.Revision
	}
	s.syncStatus = model.SyncStatus{
		Synced:       synced,
		LastSyncTime: &now,
		Revision:     revision,
	}
	return s.syncStatus
}

// DeploymentStats recomputes the counters by scanning the deployments
// table. "Today" means startedAt at or after local midnight of now; the
// day-rollover boundary is deliberately naive (no timezone handling
// beyond the local calendar day).
func (s *Store) DeploymentStats() model.DeploymentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	all := lo.Values(s.deployments)
	byStatus := lo.CountValuesBy(all, func(d *model.Deployment) string { return d.Status })

	today := lo.CountBy(all, func(d *model.Deployment) bool {
		return !d.StartedAt.Before(midnight)
	})

	return model.DeploymentStats{
		Today:   today,
		Total:   len(all),
		Success: byStatus[constants.DeploymentStatusSuccessful],
		Pending: byStatus[constants.DeploymentStatusPending],
		Failed:  byStatus[constants.DeploymentStatusFailed],
	}
}

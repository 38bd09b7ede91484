package store

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"gitops-dashboard/internal/model"
)

// CreateDeployment assigns a fresh id and stamps startedAt; finishedAt
// always starts nil, whatever the caller supplied.
func (s *Store) CreateDeployment(deployment *model.Deployment) *model.Deployment {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := *deployment
	d.ID = s.deploymentID
	s.deploymentID++
	d.StartedAt = s.now()
	d.FinishedAt = nil
	d.Details = cloneDetails(deployment.Details)
	s.deployments[d.ID] = &d

	out := d
	out.Details = cloneDetails(d.Details)
	return &out
}

// GetDeployment returns the deployment or ok=false.
func (s *Store) GetDeployment(id int64) (*model.Deployment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.deployments[id]
	if !ok {
		return nil, false
	}
	out := *d
	out.Details = cloneDetails(d.Details)
	return &out, true
}

// ListDeployments returns deployments sorted by startedAt descending,
// optionally filtered by applicationId.
func (s *Store) ListDeployments(applicationID *int64) []*model.Deployment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*model.Deployment, 0, len(s.deployments))
	for _, d := range s.deployments {
		out := *d
		out.Details = cloneDetails(d.Details)
		all = append(all, &out)
	}

	if applicationID != nil {
		all = lo.Filter(all, func(d *model.Deployment, _ int) bool {
			return d.ApplicationID == *applicationID
		})
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].StartedAt.After(all[j].StartedAt)
	})
	return all
}

// UpdateDeploymentStatus completes a deployment: the status and
// finishedAt are set, the message only when supplied. Once set,
// finishedAt is never unset.
func (s *Store) UpdateDeploymentStatus(id int64, status string, finishedAt time.Time, message *string) (*model.Deployment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deployments[id]
	if !ok {
		return nil, false
	}
	d.Status = status
	d.FinishedAt = &finishedAt
	if message != nil {
		d.Message = message
	}

	out := *d
	out.Details = cloneDetails(d.Details)
	return &out, true
}

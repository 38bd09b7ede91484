package store

import (
	"sort"

	"gitops-dashboard/internal/model"
	"gitops-dashboard/pkg/constants"
)

// CreateApplication assigns a fresh id and applies the schema defaults
// for status, health and syncStatus. RepoID is stored unchecked.
func (s *Store) CreateApplication(app *model.Application) *model.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := *app
	a.ID = s.appID
	s.appID++
	if a.Status == "" {
		a.Status = constants.DefaultAppStatus
	}
	if a.Health == "" {
		a.Health = constants.DefaultAppHealth
	}
	if a.SyncStatus == "" {
		a.SyncStatus = constants.SyncStatusOutOfSync
	}
	s.applications[a.ID] = &a

	out := a
	return &out
}

// GetApplication returns the application or ok=false.
func (s *Store) GetApplication(id int64) (*model.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, false
	}
	out := *a
	return &out, true
}

// GetApplicationByName scans for an application by name. Name
// uniqueness is intended but not enforced; the first match wins.
func (s *Store) GetApplicationByName(name string) (*model.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.applications {
		if a.Name == name {
			out := *a
			return &out, true
		}
	}
	return nil, false
}

// ListApplications returns all applications ordered by id.
func (s *Store) ListApplications() []*model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]*model.Application, 0, len(s.applications))
	for _, a := range s.applications {
		out := *a
		apps = append(apps, &out)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps
}

// UpdateApplication shallow-merges the patch into the stored record.
// There is no concurrency check: patches apply in arrival order and the
// last write wins. Returns ok=false when the id is unknown.
func (s *Store) UpdateApplication(id int64, patch *model.ApplicationPatch) (*model.Application, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, false
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.RepoID != nil {
		a.RepoID = *patch.RepoID
	}
	if patch.Path != nil {
		a.Path = *patch.Path
	}
	if patch.Environment != nil {
		a.Environment = *patch.Environment
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Health != nil {
		a.Health = *patch.Health
	}
	if patch.Version != nil {
		a.Version = patch.Version
	}
	if patch.Pods != nil {
		a.Pods = patch.Pods
	}
	if patch.SyncStatus != nil {
		a.SyncStatus = *patch.SyncStatus
	}
	if patch.LastSyncedAt != nil {
		a.LastSyncedAt = patch.LastSyncedAt
	}

	out := *a
	return &out, true
}

// MarkApplicationSynced flips the application to Synced and stamps
// lastSyncedAt from the store clock. Returns ok=false when the id is
// unknown.
func (s *Store) MarkApplicationSynced(id int64) (*model.Application, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	a.SyncStatus = constants.SyncStatusSynced
	a.LastSyncedAt = &now

	out := *a
	return &out, true
}

// DeleteApplication removes the record and reports whether it existed.
func (s *Store) DeleteApplication(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.applications[id]
	delete(s.applications, id)
	return ok
}

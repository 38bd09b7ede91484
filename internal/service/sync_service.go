package service

import (
	"fmt"

	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/internal/websocket"
	"gitops-dashboard/pkg/constants"
	"gitops-dashboard/pkg/responses"
)

// SyncService serves sync requests from both the REST API and the
// websocket command channel, so both paths observe identical behavior.
type SyncService interface {
	SyncApplication(applicationID int64, user string) (*model.SyncResult, error)
	ForceSync(user string, revision *string) (*model.SyncResult, error)
}

type syncService struct {
	store       *store.Store
	broadcaster Broadcaster
}

func NewSyncService(s *store.Store, b Broadcaster) SyncService {
	return &syncService{store: s, broadcaster: b}
}

// SyncApplication marks one application as synced against its
// repository. Unknown ids fail without recording an activity or
// emitting any event.
func (s *syncService) SyncApplication(applicationID int64, user string) (*model.SyncResult, error) {
	if user == "" {
		user = constants.SystemUser
	}

	app, ok := s.store.MarkApplicationSynced(applicationID)
	if !ok {
		return nil, responses.New(responses.CodeNotFound, fmt.Sprintf("application %d not found", applicationID))
	}

	s.store.CreateActivity(&model.Activity{
		Type:          constants.ActivityTypeSync,
		ApplicationID: &app.ID,
		Description:   fmt.Sprintf("Application %s synced", app.Name),
		Details:       map[string]interface{}{"user": user},
	})

	s.broadcaster.Publish(websocket.EventApplicationUpdated, app)
	s.broadcaster.Publish(websocket.EventActivitiesUpdated, s.store.ListActivities(snapshotActivityLimit))

	return &model.SyncResult{
		Success: true,
		Message: fmt.Sprintf("Application %s synced successfully", app.Name),
	}, nil
}

// ForceSync refreshes the repository-level sync status. Per-application
// state is left untouched; individual applications converge through
// their own sync operations.
func (s *syncService) ForceSync(user string, revision *string) (*model.SyncResult, error) {
	if user == "" {
		user = constants.SystemUser
	}

	status := s.store.UpdateSyncStatus(true, revision)

	s.store.CreateActivity(&model.Activity{
		Type:        constants.ActivityTypeSync,
		Description: "Force sync initiated for all applications",
		Details:     map[string]interface{}{"user": user},
	})

	s.broadcaster.Publish(websocket.EventSyncStatusUpdated, status)
	s.broadcaster.Publish(websocket.EventActivitiesUpdated, s.store.ListActivities(snapshotActivityLimit))

	return &model.SyncResult{
		Success: true,
		Message: "Force sync initiated for all applications",
	}, nil
}

package service

import (
	"fmt"

	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/internal/websocket"
	"gitops-dashboard/pkg/constants"
	"gitops-dashboard/pkg/responses"
)

type ApplicationService interface {
	List() []*model.Application
	Get(id int64) (*model.Application, error)
	Create(req *dto.CreateApplicationRequest) (*model.Application, error)
	Update(id int64, req *dto.UpdateApplicationRequest) (*model.Application, error)
	Delete(id int64) error
}

type applicationService struct {
	store       *store.Store
	broadcaster Broadcaster
}

func NewApplicationService(s *store.Store, b Broadcaster) ApplicationService {
	return &applicationService{store: s, broadcaster: b}
}

func (s *applicationService) List() []*model.Application {
	return s.store.ListApplications()
}

func (s *applicationService) Get(id int64) (*model.Application, error) {
	app, ok := s.store.GetApplication(id)
	if !ok {
		return nil, responses.New(responses.CodeNotFound, fmt.Sprintf("application %d not found", id))
	}
	return app, nil
}

// Create registers an application. RepoID is a soft reference and is
// not checked against the repositories table.
func (s *applicationService) Create(req *dto.CreateApplicationRequest) (*model.Application, error) {
	app := s.store.CreateApplication(&model.Application{
		Name:        req.Name,
		RepoID:      req.RepoID,
		Path:        req.Path,
		Environment: req.Environment,
		Status:      req.Status,
		Health:      req.Health,
		Version:     req.Version,
		Pods:        req.Pods,
		SyncStatus:  req.SyncStatus,
	})

	activity := s.store.CreateActivity(&model.Activity{
		Type:          constants.ActivityTypeApplication,
		ApplicationID: &app.ID,
		Description:   fmt.Sprintf("Application %s created", app.Name),
	})

	s.broadcaster.Publish(websocket.EventApplicationCreated, app)
	s.broadcaster.Publish(websocket.EventActivityCreated, activity)

	return app, nil
}

func (s *applicationService) Update(id int64, req *dto.UpdateApplicationRequest) (*model.Application, error) {
	app, ok := s.store.UpdateApplication(id, &model.ApplicationPatch{
		Name:        req.Name,
		RepoID:      req.RepoID,
		Path:        req.Path,
		Environment: req.Environment,
		Status:      req.Status,
		Health:      req.Health,
		Version:     req.Version,
		Pods:        req.Pods,
		SyncStatus:  req.SyncStatus,
	})
	if !ok {
		return nil, responses.New(responses.CodeNotFound, fmt.Sprintf("application %d not found", id))
	}

	activity := s.store.CreateActivity(&model.Activity{
		Type:          constants.ActivityTypeApplication,
		ApplicationID: &app.ID,
		Description:   fmt.Sprintf("Application %s updated", app.Name),
		Details:       map[string]interface{}{"changes": changedFields(req)},
	})

	s.broadcaster.Publish(websocket.EventApplicationUpdated, app)
	s.broadcaster.Publish(websocket.EventActivityCreated, activity)

	return app, nil
}

// changedFields collects the fields present in a partial update, keyed
// by their wire names, for the audit trail.
func changedFields(req *dto.UpdateApplicationRequest) map[string]interface{} {
	changes := make(map[string]interface{})
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.RepoID != nil {
		changes["repoId"] = *req.RepoID
	}
	if req.Path != nil {
		changes["path"] = *req.Path
	}
	if req.Environment != nil {
		changes["environment"] = *req.Environment
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if req.Health != nil {
		changes["health"] = *req.Health
	}
	if req.Version != nil {
		changes["version"] = *req.Version
	}
	if req.Pods != nil {
		changes["pods"] = *req.Pods
	}
	if req.SyncStatus != nil {
		changes["syncStatus"] = *req.SyncStatus
	}
	return changes
}

func (s *applicationService) Delete(id int64) error {
	app, ok := s.store.GetApplication(id)
	if !ok {
		return responses.New(responses.CodeNotFound, fmt.Sprintf("application %d not found", id))
	}

	s.store.DeleteApplication(id)

	// The record is gone, so the activity keeps the id for audit trails.
	activity := s.store.CreateActivity(&model.Activity{
		Type:          constants.ActivityTypeApplication,
		ApplicationID: &app.ID,
		Description:   fmt.Sprintf("Application %s deleted", app.Name),
	})

	s.broadcaster.Publish(websocket.EventApplicationDeleted, map[string]int64{"id": id})
	s.broadcaster.Publish(websocket.EventActivityCreated, activity)

	return nil
}

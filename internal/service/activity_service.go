package service

import (
	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/internal/websocket"
)

type ActivityService interface {
	List(limit int) []*model.Activity
	Create(req *dto.CreateActivityRequest) *model.Activity
	Record(activity *model.Activity) *model.Activity
}

type activityService struct {
	store       *store.Store
	broadcaster Broadcaster
}

func NewActivityService(s *store.Store, b Broadcaster) ActivityService {
	return &activityService{store: s, broadcaster: b}
}

func (s *activityService) List(limit int) []*model.Activity {
	return s.store.ListActivities(limit)
}

// Create records an externally reported activity. Cross-references are
// soft and not checked against the other tables.
func (s *activityService) Create(req *dto.CreateActivityRequest) *model.Activity {
	return s.Record(&model.Activity{
		Type:          req.Type,
		UserID:        req.UserID,
		ApplicationID: req.ApplicationID,
		DeploymentID:  req.DeploymentID,
		Description:   req.Description,
		Details:       req.Details,
	})
}

// Record appends a prebuilt activity and broadcasts it.
func (s *activityService) Record(activity *model.Activity) *model.Activity {
	created := s.store.CreateActivity(activity)
	s.broadcaster.Publish(websocket.EventActivityCreated, created)
	return created
}

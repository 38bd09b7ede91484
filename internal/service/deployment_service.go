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

type DeploymentService interface {
	List(applicationID *int64) []*model.Deployment
	Get(id int64) (*model.Deployment, error)
	Create(req *dto.CreateDeploymentRequest) (*model.Deployment, error)
	Stats() model.DeploymentStats
}

type deploymentService struct {
	store       *store.Store
	broadcaster Broadcaster
}

func NewDeploymentService(s *store.Store, b Broadcaster) DeploymentService {
	return &deploymentService{store: s, broadcaster: b}
}

func (s *deploymentService) List(applicationID *int64) []*model.Deployment {
	return s.store.ListDeployments(applicationID)
}

func (s *deploymentService) Get(id int64) (*model.Deployment, error) {
	deployment, ok := s.store.GetDeployment(id)
	if !ok {
		return nil, responses.New(responses.CodeNotFound, fmt.Sprintf("deployment %d not found", id))
	}
	return deployment, nil
}

// Create records a deployment. ApplicationID is a soft reference and
// is not checked against the applications table.
func (s *deploymentService) Create(req *dto.CreateDeploymentRequest) (*model.Deployment, error) {
	status := req.Status
	if status == "" {
		status = constants.DeploymentStatusPending
	}
	initiatedBy := req.InitiatedBy
	if initiatedBy == "" {
		initiatedBy = constants.SystemUser
	}

	deployment := s.store.CreateDeployment(&model.Deployment{
		ApplicationID: req.ApplicationID,
		Revision:      req.Revision,
		Status:        status,
		InitiatedBy:   initiatedBy,
		Message:       req.Message,
		Details:       req.Details,
	})

	activity := s.store.CreateActivity(&model.Activity{
		Type:          constants.ActivityTypeDeployment,
		ApplicationID: &deployment.ApplicationID,
		DeploymentID:  &deployment.ID,
		Description:   fmt.Sprintf("Deployment initiated for application %d", deployment.ApplicationID),
	})

	s.broadcaster.Publish(websocket.EventDeploymentCreated, deployment)
	s.broadcaster.Publish(websocket.EventActivityCreated, activity)

	return deployment, nil
}

func (s *deploymentService) Stats() model.DeploymentStats {
	return s.store.DeploymentStats()
}

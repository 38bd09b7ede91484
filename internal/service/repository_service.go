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

type RepositoryService interface {
	List() []*model.Repository
	Get(id int64) (*model.Repository, error)
	Create(req *dto.CreateRepositoryRequest) (*model.Repository, error)
	Update(id int64, req *dto.UpdateRepositoryRequest) (*model.Repository, error)
	Delete(id int64) error
}

type repositoryService struct {
	store       *store.Store
	broadcaster Broadcaster
}

func NewRepositoryService(s *store.Store, b Broadcaster) RepositoryService {
	return &repositoryService{store: s, broadcaster: b}
}

func (s *repositoryService) List() []*model.Repository {
	return s.store.ListRepositories()
}

func (s *repositoryService) Get(id int64) (*model.Repository, error) {
	repo, ok := s.store.GetRepository(id)
	if !ok {
		return nil, responses.New(responses.CodeNotFound, fmt.Sprintf("repository %d not found", id))
	}
	return repo, nil
}

func (s *repositoryService) Create(req *dto.CreateRepositoryRequest) (*model.Repository, error) {
	repo := s.store.CreateRepository(&model.Repository{
		Name:   req.Name,
		URL:    req.URL,
		Branch: req.Branch,
	})

	activity := s.store.CreateActivity(&model.Activity{
		Type:        constants.ActivityTypeRepository,
		Description: fmt.Sprintf("Repository %s created", repo.Name),
	})

	s.broadcaster.Publish(websocket.EventRepositoryCreated, repo)
	s.broadcaster.Publish(websocket.EventActivityCreated, activity)

	return repo, nil
}

func (s *repositoryService) Update(id int64, req *dto.UpdateRepositoryRequest) (*model.Repository, error) {
	repo, ok := s.store.UpdateRepository(id, &model.RepositoryPatch{
		Name:   req.Name,
		URL:    req.URL,
		Branch: req.Branch,
	})
	if !ok {
		return nil, responses.New(responses.CodeNotFound, fmt.Sprintf("repository %d not found", id))
	}

	s.store.CreateActivity(&model.Activity{
		Type:        constants.ActivityTypeRepository,
		Description: fmt.Sprintf("Repository %s updated", repo.Name),
	})

	return repo, nil
}

func (s *repositoryService) Delete(id int64) error {
	repo, ok := s.store.GetRepository(id)
	if !ok {
		return responses.New(responses.CodeNotFound, fmt.Sprintf("repository %d not found", id))
	}

	s.store.DeleteRepository(id)

	s.store.CreateActivity(&model.Activity{
		Type:        constants.ActivityTypeRepository,
		Description: fmt.Sprintf("Repository %s deleted", repo.Name),
	})

	return nil
}

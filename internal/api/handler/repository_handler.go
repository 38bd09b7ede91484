package handler

import (
	"github.com/gin-gonic/gin"

	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/service"
	"gitops-dashboard/pkg/responses"
	"gitops-dashboard/pkg/utils"
)

type RepositoryHandler struct {
	repositoryService service.RepositoryService
}

func NewRepositoryHandler(repositoryService service.RepositoryService) *RepositoryHandler {
	return &RepositoryHandler{repositoryService: repositoryService}
}

func (h *RepositoryHandler) List(c *gin.Context) {
	responses.OK(c, h.repositoryService.List())
}

func (h *RepositoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	repo, err := h.repositoryService.Get(id)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, repo)
}

func (h *RepositoryHandler) Create(c *gin.Context) {
	var req dto.CreateRepositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, utils.FormatValidationError(err), utils.ValidationFields(err))
		return
	}

	repo, err := h.repositoryService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, repo)
}

func (h *RepositoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRepositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, utils.FormatValidationError(err), utils.ValidationFields(err))
		return
	}

	repo, err := h.repositoryService.Update(id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, repo)
}

func (h *RepositoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.repositoryService.Delete(id); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/service"
	"gitops-dashboard/pkg/responses"
	"gitops-dashboard/pkg/utils"
)

type DeploymentHandler struct {
	deploymentService service.DeploymentService
}

func NewDeploymentHandler(deploymentService service.DeploymentService) *DeploymentHandler {
	return &DeploymentHandler{deploymentService: deploymentService}
}

// List returns deployments, optionally filtered by applicationId.
func (h *DeploymentHandler) List(c *gin.Context) {
	var applicationID *int64
	if raw := c.Query("applicationId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			responses.BadRequest(c, "invalid applicationId parameter", nil)
			return
		}
		applicationID = &id
	}

	responses.OK(c, h.deploymentService.List(applicationID))
}

func (h *DeploymentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deployment, err := h.deploymentService.Get(id)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, deployment)
}

func (h *DeploymentHandler) Create(c *gin.Context) {
	var req dto.CreateDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, utils.FormatValidationError(err), utils.ValidationFields(err))
		return
	}

	deployment, err := h.deploymentService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, deployment)
}

// Stats returns the aggregate deployment counters.
func (h *DeploymentHandler) Stats(c *gin.Context) {
	responses.OK(c, h.deploymentService.Stats())
}

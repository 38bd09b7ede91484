package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/service"
	"gitops-dashboard/pkg/responses"
	"gitops-dashboard/pkg/utils"
)

type ApplicationHandler struct {
	applicationService service.ApplicationService
}

func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// List returns all applications.
func (h *ApplicationHandler) List(c *gin.Context) {
	responses.OK(c, h.applicationService.List())
}

// Get returns one application by id.
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	app, err := h.applicationService.Get(id)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, app)
}

// Create registers a new application.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, utils.FormatValidationError(err), utils.ValidationFields(err))
		return
	}

	app, err := h.applicationService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, app)
}

// Update applies a partial update to an application.
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, utils.FormatValidationError(err), utils.ValidationFields(err))
		return
	}

	app, err := h.applicationService.Update(id, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, app)
}

// Delete removes an application.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.applicationService.Delete(id); err != nil {
		responses.Error(c, err)
		return
	}
	responses.NoContent(c)
}

// pathID parses a numeric path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		responses.BadRequest(c, "invalid "+name+" parameter", nil)
		return 0, false
	}
	return id, true
}

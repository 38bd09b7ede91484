package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/service"
	"gitops-dashboard/pkg/responses"
	"gitops-dashboard/pkg/utils"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List returns activities newest first. Without a limit (or with
// limit=0) the full trail is returned.
func (h *ActivityHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			responses.BadRequest(c, "invalid limit parameter", nil)
			return
		}
		limit = parsed
	}

	responses.OK(c, h.activityService.List(limit))
}

// Create records an externally reported activity.
func (h *ActivityHandler) Create(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, utils.FormatValidationError(err), utils.ValidationFields(err))
		return
	}

	responses.Created(c, h.activityService.Create(&req))
}

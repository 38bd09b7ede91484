package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gitops-dashboard/internal/api/middleware"
	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/service"
	"gitops-dashboard/pkg/responses"
	"gitops-dashboard/pkg/utils"
)

type SyncHandler struct {
	syncService service.SyncService
}

func NewSyncHandler(syncService service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// SyncApplication triggers a sync of one application.
func (h *SyncHandler) SyncApplication(c *gin.Context) {
	id, ok := pathID(c, "applicationId")
	if !ok {
		return
	}

	result, err := h.syncService.SyncApplication(id, requestUser(c))
	if err != nil {
		// Sync failures keep the {success, message} shape.
		var appErr *responses.AppError
		if errors.As(err, &appErr) && appErr.Code == responses.CodeNotFound {
			c.JSON(http.StatusNotFound, model.SyncResult{Success: false, Message: appErr.Message})
			return
		}
		responses.Error(c, err)
		return
	}
	responses.OK(c, result)
}

// ForceSync triggers a repository-wide sync.
func (h *SyncHandler) ForceSync(c *gin.Context) {
	var req dto.ForceSyncRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, utils.FormatValidationError(err), utils.ValidationFields(err))
			return
		}
	}

	result, err := h.syncService.ForceSync(requestUser(c), req.Revision)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, result)
}

// requestUser reports the authenticated user when present. The sync
// endpoints are open, so most requests record the system actor.
func requestUser(c *gin.Context) string {
	if username, ok := c.Get(middleware.ContextUsername); ok {
		if s, ok := username.(string); ok {
			return s
		}
	}
	return ""
}

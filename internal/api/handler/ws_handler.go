package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"go.uber.org/zap"

	"gitops-dashboard/internal/pkg/logger"
	"gitops-dashboard/internal/service"
	"gitops-dashboard/internal/websocket"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

// WSHandler upgrades dashboard connections and routes their commands
// into the sync service.
type WSHandler struct {
	hub              *websocket.Hub
	dashboardService service.DashboardService
	syncService      service.SyncService
}

func NewWSHandler(hub *websocket.Hub, dashboardService service.DashboardService, syncService service.SyncService) *WSHandler {
	return &WSHandler{
		hub:              hub,
		dashboardService: dashboardService,
		syncService:      syncService,
	}
}

// Serve upgrades the connection, delivers the state snapshot, then
// joins the client to the broadcast set. The snapshot is queued before
// registration, so it always reaches the wire ahead of any broadcast.
func (h *WSHandler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := websocket.NewClient(h.hub, conn, h)

	snapshot, err := json.Marshal(websocket.Message{
		Type: websocket.EventInitialState,
		Data: h.dashboardService.Snapshot(),
	})
	if err != nil {
		logger.Error("marshal initial state failed", zap.Error(err))
		conn.Close()
		return
	}
	client.Enqueue(snapshot)

	h.hub.Register(client)
	client.Start()
}

func (h *WSHandler) HandleSyncApplication(cmd websocket.SyncApplicationCommand) {
	if _, err := h.syncService.SyncApplication(cmd.ApplicationID, cmd.User); err != nil {
		logger.Warn("websocket sync command failed",
			zap.Int64("applicationId", cmd.ApplicationID), zap.Error(err))
	}
}

func (h *WSHandler) HandleForceSync(cmd websocket.ForceSyncCommand) {
	if _, err := h.syncService.ForceSync(cmd.User, cmd.Revision); err != nil {
		logger.Warn("websocket force sync command failed", zap.Error(err))
	}
}

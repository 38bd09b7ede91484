package websocket

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"gitops-dashboard/internal/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 256
)

// Inbound command types accepted from dashboards.
const (
	CommandSyncApplication = "syncApplication"
	CommandForceSync       = "forceSync"
)

// InboundMessage is the wire envelope for client commands.
type InboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// SyncApplicationCommand requests a sync of one application.
type SyncApplicationCommand struct {
	ApplicationID int64  `json:"applicationId"`
	User          string `json:"user"`
}

// ForceSyncCommand requests a repository-wide sync.
type ForceSyncCommand struct {
	User     string  `json:"user"`
	Revision *string `json:"revision"`
}

// CommandHandler receives commands parsed off a client connection.
type CommandHandler interface {
	HandleSyncApplication(cmd SyncApplicationCommand)
	HandleForceSync(cmd ForceSyncCommand)
}

// Client is one websocket connection. Writes go through the buffered
// send channel so the hub never blocks on a slow peer.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	commands CommandHandler
}

func NewClient(hub *Hub, conn *websocket.Conn, commands CommandHandler) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		commands: commands,
	}
}

// Enqueue queues a payload for this client only. It is used to deliver
// the initial state snapshot before the client joins the broadcast set,
// so the snapshot always precedes any broadcast event on the wire.
func (c *Client) Enqueue(payload []byte) bool {
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// Start launches the read and write pumps.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

// readPump reads inbound commands until the connection drops.
// Malformed frames are logged and dropped, the connection stays up.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		c.dispatch(raw)
	}
}

func (c *Client) dispatch(raw []byte) {
	var msg InboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Warn("discarding malformed websocket frame", zap.Error(err))
		return
	}

	switch msg.Type {
	case CommandSyncApplication:
		var cmd SyncApplicationCommand
		if err := json.Unmarshal(msg.Data, &cmd); err != nil {
			logger.Warn("discarding malformed syncApplication command", zap.Error(err))
			return
		}
		c.commands.HandleSyncApplication(cmd)
	case CommandForceSync:
		var cmd ForceSyncCommand
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &cmd); err != nil {
				logger.Warn("discarding malformed forceSync command", zap.Error(err))
				return
			}
		}
		c.commands.HandleForceSync(cmd)
	default:
		logger.Debug("ignoring unknown websocket command", zap.String("type", msg.Type))
	}
}

// writePump flushes the send channel and keeps the connection alive
// with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

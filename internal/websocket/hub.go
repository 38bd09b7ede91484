package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"gitops-dashboard/internal/pkg/logger"
)

// Event types pushed to connected dashboards.
const (
	EventInitialState         = "initialState"
	EventApplicationCreated   = "applicationCreated"
	EventApplicationUpdated   = "applicationUpdated"
	EventApplicationDeleted   = "applicationDeleted"
	EventRepositoryCreated    = "repositoryCreated"
	EventDeploymentCreated    = "deploymentCreated"
	EventActivityCreated      = "activityCreated"
	EventActivitiesUpdated    = "activitiesUpdated"
	EventSyncStatusUpdated    = "syncStatusUpdated"
	EventClusterHealthUpdated = "clusterHealthUpdated"
)

// Message is the wire envelope for every outbound event.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Hub fans events out to every connected client. Slow clients never
// block the hub: a client whose send buffer is full is evicted.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool

	unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run processes unregistrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logger.Debug("websocket client unregistered", zap.Int("clients", h.ClientCount()))
		case payload := <-h.broadcast:
			h.fanOut(payload)
		}
	}
}

// Publish marshals an event envelope and queues it for broadcast.
// Delivery is at-least-once per connected client; if the hub queue is
// full the event is dropped rather than blocking the caller.
func (h *Hub) Publish(eventType string, data interface{}) {
	payload, err := json.Marshal(Message{Type: eventType, Data: data})
	if err != nil {
		logger.Error("marshal websocket event failed",
			zap.String("type", eventType), zap.Error(err))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		logger.Warn("websocket broadcast queue full, dropping event",
			zap.String("type", eventType))
	}
}

func (h *Hub) fanOut(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// Client cannot keep up, evict it.
			delete(h.clients, client)
			close(client.send)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
}

// Register adds a client to the broadcast set. The insert is
// synchronous: once Register returns, the client receives every
// subsequent broadcast.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
	logger.Debug("websocket client registered", zap.Int("clients", h.ClientCount()))
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

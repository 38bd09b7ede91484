package service

// Broadcaster pushes events to connected dashboards. The websocket hub
// satisfies this; tests substitute a recording fake.
type Broadcaster interface {
	Publish(eventType string, data interface{})
}

// NopBroadcaster discards every event.
type NopBroadcaster struct{}

func (NopBroadcaster) Publish(string, interface{}) {}

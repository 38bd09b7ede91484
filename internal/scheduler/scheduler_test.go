package scheduler

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/pkg/config"
	"gitops-dashboard/internal/pkg/logger"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/internal/websocket"
)

func TestMain(m *testing.M) {
	if err := logger.Init(&config.LogConfig{Level: "error", Format: "console", Output: "stdout"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type recordingBroadcaster struct {
	events []string
	data   []interface{}
}

func (b *recordingBroadcaster) Publish(eventType string, data interface{}) {
	b.events = append(b.events, eventType)
	b.data = append(b.data, data)
}

func seedApps(s *store.Store, healths ...string) {
	for _, h := range healths {
		s.CreateApplication(&model.Application{
			Name: h, RepoID: 1, Path: ".", Environment: "test", Health: h,
		})
	}
}

func TestRefreshClusterHealth(t *testing.T) {
	s := store.New()
	b := &recordingBroadcaster{}
	sched := New(s, b, &config.ClusterConfig{HealthCron: "@every 1m", HealthyThreshold: 90})
	seedApps(s, "Healthy", "Healthy", "Healthy", "Degraded")

	sched.refreshClusterHealth()

	health := s.ClusterHealth()
	assert.False(t, health.Healthy)
	assert.InDelta(t, 75.0, health.Percentage, 0.001)
	// Trend against the seeded 98.7 baseline.
	assert.InDelta(t, -23.7, health.Trend, 0.001)

	require.Len(t, b.events, 1)
	assert.Equal(t, websocket.EventClusterHealthUpdated, b.events[0])
}

func TestRefreshClusterHealthAboveThreshold(t *testing.T) {
	s := store.New()
	sched := New(s, &recordingBroadcaster{}, &config.ClusterConfig{HealthyThreshold: 90})
	seedApps(s, "Healthy", "healthy")

	sched.refreshClusterHealth()

	health := s.ClusterHealth()
	assert.True(t, health.Healthy)
	assert.InDelta(t, 100.0, health.Percentage, 0.001)
}

func TestRefreshClusterHealthKeepsGaugeWhenEmpty(t *testing.T) {
	s := store.New()
	b := &recordingBroadcaster{}
	sched := New(s, b, &config.ClusterConfig{HealthyThreshold: 90})

	sched.refreshClusterHealth()

	health := s.ClusterHealth()
	assert.InDelta(t, 98.7, health.Percentage, 0.001)
	assert.Empty(t, b.events)
}

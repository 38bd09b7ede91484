package service

import (
	"os"
	"testing"

	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/pkg/config"
	"gitops-dashboard/internal/store"
)

func TestMain(m *testing.M) {
	config.GlobalConfig = &config.Config{
		Auth: config.AuthConfig{
			JWT: config.JWTConfig{
				Secret:             "test-secret",
				AccessTokenExpire:  3600,
				RefreshTokenExpire: 7200,
			},
		},
	}
	os.Exit(m.Run())
}

// recordingBroadcaster captures published events for assertions.
type recordingBroadcaster struct {
	events []publishedEvent
}

type publishedEvent struct {
	Type string
	Data interface{}
}

func (b *recordingBroadcaster) Publish(eventType string, data interface{}) {
	b.events = append(b.events, publishedEvent{Type: eventType, Data: data})
}

func (b *recordingBroadcaster) types() []string {
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

// seedApp creates a repository and one application, returning the app.
func seedApp(s *store.Store) *model.Application {
	s.CreateRepository(&model.Repository{Name: "infra", URL: "https://example.com/infra.git"})
	return s.CreateApplication(&model.Application{
		Name:        "frontend",
		RepoID:      1,
		Path:        "./frontend",
		Environment: "Production",
	})
}

func newCreateAppRequest() *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		Name:        "backend",
		RepoID:      1,
		Path:        "./backend",
		Environment: "Production",
	}
}

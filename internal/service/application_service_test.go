package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/internal/websocket"
	"gitops-dashboard/pkg/constants"
)

func TestApplicationCreateAllowsUnknownRepository(t *testing.T) {
	s := store.New()
	b := &recordingBroadcaster{}
	svc := NewApplicationService(s, b)

	// RepoID is a soft reference; no repository needs to exist.
	app, err := svc.Create(newCreateAppRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), app.RepoID)
}

func TestApplicationCreatePublishesAndRecordsActivity(t *testing.T) {
	s := store.New()
	b := &recordingBroadcaster{}
	svc := NewApplicationService(s, b)
	s.CreateRepository(&model.Repository{Name: "infra", URL: "https://example.com/infra.git"})

	app, err := svc.Create(newCreateAppRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), app.ID)
	assert.Equal(t, constants.SyncStatusOutOfSync, app.SyncStatus)

	activities := s.ListActivities(0)
	require.Len(t, activities, 1)
	assert.Equal(t, constants.ActivityTypeApplication, activities[0].Type)
	assert.Contains(t, activities[0].Description, "backend")

	assert.Equal(t, []string{websocket.EventApplicationCreated, websocket.EventActivityCreated}, b.types())
}

func TestApplicationUpdateUnknownID(t *testing.T) {
	s := store.New()
	b := &recordingBroadcaster{}
	svc := NewApplicationService(s, b)

	status := "Healthy"
	_, err := svc.Update(7, &dto.UpdateApplicationRequest{Status: &status})
	require.Error(t, err)
	assert.Empty(t, b.events)
}

func TestApplicationUpdateMergesAndPublishes(t *testing.T) {
	s := store.New()
	b := &recordingBroadcaster{}
	svc := NewApplicationService(s, b)
	app := seedApp(s)

	status := "Healthy"
	updated, err := svc.Update(app.ID, &dto.UpdateApplicationRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Healthy", updated.Status)
	assert.Equal(t, "frontend", updated.Name)

	assert.Equal(t, []string{websocket.EventApplicationUpdated, websocket.EventActivityCreated}, b.types())
}

func TestApplicationUpdateRecordsChangedFields(t *testing.T) {
	s := store.New()
	svc := NewApplicationService(s, &recordingBroadcaster{})
	app := seedApp(s)

	status := "Healthy"
	version := "v2.0.0"
	_, err := svc.Update(app.ID, &dto.UpdateApplicationRequest{
		Status:  &status,
		Version: &version,
	})
	require.NoError(t, err)

	activities := s.ListActivities(0)
	require.Len(t, activities, 1)
	require.NotNil(t, activities[0].Details)

	changes, ok := activities[0].Details["changes"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Healthy", changes["status"])
	assert.Equal(t, "v2.0.0", changes["version"])
	assert.NotContains(t, changes, "name")
}

func TestApplicationDeleteCarriesApplicationID(t *testing.T) {
	s := store.New()
	b := &recordingBroadcaster{}
	svc := NewApplicationService(s, b)
	app := seedApp(s)

	require.NoError(t, svc.Delete(app.ID))

	_, ok := s.GetApplication(app.ID)
	assert.False(t, ok)

	activities := s.ListActivities(0)
	require.Len(t, activities, 1)
	require.NotNil(t, activities[0].ApplicationID)
	assert.Equal(t, app.ID, *activities[0].ApplicationID)
	assert.Contains(t, activities[0].Description, "deleted")

	require.Len(t, b.events, 2)
	assert.Equal(t, websocket.EventApplicationDeleted, b.events[0].Type)
	payload, ok := b.events[0].Data.(map[string]int64)
	require.True(t, ok)
	assert.Equal(t, app.ID, payload["id"])
}

func TestRepositoryCreatePublishes(t *testing.T) {
	s := store.New()
	b := &recordingBroadcaster{}
	svc := NewRepositoryService(s, b)

	repo, err := svc.Create(&dto.CreateRepositoryRequest{
		Name: "infra",
		URL:  "https://example.com/infra.git",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultBranch, repo.Branch)

	assert.Equal(t, []string{websocket.EventRepositoryCreated, websocket.EventActivityCreated}, b.types())
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/internal/websocket"
	"gitops-dashboard/pkg/constants"
)

func TestDeploymentCreateAllowsUnknownApplication(t *testing.T) {
	s := store.New()
	b := &recordingBroadcaster{}
	svc := NewDeploymentService(s, b)

	// ApplicationID is a soft reference; no application needs to exist.
	d, err := svc.Create(&dto.CreateDeploymentRequest{
		ApplicationID: 9,
		Revision:      "r1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), d.ApplicationID)
}

func TestDeploymentCreateAppliesDefaults(t *testing.T) {
	s := store.New()
	b := &recordingBroadcaster{}
	svc := NewDeploymentService(s, b)
	app := seedApp(s)

	deployment, err := svc.Create(&dto.CreateDeploymentRequest{
		ApplicationID: app.ID,
		Revision:      "frontend@v2",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.DeploymentStatusPending, deployment.Status)
	assert.Equal(t, constants.SystemUser, deployment.InitiatedBy)
	assert.Nil(t, deployment.FinishedAt)

	activities := s.ListActivities(0)
	require.Len(t, activities, 1)
	assert.Equal(t, constants.ActivityTypeDeployment, activities[0].Type)
	assert.Contains(t, activities[0].Description, "application 1")
	require.NotNil(t, activities[0].ApplicationID)
	assert.Equal(t, app.ID, *activities[0].ApplicationID)
	require.NotNil(t, activities[0].DeploymentID)
	assert.Equal(t, deployment.ID, *activities[0].DeploymentID)

	assert.Equal(t, []string{websocket.EventDeploymentCreated, websocket.EventActivityCreated}, b.types())
}

func TestDeploymentListFiltersByApplication(t *testing.T) {
	s := store.New()
	svc := NewDeploymentService(s, &recordingBroadcaster{})
	app := seedApp(s)
	other := s.CreateApplication(app)

	_, err := svc.Create(&dto.CreateDeploymentRequest{ApplicationID: app.ID, Revision: "r1"})
	require.NoError(t, err)
	_, err = svc.Create(&dto.CreateDeploymentRequest{ApplicationID: other.ID, Revision: "r2"})
	require.NoError(t, err)

	all := svc.List(nil)
	assert.Len(t, all, 2)

	filtered := svc.List(&app.ID)
	require.Len(t, filtered, 1)
	assert.Equal(t, "r1", filtered[0].Revision)
}

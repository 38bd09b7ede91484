package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/pkg/config"
	"gitops-dashboard/internal/pkg/logger"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/internal/websocket"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init(&config.LogConfig{Level: "error", Format: "console", Output: "stdout"}); err != nil {
		panic(err)
	}
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

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	s := store.New()
	s.CreateRepository(&model.Repository{Name: "infra", URL: "https://example.com/infra.git"})
	s.CreateApplication(&model.Application{
		Name: "frontend", RepoID: 1, Path: "./frontend", Environment: "Production",
	})
	return Setup(s, websocket.NewHub()), s
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := newTestServer(t)
	w := doJSON(t, engine, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestCreateApplication(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/applications", map[string]interface{}{
		"name":        "backend",
		"repoId":      1,
		"path":        "./backend",
		"environment": "Production",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["id"])
	assert.Equal(t, "OutOfSync", body["syncStatus"])
}

func TestCreateApplicationValidation(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/applications", map[string]interface{}{
		"repoId": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["message"])
}

func TestCreateApplicationUnknownRepositoryIsAccepted(t *testing.T) {
	engine, _ := newTestServer(t)

	// repoId is a soft reference and is not checked.
	w := doJSON(t, engine, http.MethodPost, "/api/applications", map[string]interface{}{
		"name":        "backend",
		"repoId":      42,
		"path":        "./backend",
		"environment": "Production",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateActivity(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/activities", map[string]interface{}{
		"type":        "Configuration",
		"description": "Configuration Updated",
		"details":     map[string]string{"config": "database-config.yaml"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Configuration", decodeBody(t, w)["type"])

	w = doJSON(t, engine, http.MethodPost, "/api/activities", map[string]interface{}{
		"type":        "NotAType",
		"description": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetApplicationNotFound(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/applications/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/applications/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteApplication(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodDelete, "/api/applications/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/applications/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchApplication(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPatch, "/api/applications/1", map[string]interface{}{
		"status": "Healthy",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Healthy", body["status"])
	assert.Equal(t, "frontend", body["name"])
}

func TestCreateRepositoryValidation(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/repositories", map[string]interface{}{
		"name": "bad",
		"url":  "not-a-url",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["errors"])
}

func TestDashboardSnapshotShape(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	for _, key := range []string{"applications", "activities", "clusterHealth", "syncStatus", "deploymentStats"} {
		assert.Contains(t, body, key)
	}
}

func TestDeploymentsFilter(t *testing.T) {
	engine, s := newTestServer(t)
	s.CreateApplication(&model.Application{Name: "backend", RepoID: 1, Path: ".", Environment: "Production"})
	s.CreateDeployment(&model.Deployment{ApplicationID: 1, Revision: "r1", Status: "Successful"})
	s.CreateDeployment(&model.Deployment{ApplicationID: 2, Revision: "r2", Status: "Pending"})

	w := doJSON(t, engine, http.MethodGet, "/api/deployments?applicationId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "r1", list[0]["revision"])

	w = doJSON(t, engine, http.MethodGet, "/api/deployments?applicationId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListActivitiesReturnsAllWithoutLimit(t *testing.T) {
	engine, s := newTestServer(t)
	for i := 0; i < 3; i++ {
		s.CreateActivity(&model.Activity{Type: "Sync", Description: "sync"})
	}

	w := doJSON(t, engine, http.MethodGet, "/api/activities", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 3)

	w = doJSON(t, engine, http.MethodGet, "/api/activities?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	// limit=0 is an explicit "all".
	w = doJSON(t, engine, http.MethodGet, "/api/activities?limit=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 3)

	w = doJSON(t, engine, http.MethodGet, "/api/activities?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncEndpoints(t *testing.T) {
	engine, s := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/sync/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	app, ok := s.GetApplication(1)
	require.True(t, ok)
	assert.Equal(t, "Synced", app.SyncStatus)

	w = doJSON(t, engine, http.MethodPost, "/api/sync/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])

	w = doJSON(t, engine, http.MethodPost, "/api/sync-all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])
}

func TestAuthFlow(t *testing.T) {
	engine, s := newTestServer(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	s.CreateUser(&model.User{Username: "admin", Password: string(hash), Role: "admin"})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	tokens := decodeBody(t, w)
	accessToken, _ := tokens["accessToken"].(string)
	require.NotEmpty(t, accessToken)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", decodeBody(t, rec)["username"])

	// No token, no access.
	w = doJSON(t, engine, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

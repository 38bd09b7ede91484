package model

import "time"

// ClusterHealth is the singleton health aggregate shown on the
// dashboard. It is seeded at startup and refreshed periodically from
// the application health ratio by the scheduler.
type ClusterHealth struct {
	Healthy    bool    `json:"healthy"`
	Percentage float64 `json:"percentage"`
	Trend      float64 `json:"trend"`
	Message    *string `json:"message,omitempty"`
}

// SyncStatus is the singleton global sync state, mutated by force-sync.
type SyncStatus struct {
	Synced       bool       `json:"synced"`
	LastSyncTime *time.Time `json:"lastSyncTime"`
	Revision     *string    `json:"revision"`
}

// DeploymentStats is computed on every read from the deployments table,
// never stored.
type DeploymentStats struct {
	Today   int `json:"today"`
	Total   int `json:"total"`
	Success int `json:"success"`
	Pending int `json:"pending"`
	Failed  int `json:"failed"`
}

// SyncResult is the response body of the sync endpoints.
type SyncResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

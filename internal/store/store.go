// Package store holds the authoritative in-memory state of the
// dashboard: one table per entity plus the singleton aggregates. It is
// the sole owner of the id counters (one per table, starting at 1,
// never reused) and the single mutual-exclusion domain for every
// mutation, so activity-after-mutation ordering is globally sequenced.
package store

import (
	"maps"
	"sync"
	"time"

	"gitops-dashboard/internal/model"
)

// Store is the volatile entity store. Construct one per process (or
// per test) and hand it to the services; there is no global instance.
type Store struct {
	mu sync.RWMutex

	users        map[int64]*model.User
	repositories map[int64]*model.Repository
	applications map[int64]*model.Application
	deployments  map[int64]*model.Deployment
	activities   []*model.Activity

	userID       int64
	repoID       int64
	appID        int64
	deploymentID int64
	activityID   int64

	clusterHealth model.ClusterHealth
	syncStatus    model.SyncStatus

	// now is swapped out by tests to control timestamps.
	now func() time.Time
}

// New creates an empty store with seeded singleton aggregates.
func New() *Store {
	twelveMinAgo := time.Now().Add(-12 * time.Minute)
	revision := "main@8e7d3f2"

	return &Store{
		users:        make(map[int64]*model.User),
		repositories: make(map[int64]*model.Repository),
		applications: make(map[int64]*model.Application),
		deployments:  make(map[int64]*model.Deployment),

		userID:       1,
		repoID:       1,
		appID:        1,
		deploymentID: 1,
		activityID:   1,

		clusterHealth: model.ClusterHealth{
			Healthy:    true,
			Percentage: 98.7,
			Trend:      1.2,
		},
		syncStatus: model.SyncStatus{
			Synced:       true,
			LastSyncTime: &twelveMinAgo,
			Revision:     &revision,
		},

		now: time.Now,
	}
}

// cloneDetails copies the map header so the caller and the store never
// alias each other's details payload. Nested values stay shared.
func cloneDetails(details map[string]interface{}) map[string]interface{} {
	if details == nil {
		return nil
	}
	return maps.Clone(details)
}

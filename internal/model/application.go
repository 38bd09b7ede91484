package model

import "time"

// Application is a managed deployable unit. RepoID is a logical
// reference only; it is never checked against the repositories table.
// Health and status are stored as free text, the closed sets
// (Healthy/Degraded/Progressing/Unknown) live in the display layer.
type Application struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	RepoID       int64      `json:"repoId"`
	Path         string     `json:"path"`
	Environment  string     `json:"environment"`
	Status       string     `json:"status"`
	Health       string     `json:"health"`
	Version      *string    `json:"version"`
	Pods         *string    `json:"pods"`
	SyncStatus   string     `json:"syncStatus"`
	LastSyncedAt *time.Time `json:"lastSyncedAt"`
}

// ApplicationPatch carries a partial update; nil fields are preserved.
// The merge is shallow and last write wins.
type ApplicationPatch struct {
	Name         *string
	RepoID       *int64
	Path         *string
	Environment  *string
	Status       *string
	Health       *string
	Version      *string
	Pods         *string
	SyncStatus   *string
	LastSyncedAt *time.Time
}

package model

import "time"

// Repository is a Git source tracked by the dashboard.
type Repository struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Branch    string    `json:"branch"`
	CreatedAt time.Time `json:"createdAt"`
}

// RepositoryPatch carries a partial update; nil fields are preserved.
type RepositoryPatch struct {
	Name   *string
	URL    *string
	Branch *string
}

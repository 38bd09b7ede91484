package dto

// CreateApplicationRequest is the payload for registering an application.
type CreateApplicationRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	RepoID      int64   `json:"repoId" binding:"required,gt=0"`
	Path        string  `json:"path" binding:"required,max=255"`
	Environment string  `json:"environment" binding:"required,max=50"`
	Status      string  `json:"status" binding:"omitempty,max=50"`
	Health      string  `json:"health" binding:"omitempty,max=50"`
	Version     *string `json:"version" binding:"omitempty,max=50"`
	Pods        *string `json:"pods" binding:"omitempty,max=20"`
	SyncStatus  string  `json:"syncStatus" binding:"omitempty,oneof=Synced OutOfSync Unknown"`
}

// UpdateApplicationRequest carries a partial update. Absent fields are
// left untouched.
type UpdateApplicationRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	RepoID      *int64  `json:"repoId" binding:"omitempty,gt=0"`
	Path        *string `json:"path" binding:"omitempty,max=255"`
	Environment *string `json:"environment" binding:"omitempty,max=50"`
	Status      *string `json:"status" binding:"omitempty,max=50"`
	Health      *string `json:"health" binding:"omitempty,max=50"`
	Version     *string `json:"version" binding:"omitempty,max=50"`
	Pods        *string `json:"pods" binding:"omitempty,max=20"`
	SyncStatus  *string `json:"syncStatus" binding:"omitempty,oneof=Synced OutOfSync Unknown"`
}

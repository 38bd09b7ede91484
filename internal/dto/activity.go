package dto

// CreateActivityRequest records an audit entry directly, for external
// systems (CI pipelines, operators) that report events of their own.
type CreateActivityRequest struct {
	Type          string                 `json:"type" binding:"required,oneof=Deployment Sync Application Repository Configuration"`
	Description   string                 `json:"description" binding:"required,max=500"`
	UserID        *int64                 `json:"userId" binding:"omitempty,gt=0"`
	ApplicationID *int64                 `json:"applicationId" binding:"omitempty,gt=0"`
	DeploymentID  *int64                 `json:"deploymentId" binding:"omitempty,gt=0"`
	Details       map[string]interface{} `json:"details"`
}

package dto

// CreateDeploymentRequest is the payload for recording a deployment.
type CreateDeploymentRequest struct {
	ApplicationID int64                  `json:"applicationId" binding:"required,gt=0"`
	Revision      string                 `json:"revision" binding:"required,max=255"`
	Status        string                 `json:"status" binding:"omitempty,oneof=Successful Failed Pending Rollback"`
	InitiatedBy   string                 `json:"initiatedBy" binding:"omitempty,max=100"`
	Message       *string                `json:"message"`
	Details       map[string]interface{} `json:"details"`
}

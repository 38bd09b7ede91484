package model

import "time"

// Deployment records one rollout of an application revision.
// StartedAt is set at creation and immutable; FinishedAt stays nil
// until a status update completes the deployment and is never unset.
type Deployment struct {
	ID            int64                  `json:"id"`
	ApplicationID int64                  `json:"applicationId"`
	Revision      string                 `json:"revision"`
	Status        string                 `json:"status"`
	InitiatedBy   string                 `json:"initiatedBy"`
	StartedAt     time.Time              `json:"startedAt"`
	FinishedAt    *time.Time             `json:"finishedAt"`
	Message       *string                `json:"message"`
	Details       map[string]interface{} `json:"details"`
}

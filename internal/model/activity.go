package model

import "time"

// Activity is an immutable audit-log entry describing one state change.
// Entries are append-only; the cross-reference ids are optional and
// unchecked.
type Activity struct {
	ID            int64                  `json:"id"`
	Type          string                 `json:"type"`
	Timestamp     time.Time              `json:"timestamp"`
	UserID        *int64                 `json:"userId"`
	ApplicationID *int64                 `json:"applicationId"`
	DeploymentID  *int64                 `json:"deploymentId"`
	Description   string                 `json:"description"`
	Details       map[string]interface{} `json:"details"`
}
